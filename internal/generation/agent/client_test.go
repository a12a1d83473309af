package agent

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Call_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/agent/call" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, ManagerAgentID, req["agent_id"])
		assert.Contains(t, req["message"], "Generate a")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"success": true,
			"response": {"result": {"document_type": "Project Brief", "summary": "s"}},
			"module_outputs": {"artifact_files": [{"name": "brief.pdf", "format_type": "pdf", "file_url": "https://f/brief.pdf"}]}
		}`))
	}))
	defer server.Close()

	client := New(server.URL)
	resp, err := client.Call(context.Background(), "Generate a Project Brief", ManagerAgentID)
	require.NoError(t, err)

	assert.True(t, resp.Success)
	require.NotNil(t, resp.Result())
	assert.Equal(t, "Project Brief", resp.Result()["document_type"])
	require.Len(t, resp.ArtifactFiles(), 1)
	assert.Equal(t, "pdf", resp.ArtifactFiles()[0].FormatType)
}

func TestClient_Call_ReportedFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": false, "error": "agent overloaded"}`))
	}))
	defer server.Close()

	client := New(server.URL)
	resp, err := client.Call(context.Background(), "msg", ManagerAgentID)
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "agent overloaded", resp.Error)
	assert.Nil(t, resp.Result())
	assert.Nil(t, resp.ArtifactFiles())
}

func TestClient_Call_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"error": "upstream offline"}`))
	}))
	defer server.Close()

	client := New(server.URL)
	_, err := client.Call(context.Background(), "msg", ManagerAgentID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upstream offline")
}

func TestClient_Call_TransportError(t *testing.T) {
	client := New("http://127.0.0.1:1")
	_, err := client.Call(context.Background(), "msg", ManagerAgentID)
	require.Error(t, err)
}

func TestClient_Call_NonObjectResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": true, "response": {"result": "plain text output"}}`))
	}))
	defer server.Close()

	client := New(server.URL)
	resp, err := client.Call(context.Background(), "msg", ManagerAgentID)
	require.NoError(t, err)

	// a non-object result still reads as a result, with no fields
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Result())
	assert.Empty(t, resp.Result())
}

func TestClient_Call_NullOrEmptyResult(t *testing.T) {
	for _, body := range []string{
		`{"success": true, "response": {"result": null}}`,
		`{"success": true, "response": {"result": ""}}`,
		`{"success": true, "response": {"result": 0}}`,
		`{"success": true, "response": {"result": false}}`,
		`{"success": true, "response": {}}`,
	} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(body))
		}))

		client := New(server.URL)
		resp, err := client.Call(context.Background(), "msg", ManagerAgentID)
		require.NoError(t, err, body)
		assert.Nil(t, resp.Result(), body)
		server.Close()
	}
}

func TestClient_Call_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	}))
	defer server.Close()

	client := New(server.URL)
	_, err := client.Call(context.Background(), "msg", ManagerAgentID)
	require.Error(t, err)
}
