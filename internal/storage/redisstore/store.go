package redisstore

import (
	"context"
	"encoding/json"
	"log"
	"reflect"

	"github.com/redis/go-redis/v9"
)

// Store is the persistence adapter over Redis. Persistence here is
// opportunistic: the in-memory stores stay authoritative for the
// session, Redis is a best-effort mirror. Load treats a missing key,
// a read failure and malformed JSON all as absent data; Save swallows
// write failures after a log line.
type Store struct {
	client *redis.Client
}

// New wraps a connected Redis client.
func New(client *redis.Client) *Store {
	return &Store{client: client}
}

// Load reads the snapshot stored under key into dest and reports
// whether usable data was found. dest is left untouched on any
// failure, so callers keep their zero-value collections.
func (s *Store) Load(ctx context.Context, key string, dest any) bool {
	data, err := s.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false
	}
	if err != nil {
		log.Printf("[warn] storage load key=%s error=%v", key, err)
		return false
	}
	// decode into a scratch value first: a snapshot that fails halfway
	// through (valid JSON, wrong-typed field) must not leave dest
	// partially populated
	rv := reflect.ValueOf(dest)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		log.Printf("[warn] storage load key=%s dest is not a pointer", key)
		return false
	}
	tmp := reflect.New(rv.Type().Elem())
	if err := json.Unmarshal(data, tmp.Interface()); err != nil {
		log.Printf("[warn] storage load key=%s corrupt snapshot: %v", key, err)
		return false
	}
	rv.Elem().Set(tmp.Elem())
	return true
}

// Save writes a whole-collection snapshot under key. Failures are
// logged and otherwise ignored.
func (s *Store) Save(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		log.Printf("[warn] storage save key=%s marshal error=%v", key, err)
		return
	}
	if err := s.client.Set(ctx, key, data, 0).Err(); err != nil {
		log.Printf("[warn] storage save key=%s error=%v", key, err)
	}
}
