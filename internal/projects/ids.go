package projects

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// NewProjectID generates a human-readable project id.
// Format: "proj-12345-6789". Uniqueness at user-driven creation rates
// is handled by the random width; the time fallback only runs if the
// system randomness source fails.
func NewProjectID() string {
	a, errA := randInt(10000, 99999)
	b, errB := randInt(1000, 9999)
	if errA != nil || errB != nil {
		return fmt.Sprintf("proj-%d", time.Now().UnixNano())
	}
	return fmt.Sprintf("proj-%05d-%04d", a, b)
}

func randInt(min, max int64) (int64, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(max-min+1))
	if err != nil {
		return 0, err
	}
	return min + n.Int64(), nil
}
