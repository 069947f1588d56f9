// pkg/id/id.go
package id

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// NewTransactionID returns a prefixed, lexicographically sortable unique
// id, e.g. txn_01J9ZK7M3QWERTYUIOPASDFGHJ.
func NewTransactionID() string {
	return Generate("txn")
}

// Generate builds a "<prefix>_<ULID>" identifier.
func Generate(prefix string) string {
	u := ulid.MustNew(ulid.Timestamp(time.Now()), ulid.Monotonic(rand.Reader, 0))
	return prefix + "_" + u.String()
}
