// Package generator produces ULIDs stamped with resolved time instants.
package generator

import (
	"crypto/rand"
	"io"
	"time"

	"github.com/oklog/ulid/v2"
)

// Generator creates ULIDs from a single monotonic entropy source: ULIDs it
// produces for the same millisecond are strictly increasing. It is not safe
// for concurrent use.
type Generator struct {
	entropy io.Reader
}

// New returns a Generator backed by crypto/rand entropy.
func New() *Generator {
	return &Generator{entropy: ulid.Monotonic(rand.Reader, 0)}
}

// At returns a ULID stamped with t's millisecond epoch value (truncated).
func (g *Generator) At(t time.Time) (ulid.ULID, error) {
	return ulid.New(ulid.Timestamp(t), g.entropy)
}

// Now returns a ULID for the current time.
func (g *Generator) Now() (ulid.ULID, error) {
	return g.At(time.Now())
}
