package id

import (
	"crypto/rand"
	"strings"

	"github.com/oklog/ulid/v2"
)

// New generates a new ULID string. ULIDs are lexicographically sortable
// by creation time and safe for use as DynamoDB partition keys.
func New() string {
	return ulid.MustNew(ulid.Now(), rand.Reader).String()
}

// NewFileName returns a random lower-case object name with the given extension.
func NewFileName(ext string) string {
	name := strings.ToLower(New())
	if ext == "" {
		return name
	}
	return name + "." + strings.TrimPrefix(ext, ".")
}
