package idgen

import (
	"strings"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/pollwin/internal/domain/port/core"
)

// UUIDGenerator issues IDs of the form <prefix>_<uuid v4 hex>
type UUIDGenerator struct{}

// NewUUIDGenerator creates an ID generator backed by random UUIDs
func NewUUIDGenerator() core.IDGenerator {
	return &UUIDGenerator{}
}

// NewID returns a fresh identifier; an empty prefix yields the bare hex
func (g *UUIDGenerator) NewID(prefix string) string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	if prefix == "" {
		return id
	}
	return prefix + "_" + id
}
