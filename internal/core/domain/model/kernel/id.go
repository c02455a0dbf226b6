package kernel

import "github.com/google/uuid"

// IDGenerator produces a fresh, unique identifier for every created record.
// Identifiers are opaque strings; stores compare them byte for byte.
type IDGenerator interface {
	NextID() string
}

// IDGeneratorFunc adapts a plain function to IDGenerator.
type IDGeneratorFunc func() string

// NextID calls f.
func (f IDGeneratorFunc) NextID() string {
	return f()
}

// UUIDGenerator issues random (version 4) UUIDs in their canonical
// "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx" form.
type UUIDGenerator struct{}

// NewUUIDGenerator returns the default identifier generator.
func NewUUIDGenerator() UUIDGenerator {
	return UUIDGenerator{}
}

// NextID returns a new random UUID string.
func (UUIDGenerator) NextID() string {
	return uuid.NewString()
}
