// Package ident provides identifier generation for slide elements.
//
// The conversion pipeline calls the generator once per element, paragraph,
// run, and cell it creates. The generator is injected as a capability so
// tests can use a deterministic sequence and compare outputs exactly.
package ident

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// Generator produces opaque identifiers, unique within a single conversion.
type Generator interface {
	NewID() string
}

// Sequence is a deterministic generator producing prefix-1, prefix-2, ...
// It is intended for tests and is not safe for concurrent use; the pipeline
// never shares a generator across concurrent conversions.
type Sequence struct {
	prefix string
	n      int
}

// NewSequence creates a Sequence generator with the given prefix.
func NewSequence(prefix string) *Sequence {
	return &Sequence{prefix: prefix}
}

// NewID returns the next identifier in the sequence.
func (s *Sequence) NewID() string {
	s.n++
	return fmt.Sprintf("%s-%d", s.prefix, s.n)
}

// Random is a generator backed by crypto/rand. Identifiers are 20 hex
// characters, long enough that collisions within one conversion do not occur
// in practice.
type Random struct{}

// NewRandom creates a Random generator.
func NewRandom() *Random {
	return &Random{}
}

// NewID returns a fresh random identifier.
func (r *Random) NewID() string {
	var buf [10]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// crypto/rand never fails on supported platforms
		panic(fmt.Sprintf("ident: reading random bytes: %v", err))
	}
	return hex.EncodeToString(buf[:])
}
