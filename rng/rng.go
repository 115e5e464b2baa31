// Package rng provides the seeded pseudo-random stream every generator draws
// from. The sequence for a given seed is fixed forever: scores are shared by
// seed, so changing the algorithm changes every previously shared song.
package rng

import (
	"crypto/rand"
	"encoding/binary"
	"time"
)

// Source yields uniform values in [0,1).
type Source interface {
	Next() float64
}

// Mulberry32 is a 32-bit state generator. The zero value is a valid stream
// seeded with 0.
type Mulberry32 struct {
	state uint32
}

func New(seed uint32) *Mulberry32 {
	return &Mulberry32{state: seed}
}

func (m *Mulberry32) Next() float64 {
	m.state += 0x6D2B79F5
	t := m.state
	r := (t ^ t>>15) * (t | 1)
	r ^= r + (r^r>>7)*(r|61)
	return float64(r^r>>14) / 4294967296
}

// NewSeed picks a seed for callers that were not given one. It never feeds
// the engine directly; the caller reports the seed so the run can be replayed.
func NewSeed() uint32 {
	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		return uint32(time.Now().UnixNano())
	}
	return binary.LittleEndian.Uint32(b[:])
}
