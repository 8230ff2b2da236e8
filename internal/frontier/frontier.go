// Package frontier provides a hash partitioned set of search regions
// processed one level at a time.
package frontier

import (
	"hash/maphash"

	"github.com/sensorgrid/beaconsearch/internal/geom"
	"github.com/sensorgrid/beaconsearch/internal/spinlock"
)

type part struct {
	mu             spinlock.Mutex
	source, target []geom.Region
}

// Frontier holds the regions of the current level (source) and collects
// the regions of the next level (target).
//
// Source may be read concurrently with Push. Swap must not run
// concurrently with either.
type Frontier struct {
	numPart uint64
	seed    maphash.Seed
	parts   []*part
}

// New returns a frontier whose first level holds start.
func New(start geom.Region, numPart int) *Frontier {
	if numPart < 1 {
		numPart = 1
	}
	f := &Frontier{
		numPart: uint64(numPart),
		seed:    maphash.MakeSeed(),
		parts:   make([]*part, numPart),
	}
	for i := range f.parts {
		f.parts[i] = &part{}
	}
	p := f.parts[start.Hash(f.seed)%f.numPart]
	p.source = append(p.source, start)
	return f
}

// NumPart returns the number of partitions.
func (f *Frontier) NumPart() int { return int(f.numPart) }

// Source returns the regions of the current level stored in partition idx.
func (f *Frontier) Source(idx int) []geom.Region { return f.parts[idx].source }

// Push adds r to the next level.
func (f *Frontier) Push(r geom.Region) {
	p := f.parts[r.Hash(f.seed)%f.numPart]
	p.mu.Lock()
	p.target = append(p.target, r)
	p.mu.Unlock()
}

// Swap makes the next level the current one and returns its size.
func (f *Frontier) Swap() int {
	n := 0
	for _, p := range f.parts {
		p.source, p.target = p.target, p.source[:0]
		n += len(p.source)
	}
	return n
}

// Len returns the number of regions of the current level.
func (f *Frontier) Len() int {
	n := 0
	for _, p := range f.parts {
		n += len(p.source)
	}
	return n
}
