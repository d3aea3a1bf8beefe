package langtest

import (
	"github.com/bits-and-blooms/bitset"
)

// Hashable Key interface of HashMap.
type Hashable interface {
	Hash() uint64
	Equals(other Hashable) bool
}

// HashMap A chained hash map keyed by Hashable values.
type HashMap[T any] struct {
	buckets     []*entry[T]
	size        int
	mask        uint64
	loadFactory float64
}

type entry[T any] struct {
	key   Hashable
	value T
	next  *entry[T]
}

// NewHashMap Creates a map with room for capacity keys, rounded up to a
// power of two.
func NewHashMap[T any](capacity int) *HashMap[T] {
	realCap := 1
	for realCap < capacity {
		realCap <<= 1
	}
	return &HashMap[T]{
		buckets:     make([]*entry[T], realCap),
		mask:        uint64(realCap - 1),
		loadFactory: 0.75,
	}
}

func (m *HashMap[T]) Set(key Hashable, value T) {
	index := key.Hash() & m.mask
	for e := m.buckets[index]; e != nil; e = e.next {
		if e.key.Equals(key) {
			e.value = value
			return
		}
	}
	m.buckets[index] = &entry[T]{key: key, value: value, next: m.buckets[index]}
	m.size++
	if float64(m.size)/float64(len(m.buckets)) > m.loadFactory {
		m.resize()
	}
}

func (m *HashMap[T]) Get(key Hashable) (T, bool) {
	index := key.Hash() & m.mask
	for e := m.buckets[index]; e != nil; e = e.next {
		if e.key.Equals(key) {
			return e.value, true
		}
	}
	var empty T
	return empty, false
}

func (m *HashMap[T]) resize() {
	newCap := len(m.buckets) << 1
	newBuckets := make([]*entry[T], newCap)
	newMask := uint64(newCap - 1)
	for _, head := range m.buckets {
		for e := head; e != nil; e = e.next {
			i := e.key.Hash() & newMask
			newBuckets[i] = &entry[T]{key: e.key, value: e.value, next: newBuckets[i]}
		}
	}
	m.buckets = newBuckets
	m.mask = newMask
}

func (m *HashMap[T]) Size() int {
	return m.size
}

var _ Hashable = &frozenSet{}

// frozenSet An immutable set of machine states with a precomputed hash.
type frozenSet struct {
	bits     *bitset.BitSet
	hashCode uint64
}

func newFrozenSet(bits *bitset.BitSet) *frozenSet {
	h := uint64(bits.Count())
	for s, ok := bits.NextSet(0); ok; s, ok = bits.NextSet(s + 1) {
		h += uint64(mix32(int(s)))
	}
	return &frozenSet{bits: bits, hashCode: h}
}

func (f *frozenSet) Hash() uint64 {
	return f.hashCode
}

func (f *frozenSet) Equals(other Hashable) bool {
	o, ok := other.(*frozenSet)
	if !ok {
		return false
	}
	return f.hashCode == o.hashCode && f.bits.Equal(o.bits)
}

// MurmurHash3 32-bit finalizer.
func mix32(v int) uint32 {
	k := uint32(v)
	k = (k ^ (k >> 16)) * 0x85ebca6b
	k = (k ^ (k >> 13)) * 0xc2b2ae35
	return k ^ (k >> 16)
}
