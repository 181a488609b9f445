// Package control implements the side index that locates every encoded field.
//
// For each (kind, handle, field) the index holds the absolute offset and
// length of that field's bytes in the store, so a decoder jumps straight to a
// field without scanning. Handles are allocated per kind, zero-based and
// strictly increasing, in the order instances begin encoding.
package control

import (
	"errors"
	"fmt"
	"sort"

	"github.com/rawbytedev/rmcodec/pkg/kind"
)

var (
	ErrUnknownField    = errors.New("unknown field")
	ErrNoInstance      = errors.New("no instance of kind")
	ErrCorruptState    = errors.New("inconsistent index state")
	ErrStaleCheckpoint = errors.New("checkpoint is not from this index")
)

// Handle addresses one encoded instance of a kind.
type Handle uint32

// FieldID is the position of a field in its kind's descriptor table.
type FieldID uint16

// Location is where a field's bytes live in the store.
type Location struct {
	Offset int
	Length int
}

// Instance names one encoded record.
type Instance struct {
	Kind   kind.Kind
	Handle Handle
}

func (i Instance) String() string { return fmt.Sprintf("%s#%d", i.Kind, i.Handle) }

// Entry is one row of the index.
type Entry struct {
	Kind   kind.Kind
	Handle Handle
	Field  FieldID
	Offset int
	Length int
}

type slot struct {
	inst  Instance
	field FieldID
}

type Index struct {
	next    map[kind.Kind]Handle
	slots   map[slot]int
	entries []Entry
	sealed  map[Instance]struct{}
	epoch   uint64
}

func New() *Index {
	return &Index{
		next:   make(map[kind.Kind]Handle),
		slots:  make(map[slot]int),
		sealed: make(map[Instance]struct{}),
	}
}

// Begin allocates the next handle for k.
func (x *Index) Begin(k kind.Kind) Handle {
	h := x.next[k]
	x.next[k] = h + 1
	return h
}

// Record stores the location of one field of an instance.
func (x *Index) Record(k kind.Kind, h Handle, f FieldID, offset, length int) {
	key := slot{Instance{k, h}, f}
	e := Entry{Kind: k, Handle: h, Field: f, Offset: offset, Length: length}
	if i, ok := x.slots[key]; ok {
		x.entries[i] = e
		return
	}
	x.slots[key] = len(x.entries)
	x.entries = append(x.entries, e)
}

// Seal marks an instance complete: every field it declares has been recorded.
func (x *Index) Seal(k kind.Kind, h Handle) {
	x.sealed[Instance{k, h}] = struct{}{}
}

// Sealed reports whether the instance was completely written.
func (x *Index) Sealed(k kind.Kind, h Handle) bool {
	_, ok := x.sealed[Instance{k, h}]
	return ok
}

// Field returns where field f of instance (k, h) was written.
func (x *Index) Field(k kind.Kind, h Handle, f FieldID) (Location, error) {
	i, ok := x.slots[slot{Instance{k, h}, f}]
	if !ok {
		return Location{}, fmt.Errorf("%w: %s#%d field %d", ErrUnknownField, k, h, f)
	}
	e := x.entries[i]
	return Location{Offset: e.Offset, Length: e.Length}, nil
}

// Last returns the most recently allocated handle for k.
func (x *Index) Last(k kind.Kind) (Handle, error) {
	n := x.next[k]
	if n == 0 {
		return 0, fmt.Errorf("%w: %s", ErrNoInstance, k)
	}
	return n - 1, nil
}

// Count is the number of handles allocated for k.
func (x *Index) Count(k kind.Kind) int { return int(x.next[k]) }

// Len is the number of recorded fields across all instances.
func (x *Index) Len() int { return len(x.entries) }

// Entries returns a copy of all rows in recording order.
func (x *Index) Entries() []Entry {
	out := make([]Entry, len(x.entries))
	copy(out, x.entries)
	return out
}

// Kinds lists the kinds with at least one handle, in tag order.
func (x *Index) Kinds() []kind.Kind {
	out := make([]kind.Kind, 0, len(x.next))
	for k, n := range x.next {
		if n > 0 {
			out = append(out, k)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Clone returns an independent copy of the index.
func (x *Index) Clone() *Index {
	st := x.State()
	c, _ := Restore(st)
	return c
}

// Checkpoint captures the allocation state so that a failed encode can be undone.
type Checkpoint struct {
	epoch   uint64
	entries int
	next    map[kind.Kind]Handle
}

func (x *Index) Checkpoint() Checkpoint {
	next := make(map[kind.Kind]Handle, len(x.next))
	for k, n := range x.next {
		next[k] = n
	}
	return Checkpoint{epoch: x.epoch, entries: len(x.entries), next: next}
}

// Rollback forgets every handle and entry created after cp was taken.
func (x *Index) Rollback(cp Checkpoint) error {
	if cp.epoch != x.epoch || cp.entries > len(x.entries) {
		return ErrStaleCheckpoint
	}
	for _, e := range x.entries[cp.entries:] {
		delete(x.slots, slot{Instance{e.Kind, e.Handle}, e.Field})
	}
	x.entries = x.entries[:cp.entries]
	for inst := range x.sealed {
		if inst.Handle >= cp.next[inst.Kind] {
			delete(x.sealed, inst)
		}
	}
	x.next = cp.next
	x.epoch++
	return nil
}
