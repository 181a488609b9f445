package control

import (
	"fmt"
	"sort"

	"github.com/rawbytedev/rmcodec/pkg/kind"
)

// State is a plain-data copy of an index, used to persist it and to rebuild
// an index for a re-opened codec.
type State struct {
	Counts  map[kind.Kind]Handle
	Entries []Entry
	Sealed  []Instance
}

func (x *Index) State() State {
	st := State{
		Counts:  make(map[kind.Kind]Handle, len(x.next)),
		Entries: x.Entries(),
		Sealed:  make([]Instance, 0, len(x.sealed)),
	}
	for k, n := range x.next {
		st.Counts[k] = n
	}
	for inst := range x.sealed {
		st.Sealed = append(st.Sealed, inst)
	}
	sort.Slice(st.Sealed, func(i, j int) bool {
		a, b := st.Sealed[i], st.Sealed[j]
		if a.Kind != b.Kind {
			return a.Kind < b.Kind
		}
		return a.Handle < b.Handle
	})
	return st
}

// Restore rebuilds an index from st. Every entry and sealed instance must
// refer to an allocated handle.
func Restore(st State) (*Index, error) {
	x := New()
	for k, n := range st.Counts {
		if !k.Valid() {
			return nil, fmt.Errorf("%w: count for %s", ErrCorruptState, k)
		}
		x.next[k] = n
	}
	for _, e := range st.Entries {
		if e.Handle >= x.next[e.Kind] {
			return nil, fmt.Errorf("%w: entry for %s#%d beyond allocated handles", ErrCorruptState, e.Kind, e.Handle)
		}
		if e.Offset < 0 || e.Length < 0 {
			return nil, fmt.Errorf("%w: negative location for %s#%d field %d", ErrCorruptState, e.Kind, e.Handle, e.Field)
		}
		x.Record(e.Kind, e.Handle, e.Field, e.Offset, e.Length)
	}
	for _, inst := range st.Sealed {
		if inst.Handle >= x.next[inst.Kind] {
			return nil, fmt.Errorf("%w: sealed %s beyond allocated handles", ErrCorruptState, inst)
		}
		x.sealed[inst] = struct{}{}
	}
	return x, nil
}
