package record

import (
	"fmt"

	"github.com/rawbytedev/rmcodec/pkg/bytestore"
	"github.com/rawbytedev/rmcodec/pkg/control"
	"github.com/rawbytedev/rmcodec/pkg/field"
	"github.com/rawbytedev/rmcodec/pkg/rm"
)

// Encoder appends records to a store and records their fields in an index.
// It is not safe for concurrent use.
type Encoder struct {
	store *bytestore.Store
	index *control.Index
	reg   *Registry
}

func NewEncoder(s *bytestore.Store, x *control.Index, reg *Registry) *Encoder {
	if reg == nil {
		reg = Default()
	}
	return &Encoder{store: s, index: x, reg: reg}
}

// Encode validates r, writes it with every record it contains, and returns
// the handle allocated for r. On error the store and index may hold a partial
// instance; callers that need atomicity take a checkpoint first.
func (e *Encoder) Encode(r rm.Record) (control.Handle, error) {
	if rm.IsNil(r) {
		return 0, fmt.Errorf("%w: %T", ErrMissingValue, r)
	}
	c, err := e.reg.Lookup(r.Kind())
	if err != nil {
		return 0, err
	}
	if err := r.Validate(); err != nil {
		return 0, err
	}
	return c.encode(e, r)
}

func (e *Encoder) child(r rm.Record) (field.Ref, error) {
	h, err := e.Encode(r)
	if err != nil {
		return field.Ref{}, err
	}
	return field.Ref{Kind: r.Kind(), Handle: h}, nil
}
