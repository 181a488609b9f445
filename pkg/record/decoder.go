package record

import (
	"fmt"

	"github.com/rawbytedev/rmcodec/pkg/bytestore"
	"github.com/rawbytedev/rmcodec/pkg/control"
	"github.com/rawbytedev/rmcodec/pkg/field"
	"github.com/rawbytedev/rmcodec/pkg/kind"
	"github.com/rawbytedev/rmcodec/pkg/rm"
)

// Decoder rebuilds records from a store and its index. Every decoded record,
// nested ones included, passes through rm.New. It is not safe for concurrent use.
type Decoder struct {
	store  *bytestore.Store
	index  *control.Index
	reg    *Registry
	active map[control.Instance]struct{}
}

func NewDecoder(s *bytestore.Store, x *control.Index, reg *Registry) *Decoder {
	if reg == nil {
		reg = Default()
	}
	return &Decoder{store: s, index: x, reg: reg, active: make(map[control.Instance]struct{})}
}

// Decode rebuilds the instance (k, h).
func (d *Decoder) Decode(k kind.Kind, h control.Handle) (rm.Record, error) {
	c, err := d.reg.Lookup(k)
	if err != nil {
		return nil, err
	}
	if int(h) >= d.index.Count(k) {
		return nil, fmt.Errorf("%w: %s#%d", control.ErrNoInstance, k, h)
	}
	inst := control.Instance{Kind: k, Handle: h}
	if !d.index.Sealed(k, h) {
		return nil, fmt.Errorf("%w: %s was not completely written", field.ErrCorruptData, inst)
	}
	if _, busy := d.active[inst]; busy {
		return nil, fmt.Errorf("%w: %s refers to itself", field.ErrCorruptData, inst)
	}
	d.active[inst] = struct{}{}
	defer delete(d.active, inst)
	return c.decode(d, h)
}

// DecodeAs decodes (kind of T, h) as a T.
func DecodeAs[T rm.Record](d *Decoder, h control.Handle) (T, error) {
	var zero T
	return child[T](d, zero.Kind().String(), field.Ref{Kind: zero.Kind(), Handle: h})
}

func child[C rm.Record](d *Decoder, name string, ref field.Ref) (C, error) {
	var zero C
	r, err := d.Decode(ref.Kind, ref.Handle)
	if err != nil {
		return zero, err
	}
	c, ok := r.(C)
	if !ok {
		return zero, fmt.Errorf("%w: %s cannot fill %s", field.ErrCorruptData, ref.Kind, name)
	}
	return c, nil
}
