// Package record encodes and decodes whole reference model records.
//
// Every kind has exactly one Schema: an ordered table of field descriptors.
// Encoding walks the table writing each field and recording its location in
// the control index under the field's position; decoding walks the same table
// reading each field back from its recorded location. Fields that hold another
// record are written as a reference to the child's own (kind, handle), so
// every nested record stays addressable on its own.
package record

import (
	"errors"
	"fmt"

	"github.com/rawbytedev/rmcodec/pkg/control"
	"github.com/rawbytedev/rmcodec/pkg/field"
	"github.com/rawbytedev/rmcodec/pkg/kind"
	"github.com/rawbytedev/rmcodec/pkg/rm"
)

var (
	ErrUnknownKind  = errors.New("no codec registered for kind")
	ErrKindMismatch = errors.New("value does not match codec kind")
	ErrMissingValue = errors.New("required reference is nil")
)

// Codec is the type-erased form of a Schema held by a Registry.
type Codec interface {
	Kind() kind.Kind
	// Fields lists field names in encoding order.
	Fields() []string

	encode(e *Encoder, r rm.Record) (control.Handle, error)
	decode(d *Decoder, h control.Handle) (rm.Record, error)
}

type fieldDesc[T any] struct {
	name string
	enc  func(e *Encoder, v *T) (field.Span, error)
	dec  func(d *Decoder, v *T, sp field.Span) error
}

// Schema is the descriptor table of one record kind. It is shared by both
// directions so their field order cannot drift.
type Schema[T rm.Record] struct {
	kind   kind.Kind
	fields []fieldDesc[T]
}

func define[T rm.Record](fields ...fieldDesc[T]) *Schema[T] {
	var zero T
	return &Schema[T]{kind: zero.Kind(), fields: fields}
}

func (s *Schema[T]) Kind() kind.Kind { return s.kind }

func (s *Schema[T]) Fields() []string {
	out := make([]string, len(s.fields))
	for i, f := range s.fields {
		out[i] = f.name
	}
	return out
}

func (s *Schema[T]) encode(e *Encoder, r rm.Record) (control.Handle, error) {
	// Decode yields values, so pointers are rejected.
	v, ok := any(r).(T)
	if !ok {
		return 0, fmt.Errorf("%w: %T for %s", ErrKindMismatch, r, s.kind)
	}
	h := e.index.Begin(s.kind)
	for i, f := range s.fields {
		sp, err := f.enc(e, &v)
		if err != nil {
			return 0, fmt.Errorf("%s.%s: %w", s.kind, f.name, err)
		}
		e.index.Record(s.kind, h, control.FieldID(i), sp.Off, sp.Len)
	}
	e.index.Seal(s.kind, h)
	return h, nil
}

func (s *Schema[T]) decode(d *Decoder, h control.Handle) (rm.Record, error) {
	v, err := s.decodeAt(d, h)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (s *Schema[T]) decodeAt(d *Decoder, h control.Handle) (T, error) {
	var v T
	for i, f := range s.fields {
		loc, err := d.index.Field(s.kind, h, control.FieldID(i))
		if err != nil {
			return v, fmt.Errorf("%w: %w", field.ErrCorruptData, err)
		}
		if err := f.dec(d, &v, field.Span{Off: loc.Offset, Len: loc.Length}); err != nil {
			return v, fmt.Errorf("%s#%d.%s: %w", s.kind, h, f.name, err)
		}
	}
	return rm.New(v)
}
