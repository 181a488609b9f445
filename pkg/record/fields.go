package record

import (
	"fmt"

	"github.com/rawbytedev/rmcodec/pkg/field"
	"github.com/rawbytedev/rmcodec/pkg/rm"
)

// value is a field stored inline with a shape codec.
func value[T, V any](name string, c field.Codec[V], at func(*T) *V) fieldDesc[T] {
	return fieldDesc[T]{
		name: name,
		enc: func(e *Encoder, v *T) (field.Span, error) {
			return c.Put(e.store, *at(v)), nil
		},
		dec: func(d *Decoder, v *T, sp field.Span) error {
			x, err := c.Load(d.store, sp)
			if err != nil {
				return err
			}
			*at(v) = x
			return nil
		},
	}
}

// enum is a one-byte tag. Range checks are left to the record's Validate.
func enum[T any, E ~uint8](name string, at func(*T) *E) fieldDesc[T] {
	return fieldDesc[T]{
		name: name,
		enc: func(e *Encoder, v *T) (field.Span, error) {
			return field.Tag.Put(e.store, uint8(*at(v))), nil
		},
		dec: func(d *Decoder, v *T, sp field.Span) error {
			x, err := field.Tag.Load(d.store, sp)
			if err != nil {
				return err
			}
			*at(v) = E(x)
			return nil
		},
	}
}

// one is a required nested record. C may be a concrete kind or one of the
// polymorphic interfaces; a nil interface cannot be encoded.
func one[T any, C rm.Record](name string, at func(*T) *C) fieldDesc[T] {
	return fieldDesc[T]{
		name: name,
		enc: func(e *Encoder, v *T) (field.Span, error) {
			c := *at(v)
			if rm.IsNil(c) {
				return field.Span{}, ErrMissingValue
			}
			ref, err := e.child(c)
			if err != nil {
				return field.Span{}, err
			}
			return field.RefCodec.Put(e.store, ref), nil
		},
		dec: func(d *Decoder, v *T, sp field.Span) error {
			ref, err := field.RefCodec.Load(d.store, sp)
			if err != nil {
				return err
			}
			c, err := child[C](d, name, ref)
			if err != nil {
				return err
			}
			*at(v) = c
			return nil
		},
	}
}

var nullableRef = field.Nullable(field.RefCodec)

// opt is an optional nested record of a concrete kind.
func opt[T any, C rm.Record](name string, at func(*T) **C) fieldDesc[T] {
	return fieldDesc[T]{
		name: name,
		enc: func(e *Encoder, v *T) (field.Span, error) {
			p := *at(v)
			if p == nil {
				return nullableRef.Put(e.store, nil), nil
			}
			ref, err := e.child(*p)
			if err != nil {
				return field.Span{}, err
			}
			return nullableRef.Put(e.store, &ref), nil
		},
		dec: func(d *Decoder, v *T, sp field.Span) error {
			ref, err := nullableRef.Load(d.store, sp)
			if err != nil || ref == nil {
				return err
			}
			c, err := child[C](d, name, *ref)
			if err != nil {
				return err
			}
			*at(v) = &c
			return nil
		},
	}
}

// optAny is an optional nested record behind a polymorphic interface. A nil
// interface is absent.
func optAny[T any, C rm.Record](name string, at func(*T) *C) fieldDesc[T] {
	return fieldDesc[T]{
		name: name,
		enc: func(e *Encoder, v *T) (field.Span, error) {
			c := *at(v)
			if any(c) == nil {
				return nullableRef.Put(e.store, nil), nil
			}
			ref, err := e.child(c)
			if err != nil {
				return field.Span{}, err
			}
			return nullableRef.Put(e.store, &ref), nil
		},
		dec: func(d *Decoder, v *T, sp field.Span) error {
			ref, err := nullableRef.Load(d.store, sp)
			if err != nil || ref == nil {
				return err
			}
			c, err := child[C](d, name, *ref)
			if err != nil {
				return err
			}
			*at(v) = c
			return nil
		},
	}
}

var refList = field.List(field.RefCodec)

// many is a list of nested records. Children are written first, then the
// list of their references.
func many[T any, C rm.Record](name string, at func(*T) *[]C) fieldDesc[T] {
	return fieldDesc[T]{
		name: name,
		enc: func(e *Encoder, v *T) (field.Span, error) {
			items := *at(v)
			refs := make([]field.Ref, 0, len(items))
			for i, c := range items {
				if rm.IsNil(c) {
					return field.Span{}, fmt.Errorf("element %d: %w", i, ErrMissingValue)
				}
				ref, err := e.child(c)
				if err != nil {
					return field.Span{}, fmt.Errorf("element %d: %w", i, err)
				}
				refs = append(refs, ref)
			}
			return refList.Put(e.store, refs), nil
		},
		dec: func(d *Decoder, v *T, sp field.Span) error {
			refs, err := refList.Load(d.store, sp)
			if err != nil || len(refs) == 0 {
				*at(v) = nil
				return err
			}
			items := make([]C, 0, len(refs))
			for i, ref := range refs {
				c, err := child[C](d, name, ref)
				if err != nil {
					return fmt.Errorf("element %d: %w", i, err)
				}
				items = append(items, c)
			}
			*at(v) = items
			return nil
		},
	}
}

func locatable[T any](at func(*T) *rm.Locatable, rest ...fieldDesc[T]) []fieldDesc[T] {
	head := []fieldDesc[T]{
		one("name", func(v *T) *rm.TextValue { return &at(v).Name }),
		value("archetype_node_id", field.String, func(v *T) *string { return &at(v).ArchetypeNodeID }),
		optAny("uid", func(v *T) *rm.UIDBasedID { return &at(v).UID }),
		many("links", func(v *T) *[]rm.Link { return &at(v).Links }),
		opt("archetype_details", func(v *T) **rm.Archetyped { return &at(v).ArchetypeDetails }),
		opt("feeder_audit", func(v *T) **rm.FeederAudit { return &at(v).FeederAudit }),
	}
	return append(head, rest...)
}

func entry[T any](at func(*T) *rm.Entry) []fieldDesc[T] {
	return []fieldDesc[T]{
		one("language", func(v *T) *rm.CodePhrase { return &at(v).Language }),
		one("encoding", func(v *T) *rm.CodePhrase { return &at(v).Encoding }),
		one("subject", func(v *T) *rm.PartyProxy { return &at(v).Subject }),
		optAny("provider", func(v *T) *rm.PartyProxy { return &at(v).Provider }),
		many("other_participations", func(v *T) *[]rm.Participation { return &at(v).OtherParticipations }),
		opt("workflow_id", func(v *T) **rm.ObjectRef { return &at(v).WorkflowID }),
	}
}

func care[T any](at func(*T) *rm.CareEntry) []fieldDesc[T] {
	return []fieldDesc[T]{
		optAny("protocol", func(v *T) *rm.ItemStructure { return &at(v).Protocol }),
		opt("guideline_id", func(v *T) **rm.ObjectRef { return &at(v).GuidelineID }),
	}
}

// join concatenates descriptor groups in order.
func join[T any](groups ...[]fieldDesc[T]) []fieldDesc[T] {
	var out []fieldDesc[T]
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
