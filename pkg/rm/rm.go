// Package rm is the clinical reference model consumed and produced by the codec.
//
// Each record kind is a plain struct. Values are treated as immutable once
// built: construct them with New (or call Validate), hand them to the codec,
// and never share the decoded copy with the original. Validate enforces the
// structural invariants of its own kind only; nested values are expected to
// have been validated when they were built.
package rm

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/rawbytedev/rmcodec/pkg/kind"
)

var ErrStructuralValidation = errors.New("structural validation failed")

// Reason classifies a validation failure.
type Reason uint8

const (
	ReasonRequired  Reason = iota + 1 // a mandatory value is missing
	ReasonEmpty                       // a string or collection that must be non-empty is empty
	ReasonExclusive                   // fields that must appear together, or never together, disagree
	ReasonInvalid                     // a value is outside its permitted set or format
)

func (r Reason) String() string {
	switch r {
	case ReasonRequired:
		return "required"
	case ReasonEmpty:
		return "empty"
	case ReasonExclusive:
		return "inconsistent"
	case ReasonInvalid:
		return "invalid"
	default:
		return fmt.Sprintf("Reason(%d)", uint8(r))
	}
}

// ValidationError reports the first invariant a value violates.
type ValidationError struct {
	Kind   kind.Kind
	Field  string
	Reason Reason
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("rm: %s.%s: %s", e.Kind, e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool { return target == ErrStructuralValidation }

// IsReason reports whether err is a validation failure with the given reason.
func IsReason(err error, r Reason) bool {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Reason == r
	}
	return false
}

// Record is implemented by every record kind.
type Record interface {
	Kind() kind.Kind
	Validate() error
}

// New validates v and returns it. It is the factory every value, including
// every decoded value, goes through.
func New[T Record](v T) (T, error) {
	if err := v.Validate(); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// IsNil reports whether v is nil or holds a nil pointer. A polymorphic field
// set to a typed nil pointer is as absent as an unset one.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// Polymorphic field types. The marker methods close each set to this package.
type (
	DataValue interface {
		Record
		isDataValue()
	}
	// TextValue is DvText or DvCodedText.
	TextValue interface {
		DataValue
		isText()
	}
	// Ordered values can bound a DvInterval.
	Ordered interface {
		DataValue
		isOrdered()
	}
	// Encapsulated is DvMultimedia or DvParsable.
	Encapsulated interface {
		DataValue
		isEncapsulated()
	}
	ObjectID interface {
		Record
		isObjectID()
	}
	// UIDBasedID is HierObjectID or ObjectVersionID.
	UIDBasedID interface {
		ObjectID
		isUIDBased()
	}
	PartyProxy interface {
		Record
		isPartyProxy()
	}
	ContentItem interface {
		Record
		isContentItem()
	}
	ItemStructure interface {
		Record
		isItemStructure()
	}
	// Item is Element or Cluster.
	Item interface {
		Record
		isItem()
	}
	Event interface {
		Record
		isEvent()
	}
)

type checker struct {
	kind kind.Kind
	err  *ValidationError
}

func validate(k kind.Kind) *checker { return &checker{kind: k} }

func (c *checker) fail(field string, r Reason) {
	if c.err == nil {
		c.err = &ValidationError{Kind: c.kind, Field: field, Reason: r}
	}
}

func (c *checker) nonEmpty(field, v string) {
	if v == "" {
		c.fail(field, ReasonEmpty)
	}
}

func (c *checker) optNonEmpty(field string, v *string) {
	if v != nil && *v == "" {
		c.fail(field, ReasonEmpty)
	}
}

func (c *checker) present(field string, ok bool) {
	if !ok {
		c.fail(field, ReasonRequired)
	}
}

func (c *checker) filled(field string, n int) {
	if n == 0 {
		c.fail(field, ReasonEmpty)
	}
}

func (c *checker) consistent(field string, ok bool) {
	if !ok {
		c.fail(field, ReasonExclusive)
	}
}

func (c *checker) valid(field string, ok bool) {
	if !ok {
		c.fail(field, ReasonInvalid)
	}
}

func (c *checker) result() error {
	if c.err == nil {
		return nil
	}
	return c.err
}
