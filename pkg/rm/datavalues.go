package rm

import (
	"math"

	"github.com/rawbytedev/rmcodec/pkg/kind"
)

type DvBoolean struct {
	Value bool
}

func (DvBoolean) Kind() kind.Kind { return kind.DvBoolean }
func (DvBoolean) isDataValue()    {}
func (DvBoolean) Validate() error { return nil }

type DvIdentifier struct {
	Issuer   string
	Assigner string
	ID       string
	Type     string
}

func (DvIdentifier) Kind() kind.Kind { return kind.DvIdentifier }
func (DvIdentifier) isDataValue()    {}

func (v DvIdentifier) Validate() error {
	c := validate(kind.DvIdentifier)
	c.nonEmpty("issuer", v.Issuer)
	c.nonEmpty("assigner", v.Assigner)
	c.nonEmpty("id", v.ID)
	c.nonEmpty("type", v.Type)
	return c.result()
}

type DvURI struct {
	Value string
}

func (DvURI) Kind() kind.Kind { return kind.DvURI }
func (DvURI) isDataValue()    {}

func (v DvURI) Validate() error {
	c := validate(kind.DvURI)
	c.nonEmpty("value", v.Value)
	return c.result()
}

// DvEHRURI is a URI in the ehr: scheme.
type DvEHRURI struct {
	Value string
}

func (DvEHRURI) Kind() kind.Kind { return kind.DvEHRURI }
func (DvEHRURI) isDataValue()    {}

func (v DvEHRURI) Validate() error {
	c := validate(kind.DvEHRURI)
	c.nonEmpty("value", v.Value)
	c.valid("value", len(v.Value) > len("ehr:") && v.Value[:4] == "ehr:")
	return c.result()
}

type CodePhrase struct {
	TerminologyID TerminologyID
	CodeString    string
	PreferredTerm *string
}

func (CodePhrase) Kind() kind.Kind { return kind.CodePhrase }
func (CodePhrase) isDataValue()    {}

func (v CodePhrase) Validate() error {
	c := validate(kind.CodePhrase)
	c.nonEmpty("code_string", v.CodeString)
	c.optNonEmpty("preferred_term", v.PreferredTerm)
	return c.result()
}

// MatchKind is the closed set of term mapping matches.
type MatchKind uint8

const (
	MatchNarrower   MatchKind = '<'
	MatchEquivalent MatchKind = '='
	MatchBroader    MatchKind = '>'
	MatchUnknown    MatchKind = '?'
)

func (m MatchKind) Valid() bool {
	switch m {
	case MatchNarrower, MatchEquivalent, MatchBroader, MatchUnknown:
		return true
	}
	return false
}

type TermMapping struct {
	Match   MatchKind
	Purpose *DvCodedText
	Target  CodePhrase
}

func (TermMapping) Kind() kind.Kind { return kind.TermMapping }

func (v TermMapping) Validate() error {
	c := validate(kind.TermMapping)
	c.valid("match", v.Match.Valid())
	return c.result()
}

type DvText struct {
	Value      string
	Hyperlink  *DvURI
	Formatting *string
	Mappings   []TermMapping
	Language   *CodePhrase
	Encoding   *CodePhrase
}

func (DvText) Kind() kind.Kind { return kind.DvText }
func (DvText) isDataValue()    {}
func (DvText) isText()         {}

func (v DvText) Validate() error {
	c := validate(kind.DvText)
	c.nonEmpty("value", v.Value)
	c.optNonEmpty("formatting", v.Formatting)
	return c.result()
}

type DvCodedText struct {
	Value        string
	DefiningCode CodePhrase
	Hyperlink    *DvURI
	Formatting   *string
	Mappings     []TermMapping
	Language     *CodePhrase
	Encoding     *CodePhrase
}

func (DvCodedText) Kind() kind.Kind { return kind.DvCodedText }
func (DvCodedText) isDataValue()    {}
func (DvCodedText) isText()         {}

func (v DvCodedText) Validate() error {
	c := validate(kind.DvCodedText)
	c.nonEmpty("value", v.Value)
	c.optNonEmpty("formatting", v.Formatting)
	return c.result()
}

type DvParagraph struct {
	Items []DvText
}

func (DvParagraph) Kind() kind.Kind { return kind.DvParagraph }
func (DvParagraph) isDataValue()    {}

func (v DvParagraph) Validate() error {
	c := validate(kind.DvParagraph)
	c.filled("items", len(v.Items))
	return c.result()
}

// Date and time values carry their ISO 8601 text form.
type (
	DvDate     struct{ Value string }
	DvTime     struct{ Value string }
	DvDateTime struct{ Value string }
	DvDuration struct{ Value string }
)

func (DvDate) Kind() kind.Kind     { return kind.DvDate }
func (DvTime) Kind() kind.Kind     { return kind.DvTime }
func (DvDateTime) Kind() kind.Kind { return kind.DvDateTime }
func (DvDuration) Kind() kind.Kind { return kind.DvDuration }

func (DvDate) isDataValue()     {}
func (DvTime) isDataValue()     {}
func (DvDateTime) isDataValue() {}
func (DvDuration) isDataValue() {}

func (DvDate) isOrdered()     {}
func (DvTime) isOrdered()     {}
func (DvDateTime) isOrdered() {}
func (DvDuration) isOrdered() {}

func (v DvDate) Validate() error     { return temporal(kind.DvDate, v.Value) }
func (v DvTime) Validate() error     { return temporal(kind.DvTime, v.Value) }
func (v DvDateTime) Validate() error { return temporal(kind.DvDateTime, v.Value) }
func (v DvDuration) Validate() error { return temporal(kind.DvDuration, v.Value) }

func temporal(k kind.Kind, value string) error {
	c := validate(k)
	c.nonEmpty("value", value)
	return c.result()
}

type DvQuantity struct {
	Magnitude float64
	Units     string
	// Precision is the number of decimal places; -1 means unlimited.
	Precision *int32
}

func (DvQuantity) Kind() kind.Kind { return kind.DvQuantity }
func (DvQuantity) isDataValue()    {}
func (DvQuantity) isOrdered()      {}

func (v DvQuantity) Validate() error {
	c := validate(kind.DvQuantity)
	c.nonEmpty("units", v.Units)
	c.valid("precision", v.Precision == nil || *v.Precision >= -1)
	return c.result()
}

type DvCount struct {
	Magnitude int64
}

func (DvCount) Kind() kind.Kind { return kind.DvCount }
func (DvCount) isDataValue()    {}
func (DvCount) isOrdered()      {}
func (DvCount) Validate() error { return nil }

// ProportionKind is the closed set of proportion semantics.
type ProportionKind uint8

const (
	ProportionRatio ProportionKind = iota
	ProportionUnitary
	ProportionPercent
	ProportionFraction
	ProportionIntegerFraction
)

type DvProportion struct {
	Numerator   float64
	Denominator float64
	Type        ProportionKind
	Precision   *int32
}

func (DvProportion) Kind() kind.Kind { return kind.DvProportion }
func (DvProportion) isDataValue()    {}
func (DvProportion) isOrdered()      {}

func (v DvProportion) Validate() error {
	c := validate(kind.DvProportion)
	c.valid("type", v.Type <= ProportionIntegerFraction)
	c.valid("denominator", v.Denominator != 0)
	switch v.Type {
	case ProportionUnitary:
		c.valid("denominator", v.Denominator == 1)
	case ProportionPercent:
		c.valid("denominator", v.Denominator == 100)
	case ProportionFraction, ProportionIntegerFraction:
		c.valid("numerator", v.Numerator == math.Trunc(v.Numerator))
		c.valid("denominator", v.Denominator == math.Trunc(v.Denominator))
	}
	c.valid("precision", v.Precision == nil || *v.Precision >= -1)
	return c.result()
}

type DvOrdinal struct {
	Value  int32
	Symbol DvCodedText
}

func (DvOrdinal) Kind() kind.Kind { return kind.DvOrdinal }
func (DvOrdinal) isDataValue()    {}
func (DvOrdinal) isOrdered()      {}
func (DvOrdinal) Validate() error { return nil }

// DvInterval bounds are absent exactly when the matching side is unbounded.
type DvInterval struct {
	Lower          Ordered
	Upper          Ordered
	LowerIncluded  bool
	UpperIncluded  bool
	LowerUnbounded bool
	UpperUnbounded bool
}

func (DvInterval) Kind() kind.Kind { return kind.DvInterval }
func (DvInterval) isDataValue()    {}

func (v DvInterval) Validate() error {
	c := validate(kind.DvInterval)
	c.consistent("lower", v.LowerUnbounded == IsNil(v.Lower))
	c.consistent("upper", v.UpperUnbounded == IsNil(v.Upper))
	c.consistent("lower_included", !v.LowerUnbounded || !v.LowerIncluded)
	c.consistent("upper_included", !v.UpperUnbounded || !v.UpperIncluded)
	if !IsNil(v.Lower) && !IsNil(v.Upper) {
		c.consistent("upper", v.Lower.Kind() == v.Upper.Kind())
	}
	return c.result()
}

type DvState struct {
	Value      DvCodedText
	IsTerminal bool
}

func (DvState) Kind() kind.Kind { return kind.DvState }
func (DvState) isDataValue()    {}
func (DvState) Validate() error { return nil }

type DvParsable struct {
	Value     string
	Formalism string
	Charset   *CodePhrase
	Language  *CodePhrase
	Size      int32
}

func (DvParsable) Kind() kind.Kind { return kind.DvParsable }
func (DvParsable) isDataValue()    {}
func (DvParsable) isEncapsulated() {}

func (v DvParsable) Validate() error {
	c := validate(kind.DvParsable)
	c.nonEmpty("value", v.Value)
	c.nonEmpty("formalism", v.Formalism)
	c.valid("size", v.Size >= 0)
	return c.result()
}

// DvMultimedia carries either inline data with its media type, or a URI to
// the content, or both.
type DvMultimedia struct {
	AlternateText           *string
	MediaType               *CodePhrase
	URI                     *DvURI
	Data                    []byte
	IntegrityCheck          []byte
	IntegrityCheckAlgorithm *CodePhrase
	CompressionAlgorithm    *CodePhrase
	Charset                 *CodePhrase
	Language                *CodePhrase
	Size                    int32
}

func (DvMultimedia) Kind() kind.Kind { return kind.DvMultimedia }
func (DvMultimedia) isDataValue()    {}
func (DvMultimedia) isEncapsulated() {}

func (v DvMultimedia) Validate() error {
	c := validate(kind.DvMultimedia)
	inline := len(v.Data) > 0
	c.present("data", inline || v.URI != nil)
	c.consistent("media_type", !inline || v.MediaType != nil)
	c.consistent("integrity_check_algorithm", (len(v.IntegrityCheck) > 0) == (v.IntegrityCheckAlgorithm != nil))
	c.optNonEmpty("alternate_text", v.AlternateText)
	c.valid("size", v.Size >= 0)
	return c.result()
}
