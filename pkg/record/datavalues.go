package record

import (
	"github.com/rawbytedev/rmcodec/pkg/field"
	"github.com/rawbytedev/rmcodec/pkg/rm"
)

var (
	optString = field.Nullable(field.String)
	optInt32  = field.Nullable(field.Int32)
)

var dvBoolean = define(
	value("value", field.Bool, func(v *rm.DvBoolean) *bool { return &v.Value }),
)

var dvIdentifier = define(
	value("issuer", field.String, func(v *rm.DvIdentifier) *string { return &v.Issuer }),
	value("assigner", field.String, func(v *rm.DvIdentifier) *string { return &v.Assigner }),
	value("id", field.String, func(v *rm.DvIdentifier) *string { return &v.ID }),
	value("type", field.String, func(v *rm.DvIdentifier) *string { return &v.Type }),
)

var dvURI = define(
	value("value", field.String, func(v *rm.DvURI) *string { return &v.Value }),
)

var dvEHRURI = define(
	value("value", field.String, func(v *rm.DvEHRURI) *string { return &v.Value }),
)

var codePhrase = define(
	one("terminology_id", func(v *rm.CodePhrase) *rm.TerminologyID { return &v.TerminologyID }),
	value("code_string", field.String, func(v *rm.CodePhrase) *string { return &v.CodeString }),
	value("preferred_term", optString, func(v *rm.CodePhrase) **string { return &v.PreferredTerm }),
)

var termMapping = define(
	enum("match", func(v *rm.TermMapping) *rm.MatchKind { return &v.Match }),
	opt("purpose", func(v *rm.TermMapping) **rm.DvCodedText { return &v.Purpose }),
	one("target", func(v *rm.TermMapping) *rm.CodePhrase { return &v.Target }),
)

var dvText = define(
	value("value", field.String, func(v *rm.DvText) *string { return &v.Value }),
	opt("hyperlink", func(v *rm.DvText) **rm.DvURI { return &v.Hyperlink }),
	value("formatting", optString, func(v *rm.DvText) **string { return &v.Formatting }),
	many("mappings", func(v *rm.DvText) *[]rm.TermMapping { return &v.Mappings }),
	opt("language", func(v *rm.DvText) **rm.CodePhrase { return &v.Language }),
	opt("encoding", func(v *rm.DvText) **rm.CodePhrase { return &v.Encoding }),
)

var dvCodedText = define(
	value("value", field.String, func(v *rm.DvCodedText) *string { return &v.Value }),
	one("defining_code", func(v *rm.DvCodedText) *rm.CodePhrase { return &v.DefiningCode }),
	opt("hyperlink", func(v *rm.DvCodedText) **rm.DvURI { return &v.Hyperlink }),
	value("formatting", optString, func(v *rm.DvCodedText) **string { return &v.Formatting }),
	many("mappings", func(v *rm.DvCodedText) *[]rm.TermMapping { return &v.Mappings }),
	opt("language", func(v *rm.DvCodedText) **rm.CodePhrase { return &v.Language }),
	opt("encoding", func(v *rm.DvCodedText) **rm.CodePhrase { return &v.Encoding }),
)

var dvParagraph = define(
	many("items", func(v *rm.DvParagraph) *[]rm.DvText { return &v.Items }),
)

var dvDate = define(
	value("value", field.String, func(v *rm.DvDate) *string { return &v.Value }),
)

var dvTime = define(
	value("value", field.String, func(v *rm.DvTime) *string { return &v.Value }),
)

var dvDateTime = define(
	value("value", field.String, func(v *rm.DvDateTime) *string { return &v.Value }),
)

var dvDuration = define(
	value("value", field.String, func(v *rm.DvDuration) *string { return &v.Value }),
)

var dvQuantity = define(
	value("magnitude", field.Float64, func(v *rm.DvQuantity) *float64 { return &v.Magnitude }),
	value("units", field.String, func(v *rm.DvQuantity) *string { return &v.Units }),
	value("precision", optInt32, func(v *rm.DvQuantity) **int32 { return &v.Precision }),
)

var dvCount = define(
	value("magnitude", field.Int64, func(v *rm.DvCount) *int64 { return &v.Magnitude }),
)

var dvProportion = define(
	value("numerator", field.Float64, func(v *rm.DvProportion) *float64 { return &v.Numerator }),
	value("denominator", field.Float64, func(v *rm.DvProportion) *float64 { return &v.Denominator }),
	enum("type", func(v *rm.DvProportion) *rm.ProportionKind { return &v.Type }),
	value("precision", optInt32, func(v *rm.DvProportion) **int32 { return &v.Precision }),
)

var dvOrdinal = define(
	value("value", field.Int32, func(v *rm.DvOrdinal) *int32 { return &v.Value }),
	one("symbol", func(v *rm.DvOrdinal) *rm.DvCodedText { return &v.Symbol }),
)

var dvInterval = define(
	optAny("lower", func(v *rm.DvInterval) *rm.Ordered { return &v.Lower }),
	optAny("upper", func(v *rm.DvInterval) *rm.Ordered { return &v.Upper }),
	value("lower_included", field.Bool, func(v *rm.DvInterval) *bool { return &v.LowerIncluded }),
	value("upper_included", field.Bool, func(v *rm.DvInterval) *bool { return &v.UpperIncluded }),
	value("lower_unbounded", field.Bool, func(v *rm.DvInterval) *bool { return &v.LowerUnbounded }),
	value("upper_unbounded", field.Bool, func(v *rm.DvInterval) *bool { return &v.UpperUnbounded }),
)

var dvState = define(
	one("value", func(v *rm.DvState) *rm.DvCodedText { return &v.Value }),
	value("is_terminal", field.Bool, func(v *rm.DvState) *bool { return &v.IsTerminal }),
)

var dvParsable = define(
	value("value", field.String, func(v *rm.DvParsable) *string { return &v.Value }),
	value("formalism", field.String, func(v *rm.DvParsable) *string { return &v.Formalism }),
	opt("charset", func(v *rm.DvParsable) **rm.CodePhrase { return &v.Charset }),
	opt("language", func(v *rm.DvParsable) **rm.CodePhrase { return &v.Language }),
	value("size", field.Int32, func(v *rm.DvParsable) *int32 { return &v.Size }),
)

var dvMultimedia = define(
	value("alternate_text", optString, func(v *rm.DvMultimedia) **string { return &v.AlternateText }),
	opt("media_type", func(v *rm.DvMultimedia) **rm.CodePhrase { return &v.MediaType }),
	opt("uri", func(v *rm.DvMultimedia) **rm.DvURI { return &v.URI }),
	value("data", field.Bytes, func(v *rm.DvMultimedia) *[]byte { return &v.Data }),
	value("integrity_check", field.Bytes, func(v *rm.DvMultimedia) *[]byte { return &v.IntegrityCheck }),
	opt("integrity_check_algorithm", func(v *rm.DvMultimedia) **rm.CodePhrase { return &v.IntegrityCheckAlgorithm }),
	opt("compression_algorithm", func(v *rm.DvMultimedia) **rm.CodePhrase { return &v.CompressionAlgorithm }),
	opt("charset", func(v *rm.DvMultimedia) **rm.CodePhrase { return &v.Charset }),
	opt("language", func(v *rm.DvMultimedia) **rm.CodePhrase { return &v.Language }),
	value("size", field.Int32, func(v *rm.DvMultimedia) *int32 { return &v.Size }),
)
