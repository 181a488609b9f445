package rm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rawbytedev/rmcodec/pkg/kind"
)

func ptr[T any](v T) *T { return &v }

func TestValidationErrors(t *testing.T) {
	cases := []struct {
		name   string
		value  Record
		field  string
		reason Reason
	}{
		{"identifier missing issuer", DvIdentifier{Assigner: "a", ID: "i", Type: "t"}, "issuer", ReasonEmpty},
		{"ehr uri without scheme", DvEHRURI{Value: "http://x"}, "value", ReasonInvalid},
		{"empty formatting", DvText{Value: "x", Formatting: ptr("")}, "formatting", ReasonEmpty},
		{"oid with letters", ISOOID{Value: "1.2.a"}, "value", ReasonInvalid},
		{"short uuid", UUID{Value: "1234"}, "value", ReasonInvalid},
		{"version id parts", ObjectVersionID{Value: "a::b"}, "value", ReasonInvalid},
		{"percent denominator", DvProportion{Numerator: 5, Denominator: 10, Type: ProportionPercent}, "denominator", ReasonInvalid},
		{"fraction numerator", DvProportion{Numerator: 1.5, Denominator: 2, Type: ProportionFraction}, "numerator", ReasonInvalid},
		{"bounded without value", DvInterval{}, "lower", ReasonExclusive},
		{"unbounded but included", DvInterval{LowerUnbounded: true, LowerIncluded: true, UpperUnbounded: true}, "lower_included", ReasonExclusive},
		{"mixed bounds", DvInterval{Lower: DvCount{Magnitude: 1}, Upper: DvQuantity{Magnitude: 2, Units: "kg"}}, "upper", ReasonExclusive},
		{"multimedia without data", DvMultimedia{}, "data", ReasonRequired},
		{"element with value and flavour", Element{Locatable: Locatable{Name: DvText{Value: "e"}, ArchetypeNodeID: "at1"}, Value: DvBoolean{}, NullFlavour: &DvCodedText{Value: "unknown"}}, "null_flavour", ReasonExclusive},
		{"element without name", Element{Locatable: Locatable{ArchetypeNodeID: "at1"}, Value: DvBoolean{}}, "name", ReasonRequired},
		{"empty cluster", Cluster{Locatable: Locatable{Name: DvText{Value: "c"}, ArchetypeNodeID: "at1"}}, "items", ReasonEmpty},
		{"history without events", History{Locatable: Locatable{Name: DvText{Value: "h"}, ArchetypeNodeID: "at1"}}, "events", ReasonRequired},
		{"composition without composer", Composition{Locatable: Locatable{Name: DvText{Value: "c"}, ArchetypeNodeID: "at1"}}, "composer", ReasonRequired},
		{"nil composer pointer", Composition{Locatable: Locatable{Name: DvText{Value: "c"}, ArchetypeNodeID: "at1"}, Composer: (*PartyIdentified)(nil)}, "composer", ReasonRequired},
		{"nil name pointer", Element{Locatable: Locatable{Name: (*DvText)(nil), ArchetypeNodeID: "at1"}, Value: DvBoolean{}}, "name", ReasonRequired},
		{"nil value pointer without flavour", Element{Locatable: Locatable{Name: DvText{Value: "e"}, ArchetypeNodeID: "at1"}, Value: (*DvBoolean)(nil)}, "null_flavour", ReasonExclusive},
		{"contribution without versions", Contribution{UID: HierObjectID{Value: "1"}}, "versions", ReasonEmpty},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.value.Validate()
			require.ErrorIs(t, err, ErrStructuralValidation)
			require.True(t, IsReason(err, tc.reason), "got %v", err)

			var ve *ValidationError
			require.True(t, errors.As(err, &ve))
			require.Equal(t, tc.value.Kind(), ve.Kind)
			require.Equal(t, tc.field, ve.Field)
		})
	}
}

func TestFirstViolationWins(t *testing.T) {
	err := DvIdentifier{}.Validate()
	require.EqualError(t, err, "rm: DvIdentifier.issuer: empty")
}

func TestNew(t *testing.T) {
	id := DvIdentifier{Issuer: "i", Assigner: "a", ID: "1", Type: "t"}
	got, err := New(id)
	require.NoError(t, err)
	require.Equal(t, id, got)

	got, err = New(DvIdentifier{})
	require.Error(t, err)
	require.Zero(t, got)

	iv, err := New(DvInterval{Lower: DvCount{Magnitude: 1}, UpperUnbounded: true, LowerIncluded: true})
	require.NoError(t, err)
	require.Equal(t, kind.DvInterval, iv.Kind())
}

func TestValidEdgeCases(t *testing.T) {
	valid := []Record{
		DvProportion{Numerator: 1, Denominator: 1, Type: ProportionUnitary},
		DvProportion{Numerator: 0.25, Denominator: 3, Type: ProportionRatio},
		DvInterval{LowerUnbounded: true, UpperUnbounded: true},
		DvMultimedia{URI: &DvURI{Value: "https://pacs/1"}},
		ISOOID{Value: "1.2.840.113556"},
		UUID{Value: "8849182c-82ad-4088-a07f-48ead4180515"},
		Element{Locatable: Locatable{Name: DvText{Value: "e"}, ArchetypeNodeID: "at1"}, NullFlavour: &DvCodedText{Value: "no information"}, NullReason: &DvText{Value: "not asked"}},
		DvText{Value: "x", Formatting: ptr("plain")},
	}
	for _, v := range valid {
		require.NoError(t, v.Validate(), "%s", v.Kind())
	}
}

func TestIsNil(t *testing.T) {
	require.True(t, IsNil(nil))
	require.True(t, IsNil((*DvText)(nil)))
	var p PartyProxy = (*PartyIdentified)(nil)
	require.True(t, IsNil(p))
	require.False(t, IsNil(DvText{}))
	require.False(t, IsNil(&DvText{}))
}

func TestReasonString(t *testing.T) {
	require.Equal(t, "inconsistent", ReasonExclusive.String())
	require.Equal(t, "Reason(9)", Reason(9).String())
	require.False(t, IsReason(errors.New("other"), ReasonEmpty))
}
