// Package sample builds valid reference model values for tests, benchmarks and
// the CLI demo. Every value returned passes Validate, and lists that are empty
// are nil so that decoded copies compare equal.
package sample

import (
	"fmt"
	"strings"

	"github.com/rawbytedev/rmcodec/pkg/kind"
	"github.com/rawbytedev/rmcodec/pkg/rm"
)

func ptr[T any](v T) *T { return &v }

func Identifier() rm.DvIdentifier {
	return rm.DvIdentifier{Issuer: "issuer", Assigner: "assigner", ID: "id", Type: "type"}
}

func Code(terminology, code string) rm.CodePhrase {
	return rm.CodePhrase{TerminologyID: rm.TerminologyID{Value: terminology}, CodeString: code}
}

func Language() rm.CodePhrase { return Code("ISO_639-1", "en") }

func Encoding() rm.CodePhrase { return Code("IANA_character-sets", "UTF-8") }

func Coded(value, code string) rm.DvCodedText {
	return rm.DvCodedText{Value: value, DefiningCode: Code("openehr", code)}
}

func Text(value string) rm.DvText { return rm.DvText{Value: value} }

func DateTime() rm.DvDateTime { return rm.DvDateTime{Value: "2024-03-01T10:15:00Z"} }

func Self() rm.PartySelf { return rm.PartySelf{} }

func Composer() rm.PartyIdentified {
	return rm.PartyIdentified{
		Name:        ptr("Dr. Jane Doe"),
		Identifiers: []rm.DvIdentifier{Identifier()},
	}
}

func Ref() rm.ObjectRef {
	return rm.ObjectRef{Namespace: "local", Type: "VERSIONED_COMPOSITION", ID: rm.HierObjectID{Value: "1.2.3"}}
}

func Audit() rm.AuditDetails {
	return rm.AuditDetails{
		SystemID:      "rmcodec.test",
		TimeCommitted: DateTime(),
		ChangeType:    Coded("creation", "249"),
		Committer:     Composer(),
	}
}

func Participation() rm.Participation {
	return rm.Participation{
		Function:  Text("attending"),
		Performer: Composer(),
	}
}

func locatable(name, node string) rm.Locatable {
	return rm.Locatable{Name: Text(name), ArchetypeNodeID: node}
}

func Element(name string, v rm.DataValue) rm.Element {
	return rm.Element{Locatable: locatable(name, "at0004"), Value: v}
}

// Tree is an item tree holding a systolic reading and a cluster of comments.
func Tree() rm.ItemTree {
	return rm.ItemTree{
		Locatable: locatable("tree", "at0003"),
		Items: []rm.Item{
			Element("systolic", rm.DvQuantity{Magnitude: 120, Units: "mm[Hg]", Precision: ptr(int32(0))}),
			rm.Cluster{
				Locatable: locatable("notes", "at0010"),
				Items:     []rm.Item{Element("comment", Text("seated"))},
			},
		},
	}
}

func History() rm.History {
	return rm.History{
		Locatable: locatable("history", "at0002"),
		Origin:    DateTime(),
		Events: []rm.Event{
			rm.PointEvent{Locatable: locatable("any event", "at0006"), Time: DateTime(), Data: Tree()},
		},
	}
}

func entry() rm.Entry {
	return rm.Entry{Language: Language(), Encoding: Encoding(), Subject: Self()}
}

func Observation() rm.Observation {
	return rm.Observation{
		Locatable: locatable("Blood pressure", "openEHR-EHR-OBSERVATION.blood_pressure.v2"),
		Entry:     entry(),
		Data:      History(),
	}
}

// Composition is an encounter note with one observation.
func Composition() rm.Composition {
	return rm.Composition{
		Locatable: rm.Locatable{
			Name:            Text("Encounter"),
			ArchetypeNodeID: "openEHR-EHR-COMPOSITION.encounter.v1",
			UID:             rm.ObjectVersionID{Value: "8849182c-82ad-4088-a07f-48ead4180515::rmcodec::1"},
			ArchetypeDetails: &rm.Archetyped{
				ArchetypeID: rm.ArchetypeID{Value: "openEHR-EHR-COMPOSITION.encounter.v1"},
				RMVersion:   "1.0.4",
			},
		},
		Language:  Language(),
		Territory: Code("ISO_3166-1", "GB"),
		Category:  Coded("event", "433"),
		Composer:  Composer(),
		Context: &rm.EventContext{
			StartTime:      DateTime(),
			Setting:        Coded("other care", "238"),
			Participations: []rm.Participation{Participation()},
		},
		Content: []rm.ContentItem{Observation()},
	}
}

// Contribution commits versions of the given number of compositions.
func Contribution(versions int) rm.Contribution {
	refs := make([]rm.ObjectRef, 0, versions)
	for i := 0; i < versions; i++ {
		refs = append(refs, rm.ObjectRef{
			Namespace: "local",
			Type:      "VERSIONED_COMPOSITION",
			ID:        rm.HierObjectID{Value: fmt.Sprintf("1.2.%d", i)},
		})
	}
	if versions == 0 {
		refs = nil
	}
	return rm.Contribution{UID: rm.HierObjectID{Value: "9.9.9"}, Versions: refs, Audit: Audit()}
}

// Large is a composition whose encoding is many kilobytes.
func Large(sections int) rm.Composition {
	c := Composition()
	c.Content = c.Content[:0:0]
	for i := 0; i < sections; i++ {
		c.Content = append(c.Content, rm.Section{
			Locatable: locatable(fmt.Sprintf("section %d %s", i, strings.Repeat("x", 64)), "at0100"),
			Items:     []rm.ContentItem{Observation()},
		})
	}
	return c
}

func Multimedia() rm.DvMultimedia {
	return rm.DvMultimedia{
		AlternateText:           ptr("chest x-ray"),
		MediaType:               ptr(Code("IANA_media-types", "image/png")),
		Data:                    []byte{0x89, 'P', 'N', 'G', 0, 1, 2, 3},
		IntegrityCheck:          []byte{0xde, 0xad, 0xbe, 0xef},
		IntegrityCheckAlgorithm: ptr(Code("openehr_integrity_check_algorithms", "SHA-1")),
		Size:                    8,
	}
}

func instructionRef() rm.LocatableRef {
	return rm.LocatableRef{
		Namespace: "local",
		Type:      "INSTRUCTION",
		ID:        rm.ObjectVersionID{Value: "a1::rmcodec::1"},
		Path:      ptr("/content[openEHR-EHR-INSTRUCTION.medication_order.v3]"),
	}
}

func ism() rm.ISMTransition {
	return rm.ISMTransition{
		CurrentState: Coded("completed", "532"),
		Transition:   ptr(Coded("finish", "555")),
		Reason:       []rm.DvText{Text("course finished")},
	}
}

func activity() rm.Activity {
	return rm.Activity{
		Locatable:         locatable("order", "at0001"),
		Description:       Tree(),
		Timing:            &rm.DvParsable{Value: "R3/2024-03-01T08:00:00Z/P1D", Formalism: "timing"},
		ActionArchetypeID: "openEHR-EHR-ACTION.medication.v1",
	}
}

func feederDetails() rm.FeederAuditDetails {
	return rm.FeederAuditDetails{SystemID: "lab", Subject: Self(), VersionID: ptr("3")}
}

// All returns one valid value of every kind, keyed by kind.
func All() map[kind.Kind]rm.Record {
	out := map[kind.Kind]rm.Record{
		kind.DvBoolean:    rm.DvBoolean{Value: true},
		kind.DvIdentifier: Identifier(),
		kind.DvURI:        rm.DvURI{Value: "https://example.org/record/1"},
		kind.DvEHRURI:     rm.DvEHRURI{Value: "ehr://system/123"},
		kind.CodePhrase:   rm.CodePhrase{TerminologyID: rm.TerminologyID{Value: "SNOMED-CT"}, CodeString: "271649006", PreferredTerm: ptr("Systolic blood pressure")},
		kind.DvText: rm.DvText{
			Value:      "free text",
			Hyperlink:  &rm.DvURI{Value: "https://example.org"},
			Formatting: ptr("plain"),
			Language:   ptr(Language()),
		},
		kind.DvCodedText: rm.DvCodedText{
			Value:        "Hypertension",
			DefiningCode: Code("SNOMED-CT", "38341003"),
			Mappings: []rm.TermMapping{
				{Match: rm.MatchEquivalent, Target: Code("ICD10", "I10")},
			},
		},
		kind.TermMapping: rm.TermMapping{Match: rm.MatchBroader, Purpose: ptr(Coded("billing", "669")), Target: Code("ICD10", "I10")},
		kind.DvParagraph: rm.DvParagraph{Items: []rm.DvText{Text("first"), Text("second")}},
		kind.DvDate:      rm.DvDate{Value: "2024-03-01"},
		kind.DvTime:      rm.DvTime{Value: "10:15:00"},
		kind.DvDateTime:  DateTime(),
		kind.DvDuration:  rm.DvDuration{Value: "PT15M"},
		kind.DvQuantity:  rm.DvQuantity{Magnitude: 37.5, Units: "Cel", Precision: ptr(int32(1))},
		kind.DvCount:     rm.DvCount{Magnitude: 1 << 40},
		kind.DvProportion: rm.DvProportion{
			Numerator: 98, Denominator: 100, Type: rm.ProportionPercent,
		},
		kind.DvOrdinal: rm.DvOrdinal{Value: 2, Symbol: Coded("moderate", "at0012")},
		kind.DvInterval: rm.DvInterval{
			Lower:          rm.DvQuantity{Magnitude: 90, Units: "mm[Hg]"},
			LowerIncluded:  true,
			UpperUnbounded: true,
		},
		kind.DvState:      rm.DvState{Value: Coded("active", "245"), IsTerminal: false},
		kind.DvParsable:   rm.DvParsable{Value: "<p>note</p>", Formalism: "text/html", Charset: ptr(Encoding()), Size: 11},
		kind.DvMultimedia: Multimedia(),

		kind.TerminologyID:   rm.TerminologyID{Value: "SNOMED-CT"},
		kind.ISOOID:          rm.ISOOID{Value: "1.2.840.113556.1.8000"},
		kind.UUID:            rm.UUID{Value: "8849182c-82ad-4088-a07f-48ead4180515"},
		kind.InternetID:      rm.InternetID{Value: "org.example.rmcodec"},
		kind.HierObjectID:    rm.HierObjectID{Value: "1.2.3::4"},
		kind.ObjectVersionID: rm.ObjectVersionID{Value: "a1::rmcodec::2"},
		kind.ArchetypeID:     rm.ArchetypeID{Value: "openEHR-EHR-OBSERVATION.blood_pressure.v2"},
		kind.TemplateID:      rm.TemplateID{Value: "vital_signs.v1"},
		kind.GenericID:       rm.GenericID{Value: "12345", Scheme: "local"},
		kind.ObjectRef:       Ref(),
		kind.PartyRef:        rm.PartyRef{Namespace: "demographic", Type: "PERSON", ID: rm.GenericID{Value: "p-1", Scheme: "mrn"}},
		kind.LocatableRef:    instructionRef(),

		kind.Archetyped: rm.Archetyped{
			ArchetypeID: rm.ArchetypeID{Value: "openEHR-EHR-SECTION.adhoc.v1"},
			TemplateID:  &rm.TemplateID{Value: "encounter.v1"},
			RMVersion:   "1.0.4",
		},
		kind.Link: rm.Link{Meaning: Text("follow up"), Type: Text("problem"), Target: rm.DvEHRURI{Value: "ehr://system/456"}},
		kind.PartySelf: rm.PartySelf{ExternalRef: &rm.PartyRef{
			Namespace: "demographic", Type: "PERSON", ID: rm.HierObjectID{Value: "p.1"},
		}},
		kind.PartyIdentified: Composer(),
		kind.PartyRelated:    rm.PartyRelated{Name: ptr("John Doe"), Relationship: Coded("father", "10")},
		kind.Participation: rm.Participation{
			Function:  Coded("witness", "at1"),
			Mode:      ptr(Coded("face-to-face", "216")),
			Performer: Composer(),
			Time: &rm.DvInterval{
				Lower:         DateTime(),
				Upper:         rm.DvDateTime{Value: "2024-03-01T11:00:00Z"},
				LowerIncluded: true,
				UpperIncluded: true,
			},
		},
		kind.AuditDetails: Audit(),
		kind.Attestation: rm.Attestation{
			SystemID:      "rmcodec.test",
			TimeCommitted: DateTime(),
			ChangeType:    Coded("attestation", "666"),
			Committer:     Composer(),
			AttestedView:  ptr(Multimedia()),
			Items:         []rm.DvEHRURI{{Value: "ehr://system/1"}, {Value: "ehr://system/2"}},
			Reason:        Coded("signed", "240"),
			IsPending:     true,
		},
		kind.FeederAuditDetails: feederDetails(),
		kind.FeederAudit: rm.FeederAudit{
			OriginatingSystemItemIDs: []rm.DvIdentifier{Identifier()},
			OriginalContent:          rm.DvParsable{Value: "OBX|1|NM|", Formalism: "HL7v2", Size: 9},
			OriginatingSystemAudit:   feederDetails(),
		},
		kind.Contribution: Contribution(2),
		kind.Folder: rm.Folder{
			Locatable: locatable("episodes", "at0000"),
			Items:     []rm.ObjectRef{Ref()},
			Folders:   []rm.Folder{{Locatable: locatable("2024", "at0001")}},
		},

		kind.Element: rm.Element{
			Locatable:   locatable("pulse", "at0004"),
			NullFlavour: ptr(Coded("unknown", "253")),
			NullReason:  ptr(Text("not measured")),
		},
		kind.Cluster: rm.Cluster{
			Locatable: locatable("device", "at0020"),
			Items:     []rm.Item{Element("model", Text("X-100"))},
		},
		kind.ItemSingle: rm.ItemSingle{Locatable: locatable("single", "at0030"), Item: Element("flag", rm.DvBoolean{Value: true})},
		kind.ItemList: rm.ItemList{
			Locatable: locatable("list", "at0031"),
			Items:     []rm.Element{Element("a", rm.DvCount{Magnitude: 1}), Element("b", rm.DvCount{Magnitude: 2})},
		},
		kind.ItemTable: rm.ItemTable{
			Locatable: locatable("table", "at0032"),
			Rows: []rm.Cluster{{
				Locatable: locatable("row 1", "at0033"),
				Items:     []rm.Item{Element("cell", Text("1"))},
			}},
		},
		kind.ItemTree: Tree(),
		kind.History:  History(),
		kind.PointEvent: rm.PointEvent{
			Locatable: locatable("point", "at0006"),
			Time:      DateTime(),
			Data:      Tree(),
			State:     rm.ItemSingle{Locatable: locatable("position", "at0040"), Item: Element("sitting", rm.DvBoolean{Value: true})},
		},
		kind.IntervalEvent: rm.IntervalEvent{
			Locatable:    locatable("24h average", "at0007"),
			Time:         DateTime(),
			Data:         Tree(),
			Width:        rm.DvDuration{Value: "PT24H"},
			SampleCount:  ptr(int32(48)),
			MathFunction: Coded("mean", "146"),
		},

		kind.Composition:  Composition(),
		kind.EventContext: *Composition().Context,
		kind.Section: rm.Section{
			Locatable: locatable("vital signs", "at0050"),
			Items:     []rm.ContentItem{Observation()},
		},
		kind.Observation: Observation(),
		kind.Evaluation: rm.Evaluation{
			Locatable: locatable("problem", "openEHR-EHR-EVALUATION.problem_diagnosis.v1"),
			Entry:     entry(),
			CareEntry: rm.CareEntry{GuidelineID: ptr(Ref())},
			Data:      Tree(),
		},
		kind.Instruction: rm.Instruction{
			Locatable:  locatable("medication order", "openEHR-EHR-INSTRUCTION.medication_order.v3"),
			Entry:      entry(),
			Narrative:  Text("paracetamol 1g three times daily"),
			ExpiryTime: ptr(rm.DvDateTime{Value: "2024-03-04T10:00:00Z"}),
			Activities: []rm.Activity{activity()},
		},
		kind.Activity: activity(),
		kind.Action: rm.Action{
			Locatable: locatable("medication administered", "openEHR-EHR-ACTION.medication.v1"),
			Entry: rm.Entry{
				Language: Language(), Encoding: Encoding(), Subject: Self(),
				Provider:            Composer(),
				OtherParticipations: []rm.Participation{Participation()},
				WorkflowID:          ptr(Ref()),
			},
			CareEntry:     rm.CareEntry{Protocol: Tree()},
			Time:          DateTime(),
			Description:   Tree(),
			ISMTransition: ism(),
			InstructionDetails: &rm.InstructionDetails{
				InstructionID: instructionRef(),
				ActivityID:    "activities[at0001]",
			},
		},
		kind.ISMTransition:      ism(),
		kind.InstructionDetails: rm.InstructionDetails{InstructionID: instructionRef(), ActivityID: "activities[at0001]", WFDetails: Tree()},
		kind.AdminEntry: rm.AdminEntry{
			Locatable: locatable("admission", "openEHR-EHR-ADMIN_ENTRY.admission.v1"),
			Entry:     entry(),
			Data:      rm.ItemList{Locatable: locatable("details", "at0060"), Items: []rm.Element{Element("ward", Text("A3"))}},
		},
	}
	return out
}
