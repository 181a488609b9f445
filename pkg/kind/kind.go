// Package kind enumerates the record kinds of the reference model.
//
// A Kind is written on the wire as a single byte (the tag half of a nested
// record reference), so the set is closed and stable within one build.
package kind

import (
	"errors"
	"fmt"
)

var ErrUnknownName = errors.New("unknown kind name")

// Kind identifies a record kind. The zero value is never assigned.
type Kind uint8

const (
	Invalid Kind = iota

	// data values
	DvBoolean
	DvIdentifier
	DvURI
	DvEHRURI
	CodePhrase
	DvText
	DvCodedText
	TermMapping
	DvParagraph
	DvDate
	DvTime
	DvDateTime
	DvDuration
	DvQuantity
	DvCount
	DvProportion
	DvOrdinal
	DvInterval
	DvState
	DvParsable
	DvMultimedia

	// identifiers
	TerminologyID
	ISOOID
	UUID
	InternetID
	HierObjectID
	ObjectVersionID
	ArchetypeID
	TemplateID
	GenericID
	ObjectRef
	PartyRef
	LocatableRef

	// common
	Archetyped
	Link
	PartySelf
	PartyIdentified
	PartyRelated
	Participation
	AuditDetails
	Attestation
	FeederAuditDetails
	FeederAudit
	Contribution
	Folder

	// data structures
	Element
	Cluster
	ItemSingle
	ItemList
	ItemTable
	ItemTree
	History
	PointEvent
	IntervalEvent

	// composition
	Composition
	EventContext
	Section
	Observation
	Evaluation
	Instruction
	Activity
	Action
	ISMTransition
	InstructionDetails
	AdminEntry

	count
)

var names = [...]string{
	Invalid:            "Invalid",
	DvBoolean:          "DvBoolean",
	DvIdentifier:       "DvIdentifier",
	DvURI:              "DvURI",
	DvEHRURI:           "DvEHRURI",
	CodePhrase:         "CodePhrase",
	DvText:             "DvText",
	DvCodedText:        "DvCodedText",
	TermMapping:        "TermMapping",
	DvParagraph:        "DvParagraph",
	DvDate:             "DvDate",
	DvTime:             "DvTime",
	DvDateTime:         "DvDateTime",
	DvDuration:         "DvDuration",
	DvQuantity:         "DvQuantity",
	DvCount:            "DvCount",
	DvProportion:       "DvProportion",
	DvOrdinal:          "DvOrdinal",
	DvInterval:         "DvInterval",
	DvState:            "DvState",
	DvParsable:         "DvParsable",
	DvMultimedia:       "DvMultimedia",
	TerminologyID:      "TerminologyID",
	ISOOID:             "ISOOID",
	UUID:               "UUID",
	InternetID:         "InternetID",
	HierObjectID:       "HierObjectID",
	ObjectVersionID:    "ObjectVersionID",
	ArchetypeID:        "ArchetypeID",
	TemplateID:         "TemplateID",
	GenericID:          "GenericID",
	ObjectRef:          "ObjectRef",
	PartyRef:           "PartyRef",
	LocatableRef:       "LocatableRef",
	Archetyped:         "Archetyped",
	Link:               "Link",
	PartySelf:          "PartySelf",
	PartyIdentified:    "PartyIdentified",
	PartyRelated:       "PartyRelated",
	Participation:      "Participation",
	AuditDetails:       "AuditDetails",
	Attestation:        "Attestation",
	FeederAuditDetails: "FeederAuditDetails",
	FeederAudit:        "FeederAudit",
	Contribution:       "Contribution",
	Folder:             "Folder",
	Element:            "Element",
	Cluster:            "Cluster",
	ItemSingle:         "ItemSingle",
	ItemList:           "ItemList",
	ItemTable:          "ItemTable",
	ItemTree:           "ItemTree",
	History:            "History",
	PointEvent:         "PointEvent",
	IntervalEvent:      "IntervalEvent",
	Composition:        "Composition",
	EventContext:       "EventContext",
	Section:            "Section",
	Observation:        "Observation",
	Evaluation:         "Evaluation",
	Instruction:        "Instruction",
	Activity:           "Activity",
	Action:             "Action",
	ISMTransition:      "ISMTransition",
	InstructionDetails: "InstructionDetails",
	AdminEntry:         "AdminEntry",
}

func (k Kind) String() string {
	if k.Valid() || k == Invalid {
		return names[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Valid reports whether k names an assigned record kind.
func (k Kind) Valid() bool { return k > Invalid && k < count }

// All returns every assigned kind in tag order.
func All() []Kind {
	out := make([]Kind, 0, count-1)
	for k := Invalid + 1; k < count; k++ {
		out = append(out, k)
	}
	return out
}

// Parse maps a kind name (as returned by String) back to its Kind.
func Parse(name string) (Kind, error) {
	for k := Invalid + 1; k < count; k++ {
		if names[k] == name {
			return k, nil
		}
	}
	return Invalid, fmt.Errorf("%w: %q", ErrUnknownName, name)
}
