package rm

import "github.com/rawbytedev/rmcodec/pkg/kind"

// Locatable is the header shared by archetyped tree nodes.
type Locatable struct {
	Name             TextValue
	ArchetypeNodeID  string
	UID              UIDBasedID
	Links            []Link
	ArchetypeDetails *Archetyped
	FeederAudit      *FeederAudit
}

func (l Locatable) checkLocatable(c *checker) {
	c.present("name", !IsNil(l.Name))
	c.nonEmpty("archetype_node_id", l.ArchetypeNodeID)
}

type Archetyped struct {
	ArchetypeID ArchetypeID
	TemplateID  *TemplateID
	RMVersion   string
}

func (Archetyped) Kind() kind.Kind { return kind.Archetyped }

func (v Archetyped) Validate() error {
	c := validate(kind.Archetyped)
	c.nonEmpty("rm_version", v.RMVersion)
	return c.result()
}

type Link struct {
	Meaning DvText
	Type    DvText
	Target  DvEHRURI
}

func (Link) Kind() kind.Kind { return kind.Link }
func (Link) Validate() error { return nil }

// PartySelf is the subject of the record itself.
type PartySelf struct {
	ExternalRef *PartyRef
}

func (PartySelf) Kind() kind.Kind { return kind.PartySelf }
func (PartySelf) isPartyProxy()   {}
func (PartySelf) Validate() error { return nil }

type PartyIdentified struct {
	ExternalRef *PartyRef
	Name        *string
	Identifiers []DvIdentifier
}

func (PartyIdentified) Kind() kind.Kind { return kind.PartyIdentified }
func (PartyIdentified) isPartyProxy()   {}

func (v PartyIdentified) Validate() error {
	c := validate(kind.PartyIdentified)
	identified(c, v.ExternalRef, v.Name, v.Identifiers)
	return c.result()
}

type PartyRelated struct {
	ExternalRef  *PartyRef
	Name         *string
	Identifiers  []DvIdentifier
	Relationship DvCodedText
}

func (PartyRelated) Kind() kind.Kind { return kind.PartyRelated }
func (PartyRelated) isPartyProxy()   {}

func (v PartyRelated) Validate() error {
	c := validate(kind.PartyRelated)
	identified(c, v.ExternalRef, v.Name, v.Identifiers)
	return c.result()
}

func identified(c *checker, ref *PartyRef, name *string, ids []DvIdentifier) {
	c.present("name", name != nil || ref != nil || len(ids) > 0)
	c.optNonEmpty("name", name)
}

type Participation struct {
	Function  TextValue
	Mode      *DvCodedText
	Performer PartyProxy
	Time      *DvInterval
}

func (Participation) Kind() kind.Kind { return kind.Participation }

func (v Participation) Validate() error {
	c := validate(kind.Participation)
	c.present("function", !IsNil(v.Function))
	c.present("performer", !IsNil(v.Performer))
	return c.result()
}

type AuditDetails struct {
	SystemID      string
	TimeCommitted DvDateTime
	ChangeType    DvCodedText
	Description   *DvText
	Committer     PartyProxy
}

func (AuditDetails) Kind() kind.Kind { return kind.AuditDetails }

func (v AuditDetails) Validate() error {
	c := validate(kind.AuditDetails)
	c.nonEmpty("system_id", v.SystemID)
	c.present("committer", !IsNil(v.Committer))
	return c.result()
}

// Attestation is an audit trail entry that also records what was attested.
type Attestation struct {
	SystemID      string
	TimeCommitted DvDateTime
	ChangeType    DvCodedText
	Description   *DvText
	Committer     PartyProxy
	AttestedView  *DvMultimedia
	Proof         *string
	Items         []DvEHRURI
	Reason        TextValue
	IsPending     bool
}

func (Attestation) Kind() kind.Kind { return kind.Attestation }

func (v Attestation) Validate() error {
	c := validate(kind.Attestation)
	c.nonEmpty("system_id", v.SystemID)
	c.present("committer", !IsNil(v.Committer))
	c.present("reason", !IsNil(v.Reason))
	c.optNonEmpty("proof", v.Proof)
	return c.result()
}

type FeederAuditDetails struct {
	SystemID  string
	Location  *PartyIdentified
	Subject   PartyProxy
	Provider  *PartyIdentified
	Time      *DvDateTime
	VersionID *string
}

func (FeederAuditDetails) Kind() kind.Kind { return kind.FeederAuditDetails }

func (v FeederAuditDetails) Validate() error {
	c := validate(kind.FeederAuditDetails)
	c.nonEmpty("system_id", v.SystemID)
	c.optNonEmpty("version_id", v.VersionID)
	return c.result()
}

type FeederAudit struct {
	OriginatingSystemItemIDs []DvIdentifier
	FeederSystemItemIDs      []DvIdentifier
	OriginalContent          Encapsulated
	OriginatingSystemAudit   FeederAuditDetails
	FeederSystemAudit        *FeederAuditDetails
}

func (FeederAudit) Kind() kind.Kind { return kind.FeederAudit }
func (FeederAudit) Validate() error { return nil }

// Contribution groups the versions committed in one change set.
type Contribution struct {
	UID      HierObjectID
	Versions []ObjectRef
	Audit    AuditDetails
}

func (Contribution) Kind() kind.Kind { return kind.Contribution }

func (v Contribution) Validate() error {
	c := validate(kind.Contribution)
	c.filled("versions", len(v.Versions))
	return c.result()
}

type Folder struct {
	Locatable
	Items   []ObjectRef
	Folders []Folder
}

func (Folder) Kind() kind.Kind { return kind.Folder }

func (v Folder) Validate() error {
	c := validate(kind.Folder)
	v.checkLocatable(c)
	return c.result()
}
