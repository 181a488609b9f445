package record

import (
	"github.com/rawbytedev/rmcodec/pkg/field"
	"github.com/rawbytedev/rmcodec/pkg/rm"
)

var archetyped = define(
	one("archetype_id", func(v *rm.Archetyped) *rm.ArchetypeID { return &v.ArchetypeID }),
	opt("template_id", func(v *rm.Archetyped) **rm.TemplateID { return &v.TemplateID }),
	value("rm_version", field.String, func(v *rm.Archetyped) *string { return &v.RMVersion }),
)

var link = define(
	one("meaning", func(v *rm.Link) *rm.DvText { return &v.Meaning }),
	one("type", func(v *rm.Link) *rm.DvText { return &v.Type }),
	one("target", func(v *rm.Link) *rm.DvEHRURI { return &v.Target }),
)

var partySelf = define(
	opt("external_ref", func(v *rm.PartySelf) **rm.PartyRef { return &v.ExternalRef }),
)

var partyIdentified = define(
	opt("external_ref", func(v *rm.PartyIdentified) **rm.PartyRef { return &v.ExternalRef }),
	value("name", optString, func(v *rm.PartyIdentified) **string { return &v.Name }),
	many("identifiers", func(v *rm.PartyIdentified) *[]rm.DvIdentifier { return &v.Identifiers }),
)

var partyRelated = define(
	opt("external_ref", func(v *rm.PartyRelated) **rm.PartyRef { return &v.ExternalRef }),
	value("name", optString, func(v *rm.PartyRelated) **string { return &v.Name }),
	many("identifiers", func(v *rm.PartyRelated) *[]rm.DvIdentifier { return &v.Identifiers }),
	one("relationship", func(v *rm.PartyRelated) *rm.DvCodedText { return &v.Relationship }),
)

var participation = define(
	one("function", func(v *rm.Participation) *rm.TextValue { return &v.Function }),
	opt("mode", func(v *rm.Participation) **rm.DvCodedText { return &v.Mode }),
	one("performer", func(v *rm.Participation) *rm.PartyProxy { return &v.Performer }),
	opt("time", func(v *rm.Participation) **rm.DvInterval { return &v.Time }),
)

var auditDetails = define(
	value("system_id", field.String, func(v *rm.AuditDetails) *string { return &v.SystemID }),
	one("time_committed", func(v *rm.AuditDetails) *rm.DvDateTime { return &v.TimeCommitted }),
	one("change_type", func(v *rm.AuditDetails) *rm.DvCodedText { return &v.ChangeType }),
	opt("description", func(v *rm.AuditDetails) **rm.DvText { return &v.Description }),
	one("committer", func(v *rm.AuditDetails) *rm.PartyProxy { return &v.Committer }),
)

var attestation = define(
	value("system_id", field.String, func(v *rm.Attestation) *string { return &v.SystemID }),
	one("time_committed", func(v *rm.Attestation) *rm.DvDateTime { return &v.TimeCommitted }),
	one("change_type", func(v *rm.Attestation) *rm.DvCodedText { return &v.ChangeType }),
	opt("description", func(v *rm.Attestation) **rm.DvText { return &v.Description }),
	one("committer", func(v *rm.Attestation) *rm.PartyProxy { return &v.Committer }),
	opt("attested_view", func(v *rm.Attestation) **rm.DvMultimedia { return &v.AttestedView }),
	value("proof", optString, func(v *rm.Attestation) **string { return &v.Proof }),
	many("items", func(v *rm.Attestation) *[]rm.DvEHRURI { return &v.Items }),
	one("reason", func(v *rm.Attestation) *rm.TextValue { return &v.Reason }),
	value("is_pending", field.Bool, func(v *rm.Attestation) *bool { return &v.IsPending }),
)

var feederAuditDetails = define(
	value("system_id", field.String, func(v *rm.FeederAuditDetails) *string { return &v.SystemID }),
	opt("location", func(v *rm.FeederAuditDetails) **rm.PartyIdentified { return &v.Location }),
	optAny("subject", func(v *rm.FeederAuditDetails) *rm.PartyProxy { return &v.Subject }),
	opt("provider", func(v *rm.FeederAuditDetails) **rm.PartyIdentified { return &v.Provider }),
	opt("time", func(v *rm.FeederAuditDetails) **rm.DvDateTime { return &v.Time }),
	value("version_id", optString, func(v *rm.FeederAuditDetails) **string { return &v.VersionID }),
)

var feederAudit = define(
	many("originating_system_item_ids", func(v *rm.FeederAudit) *[]rm.DvIdentifier { return &v.OriginatingSystemItemIDs }),
	many("feeder_system_item_ids", func(v *rm.FeederAudit) *[]rm.DvIdentifier { return &v.FeederSystemItemIDs }),
	optAny("original_content", func(v *rm.FeederAudit) *rm.Encapsulated { return &v.OriginalContent }),
	one("originating_system_audit", func(v *rm.FeederAudit) *rm.FeederAuditDetails { return &v.OriginatingSystemAudit }),
	opt("feeder_system_audit", func(v *rm.FeederAudit) **rm.FeederAuditDetails { return &v.FeederSystemAudit }),
)

var contribution = define(
	one("uid", func(v *rm.Contribution) *rm.HierObjectID { return &v.UID }),
	many("versions", func(v *rm.Contribution) *[]rm.ObjectRef { return &v.Versions }),
	one("audit", func(v *rm.Contribution) *rm.AuditDetails { return &v.Audit }),
)

var folder = define(locatable(func(v *rm.Folder) *rm.Locatable { return &v.Locatable },
	many("items", func(v *rm.Folder) *[]rm.ObjectRef { return &v.Items }),
	many("folders", func(v *rm.Folder) *[]rm.Folder { return &v.Folders }),
)...)
