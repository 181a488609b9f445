package rmcodec

import (
	"github.com/rawbytedev/rmcodec/pkg/control"
	"github.com/rawbytedev/rmcodec/pkg/rm"
)

// Typed entry points, one pair per record kind. SerializeX writes a value and
// returns its handle; DeserializeX reads back the most recently written X.

func (c *Codec) SerializeDvBoolean(v rm.DvBoolean) (control.Handle, error) { return c.Serialize(v) }
func (c *Codec) DeserializeDvBoolean() (rm.DvBoolean, error)               { return Deserialize[rm.DvBoolean](c) }

func (c *Codec) SerializeDvIdentifier(v rm.DvIdentifier) (control.Handle, error) {
	return c.Serialize(v)
}
func (c *Codec) DeserializeDvIdentifier() (rm.DvIdentifier, error) {
	return Deserialize[rm.DvIdentifier](c)
}

func (c *Codec) SerializeDvURI(v rm.DvURI) (control.Handle, error) { return c.Serialize(v) }
func (c *Codec) DeserializeDvURI() (rm.DvURI, error)               { return Deserialize[rm.DvURI](c) }

func (c *Codec) SerializeDvEHRURI(v rm.DvEHRURI) (control.Handle, error) { return c.Serialize(v) }
func (c *Codec) DeserializeDvEHRURI() (rm.DvEHRURI, error)               { return Deserialize[rm.DvEHRURI](c) }

func (c *Codec) SerializeCodePhrase(v rm.CodePhrase) (control.Handle, error) { return c.Serialize(v) }
func (c *Codec) DeserializeCodePhrase() (rm.CodePhrase, error)               { return Deserialize[rm.CodePhrase](c) }

func (c *Codec) SerializeDvText(v rm.DvText) (control.Handle, error) { return c.Serialize(v) }
func (c *Codec) DeserializeDvText() (rm.DvText, error)               { return Deserialize[rm.DvText](c) }

func (c *Codec) SerializeDvCodedText(v rm.DvCodedText) (control.Handle, error) { return c.Serialize(v) }
func (c *Codec) DeserializeDvCodedText() (rm.DvCodedText, error) {
	return Deserialize[rm.DvCodedText](c)
}

func (c *Codec) SerializeTermMapping(v rm.TermMapping) (control.Handle, error) { return c.Serialize(v) }
func (c *Codec) DeserializeTermMapping() (rm.TermMapping, error) {
	return Deserialize[rm.TermMapping](c)
}

func (c *Codec) SerializeDvParagraph(v rm.DvParagraph) (control.Handle, error) { return c.Serialize(v) }
func (c *Codec) DeserializeDvParagraph() (rm.DvParagraph, error) {
	return Deserialize[rm.DvParagraph](c)
}

func (c *Codec) SerializeDvDate(v rm.DvDate) (control.Handle, error) { return c.Serialize(v) }
func (c *Codec) DeserializeDvDate() (rm.DvDate, error)               { return Deserialize[rm.DvDate](c) }

func (c *Codec) SerializeDvTime(v rm.DvTime) (control.Handle, error) { return c.Serialize(v) }
func (c *Codec) DeserializeDvTime() (rm.DvTime, error)               { return Deserialize[rm.DvTime](c) }

func (c *Codec) SerializeDvDateTime(v rm.DvDateTime) (control.Handle, error) { return c.Serialize(v) }
func (c *Codec) DeserializeDvDateTime() (rm.DvDateTime, error)               { return Deserialize[rm.DvDateTime](c) }

func (c *Codec) SerializeDvDuration(v rm.DvDuration) (control.Handle, error) { return c.Serialize(v) }
func (c *Codec) DeserializeDvDuration() (rm.DvDuration, error)               { return Deserialize[rm.DvDuration](c) }

func (c *Codec) SerializeDvQuantity(v rm.DvQuantity) (control.Handle, error) { return c.Serialize(v) }
func (c *Codec) DeserializeDvQuantity() (rm.DvQuantity, error)               { return Deserialize[rm.DvQuantity](c) }

func (c *Codec) SerializeDvCount(v rm.DvCount) (control.Handle, error) { return c.Serialize(v) }
func (c *Codec) DeserializeDvCount() (rm.DvCount, error)               { return Deserialize[rm.DvCount](c) }

func (c *Codec) SerializeDvProportion(v rm.DvProportion) (control.Handle, error) {
	return c.Serialize(v)
}
func (c *Codec) DeserializeDvProportion() (rm.DvProportion, error) {
	return Deserialize[rm.DvProportion](c)
}

func (c *Codec) SerializeDvOrdinal(v rm.DvOrdinal) (control.Handle, error) { return c.Serialize(v) }
func (c *Codec) DeserializeDvOrdinal() (rm.DvOrdinal, error)               { return Deserialize[rm.DvOrdinal](c) }

func (c *Codec) SerializeDvInterval(v rm.DvInterval) (control.Handle, error) { return c.Serialize(v) }
func (c *Codec) DeserializeDvInterval() (rm.DvInterval, error)               { return Deserialize[rm.DvInterval](c) }

func (c *Codec) SerializeDvState(v rm.DvState) (control.Handle, error) { return c.Serialize(v) }
func (c *Codec) DeserializeDvState() (rm.DvState, error)               { return Deserialize[rm.DvState](c) }

func (c *Codec) SerializeDvParsable(v rm.DvParsable) (control.Handle, error) { return c.Serialize(v) }
func (c *Codec) DeserializeDvParsable() (rm.DvParsable, error)               { return Deserialize[rm.DvParsable](c) }

func (c *Codec) SerializeDvMultimedia(v rm.DvMultimedia) (control.Handle, error) {
	return c.Serialize(v)
}
func (c *Codec) DeserializeDvMultimedia() (rm.DvMultimedia, error) {
	return Deserialize[rm.DvMultimedia](c)
}

func (c *Codec) SerializeTerminologyID(v rm.TerminologyID) (control.Handle, error) {
	return c.Serialize(v)
}
func (c *Codec) DeserializeTerminologyID() (rm.TerminologyID, error) {
	return Deserialize[rm.TerminologyID](c)
}

func (c *Codec) SerializeISOOID(v rm.ISOOID) (control.Handle, error) { return c.Serialize(v) }
func (c *Codec) DeserializeISOOID() (rm.ISOOID, error)               { return Deserialize[rm.ISOOID](c) }

func (c *Codec) SerializeUUID(v rm.UUID) (control.Handle, error) { return c.Serialize(v) }
func (c *Codec) DeserializeUUID() (rm.UUID, error)               { return Deserialize[rm.UUID](c) }

func (c *Codec) SerializeInternetID(v rm.InternetID) (control.Handle, error) { return c.Serialize(v) }
func (c *Codec) DeserializeInternetID() (rm.InternetID, error)               { return Deserialize[rm.InternetID](c) }

func (c *Codec) SerializeHierObjectID(v rm.HierObjectID) (control.Handle, error) {
	return c.Serialize(v)
}
func (c *Codec) DeserializeHierObjectID() (rm.HierObjectID, error) {
	return Deserialize[rm.HierObjectID](c)
}

func (c *Codec) SerializeObjectVersionID(v rm.ObjectVersionID) (control.Handle, error) {
	return c.Serialize(v)
}
func (c *Codec) DeserializeObjectVersionID() (rm.ObjectVersionID, error) {
	return Deserialize[rm.ObjectVersionID](c)
}

func (c *Codec) SerializeArchetypeID(v rm.ArchetypeID) (control.Handle, error) { return c.Serialize(v) }
func (c *Codec) DeserializeArchetypeID() (rm.ArchetypeID, error) {
	return Deserialize[rm.ArchetypeID](c)
}

func (c *Codec) SerializeTemplateID(v rm.TemplateID) (control.Handle, error) { return c.Serialize(v) }
func (c *Codec) DeserializeTemplateID() (rm.TemplateID, error)               { return Deserialize[rm.TemplateID](c) }

func (c *Codec) SerializeGenericID(v rm.GenericID) (control.Handle, error) { return c.Serialize(v) }
func (c *Codec) DeserializeGenericID() (rm.GenericID, error)               { return Deserialize[rm.GenericID](c) }

func (c *Codec) SerializeObjectRef(v rm.ObjectRef) (control.Handle, error) { return c.Serialize(v) }
func (c *Codec) DeserializeObjectRef() (rm.ObjectRef, error)               { return Deserialize[rm.ObjectRef](c) }

func (c *Codec) SerializePartyRef(v rm.PartyRef) (control.Handle, error) { return c.Serialize(v) }
func (c *Codec) DeserializePartyRef() (rm.PartyRef, error)               { return Deserialize[rm.PartyRef](c) }

func (c *Codec) SerializeLocatableRef(v rm.LocatableRef) (control.Handle, error) {
	return c.Serialize(v)
}
func (c *Codec) DeserializeLocatableRef() (rm.LocatableRef, error) {
	return Deserialize[rm.LocatableRef](c)
}

func (c *Codec) SerializeArchetyped(v rm.Archetyped) (control.Handle, error) { return c.Serialize(v) }
func (c *Codec) DeserializeArchetyped() (rm.Archetyped, error)               { return Deserialize[rm.Archetyped](c) }

func (c *Codec) SerializeLink(v rm.Link) (control.Handle, error) { return c.Serialize(v) }
func (c *Codec) DeserializeLink() (rm.Link, error)               { return Deserialize[rm.Link](c) }

func (c *Codec) SerializePartySelf(v rm.PartySelf) (control.Handle, error) { return c.Serialize(v) }
func (c *Codec) DeserializePartySelf() (rm.PartySelf, error)               { return Deserialize[rm.PartySelf](c) }

func (c *Codec) SerializePartyIdentified(v rm.PartyIdentified) (control.Handle, error) {
	return c.Serialize(v)
}
func (c *Codec) DeserializePartyIdentified() (rm.PartyIdentified, error) {
	return Deserialize[rm.PartyIdentified](c)
}

func (c *Codec) SerializePartyRelated(v rm.PartyRelated) (control.Handle, error) {
	return c.Serialize(v)
}
func (c *Codec) DeserializePartyRelated() (rm.PartyRelated, error) {
	return Deserialize[rm.PartyRelated](c)
}

func (c *Codec) SerializeParticipation(v rm.Participation) (control.Handle, error) {
	return c.Serialize(v)
}
func (c *Codec) DeserializeParticipation() (rm.Participation, error) {
	return Deserialize[rm.Participation](c)
}

func (c *Codec) SerializeAuditDetails(v rm.AuditDetails) (control.Handle, error) {
	return c.Serialize(v)
}
func (c *Codec) DeserializeAuditDetails() (rm.AuditDetails, error) {
	return Deserialize[rm.AuditDetails](c)
}

func (c *Codec) SerializeAttestation(v rm.Attestation) (control.Handle, error) { return c.Serialize(v) }
func (c *Codec) DeserializeAttestation() (rm.Attestation, error) {
	return Deserialize[rm.Attestation](c)
}

func (c *Codec) SerializeFeederAuditDetails(v rm.FeederAuditDetails) (control.Handle, error) {
	return c.Serialize(v)
}
func (c *Codec) DeserializeFeederAuditDetails() (rm.FeederAuditDetails, error) {
	return Deserialize[rm.FeederAuditDetails](c)
}

func (c *Codec) SerializeFeederAudit(v rm.FeederAudit) (control.Handle, error) { return c.Serialize(v) }
func (c *Codec) DeserializeFeederAudit() (rm.FeederAudit, error) {
	return Deserialize[rm.FeederAudit](c)
}

func (c *Codec) SerializeContribution(v rm.Contribution) (control.Handle, error) {
	return c.Serialize(v)
}
func (c *Codec) DeserializeContribution() (rm.Contribution, error) {
	return Deserialize[rm.Contribution](c)
}

func (c *Codec) SerializeFolder(v rm.Folder) (control.Handle, error) { return c.Serialize(v) }
func (c *Codec) DeserializeFolder() (rm.Folder, error)               { return Deserialize[rm.Folder](c) }

func (c *Codec) SerializeElement(v rm.Element) (control.Handle, error) { return c.Serialize(v) }
func (c *Codec) DeserializeElement() (rm.Element, error)               { return Deserialize[rm.Element](c) }

func (c *Codec) SerializeCluster(v rm.Cluster) (control.Handle, error) { return c.Serialize(v) }
func (c *Codec) DeserializeCluster() (rm.Cluster, error)               { return Deserialize[rm.Cluster](c) }

func (c *Codec) SerializeItemSingle(v rm.ItemSingle) (control.Handle, error) { return c.Serialize(v) }
func (c *Codec) DeserializeItemSingle() (rm.ItemSingle, error)               { return Deserialize[rm.ItemSingle](c) }

func (c *Codec) SerializeItemList(v rm.ItemList) (control.Handle, error) { return c.Serialize(v) }
func (c *Codec) DeserializeItemList() (rm.ItemList, error)               { return Deserialize[rm.ItemList](c) }

func (c *Codec) SerializeItemTable(v rm.ItemTable) (control.Handle, error) { return c.Serialize(v) }
func (c *Codec) DeserializeItemTable() (rm.ItemTable, error)               { return Deserialize[rm.ItemTable](c) }

func (c *Codec) SerializeItemTree(v rm.ItemTree) (control.Handle, error) { return c.Serialize(v) }
func (c *Codec) DeserializeItemTree() (rm.ItemTree, error)               { return Deserialize[rm.ItemTree](c) }

func (c *Codec) SerializeHistory(v rm.History) (control.Handle, error) { return c.Serialize(v) }
func (c *Codec) DeserializeHistory() (rm.History, error)               { return Deserialize[rm.History](c) }

func (c *Codec) SerializePointEvent(v rm.PointEvent) (control.Handle, error) { return c.Serialize(v) }
func (c *Codec) DeserializePointEvent() (rm.PointEvent, error)               { return Deserialize[rm.PointEvent](c) }

func (c *Codec) SerializeIntervalEvent(v rm.IntervalEvent) (control.Handle, error) {
	return c.Serialize(v)
}
func (c *Codec) DeserializeIntervalEvent() (rm.IntervalEvent, error) {
	return Deserialize[rm.IntervalEvent](c)
}

func (c *Codec) SerializeComposition(v rm.Composition) (control.Handle, error) { return c.Serialize(v) }
func (c *Codec) DeserializeComposition() (rm.Composition, error) {
	return Deserialize[rm.Composition](c)
}

func (c *Codec) SerializeEventContext(v rm.EventContext) (control.Handle, error) {
	return c.Serialize(v)
}
func (c *Codec) DeserializeEventContext() (rm.EventContext, error) {
	return Deserialize[rm.EventContext](c)
}

func (c *Codec) SerializeSection(v rm.Section) (control.Handle, error) { return c.Serialize(v) }
func (c *Codec) DeserializeSection() (rm.Section, error)               { return Deserialize[rm.Section](c) }

func (c *Codec) SerializeObservation(v rm.Observation) (control.Handle, error) { return c.Serialize(v) }
func (c *Codec) DeserializeObservation() (rm.Observation, error) {
	return Deserialize[rm.Observation](c)
}

func (c *Codec) SerializeEvaluation(v rm.Evaluation) (control.Handle, error) { return c.Serialize(v) }
func (c *Codec) DeserializeEvaluation() (rm.Evaluation, error)               { return Deserialize[rm.Evaluation](c) }

func (c *Codec) SerializeInstruction(v rm.Instruction) (control.Handle, error) { return c.Serialize(v) }
func (c *Codec) DeserializeInstruction() (rm.Instruction, error) {
	return Deserialize[rm.Instruction](c)
}

func (c *Codec) SerializeActivity(v rm.Activity) (control.Handle, error) { return c.Serialize(v) }
func (c *Codec) DeserializeActivity() (rm.Activity, error)               { return Deserialize[rm.Activity](c) }

func (c *Codec) SerializeAction(v rm.Action) (control.Handle, error) { return c.Serialize(v) }
func (c *Codec) DeserializeAction() (rm.Action, error)               { return Deserialize[rm.Action](c) }

func (c *Codec) SerializeISMTransition(v rm.ISMTransition) (control.Handle, error) {
	return c.Serialize(v)
}
func (c *Codec) DeserializeISMTransition() (rm.ISMTransition, error) {
	return Deserialize[rm.ISMTransition](c)
}

func (c *Codec) SerializeInstructionDetails(v rm.InstructionDetails) (control.Handle, error) {
	return c.Serialize(v)
}
func (c *Codec) DeserializeInstructionDetails() (rm.InstructionDetails, error) {
	return Deserialize[rm.InstructionDetails](c)
}

func (c *Codec) SerializeAdminEntry(v rm.AdminEntry) (control.Handle, error) { return c.Serialize(v) }
func (c *Codec) DeserializeAdminEntry() (rm.AdminEntry, error)               { return Deserialize[rm.AdminEntry](c) }
