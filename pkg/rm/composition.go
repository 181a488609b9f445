package rm

import "github.com/rawbytedev/rmcodec/pkg/kind"

// Entry is the header shared by clinical statements.
type Entry struct {
	Language            CodePhrase
	Encoding            CodePhrase
	Subject             PartyProxy
	Provider            PartyProxy
	OtherParticipations []Participation
	WorkflowID          *ObjectRef
}

func (e Entry) checkEntry(c *checker) {
	c.present("subject", !IsNil(e.Subject))
}

// CareEntry is the header shared by entries recorded during care.
type CareEntry struct {
	Protocol    ItemStructure
	GuidelineID *ObjectRef
}

type Composition struct {
	Locatable
	Language  CodePhrase
	Territory CodePhrase
	Category  DvCodedText
	Composer  PartyProxy
	Context   *EventContext
	Content   []ContentItem
}

func (Composition) Kind() kind.Kind { return kind.Composition }

func (v Composition) Validate() error {
	c := validate(kind.Composition)
	v.checkLocatable(c)
	c.present("composer", !IsNil(v.Composer))
	c.filled("content", len(v.Content))
	return c.result()
}

type EventContext struct {
	StartTime          DvDateTime
	EndTime            *DvDateTime
	Location           *string
	Setting            DvCodedText
	OtherContext       ItemStructure
	HealthCareFacility *PartyIdentified
	Participations     []Participation
}

func (EventContext) Kind() kind.Kind { return kind.EventContext }

func (v EventContext) Validate() error {
	c := validate(kind.EventContext)
	c.optNonEmpty("location", v.Location)
	c.filled("participations", len(v.Participations))
	return c.result()
}

type Section struct {
	Locatable
	Items []ContentItem
}

func (Section) Kind() kind.Kind { return kind.Section }
func (Section) isContentItem()  {}

func (v Section) Validate() error { return locatable(kind.Section, v.Locatable) }

type Observation struct {
	Locatable
	Entry
	CareEntry
	Data  History
	State *History
}

func (Observation) Kind() kind.Kind { return kind.Observation }
func (Observation) isContentItem()  {}

func (v Observation) Validate() error {
	c := validate(kind.Observation)
	v.checkLocatable(c)
	v.checkEntry(c)
	return c.result()
}

type Evaluation struct {
	Locatable
	Entry
	CareEntry
	Data ItemStructure
}

func (Evaluation) Kind() kind.Kind { return kind.Evaluation }
func (Evaluation) isContentItem()  {}

func (v Evaluation) Validate() error {
	c := validate(kind.Evaluation)
	v.checkLocatable(c)
	v.checkEntry(c)
	c.present("data", !IsNil(v.Data))
	return c.result()
}

type Instruction struct {
	Locatable
	Entry
	CareEntry
	Narrative    DvText
	ExpiryTime   *DvDateTime
	WFDefinition *DvParsable
	Activities   []Activity
}

func (Instruction) Kind() kind.Kind { return kind.Instruction }
func (Instruction) isContentItem()  {}

func (v Instruction) Validate() error {
	c := validate(kind.Instruction)
	v.checkLocatable(c)
	v.checkEntry(c)
	return c.result()
}

type Activity struct {
	Locatable
	Description       ItemStructure
	Timing            *DvParsable
	ActionArchetypeID string
}

func (Activity) Kind() kind.Kind { return kind.Activity }

func (v Activity) Validate() error {
	c := validate(kind.Activity)
	v.checkLocatable(c)
	c.present("description", !IsNil(v.Description))
	c.nonEmpty("action_archetype_id", v.ActionArchetypeID)
	return c.result()
}

type Action struct {
	Locatable
	Entry
	CareEntry
	Time               DvDateTime
	Description        ItemStructure
	ISMTransition      ISMTransition
	InstructionDetails *InstructionDetails
}

func (Action) Kind() kind.Kind { return kind.Action }
func (Action) isContentItem()  {}

func (v Action) Validate() error {
	c := validate(kind.Action)
	v.checkLocatable(c)
	v.checkEntry(c)
	c.present("description", !IsNil(v.Description))
	return c.result()
}

type ISMTransition struct {
	CurrentState DvCodedText
	Transition   *DvCodedText
	CareflowStep *DvCodedText
	Reason       []DvText
}

func (ISMTransition) Kind() kind.Kind { return kind.ISMTransition }
func (ISMTransition) Validate() error { return nil }

type InstructionDetails struct {
	InstructionID LocatableRef
	ActivityID    string
	WFDetails     ItemStructure
}

func (InstructionDetails) Kind() kind.Kind { return kind.InstructionDetails }

func (v InstructionDetails) Validate() error {
	c := validate(kind.InstructionDetails)
	c.nonEmpty("activity_id", v.ActivityID)
	return c.result()
}

type AdminEntry struct {
	Locatable
	Entry
	Data ItemStructure
}

func (AdminEntry) Kind() kind.Kind { return kind.AdminEntry }
func (AdminEntry) isContentItem()  {}

func (v AdminEntry) Validate() error {
	c := validate(kind.AdminEntry)
	v.checkLocatable(c)
	v.checkEntry(c)
	c.present("data", !IsNil(v.Data))
	return c.result()
}
