package record

import (
	"github.com/rawbytedev/rmcodec/pkg/field"
	"github.com/rawbytedev/rmcodec/pkg/rm"
)

var composition = define(locatable(func(v *rm.Composition) *rm.Locatable { return &v.Locatable },
	one("language", func(v *rm.Composition) *rm.CodePhrase { return &v.Language }),
	one("territory", func(v *rm.Composition) *rm.CodePhrase { return &v.Territory }),
	one("category", func(v *rm.Composition) *rm.DvCodedText { return &v.Category }),
	one("composer", func(v *rm.Composition) *rm.PartyProxy { return &v.Composer }),
	opt("context", func(v *rm.Composition) **rm.EventContext { return &v.Context }),
	many("content", func(v *rm.Composition) *[]rm.ContentItem { return &v.Content }),
)...)

var eventContext = define(
	one("start_time", func(v *rm.EventContext) *rm.DvDateTime { return &v.StartTime }),
	opt("end_time", func(v *rm.EventContext) **rm.DvDateTime { return &v.EndTime }),
	value("location", optString, func(v *rm.EventContext) **string { return &v.Location }),
	one("setting", func(v *rm.EventContext) *rm.DvCodedText { return &v.Setting }),
	optAny("other_context", func(v *rm.EventContext) *rm.ItemStructure { return &v.OtherContext }),
	opt("health_care_facility", func(v *rm.EventContext) **rm.PartyIdentified { return &v.HealthCareFacility }),
	many("participations", func(v *rm.EventContext) *[]rm.Participation { return &v.Participations }),
)

var section = define(locatable(func(v *rm.Section) *rm.Locatable { return &v.Locatable },
	many("items", func(v *rm.Section) *[]rm.ContentItem { return &v.Items }),
)...)

var observation = define(join(
	locatable(func(v *rm.Observation) *rm.Locatable { return &v.Locatable }),
	entry(func(v *rm.Observation) *rm.Entry { return &v.Entry }),
	care(func(v *rm.Observation) *rm.CareEntry { return &v.CareEntry }),
	[]fieldDesc[rm.Observation]{
		one("data", func(v *rm.Observation) *rm.History { return &v.Data }),
		opt("state", func(v *rm.Observation) **rm.History { return &v.State }),
	},
)...)

var evaluation = define(join(
	locatable(func(v *rm.Evaluation) *rm.Locatable { return &v.Locatable }),
	entry(func(v *rm.Evaluation) *rm.Entry { return &v.Entry }),
	care(func(v *rm.Evaluation) *rm.CareEntry { return &v.CareEntry }),
	[]fieldDesc[rm.Evaluation]{
		one("data", func(v *rm.Evaluation) *rm.ItemStructure { return &v.Data }),
	},
)...)

var instruction = define(join(
	locatable(func(v *rm.Instruction) *rm.Locatable { return &v.Locatable }),
	entry(func(v *rm.Instruction) *rm.Entry { return &v.Entry }),
	care(func(v *rm.Instruction) *rm.CareEntry { return &v.CareEntry }),
	[]fieldDesc[rm.Instruction]{
		one("narrative", func(v *rm.Instruction) *rm.DvText { return &v.Narrative }),
		opt("expiry_time", func(v *rm.Instruction) **rm.DvDateTime { return &v.ExpiryTime }),
		opt("wf_definition", func(v *rm.Instruction) **rm.DvParsable { return &v.WFDefinition }),
		many("activities", func(v *rm.Instruction) *[]rm.Activity { return &v.Activities }),
	},
)...)

var activity = define(locatable(func(v *rm.Activity) *rm.Locatable { return &v.Locatable },
	one("description", func(v *rm.Activity) *rm.ItemStructure { return &v.Description }),
	opt("timing", func(v *rm.Activity) **rm.DvParsable { return &v.Timing }),
	value("action_archetype_id", field.String, func(v *rm.Activity) *string { return &v.ActionArchetypeID }),
)...)

var action = define(join(
	locatable(func(v *rm.Action) *rm.Locatable { return &v.Locatable }),
	entry(func(v *rm.Action) *rm.Entry { return &v.Entry }),
	care(func(v *rm.Action) *rm.CareEntry { return &v.CareEntry }),
	[]fieldDesc[rm.Action]{
		one("time", func(v *rm.Action) *rm.DvDateTime { return &v.Time }),
		one("description", func(v *rm.Action) *rm.ItemStructure { return &v.Description }),
		one("ism_transition", func(v *rm.Action) *rm.ISMTransition { return &v.ISMTransition }),
		opt("instruction_details", func(v *rm.Action) **rm.InstructionDetails { return &v.InstructionDetails }),
	},
)...)

var ismTransition = define(
	one("current_state", func(v *rm.ISMTransition) *rm.DvCodedText { return &v.CurrentState }),
	opt("transition", func(v *rm.ISMTransition) **rm.DvCodedText { return &v.Transition }),
	opt("careflow_step", func(v *rm.ISMTransition) **rm.DvCodedText { return &v.CareflowStep }),
	many("reason", func(v *rm.ISMTransition) *[]rm.DvText { return &v.Reason }),
)

var instructionDetails = define(
	one("instruction_id", func(v *rm.InstructionDetails) *rm.LocatableRef { return &v.InstructionID }),
	value("activity_id", field.String, func(v *rm.InstructionDetails) *string { return &v.ActivityID }),
	optAny("wf_details", func(v *rm.InstructionDetails) *rm.ItemStructure { return &v.WFDetails }),
)

var adminEntry = define(join(
	locatable(func(v *rm.AdminEntry) *rm.Locatable { return &v.Locatable }),
	entry(func(v *rm.AdminEntry) *rm.Entry { return &v.Entry }),
	[]fieldDesc[rm.AdminEntry]{
		one("data", func(v *rm.AdminEntry) *rm.ItemStructure { return &v.Data }),
	},
)...)
