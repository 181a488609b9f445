package record

import (
	"github.com/rawbytedev/rmcodec/pkg/field"
	"github.com/rawbytedev/rmcodec/pkg/rm"
)

var terminologyID = define(
	value("value", field.String, func(v *rm.TerminologyID) *string { return &v.Value }),
)

var isoOID = define(
	value("value", field.String, func(v *rm.ISOOID) *string { return &v.Value }),
)

var uuid = define(
	value("value", field.String, func(v *rm.UUID) *string { return &v.Value }),
)

var internetID = define(
	value("value", field.String, func(v *rm.InternetID) *string { return &v.Value }),
)

var hierObjectID = define(
	value("value", field.String, func(v *rm.HierObjectID) *string { return &v.Value }),
)

var objectVersionID = define(
	value("value", field.String, func(v *rm.ObjectVersionID) *string { return &v.Value }),
)

var archetypeID = define(
	value("value", field.String, func(v *rm.ArchetypeID) *string { return &v.Value }),
)

var templateID = define(
	value("value", field.String, func(v *rm.TemplateID) *string { return &v.Value }),
)

var genericID = define(
	value("value", field.String, func(v *rm.GenericID) *string { return &v.Value }),
	value("scheme", field.String, func(v *rm.GenericID) *string { return &v.Scheme }),
)

var objectRef = define(
	value("namespace", field.String, func(v *rm.ObjectRef) *string { return &v.Namespace }),
	value("type", field.String, func(v *rm.ObjectRef) *string { return &v.Type }),
	one("id", func(v *rm.ObjectRef) *rm.ObjectID { return &v.ID }),
)

var partyRef = define(
	value("namespace", field.String, func(v *rm.PartyRef) *string { return &v.Namespace }),
	value("type", field.String, func(v *rm.PartyRef) *string { return &v.Type }),
	one("id", func(v *rm.PartyRef) *rm.ObjectID { return &v.ID }),
)

var locatableRef = define(
	value("namespace", field.String, func(v *rm.LocatableRef) *string { return &v.Namespace }),
	value("type", field.String, func(v *rm.LocatableRef) *string { return &v.Type }),
	one("id", func(v *rm.LocatableRef) *rm.ObjectVersionID { return &v.ID }),
	value("path", optString, func(v *rm.LocatableRef) **string { return &v.Path }),
)
