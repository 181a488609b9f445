package rm

import (
	"strings"

	"github.com/rawbytedev/rmcodec/pkg/kind"
)

type TerminologyID struct {
	Value string
}

func (TerminologyID) Kind() kind.Kind { return kind.TerminologyID }
func (TerminologyID) isObjectID()     {}

func (v TerminologyID) Validate() error { return identifier(kind.TerminologyID, v.Value) }

// ISOOID is a dotted numeric object identifier such as 1.2.840.113556.
type ISOOID struct {
	Value string
}

func (ISOOID) Kind() kind.Kind { return kind.ISOOID }

func (v ISOOID) Validate() error {
	c := validate(kind.ISOOID)
	c.nonEmpty("value", v.Value)
	c.valid("value", v.Value == "" || isOID(v.Value))
	return c.result()
}

type UUID struct {
	Value string
}

func (UUID) Kind() kind.Kind { return kind.UUID }

func (v UUID) Validate() error {
	c := validate(kind.UUID)
	c.nonEmpty("value", v.Value)
	c.valid("value", v.Value == "" || isUUID(v.Value))
	return c.result()
}

// InternetID is a reverse domain name.
type InternetID struct {
	Value string
}

func (InternetID) Kind() kind.Kind { return kind.InternetID }

func (v InternetID) Validate() error { return identifier(kind.InternetID, v.Value) }

type HierObjectID struct {
	Value string
}

func (HierObjectID) Kind() kind.Kind { return kind.HierObjectID }
func (HierObjectID) isObjectID()     {}
func (HierObjectID) isUIDBased()     {}

func (v HierObjectID) Validate() error { return identifier(kind.HierObjectID, v.Value) }

// ObjectVersionID has the form object_id::creating_system_id::version_tree_id.
type ObjectVersionID struct {
	Value string
}

func (ObjectVersionID) Kind() kind.Kind { return kind.ObjectVersionID }
func (ObjectVersionID) isObjectID()     {}
func (ObjectVersionID) isUIDBased()     {}

func (v ObjectVersionID) Validate() error {
	c := validate(kind.ObjectVersionID)
	c.nonEmpty("value", v.Value)
	if v.Value != "" {
		parts := strings.Split(v.Value, "::")
		ok := len(parts) == 3
		for _, p := range parts {
			ok = ok && p != ""
		}
		c.valid("value", ok)
	}
	return c.result()
}

type ArchetypeID struct {
	Value string
}

func (ArchetypeID) Kind() kind.Kind { return kind.ArchetypeID }
func (ArchetypeID) isObjectID()     {}

func (v ArchetypeID) Validate() error { return identifier(kind.ArchetypeID, v.Value) }

type TemplateID struct {
	Value string
}

func (TemplateID) Kind() kind.Kind { return kind.TemplateID }
func (TemplateID) isObjectID()     {}

func (v TemplateID) Validate() error { return identifier(kind.TemplateID, v.Value) }

type GenericID struct {
	Value  string
	Scheme string
}

func (GenericID) Kind() kind.Kind { return kind.GenericID }
func (GenericID) isObjectID()     {}

func (v GenericID) Validate() error {
	c := validate(kind.GenericID)
	c.nonEmpty("value", v.Value)
	c.nonEmpty("scheme", v.Scheme)
	return c.result()
}

type ObjectRef struct {
	Namespace string
	Type      string
	ID        ObjectID
}

func (ObjectRef) Kind() kind.Kind { return kind.ObjectRef }

func (v ObjectRef) Validate() error {
	return reference(kind.ObjectRef, v.Namespace, v.Type, !IsNil(v.ID))
}

type PartyRef struct {
	Namespace string
	Type      string
	ID        ObjectID
}

func (PartyRef) Kind() kind.Kind { return kind.PartyRef }

func (v PartyRef) Validate() error {
	return reference(kind.PartyRef, v.Namespace, v.Type, !IsNil(v.ID))
}

// LocatableRef points at a node inside a versioned object.
type LocatableRef struct {
	Namespace string
	Type      string
	ID        ObjectVersionID
	Path      *string
}

func (LocatableRef) Kind() kind.Kind { return kind.LocatableRef }

func (v LocatableRef) Validate() error {
	if err := reference(kind.LocatableRef, v.Namespace, v.Type, true); err != nil {
		return err
	}
	c := validate(kind.LocatableRef)
	c.optNonEmpty("path", v.Path)
	return c.result()
}

func identifier(k kind.Kind, value string) error {
	c := validate(k)
	c.nonEmpty("value", value)
	return c.result()
}

func reference(k kind.Kind, namespace, typ string, hasID bool) error {
	c := validate(k)
	c.nonEmpty("namespace", namespace)
	c.nonEmpty("type", typ)
	c.present("id", hasID)
	return c.result()
}

func isOID(s string) bool {
	for _, arc := range strings.Split(s, ".") {
		if arc == "" {
			return false
		}
		for i := 0; i < len(arc); i++ {
			if arc[i] < '0' || arc[i] > '9' {
				return false
			}
		}
	}
	return true
}

func isUUID(s string) bool {
	if len(s) != 36 {
		return false
	}
	for i := 0; i < len(s); i++ {
		switch i {
		case 8, 13, 18, 23:
			if s[i] != '-' {
				return false
			}
		default:
			if !strings.ContainsRune("0123456789abcdefABCDEF", rune(s[i])) {
				return false
			}
		}
	}
	return true
}
