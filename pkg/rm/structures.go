package rm

import "github.com/rawbytedev/rmcodec/pkg/kind"

// Element is a leaf of an item structure. It holds either a value or the
// reason the value is missing.
type Element struct {
	Locatable
	Value       DataValue
	NullFlavour *DvCodedText
	NullReason  *DvText
}

func (Element) Kind() kind.Kind { return kind.Element }
func (Element) isItem()         {}

func (v Element) Validate() error {
	c := validate(kind.Element)
	v.checkLocatable(c)
	c.consistent("null_flavour", IsNil(v.Value) != (v.NullFlavour == nil))
	c.consistent("null_reason", v.NullReason == nil || v.NullFlavour != nil)
	return c.result()
}

type Cluster struct {
	Locatable
	Items []Item
}

func (Cluster) Kind() kind.Kind { return kind.Cluster }
func (Cluster) isItem()         {}

func (v Cluster) Validate() error {
	c := validate(kind.Cluster)
	v.checkLocatable(c)
	c.filled("items", len(v.Items))
	return c.result()
}

type ItemSingle struct {
	Locatable
	Item Element
}

func (ItemSingle) Kind() kind.Kind  { return kind.ItemSingle }
func (ItemSingle) isItemStructure() {}

func (v ItemSingle) Validate() error { return locatable(kind.ItemSingle, v.Locatable) }

type ItemList struct {
	Locatable
	Items []Element
}

func (ItemList) Kind() kind.Kind  { return kind.ItemList }
func (ItemList) isItemStructure() {}

func (v ItemList) Validate() error { return locatable(kind.ItemList, v.Locatable) }

// ItemTable holds one cluster per row.
type ItemTable struct {
	Locatable
	Rows []Cluster
}

func (ItemTable) Kind() kind.Kind  { return kind.ItemTable }
func (ItemTable) isItemStructure() {}

func (v ItemTable) Validate() error { return locatable(kind.ItemTable, v.Locatable) }

type ItemTree struct {
	Locatable
	Items []Item
}

func (ItemTree) Kind() kind.Kind  { return kind.ItemTree }
func (ItemTree) isItemStructure() {}

func (v ItemTree) Validate() error { return locatable(kind.ItemTree, v.Locatable) }

type History struct {
	Locatable
	Origin   DvDateTime
	Period   *DvDuration
	Duration *DvDuration
	Events   []Event
	Summary  ItemStructure
}

func (History) Kind() kind.Kind { return kind.History }

func (v History) Validate() error {
	c := validate(kind.History)
	v.checkLocatable(c)
	c.present("events", len(v.Events) > 0 || !IsNil(v.Summary))
	return c.result()
}

type PointEvent struct {
	Locatable
	Time  DvDateTime
	Data  ItemStructure
	State ItemStructure
}

func (PointEvent) Kind() kind.Kind { return kind.PointEvent }
func (PointEvent) isEvent()        {}

func (v PointEvent) Validate() error {
	c := validate(kind.PointEvent)
	v.checkLocatable(c)
	c.present("data", !IsNil(v.Data))
	return c.result()
}

type IntervalEvent struct {
	Locatable
	Time         DvDateTime
	Data         ItemStructure
	State        ItemStructure
	Width        DvDuration
	SampleCount  *int32
	MathFunction DvCodedText
}

func (IntervalEvent) Kind() kind.Kind { return kind.IntervalEvent }
func (IntervalEvent) isEvent()        {}

func (v IntervalEvent) Validate() error {
	c := validate(kind.IntervalEvent)
	v.checkLocatable(c)
	c.present("data", !IsNil(v.Data))
	c.valid("sample_count", v.SampleCount == nil || *v.SampleCount >= 0)
	return c.result()
}

func locatable(k kind.Kind, l Locatable) error {
	c := validate(k)
	l.checkLocatable(c)
	return c.result()
}
