package record

import "github.com/rawbytedev/rmcodec/pkg/rm"

var element = define(locatable(func(v *rm.Element) *rm.Locatable { return &v.Locatable },
	optAny("value", func(v *rm.Element) *rm.DataValue { return &v.Value }),
	opt("null_flavour", func(v *rm.Element) **rm.DvCodedText { return &v.NullFlavour }),
	opt("null_reason", func(v *rm.Element) **rm.DvText { return &v.NullReason }),
)...)

var cluster = define(locatable(func(v *rm.Cluster) *rm.Locatable { return &v.Locatable },
	many("items", func(v *rm.Cluster) *[]rm.Item { return &v.Items }),
)...)

var itemSingle = define(locatable(func(v *rm.ItemSingle) *rm.Locatable { return &v.Locatable },
	one("item", func(v *rm.ItemSingle) *rm.Element { return &v.Item }),
)...)

var itemList = define(locatable(func(v *rm.ItemList) *rm.Locatable { return &v.Locatable },
	many("items", func(v *rm.ItemList) *[]rm.Element { return &v.Items }),
)...)

var itemTable = define(locatable(func(v *rm.ItemTable) *rm.Locatable { return &v.Locatable },
	many("rows", func(v *rm.ItemTable) *[]rm.Cluster { return &v.Rows }),
)...)

var itemTree = define(locatable(func(v *rm.ItemTree) *rm.Locatable { return &v.Locatable },
	many("items", func(v *rm.ItemTree) *[]rm.Item { return &v.Items }),
)...)

var history = define(locatable(func(v *rm.History) *rm.Locatable { return &v.Locatable },
	one("origin", func(v *rm.History) *rm.DvDateTime { return &v.Origin }),
	opt("period", func(v *rm.History) **rm.DvDuration { return &v.Period }),
	opt("duration", func(v *rm.History) **rm.DvDuration { return &v.Duration }),
	many("events", func(v *rm.History) *[]rm.Event { return &v.Events }),
	optAny("summary", func(v *rm.History) *rm.ItemStructure { return &v.Summary }),
)...)

var pointEvent = define(locatable(func(v *rm.PointEvent) *rm.Locatable { return &v.Locatable },
	one("time", func(v *rm.PointEvent) *rm.DvDateTime { return &v.Time }),
	one("data", func(v *rm.PointEvent) *rm.ItemStructure { return &v.Data }),
	optAny("state", func(v *rm.PointEvent) *rm.ItemStructure { return &v.State }),
)...)

var intervalEvent = define(locatable(func(v *rm.IntervalEvent) *rm.Locatable { return &v.Locatable },
	one("time", func(v *rm.IntervalEvent) *rm.DvDateTime { return &v.Time }),
	one("data", func(v *rm.IntervalEvent) *rm.ItemStructure { return &v.Data }),
	optAny("state", func(v *rm.IntervalEvent) *rm.ItemStructure { return &v.State }),
	one("width", func(v *rm.IntervalEvent) *rm.DvDuration { return &v.Width }),
	value("sample_count", optInt32, func(v *rm.IntervalEvent) **int32 { return &v.SampleCount }),
	one("math_function", func(v *rm.IntervalEvent) *rm.DvCodedText { return &v.MathFunction }),
)...)
