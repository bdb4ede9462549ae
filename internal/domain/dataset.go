package domain

// Dataset is everything read from a record source, before zones are assembled.
type Dataset struct {
	Rules     Rules
	Zones     []*Zone
	Links     []Link
	Countries []Country
	ZoneInfos []ZoneInfo
	Windows   []WindowsMapping
}

// NewDataset returns an empty dataset ready for merging.
func NewDataset() Dataset {
	return Dataset{Rules: Rules{}}
}

// Merge appends the records of o to d. Rulesets spread over several files are joined.
func (d *Dataset) Merge(o Dataset) {
	if d.Rules == nil {
		d.Rules = Rules{}
	}
	for name, list := range o.Rules {
		d.Rules[name] = append(d.Rules[name], list...)
	}
	d.Zones = append(d.Zones, o.Zones...)
	d.Links = append(d.Links, o.Links...)
	d.Countries = append(d.Countries, o.Countries...)
	d.ZoneInfos = append(d.ZoneInfos, o.ZoneInfos...)
	d.Windows = append(d.Windows, o.Windows...)
}
