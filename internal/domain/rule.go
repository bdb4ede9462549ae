package domain

import "time"

// RuleRecord is one Rule line of the tz database.
//
//	Rule  NAME  FROM  TO    TYPE  IN   ON       AT    SAVE  LETTER/S
//	Rule  US    1967  1973  -     Apr  lastSun  2:00  1:00  D
type RuleRecord struct {
	Name string
	From int
	To   int
	Type YearType
	RuleDate

	// Save is added to local standard time while the rule is in effect.
	Save time.Duration
	// Letter is the variable part of the abbreviation; "-" stands for none.
	Letter string

	File string
	Line int
}

// Letters returns the abbreviation variable part, with "-" mapped to empty.
func (r *RuleRecord) Letters() string {
	if r == nil || r.Letter == "-" {
		return ""
	}
	return r.Letter
}

// Rules maps a ruleset name to its records in file order.
// Consumers must not rely on that order.
type Rules map[string][]*RuleRecord

// Add appends r to its ruleset.
func (rs Rules) Add(r *RuleRecord) {
	rs[r.Name] = append(rs[r.Name], r)
}

// Lookup returns the records of a ruleset.
func (rs Rules) Lookup(name string) ([]*RuleRecord, bool) {
	list, ok := rs[name]
	return list, ok
}
