package domain

import "fmt"

// Year bounds used for the minimum and maximum keywords of rule lines.
const (
	MinYear = 1
	MaxYear = 9999
)

// YearType restricts a rule to a subset of the years in its range.
type YearType uint8

const (
	YearAny YearType = iota
	YearEven
	YearOdd
	YearUSPresidential
	YearNonPresidential
	YearNonUSPresidential
)

var yearTypeNames = map[YearType]string{
	YearAny:               "-",
	YearEven:              "even",
	YearOdd:               "odd",
	YearUSPresidential:    "uspres",
	YearNonPresidential:   "nonpres",
	YearNonUSPresidential: "nonuspres",
}

func (t YearType) String() string {
	if s, ok := yearTypeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("YearType(%d)", uint8(t))
}

// ParseYearType maps the TYPE field of a rule line.
func ParseYearType(s string) (YearType, bool) {
	if s == "" {
		return YearAny, true
	}
	for t, name := range yearTypeNames {
		if name == s {
			return t, true
		}
	}
	return YearAny, false
}

// IsYearType reports whether year satisfies the filter.
func IsYearType(year int, t YearType) bool {
	switch t {
	case YearAny:
		return true
	case YearEven:
		return year%2 == 0
	case YearOdd:
		return year%2 == 1
	case YearUSPresidential:
		return year%4 == 0
	case YearNonPresidential, YearNonUSPresidential:
		return year%4 != 0
	}
	return false
}
