package domain

import (
	"fmt"
	"time"
)

// BindingKind tells how a zone segment obtains its daylight saving.
type BindingKind uint8

const (
	// BindingNone ("-") means standard time always applies: save is zero by definition.
	BindingNone BindingKind = iota
	// BindingFixed is a literal amount of saving, such as "1:00".
	BindingFixed
	// BindingNamed refers to a ruleset of the Rules repository.
	BindingNamed
)

// RuleBinding is the RULES column of a zone line once resolved.
type RuleBinding struct {
	Kind   BindingKind
	Offset time.Duration // BindingFixed only
	Name   string        // BindingNamed only
}

func NoRules() RuleBinding { return RuleBinding{Kind: BindingNone} }

func FixedRules(save time.Duration) RuleBinding {
	return RuleBinding{Kind: BindingFixed, Offset: save}
}

func NamedRules(name string) RuleBinding {
	return RuleBinding{Kind: BindingNamed, Name: name}
}

func (b RuleBinding) String() string {
	switch b.Kind {
	case BindingFixed:
		return FormatOffset(b.Offset)
	case BindingNamed:
		return b.Name
	default:
		return "-"
	}
}

// FormatOffset renders d as a signed HH:MM offset, with seconds when present.
func FormatOffset(d time.Duration) string {
	sign := "+"
	if d < 0 {
		sign = "-"
		d = -d
	}
	h := int(d / time.Hour)
	m := int(d % time.Hour / time.Minute)
	s := int(d % time.Minute / time.Second)
	if s != 0 {
		return fmt.Sprintf("%s%02d:%02d:%02d", sign, h, m, s)
	}
	return fmt.Sprintf("%s%02d:%02d", sign, h, m)
}
