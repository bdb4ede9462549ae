package tzparse

import (
	"strconv"
	"strings"
	"time"

	"github.com/aalvaropc/zoneinfo/internal/domain"
)

var (
	monthNames = []string{
		"january", "february", "march", "april", "may", "june",
		"july", "august", "september", "october", "november", "december",
	}
	dayNames = []string{
		"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
	}
	lastDayNames = []string{
		"last-Sunday", "last-Monday", "last-Tuesday", "last-Wednesday",
		"last-Thursday", "last-Friday", "last-Saturday",
	}
	fromWords = []string{"minimum", "maximum"}
	toWords   = []string{"minimum", "maximum", "only"}

	// February counts 29 days so leap years validate.
	monthLengths = [12]int{31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
)

// pos locates a record for error reporting.
type pos struct {
	path string
	line int
}

func (p pos) fail(op, token, msg string) error {
	return domain.FormatError(op, p.path, p.line, token, msg)
}

// parseRule builds a rule from a line of exactly ten fields:
//
//	Rule NAME FROM TO TYPE IN ON AT SAVE LETTER/S
func parseRule(f []string, p pos) (*domain.RuleRecord, error) {
	const op = "tzparse.rule"
	if len(f) != 10 {
		return nil, p.fail(op, "", "wrong number of fields on Rule line")
	}

	r := &domain.RuleRecord{Name: f[1], Letter: f[9], File: p.path, Line: p.line}

	from, err := parseYear(f[2], fromWords, 0)
	if err != nil {
		return nil, p.fail(op, f[2], err.Error())
	}
	to, err := parseYear(f[3], toWords, from)
	if err != nil {
		return nil, p.fail(op, f[3], err.Error())
	}
	if from > to {
		return nil, p.fail(op, f[3], "starting year greater than ending year")
	}
	r.From, r.To = from, to

	yt, ok := domain.ParseYearType(f[4])
	if !ok {
		return nil, p.fail(op, f[4], "unknown year type")
	}
	r.Type = yt

	rd, err := parseRuleDate(f[5], f[6], f[7], p, op)
	if err != nil {
		return nil, err
	}
	r.RuleDate = rd

	save, err := ParseHMS(f[8])
	if err != nil {
		return nil, p.fail(op, f[8], "invalid saved time")
	}
	r.Save = save

	return r, nil
}

// parseYear reads a year or a keyword of words. "only" resolves to only.
func parseYear(s string, words []string, only int) (int, error) {
	i, err := lookup(s, words)
	switch {
	case err == errAmbiguous:
		return 0, err
	case err == nil:
		switch words[i] {
		case "minimum":
			return domain.MinYear, nil
		case "maximum":
			return domain.MaxYear, nil
		default:
			return only, nil
		}
	}
	y, err := strconv.Atoi(s)
	if err != nil {
		return 0, errInvalidYear
	}
	return y, nil
}

// parseRuleDate reads the IN ON AT columns of a rule, or MONTH DAY TIME of an UNTIL.
func parseRuleDate(month, day, at string, p pos, op string) (domain.RuleDate, error) {
	var rd domain.RuleDate

	m, err := lookup(month, monthNames)
	if err != nil {
		return rd, p.fail(op, month, "invalid month name")
	}
	rd.Month = time.Month(m + 1)

	rd.At, rd.AtRef, err = parseAt(at)
	if err != nil {
		return rd, p.fail(op, at, "invalid time of day")
	}

	rd.Day, err = parseDay(day, rd.Month)
	if err != nil {
		return rd, p.fail(op, day, err.Error())
	}
	return rd, nil
}

// parseDay reads 5, lastSun, Sun>=8 or Sun<=25.
func parseDay(s string, month time.Month) (domain.DayOfRule, error) {
	if i, err := lookup(s, lastDayNames); err == nil {
		return domain.DayOfRule{Kind: domain.WeekdayOnOrBefore, Weekday: time.Weekday(i), Day: domain.LastDay}, nil
	}

	d := domain.DayOfRule{Kind: domain.DayOfMonth}
	num := s
	if i := strings.IndexAny(s, "<>"); i >= 0 {
		if i+1 >= len(s) || s[i+1] != '=' {
			return d, errInvalidDay
		}
		d.Kind = domain.WeekdayOnOrAfter
		if s[i] == '<' {
			d.Kind = domain.WeekdayOnOrBefore
		}
		wd, err := lookup(s[:i], dayNames)
		if err != nil {
			return d, errInvalidWeekday
		}
		d.Weekday = time.Weekday(wd)
		num = s[i+2:]
	}

	n, err := strconv.Atoi(num)
	if err != nil || n <= 0 || n > monthLengths[month-1] {
		return d, errInvalidDay
	}
	d.Day = n
	return d, nil
}

// parseZoneLine reads a zone head (continuation false) or continuation line into a
// segment. Head fields sit two positions to the right of continuation fields:
//
//	Zone NAME STDOFF RULES FORMAT [UNTIL]
//	          STDOFF RULES FORMAT [UNTIL]
//
// It reports whether the line carries an UNTIL, meaning a continuation follows.
func parseZoneLine(f []string, continuation bool, p pos) (domain.Segment, bool, error) {
	const op = "tzparse.zone"
	var seg domain.Segment

	shift := 2
	if continuation {
		shift = 0
		if len(f) < 3 || len(f) > 7 {
			return seg, false, p.fail(op, "", "wrong number of fields on zone continuation line")
		}
	} else if len(f) < 5 || len(f) > 9 {
		return seg, false, p.fail(op, "", "wrong number of fields on Zone line")
	}

	gmt, err := ParseHMS(f[shift])
	if err != nil {
		return seg, false, p.fail(op, f[shift], "invalid UT offset")
	}
	seg.GmtOffset = gmt
	seg.RuleName = f[shift+1]
	seg.Format = f[shift+2]

	if len(f) <= shift+3 {
		return seg, false, nil
	}

	year, err := strconv.Atoi(f[shift+3])
	if err != nil {
		return seg, false, p.fail(op, f[shift+3], errInvalidYear.Error())
	}
	month, day, at := "Jan", "1", "0"
	if len(f) > shift+4 {
		month = f[shift+4]
	}
	if len(f) > shift+5 {
		day = f[shift+5]
	}
	if len(f) > shift+6 {
		at = f[shift+6]
	}
	rd, err := parseRuleDate(month, day, at, p, op)
	if err != nil {
		return seg, false, err
	}
	seg.Until = &domain.Until{Year: year, RuleDate: rd}
	return seg, true, nil
}
