package tzparse

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/aalvaropc/zoneinfo/internal/domain"
)

var errBadTime = errors.New("invalid time of day")

// ParseHMS reads [-]H[:MM[:SS]]. A lone "-" is zero.
func ParseHMS(s string) (time.Duration, error) {
	if s == "-" {
		return 0, nil
	}
	if s == "" {
		return 0, errBadTime
	}

	neg := false
	if s[0] == '-' {
		neg = true
		s = s[1:]
	}

	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return 0, errBadTime
	}
	units := []time.Duration{time.Hour, time.Minute, time.Second}

	var d time.Duration
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 || p == "" || p[0] == '+' {
			return 0, errBadTime
		}
		if i > 0 && n > 59 {
			return 0, errBadTime
		}
		d += time.Duration(n) * units[i]
	}
	if neg {
		d = -d
	}
	return d, nil
}

// parseAt reads a time of day with its optional reference suffix.
func parseAt(s string) (time.Duration, domain.TimeReference, error) {
	ref := domain.RefWall
	if n := len(s); n > 1 {
		switch s[n-1] {
		case 'w':
			s = s[:n-1]
		case 's':
			ref = domain.RefStandard
			s = s[:n-1]
		case 'u', 'g', 'z':
			ref = domain.RefUniversal
			s = s[:n-1]
		}
	}
	d, err := ParseHMS(s)
	return d, ref, err
}
