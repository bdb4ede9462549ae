package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/aalvaropc/zoneinfo/internal/domain"
)

var (
	layoutsWithOffset = []string{
		"2006-01-02T15:04:05.999999999Z07:00",
		"2006-01-02T15:04Z07:00",
	}
	layoutsNaive = []string{
		"2006-01-02T15:04:05.999999999",
		"2006-01-02T15:04",
		"2006-01-02",
	}
)

// ParseInstant reads an ISO 8601 date and time. A trailing Z or ±HH:MM yields a UTC
// instant, converted when an offset is given; without one the reading is a local
// wall clock. A space may replace the T.
func ParseInstant(s string) (domain.Instant, error) {
	const op = "usecase.parse_instant"
	in := strings.TrimSpace(s)
	if in == "" {
		return domain.Instant{}, domain.ConfigurationError(op, "empty time")
	}
	if len(in) > 10 && in[10] == ' ' {
		in = in[:10] + "T" + in[11:]
	}

	for _, layout := range layoutsWithOffset {
		if t, err := time.Parse(layout, in); err == nil {
			return domain.UTC(t), nil
		}
	}
	for _, layout := range layoutsNaive {
		if t, err := time.Parse(layout, in); err == nil {
			return domain.Local(t), nil
		}
	}
	return domain.Instant{}, &domain.OpError{Op: op, Kind: domain.KindFormat,
		Err: fmt.Errorf("cannot read %q as an ISO 8601 time", s)}
}
