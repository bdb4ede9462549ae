package usecase

import (
	"strings"

	"github.com/aalvaropc/zoneinfo/internal/domain"
	"github.com/aalvaropc/zoneinfo/internal/tzdb"
)

// UTCName selects universal time instead of a zone in conversions.
const UTCName = "UTC"

// Conversion is the outcome of converting one reading between two zones.
type Conversion struct {
	Input        string `json:"input" yaml:"input"`
	From         string `json:"from" yaml:"from"`
	To           string `json:"to" yaml:"to"`
	UTC          string `json:"utc" yaml:"utc"`
	Result       string `json:"result" yaml:"result"`
	Abbreviation string `json:"abbreviation" yaml:"abbreviation"`
	Offset       string `json:"offset" yaml:"offset"`
	UnixSeconds  int64  `json:"unix_seconds" yaml:"unix_seconds"`
}

type Convert struct {
	db       *tzdb.Database
	optimize bool
}

func NewConvert(db *tzdb.Database, optimize bool) *Convert {
	return &Convert{db: db, optimize: optimize}
}

// Execute reads input with ParseInstant. A reading without offset is taken in from;
// the result is the wall clock of to, or UTC.
func (uc *Convert) Execute(from, to, input string) (Conversion, error) {
	const op = "usecase.convert"
	from, to = strings.TrimSpace(from), strings.TrimSpace(to)
	if from == "" || to == "" {
		return Conversion{}, domain.ConfigurationError(op, "both source and target zones are required")
	}

	in, err := ParseInstant(input)
	if err != nil {
		return Conversion{}, err
	}

	var u domain.Instant
	switch {
	case in.Frame() == domain.FrameUTC:
		u = in
	case isUTC(from):
		u = domain.ClockIn(in.Clock(), domain.FrameUTC)
	default:
		src, err := uc.db.Zone(from)
		if err != nil {
			return Conversion{}, err
		}
		if u, err = src.ToUniversalTime(in, uc.optimize); err != nil {
			return Conversion{}, err
		}
	}

	out := Conversion{
		Input:        input,
		From:         from,
		To:           to,
		UTC:          u.String(),
		Result:       u.String(),
		Abbreviation: UTCName,
		Offset:       domain.FormatOffset(0),
		UnixSeconds:  u.Clock().Unix(),
	}
	if isUTC(to) {
		return out, nil
	}

	dst, err := uc.db.Zone(to)
	if err != nil {
		return Conversion{}, err
	}
	local, err := dst.ToLocalTime(u, uc.optimize)
	if err != nil {
		return Conversion{}, err
	}
	if out.Abbreviation, err = dst.Abbreviation(u); err != nil {
		return Conversion{}, err
	}
	out.To = dst.Name()
	out.Result = local.String()
	out.Offset = domain.FormatOffset(local.Sub(u))
	return out, nil
}

func isUTC(name string) bool {
	return strings.EqualFold(name, UTCName)
}
