package usecase

import (
	"fmt"

	"github.com/aalvaropc/zoneinfo/internal/domain"
	"github.com/aalvaropc/zoneinfo/internal/tzdb"
)

// Transition is a change of offset or abbreviation of a zone.
type Transition struct {
	UTC          string `json:"utc" yaml:"utc"`
	LocalBefore  string `json:"local_before" yaml:"local_before"`
	LocalAfter   string `json:"local_after" yaml:"local_after"`
	OffsetBefore string `json:"offset_before" yaml:"offset_before"`
	OffsetAfter  string `json:"offset_after" yaml:"offset_after"`
	AbbrevBefore string `json:"abbreviation_before" yaml:"abbreviation_before"`
	AbbrevAfter  string `json:"abbreviation_after" yaml:"abbreviation_after"`
}

type ListTransitions struct {
	db *tzdb.Database
}

func NewListTransitions(db *tzdb.Database) *ListTransitions {
	return &ListTransitions{db: db}
}

// Execute returns the transitions of zone whose UTC instant falls in year. Segment
// boundaries that change neither the offset nor the abbreviation are left out.
func (uc *ListTransitions) Execute(zone string, year int) ([]Transition, error) {
	const op = "usecase.transitions"
	if year < domain.MinYear || year > domain.MaxYear {
		return nil, &domain.OpError{Op: op, Kind: domain.KindRange, Err: fmt.Errorf("year %d outside %d..%d", year, domain.MinYear, domain.MaxYear)}
	}
	z, err := uc.db.Zone(zone)
	if err != nil {
		return nil, err
	}

	var out []Transition
	for _, b := range z.Transitions(year) {
		if b.UTC.Year() != year {
			continue
		}
		at := domain.UTC(b.UTC)
		before := domain.UTC(b.UTC.Add(-1))

		after, err := z.Offset(at)
		if err != nil {
			return nil, err
		}
		abbrAfter, err := z.Abbreviation(at)
		if err != nil {
			return nil, err
		}
		abbrBefore, err := z.Abbreviation(before)
		if err != nil {
			return nil, err
		}
		if after == b.Offset() && abbrAfter == abbrBefore {
			continue
		}

		out = append(out, Transition{
			UTC:          at.String(),
			LocalBefore:  domain.ClockIn(b.Local, domain.FrameLocal).String(),
			LocalAfter:   domain.ClockIn(b.UTC.Add(after), domain.FrameLocal).String(),
			OffsetBefore: domain.FormatOffset(b.Offset()),
			OffsetAfter:  domain.FormatOffset(after),
			AbbrevBefore: abbrBefore,
			AbbrevAfter:  abbrAfter,
		})
	}
	return out, nil
}
