package usecase

import (
	"slices"

	"github.com/aalvaropc/zoneinfo/internal/domain"
	"github.com/aalvaropc/zoneinfo/internal/tzdb"
)

// ZoneReport describes a zone and its assembled lines.
type ZoneReport struct {
	Name        string          `json:"name" yaml:"name"`
	Coordinates string          `json:"coordinates,omitempty" yaml:"coordinates,omitempty"`
	Comment     string          `json:"comment,omitempty" yaml:"comment,omitempty"`
	Countries   []string        `json:"countries,omitempty" yaml:"countries,omitempty"`
	Aliases     []string        `json:"aliases,omitempty" yaml:"aliases,omitempty"`
	Segments    []SegmentReport `json:"segments" yaml:"segments"`
}

// SegmentReport is one zone line. Start and End are empty for the open ends of the
// timeline.
type SegmentReport struct {
	StandardOffset string `json:"stdoff" yaml:"stdoff"`
	Rules          string `json:"rules" yaml:"rules"`
	Format         string `json:"format" yaml:"format"`
	StartUTC       string `json:"start_utc,omitempty" yaml:"start_utc,omitempty"`
	EndUTC         string `json:"end_utc,omitempty" yaml:"end_utc,omitempty"`
	EndLocal       string `json:"end_local,omitempty" yaml:"end_local,omitempty"`
}

type Inspect struct {
	db *tzdb.Database
}

func NewInspect(db *tzdb.Database) *Inspect {
	return &Inspect{db: db}
}

func (uc *Inspect) Execute(zone string) (ZoneReport, error) {
	z, err := uc.db.Zone(zone)
	if err != nil {
		return ZoneReport{}, err
	}

	rep := ZoneReport{
		Name:        z.Name(),
		Coordinates: z.Coordinates(),
		Comment:     z.Comment(),
	}
	for _, c := range uc.db.Countries() {
		if slices.Contains(c.Zones, z.Name()) {
			rep.Countries = append(rep.Countries, c.Code)
		}
	}
	for _, l := range uc.db.Links() {
		if l.Target == z.Name() {
			rep.Aliases = append(rep.Aliases, l.Alias)
		}
	}

	for _, seg := range z.Segments() {
		sr := SegmentReport{
			StandardOffset: domain.FormatOffset(seg.GmtOffset),
			Rules:          seg.Binding.String(),
			Format:         seg.Format,
		}
		if !seg.Start.UTC.Equal(domain.MinBoundary.UTC) {
			sr.StartUTC = domain.UTC(seg.Start.UTC).String()
		}
		if seg.Until != nil {
			sr.EndUTC = domain.UTC(seg.End.UTC).String()
			sr.EndLocal = domain.ClockIn(seg.End.Local, domain.FrameLocal).String()
		}
		rep.Segments = append(rep.Segments, sr)
	}
	return rep, nil
}
