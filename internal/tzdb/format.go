package tzdb

import (
	"strings"

	"github.com/aalvaropc/zoneinfo/internal/domain"
)

// Format renders i with a Go time layout extended by three tokens:
//
//	#F   the zone abbreviation in force, e.g. CEST
//	K    the UTC offset as +01:00, or Z for a UTC instant
//	zzz  same as K
//
// An unspecified instant is formatted with the plain layout.
func (z *Zone) Format(layout string, i domain.Instant) (string, error) {
	const op = "tzdb.format"
	clock := i.Clock()
	if i.Frame() == domain.FrameUnspecified {
		return clock.Format(layout), nil
	}
	if !strings.Contains(layout, "#F") && !strings.Contains(layout, "K") && !strings.Contains(layout, "zzz") {
		return clock.Format(layout), nil
	}

	r, err := z.resolve(op, i)
	if err != nil {
		return "", err
	}
	abbr := r.seg.Abbreviation(r.letter, r.save)
	offset := "Z"
	if i.Frame() == domain.FrameLocal {
		offset = domain.FormatOffset(r.offset())
	}

	var b, chunk strings.Builder
	flush := func() {
		if chunk.Len() > 0 {
			b.WriteString(clock.Format(chunk.String()))
			chunk.Reset()
		}
	}
	for k := 0; k < len(layout); {
		switch {
		case strings.HasPrefix(layout[k:], "#F"):
			flush()
			b.WriteString(abbr)
			k += 2
		case strings.HasPrefix(layout[k:], "zzz"):
			flush()
			b.WriteString(offset)
			k += 3
		case layout[k] == 'K':
			flush()
			b.WriteString(offset)
			k++
		default:
			chunk.WriteByte(layout[k])
			k++
		}
	}
	flush()
	return b.String(), nil
}
