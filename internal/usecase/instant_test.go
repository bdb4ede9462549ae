package usecase

import (
	"testing"
	"time"

	"github.com/aalvaropc/zoneinfo/internal/domain"
)

func TestParseInstant(t *testing.T) {
	cases := []struct {
		in    string
		want  string
		frame domain.Frame
	}{
		{"2000-07-01T12:00:00", "2000-07-01T12:00:00", domain.FrameLocal},
		{"2000-07-01 12:00", "2000-07-01T12:00:00", domain.FrameLocal},
		{"2000-07-01", "2000-07-01T00:00:00", domain.FrameLocal},
		{"2000-07-01T12:00:00.25", "2000-07-01T12:00:00.25", domain.FrameLocal},
		{"2000-07-01T12:00:00Z", "2000-07-01T12:00:00Z", domain.FrameUTC},
		{"2000-07-01T12:00+02:00", "2000-07-01T10:00:00Z", domain.FrameUTC},
		{" 2000-07-01T12:00:00-03:30 ", "2000-07-01T15:30:00Z", domain.FrameUTC},
	}
	for _, tc := range cases {
		got, err := ParseInstant(tc.in)
		if err != nil {
			t.Fatalf("ParseInstant(%q): %v", tc.in, err)
		}
		if got.Frame() != tc.frame {
			t.Fatalf("ParseInstant(%q) frame=%v want %v", tc.in, got.Frame(), tc.frame)
		}
		if got.String() != tc.want {
			t.Fatalf("ParseInstant(%q)=%s want %s", tc.in, got, tc.want)
		}
		if got.Clock().Location() != time.UTC {
			t.Fatalf("ParseInstant(%q) clock not held in UTC", tc.in)
		}
	}
}

func TestParseInstantRejectsGarbage(t *testing.T) {
	if _, err := ParseInstant(""); !domain.IsKind(err, domain.KindConfiguration) {
		t.Fatalf("empty input: expected configuration error, got %v", err)
	}
	for _, in := range []string{"yesterday", "2000-13-01", "2000-07-01T25:00"} {
		if _, err := ParseInstant(in); !domain.IsKind(err, domain.KindFormat) {
			t.Fatalf("ParseInstant(%q): expected format error, got %v", in, err)
		}
	}
}
