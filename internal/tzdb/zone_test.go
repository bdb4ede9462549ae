package tzdb

import (
	"errors"
	"sync"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/aalvaropc/zoneinfo/internal/domain"
)

func TestAzoresFold1920(t *testing.T) {
	db := openBundle(t)
	z := mustZone(t, db, "Atlantic/Azores")

	// The wall clock jumps from 23:00 to midnight: midnight is one hour after 22:00 UTC-2.
	cases := []struct {
		local domain.Instant
		want  domain.Instant
	}{
		{localAt(1920, time.February, 29, 20, 0, 0), utcAt(1920, time.February, 29, 22, 0, 0)},
		{localAt(1920, time.February, 29, 21, 0, 0), utcAt(1920, time.February, 29, 23, 0, 0)},
		{localAt(1920, time.February, 29, 22, 0, 0), utcAt(1920, time.March, 1, 0, 0, 0)},
		{localAt(1920, time.March, 1, 0, 0, 0), utcAt(1920, time.March, 1, 1, 0, 0)},
		{localAt(1920, time.March, 1, 1, 0, 0), utcAt(1920, time.March, 1, 2, 0, 0)},
	}
	for _, optimize := range []bool{false, true} {
		for _, tc := range cases {
			if got := toUTC(t, z, tc.local, optimize); !got.Equal(tc.want) {
				t.Fatalf("optimize=%v: %s -> %s want %s", optimize, tc.local, got, tc.want)
			}
			if back := toLocal(t, z, tc.want, optimize); !back.Equal(tc.local) {
				t.Fatalf("optimize=%v: %s back to %s want %s", optimize, tc.want, back, tc.local)
			}
		}
	}

	abbr, err := z.Abbreviation(localAt(1920, time.March, 1, 12, 0, 0))
	if err != nil {
		t.Fatalf("abbreviation: %v", err)
	}
	if abbr != "-01" {
		t.Fatalf("abbreviation=%q", abbr)
	}
}

func TestApiaSkipsDecember30(t *testing.T) {
	db := openBundle(t)
	z := mustZone(t, db, "Pacific/Apia")

	cases := []struct {
		utc  domain.Instant
		want domain.Instant
	}{
		{utcAt(2011, time.December, 30, 7, 0, 0), localAt(2011, time.December, 29, 21, 0, 0)},
		{utcAt(2011, time.December, 30, 8, 0, 0), localAt(2011, time.December, 29, 22, 0, 0)},
		{utcAt(2011, time.December, 30, 9, 0, 0), localAt(2011, time.December, 29, 23, 0, 0)},
		{utcAt(2011, time.December, 30, 10, 0, 0), localAt(2011, time.December, 31, 0, 0, 0)},
		{utcAt(2011, time.December, 30, 11, 0, 0), localAt(2011, time.December, 31, 1, 0, 0)},
	}
	for _, optimize := range []bool{false, true} {
		for _, tc := range cases {
			got := toLocal(t, z, tc.utc, optimize)
			if !got.Equal(tc.want) {
				t.Fatalf("optimize=%v: %s -> %s want %s", optimize, tc.utc, got, tc.want)
			}
			back := toUTC(t, z, got, optimize)
			if !back.Equal(tc.utc) {
				t.Fatalf("optimize=%v: round trip %s -> %s -> %s", optimize, tc.utc, got, back)
			}
		}
	}

	for _, hh := range []int{0, 12, 23} {
		_, err := z.ToUniversalTime(localAt(2011, time.December, 30, hh, 0, 0), false)
		if !errors.Is(err, domain.ErrRange) {
			t.Fatalf("Dec 30 %02d:00 local: expected range error, got %v", hh, err)
		}
	}
}

func TestBuenosAiresTickPrecision(t *testing.T) {
	db := openBundle(t)
	z := mustZone(t, db, "America/Argentina/Buenos_Aires")

	base := time.Date(1998, time.December, 31, 23, 56, 15, 0, time.UTC)
	for i := 0; i < 2000; i++ {
		u := domain.UTC(base.Add(time.Duration(i) * 100 * time.Nanosecond))
		local := toLocal(t, z, u, i%2 == 0)
		if want := u.Clock().Add(-3 * time.Hour); !local.Clock().Equal(want) {
			t.Fatalf("tick %d: local=%s want %s", i, local, want.Format(time.RFC3339Nano))
		}
		back := toUTC(t, z, local, i%2 == 1)
		if !back.Equal(u) {
			t.Fatalf("tick %d: round trip %s -> %s", i, u, back)
		}
	}
}

func TestParis2000MatchesRuntimeZoneData(t *testing.T) {
	db := openBundle(t)
	z := mustZone(t, db, "Europe/Paris")
	loc, err := time.LoadLocation("Europe/Paris")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	start := time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2001, time.January, 1, 0, 0, 0, 0, time.UTC)
	for u := start; u.Before(end); u = u.Add(time.Hour) {
		name, off := u.In(loc).Zone()
		want := time.Duration(off) * time.Second

		for _, optimize := range []bool{false, true} {
			local := toLocal(t, z, domain.UTC(u), optimize)
			if got := local.Clock().Sub(u); got != want {
				t.Fatalf("%s optimize=%v: offset %v want %v", u.Format(time.RFC3339), optimize, got, want)
			}
		}
		abbr, err := z.Abbreviation(domain.UTC(u))
		if err != nil {
			t.Fatalf("abbreviation: %v", err)
		}
		if abbr != name {
			t.Fatalf("%s: abbreviation %q want %q", u.Format(time.RFC3339), abbr, name)
		}
	}
}

func TestModernOffsetsMatchRuntimeZoneData(t *testing.T) {
	db := openBundle(t)
	zones := []string{
		"Europe/Paris", "Europe/Berlin", "Atlantic/Azores", "America/New_York",
		"America/Grand_Turk", "America/Argentina/Buenos_Aires", "Pacific/Apia",
		"Asia/Tokyo", "Asia/Kolkata",
	}
	years := []int{2000, 2008, 2015, 2024}

	for _, name := range zones {
		z := mustZone(t, db, name)
		loc, err := time.LoadLocation(name)
		if err != nil {
			t.Fatalf("load location %s: %v", name, err)
		}
		for _, y := range years {
			start := time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC)
			end := start.AddDate(1, 0, 0)
			for u := start; u.Before(end); u = u.Add(3 * time.Hour) {
				abbrWant, off := u.In(loc).Zone()
				want := time.Duration(off) * time.Second

				for _, optimize := range []bool{false, true} {
					local := toLocal(t, z, domain.UTC(u), optimize)
					if got := local.Clock().Sub(u); got != want {
						t.Fatalf("%s %s optimize=%v: offset %v want %v", name, u.Format(time.RFC3339), optimize, got, want)
					}

					// Away from transitions every local reading is unique.
					_, before := u.Add(-3 * time.Hour).In(loc).Zone()
					_, after := u.Add(3 * time.Hour).In(loc).Zone()
					if before == off && after == off {
						back := toUTC(t, z, local, optimize)
						if !back.Clock().Equal(u) {
							t.Fatalf("%s %s optimize=%v: round trip gave %s", name, u.Format(time.RFC3339), optimize, back)
						}
					}
				}

				abbr, err := z.Abbreviation(domain.UTC(u))
				if err != nil {
					t.Fatalf("abbreviation: %v", err)
				}
				if abbr != abbrWant {
					t.Fatalf("%s %s: abbreviation %q want %q", name, u.Format(time.RFC3339), abbr, abbrWant)
				}
			}
		}
	}
}

func TestGrandTurkCoincidingBoundaries(t *testing.T) {
	db := openBundle(t)
	z := mustZone(t, db, "America/Grand_Turk")

	cases := []struct {
		utc   domain.Instant
		local domain.Instant
		abbr  string
	}{
		{utcAt(2015, time.March, 8, 6, 59, 59), localAt(2015, time.March, 8, 1, 59, 59), "EST"},
		{utcAt(2015, time.March, 8, 7, 0, 0), localAt(2015, time.March, 8, 3, 0, 0), "AST"},
		{utcAt(2018, time.March, 11, 6, 59, 59), localAt(2018, time.March, 11, 2, 59, 59), "AST"},
		{utcAt(2018, time.March, 11, 7, 0, 0), localAt(2018, time.March, 11, 3, 0, 0), "EDT"},
	}
	for _, optimize := range []bool{false, true} {
		for _, tc := range cases {
			got := toLocal(t, z, tc.utc, optimize)
			if !got.Equal(tc.local) {
				t.Fatalf("optimize=%v: %s -> %s want %s", optimize, tc.utc, got, tc.local)
			}
			back := toUTC(t, z, tc.local, optimize)
			if !back.Equal(tc.utc) {
				t.Fatalf("optimize=%v: %s -> %s want %s", optimize, tc.local, back, tc.utc)
			}
			for _, at := range []domain.Instant{tc.utc, tc.local} {
				abbr, err := z.Abbreviation(at)
				if err != nil || abbr != tc.abbr {
					t.Fatalf("%s: abbreviation %q (%v) want %q", at, abbr, err, tc.abbr)
				}
			}
		}
	}

	if _, err := z.ToUniversalTime(localAt(2015, time.March, 8, 2, 30, 0), false); !domain.IsKind(err, domain.KindRange) {
		t.Fatalf("skipped 02:30 local: expected range error, got %v", err)
	}
}

func TestTransitionsParis2000(t *testing.T) {
	db := openBundle(t)
	z := mustZone(t, db, "Europe/Paris")

	var in2000 []domain.Boundary
	for _, b := range z.Transitions(2000) {
		if b.UTC.Year() == 2000 {
			in2000 = append(in2000, b)
		}
	}
	if len(in2000) != 2 {
		t.Fatalf("transitions in 2000: %v", in2000)
	}

	spring, autumn := in2000[0], in2000[1]
	if !spring.UTC.Equal(time.Date(2000, time.March, 26, 1, 0, 0, 0, time.UTC)) || spring.Offset() != time.Hour {
		t.Fatalf("spring=%+v", spring)
	}
	if !spring.Local.Equal(time.Date(2000, time.March, 26, 2, 0, 0, 0, time.UTC)) {
		t.Fatalf("spring local=%s", spring.Local)
	}
	if !autumn.UTC.Equal(time.Date(2000, time.October, 29, 1, 0, 0, 0, time.UTC)) || autumn.Offset() != 2*time.Hour {
		t.Fatalf("autumn=%+v", autumn)
	}

	list := z.Transitions(2000)
	for k := 1; k < len(list); k++ {
		if !list[k-1].UTC.Before(list[k].UTC) {
			t.Fatalf("transitions not strictly ascending at %d: %v", k, list)
		}
	}

	// Callers get a copy.
	list[0].GmtOffset = 42
	if z.Transitions(2000)[0].GmtOffset == 42 {
		t.Fatalf("Transitions exposed the cached slice")
	}
}

func TestConversionRejectsWrongFrames(t *testing.T) {
	db := openBundle(t)
	z := mustZone(t, db, "Europe/Paris")
	ny := mustZone(t, db, "America/New_York")
	unspecified := domain.Date(2000, time.June, 1, 12, 0, 0, 0, domain.FrameUnspecified)

	cases := []struct {
		name string
		call func() error
	}{
		{"to local from local", func() error { _, err := z.ToLocalTime(localAt(2000, 6, 1, 12, 0, 0), true); return err }},
		{"to local from unspecified", func() error { _, err := z.ToLocalTime(unspecified, false); return err }},
		{"to utc from utc", func() error { _, err := z.ToUniversalTime(utcAt(2000, 6, 1, 12, 0, 0), true); return err }},
		{"to utc from unspecified", func() error { _, err := z.ToUniversalTime(unspecified, false); return err }},
		{"to zone nil target", func() error { _, err := z.ToTimeZone(utcAt(2000, 6, 1, 12, 0, 0), nil); return err }},
		{"to zone unspecified", func() error { _, err := z.ToTimeZone(unspecified, ny); return err }},
		{"unix unspecified", func() error { _, err := z.ToUnixSeconds(unspecified); return err }},
		{"offset unspecified", func() error { _, err := z.Offset(unspecified); return err }},
		{"abbreviation unspecified", func() error { _, err := z.Abbreviation(unspecified); return err }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.call(); !errors.Is(err, domain.ErrConfiguration) {
				t.Fatalf("expected configuration error, got %v", err)
			}
		})
	}
}

func TestToTimeZone(t *testing.T) {
	db := openBundle(t)
	paris := mustZone(t, db, "Europe/Paris")
	ny := mustZone(t, db, "America/New_York")
	tokyo := mustZone(t, db, "Asia/Tokyo")

	got, err := paris.ToTimeZone(localAt(2000, time.July, 1, 12, 0, 0), ny)
	if err != nil {
		t.Fatalf("paris -> ny: %v", err)
	}
	if want := localAt(2000, time.July, 1, 6, 0, 0); !got.Equal(want) {
		t.Fatalf("paris -> ny: %s want %s", got, want)
	}

	// A UTC input is converted in the target whatever the receiver.
	got, err = paris.ToTimeZone(utcAt(2000, time.January, 1, 0, 0, 0), tokyo)
	if err != nil {
		t.Fatalf("utc -> tokyo: %v", err)
	}
	if want := localAt(2000, time.January, 1, 9, 0, 0); !got.Equal(want) {
		t.Fatalf("utc -> tokyo: %s want %s", got, want)
	}
}

func TestUnixTime(t *testing.T) {
	db := openBundle(t)
	z := mustZone(t, db, "Europe/Paris")

	secs, err := z.ToUnixSeconds(localAt(2000, time.January, 1, 1, 0, 0))
	if err != nil || secs != 946684800 {
		t.Fatalf("seconds=%d err=%v", secs, err)
	}
	ms, err := z.ToUnixMilliseconds(domain.Date(1970, time.January, 1, 0, 0, 1, 250_000_000, domain.FrameUTC))
	if err != nil || ms != 1250 {
		t.Fatalf("milliseconds=%d err=%v", ms, err)
	}
	secs, err = z.ToUnixSeconds(utcAt(1969, time.December, 31, 23, 59, 0))
	if err != nil || secs != -60 {
		t.Fatalf("before epoch=%d err=%v", secs, err)
	}
}

func TestOffsetAndFormat(t *testing.T) {
	db := openBundle(t)
	z := mustZone(t, db, "Europe/Paris")

	off, err := z.Offset(localAt(2000, time.July, 1, 12, 0, 0))
	if err != nil || off != 2*time.Hour {
		t.Fatalf("offset=%v err=%v", off, err)
	}

	cases := []struct {
		layout string
		in     domain.Instant
		want   string
	}{
		{"2006-01-02 15:04 #F K", localAt(2000, time.July, 1, 12, 0, 0), "2000-07-01 12:00 CEST +02:00"},
		{"2006-01-02T15:04:05zzz", localAt(2000, time.January, 15, 8, 30, 0), "2000-01-15T08:30:00+01:00"},
		{"15:04K", utcAt(2000, time.July, 1, 10, 0, 0), "10:00Z"},
		{"Jan 2 #F", utcAt(2000, time.January, 2, 10, 0, 0), "Jan 2 CET"},
		{"2006-01-02 15:04", domain.Date(2000, time.July, 1, 12, 0, 0, 0, domain.FrameUnspecified), "2000-07-01 12:00"},
	}
	for _, tc := range cases {
		got, err := z.Format(tc.layout, tc.in)
		if err != nil {
			t.Fatalf("format %q: %v", tc.layout, err)
		}
		if got != tc.want {
			t.Fatalf("format %q: got %q want %q", tc.layout, got, tc.want)
		}
	}
}

func TestConcurrentConversionsShareCache(t *testing.T) {
	db := openBundle(t)
	z := mustZone(t, db, "America/New_York")

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for h := 0; h < 24*60; h++ {
				u := utcAt(2007+h%3, time.March, 1, 0, 0, 0).Add(time.Duration(h) * time.Hour)
				fast, err := z.ToLocalTime(u, true)
				if err != nil {
					errs <- err
					return
				}
				slow, err := z.ToLocalTime(u, false)
				if err != nil {
					errs <- err
					return
				}
				if !fast.Equal(slow) {
					errs <- errors.New("cache disagrees at " + u.String())
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatal(err)
	}
}
