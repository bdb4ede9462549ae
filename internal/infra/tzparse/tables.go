package tzparse

import (
	"bufio"
	"io"
	"strings"

	"github.com/aalvaropc/zoneinfo/internal/domain"
)

// ParseCountries reads iso3166.tab: CODE<TAB>NAME.
func ParseCountries(r io.Reader, path string) ([]domain.Country, error) {
	var out []domain.Country
	err := eachRow(r, path, 2, func(f []string) {
		if len(f) != 2 {
			return
		}
		out = append(out, domain.Country{Code: f[0], Name: f[1]})
	})
	return out, err
}

// ParseZoneTable reads zone1970.tab: CODES<TAB>COORDINATES<TAB>TZ[<TAB>COMMENT].
func ParseZoneTable(r io.Reader, path string) ([]domain.ZoneInfo, error) {
	var out []domain.ZoneInfo
	err := eachRow(r, path, 4, func(f []string) {
		if len(f) < 3 {
			return
		}
		zi := domain.ZoneInfo{
			Countries:   strings.Split(f[0], ","),
			Coordinates: f[1],
			Zone:        f[2],
		}
		if len(f) > 3 {
			zi.Comment = f[3]
		}
		out = append(out, zi)
	})
	return out, err
}

// ParseWindows reads windowsZones.tab: TZ<TAB>WINDOWS ID.
func ParseWindows(r io.Reader, path string) ([]domain.WindowsMapping, error) {
	var out []domain.WindowsMapping
	err := eachRow(r, path, 2, func(f []string) {
		if len(f) < 2 {
			return
		}
		out = append(out, domain.WindowsMapping{Zone: f[0], WindowsID: f[1]})
	})
	return out, err
}

// eachRow feeds fn the fields of every non empty line. Short rows are left to fn.
func eachRow(r io.Reader, path string, max int, fn func([]string)) error {
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		f, err := Fields(sc.Text(), max)
		if err != nil {
			return domain.FormatError("tzparse.table", path, n, "", err.Error())
		}
		if len(f) == 0 {
			continue
		}
		fn(f)
	}
	if err := sc.Err(); err != nil {
		return &domain.OpError{Op: "tzparse.table", Kind: domain.KindFormat, Path: path, Err: err}
	}
	return nil
}
