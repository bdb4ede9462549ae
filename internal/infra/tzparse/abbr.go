package tzparse

import (
	"errors"
	"strings"
)

var (
	errNoMatch   = errors.New("no match")
	errAmbiguous = errors.New("multiple inexact match")
)

// itsabbr reports whether abbr abbreviates word: the first letters are equal and the
// remaining letters of abbr appear in word in the same order. Case is ignored.
func itsabbr(abbr, word string) bool {
	if abbr == "" || word == "" {
		return false
	}
	a := strings.ToLower(abbr)
	w := strings.ToLower(word)
	if a == w {
		return true
	}
	if a[0] != w[0] {
		return false
	}
	j := 1
	for i := 1; i < len(a); i++ {
		for {
			if j >= len(w) {
				return false
			}
			j++
			if w[j-1] == a[i] {
				break
			}
		}
	}
	return true
}

// lookup returns the index of the only word abbr abbreviates.
func lookup(abbr string, words []string) (int, error) {
	found := -1
	for i, w := range words {
		if !itsabbr(abbr, w) {
			continue
		}
		if found >= 0 {
			return -1, errAmbiguous
		}
		found = i
	}
	if found < 0 {
		return -1, errNoMatch
	}
	return found, nil
}
