package tzparse

import (
	"errors"
	"strings"
	"unicode"
)

var errOddQuotes = errors.New("odd number of quotation marks")

// Fields splits line on white space. Double quotes group text containing spaces and
// are removed; an unquoted '#' starts a comment.
//
// When max is positive the max-th field swallows the rest of the line as is.
func Fields(line string, max int) ([]string, error) {
	var out []string
	i := 0
	for {
		for i < len(line) && isSpace(line[i]) {
			i++
		}
		if i >= len(line) || line[i] == '#' {
			return out, nil
		}
		if max > 0 && len(out)+1 == max {
			out = append(out, strings.TrimRightFunc(line[i:], unicode.IsSpace))
			return out, nil
		}

		var b strings.Builder
		for i < len(line) && !isSpace(line[i]) && line[i] != '#' {
			c := line[i]
			i++
			if c != '"' {
				b.WriteByte(c)
				continue
			}
			end := strings.IndexByte(line[i:], '"')
			if end < 0 {
				return nil, errOddQuotes
			}
			b.WriteString(line[i : i+end])
			i += end + 1
		}
		out = append(out, b.String())
	}
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
