package extract

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// Rules maps an output name to a JSONPath expression, such as "$.segments[0].format".
type Rules map[string]string

// ParseRules reads command line specs of the form name=$.path. A spec without a
// name, or whose right-hand side is not a path, is named after itself.
func ParseRules(specs []string) Rules {
	rules := Rules{}
	for _, s := range specs {
		name, expr, ok := strings.Cut(s, "=")
		if !ok || !strings.HasPrefix(strings.TrimSpace(expr), "$") {
			name, expr = s, s
		}
		rules[strings.TrimSpace(name)] = strings.TrimSpace(expr)
	}
	return rules
}

// Result reports how one rule fared.
type Result struct {
	Name    string `json:"name" yaml:"name"`
	Success bool   `json:"success" yaml:"success"`
	Message string `json:"message" yaml:"message"`
}

// Document is a zone report in the generic form JSONPath walks.
type Document struct {
	zone string
	root any
}

// NewDocument encodes v, normally a usecase.ZoneReport, through its JSON field names.
func NewDocument(v any) (Document, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return Document{}, fmt.Errorf("encode zone report: %w", err)
	}
	return Parse(b)
}

// Parse decodes a zone report printed with --format json.
func Parse(body []byte) (Document, error) {
	var root any
	if err := json.Unmarshal(body, &root); err != nil {
		return Document{}, fmt.Errorf("zone report is not valid JSON: %w", err)
	}
	obj, ok := root.(map[string]any)
	if !ok {
		return Document{}, fmt.Errorf("zone report must be a JSON object")
	}
	name, _ := obj["name"].(string)
	return Document{zone: name, root: root}, nil
}

// Apply evaluates every rule against the report. Results come in name order and a
// failing rule does not stop the others.
func (d Document) Apply(rules Rules) (map[string]string, []Result) {
	keys := make([]string, 0, len(rules))
	for k := range rules {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	values := map[string]string{}
	results := make([]Result, 0, len(keys))
	for _, name := range keys {
		s, err := d.value(strings.TrimSpace(rules[name]))
		if err != nil {
			results = append(results, Result{Name: name, Message: fmt.Sprintf("extract %q from %s: %v", name, d.zone, err)})
			continue
		}
		values[name] = s
		results = append(results, Result{Name: name, Success: true, Message: fmt.Sprintf("extracted %q", name)})
	}
	return values, results
}

func (d Document) value(expr string) (string, error) {
	if expr == "" {
		return "", fmt.Errorf("empty jsonpath expression")
	}
	v, err := jsonpath.Get(expr, d.root)
	if err != nil {
		return "", fmt.Errorf("%s: %w", expr, err)
	}
	s, err := render(v)
	if err != nil {
		return "", fmt.Errorf("%s: %w", expr, err)
	}
	if s == "" {
		return "", fmt.Errorf("%s: no value", expr)
	}
	return s, nil
}

// render prints a report value. Code lists join with commas as in zone1970.tab,
// segments print as zone lines, and several segments print one per line.
func render(v any) (string, error) {
	switch t := v.(type) {
	case nil:
		return "", nil
	case string:
		return t, nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(t), nil
	case map[string]any:
		return zoneLine(t)
	case []any:
		parts := make([]string, 0, len(t))
		sep := ","
		for _, e := range t {
			if _, ok := e.(map[string]any); ok {
				sep = "\n"
			}
			s, err := render(e)
			if err != nil {
				return "", err
			}
			if s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, sep), nil
	}
	return "", fmt.Errorf("unsupported value of type %T", v)
}

// zoneLine prints a segment as the STDOFF RULES FORMAT [UNTIL] columns of its zone
// line, with the local end time in ISO form.
func zoneLine(seg map[string]any) (string, error) {
	var cols []string
	for _, k := range []string{"stdoff", "rules", "format"} {
		s, ok := seg[k].(string)
		if !ok {
			return "", fmt.Errorf("object is not a zone segment: missing %q", k)
		}
		cols = append(cols, s)
	}
	if until, ok := seg["end_local"].(string); ok && until != "" {
		cols = append(cols, until)
	}
	return strings.Join(cols, " "), nil
}
