package mcp

import (
	"encoding/json"
	"fmt"
	"math"
	"net/url"
	"slices"
	"strconv"
	"strings"
)

// ValidationError reports an argument that does not satisfy its declared schema.
type ValidationError struct {
	Tool   string
	Param  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid argument %q for %s: %s", e.Param, e.Tool, e.Reason)
}

// BuildRequest validates args against ts and resolves the upstream request.
//
// An argument counts as supplied when its key is present with a non-nil
// value, so zero values such as dist=0 are sent. Empty strings and empty
// arrays count as absent. Absent parameters fall back to their Default or
// are left out of the query.
func BuildRequest(ts ToolSpec, args map[string]any) (Request, error) {
	path := ts.Path
	query := url.Values{}

	for _, p := range ts.Params {
		raw, ok := args[p.Name]
		if ok && isEmpty(raw) {
			ok = false
		}
		if !ok {
			if p.Required {
				return Request{}, &ValidationError{Tool: ts.Name, Param: p.Name, Reason: "is required"}
			}
			if p.Default == nil {
				continue
			}
			raw = p.Default
		}

		val, err := formatValue(p, raw)
		if err != nil {
			return Request{}, &ValidationError{Tool: ts.Name, Param: p.Name, Reason: err.Error()}
		}

		switch p.In {
		case InPath:
			path = strings.ReplaceAll(path, "{"+p.UpstreamKey()+"}", url.PathEscape(val))
		case InQuery:
			query.Set(p.UpstreamKey(), val)
		}
	}

	for key, vals := range ts.Fixed {
		query[key] = append([]string(nil), vals...)
	}

	return Request{Path: path, Query: query}, nil
}

func isEmpty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case []any:
		return len(t) == 0
	case []string:
		return len(t) == 0
	}
	return false
}

// formatValue checks v against p and renders it the way eBird expects it.
func formatValue(p ParamSpec, v any) (string, error) {
	switch p.Type {
	case TypeString:
		s, ok := v.(string)
		if !ok {
			return "", fmt.Errorf("expected a string, got %T", v)
		}
		if err := checkEnum(p, s); err != nil {
			return "", err
		}
		return s, nil

	case TypeBoolean:
		b, ok := v.(bool)
		if !ok {
			return "", fmt.Errorf("expected a boolean, got %T", v)
		}
		return strconv.FormatBool(b), nil

	case TypeInteger, TypeNumber:
		f, ok := toFloat(v)
		if !ok {
			return "", fmt.Errorf("expected a number, got %T", v)
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return "", fmt.Errorf("must be a finite number")
		}
		if p.Type == TypeInteger && f != math.Trunc(f) {
			return "", fmt.Errorf("must be an integer, got %v", f)
		}
		if p.Min != nil && f < *p.Min {
			return "", fmt.Errorf("must be >= %v, got %v", *p.Min, f)
		}
		if p.Max != nil && f > *p.Max {
			return "", fmt.Errorf("must be <= %v, got %v", *p.Max, f)
		}
		return strconv.FormatFloat(f, 'f', -1, 64), nil

	case TypeArray:
		items, err := toStrings(v)
		if err != nil {
			return "", err
		}
		for _, item := range items {
			if item == "" {
				return "", fmt.Errorf("must not contain empty values")
			}
			if err := checkEnum(p, item); err != nil {
				return "", err
			}
		}
		if p.Max != nil && float64(len(items)) > *p.Max {
			return "", fmt.Errorf("accepts at most %v values, got %d", *p.Max, len(items))
		}
		return strings.Join(items, ","), nil
	}
	return "", fmt.Errorf("unsupported type %q", p.Type)
}

func checkEnum(p ParamSpec, s string) error {
	if len(p.Enum) > 0 && !slices.Contains(p.Enum, s) {
		return fmt.Errorf("must be one of [%s], got %q", strings.Join(p.Enum, ", "), s)
	}
	return nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

func toStrings(v any) ([]string, error) {
	switch t := v.(type) {
	case []string:
		return t, nil
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("expected an array of strings, found %T", item)
			}
			out = append(out, s)
		}
		return out, nil
	}
	return nil, fmt.Errorf("expected an array, got %T", v)
}
