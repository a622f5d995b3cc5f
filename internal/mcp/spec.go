package mcp

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/bobmcallan/ebird-mcp/internal/common"
)

// Parameter types.
const (
	TypeString  = "string"
	TypeInteger = "integer"
	TypeNumber  = "number"
	TypeBoolean = "boolean"
	TypeArray   = "array"
)

// Parameter locations.
const (
	InPath  = "path"
	InQuery = "query"
)

var placeholderRe = regexp.MustCompile(`\{([A-Za-z0-9_]+)\}`)

// ParamSpec declares one tool argument and where it lands upstream.
type ParamSpec struct {
	Name        string // argument name seen by the host
	Upstream    string // eBird query key or path placeholder; Name when empty
	Type        string
	In          string
	Description string
	Required    bool
	Enum        []string
	Min         *float64
	Max         *float64
	// Default is sent when the argument is absent. A nil Default means the
	// key is left out of the request entirely.
	Default any
}

// UpstreamKey returns the eBird name for the parameter.
func (p ParamSpec) UpstreamKey() string {
	if p.Upstream != "" {
		return p.Upstream
	}
	return p.Name
}

// ToolSpec is one entry of the tool catalog.
type ToolSpec struct {
	Name        string
	Title       string
	Description string
	Path        string // template, e.g. /data/obs/{regionCode}/recent
	Params      []ParamSpec
	Fixed       url.Values // constant query values
}

// Request is the upstream call a tool invocation resolves to.
type Request struct {
	Path  string
	Query url.Values
}

// URL renders the request as path plus encoded query.
func (r Request) URL() string {
	if len(r.Query) == 0 {
		return r.Path
	}
	return r.Path + "?" + r.Query.Encode()
}

// ValidateToolSpec checks a catalog entry for structural mistakes.
func ValidateToolSpec(ts ToolSpec) error {
	if ts.Name == "" {
		return fmt.Errorf("tool has empty name")
	}
	if !strings.HasPrefix(ts.Path, "/") {
		return fmt.Errorf("tool %q has invalid path %q (must start with /)", ts.Name, ts.Path)
	}
	if strings.Contains(ts.Path, "..") {
		return fmt.Errorf("tool %q has invalid path %q (contains ..)", ts.Name, ts.Path)
	}

	pathParams := map[string]bool{}
	names := map[string]bool{}
	for _, p := range ts.Params {
		if p.Name == "" {
			return fmt.Errorf("tool %q has a parameter with empty name", ts.Name)
		}
		if names[p.Name] {
			return fmt.Errorf("tool %q declares parameter %q twice", ts.Name, p.Name)
		}
		names[p.Name] = true

		switch p.Type {
		case TypeString, TypeInteger, TypeNumber, TypeBoolean, TypeArray:
		default:
			return fmt.Errorf("tool %q parameter %q has unsupported type %q", ts.Name, p.Name, p.Type)
		}
		switch p.In {
		case InPath:
			if !p.Required {
				return fmt.Errorf("tool %q path parameter %q must be required", ts.Name, p.Name)
			}
			if !strings.Contains(ts.Path, "{"+p.UpstreamKey()+"}") {
				return fmt.Errorf("tool %q path %q has no {%s} placeholder", ts.Name, ts.Path, p.UpstreamKey())
			}
			pathParams[p.UpstreamKey()] = true
		case InQuery:
		default:
			return fmt.Errorf("tool %q parameter %q has unsupported location %q", ts.Name, p.Name, p.In)
		}
		if len(p.Enum) > 0 && p.Type != TypeString && p.Type != TypeArray {
			return fmt.Errorf("tool %q parameter %q: enum requires a string or array type", ts.Name, p.Name)
		}
		if p.Min != nil && p.Max != nil && *p.Min > *p.Max {
			return fmt.Errorf("tool %q parameter %q: min %v exceeds max %v", ts.Name, p.Name, *p.Min, *p.Max)
		}
		if p.Default != nil {
			if _, err := formatValue(p, p.Default); err != nil {
				return fmt.Errorf("tool %q parameter %q has invalid default: %w", ts.Name, p.Name, err)
			}
		}
	}

	for _, m := range placeholderRe.FindAllStringSubmatch(ts.Path, -1) {
		if !pathParams[m[1]] {
			return fmt.Errorf("tool %q path placeholder {%s} has no parameter", ts.Name, m[1])
		}
	}
	return nil
}

// ValidateCatalog drops invalid and duplicate entries, logging each one.
func ValidateCatalog(catalog []ToolSpec, logger *common.Logger) []ToolSpec {
	seen := make(map[string]bool, len(catalog))
	valid := make([]ToolSpec, 0, len(catalog))
	for _, ts := range catalog {
		if err := ValidateToolSpec(ts); err != nil {
			logger.Warn().Str("error", err.Error()).Msg("skipping invalid tool spec")
			continue
		}
		if seen[ts.Name] {
			logger.Warn().Str("name", ts.Name).Msg("skipping duplicate tool spec")
			continue
		}
		seen[ts.Name] = true
		valid = append(valid, ts)
	}
	return valid
}
