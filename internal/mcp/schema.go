package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// BuildMCPTool converts a ToolSpec into an mcp.Tool with its input schema.
// Every eBird tool is a read-only GET against an external service.
func BuildMCPTool(ts ToolSpec) mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription(ts.Description),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	}
	if ts.Title != "" {
		opts = append(opts, mcp.WithTitleAnnotation(ts.Title))
	}
	for _, p := range ts.Params {
		opts = append(opts, buildParamOption(p))
	}
	return mcp.NewTool(ts.Name, opts...)
}

// buildParamOption maps a ParamSpec to the matching mcp-go tool option.
func buildParamOption(p ParamSpec) mcp.ToolOption {
	var opts []mcp.PropertyOption
	if p.Description != "" {
		opts = append(opts, mcp.Description(p.Description))
	}
	if p.Required {
		opts = append(opts, mcp.Required())
	}

	switch p.Type {
	case TypeInteger, TypeNumber:
		if p.Min != nil {
			opts = append(opts, mcp.Min(*p.Min))
		}
		if p.Max != nil {
			opts = append(opts, mcp.Max(*p.Max))
		}
		if f, ok := toFloat(p.Default); ok {
			opts = append(opts, mcp.DefaultNumber(f))
		}
		return mcp.WithNumber(p.Name, opts...)
	case TypeBoolean:
		if b, ok := p.Default.(bool); ok {
			opts = append(opts, mcp.DefaultBool(b))
		}
		return mcp.WithBoolean(p.Name, opts...)
	case TypeArray:
		var itemOpts []mcp.PropertyOption
		if len(p.Enum) > 0 {
			itemOpts = append(itemOpts, mcp.Enum(p.Enum...))
		}
		opts = append([]mcp.PropertyOption{mcp.WithStringItems(itemOpts...)}, opts...)
		return mcp.WithArray(p.Name, opts...)
	default:
		if len(p.Enum) > 0 {
			opts = append(opts, mcp.Enum(p.Enum...))
		}
		if s, ok := p.Default.(string); ok {
			opts = append(opts, mcp.DefaultString(s))
		}
		return mcp.WithString(p.Name, opts...)
	}
}
