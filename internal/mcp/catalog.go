package mcp

import "net/url"

// Catalog returns the eBird API 2.0 tool table. The slice is rebuilt on
// every call so callers cannot mutate a shared copy.
func Catalog() []ToolSpec {
	var tools []ToolSpec
	tools = append(tools, observationTools()...)
	tools = append(tools, productTools()...)
	tools = append(tools, hotspotTools()...)
	tools = append(tools, taxonomyTools()...)
	tools = append(tools, regionTools()...)
	return tools
}

func bound(v float64) *float64 { return &v }

var categories = []string{"species", "slash", "issf", "spuh", "hybrid", "domestic", "form", "intergrade"}

// jsonFormat pins endpoints that default to CSV.
func jsonFormat() url.Values {
	return url.Values{"fmt": {"json"}}
}

func regionCodeParam(desc string) ParamSpec {
	return ParamSpec{
		Name: "region_code", Upstream: "regionCode", Type: TypeString, In: InPath, Required: true,
		Description: desc,
	}
}

func speciesCodeParam() ParamSpec {
	return ParamSpec{
		Name: "species_code", Upstream: "speciesCode", Type: TypeString, In: InPath, Required: true,
		Description: "eBird species code (e.g., 'norcar' for Northern Cardinal, 'baleag' for Bald Eagle)",
	}
}

func backParam() ParamSpec {
	return ParamSpec{
		Name: "back", Type: TypeInteger, In: InQuery,
		Min: bound(1), Max: bound(30), Default: 14,
		Description: "Number of days back to fetch observations (1-30, default: 14)",
	}
}

func maxResultsParam(limit float64) ParamSpec {
	return ParamSpec{
		Name: "max_results", Upstream: "maxResults", Type: TypeInteger, In: InQuery,
		Min: bound(1), Max: bound(limit),
		Description: "Maximum number of results to return (omit for all)",
	}
}

func hotspotParam() ParamSpec {
	return ParamSpec{
		Name: "hotspot", Type: TypeBoolean, In: InQuery, Default: false,
		Description: "Only fetch observations from hotspots (default: false)",
	}
}

func includeProvisionalParam() ParamSpec {
	return ParamSpec{
		Name: "include_provisional", Upstream: "includeProvisional", Type: TypeBoolean, In: InQuery, Default: false,
		Description: "Include observations not yet reviewed (default: false)",
	}
}

func sppLocaleParam() ParamSpec {
	return ParamSpec{
		Name: "spp_locale", Upstream: "sppLocale", Type: TypeString, In: InQuery, Default: "en",
		Description: "Language for common names (e.g., 'en', 'es', 'fr'; default: 'en')",
	}
}

func detailParam() ParamSpec {
	return ParamSpec{
		Name: "detail", Type: TypeString, In: InQuery, Enum: []string{"simple", "full"},
		Description: "Response detail level: simple or full",
	}
}

func categoryParam() ParamSpec {
	return ParamSpec{
		Name: "cat", Type: TypeString, In: InQuery, Enum: categories,
		Description: "Only include this taxonomic category: species, slash, issf, spuh, hybrid, domestic, form, intergrade",
	}
}

func latParam() ParamSpec {
	return ParamSpec{
		Name: "lat", Type: TypeNumber, In: InQuery, Required: true,
		Min: bound(-90), Max: bound(90),
		Description: "Latitude in decimal degrees (-90 to 90)",
	}
}

func lngParam() ParamSpec {
	return ParamSpec{
		Name: "lng", Type: TypeNumber, In: InQuery, Required: true,
		Min: bound(-180), Max: bound(180),
		Description: "Longitude in decimal degrees (-180 to 180)",
	}
}

func distParam(limit float64) ParamSpec {
	return ParamSpec{
		Name: "dist", Type: TypeInteger, In: InQuery,
		Min: bound(0), Max: bound(limit), Default: 25,
		Description: "Search radius in kilometers (0-" + formatBound(limit) + ", default: 25)",
	}
}

// dateParams are the {y}/{m}/{d} path segments shared by the dated endpoints.
func dateParams() []ParamSpec {
	return []ParamSpec{
		{
			Name: "year", Upstream: "y", Type: TypeInteger, In: InPath, Required: true,
			Min: bound(1800), Max: bound(2100),
			Description: "Year (e.g., 2024)",
		},
		{
			Name: "month", Upstream: "m", Type: TypeInteger, In: InPath, Required: true,
			Min: bound(1), Max: bound(12),
			Description: "Month (1-12)",
		},
		{
			Name: "day", Upstream: "d", Type: TypeInteger, In: InPath, Required: true,
			Min: bound(1), Max: bound(31),
			Description: "Day of month (1-31)",
		},
	}
}

func formatBound(v float64) string {
	s, _ := formatValue(ParamSpec{Type: TypeNumber}, v)
	return s
}
