package mcp

func hotspotTools() []ToolSpec {
	return []ToolSpec{
		{
			Name:        "get_hotspots_in_region",
			Title:       "Hotspots in a region",
			Description: "Get the birding hotspots in a region.",
			Path:        "/ref/hotspot/{regionCode}",
			Params: []ParamSpec{
				regionCodeParam("Region code (e.g., 'US-NY', 'US-NY-109')"),
				{
					Name: "back", Type: TypeInteger, In: InQuery, Min: bound(1), Max: bound(30),
					Description: "Only hotspots visited in the last N days (1-30)",
				},
			},
			Fixed: jsonFormat(),
		},
		{
			Name:        "get_nearby_hotspots",
			Title:       "Hotspots near a location",
			Description: "Get birding hotspots within a radius of a latitude/longitude.",
			Path:        "/ref/hotspot/geo",
			Params: []ParamSpec{
				latParam(),
				lngParam(),
				distParam(500),
				{
					Name: "back", Type: TypeInteger, In: InQuery, Min: bound(1), Max: bound(30),
					Description: "Only hotspots visited in the last N days (1-30)",
				},
			},
			Fixed: jsonFormat(),
		},
		{
			Name:        "get_hotspot_info",
			Title:       "Hotspot details",
			Description: "Get information about a specific hotspot.",
			Path:        "/ref/hotspot/info/{locId}",
			Params: []ParamSpec{
				{
					Name: "loc_id", Upstream: "locId", Type: TypeString, In: InPath, Required: true,
					Description: "Hotspot location id (e.g., 'L99381')",
				},
			},
		},
	}
}
