package mcp

func regionTools() []ToolSpec {
	return []ToolSpec{
		{
			Name:        "get_region_info",
			Title:       "Region details",
			Description: "Get the name and bounding box of a region.",
			Path:        "/ref/region/info/{regionCode}",
			Params: []ParamSpec{
				regionCodeParam("Region code (e.g., 'US-NY', 'CA-ON') or location id"),
				{
					Name: "region_name_format", Upstream: "regionNameFormat", Type: TypeString, In: InQuery,
					Enum:        []string{"detailed", "detailednoqual", "full", "namequal", "nameonly", "revdetailed"},
					Description: "How to format the region name",
				},
				{
					Name: "delim", Type: TypeString, In: InQuery,
					Description: "Delimiter between name parts (default ', ')",
				},
			},
		},
		{
			Name:        "get_sub_regions",
			Title:       "Sub-regions",
			Description: "Get the countries, states/provinces or counties inside a parent region.",
			Path:        "/ref/region/list/{regionType}/{parentRegionCode}",
			Params: []ParamSpec{
				{
					Name: "region_type", Upstream: "regionType", Type: TypeString, In: InPath, Required: true,
					Enum:        []string{"country", "subnational1", "subnational2"},
					Description: "Type of sub-region to list",
				},
				{
					Name: "parent_region_code", Upstream: "parentRegionCode", Type: TypeString, In: InPath, Required: true,
					Description: "Parent region code (e.g., 'world', 'US', 'US-NY')",
				},
			},
			Fixed: jsonFormat(),
		},
		{
			Name:        "get_adjacent_regions",
			Title:       "Adjacent regions",
			Description: "Get the regions bordering a country, subnational1 or subnational2 region.",
			Path:        "/ref/adjacent/{regionCode}",
			Params: []ParamSpec{
				regionCodeParam("Region code (e.g., 'US-NY')"),
			},
		},
	}
}
