package mcp

func productTools() []ToolSpec {
	return []ToolSpec{
		{
			Name:        "get_top100",
			Title:       "Top 100 contributors",
			Description: "Get the top 100 contributors on a given date for a country or subnational region, ranked by species seen or checklists submitted.",
			Path:        "/product/top100/{regionCode}/{y}/{m}/{d}",
			Params: append(append([]ParamSpec{
				regionCodeParam("Country or subnational1 region code (e.g., 'US', 'US-NY')"),
			}, dateParams()...),
				ParamSpec{
					Name: "ranked_by", Upstream: "rankedBy", Type: TypeString, In: InQuery, Enum: []string{"spp", "cl"},
					Description: "Rank by number of species (spp) or number of complete checklists (cl)",
				},
				maxResultsParam(100),
			),
		},
		{
			Name:        "get_checklist_feed",
			Title:       "Checklists submitted on a date",
			Description: "Get information on the checklists submitted in a region on a specific date.",
			Path:        "/product/lists/{regionCode}/{y}/{m}/{d}",
			Params: append(append([]ParamSpec{
				regionCodeParam("Region code (e.g., 'US-NY')"),
			}, dateParams()...),
				ParamSpec{
					Name: "sort_key", Upstream: "sortKey", Type: TypeString, In: InQuery, Enum: []string{"obs_dt", "creation_dt"},
					Description: "Order by observation date (obs_dt) or submission date (creation_dt)",
				},
				maxResultsParam(200),
			),
		},
		{
			Name:        "get_recent_checklists",
			Title:       "Recent checklists",
			Description: "Get the most recently submitted checklists for a region.",
			Path:        "/product/lists/{regionCode}",
			Params: []ParamSpec{
				regionCodeParam("Region code (e.g., 'US-NY') or location id"),
				maxResultsParam(200),
			},
		},
		{
			Name:        "get_regional_statistics",
			Title:       "Regional statistics",
			Description: "Get a summary of the number of checklists, contributors and species seen in a region on a date.",
			Path:        "/product/stats/{regionCode}/{y}/{m}/{d}",
			Params: append([]ParamSpec{
				regionCodeParam("Region code (e.g., 'US-NY')"),
			}, dateParams()...),
		},
		{
			Name:        "get_species_list",
			Title:       "Species list for a region",
			Description: "Get the list of species codes ever seen in a region, in taxonomic order.",
			Path:        "/product/spplist/{regionCode}",
			Params: []ParamSpec{
				regionCodeParam("Region code (e.g., 'US-NY') or location id"),
			},
		},
		{
			Name:        "get_checklist",
			Title:       "View a checklist",
			Description: "Get the details and observations of a single checklist.",
			Path:        "/product/checklist/view/{subId}",
			Params: []ParamSpec{
				{
					Name: "sub_id", Upstream: "subId", Type: TypeString, In: InPath, Required: true,
					Description: "Checklist submission id (e.g., 'S29893687')",
				},
			},
		},
	}
}
