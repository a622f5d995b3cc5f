package mcp

func observationTools() []ToolSpec {
	return []ToolSpec{
		{
			Name:        "get_recent_observations",
			Title:       "Recent observations in a region",
			Description: "Get recent bird observations in a region, one record per species (the most recent sighting).",
			Path:        "/data/obs/{regionCode}/recent",
			Params: []ParamSpec{
				regionCodeParam("Region code (e.g., 'US', 'US-NY', 'US-NY-109', or a location id like 'L99381')"),
				backParam(),
				maxResultsParam(10000),
				categoryParam(),
				hotspotParam(),
				includeProvisionalParam(),
				detailParam(),
				sppLocaleParam(),
			},
		},
		{
			Name:        "get_recent_notable_observations",
			Title:       "Recent notable observations in a region",
			Description: "Get recent notable (locally or nationally rare) bird observations in a region.",
			Path:        "/data/obs/{regionCode}/recent/notable",
			Params: []ParamSpec{
				regionCodeParam("Region code (e.g., 'US-NY')"),
				backParam(),
				maxResultsParam(10000),
				detailParam(),
				hotspotParam(),
				sppLocaleParam(),
			},
		},
		{
			Name:        "get_recent_species_observations",
			Title:       "Recent observations of a species in a region",
			Description: "Get recent observations of a specific species in a region.",
			Path:        "/data/obs/{regionCode}/recent/{speciesCode}",
			Params: []ParamSpec{
				regionCodeParam("Region code (e.g., 'US-NY')"),
				speciesCodeParam(),
				backParam(),
				maxResultsParam(10000),
				hotspotParam(),
				includeProvisionalParam(),
				sppLocaleParam(),
			},
		},
		{
			Name:        "get_nearby_observations",
			Title:       "Recent observations near a location",
			Description: "Get recent bird observations within a radius of a latitude/longitude.",
			Path:        "/data/obs/geo/recent",
			Params: []ParamSpec{
				latParam(),
				lngParam(),
				distParam(50),
				backParam(),
				maxResultsParam(10000),
				categoryParam(),
				hotspotParam(),
				includeProvisionalParam(),
				{
					Name: "sort", Type: TypeString, In: InQuery, Enum: []string{"date", "species"},
					Description: "Sort results by date or by taxonomic order (species)",
				},
				sppLocaleParam(),
			},
		},
		{
			Name:        "get_nearby_notable_observations",
			Title:       "Recent notable observations near a location",
			Description: "Get recent notable bird observations within a radius of a latitude/longitude.",
			Path:        "/data/obs/geo/recent/notable",
			Params: []ParamSpec{
				latParam(),
				lngParam(),
				distParam(50),
				backParam(),
				maxResultsParam(10000),
				detailParam(),
				hotspotParam(),
				sppLocaleParam(),
			},
		},
		{
			Name:        "get_nearby_species_observations",
			Title:       "Recent observations of a species near a location",
			Description: "Get recent observations of a specific species within a radius of a latitude/longitude.",
			Path:        "/data/obs/geo/recent/{speciesCode}",
			Params: []ParamSpec{
				speciesCodeParam(),
				latParam(),
				lngParam(),
				distParam(50),
				backParam(),
				maxResultsParam(10000),
				hotspotParam(),
				includeProvisionalParam(),
				sppLocaleParam(),
			},
		},
		{
			Name:        "get_nearest_species_observations",
			Title:       "Nearest observations of a species",
			Description: "Find the nearest locations where a species has been seen recently, closest first.",
			Path:        "/data/nearest/geo/recent/{speciesCode}",
			Params: []ParamSpec{
				speciesCodeParam(),
				latParam(),
				lngParam(),
				distParam(50),
				backParam(),
				maxResultsParam(3000),
				hotspotParam(),
				includeProvisionalParam(),
				sppLocaleParam(),
			},
		},
		{
			Name:        "get_historic_observations",
			Title:       "Observations on a date",
			Description: "Get a list of all taxa seen in a region on a specific date.",
			Path:        "/data/obs/{regionCode}/historic/{y}/{m}/{d}",
			Params: append(append([]ParamSpec{
				regionCodeParam("Region code (e.g., 'US-NY')"),
			}, dateParams()...),
				ParamSpec{
					Name: "rank", Type: TypeString, In: InQuery, Enum: []string{"mrec", "create"},
					Description: "Which observation to keep per species: mrec (latest) or create (first added)",
				},
				detailParam(),
				categoryParam(),
				hotspotParam(),
				includeProvisionalParam(),
				maxResultsParam(10000),
				ParamSpec{
					Name: "regions", Upstream: "r", Type: TypeArray, In: InQuery, Max: bound(50),
					Description: "Fetch observations from up to 50 region codes instead of region_code alone",
				},
				sppLocaleParam(),
			),
		},
	}
}
