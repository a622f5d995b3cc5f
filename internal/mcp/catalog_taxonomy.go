package mcp

func taxonomyTools() []ToolSpec {
	return []ToolSpec{
		{
			Name:        "get_taxonomy",
			Title:       "eBird taxonomy",
			Description: "Get the eBird taxonomy, optionally limited to a category or a list of species codes.",
			Path:        "/ref/taxonomy/ebird",
			Params: []ParamSpec{
				categoryParam(),
				{
					Name: "locale", Type: TypeString, In: InQuery,
					Description: "Locale for common names (e.g., 'en', 'es')",
				},
				{
					Name: "species", Type: TypeArray, In: InQuery,
					Description: "Only return these species codes",
				},
				{
					Name: "version", Type: TypeString, In: InQuery,
					Description: "Taxonomy version (see get_taxonomy_versions); latest when omitted",
				},
			},
			Fixed: jsonFormat(),
		},
		{
			Name:        "get_taxonomic_forms",
			Title:       "Subspecies of a species",
			Description: "Get the list of subspecies (forms) recognised for a species.",
			Path:        "/ref/taxon/forms/{speciesCode}",
			Params: []ParamSpec{
				speciesCodeParam(),
			},
		},
		{
			Name:        "get_taxa_locale_codes",
			Title:       "Supported locales",
			Description: "Get the locale codes supported for common names.",
			Path:        "/ref/taxa-locales/ebird",
		},
		{
			Name:        "get_taxonomy_versions",
			Title:       "Taxonomy versions",
			Description: "Get all eBird taxonomy versions, marking the latest.",
			Path:        "/ref/taxonomy/versions",
		},
		{
			Name:        "get_taxonomic_groups",
			Title:       "Species groups",
			Description: "Get the list of species groups (e.g., terns, finches) in Merlin or eBird taxonomic order.",
			Path:        "/ref/sppgroup/{speciesGrouping}",
			Params: []ParamSpec{
				{
					Name: "species_grouping", Upstream: "speciesGrouping", Type: TypeString, In: InPath, Required: true,
					Enum:        []string{"merlin", "ebird"},
					Description: "Grouping order: merlin (similar birds together) or ebird (taxonomic)",
				},
				{
					Name: "group_name_locale", Upstream: "groupNameLocale", Type: TypeString, In: InQuery,
					Description: "Locale for group names (e.g., 'en')",
				},
			},
		},
	}
}
