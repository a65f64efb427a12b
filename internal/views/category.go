package views

// categoryConfig collects every category-specific behavior in one place:
// first-visit defaults, the field list the listing query requests, and the
// label overrides applied by the card renderer. Categories without an entry
// fall through to genericConfig (fail-open, the fallback is a valid view).
type categoryConfig struct {
	defaultViewMode  ViewMode
	defaultImageType ImageType

	// fields requested from the listing service. wantAspectOnPrimary adds
	// the aspect-ratio field when the configured image type is primary.
	fields              []string
	wantAspectOnPrimary bool

	// labelLines, when non-nil, overrides the title-driven line count.
	labelLines *int
	forceYearOff bool

	// parentTitleLabel adds a secondary parent-title label (series name,
	// album title) mirroring the title-visibility setting.
	parentTitleLabel bool
}

var genericConfig = categoryConfig{
	defaultViewMode:     ViewModeGrid,
	defaultImageType:    ImagePrimary,
	fields:              []string{FieldSyncInfo, FieldMediaSourceCount},
	wantAspectOnPrimary: true,
}

var categoryConfigs = map[Category]categoryConfig{
	CategoryMovies: genericConfig,
	CategoryEpisodes: {
		defaultViewMode:     ViewModeGrid,
		defaultImageType:    ImagePrimary,
		fields:              []string{FieldSyncInfo, FieldMediaSourceCount},
		wantAspectOnPrimary: true,
		parentTitleLabel:    true,
	},
	CategorySongs: {
		defaultViewMode:     ViewModeList,
		defaultImageType:    ImagePrimary,
		fields:              []string{FieldSyncInfo, FieldMediaSourceCount},
		wantAspectOnPrimary: true,
		parentTitleLabel:    true,
	},
	CategoryAlbums: {
		defaultViewMode:     ViewModeGrid,
		defaultImageType:    ImagePrimary,
		fields:              []string{FieldSyncInfo, FieldMediaSourceCount},
		wantAspectOnPrimary: true,
		parentTitleLabel:    true,
	},
	CategoryArtists: {
		defaultViewMode:     ViewModeGrid,
		defaultImageType:    ImagePrimary,
		fields:              []string{FieldSyncInfo, FieldMediaSourceCount},
		wantAspectOnPrimary: true,
		labelLines:          intPtr(1),
		forceYearOff:        true,
	},
	CategoryNetworks: {
		defaultViewMode:  ViewModeGrid,
		defaultImageType: ImageThumb,
		fields:           []string{FieldDateCreated, FieldPrimaryAspectRatio},
	},
	CategoryGeneric: genericConfig,
}

func configFor(c Category) categoryConfig {
	if cfg, ok := categoryConfigs[c]; ok {
		return cfg
	}
	return genericConfig
}
