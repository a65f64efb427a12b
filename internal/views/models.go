package views

// Category identifies the kind of library screen being rendered. It drives
// both the shape of the listing query and the rendering defaults.
type Category string

const (
	CategoryMovies   Category = "movies"
	CategoryEpisodes Category = "episodes"
	CategorySongs    Category = "songs"
	CategoryArtists  Category = "artists"
	CategoryAlbums   Category = "albums"
	CategoryNetworks Category = "networks"
	CategoryGeneric  Category = "generic"
)

type ViewMode string

const (
	ViewModeGrid ViewMode = "grid"
	ViewModeList ViewMode = "list"
)

type ImageType string

const (
	ImagePrimary ImageType = "primary"
	ImageBanner  ImageType = "banner"
	ImageDisc    ImageType = "disc"
	ImageLogo    ImageType = "logo"
	ImageThumb   ImageType = "thumb"
)

type SortOrder string

const (
	SortAscending  SortOrder = "asc"
	SortDescending SortOrder = "desc"
)

// Sort field identifiers accepted in Settings.SortBy.
const (
	SortByName        = "sort_name"
	SortByYear        = "year"
	SortByDateCreated = "date_created"
	SortByRuntime     = "runtime"
	SortByRandom      = "random"
)

// Optional field names a listing query may request from the item service.
const (
	FieldSyncInfo           = "sync_info"
	FieldMediaSourceCount   = "media_source_count"
	FieldDateCreated        = "date_created"
	FieldPrimaryAspectRatio = "primary_aspect_ratio"
)

// AlphabetOther is the alphabet-picker sentinel for items whose sort key is
// non-alphabetic. It maps to an exclusive upper bound below "A", not a prefix.
const AlphabetOther = "#"

// Settings is the persisted, user-editable view record for one
// (category, parent container) pair. Every field has a deterministic default
// per category; a record is always fully populated before use.
type Settings struct {
	ShowTitle  bool      `json:"show_title"`
	ShowYear   bool      `json:"show_year"`
	ViewMode   ViewMode  `json:"view_mode"`
	ImageType  ImageType `json:"image_type"`
	CardLayout bool      `json:"card_layout"`
	SortBy     []string  `json:"sort_by"`
	SortOrder  SortOrder `json:"sort_order"`
	StartIndex int       `json:"start_index"`
	Alphabet   string    `json:"alphabet,omitempty"`
	Filters    *Filters  `json:"filters,omitempty"`
}

// Filters holds the structured constraint selection from the filter dialog.
// A nil Filters (or any zero field) means "no constraint", never "false".
type Filters struct {
	IsHD bool `json:"is_hd,omitempty"`
	IsSD bool `json:"is_sd,omitempty"`
	Is4K bool `json:"is_4k,omitempty"`
	Is3D bool `json:"is_3d,omitempty"`

	HasSubtitles      bool `json:"has_subtitles,omitempty"`
	HasTrailer        bool `json:"has_trailer,omitempty"`
	HasSpecialFeature bool `json:"has_special_feature,omitempty"`
	HasThemeSong      bool `json:"has_theme_song,omitempty"`
	HasThemeVideo     bool `json:"has_theme_video,omitempty"`

	HasParentIndex bool `json:"has_parent_index,omitempty"`
	IsMissing      bool `json:"is_missing,omitempty"`
	IsUnaired      bool `json:"is_unaired,omitempty"`

	SeriesStatus    []string `json:"series_status,omitempty"`
	VideoTypes      []string `json:"video_types,omitempty"`
	Status          []string `json:"status,omitempty"`
	Genres          []string `json:"genres,omitempty"`
	OfficialRatings []string `json:"official_ratings,omitempty"`
	Tags            []string `json:"tags,omitempty"`
	Years           []int    `json:"years,omitempty"`
	StudioIDs       []string `json:"studio_ids,omitempty"`
}

// VideoFilter is the normalized video-basic constraint set. Nil means the
// remote query layer applies no constraint for that field; IsHD carries a
// genuine tri-state (true = HD only, false = SD only, nil = either).
type VideoFilter struct {
	IsHD *bool `json:"is_hd,omitempty"`
	Is4K *bool `json:"is_4k,omitempty"`
	Is3D *bool `json:"is_3d,omitempty"`
}

// FeatureFilter mirrors the five feature flags; true when selected, nil
// otherwise. The fields are never false.
type FeatureFilter struct {
	HasSubtitles      *bool `json:"has_subtitles,omitempty"`
	HasTrailer        *bool `json:"has_trailer,omitempty"`
	HasSpecialFeature *bool `json:"has_special_feature,omitempty"`
	HasThemeSong      *bool `json:"has_theme_song,omitempty"`
	HasThemeVideo     *bool `json:"has_theme_video,omitempty"`
}

// EpisodeFilter carries the episode-specific constraints. ParentIndexNumber
// is an equality probe (the literal 0) modelling "season number present".
type EpisodeFilter struct {
	ParentIndexNumber *int  `json:"parent_index_number,omitempty"`
	IsMissing         *bool `json:"is_missing,omitempty"`
	IsUnaired         *bool `json:"is_unaired,omitempty"`
}

// ItemQuery is the flat parameter object handed to the item-listing service.
// It performs no I/O itself; absent fields mean "no constraint".
type ItemQuery struct {
	Fields     []string  `json:"fields,omitempty"`
	Limit      *int      `json:"limit,omitempty"`
	StartIndex int       `json:"start_index"`
	SortBy     []string  `json:"sort_by,omitempty"`
	SortOrder  SortOrder `json:"sort_order,omitempty"`

	NameStartsWith string `json:"name_starts_with,omitempty"`
	NameLessThan   string `json:"name_less_than,omitempty"`

	Video    VideoFilter   `json:"video"`
	Features FeatureFilter `json:"features"`
	Episode  EpisodeFilter `json:"episode"`

	SeriesStatus    []string `json:"series_status,omitempty"`
	VideoTypes      []string `json:"video_types,omitempty"`
	Status          []string `json:"status,omitempty"`
	Genres          []string `json:"genres,omitempty"`
	OfficialRatings []string `json:"official_ratings,omitempty"`
	Tags            []string `json:"tags,omitempty"`
	Years           []int    `json:"years,omitempty"`
	StudioIDs       []string `json:"studio_ids,omitempty"`
}

type Shape string

const (
	ShapeAuto     Shape = "auto"
	ShapeBanner   Shape = "banner"
	ShapeSquare   Shape = "square"
	ShapeBackdrop Shape = "backdrop"
)

// CardOptions is the resolved set of presentation instructions handed to the
// card/list renderer. Every input combination maps to a fully-populated value.
type CardOptions struct {
	Shape           Shape `json:"shape"`
	PreferDisc      bool  `json:"prefer_disc"`
	PreferLogo      bool  `json:"prefer_logo"`
	PreferThumb     bool  `json:"prefer_thumb"`
	Lines           int   `json:"lines"`
	ShowTitle       bool  `json:"show_title"`
	ShowYear        bool  `json:"show_year"`
	ShowParentTitle bool  `json:"show_parent_title"`

	OverlayMoreButton bool `json:"overlay_more_button"`
	OverlayPlayButton bool `json:"overlay_play_button"`
	OverlayText       bool `json:"overlay_text"`

	CenterText bool `json:"center_text"`
	CoverImage bool `json:"cover_image"`
	CardLayout bool `json:"card_layout"`
}

func boolPtr(b bool) *bool { return &b }
func intPtr(i int) *int    { return &i }
