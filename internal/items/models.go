package items

import (
	"time"

	"github.com/davidhaley/medley/internal/views"
)

// Item is one library entry as returned by the listing service. Optional
// pointer fields are populated only when the query's field selection asks
// for them.
type Item struct {
	ID       string          `json:"id"`
	ParentID *string         `json:"parent_id,omitempty"`
	ItemType views.Category  `json:"item_type"`
	Name     string          `json:"name"`
	SortName string          `json:"sort_name"`
	Year     *int            `json:"year,omitempty"`

	RuntimeMinutes *int `json:"runtime_minutes,omitempty"`

	IsHD bool `json:"is_hd"`
	Is4K bool `json:"is_4k"`
	Is3D bool `json:"is_3d"`

	HasSubtitles      bool `json:"has_subtitles"`
	HasTrailer        bool `json:"has_trailer"`
	HasSpecialFeature bool `json:"has_special_feature"`
	HasThemeSong      bool `json:"has_theme_song"`
	HasThemeVideo     bool `json:"has_theme_video"`

	SeasonNumber *int `json:"season_number,omitempty"`
	IsMissing    bool `json:"is_missing"`
	IsUnaired    bool `json:"is_unaired"`

	SeriesStatus   *string  `json:"series_status,omitempty"`
	VideoType      *string  `json:"video_type,omitempty"`
	Status         *string  `json:"status,omitempty"`
	OfficialRating *string  `json:"official_rating,omitempty"`
	Genres         []string `json:"genres,omitempty"`
	Tags           []string `json:"tags,omitempty"`
	StudioIDs      []string `json:"studio_ids,omitempty"`

	// Field-selected extras.
	SyncEnabled        *bool      `json:"sync_enabled,omitempty"`
	MediaSourceCount   *int       `json:"media_source_count,omitempty"`
	CreatedAt          *time.Time `json:"created_at,omitempty"`
	PrimaryAspectRatio *float64   `json:"primary_aspect_ratio,omitempty"`
}

// QueryResult is one page of a listing plus the unpaged total.
type QueryResult struct {
	Items            []Item `json:"items"`
	TotalRecordCount int    `json:"total_record_count"`
}

// Facets are the distinct filter values available under a container, shown
// by the filter dialog. Refreshed in the background, read at dialog open.
type Facets struct {
	Genres          []string `json:"genres"`
	OfficialRatings []string `json:"official_ratings"`
	Tags            []string `json:"tags"`
	Years           []int    `json:"years"`
	StudioIDs       []string `json:"studio_ids"`
	RefreshedAt     *time.Time `json:"refreshed_at,omitempty"`
}

// LetterCount is one alphabet-picker bucket with its cumulative offset.
type LetterCount struct {
	Letter string `json:"letter"`
	Count  int    `json:"count"`
	Offset int    `json:"offset"`
}
