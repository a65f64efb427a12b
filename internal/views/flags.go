package views

// HasFilters reports whether any entry in the filter selection is set. It is
// a whole-structure reduction: one selected flag or one non-empty facet is
// enough. The presentation layer uses it to mark the filter button active.
func HasFilters(s Settings) bool {
	f := s.Filters
	if f == nil {
		return false
	}
	if f.IsHD || f.IsSD || f.Is4K || f.Is3D {
		return true
	}
	if f.HasSubtitles || f.HasTrailer || f.HasSpecialFeature || f.HasThemeSong || f.HasThemeVideo {
		return true
	}
	if f.HasParentIndex || f.IsMissing || f.IsUnaired {
		return true
	}
	return len(f.SeriesStatus) > 0 || len(f.VideoTypes) > 0 || len(f.Status) > 0 ||
		len(f.Genres) > 0 || len(f.OfficialRatings) > 0 || len(f.Tags) > 0 ||
		len(f.Years) > 0 || len(f.StudioIDs) > 0
}

// HasSortName reports whether the configured sort includes the name field.
// The alphabet picker is only meaningful under an alphabetical sort.
func HasSortName(s Settings) bool {
	for _, field := range s.SortBy {
		if field == SortByName {
			return true
		}
	}
	return false
}
