package views

// ExtractVideoFilter normalizes the video-basic flags into a tri-state
// constraint. IsHD is true for the HD flag, false for the SD flag, nil when
// neither is selected. If both flags are somehow set, HD wins. Is4K and Is3D
// are true when selected and nil otherwise, never false.
func ExtractVideoFilter(s Settings) VideoFilter {
	var v VideoFilter
	f := s.Filters
	if f == nil {
		return v
	}
	switch {
	case f.IsHD:
		v.IsHD = boolPtr(true)
	case f.IsSD:
		v.IsHD = boolPtr(false)
	}
	if f.Is4K {
		v.Is4K = boolPtr(true)
	}
	if f.Is3D {
		v.Is3D = boolPtr(true)
	}
	return v
}

// ExtractFeatureFilter maps each feature flag to true when selected and nil
// otherwise. Absence, not false, is what tells the listing service to skip
// the constraint.
func ExtractFeatureFilter(s Settings) FeatureFilter {
	var v FeatureFilter
	f := s.Filters
	if f == nil {
		return v
	}
	if f.HasSubtitles {
		v.HasSubtitles = boolPtr(true)
	}
	if f.HasTrailer {
		v.HasTrailer = boolPtr(true)
	}
	if f.HasSpecialFeature {
		v.HasSpecialFeature = boolPtr(true)
	}
	if f.HasThemeSong {
		v.HasThemeSong = boolPtr(true)
	}
	if f.HasThemeVideo {
		v.HasThemeVideo = boolPtr(true)
	}
	return v
}

// ExtractEpisodeFilter normalizes the episode flags. ParentIndexNumber emits
// the literal 0 as an equality probe for "season number present".
//
// IsMissing is a category gate, not a user toggle: it is emitted only when
// the current view is the episodes category. For every other category the
// stored flag is ignored and the constraint stays absent.
func ExtractEpisodeFilter(c Category, s Settings) EpisodeFilter {
	var v EpisodeFilter
	f := s.Filters
	if f == nil {
		return v
	}
	if f.HasParentIndex {
		v.ParentIndexNumber = intPtr(0)
	}
	if f.IsMissing && c == CategoryEpisodes {
		v.IsMissing = boolPtr(true)
	}
	if f.IsUnaired {
		v.IsUnaired = boolPtr(true)
	}
	return v
}
