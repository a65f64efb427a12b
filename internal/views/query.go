package views

// BuildQuery composes field selection, pagination, alphabet bounds, and the
// extracted filters into the flat parameter object the item-listing service
// consumes. pageSize is the caller-supplied page-size preference; nil omits
// the limit so the service applies its own default.
func BuildQuery(c Category, s Settings, pageSize *int) ItemQuery {
	cfg := configFor(c)

	fields := make([]string, len(cfg.fields))
	copy(fields, cfg.fields)
	if cfg.wantAspectOnPrimary && s.ImageType == ImagePrimary {
		fields = append(fields, FieldPrimaryAspectRatio)
	}

	q := ItemQuery{
		Fields:     fields,
		StartIndex: s.StartIndex,
		SortBy:     s.SortBy,
		SortOrder:  s.SortOrder,
		Video:      ExtractVideoFilter(s),
		Features:   ExtractFeatureFilter(s),
		Episode:    ExtractEpisodeFilter(c, s),
	}
	if pageSize != nil {
		limit := *pageSize
		q.Limit = &limit
	}

	// The '#' bucket is "sorts below A", an exclusive upper bound rather
	// than a prefix match. Both constraints are case-sensitive.
	switch s.Alphabet {
	case "":
	case AlphabetOther:
		q.NameLessThan = "A"
	default:
		q.NameStartsWith = s.Alphabet
	}

	if f := s.Filters; f != nil {
		q.SeriesStatus = f.SeriesStatus
		q.VideoTypes = f.VideoTypes
		q.Status = f.Status
		q.Genres = f.Genres
		q.OfficialRatings = f.OfficialRatings
		q.Tags = f.Tags
		q.Years = f.Years
		q.StudioIDs = f.StudioIDs
	}
	return q
}
