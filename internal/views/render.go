package views

// ResolveCardOptions maps a settings record and its category into the card
// presentation options. There are no failure modes: every combination yields
// a fully-populated options value.
func ResolveCardOptions(c Category, s Settings) CardOptions {
	cfg := configFor(c)

	opts := CardOptions{
		ShowTitle:  s.ShowTitle,
		ShowYear:   s.ShowYear,
		CardLayout: s.CardLayout,

		OverlayMoreButton: true,
		OverlayPlayButton: false,
		// Keep a descriptive overlay whenever the title label is hidden
		// so the item never loses its name entirely.
		OverlayText: !s.ShowTitle,

		CenterText: true,
		CoverImage: true,
	}

	switch s.ImageType {
	case ImageBanner:
		opts.Shape = ShapeBanner
	case ImageDisc:
		opts.Shape = ShapeSquare
		opts.PreferDisc = true
	case ImageLogo:
		opts.Shape = ShapeBackdrop
		opts.PreferLogo = true
	case ImageThumb:
		opts.Shape = ShapeBackdrop
		opts.PreferThumb = true
	default:
		opts.Shape = ShapeAuto
	}

	if s.ShowTitle {
		opts.Lines = 2
	}
	if cfg.labelLines != nil {
		opts.Lines = *cfg.labelLines
	}
	if cfg.forceYearOff {
		opts.ShowYear = false
	}
	if cfg.parentTitleLabel {
		opts.ShowParentTitle = s.ShowTitle
	}
	return opts
}
