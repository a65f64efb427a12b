package views

import "testing"

func TestResolveCardOptions_ShapeMapping(t *testing.T) {
	tests := []struct {
		imageType   ImageType
		shape       Shape
		preferDisc  bool
		preferLogo  bool
		preferThumb bool
	}{
		{ImageBanner, ShapeBanner, false, false, false},
		{ImageDisc, ShapeSquare, true, false, false},
		{ImageLogo, ShapeBackdrop, false, true, false},
		{ImageThumb, ShapeBackdrop, false, false, true},
		{ImagePrimary, ShapeAuto, false, false, false},
		{ImageType("poster"), ShapeAuto, false, false, false},
	}
	for _, tt := range tests {
		s := Defaults(CategoryMovies)
		s.ImageType = tt.imageType
		got := ResolveCardOptions(CategoryMovies, s)
		if got.Shape != tt.shape {
			t.Errorf("image %s: Shape = %s, want %s", tt.imageType, got.Shape, tt.shape)
		}
		if got.PreferDisc != tt.preferDisc || got.PreferLogo != tt.preferLogo || got.PreferThumb != tt.preferThumb {
			t.Errorf("image %s: prefers = disc:%v logo:%v thumb:%v, want disc:%v logo:%v thumb:%v",
				tt.imageType, got.PreferDisc, got.PreferLogo, got.PreferThumb,
				tt.preferDisc, tt.preferLogo, tt.preferThumb)
		}
	}
}

func TestResolveCardOptions_Lines(t *testing.T) {
	s := Defaults(CategoryMovies)
	s.ShowTitle = true
	if got := ResolveCardOptions(CategoryMovies, s); got.Lines != 2 {
		t.Errorf("Lines = %d, want 2 with titles shown", got.Lines)
	}

	s.ShowTitle = false
	if got := ResolveCardOptions(CategoryMovies, s); got.Lines != 0 {
		t.Errorf("Lines = %d, want 0 with titles hidden", got.Lines)
	}
}

func TestResolveCardOptions_ArtistsOverride(t *testing.T) {
	// The artists override applies regardless of the stored record.
	for _, showTitle := range []bool{true, false} {
		for _, showYear := range []bool{true, false} {
			s := Defaults(CategoryArtists)
			s.ShowTitle = showTitle
			s.ShowYear = showYear
			got := ResolveCardOptions(CategoryArtists, s)
			if got.Lines != 1 {
				t.Errorf("artists Lines = %d, want 1 (showTitle=%v)", got.Lines, showTitle)
			}
			if got.ShowYear {
				t.Errorf("artists ShowYear = true, want forced off (stored=%v)", showYear)
			}
		}
	}
}

func TestResolveCardOptions_ParentTitle(t *testing.T) {
	withParent := []Category{CategorySongs, CategoryAlbums, CategoryEpisodes}
	for _, c := range withParent {
		s := Defaults(c)
		s.ShowTitle = true
		if got := ResolveCardOptions(c, s); !got.ShowParentTitle {
			t.Errorf("%s: ShowParentTitle = false, want true when titles shown", c)
		}
		s.ShowTitle = false
		if got := ResolveCardOptions(c, s); got.ShowParentTitle {
			t.Errorf("%s: ShowParentTitle = true, want mirroring hidden titles", c)
		}
	}

	s := Defaults(CategoryMovies)
	s.ShowTitle = true
	if got := ResolveCardOptions(CategoryMovies, s); got.ShowParentTitle {
		t.Error("movies should never request a parent title label")
	}
}

func TestResolveCardOptions_Overlays(t *testing.T) {
	s := Defaults(CategoryMovies)

	s.ShowTitle = true
	got := ResolveCardOptions(CategoryMovies, s)
	if !got.OverlayMoreButton {
		t.Error("more-actions overlay should always be enabled")
	}
	if got.OverlayPlayButton {
		t.Error("play overlay should always be disabled")
	}
	if got.OverlayText {
		t.Error("overlay text should be off while titles are shown")
	}

	s.ShowTitle = false
	got = ResolveCardOptions(CategoryMovies, s)
	if !got.OverlayText {
		t.Error("overlay text should be on when titles are hidden")
	}
}

func TestResolveCardOptions_AlwaysOn(t *testing.T) {
	for _, c := range []Category{CategoryMovies, CategoryArtists, CategoryNetworks, Category("podcasts")} {
		got := ResolveCardOptions(c, Defaults(c))
		if !got.CenterText {
			t.Errorf("%s: CenterText should always be enabled", c)
		}
		if !got.CoverImage {
			t.Errorf("%s: CoverImage should always be enabled", c)
		}
	}
}
