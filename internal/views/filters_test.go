package views

import "testing"

func withFilters(f Filters) Settings {
	s := Defaults(CategoryMovies)
	s.Filters = &f
	return s
}

func TestExtractVideoFilter(t *testing.T) {
	tests := []struct {
		name    string
		filters *Filters
		wantHD  *bool
		want4K  *bool
		want3D  *bool
	}{
		{"nil filters", nil, nil, nil, nil},
		{"none selected", &Filters{}, nil, nil, nil},
		{"hd only", &Filters{IsHD: true}, boolPtr(true), nil, nil},
		{"sd only", &Filters{IsSD: true}, boolPtr(false), nil, nil},
		{"hd wins over sd", &Filters{IsHD: true, IsSD: true}, boolPtr(true), nil, nil},
		{"4k", &Filters{Is4K: true}, nil, boolPtr(true), nil},
		{"3d", &Filters{Is3D: true}, nil, nil, boolPtr(true)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Defaults(CategoryMovies)
			s.Filters = tt.filters
			got := ExtractVideoFilter(s)
			assertTriState(t, "IsHD", got.IsHD, tt.wantHD)
			assertTriState(t, "Is4K", got.Is4K, tt.want4K)
			assertTriState(t, "Is3D", got.Is3D, tt.want3D)
		})
	}
}

func TestExtractVideoFilter_NeverFalse4KOr3D(t *testing.T) {
	got := ExtractVideoFilter(withFilters(Filters{IsHD: true}))
	if got.Is4K != nil {
		t.Errorf("Is4K = %v, want absent (never false)", *got.Is4K)
	}
	if got.Is3D != nil {
		t.Errorf("Is3D = %v, want absent (never false)", *got.Is3D)
	}
}

func TestExtractFeatureFilter(t *testing.T) {
	got := ExtractFeatureFilter(withFilters(Filters{
		HasSubtitles: true,
		HasThemeSong: true,
	}))
	assertTriState(t, "HasSubtitles", got.HasSubtitles, boolPtr(true))
	assertTriState(t, "HasTrailer", got.HasTrailer, nil)
	assertTriState(t, "HasSpecialFeature", got.HasSpecialFeature, nil)
	assertTriState(t, "HasThemeSong", got.HasThemeSong, boolPtr(true))
	assertTriState(t, "HasThemeVideo", got.HasThemeVideo, nil)
}

func TestExtractFeatureFilter_NilFilters(t *testing.T) {
	s := Defaults(CategoryMovies)
	got := ExtractFeatureFilter(s)
	if got.HasSubtitles != nil || got.HasTrailer != nil || got.HasSpecialFeature != nil ||
		got.HasThemeSong != nil || got.HasThemeVideo != nil {
		t.Errorf("expected all-absent feature filter, got %+v", got)
	}
}

func TestExtractEpisodeFilter_MissingGatedOnCategory(t *testing.T) {
	f := Filters{IsMissing: true}

	got := ExtractEpisodeFilter(CategoryEpisodes, withFilters(f))
	assertTriState(t, "IsMissing (episodes)", got.IsMissing, boolPtr(true))

	for _, c := range []Category{CategoryMovies, CategorySongs, CategoryNetworks, Category("podcasts")} {
		got := ExtractEpisodeFilter(c, withFilters(f))
		if got.IsMissing != nil {
			t.Errorf("IsMissing for category %s = %v, want absent", c, *got.IsMissing)
		}
	}
}

func TestExtractEpisodeFilter_ParentIndexProbe(t *testing.T) {
	got := ExtractEpisodeFilter(CategoryEpisodes, withFilters(Filters{HasParentIndex: true}))
	if got.ParentIndexNumber == nil {
		t.Fatal("ParentIndexNumber should be set")
	}
	if *got.ParentIndexNumber != 0 {
		t.Errorf("ParentIndexNumber = %d, want the literal 0", *got.ParentIndexNumber)
	}
}

func TestExtractEpisodeFilter_Unaired(t *testing.T) {
	got := ExtractEpisodeFilter(CategoryMovies, withFilters(Filters{IsUnaired: true}))
	assertTriState(t, "IsUnaired", got.IsUnaired, boolPtr(true))

	got = ExtractEpisodeFilter(CategoryMovies, withFilters(Filters{}))
	assertTriState(t, "IsUnaired", got.IsUnaired, nil)
}

func assertTriState(t *testing.T, name string, got, want *bool) {
	t.Helper()
	switch {
	case got == nil && want == nil:
	case got == nil || want == nil:
		t.Errorf("%s = %v, want %v", name, fmtTriState(got), fmtTriState(want))
	case *got != *want:
		t.Errorf("%s = %v, want %v", name, *got, *want)
	}
}

func fmtTriState(v *bool) interface{} {
	if v == nil {
		return "absent"
	}
	return *v
}
