package views

import (
	"reflect"
	"testing"
)

func TestDefaults_CategoryRules(t *testing.T) {
	tests := []struct {
		category  Category
		viewMode  ViewMode
		imageType ImageType
	}{
		{CategoryMovies, ViewModeGrid, ImagePrimary},
		{CategoryEpisodes, ViewModeGrid, ImagePrimary},
		{CategorySongs, ViewModeList, ImagePrimary},
		{CategoryArtists, ViewModeGrid, ImagePrimary},
		{CategoryAlbums, ViewModeGrid, ImagePrimary},
		{CategoryNetworks, ViewModeGrid, ImageThumb},
		{CategoryGeneric, ViewModeGrid, ImagePrimary},
	}
	for _, tt := range tests {
		s := Defaults(tt.category)
		if s.ViewMode != tt.viewMode {
			t.Errorf("Defaults(%s).ViewMode = %s, want %s", tt.category, s.ViewMode, tt.viewMode)
		}
		if s.ImageType != tt.imageType {
			t.Errorf("Defaults(%s).ImageType = %s, want %s", tt.category, s.ImageType, tt.imageType)
		}
	}
}

func TestDefaults_CommonFields(t *testing.T) {
	s := Defaults(CategoryMovies)

	if !s.ShowTitle {
		t.Error("ShowTitle should default to true")
	}
	if s.ShowYear {
		t.Error("ShowYear should default to false")
	}
	if s.CardLayout {
		t.Error("CardLayout should default to false")
	}
	if !reflect.DeepEqual(s.SortBy, []string{SortByName}) {
		t.Errorf("SortBy = %v, want [%s]", s.SortBy, SortByName)
	}
	if s.SortOrder != SortAscending {
		t.Errorf("SortOrder = %s, want %s", s.SortOrder, SortAscending)
	}
	if s.StartIndex != 0 {
		t.Errorf("StartIndex = %d, want 0", s.StartIndex)
	}
	if s.Alphabet != "" {
		t.Errorf("Alphabet = %q, want empty", s.Alphabet)
	}
	if s.Filters != nil {
		t.Error("Filters should default to nil")
	}
}

func TestDefaults_Deterministic(t *testing.T) {
	for _, c := range []Category{CategoryMovies, CategorySongs, CategoryNetworks, Category("podcasts")} {
		a := Defaults(c)
		b := Defaults(c)
		if !reflect.DeepEqual(a, b) {
			t.Errorf("Defaults(%s) not deterministic: %+v vs %+v", c, a, b)
		}
	}
}

func TestDefaults_UnknownCategoryFallsThrough(t *testing.T) {
	unknown := Defaults(Category("podcasts"))
	generic := Defaults(CategoryGeneric)
	if !reflect.DeepEqual(unknown, generic) {
		t.Errorf("unknown category = %+v, want generic defaults %+v", unknown, generic)
	}
}

func TestSettingsKey_Injective(t *testing.T) {
	pairs := []struct {
		category Category
		parentID string
	}{
		{CategoryMovies, ""},
		{CategoryMovies, "abc"},
		{CategoryMovies, "def"},
		{CategoryEpisodes, ""},
		{CategoryEpisodes, "abc"},
		{CategorySongs, "abc"},
	}
	seen := make(map[string]int)
	for i, p := range pairs {
		key := SettingsKey(p.category, p.parentID)
		if prev, ok := seen[key]; ok {
			t.Errorf("key collision between pairs %d and %d: %q", prev, i, key)
		}
		seen[key] = i
	}
}

func TestSettingsKey_AbsentParentStable(t *testing.T) {
	a := SettingsKey(CategoryMovies, "")
	b := SettingsKey(CategoryMovies, "")
	if a != b {
		t.Errorf("absent parent key not stable: %q vs %q", a, b)
	}
	if a == SettingsKey(CategoryMovies, "root") {
		t.Error("absent parent must not collide with a literal parent id")
	}
}
