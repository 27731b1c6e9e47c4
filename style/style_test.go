package style

import "testing"

func TestSetTheme(t *testing.T) {
	t.Cleanup(func() { SetTheme("dark") })

	for _, name := range ThemeNames {
		if !SetTheme(name) {
			t.Fatalf("SetTheme(%q) = false", name)
		}
		if CurrentThemeName != name {
			t.Errorf("CurrentThemeName = %q, want %q", CurrentThemeName, name)
		}
		if Primary != Themes[name].Primary {
			t.Errorf("%s: Primary not applied", name)
		}
	}
	SetTheme("light")
	if IsDark() {
		t.Error("light theme reported dark")
	}
	SetTheme("tokyo-night")
	if !IsDark() {
		t.Error("tokyo-night reported light")
	}
}

func TestSetTheme_Unknown(t *testing.T) {
	SetTheme("dark")
	if SetTheme("nope") {
		t.Error("unknown theme accepted")
	}
	if CurrentThemeName != "dark" {
		t.Errorf("theme changed to %q", CurrentThemeName)
	}
}

func TestThemeNamesMatchThemes(t *testing.T) {
	if len(ThemeNames) != len(Themes) {
		t.Fatalf("%d names for %d themes", len(ThemeNames), len(Themes))
	}
	for _, name := range ThemeNames {
		if Themes[name].Name != name {
			t.Errorf("theme %q has Name %q", name, Themes[name].Name)
		}
	}
}
