package ui

import "testing"

func TestGetTheme_FallsBackToNightfox(t *testing.T) {
	if got := GetTheme("nope").Name; got != "Nightfox" {
		t.Fatalf("GetTheme(nope) = %q, want Nightfox", got)
	}
	for _, name := range ThemeNames() {
		if got := GetTheme(name).Name; got != name {
			t.Fatalf("GetTheme(%q) = %q", name, got)
		}
	}
}

func TestNextTheme_Cycles(t *testing.T) {
	names := ThemeNames()
	current := names[0]
	for i := 0; i < len(names); i++ {
		current = NextTheme(current)
	}
	if current != names[0] {
		t.Fatalf("NextTheme did not cycle back, got %q", current)
	}
	if got := NextTheme("unknown"); got != names[0] {
		t.Fatalf("NextTheme(unknown) = %q, want %q", got, names[0])
	}
}

func TestBadgeStyle_StablePerLabel(t *testing.T) {
	styles := GetTheme("Slate").Styles()
	a := styles.BadgeStyle("jewelery").GetBackground()
	b := styles.BadgeStyle("jewelery").GetBackground()
	if a != b {
		t.Fatalf("BadgeStyle background changed between calls: %v vs %v", a, b)
	}
}
