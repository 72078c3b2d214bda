package core

import "testing"

func TestParseActionRoundTrip(t *testing.T) {
	for _, a := range Actions() {
		got, ok := ParseAction(a.String())
		if !ok {
			t.Errorf("ParseAction(%q) not found", a.String())
			continue
		}
		if got != a {
			t.Errorf("ParseAction(%q) = %v, expected %v", a.String(), got, a)
		}
	}
}

func TestParseActionNormalizes(t *testing.T) {
	got, ok := ParseAction("  Hard_Drop ")
	if !ok || got != ActionHardDrop {
		t.Errorf("ParseAction should ignore case and spaces, got %v, %v", got, ok)
	}
}

func TestParseActionUnknown(t *testing.T) {
	if a, ok := ParseAction("teleport"); ok || a != ActionNone {
		t.Errorf("ParseAction(teleport) = %v, %v; expected None, false", a, ok)
	}
	if ActionNone.String() != "none" {
		t.Errorf("ActionNone.String() = %q", ActionNone.String())
	}
	if Action(99).String() != "unknown" {
		t.Errorf("Action(99).String() = %q", Action(99).String())
	}
}
