package locale

import "testing"

func TestLoad_English(t *testing.T) {
	c, err := Load("en")
	if err != nil {
		t.Fatalf("Load(en) error: %v", err)
	}
	if c.Language() != "en" {
		t.Errorf("Language() = %q, want en", c.Language())
	}
	if got := c.T("HOLDING_NOTHING"); got != "Holding: nothing" {
		t.Errorf("T(HOLDING_NOTHING) = %q", got)
	}
	if got := c.T("PICKED_UP", 4); got != "Picked up ITEM{4}." {
		t.Errorf("T(PICKED_UP, 4) = %q", got)
	}
}

func TestLoad_UnknownLanguage(t *testing.T) {
	if _, err := Load("xx"); err == nil {
		t.Error("Load(xx) succeeded, want error")
	}
}

func TestT_UnknownKeyPassesThrough(t *testing.T) {
	if got := T("NOT_A_KEY"); got != "NOT_A_KEY" {
		t.Errorf("T(NOT_A_KEY) = %q, want key back", got)
	}
}

func TestT_EveryKeyTranslated(t *testing.T) {
	keys := []string{
		"WELCOME", "YOU_ARE_HERE", "OUT_OF_RANGE", "NOTHING_TO_PLACE", "VALUES_MUST_MATCH",
		"PICKED_UP", "PLACED", "CRAFTED", "WIN", "HOLDING_NOTHING", "HOLDING",
		"MOVED", "PANNED", "RECENTERED", "DUMPED", "DUMP_FAILED",
		"SCREENSHOT", "SCREENSHOT_FAILED", "UNKNOWN_COMMAND", "HELP", "GOODBYE",
	}
	c, err := Load(DefaultLanguage)
	if err != nil {
		t.Fatal(err)
	}
	for _, k := range keys {
		if got := c.T(k); got == k || got == "" {
			t.Errorf("key %s has no translation (got %q)", k, got)
		}
	}
}
