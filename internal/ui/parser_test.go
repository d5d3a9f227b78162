package ui

import (
	"testing"
)

func TestParseCSS(t *testing.T) {
	css := `
/* lobby styling */
.panel {
	background: #222;
	width: 400px;
	opacity: 0.9;
}
#play {
	background: #4a4;
	fade-duration: 1000ms;
}
.panel {
	width: 420px;
}
`
	sheet, err := ParseCSS(css)
	if err != nil {
		t.Fatal(err)
	}
	if len(sheet.Rules) != 3 {
		t.Fatalf("got %d rules, want 3", len(sheet.Rules))
	}
	if sheet.Rules[0].Selector != ".panel" || sheet.Rules[1].Selector != "#play" {
		t.Errorf("unexpected selectors: %q, %q", sheet.Rules[0].Selector, sheet.Rules[1].Selector)
	}
	if sheet.Rules[0].Props["background"] != "#222" {
		t.Errorf("background = %q, want #222", sheet.Rules[0].Props["background"])
	}
	if sheet.Rules[2].Props["width"] != "420px" {
		t.Errorf("override rule width = %q, want 420px", sheet.Rules[2].Props["width"])
	}
}

func TestParseCSSSkipsUnsupportedSelectors(t *testing.T) {
	sheet, err := ParseCSS(`body { margin: 0; } .ok { width: 10; }`)
	if err != nil {
		t.Fatal(err)
	}
	if len(sheet.Rules) != 1 || sheet.Rules[0].Selector != ".ok" {
		t.Errorf("got %+v, want only .ok", sheet.Rules)
	}
}

func TestResolvePropsMerge(t *testing.T) {
	sheet, _ := ParseCSS(`.btn { background: #333; color: #fff; } #play { background: #4a4; }`)
	panel := NewPanel(0)
	e := New(panel)
	e.SetStylesheet(sheet)
	n := NewNode("button", "btn", "play", "PLAY")
	e.AddNode(n)

	props := e.resolveProps(n)
	if props["background"] != "#4a4" {
		t.Errorf("later #id rule should win: background = %q", props["background"])
	}
	if props["color"] != "#fff" {
		t.Errorf("class rule color lost: %q", props["color"])
	}
}
