package renderer

import (
	"testing"
)

func TestExpandMarkup_Styles(t *testing.T) {
	style := func(text string, s TextStyle) string {
		switch s {
		case StyleItem:
			return "<i>" + text + "</i>"
		case StyleActionShort:
			return "<k>" + text + "</k>"
		case StyleAction:
			return "<a>" + text + "</a>"
		case StyleWin:
			return "<w>" + text + "</w>"
		default:
			return text
		}
	}
	tests := []struct {
		in   string
		want string
	}{
		{"Picked up ITEM{4}.", "Picked up <i>4</i>."},
		{"ACTION{take} here", "<k>t</k><a>ake</a> here"},
		{"WIN{You won!} yay", "<w>You won!</w> yay"},
		{"plain text", "plain text"},
		{"UNKNOWNFN{x}", "x"},
	}
	for _, tt := range tests {
		if got := ExpandMarkup(tt.in, style); got != tt.want {
			t.Errorf("ExpandMarkup(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStripMarkupAndWidth(t *testing.T) {
	msg := "Holding: ITEM{16}"
	if got := StripMarkup(msg); got != "Holding: 16" {
		t.Errorf("StripMarkup = %q", got)
	}
	if got := PlainWidth(msg); got != len("Holding: 16") {
		t.Errorf("PlainWidth = %d", got)
	}
}

func TestRecorder_TracksDrawnCells(t *testing.T) {
	r := NewRecorder()
	var s Surface = r
	v := CellView{Value: 4}
	s.DrawCell(v)
	s.UpdateCell(CellView{Value: 8})
	if got := r.Cells[v.Cell].Value; got != 8 {
		t.Errorf("after update value = %d, want 8", got)
	}
	s.Clear()
	if len(r.Cells) != 0 || len(r.Order) != 0 {
		t.Error("Clear left cells behind")
	}
	s.UpdateCell(CellView{Value: 2})
	if len(r.Cells) != 0 {
		t.Error("UpdateCell drew a cell that was not on the surface")
	}
}
