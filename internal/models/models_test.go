package models

import "testing"

func TestCalculatedTimesIndependence(t *testing.T) {
	c := CalculatedTimes{}.WithGlyph("49:12")
	c = c.WithRoshan(RoshanWindow{Early: "52:12", Latest: "55:12"})
	if c.Glyph != "49:12" {
		t.Fatalf("WithRoshan cleared glyph: %+v", c)
	}
	c = c.WithGlyph("50:00")
	if c.Early != "52:12" || c.Latest != "55:12" {
		t.Fatalf("WithGlyph cleared respawn fields: %+v", c)
	}
}

func TestRowsForRoshan(t *testing.T) {
	c := CalculatedTimes{Early: "52:12", Latest: "55:12", Glyph: "49:12"}
	rows := RowsFor(TabRoshan, c)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	want := []string{"Early time: 52:12", "Latest time: 55:12", "Rosh respawn: 52:12-55:12"}
	for i, w := range want {
		if rows[i].CopyText != w {
			t.Fatalf("row %d CopyText = %q, want %q", i, rows[i].CopyText, w)
		}
	}
	if rows[2].Value != "52:12 - 55:12" {
		t.Fatalf("range value = %q", rows[2].Value)
	}
}

func TestRowsForRangeNeedsBoth(t *testing.T) {
	rows := RowsFor(TabRoshan, CalculatedTimes{Early: "8:00"})
	if len(rows) != 1 || rows[0].Kind != RowEarly {
		t.Fatalf("expected only the early row, got %+v", rows)
	}
}

func TestRowsForGlyph(t *testing.T) {
	if rows := RowsFor(TabGlyph, CalculatedTimes{Early: "8:00", Latest: "11:00"}); len(rows) != 0 {
		t.Fatalf("expected no glyph rows, got %+v", rows)
	}
	rows := RowsFor(TabGlyph, CalculatedTimes{Glyph: "49:12"})
	if len(rows) != 1 || rows[0].CopyText != "Glyph time: 49:12" {
		t.Fatalf("unexpected glyph rows: %+v", rows)
	}
}

func TestTabString(t *testing.T) {
	if TabRoshan.String() != "Roshan" || TabGlyph.String() != "Glyph" {
		t.Fatalf("unexpected tab names")
	}
}
