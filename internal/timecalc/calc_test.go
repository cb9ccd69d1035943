package timecalc

import (
	"testing"

	"github.com/akyairhashvil/roshtimer/internal/models"
)

func TestRoshanWindow(t *testing.T) {
	got := RoshanWindow(models.ParsedTime{Minutes: 44, Seconds: 12}, DefaultOptions())
	want := models.RoshanWindow{Early: "52:12", Latest: "55:12"}
	if got != want {
		t.Fatalf("RoshanWindow = %+v, want %+v", got, want)
	}
}

func TestRoshanWindowIdempotent(t *testing.T) {
	p := models.ParsedTime{Minutes: 30, Seconds: 7}
	first := RoshanWindow(p, DefaultOptions())
	second := RoshanWindow(p, DefaultOptions())
	if first != second {
		t.Fatalf("expected identical windows, got %+v and %+v", first, second)
	}
}

func TestGlyphTime(t *testing.T) {
	if got := GlyphTime(models.ParsedTime{Minutes: 44, Seconds: 12}, DefaultOptions()); got != "49:12" {
		t.Fatalf("GlyphTime = %q, want 49:12", got)
	}
}

func TestFormatClock(t *testing.T) {
	cases := []struct {
		m, s int
		want string
	}{
		{44, 5, "44:05"},
		{52, 5, "52:05"},
		{95, 0, "95:00"},
		{0, 0, "0:00"},
		{130, 59, "130:59"},
	}
	for _, tc := range cases {
		if got := FormatClock(tc.m, tc.s); got != tc.want {
			t.Fatalf("FormatClock(%d, %d) = %q, want %q", tc.m, tc.s, got, tc.want)
		}
	}
}

func TestCustomOffsets(t *testing.T) {
	opts := DefaultOptions()
	opts.RoshanEarly, opts.RoshanLatest, opts.GlyphCooldown = 7, 10, 4
	p := models.ParsedTime{Minutes: 10, Seconds: 30}
	if w := RoshanWindow(p, opts); w.Early != "17:30" || w.Latest != "20:30" {
		t.Fatalf("unexpected window %+v", w)
	}
	if g := GlyphTime(p, opts); g != "14:30" {
		t.Fatalf("unexpected glyph %q", g)
	}
}
