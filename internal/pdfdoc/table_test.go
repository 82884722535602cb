package pdfdoc

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestColumnWidths(t *testing.T) {
	even, err := ColumnWidths(4, nil, 180)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, w := range even {
		if w != 45 {
			t.Fatalf("even split gave %v", even)
		}
	}

	ratio, err := ColumnWidths(3, []float64{1, 2, 1}, 180)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ratio[0] != 45 || ratio[1] != 90 || ratio[2] != 45 {
		t.Fatalf("ratio split gave %v", ratio)
	}

	if _, err := ColumnWidths(3, []float64{1, 2}, 180); err == nil {
		t.Fatalf("expected mismatch error")
	}
	if _, err := ColumnWidths(2, []float64{1, 0}, 180); err == nil {
		t.Fatalf("expected non-positive width error")
	}
	if _, err := ColumnWidths(0, nil, 180); err == nil {
		t.Fatalf("expected no-columns error")
	}
}

func TestDrawTableShadesEvenRows(t *testing.T) {
	c, rec := newTestCanvas()
	rows := [][]string{{"1", "a"}, {"2", "b"}, {"3", "c"}}
	if err := c.DrawTable([]string{"ลำดับ", "ชื่อ"}, rows, nil); err != nil {
		t.Fatalf("DrawTable: %v", err)
	}

	fills := 0
	for _, op := range rec.Ops {
		if op.Kind == "rect" && op.Style == "F" {
			fills++
		}
	}
	// header band + rows 0 and 2
	if fills != 3 {
		t.Fatalf("fills = %d, want 3", fills)
	}

	want := c.Geometry().MarginTop + 4*RowHeight + tableSpacing
	if got := c.State().CursorY; got != want {
		t.Fatalf("cursor = %v, want %v", got, want)
	}
}

func TestDrawTableRepeatsHeaderOnPageBreak(t *testing.T) {
	c, rec := newTestCanvas()
	rows := make([][]string, 60)
	for i := range rows {
		rows[i] = []string{fmt.Sprint(i + 1), "นักเรียน"}
	}
	if err := c.DrawTable([]string{"ลำดับ", "ชื่อ-นามสกุล"}, rows, []float64{1, 4}); err != nil {
		t.Fatalf("DrawTable: %v", err)
	}

	pages := rec.PageCount()
	if pages < 2 {
		t.Fatalf("60 rows should span pages, got %d", pages)
	}
	if got := rec.CountText("ชื่อ-นามสกุล"); got != pages {
		t.Fatalf("header drawn %d times over %d pages", got, pages)
	}
	for p := 2; p <= pages; p++ {
		texts := rec.TextsOnPage(p)
		if len(texts) == 0 || texts[0] != "ลำดับ" {
			t.Fatalf("page %d does not start with the header band: %v", p, texts)
		}
	}
	if got := rec.CountText("นักเรียน"); got != 60 {
		t.Fatalf("rows drawn %d, want 60", got)
	}
}

func TestDrawTableTruncatesCells(t *testing.T) {
	c, rec := newTestCanvas()
	long := strings.Repeat("ก", 50)
	if err := c.DrawTable([]string{"ก", "ข"}, [][]string{{long, "สั้น"}}, nil); err != nil {
		t.Fatalf("DrawTable: %v", err)
	}

	// body font: 14pt * 0.18mm per rune
	perRune := 14 * rec.CharWidth
	maxWidth := c.ContentWidth()/2 - cellPadding

	found := false
	for _, s := range rec.Texts() {
		if strings.HasPrefix(s, "กก") {
			found = true
			if !strings.HasSuffix(s, Ellipsis) {
				t.Fatalf("truncated cell %q lacks ellipsis", s)
			}
			if w := float64(utf8.RuneCountInString(s)) * perRune; w > maxWidth {
				t.Fatalf("truncated width %v exceeds %v", w, maxWidth)
			}
		}
	}
	if !found {
		t.Fatalf("long cell not drawn")
	}
	if rec.CountText("สั้น") != 1 {
		t.Fatalf("short cell should be drawn unchanged")
	}
}

func TestDrawTableRejectsBadWidths(t *testing.T) {
	c, _ := newTestCanvas()
	if err := c.DrawTable([]string{"a", "b"}, nil, []float64{1}); err == nil {
		t.Fatalf("expected width mismatch error")
	}
	if err := c.DrawTable(nil, nil, nil); err == nil {
		t.Fatalf("expected error for empty headers")
	}
}
