// Package pdfdoctest provides an in-memory drawing surface for layout tests.
package pdfdoctest

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Op is one recorded drawing call.
type Op struct {
	Kind  string // page, setpage, text, rect, line
	Page  int
	X, Y  float64
	W, H  float64
	Text  string
	Font  string
	Style string
}

// Recorder implements pdfdoc.Surface. Every rune measures CharWidth mm per
// point of font size, so widths are predictable without a real font.
type Recorder struct {
	Ops       []Op
	CharWidth float64
	Fail      error

	pages   int
	current int
	family  string
	weight  string
	size    float64
}

func New() *Recorder {
	return &Recorder{CharWidth: 0.18}
}

func (r *Recorder) AddPage() {
	r.pages++
	r.current = r.pages
	r.Ops = append(r.Ops, Op{Kind: "page", Page: r.current})
}

func (r *Recorder) PageCount() int { return r.pages }

func (r *Recorder) SetPage(pageNum int) {
	r.current = pageNum
	r.Ops = append(r.Ops, Op{Kind: "setpage", Page: pageNum})
}

func (r *Recorder) SetFont(familyStr, styleStr string, size float64) {
	r.family, r.weight, r.size = familyStr, styleStr, size
}

func (r *Recorder) SetFillColor(_, _, _ int) {}
func (r *Recorder) SetTextColor(_, _, _ int) {}
func (r *Recorder) SetDrawColor(_, _, _ int) {}
func (r *Recorder) SetLineWidth(float64)     {}

func (r *Recorder) Text(x, y float64, txtStr string) {
	r.Ops = append(r.Ops, Op{Kind: "text", Page: r.current, X: x, Y: y, Text: txtStr, Font: r.family + r.weight})
}

func (r *Recorder) Rect(x, y, w, h float64, styleStr string) {
	r.Ops = append(r.Ops, Op{Kind: "rect", Page: r.current, X: x, Y: y, W: w, H: h, Style: styleStr})
}

func (r *Recorder) Line(x1, y1, x2, y2 float64) {
	r.Ops = append(r.Ops, Op{Kind: "line", Page: r.current, X: x1, Y: y1, W: x2 - x1, H: y2 - y1})
}

func (r *Recorder) GetStringWidth(s string) float64 {
	return float64(utf8.RuneCountInString(s)) * r.size * r.CharWidth
}

func (r *Recorder) Error() error { return r.Fail }

// Output writes one line per op so equal layouts give equal bytes.
func (r *Recorder) Output(w io.Writer) error {
	if r.Fail != nil {
		return r.Fail
	}
	for _, op := range r.Ops {
		if _, err := fmt.Fprintf(w, "%s p=%d x=%.2f y=%.2f w=%.2f h=%.2f %s %s %q\n",
			op.Kind, op.Page, op.X, op.Y, op.W, op.H, op.Style, op.Font, op.Text); err != nil {
			return err
		}
	}
	return nil
}

// Texts returns every drawn string in order.
func (r *Recorder) Texts() []string {
	out := []string{}
	for _, op := range r.Ops {
		if op.Kind == "text" {
			out = append(out, op.Text)
		}
	}
	return out
}

// CountText counts drawn strings equal to s.
func (r *Recorder) CountText(s string) int {
	n := 0
	for _, t := range r.Texts() {
		if t == s {
			n++
		}
	}
	return n
}

// CountContaining counts drawn strings containing sub.
func (r *Recorder) CountContaining(sub string) int {
	n := 0
	for _, t := range r.Texts() {
		if strings.Contains(t, sub) {
			n++
		}
	}
	return n
}

// TextsOnPage returns the strings drawn on page p.
func (r *Recorder) TextsOnPage(p int) []string {
	out := []string{}
	for _, op := range r.Ops {
		if op.Kind == "text" && op.Page == p {
			out = append(out, op.Text)
		}
	}
	return out
}
