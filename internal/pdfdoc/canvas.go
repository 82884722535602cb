package pdfdoc

import (
	"io"

	"golang.org/x/text/unicode/norm"
)

// LineHeight is the vertical advance of WriteLine, in mm.
const LineHeight = 7.0

const (
	baselineRatio = 0.7
	dividerGap    = 5.0
)

// Geometry is the page size and margins in mm.
type Geometry struct {
	PageWidth    float64
	PageHeight   float64
	MarginLeft   float64
	MarginRight  float64
	MarginTop    float64
	MarginBottom float64
}

// A4 leaves a tall bottom margin so the signature footer never collides with
// flowing content.
func A4() Geometry {
	return Geometry{
		PageWidth:    210,
		PageHeight:   297,
		MarginLeft:   15,
		MarginRight:  15,
		MarginTop:    20,
		MarginBottom: 55,
	}
}

func (g Geometry) ContentWidth() float64  { return g.PageWidth - g.MarginLeft - g.MarginRight }
func (g Geometry) ContentBottom() float64 { return g.PageHeight - g.MarginBottom }
func (g Geometry) Right() float64         { return g.PageWidth - g.MarginRight }

// LayoutState is where the next block goes.
type LayoutState struct {
	CursorY   float64
	PageIndex int // zero-based
}

type Color struct{ R, G, B int }

var (
	ColorText      = Color{33, 37, 41}
	ColorMuted     = Color{108, 117, 125}
	ColorPrimary   = Color{25, 55, 109}
	ColorHeaderBg  = Color{25, 55, 109}
	ColorHeaderFg  = Color{255, 255, 255}
	ColorRowShade  = Color{241, 245, 249}
	ColorBoxFill   = Color{232, 240, 254}
	ColorGridLine  = Color{200, 200, 200}
	ColorSummaryBg = Color{255, 248, 225}
)

// Canvas owns the page geometry and the single vertical cursor. All drawing
// for one document goes through one Canvas.
type Canvas struct {
	surface Surface
	geo     Geometry
	typo    Typography
	state   LayoutState
}

// NewCanvas starts the first page on s.
func NewCanvas(s Surface, geo Geometry, typo Typography) *Canvas {
	c := &Canvas{surface: s, geo: geo, typo: typo}
	s.AddPage()
	c.state = LayoutState{CursorY: geo.MarginTop}
	c.Use(RoleBody)
	c.SetTextColor(ColorText)
	return c
}

func (c *Canvas) State() LayoutState    { return c.state }
func (c *Canvas) Geometry() Geometry    { return c.geo }
func (c *Canvas) ContentWidth() float64 { return c.geo.ContentWidth() }
func (c *Canvas) PageCount() int        { return c.surface.PageCount() }
func (c *Canvas) Err() error            { return c.surface.Error() }

// Output writes the finished document.
func (c *Canvas) Output(w io.Writer) error { return c.surface.Output(w) }

type lineOptions struct {
	x      float64
	indent float64
}

// LineOption adjusts where WriteLine starts.
type LineOption func(*lineOptions)

// AtX overrides the left edge of the line.
func AtX(x float64) LineOption { return func(o *lineOptions) { o.x = x } }

// Indent shifts the line right by mm.
func Indent(mm float64) LineOption { return func(o *lineOptions) { o.indent = mm } }

// WriteLine draws text on the current line and moves the cursor down one
// line height. Text is not wrapped.
func (c *Canvas) WriteLine(text string, opts ...LineOption) {
	o := lineOptions{x: c.geo.MarginLeft}
	for _, opt := range opts {
		opt(&o)
	}
	c.TextAt(o.x+o.indent, c.Baseline(c.state.CursorY, LineHeight), text)
	c.state.CursorY += LineHeight
}

// EnsureSpace starts a new page when height does not fit above the bottom
// margin. It reports whether a page break happened.
func (c *Canvas) EnsureSpace(height float64) bool {
	if c.state.CursorY+height <= c.geo.ContentBottom() {
		return false
	}
	c.NewPage()
	return true
}

// NewPage moves the cursor to the top of a fresh page.
func (c *Canvas) NewPage() {
	c.surface.AddPage()
	c.state.PageIndex++
	c.state.CursorY = c.geo.MarginTop
}

// DrawDivider rules a line across the content width below the cursor.
func (c *Canvas) DrawDivider() {
	y := c.state.CursorY + dividerGap/2
	c.surface.SetDrawColor(ColorGridLine.R, ColorGridLine.G, ColorGridLine.B)
	c.surface.SetLineWidth(0.3)
	c.surface.Line(c.geo.MarginLeft, y, c.geo.Right(), y)
	c.state.CursorY += dividerGap
}

// Advance moves the cursor down by dy without drawing.
func (c *Canvas) Advance(dy float64) { c.state.CursorY += dy }

// Use selects the font for role.
func (c *Canvas) Use(role Role) {
	st := c.typo.Resolve(role)
	c.surface.SetFont(st.Family, st.Weight, st.Size)
}

func (c *Canvas) SetTextColor(col Color) { c.surface.SetTextColor(col.R, col.G, col.B) }

// FillRect paints a filled rectangle.
func (c *Canvas) FillRect(x, y, w, h float64, col Color) {
	c.surface.SetFillColor(col.R, col.G, col.B)
	c.surface.Rect(x, y, w, h, "F")
}

// StrokeRect outlines a rectangle with the grid colour.
func (c *Canvas) StrokeRect(x, y, w, h float64) {
	c.surface.SetDrawColor(ColorGridLine.R, ColorGridLine.G, ColorGridLine.B)
	c.surface.SetLineWidth(0.2)
	c.surface.Rect(x, y, w, h, "D")
}

// TextAt draws text with its baseline at y, outside the cursor flow.
func (c *Canvas) TextAt(x, y float64, text string) {
	c.surface.Text(x, y, norm.NFC.String(text))
}

// Baseline is the text baseline of a box of height h whose top is at top.
func (c *Canvas) Baseline(top, h float64) float64 { return top + h*baselineRatio }

// Measure returns the width of text in the current font.
func (c *Canvas) Measure(text string) float64 {
	return c.surface.GetStringWidth(norm.NFC.String(text))
}

// EachPage revisits every page in order, for page-anchored decorations such
// as footers. The cursor is left untouched.
func (c *Canvas) EachPage(fn func(page, total int)) {
	total := c.surface.PageCount()
	for p := 1; p <= total; p++ {
		c.surface.SetPage(p)
		fn(p, total)
	}
}
