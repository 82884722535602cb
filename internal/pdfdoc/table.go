package pdfdoc

import (
	"fmt"
)

const (
	RowHeight    = 8.0
	rowSafety    = 2.0
	cellPadding  = 2.0 // left + right
	tableSpacing = 4.0
)

// TableMinHeight is the room DrawTable claims before its header band: the
// band plus one row.
const TableMinHeight = 2*RowHeight + rowSafety

// DrawTable renders headers and rows across the content width. widths are
// relative ratios, one per header; nil splits the width evenly. Each row is
// kept whole: when it does not fit, the page breaks and the header band is
// repeated on the new page. Cell text is truncated to its column.
func (c *Canvas) DrawTable(headers []string, rows [][]string, widths []float64) error {
	cols, err := ColumnWidths(len(headers), widths, c.ContentWidth())
	if err != nil {
		return err
	}

	c.EnsureSpace(TableMinHeight)
	c.drawHeaderBand(headers, cols)

	c.Use(RoleBody)
	for i, row := range rows {
		if c.EnsureSpace(RowHeight + rowSafety) {
			c.drawHeaderBand(headers, cols)
			c.Use(RoleBody)
		}
		top := c.state.CursorY
		if i%2 == 0 {
			c.FillRect(c.geo.MarginLeft, top, c.ContentWidth(), RowHeight, ColorRowShade)
		}
		c.SetTextColor(ColorText)
		x := c.geo.MarginLeft
		for j, w := range cols {
			cell := ""
			if j < len(row) {
				cell = row[j]
			}
			c.StrokeRect(x, top, w, RowHeight)
			c.TextAt(x+cellPadding/2, c.Baseline(top, RowHeight), TruncateToWidth(cell, w-cellPadding, c.Measure))
			x += w
		}
		c.Advance(RowHeight)
	}

	c.Advance(tableSpacing)
	return c.Err()
}

func (c *Canvas) drawHeaderBand(headers []string, cols []float64) {
	top := c.state.CursorY
	c.FillRect(c.geo.MarginLeft, top, c.ContentWidth(), RowHeight, ColorHeaderBg)
	c.Use(RoleTableHeader)
	c.SetTextColor(ColorHeaderFg)
	x := c.geo.MarginLeft
	for j, w := range cols {
		c.TextAt(x+cellPadding/2, c.Baseline(top, RowHeight), TruncateToWidth(headers[j], w-cellPadding, c.Measure))
		x += w
	}
	c.SetTextColor(ColorText)
	c.Advance(RowHeight)
}

// ColumnWidths scales ratios to total. With no ratios every column gets an
// equal share.
func ColumnWidths(n int, ratios []float64, total float64) ([]float64, error) {
	if n == 0 {
		return nil, fmt.Errorf("table has no columns")
	}
	out := make([]float64, n)
	if len(ratios) == 0 {
		for i := range out {
			out[i] = total / float64(n)
		}
		return out, nil
	}
	if len(ratios) != n {
		return nil, fmt.Errorf("table has %d columns but %d widths", n, len(ratios))
	}
	sum := 0.0
	for i, r := range ratios {
		if r <= 0 {
			return nil, fmt.Errorf("column %d has non-positive width %v", i, r)
		}
		sum += r
	}
	for i, r := range ratios {
		out[i] = r / sum * total
	}
	return out, nil
}
