// Package pdfdoc lays out paginated report pages: a cursor-owning canvas,
// the Thai typography policy and a table renderer with page continuation.
package pdfdoc

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"
)

// Surface is the set of drawing primitives the canvas relies on.
// *gofpdf.Fpdf satisfies it.
type Surface interface {
	AddPage()
	PageCount() int
	SetPage(pageNum int)
	SetFont(familyStr, styleStr string, size float64)
	SetFillColor(r, g, b int)
	SetTextColor(r, g, b int)
	SetDrawColor(r, g, b int)
	SetLineWidth(width float64)
	Text(x, y float64, txtStr string)
	Rect(x, y, w, h float64, styleStr string)
	Line(x1, y1, x2, y2 float64)
	GetStringWidth(s string) float64
	Error() error
	Output(w io.Writer) error
}

// FontSet names the TTF files of the Thai family, relative to Dir.
type FontSet struct {
	Dir     string
	Family  string
	Regular string
	Bold    string
}

// NewPDFSurface creates an A4 gofpdf document with the Thai family
// registered for regular and bold. A missing font is an error: a Latin-only
// fallback would print Thai text as empty boxes.
func NewPDFSurface(fonts FontSet, title string, created time.Time) (*gofpdf.Fpdf, error) {
	if strings.TrimSpace(fonts.Family) == "" {
		return nil, errors.New("font family is empty")
	}
	for _, file := range []string{fonts.Regular, fonts.Bold} {
		full := filepath.Join(fonts.Dir, file)
		if _, err := os.Stat(full); err != nil {
			return nil, fmt.Errorf("thai font %s: %w", full, err)
		}
	}

	pdf := gofpdf.New("P", "mm", "A4", fonts.Dir)
	pdf.AddUTF8Font(fonts.Family, "", fonts.Regular)
	pdf.AddUTF8Font(fonts.Family, "B", fonts.Bold)
	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("register thai font: %w", err)
	}

	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(created)
	pdf.SetTitle(title, true)
	return pdf, nil
}
