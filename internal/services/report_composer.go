package services

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"guidance-portal/internal/config"
	"guidance-portal/internal/domain"
	"guidance-portal/internal/pdfdoc"
	"guidance-portal/internal/utils"
)

const (
	msgComposeFailed = "สร้างรายงาน PDF ไม่สำเร็จ"

	// StudentChunkSize is the number of students per table chunk.
	StudentChunkSize = 25

	boxPadding   = 3.0
	footerOffset = 8.0
)

// SurfaceFactory opens a fresh drawing surface for one document.
type SurfaceFactory func(title string, created time.Time) (pdfdoc.Surface, error)

// PDFSurfaceFactory opens gofpdf surfaces with the configured Thai font.
func PDFSurfaceFactory(fonts config.FontSettings) SurfaceFactory {
	set := pdfdoc.FontSet{Dir: fonts.Dir, Family: fonts.Family, Regular: fonts.Regular, Bold: fonts.Bold}
	return func(title string, created time.Time) (pdfdoc.Surface, error) {
		pdf, err := pdfdoc.NewPDFSurface(set, title, created)
		if err != nil {
			return nil, err
		}
		return pdf, nil
	}
}

// Document is a finished PDF.
type Document struct {
	Bytes []byte
	Pages int
}

// Composer renders report view models into PDF documents. One Composer can
// be shared; every call opens its own surface and canvas.
type Composer struct {
	Settings   config.ReportSettings
	NewSurface SurfaceFactory
	Now        func() time.Time
	Geometry   pdfdoc.Geometry
}

func NewComposer(settings config.ReportSettings) Composer {
	return Composer{
		Settings:   settings,
		NewSurface: PDFSurfaceFactory(settings.Fonts),
		Now:        time.Now,
		Geometry:   pdfdoc.A4(),
	}
}

func (c Composer) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

func (c Composer) geometry() pdfdoc.Geometry {
	if c.Geometry.PageWidth == 0 {
		return pdfdoc.A4()
	}
	return c.Geometry
}

// Compose renders the single-event report. Any failure, including a panic
// inside the drawing backend, comes back as a domain.InternalError.
func (c Composer) Compose(vm ReportViewModel) (doc Document, err error) {
	defer recoverCompose(&err)

	created := c.now()
	cv, err := c.open(c.Settings.Title, created)
	if err != nil {
		return doc, err
	}

	c.drawHeader(cv, vm)
	c.drawSchool(cv, vm.SchoolInfo)
	c.drawDetails(cv, vm.GuidanceInfo)
	if len(vm.Participants.Vehicles) > 0 {
		c.drawVehicles(cv, vm.Participants.Vehicles)
	}
	if err := c.drawParticipants(cv, vm.Participants); err != nil {
		return doc, internal(err)
	}
	c.drawSummary(cv, vm.Summary)

	cv.EachPage(func(page, total int) {
		c.drawFooter(cv, page, total, created, true)
	})
	return finish(cv)
}

// ComposeBatch renders a date-range table report under a one-line header.
func (c Composer) ComposeBatch(b BatchReport) (doc Document, err error) {
	defer recoverCompose(&err)

	created := c.now()
	title := b.Type.Title()
	cv, err := c.open(title, created)
	if err != nil {
		return doc, err
	}

	cv.Use(pdfdoc.RoleSection)
	cv.SetTextColor(pdfdoc.ColorPrimary)
	cv.WriteLine(fmt.Sprintf("%s ระหว่างวันที่ %s ถึง %s", title, utils.FormatThaiDate(b.Start), utils.FormatThaiDate(b.End)))
	cv.Advance(1)
	cv.Use(pdfdoc.RoleSmall)
	cv.SetTextColor(pdfdoc.ColorMuted)
	cv.WriteLine(fmt.Sprintf("จำนวนทั้งสิ้น %s รายการ", utils.FormatCount(len(b.Rows))))
	cv.SetTextColor(pdfdoc.ColorText)
	cv.Advance(2)

	if err := cv.DrawTable(b.Headers, b.Rows, b.Widths); err != nil {
		return doc, internal(err)
	}

	cv.EachPage(func(page, total int) {
		c.drawFooter(cv, page, total, created, false)
	})
	return finish(cv)
}

func (c Composer) open(title string, created time.Time) (*pdfdoc.Canvas, error) {
	if c.NewSurface == nil {
		return nil, internal(fmt.Errorf("no surface factory"))
	}
	s, err := c.NewSurface(title, created)
	if err != nil {
		return nil, internal(err)
	}
	return pdfdoc.NewCanvas(s, c.geometry(), pdfdoc.Typography{Family: c.Settings.Fonts.Family}), nil
}

func finish(cv *pdfdoc.Canvas) (Document, error) {
	if err := cv.Err(); err != nil {
		return Document{}, internal(err)
	}
	pages := cv.PageCount()
	var buf bytes.Buffer
	if err := cv.Output(&buf); err != nil {
		return Document{}, internal(err)
	}
	return Document{Bytes: buf.Bytes(), Pages: pages}, nil
}

func internal(err error) error {
	if domain.IsInternal(err) {
		return err
	}
	return domain.InternalError{Msg: msgComposeFailed, Err: err}
}

func recoverCompose(err *error) {
	if r := recover(); r != nil {
		*err = domain.InternalError{Msg: msgComposeFailed, Err: fmt.Errorf("panic: %v", r)}
	}
}

func (c Composer) drawHeader(cv *pdfdoc.Canvas, vm ReportViewModel) {
	cv.Use(pdfdoc.RoleTitle)
	cv.SetTextColor(pdfdoc.ColorPrimary)
	cv.WriteLine(c.Settings.Institution)
	cv.Advance(2)
	cv.Use(pdfdoc.RoleHeader)
	cv.WriteLine(c.Settings.Title)
	cv.SetTextColor(pdfdoc.ColorText)
	cv.Advance(2)

	geo := cv.Geometry()
	boxH := 2*pdfdoc.LineHeight + 2*boxPadding
	cv.EnsureSpace(boxH)
	top := cv.State().CursorY
	width := cv.ContentWidth()
	cv.FillRect(geo.MarginLeft, top, width, boxH, pdfdoc.ColorBoxFill)
	cv.StrokeRect(geo.MarginLeft, top, width, boxH)

	left := geo.MarginLeft + 4
	mid := geo.MarginLeft + width/2
	row1 := cv.Baseline(top+boxPadding, pdfdoc.LineHeight)
	row2 := cv.Baseline(top+boxPadding+pdfdoc.LineHeight, pdfdoc.LineHeight)
	info := vm.GuidanceInfo

	cv.Use(pdfdoc.RoleBody)
	cv.TextAt(left, row1, "รหัสกิจกรรม: "+strconv.FormatInt(info.ID, 10))
	cv.TextAt(mid, row1, "วันที่: "+info.Date)
	cv.TextAt(left, row2, "เวลา: "+info.TimeRange)
	label := "สถานะ: "
	cv.TextAt(mid, row2, label)
	cv.SetTextColor(statusColor(info.StatusKind))
	cv.TextAt(mid+cv.Measure(label), row2, info.Status)
	cv.SetTextColor(pdfdoc.ColorText)

	cv.Advance(boxH + 4)
}

type sectionLine struct {
	label string
	value string
	color *pdfdoc.Color
}

// drawSection writes a heading and indented label/value lines, then rules a
// divider. Values are truncated to the content width.
func (c Composer) drawSection(cv *pdfdoc.Canvas, title string, lines []sectionLine) {
	cv.EnsureSpace(float64(len(lines)+1) * pdfdoc.LineHeight)
	cv.Use(pdfdoc.RoleSection)
	cv.SetTextColor(pdfdoc.ColorPrimary)
	cv.WriteLine(title)

	cv.Use(pdfdoc.RoleBody)
	x := cv.Geometry().MarginLeft + 4
	avail := cv.ContentWidth() - 4
	for _, l := range lines {
		label := l.label + ": "
		value := pdfdoc.TruncateToWidth(l.value, avail-cv.Measure(label), cv.Measure)
		y := cv.Baseline(cv.State().CursorY, pdfdoc.LineHeight)

		cv.SetTextColor(pdfdoc.ColorMuted)
		cv.TextAt(x, y, label)
		if l.color != nil {
			cv.SetTextColor(*l.color)
		} else {
			cv.SetTextColor(pdfdoc.ColorText)
		}
		cv.TextAt(x+cv.Measure(label), y, value)
		cv.Advance(pdfdoc.LineHeight)
	}
	cv.SetTextColor(pdfdoc.ColorText)
	cv.DrawDivider()
}

func (c Composer) drawSchool(cv *pdfdoc.Canvas, s SchoolInfo) {
	c.drawSection(cv, "ข้อมูลโรงเรียน", []sectionLine{
		{label: "ชื่อโรงเรียน", value: s.Name},
		{label: "ที่อยู่", value: s.Address},
		{label: "โทรศัพท์", value: s.Phone},
		{label: "อีเมล", value: s.Email},
		{label: "ผู้ประสานงาน", value: s.ContactName + " โทร " + s.ContactPhone},
	})
}

func (c Composer) drawDetails(cv *pdfdoc.Canvas, g GuidanceInfo) {
	catColor := categoryColor(g.CategoryKind)
	c.drawSection(cv, "รายละเอียดกิจกรรม", []sectionLine{
		{label: "แผนการเรียน", value: g.StudyPlan},
		{label: "คณะที่รับผิดชอบ", value: g.Faculty},
		{label: "อาจารย์ผู้รับผิดชอบ", value: g.Professor},
		{label: "ประเภทกิจกรรม", value: g.Category, color: &catColor},
	})
}

func (c Composer) drawVehicles(cv *pdfdoc.Canvas, vehicles []VehicleEntry) {
	for _, v := range vehicles {
		c.drawSection(cv, "ข้อมูลยานพาหนะ", []sectionLine{
			{label: "ประเภทรถ", value: v.Type},
			{label: "ทะเบียนรถ", value: v.Registration},
			{label: "จำนวนที่นั่ง", value: v.Seats},
			{label: "โทรศัพท์คนขับ", value: v.DriverPhone},
		})
	}
}

var (
	teacherHeaders = []string{"ลำดับ", "ชื่อ-นามสกุล", "เบอร์โทร", "จุดรับ"}
	teacherRatios  = []float64{0.8, 3.5, 2.2, 3.5}
	studentHeaders = []string{"ลำดับ", "รหัสนักเรียน", "ชื่อ-นามสกุล"}
	studentRatios  = []float64{0.8, 2.5, 6.7}
)

const headingGap = 1.0

// tableLead is the room a heading needs so it never sits alone at a page
// bottom: the heading itself plus what DrawTable claims before drawing.
const tableLead = pdfdoc.LineHeight + headingGap + pdfdoc.TableMinHeight

func (c Composer) drawParticipants(cv *pdfdoc.Canvas, p Participants) error {
	cv.EnsureSpace(tableLead)
	c.heading(cv, fmt.Sprintf("รายชื่อครูผู้เข้าร่วม (%s คน)", utils.FormatCount(len(p.Teachers))))
	if len(p.Teachers) > 0 {
		rows := make([][]string, 0, len(p.Teachers))
		for i, t := range p.Teachers {
			rows = append(rows, []string{strconv.Itoa(i + 1), t.Name, t.Phone, t.PickupPoint})
		}
		if err := cv.DrawTable(teacherHeaders, rows, teacherRatios); err != nil {
			return err
		}
	}

	chunks := Chunk(p.Students, StudentChunkSize)
	if len(chunks) == 0 {
		cv.EnsureSpace(tableLead)
		c.heading(cv, "รายชื่อนักเรียน (0 คน)")
	}
	seq := 0
	for i, chunk := range chunks {
		cv.EnsureSpace(tableLead)
		if i == 0 {
			c.heading(cv, fmt.Sprintf("รายชื่อนักเรียน (%s คน)", utils.FormatCount(len(p.Students))))
		} else {
			c.heading(cv, "รายชื่อนักเรียน (ต่อ)")
		}
		rows := make([][]string, 0, len(chunk))
		for _, s := range chunk {
			seq++
			rows = append(rows, []string{strconv.Itoa(seq), s.StudentID, s.Name})
		}
		if err := cv.DrawTable(studentHeaders, rows, studentRatios); err != nil {
			return err
		}
	}
	cv.DrawDivider()
	return nil
}

func (c Composer) heading(cv *pdfdoc.Canvas, text string) {
	cv.Use(pdfdoc.RoleSection)
	cv.SetTextColor(pdfdoc.ColorPrimary)
	cv.WriteLine(text)
	cv.SetTextColor(pdfdoc.ColorText)
	cv.Advance(headingGap)
}

func (c Composer) drawSummary(cv *pdfdoc.Canvas, s Summary) {
	geo := cv.Geometry()
	boxH := 4*pdfdoc.LineHeight + 2*boxPadding
	cv.EnsureSpace(boxH + 2)
	top := cv.State().CursorY
	cv.FillRect(geo.MarginLeft, top, cv.ContentWidth(), boxH, pdfdoc.ColorSummaryBg)
	cv.StrokeRect(geo.MarginLeft, top, cv.ContentWidth(), boxH)

	x := geo.MarginLeft + 4
	y := top + boxPadding
	cv.Use(pdfdoc.RoleSection)
	cv.SetTextColor(pdfdoc.ColorPrimary)
	cv.TextAt(x, cv.Baseline(y, pdfdoc.LineHeight), "สรุปจำนวนผู้เข้าร่วม")
	cv.Use(pdfdoc.RoleBody)
	cv.SetTextColor(pdfdoc.ColorText)
	for i, line := range []string{
		fmt.Sprintf("ครูผู้เข้าร่วม: %s คน", utils.FormatCount(s.Teachers)),
		fmt.Sprintf("นักเรียน: %s คน", utils.FormatCount(s.Students)),
		fmt.Sprintf("รวมทั้งสิ้น: %s คน", utils.FormatCount(s.Total)),
	} {
		cv.TextAt(x+4, cv.Baseline(y+float64(i+1)*pdfdoc.LineHeight, pdfdoc.LineHeight), line)
	}
	cv.Advance(boxH + 2)
	cv.DrawDivider()
}

// drawFooter draws the page-anchored footer inside the bottom margin. The
// page label only appears on multi-page documents.
func (c Composer) drawFooter(cv *pdfdoc.Canvas, page, total int, created time.Time, signature bool) {
	geo := cv.Geometry()
	top := geo.ContentBottom() + footerOffset

	// A revisited page may end in another font; switching twice forces the
	// backend to emit the body font again.
	cv.Use(pdfdoc.RoleSmall)
	cv.Use(pdfdoc.RoleBody)
	cv.SetTextColor(pdfdoc.ColorText)
	if signature {
		x := geo.PageWidth/2 + 10
		sig := c.Settings.Signature
		for i, line := range []string{sig.SignLabel, sig.NameLabel, sig.PositionLabel} {
			cv.TextAt(x, cv.Baseline(top+float64(i)*pdfdoc.LineHeight, pdfdoc.LineHeight), line)
		}
		top += 3*pdfdoc.LineHeight + 2
	}

	cv.Use(pdfdoc.RoleSmall)
	cv.SetTextColor(pdfdoc.ColorMuted)
	y := cv.Baseline(top, pdfdoc.LineHeight)
	cv.TextAt(geo.MarginLeft, y, "วันที่ออกรายงาน: "+utils.ThaiLongDate(created))
	if total > 1 {
		label := fmt.Sprintf("หน้า %d/%d", page, total)
		cv.TextAt(geo.Right()-cv.Measure(label), y, label)
	}
	cv.SetTextColor(pdfdoc.ColorText)
}

// Chunk splits items into consecutive slices of at most size elements.
func Chunk[T any](items []T, size int) [][]T {
	if size <= 0 {
		size = 1
	}
	out := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		out = append(out, items[start:end])
	}
	return out
}
