package services

import (
	"strconv"
	"strings"

	"guidance-portal/internal/domain"
	"guidance-portal/internal/domain/models"
	"guidance-portal/internal/utils"
)

// ReportInput is the raw data behind one single-event report.
type ReportInput struct {
	Guidance models.Guidance
	School   *models.School // nil when the LEFT JOIN found no school
	Bookings []models.BookingRow
}

// AssembleReport turns raw rows into the report view model. It does no I/O
// and never fails; unusable values become the placeholder.
func AssembleReport(in ReportInput) ReportViewModel {
	teachers := DedupTeachers(in.Bookings)
	students := FlattenStudents(in.Bookings)

	return ReportViewModel{
		GuidanceInfo: guidanceInfo(in.Guidance),
		SchoolInfo:   schoolInfo(in.School),
		Participants: Participants{
			Teachers: teachers,
			Students: students,
			Vehicles: VehicleEntries(in.Guidance),
		},
		Summary: Summary{
			Teachers: len(teachers),
			Students: len(students),
			Total:    len(teachers) + len(students),
		},
	}
}

func guidanceInfo(g models.Guidance) GuidanceInfo {
	status, _ := models.ParseStatus(g.Status)
	category, _ := models.ParseCategory(g.Category)
	return GuidanceInfo{
		ID:           g.ID,
		Date:         utils.FormatThaiDate(g.Date),
		StartTime:    utils.FormatThaiTime(g.StartTime),
		EndTime:      utils.FormatThaiTime(g.EndTime),
		TimeRange:    utils.FormatThaiTimeRange(g.StartTime, g.EndTime),
		Category:     utils.OrPlaceholder(g.Category),
		CategoryKind: category,
		Status:       utils.OrPlaceholder(g.Status),
		StatusKind:   status,
		StudyPlan:    utils.OrPlaceholder(g.StudyPlan),
		Faculty:      utils.OrPlaceholder(g.Faculty),
		Professor:    utils.OrPlaceholder(g.Professor),
	}
}

func schoolInfo(s *models.School) SchoolInfo {
	if s == nil {
		s = &models.School{}
	}
	return SchoolInfo{
		Name:         utils.OrPlaceholder(s.Name),
		Address:      utils.OrPlaceholder(utils.JoinNonEmpty(" ", s.Address, s.District, s.Province, s.PostalCode)),
		Phone:        utils.OrPlaceholder(s.Phone),
		Email:        utils.OrPlaceholder(s.Email),
		Website:      utils.OrPlaceholder(s.Website),
		ContactName:  utils.OrPlaceholder(s.ContactName),
		ContactPhone: utils.OrPlaceholder(s.ContactPhone),
	}
}

// DedupTeachers keeps one entry per teacher id, taken from the first booking
// seen, in first-seen order.
func DedupTeachers(bookings []models.BookingRow) []TeacherEntry {
	seen := make(map[int64]struct{}, len(bookings))
	out := make([]TeacherEntry, 0, len(bookings))
	for _, b := range bookings {
		if _, ok := seen[b.TeacherID]; ok {
			continue
		}
		seen[b.TeacherID] = struct{}{}

		phone := b.ContactPhone
		if strings.TrimSpace(phone) == "" {
			phone = b.TeacherPhone
		}
		out = append(out, TeacherEntry{
			TeacherID:   b.TeacherID,
			Name:        utils.OrPlaceholder(b.TeacherName),
			Phone:       utils.OrPlaceholder(phone),
			PickupPoint: utils.OrPlaceholder(b.PickupPoint),
		})
	}
	return out
}

// FlattenStudents emits one entry per filled slot; a slot counts only when
// both id and name are present.
func FlattenStudents(bookings []models.BookingRow) []StudentEntry {
	out := []StudentEntry{}
	for _, b := range bookings {
		for _, slot := range b.Slots() {
			id, name := utils.NormalizeSpace(slot.ID), utils.NormalizeSpace(slot.Name)
			if id == "" || name == "" {
				continue
			}
			out = append(out, StudentEntry{
				BookingID:   b.ID,
				StudentID:   id,
				Name:        name,
				TeacherName: utils.OrPlaceholder(b.TeacherName),
			})
		}
	}
	return out
}

// VehicleEntries returns no entry when the event has neither vehicle type nor
// registration, otherwise exactly one.
func VehicleEntries(g models.Guidance) []VehicleEntry {
	if !g.HasVehicle() {
		return []VehicleEntry{}
	}
	seats := domain.Placeholder
	if g.VehicleSeats > 0 {
		seats = strconv.Itoa(g.VehicleSeats)
	}
	return []VehicleEntry{{
		Type:         utils.OrPlaceholder(g.VehicleType),
		Registration: utils.OrPlaceholder(g.VehicleRegistration),
		Seats:        seats,
		DriverPhone:  utils.OrPlaceholder(g.DriverPhone),
	}}
}
