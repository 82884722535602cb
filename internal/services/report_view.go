package services

import "guidance-portal/internal/domain/models"

// ReportViewModel is the denormalized single-event report, rebuilt per
// request and dropped once the PDF bytes exist.
type ReportViewModel struct {
	GuidanceInfo GuidanceInfo `json:"guidanceInfo"`
	SchoolInfo   SchoolInfo   `json:"schoolInfo"`
	Participants Participants `json:"participants"`
	Summary      Summary      `json:"summary"`
}

type GuidanceInfo struct {
	ID           int64           `json:"id"`
	Date         string          `json:"date"`
	StartTime    string          `json:"startTime"`
	EndTime      string          `json:"endTime"`
	TimeRange    string          `json:"timeRange"`
	Category     string          `json:"category"`
	CategoryKind models.Category `json:"-"`
	Status       string          `json:"status"`
	StatusKind   models.Status   `json:"-"`
	StudyPlan    string          `json:"studyPlan"`
	Faculty      string          `json:"faculty"`
	Professor    string          `json:"professor"`
}

type SchoolInfo struct {
	Name         string `json:"name"`
	Address      string `json:"address"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Website      string `json:"website"`
	ContactName  string `json:"contactName"`
	ContactPhone string `json:"contactPhone"`
}

type Participants struct {
	Teachers []TeacherEntry `json:"teachers"`
	Students []StudentEntry `json:"students"`
	Vehicles []VehicleEntry `json:"vehicles"`
}

type TeacherEntry struct {
	TeacherID   int64  `json:"teacherId"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	PickupPoint string `json:"pickupPoint"`
}

type StudentEntry struct {
	BookingID   int64  `json:"bookingId"`
	StudentID   string `json:"studentId"`
	Name        string `json:"name"`
	TeacherName string `json:"teacherName"`
}

type VehicleEntry struct {
	Type         string `json:"type"`
	Registration string `json:"registration"`
	Seats        string `json:"seats"`
	DriverPhone  string `json:"driverPhone"`
}

type Summary struct {
	Teachers int `json:"teachers"`
	Students int `json:"students"`
	Total    int `json:"total"`
}
