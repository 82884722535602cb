package models

// Guidance is one outreach activity as stored.
type Guidance struct {
	ID        int64
	Date      string
	StartTime string
	EndTime   string
	Category  string
	Status    string
	StudyPlan string
	Faculty   string
	Professor string
	SchoolID  int64

	VehicleRegistration string
	VehicleSeats        int
	VehicleType         string
	DriverPhone         string
}

// HasVehicle reports whether the event carries vehicle type or registration.
func (g Guidance) HasVehicle() bool {
	return trimmed(g.VehicleType) != "" || trimmed(g.VehicleRegistration) != ""
}

// School is a partner institution shared by many guidance events.
type School struct {
	ID           int64
	Name         string
	Address      string
	District     string
	Province     string
	PostalCode   string
	Phone        string
	Email        string
	Website      string
	ContactName  string
	ContactPhone string
	Approved     bool
}
