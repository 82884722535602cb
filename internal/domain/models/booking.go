package models

// BookingRow is one teacher registration for a guidance event, already joined
// with the teacher's name and phone.
type BookingRow struct {
	ID           int64
	GuidanceID   int64
	TeacherID    int64
	TeacherName  string
	TeacherPhone string
	PickupPoint  string
	ContactPhone string

	// up to two accompanying students per booking
	Student1ID   string
	Student1Name string
	Student2ID   string
	Student2Name string
}

// StudentSlot is one (id, name) pair taken from a booking.
type StudentSlot struct {
	ID   string
	Name string
}

// Slots returns the two student slots in order, filled or not.
func (b BookingRow) Slots() [2]StudentSlot {
	return [2]StudentSlot{
		{ID: b.Student1ID, Name: b.Student1Name},
		{ID: b.Student2ID, Name: b.Student2Name},
	}
}
