package models

import "testing"

func TestParseStatus(t *testing.T) {
	tests := []struct {
		label string
		want  Status
		ok    bool
	}{
		{"เปิดรับสมัคร", StatusOpen, true},
		{" เสร็จสิ้น ", StatusCompleted, true},
		{"", StatusLegacy, true},
		{"รออนุมัติ", StatusLegacy, false},
	}
	for _, tt := range tests {
		got, ok := ParseStatus(tt.label)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseStatus(%q) = %v,%v want %v,%v", tt.label, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseCategory(t *testing.T) {
	if c, ok := ParseCategory("แนะแนวออนไลน์"); c != CategoryOnline || !ok {
		t.Fatalf("got %v,%v", c, ok)
	}
	if c, ok := ParseCategory("ค่ายวิชาการ"); c != CategoryOther || ok {
		t.Fatalf("unknown label should map to CategoryOther, got %v,%v", c, ok)
	}
}

func TestLabelsRoundTrip(t *testing.T) {
	for _, s := range Statuses() {
		if s == StatusLegacy {
			if s.Label() != "" {
				t.Errorf("legacy status should have no label, got %q", s.Label())
			}
			continue
		}
		if got, ok := ParseStatus(s.Label()); got != s || !ok {
			t.Errorf("ParseStatus(%q) = %v,%v want %v", s.Label(), got, ok, s)
		}
	}
	for _, c := range Categories() {
		if c == CategoryOther {
			continue
		}
		if got, ok := ParseCategory(c.Label()); got != c || !ok {
			t.Errorf("ParseCategory(%q) = %v,%v want %v", c.Label(), got, ok, c)
		}
	}
}

func TestParseReportType(t *testing.T) {
	for _, raw := range []string{"activity", "Teacher", " student "} {
		if _, err := ParseReportType(raw); err != nil {
			t.Errorf("ParseReportType(%q) unexpected error: %v", raw, err)
		}
	}
	for _, raw := range []string{"", "school", "activities"} {
		if _, err := ParseReportType(raw); err == nil {
			t.Errorf("ParseReportType(%q) expected error", raw)
		}
	}
}

func TestGuidanceHasVehicle(t *testing.T) {
	if (Guidance{}).HasVehicle() {
		t.Fatalf("empty vehicle fields should not count")
	}
	if !(Guidance{VehicleRegistration: "กข 1234"}).HasVehicle() {
		t.Fatalf("registration alone should count")
	}
	if !(Guidance{VehicleType: "รถตู้"}).HasVehicle() {
		t.Fatalf("type alone should count")
	}
}
