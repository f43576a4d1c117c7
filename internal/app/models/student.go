package models

// AttendanceMap is the per-marker attendance ledger: each marker id keys an
// ordered, most-recent-first history of statuses. Stored as JSONB.
type AttendanceMap map[string][]string

// PerformanceMap is the per-marker performance record. Values are schema-free
// (subject scores, notes, arbitrary per-subject fields); the server does not
// validate their shape. Stored as JSONB.
type PerformanceMap map[string]map[string]interface{}

// Student defines the student model based on the 'students' table
type Student struct {
	ID          int64          `json:"id" db:"id" example:"1"`                             // Unique identifier for the student record
	Roll        string         `json:"roll" db:"roll" example:"12A-01"`                    // Unique roll number, uppercase, <SECTION>-<NN>
	Name        string         `json:"name" db:"name" example:"Aarav Mehta"`               // Student's display name
	Section     string         `json:"section" db:"section" example:"12A"`                 // Section the student belongs to
	ParentPhone string         `json:"parentPhone" db:"parent_phone" example:"9876543210"` // Parent/guardian contact number
	Key         string         `json:"key" db:"access_key" example:"Aara12AF3C9"`          // Opaque access key for self-service lookup
	Attendance  AttendanceMap  `json:"attendance" db:"attendance"`                         // Per-marker attendance history, most recent first
	Fees        FeeStatus      `json:"fees" db:"fees" example:"due"`                       // Fee status, "paid" or "due"
	Performance PerformanceMap `json:"performance" db:"performance"`                       // Per-marker schema-free performance records
}

// MarkAttendance prepends status to the history kept for markerID, creating
// the history if this is the marker's first entry. Histories are
// most-recent-first and grow without bound; no deduplication is applied.
func (s *Student) MarkAttendance(markerID, status string) {
	if s.Attendance == nil {
		s.Attendance = AttendanceMap{}
	}
	s.Attendance[markerID] = append([]string{status}, s.Attendance[markerID]...)
}
