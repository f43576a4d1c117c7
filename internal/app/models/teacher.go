package models

// Teacher defines the teacher model based on the 'teachers' table.
// Teachers double as markers: their id keys attendance and performance
// entries on student records.
type Teacher struct {
	Code         string `json:"id" db:"code" example:"T01"`                 // Stable marker id (T01, T02, ...)
	Name         string `json:"name" db:"name" example:"Mudit Jain"`        // Teacher's display name
	Subject      string `json:"subject" db:"subject" example:"Mathematics"` // Subject taught
	PIN          string `json:"pin" db:"pin" example:"1234"`                // Lookup credential, bare equality check, no hashing
	Section      string `json:"section" db:"section" example:"12A"`         // Section the teacher is attached to
	IsFeeManager bool   `json:"isFeeManager" db:"is_fee_manager"`           // Authorization hint consumed by the UI, not enforced here
}
