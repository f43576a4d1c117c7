package models

// FeeStatus is the two-state fee flag carried on every student.
type FeeStatus string

const (
	FeeStatusPaid FeeStatus = "paid"
	FeeStatusDue  FeeStatus = "due"
)

// IsValid reports whether the status is one of the two accepted values.
func (s FeeStatus) IsValid() bool {
	return s == FeeStatusPaid || s == FeeStatusDue
}

// SectionAll is the sentinel section code matching every section on
// announcement read queries.
const SectionAll = "all"
