package dto

import "github.com/arjunrk/schoolbeam/internal/app/models"

// ReportStudentData carries the slice of a student record the report
// composer consumes.
type ReportStudentData struct {
	Name        string                `json:"name" example:"Aarav Mehta"`
	Performance models.PerformanceMap `json:"performance"`
}

// MarkerDescriptor identifies one grading authority and the subject it
// teaches, used to resolve performance entries into report lines.
type MarkerDescriptor struct {
	ID      string `json:"id" example:"T01"`
	Subject string `json:"subject" example:"Mathematics"`
}

// GenerateReportRequest represents a request to compose and generate a
// parent-facing performance report
type GenerateReportRequest struct {
	StudentData *ReportStudentData `json:"studentData"`
	Teachers    []MarkerDescriptor `json:"teachers"`
}

// GenerateReportResponse carries the generated report text verbatim
type GenerateReportResponse struct {
	Text string `json:"text"`
}
