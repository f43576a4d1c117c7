package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/arjunrk/schoolbeam/internal/app/models"
	"github.com/arjunrk/schoolbeam/internal/app/models/dto"
	"github.com/arjunrk/schoolbeam/internal/pkg/apperrors"
)

// fakeGenerator records the prompt it received and returns canned output.
type fakeGenerator struct {
	prompt string
	text   string
	err    error
}

func (f *fakeGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	f.prompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

func TestComposePerformanceDetails(t *testing.T) {
	performance := models.PerformanceMap{
		"T02": {"physics": 78.5},
		"T01": {"mathematics": 92},
	}
	roster := []dto.MarkerDescriptor{
		{ID: "T01", Subject: "Mathematics"},
		{ID: "T02", Subject: "Physics"},
	}

	got := ComposePerformanceDetails(performance, roster)

	want := "- In Mathematics, their score is 92.\n- In Physics, their score is 78.5.\n"
	if got != want {
		t.Fatalf("details = %q, want %q", got, want)
	}
}

func TestComposePerformanceDetailsSkipsUnmatchedMarkers(t *testing.T) {
	performance := models.PerformanceMap{
		"T01": {"mathematics": 92},
		"T99": {"chemistry": 55},
	}
	roster := []dto.MarkerDescriptor{{ID: "T01", Subject: "Mathematics"}}

	got := ComposePerformanceDetails(performance, roster)

	if strings.Contains(got, "chemistry") || strings.Contains(got, "55") {
		t.Fatalf("unmatched marker leaked into details: %q", got)
	}
	if !strings.Contains(got, "Mathematics") {
		t.Fatalf("matched marker missing from details: %q", got)
	}
}

func TestComposePerformanceDetailsEmpty(t *testing.T) {
	if got := ComposePerformanceDetails(nil, nil); got != "" {
		t.Fatalf("expected empty details, got %q", got)
	}
}

func TestGenerateReport(t *testing.T) {
	gen := &fakeGenerator{text: "Dear Parent, Aarav is excelling."}
	svc := NewReportService(gen, time.Second, zerolog.Nop())

	req := &dto.GenerateReportRequest{
		StudentData: &dto.ReportStudentData{
			Name:        "Aarav Mehta",
			Performance: models.PerformanceMap{"T01": {"mathematics": 92}},
		},
		Teachers: []dto.MarkerDescriptor{{ID: "T01", Subject: "Mathematics"}},
	}

	text, err := svc.GenerateReport(context.Background(), req)
	if err != nil {
		t.Fatalf("GenerateReport returned error: %v", err)
	}
	if text != "Dear Parent, Aarav is excelling." {
		t.Errorf("unexpected report text %q", text)
	}

	if !strings.Contains(gen.prompt, "Aarav Mehta") {
		t.Errorf("prompt missing student name: %q", gen.prompt)
	}
	if !strings.Contains(gen.prompt, "- In Mathematics, their score is 92.") {
		t.Errorf("prompt missing performance detail line: %q", gen.prompt)
	}
	if !strings.Contains(gen.prompt, `Start with "Dear Parent,"`) {
		t.Errorf("prompt missing composition instructions: %q", gen.prompt)
	}
}

func TestGenerateReportMissingInput(t *testing.T) {
	svc := NewReportService(&fakeGenerator{}, time.Second, zerolog.Nop())

	cases := []*dto.GenerateReportRequest{
		nil,
		{StudentData: nil, Teachers: []dto.MarkerDescriptor{{ID: "T01"}}},
		{StudentData: &dto.ReportStudentData{Name: "X"}, Teachers: nil},
	}

	for i, req := range cases {
		_, err := svc.GenerateReport(context.Background(), req)
		if !errors.Is(err, apperrors.ErrReportInputMissing) {
			t.Errorf("case %d: expected missing-input error, got %v", i, err)
		}
	}
}

func TestGenerateReportUpstreamFailure(t *testing.T) {
	gen := &fakeGenerator{err: apperrors.NewCustomError(apperrors.ErrUpstreamFailure, "quota exceeded")}
	svc := NewReportService(gen, time.Second, zerolog.Nop())

	req := &dto.GenerateReportRequest{
		StudentData: &dto.ReportStudentData{Name: "Aarav Mehta"},
		Teachers:    []dto.MarkerDescriptor{},
	}

	_, err := svc.GenerateReport(context.Background(), req)
	if !errors.Is(err, apperrors.ErrUpstreamFailure) {
		t.Fatalf("expected upstream failure, got %v", err)
	}
}

func TestGenerateReportWrapsUnknownErrors(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("boom")}
	svc := NewReportService(gen, time.Second, zerolog.Nop())

	req := &dto.GenerateReportRequest{
		StudentData: &dto.ReportStudentData{Name: "Aarav Mehta"},
		Teachers:    []dto.MarkerDescriptor{},
	}

	_, err := svc.GenerateReport(context.Background(), req)
	if !errors.Is(err, apperrors.ErrUpstreamFailure) {
		t.Fatalf("expected error to surface as upstream failure, got %v", err)
	}
}
