package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/arjunrk/schoolbeam/internal/app/models/dto"
	"github.com/arjunrk/schoolbeam/internal/pkg/apperrors"
	"github.com/arjunrk/schoolbeam/internal/pkg/genai"
)

// reportPromptTemplate is the fixed prompt handed to the generation service.
// %s placeholders: student name, concatenated performance detail lines.
const reportPromptTemplate = `You are an expert teacher writing a performance report for a student.
The student's name is %s.
Here is their performance data:
%s
Based on this, write a concise, encouraging, and professional performance report for their parents.
Keep it to 3-4 sentences. Start with "Dear Parent,".
Identify strengths and one area for improvement.`

// ReportService defines the interface for AI report generation
type ReportService interface {
	GenerateReport(ctx context.Context, req *dto.GenerateReportRequest) (string, error)
}

// reportServiceImpl implements ReportService
type reportServiceImpl struct {
	generator genai.Client
	timeout   time.Duration
	logger    zerolog.Logger
}

// NewReportService creates a new ReportService. The timeout caps the
// generation call so a stalled upstream cannot suspend the request forever.
func NewReportService(generator genai.Client, timeout time.Duration, logger zerolog.Logger) ReportService {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &reportServiceImpl{
		generator: generator,
		timeout:   timeout,
		logger:    logger,
	}
}

// GenerateReport assembles the performance prompt and delegates it to the
// generation service, returning the generated text verbatim. Failures are not
// retried and no fallback text is produced.
func (s *reportServiceImpl) GenerateReport(ctx context.Context, req *dto.GenerateReportRequest) (string, error) {
	if req == nil || req.StudentData == nil || req.Teachers == nil {
		return "", apperrors.ErrReportInputMissing
	}

	details := ComposePerformanceDetails(req.StudentData.Performance, req.Teachers)
	prompt := fmt.Sprintf(reportPromptTemplate, req.StudentData.Name, details)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	text, err := s.generator.GenerateText(ctx, prompt)
	if err != nil {
		s.logger.Error().Err(err).
			Str("student", req.StudentData.Name).
			Msg("Report generation failed")
		if errors.Is(err, apperrors.ErrUpstreamFailure) {
			return "", err
		}
		return "", apperrors.NewCustomError(apperrors.ErrUpstreamFailure, err.Error())
	}

	return text, nil
}

// ComposePerformanceDetails renders one detail line per marker present in
// both the performance map and the roster. Markers without a roster match are
// skipped silently. The score for a line is looked up by the lower-cased
// subject name inside that marker's record. Lines are emitted in marker id
// order so output is deterministic.
func ComposePerformanceDetails(performance map[string]map[string]interface{}, roster []dto.MarkerDescriptor) string {
	subjects := make(map[string]string, len(roster))
	for _, marker := range roster {
		subjects[marker.ID] = marker.Subject
	}

	markerIDs := make([]string, 0, len(performance))
	for markerID := range performance {
		markerIDs = append(markerIDs, markerID)
	}
	sort.Strings(markerIDs)

	var b strings.Builder
	for _, markerID := range markerIDs {
		subject, ok := subjects[markerID]
		if !ok {
			continue
		}
		score := performance[markerID][strings.ToLower(subject)]
		fmt.Fprintf(&b, "- In %s, their score is %v.\n", subject, score)
	}

	return b.String()
}
