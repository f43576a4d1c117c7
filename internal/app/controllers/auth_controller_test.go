package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/arjunrk/schoolbeam/internal/app/models"
	"github.com/arjunrk/schoolbeam/internal/app/models/dto"
	"github.com/arjunrk/schoolbeam/internal/pkg/apperrors"
)

type fakeTeacherService struct {
	teacher *models.Teacher
	list    []*models.Teacher
	err     error

	gotPIN string
}

func (f *fakeTeacherService) AuthenticateByPIN(ctx context.Context, pin string) (*models.Teacher, error) {
	f.gotPIN = pin
	return f.teacher, f.err
}

func (f *fakeTeacherService) GetBySection(ctx context.Context, section string) ([]*models.Teacher, error) {
	return f.list, f.err
}

func newAuthTestRouter(teachers *fakeTeacherService, students *fakeStudentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewAuthController(teachers, students)

	router := gin.New()
	router.POST("/api/auth/teacher", controller.TeacherLogin)
	router.POST("/api/auth/student-parent", controller.StudentLookup)
	return router
}

func TestTeacherLogin(t *testing.T) {
	teachers := &fakeTeacherService{teacher: &models.Teacher{
		Code:         "T01",
		Name:         "Mudit Jain",
		Subject:      "Mathematics",
		Section:      "12A",
		IsFeeManager: true,
	}}
	router := newAuthTestRouter(teachers, &fakeStudentService{})

	body := bytes.NewBufferString(`{"pin":"1234"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/teacher", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body: %s", w.Code, http.StatusOK, w.Body.String())
	}
	if teachers.gotPIN != "1234" {
		t.Errorf("service received pin %q", teachers.gotPIN)
	}

	var resp dto.TeacherLoginResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Teacher == nil || resp.Teacher.Code != "T01" {
		t.Errorf("unexpected teacher payload: %+v", resp.Teacher)
	}
	if resp.Section != "12A" {
		t.Errorf("section = %q, want 12A", resp.Section)
	}
}

func TestTeacherLoginUnknownPIN(t *testing.T) {
	teachers := &fakeTeacherService{err: apperrors.ErrTeacherNotFound}
	router := newAuthTestRouter(teachers, &fakeStudentService{})

	body := bytes.NewBufferString(`{"pin":"9999"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/teacher", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusNotFound)
	}

	var resp dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if resp.Error == nil || resp.Error.Code != dto.ErrorCodeInvalidCredentials {
		t.Errorf("unexpected error payload: %+v", resp.Error)
	}
}

func TestTeacherLoginMalformedPIN(t *testing.T) {
	teachers := &fakeTeacherService{}
	router := newAuthTestRouter(teachers, &fakeStudentService{})

	body := bytes.NewBufferString(`{"pin":"12ab"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/teacher", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if teachers.gotPIN != "" {
		t.Errorf("service should not be called for a malformed pin, got %q", teachers.gotPIN)
	}

	var resp dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if resp.Error == nil || resp.Error.Code != dto.ErrorCodeValidationFailed {
		t.Errorf("unexpected error payload: %+v", resp.Error)
	}
}

func TestTeacherLoginMissingPIN(t *testing.T) {
	router := newAuthTestRouter(&fakeTeacherService{}, &fakeStudentService{})

	body := bytes.NewBufferString(`{}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/teacher", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestStudentLookup(t *testing.T) {
	students := &fakeStudentService{student: &models.Student{
		Roll:    "12A-01",
		Name:    "Aarav Mehta",
		Section: "12A",
	}}
	router := newAuthTestRouter(&fakeTeacherService{}, students)

	body := bytes.NewBufferString(`{"roll":"12A-01"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/student-parent", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body: %s", w.Code, http.StatusOK, w.Body.String())
	}
	if students.gotRoll != "12A-01" {
		t.Errorf("service received roll %q", students.gotRoll)
	}

	var resp dto.StudentLookupResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Student == nil || resp.Student.Roll != "12A-01" || resp.Section != "12A" {
		t.Errorf("unexpected lookup payload: %+v", resp)
	}
}

func TestStudentLookupMalformedRoll(t *testing.T) {
	students := &fakeStudentService{}
	router := newAuthTestRouter(&fakeTeacherService{}, students)

	body := bytes.NewBufferString(`{"roll":"bogus"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/student-parent", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if students.gotRoll != "" {
		t.Errorf("service should not be called for a malformed roll, got %q", students.gotRoll)
	}
}

func TestStudentLookupUnknownRoll(t *testing.T) {
	students := &fakeStudentService{err: apperrors.ErrStudentNotFound}
	router := newAuthTestRouter(&fakeTeacherService{}, students)

	body := bytes.NewBufferString(`{"roll":"12A-99"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/student-parent", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}
