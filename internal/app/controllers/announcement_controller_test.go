package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/arjunrk/schoolbeam/internal/app/models"
	"github.com/arjunrk/schoolbeam/internal/pkg/apperrors"
)

type fakeAnnouncementService struct {
	announcement *models.Announcement
	list         []*models.Announcement
	err          error

	gotText    string
	gotSection string
}

func (f *fakeAnnouncementService) Publish(ctx context.Context, text, section string) (*models.Announcement, error) {
	f.gotText = text
	f.gotSection = section
	return f.announcement, f.err
}

func (f *fakeAnnouncementService) GetBySection(ctx context.Context, section string) ([]*models.Announcement, error) {
	f.gotSection = section
	return f.list, f.err
}

func newAnnouncementTestRouter(svc *fakeAnnouncementService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewAnnouncementController(svc)

	router := gin.New()
	router.POST("/api/announcements", controller.PublishAnnouncement)
	router.GET("/api/announcements/:section", controller.GetAnnouncements)
	return router
}

func TestPublishAnnouncementCreated(t *testing.T) {
	svc := &fakeAnnouncementService{announcement: &models.Announcement{
		ID:        1,
		Text:      "PTM on Friday",
		Section:   "12A",
		CreatedAt: time.Now(),
	}}
	router := newAnnouncementTestRouter(svc)

	body := bytes.NewBufferString(`{"text":"PTM on Friday","section":"12A"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/announcements", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d; body: %s", w.Code, http.StatusCreated, w.Body.String())
	}
	if svc.gotText != "PTM on Friday" || svc.gotSection != "12A" {
		t.Errorf("service received (%q, %q)", svc.gotText, svc.gotSection)
	}

	var resp struct {
		Data models.Announcement `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Data.Text != "PTM on Friday" {
		t.Errorf("text = %q", resp.Data.Text)
	}
}

func TestPublishAnnouncementMissingSection(t *testing.T) {
	router := newAnnouncementTestRouter(&fakeAnnouncementService{})

	body := bytes.NewBufferString(`{"text":"PTM on Friday"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/announcements", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestPublishAnnouncementBlankText(t *testing.T) {
	svc := &fakeAnnouncementService{err: apperrors.ErrAnnouncementInvalid}
	router := newAnnouncementTestRouter(svc)

	body := bytes.NewBufferString(`{"text":"   ","section":"12A"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/announcements", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestGetAnnouncementsForwardsSection(t *testing.T) {
	svc := &fakeAnnouncementService{list: []*models.Announcement{
		{ID: 2, Text: "Newer", Section: "all"},
		{ID: 1, Text: "Older", Section: "12A"},
	}}
	router := newAnnouncementTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/announcements/12A", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if svc.gotSection != "12A" {
		t.Errorf("service received section %q", svc.gotSection)
	}

	var resp struct {
		Data []models.Announcement `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Data) != 2 || resp.Data[0].Text != "Newer" {
		t.Errorf("unexpected announcement list: %+v", resp.Data)
	}
}
