package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/arjunrk/schoolbeam/internal/app/models"
	"github.com/arjunrk/schoolbeam/internal/pkg/apperrors"
	"github.com/arjunrk/schoolbeam/internal/pkg/websocket"
)

// fakeAnnouncementStore assigns an id and timestamp on insert the way the
// database does.
type fakeAnnouncementStore struct {
	err        error
	created    []*models.Announcement
	gotSection string
	list       []*models.Announcement
}

func (f *fakeAnnouncementStore) Create(ctx context.Context, announcement *models.Announcement) error {
	if f.err != nil {
		return f.err
	}
	announcement.ID = int64(len(f.created) + 1)
	announcement.CreatedAt = time.Now()
	f.created = append(f.created, announcement)
	return nil
}

func (f *fakeAnnouncementStore) GetBySection(ctx context.Context, section string) ([]*models.Announcement, error) {
	f.gotSection = section
	return f.list, f.err
}

// fakeBroadcaster records each event and the payload's id as seen at
// broadcast time, so tests can tell whether the record was already persisted.
type fakeBroadcaster struct {
	events     []*websocket.Event
	payloadIDs []int64
}

func (f *fakeBroadcaster) BroadcastAll(event *websocket.Event) {
	f.events = append(f.events, event)
	if a, ok := event.Payload.(*models.Announcement); ok {
		f.payloadIDs = append(f.payloadIDs, a.ID)
	}
}

func (f *fakeBroadcaster) SubscriberCount() int {
	return 0
}

func TestPublishBroadcastsPersistedAnnouncement(t *testing.T) {
	store := &fakeAnnouncementStore{}
	hub := &fakeBroadcaster{}
	svc := NewAnnouncementService(store, hub, zerolog.Nop())

	announcement, err := svc.Publish(context.Background(), "PTM on Friday", "12A")
	if err != nil {
		t.Fatalf("Publish failed: %v", err)
	}
	if announcement.ID == 0 {
		t.Error("announcement was not persisted before returning")
	}

	if len(hub.events) != 1 {
		t.Fatalf("broadcast count = %d, want 1", len(hub.events))
	}
	if hub.events[0].Event != websocket.EventNewAnnouncement {
		t.Errorf("event = %q, want %q", hub.events[0].Event, websocket.EventNewAnnouncement)
	}
	// The payload must carry the store-assigned id: broadcast happens only
	// after a successful insert, never before.
	if hub.payloadIDs[0] != announcement.ID {
		t.Errorf("payload id at broadcast time = %d, want %d", hub.payloadIDs[0], announcement.ID)
	}
}

func TestPublishSkipsBroadcastWhenPersistFails(t *testing.T) {
	storeErr := errors.New("connection reset by peer")
	store := &fakeAnnouncementStore{err: storeErr}
	hub := &fakeBroadcaster{}
	svc := NewAnnouncementService(store, hub, zerolog.Nop())

	_, err := svc.Publish(context.Background(), "PTM on Friday", "12A")
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected the storage error, got %v", err)
	}
	if len(hub.events) != 0 {
		t.Errorf("broadcast count = %d, want 0", len(hub.events))
	}
}

func TestPublishRejectsBlankInput(t *testing.T) {
	store := &fakeAnnouncementStore{}
	hub := &fakeBroadcaster{}
	svc := NewAnnouncementService(store, hub, zerolog.Nop())

	tests := []struct {
		name    string
		text    string
		section string
	}{
		{"blank text", "   ", "12A"},
		{"blank section", "PTM on Friday", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Publish(context.Background(), tt.text, tt.section)
			if !errors.Is(err, apperrors.ErrAnnouncementInvalid) {
				t.Fatalf("expected invalid announcement error, got %v", err)
			}
		})
	}

	if len(store.created) != 0 {
		t.Errorf("nothing should be persisted, got %d", len(store.created))
	}
}

func TestGetBySectionForwardsSection(t *testing.T) {
	store := &fakeAnnouncementStore{list: []*models.Announcement{
		{ID: 1, Text: "PTM on Friday", Section: "12A"},
	}}
	svc := NewAnnouncementService(store, &fakeBroadcaster{}, zerolog.Nop())

	announcements, err := svc.GetBySection(context.Background(), "12A")
	if err != nil {
		t.Fatalf("GetBySection failed: %v", err)
	}
	if store.gotSection != "12A" {
		t.Errorf("store received section %q", store.gotSection)
	}
	if len(announcements) != 1 {
		t.Errorf("announcements = %d, want 1", len(announcements))
	}
}
