package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arjunrk/schoolbeam/internal/app/models"
	"github.com/arjunrk/schoolbeam/internal/pkg/apperrors"
	"github.com/arjunrk/schoolbeam/internal/pkg/websocket"
)

// AnnouncementService defines the interface for announcement operations
type AnnouncementService interface {
	Publish(ctx context.Context, text, section string) (*models.Announcement, error)
	GetBySection(ctx context.Context, section string) ([]*models.Announcement, error)
}

// AnnouncementStore is the persistence surface the service needs. It is
// satisfied by *repositories.AnnouncementRepository.
type AnnouncementStore interface {
	Create(ctx context.Context, announcement *models.Announcement) error
	GetBySection(ctx context.Context, section string) ([]*models.Announcement, error)
}

// AnnouncementBroadcaster pushes events to connected subscribers. It is
// satisfied by *websocket.Hub.
type AnnouncementBroadcaster interface {
	BroadcastAll(event *websocket.Event)
	SubscriberCount() int
}

// announcementServiceImpl implements AnnouncementService
type announcementServiceImpl struct {
	announcementRepo AnnouncementStore
	hub              AnnouncementBroadcaster
	logger           zerolog.Logger
}

// NewAnnouncementService creates a new AnnouncementService
func NewAnnouncementService(
	announcementRepo AnnouncementStore,
	hub AnnouncementBroadcaster,
	logger zerolog.Logger,
) AnnouncementService {
	return &announcementServiceImpl{
		announcementRepo: announcementRepo,
		hub:              hub,
		logger:           logger,
	}
}

// Publish persists the announcement and then pushes the full persisted
// payload, server timestamp included, to every connected subscriber. The
// broadcast is deliberately unfiltered by section; only read-side queries
// filter. Subscribers connecting after publish never receive it.
func (s *announcementServiceImpl) Publish(ctx context.Context, text, section string) (*models.Announcement, error) {
	if strings.TrimSpace(text) == "" || strings.TrimSpace(section) == "" {
		return nil, apperrors.ErrAnnouncementInvalid
	}

	announcement := &models.Announcement{
		Text:    text,
		Section: section,
	}

	if err := s.announcementRepo.Create(ctx, announcement); err != nil {
		return nil, err
	}

	s.hub.BroadcastAll(&websocket.Event{
		Event:   websocket.EventNewAnnouncement,
		Payload: announcement,
	})

	s.logger.Info().
		Int64("id", announcement.ID).
		Str("section", announcement.Section).
		Int("subscriberCount", s.hub.SubscriberCount()).
		Msg("Announcement published")

	return announcement, nil
}

// GetBySection retrieves announcements matching the section or "all", newest first
func (s *announcementServiceImpl) GetBySection(ctx context.Context, section string) ([]*models.Announcement, error) {
	return s.announcementRepo.GetBySection(ctx, section)
}
