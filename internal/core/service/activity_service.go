package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/agrilink/farm-market/internal/core/domain"
	"github.com/agrilink/farm-market/internal/core/ports"
)

type activityService struct {
	repo ports.ActivityRepository
	log  zerolog.Logger
}

// NewActivityService returns an ActivityService implementation that persists
// feed entries handed over by the dispatcher workers.
func NewActivityService(repo ports.ActivityRepository, log zerolog.Logger) ports.ActivityService {
	return &activityService{repo: repo, log: log}
}

func (s *activityService) Process(ctx context.Context, in ports.ActivityInput) error {
	ts := in.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}

	entry := &domain.Activity{
		ID:        uuid.NewString(),
		Kind:      in.Kind,
		ActorID:   in.ActorID,
		Subject:   in.Subject,
		CreatedAt: ts,
	}

	if err := s.repo.Insert(ctx, entry); err != nil {
		return err
	}

	s.log.Debug().Str("kind", in.Kind).Str("actor_id", in.ActorID).Msg("activity recorded")
	return nil
}
