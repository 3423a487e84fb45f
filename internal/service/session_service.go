package service

import (
	"context"
	"fmt"
	"time"

	"smartexpire/internal/model"
	"smartexpire/internal/repository"
	"smartexpire/internal/session"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// sessionService implements SessionService.
type sessionService struct {
	manager     *session.Manager
	repo        repository.InventoryRepository
	seedSamples bool
	now         func() time.Time
	logger      zerolog.Logger
}

// NewSessionService creates a new session service.
func NewSessionService(
	manager *session.Manager,
	repo repository.InventoryRepository,
	seedSamples bool,
	now func() time.Time,
	logger zerolog.Logger,
) SessionService {
	if now == nil {
		now = time.Now
	}
	return &sessionService{
		manager:     manager,
		repo:        repo,
		seedSamples: seedSamples,
		now:         now,
		logger:      logger.With().Str("service", "session").Logger(),
	}
}

func (s *sessionService) Create(ctx context.Context) (*session.State, error) {
	st := s.manager.Create()
	if !s.seedSamples {
		return st, nil
	}

	if err := s.seed(ctx, st.ID()); err != nil {
		s.logger.Error().Err(err).Str("session_id", st.ID().String()).Msg("failed to seed session")
		_ = s.manager.End(st.ID())
		_ = s.repo.Purge(ctx, st.ID())
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return st, nil
}

func (s *sessionService) seed(ctx context.Context, id uuid.UUID) error {
	now := s.now()
	today := model.DateOf(now)

	for _, e := range session.SampleInventory(id, today, now) {
		if err := s.repo.Add(ctx, &e); err != nil {
			return err
		}
	}

	used := session.SampleUsed(id, today)
	if err := s.repo.AddUsed(ctx, &used); err != nil {
		return err
	}

	s.logger.Debug().Str("session_id", id.String()).Msg("sample data seeded")
	return nil
}

func (s *sessionService) Resolve(id string) (*session.State, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, model.ErrSessionNotFound
	}
	return s.manager.Get(parsed)
}

func (s *sessionService) End(ctx context.Context, id uuid.UUID) error {
	if err := s.manager.End(id); err != nil {
		return err
	}
	if err := s.repo.Purge(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("session_id", id.String()).Msg("failed to purge session inventory")
		return fmt.Errorf("failed to end session: %w", err)
	}
	return nil
}

func (s *sessionService) SetMode(st *session.State, mode string) (model.ModeProfile, error) {
	m, err := model.ParseMode(mode)
	if err != nil {
		return model.ModeProfile{}, err
	}
	st.SetMode(m)

	s.logger.Debug().
		Str("session_id", st.ID().String()).
		Str("mode", string(m)).
		Msg("mode changed")
	return m.Profile(), nil
}

func (s *sessionService) Modes() []model.ModeProfile {
	modes := model.Modes()
	out := make([]model.ModeProfile, len(modes))
	for i, m := range modes {
		out[i] = m.Profile()
	}
	return out
}
