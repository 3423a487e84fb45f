package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"smartexpire/internal/expiry"
	"smartexpire/internal/model"
	"smartexpire/internal/repository"
	"smartexpire/internal/session"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// inventoryService implements InventoryService.
type inventoryService struct {
	repo      repository.InventoryRepository
	catalog   Catalog
	validator *validator.Validate
	now       func() time.Time
	logger    zerolog.Logger
}

// NewInventoryService creates a new inventory service.
func NewInventoryService(
	repo repository.InventoryRepository,
	catalog Catalog,
	validator *validator.Validate,
	now func() time.Time,
	logger zerolog.Logger,
) InventoryService {
	if now == nil {
		now = time.Now
	}
	return &inventoryService{
		repo:      repo,
		catalog:   catalog,
		validator: validator,
		now:       now,
		logger:    logger.With().Str("service", "inventory").Logger(),
	}
}

func (s *inventoryService) today() model.Date {
	return model.DateOf(s.now())
}

// AddItem validates req against the active mode and stores the entry.
func (s *inventoryService) AddItem(ctx context.Context, st *session.State, req *model.AddItemRequest) (*model.ClassifiedEntry, error) {
	req.ItemName = strings.TrimSpace(req.ItemName)
	req.Category = strings.TrimSpace(req.Category)
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	mode := st.Mode()
	entry, err := s.buildEntry(st.ID(), mode, req)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Add(ctx, entry); err != nil {
		s.logger.Error().Err(err).Str("session_id", st.ID().String()).Msg("failed to add item")
		return nil, fmt.Errorf("failed to add item: %w", err)
	}

	s.logger.Info().
		Str("session_id", st.ID().String()).
		Str("item_id", entry.ID.String()).
		Str("mode", string(mode)).
		Msg("item added")

	classified := expiry.Annotate(*entry, s.today())
	return &classified, nil
}

func (s *inventoryService) buildEntry(sessionID uuid.UUID, mode model.Mode, req *model.AddItemRequest) (*model.InventoryEntry, error) {
	profile := mode.Profile()

	category := req.Category
	if category == "" {
		category = model.CategoryOther
	}
	if !profile.HasCategory(category) {
		return nil, model.NewValidationError(
			fmt.Sprintf("category %q is not available in %s mode", category, profile.Label))
	}

	purchased, err := model.ParseDate(req.PurchaseDate)
	if err != nil {
		return nil, err
	}
	expires, err := model.ParseDate(req.ExpiryDate)
	if err != nil {
		return nil, err
	}

	bestBefore := expires
	if req.BestBefore != "" {
		if bestBefore, err = model.ParseDate(req.BestBefore); err != nil {
			return nil, err
		}
	}
	useBy := expires.AddDays(model.UseByGraceDays)
	if req.UseBy != "" {
		if useBy, err = model.ParseDate(req.UseBy); err != nil {
			return nil, err
		}
	}

	calories := req.Calories
	if !profile.TracksCalories {
		calories = 0
	}

	return &model.InventoryEntry{
		ID:                  uuid.New(),
		SessionID:           sessionID,
		ItemName:            req.ItemName,
		Category:            category,
		Quantity:            req.Quantity,
		PurchaseDate:        purchased,
		ExpiryDate:          expires,
		Opened:              req.Opened,
		Calories:            calories,
		StorageInstructions: req.StorageInstructions,
		Notes:               req.Notes,
		Mode:                mode,
		BestBefore:          bestBefore,
		UseBy:               useBy,
		BestStored:          req.BestStored,
		CreatedAt:           s.now(),
	}, nil
}

// ListItems returns the active mode's entries sorted by expiry.
func (s *inventoryService) ListItems(ctx context.Context, st *session.State, search string) ([]model.ClassifiedEntry, error) {
	entries, err := s.repo.ListByMode(ctx, st.ID(), st.Mode())
	if err != nil {
		s.logger.Error().Err(err).Str("session_id", st.ID().String()).Msg("failed to list items")
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return expiry.ListView(entries, s.today(), strings.TrimSpace(search)), nil
}

func (s *inventoryService) ListUsed(ctx context.Context, st *session.State) ([]model.UsedEntry, error) {
	used, err := s.repo.ListUsedByMode(ctx, st.ID(), st.Mode())
	if err != nil {
		s.logger.Error().Err(err).Str("session_id", st.ID().String()).Msg("failed to list used items")
		return nil, fmt.Errorf("failed to list used items: %w", err)
	}
	if used == nil {
		used = []model.UsedEntry{}
	}
	return used, nil
}

func (s *inventoryService) Stats(ctx context.Context, st *session.State) (*model.Stats, error) {
	mode := st.Mode()
	entries, err := s.repo.ListByMode(ctx, st.ID(), mode)
	if err != nil {
		s.logger.Error().Err(err).Str("session_id", st.ID().String()).Msg("failed to compute stats")
		return nil, fmt.Errorf("failed to compute stats: %w", err)
	}
	stats := expiry.ComputeStats(entries, mode, s.today())
	return &stats, nil
}

func (s *inventoryService) GetItem(ctx context.Context, st *session.State, id uuid.UUID) (*model.ItemDetail, error) {
	entry, err := s.repo.Get(ctx, st.ID(), id)
	if err != nil {
		return nil, err
	}
	return &model.ItemDetail{
		ClassifiedEntry: expiry.Annotate(*entry, s.today()),
		Disposal:        s.catalog.Advise(entry.Category, entry.Mode),
	}, nil
}

func (s *inventoryService) ToggleOpened(ctx context.Context, st *session.State, id uuid.UUID) (*model.ClassifiedEntry, error) {
	entry, err := s.repo.ToggleOpened(ctx, st.ID(), id)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().
		Str("item_id", id.String()).
		Bool("opened", entry.Opened).
		Msg("item opened flag toggled")

	classified := expiry.Annotate(*entry, s.today())
	return &classified, nil
}

// MarkUsed moves the entry to the used list dated today.
func (s *inventoryService) MarkUsed(ctx context.Context, st *session.State, id uuid.UUID, req *model.MarkUsedRequest) (*model.UsedEntry, error) {
	usage := model.Usage{
		UsedOn: s.today(),
		UsedIn: strings.TrimSpace(req.UsedIn),
		Notes:  req.Notes,
	}

	used, err := s.repo.MarkUsed(ctx, st.ID(), id, usage)
	if err != nil {
		return nil, err
	}

	if req.AddToShoppingList {
		st.AddShoppingItem(used.ItemName)
	}

	s.logger.Info().
		Str("session_id", st.ID().String()).
		Str("item_id", id.String()).
		Bool("added_to_shopping_list", req.AddToShoppingList).
		Msg("item marked as used")
	return used, nil
}

func (s *inventoryService) Disposal(st *session.State, category string) model.Disposal {
	return s.catalog.Advise(strings.TrimSpace(category), st.Mode())
}
