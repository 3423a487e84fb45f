package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"smartexpire/internal/model"
	"smartexpire/internal/ocr"
	"smartexpire/internal/session"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// hubService implements HubService.
type hubService struct {
	extractor       ocr.Extractor
	maxReceiptBytes int
	validator       *validator.Validate
	now             func() time.Time
	logger          zerolog.Logger
}

// NewHubService creates a new hub service.
func NewHubService(
	extractor ocr.Extractor,
	maxReceiptBytes int,
	validator *validator.Validate,
	now func() time.Time,
	logger zerolog.Logger,
) HubService {
	if now == nil {
		now = time.Now
	}
	return &hubService{
		extractor:       extractor,
		maxReceiptBytes: maxReceiptBytes,
		validator:       validator,
		now:             now,
		logger:          logger.With().Str("service", "hub").Logger(),
	}
}

func (s *hubService) ShoppingList(st *session.State) []model.ShoppingListItem {
	return st.ShoppingList()
}

// AddShoppingItem appends a name unless it is already listed.
func (s *hubService) AddShoppingItem(st *session.State, req *model.ShoppingItemRequest) ([]model.ShoppingListItem, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	st.AddShoppingItem(req.Name)
	return st.ShoppingList(), nil
}

func (s *hubService) RemoveShoppingItem(st *session.State, name string) error {
	return st.RemoveShoppingItem(name)
}

func (s *hubService) Cards(st *session.State) []model.BarcodeCard {
	return st.Cards()
}

func (s *hubService) AddCard(st *session.State, req *model.CardRequest) (*model.BarcodeCard, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Number = strings.TrimSpace(req.Number)
	req.Image = strings.TrimSpace(req.Image)
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	card := model.BarcodeCard{
		ID:     uuid.New(),
		Name:   req.Name,
		Number: req.Number,
		Image:  req.Image,
	}
	if card.Image == "" {
		card.Image = model.DefaultCardImage
	}
	st.AddCard(card)
	return &card, nil
}

func (s *hubService) RemoveCard(st *session.State, id uuid.UUID) error {
	return st.RemoveCard(id)
}

// Schedule returns the schedule entries of the active mode.
func (s *hubService) Schedule(st *session.State) []model.ScheduleEntry {
	return st.Schedule(st.Mode())
}

func (s *hubService) AddSchedule(st *session.State, req *model.ScheduleRequest) (*model.ScheduleEntry, error) {
	profile := st.Mode().Profile()
	if !profile.ScheduleEnabled {
		return nil, model.NewValidationError(
			fmt.Sprintf("usage schedule is not available in %s mode", profile.Label))
	}

	req.ItemName = strings.TrimSpace(req.ItemName)
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	entry := model.ScheduleEntry{
		ID:           uuid.New(),
		ItemName:     req.ItemName,
		Instructions: strings.TrimSpace(req.Instructions),
		Times:        append([]string(nil), req.Times...),
		Days:         append([]string(nil), req.Days...),
		Mode:         profile.Mode,
	}
	st.AddSchedule(entry)
	return &entry, nil
}

func (s *hubService) RemoveSchedule(st *session.State, id uuid.UUID) error {
	return st.RemoveSchedule(id)
}

func (s *hubService) Receipts(st *session.State) []model.ReceiptSummary {
	records := st.Receipts()
	out := make([]model.ReceiptSummary, len(records))
	for i, r := range records {
		out[i] = r.Summary()
	}
	return out
}

// UploadReceipt checks image, extracts its text and records the receipt
// dated today.
func (s *hubService) UploadReceipt(ctx context.Context, st *session.State, image []byte) (*model.ReceiptSummary, error) {
	if len(image) == 0 {
		return nil, model.NewValidationError("receipt image is required")
	}
	if len(image) > s.maxReceiptBytes {
		return nil, model.NewValidationError(
			fmt.Sprintf("receipt image exceeds %d bytes", s.maxReceiptBytes))
	}

	contentType, err := ocr.SniffImage(image)
	if err != nil {
		return nil, err
	}

	text, err := s.extractor.ExtractText(ctx, image, contentType)
	if err != nil {
		s.logger.Warn().
			Err(err).
			Str("session_id", st.ID().String()).
			Int("size", len(image)).
			Msg("receipt text extraction failed")
		return nil, err
	}

	now := s.now()
	record := model.ReceiptRecord{
		ID:          uuid.New(),
		Date:        model.DateOf(now),
		Text:        text,
		Image:       image,
		ContentType: contentType,
		CreatedAt:   now,
	}
	st.AddReceipt(record)

	s.logger.Info().
		Str("session_id", st.ID().String()).
		Str("receipt_id", record.ID.String()).
		Str("content_type", contentType).
		Msg("receipt recorded")

	summary := record.Summary()
	return &summary, nil
}

func (s *hubService) RemoveReceipt(st *session.State, id uuid.UUID) error {
	return st.RemoveReceipt(id)
}
