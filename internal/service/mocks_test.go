package service

import (
	"context"
	"time"

	"smartexpire/internal/model"
	"smartexpire/internal/session"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"
)

// MockInventoryRepository is a mock implementation of InventoryRepository.
type MockInventoryRepository struct {
	mock.Mock
}

func (m *MockInventoryRepository) Add(ctx context.Context, entry *model.InventoryEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockInventoryRepository) ListByMode(ctx context.Context, sessionID uuid.UUID, mode model.Mode) ([]model.InventoryEntry, error) {
	args := m.Called(ctx, sessionID, mode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.InventoryEntry), args.Error(1)
}

func (m *MockInventoryRepository) Get(ctx context.Context, sessionID, entryID uuid.UUID) (*model.InventoryEntry, error) {
	args := m.Called(ctx, sessionID, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.InventoryEntry), args.Error(1)
}

func (m *MockInventoryRepository) ToggleOpened(ctx context.Context, sessionID, entryID uuid.UUID) (*model.InventoryEntry, error) {
	args := m.Called(ctx, sessionID, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.InventoryEntry), args.Error(1)
}

func (m *MockInventoryRepository) MarkUsed(ctx context.Context, sessionID, entryID uuid.UUID, usage model.Usage) (*model.UsedEntry, error) {
	args := m.Called(ctx, sessionID, entryID, usage)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UsedEntry), args.Error(1)
}

func (m *MockInventoryRepository) AddUsed(ctx context.Context, used *model.UsedEntry) error {
	args := m.Called(ctx, used)
	return args.Error(0)
}

func (m *MockInventoryRepository) ListUsedByMode(ctx context.Context, sessionID uuid.UUID, mode model.Mode) ([]model.UsedEntry, error) {
	args := m.Called(ctx, sessionID, mode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.UsedEntry), args.Error(1)
}

func (m *MockInventoryRepository) Purge(ctx context.Context, sessionID uuid.UUID) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

// MockExtractor is a mock implementation of ocr.Extractor.
type MockExtractor struct {
	mock.Mock
}

func (m *MockExtractor) ExtractText(ctx context.Context, image []byte, contentType string) (string, error) {
	args := m.Called(ctx, image, contentType)
	return args.String(0), args.Error(1)
}

func fixedNow() time.Time {
	return time.Date(2026, time.March, 10, 9, 30, 0, 0, time.UTC)
}

var testToday = model.NewDate(2026, time.March, 10)

func newTestState() *session.State {
	return session.NewManager(fixedNow, zerolog.Nop()).Create()
}

func newEntry(st *session.State, name, category string, mode model.Mode, expiresIn int) model.InventoryEntry {
	return model.InventoryEntry{
		ID:           uuid.New(),
		SessionID:    st.ID(),
		ItemName:     name,
		Category:     category,
		Quantity:     1,
		PurchaseDate: testToday.AddDays(-1),
		ExpiryDate:   testToday.AddDays(expiresIn),
		Mode:         mode,
		BestBefore:   testToday.AddDays(expiresIn),
		UseBy:        testToday.AddDays(expiresIn + model.UseByGraceDays),
		CreatedAt:    fixedNow(),
	}
}
