package repository

import (
	"context"
	"sync"

	"smartexpire/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// memoryRepository implements InventoryRepository in process memory.
type memoryRepository struct {
	mu      sync.RWMutex
	entries map[uuid.UUID][]model.InventoryEntry
	used    map[uuid.UUID][]model.UsedEntry
	logger  zerolog.Logger
}

// NewMemoryRepository creates an in-memory inventory repository.
func NewMemoryRepository(logger zerolog.Logger) InventoryRepository {
	return &memoryRepository{
		entries: make(map[uuid.UUID][]model.InventoryEntry),
		used:    make(map[uuid.UUID][]model.UsedEntry),
		logger:  logger.With().Str("repository", "inventory-memory").Logger(),
	}
}

func (r *memoryRepository) Add(ctx context.Context, entry *model.InventoryEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[entry.SessionID] = append(r.entries[entry.SessionID], *entry)

	r.logger.Debug().
		Str("session_id", entry.SessionID.String()).
		Str("entry_id", entry.ID.String()).
		Msg("inventory entry added")
	return nil
}

func (r *memoryRepository) ListByMode(ctx context.Context, sessionID uuid.UUID, mode model.Mode) ([]model.InventoryEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []model.InventoryEntry{}
	for _, e := range r.entries[sessionID] {
		if e.Mode == mode {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *memoryRepository) Get(ctx context.Context, sessionID, entryID uuid.UUID) (*model.InventoryEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(sessionID, entryID)
	if i < 0 {
		return nil, model.ErrItemNotFound
	}
	e := r.entries[sessionID][i]
	return &e, nil
}

func (r *memoryRepository) ToggleOpened(ctx context.Context, sessionID, entryID uuid.UUID) (*model.InventoryEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(sessionID, entryID)
	if i < 0 {
		return nil, model.ErrItemNotFound
	}
	r.entries[sessionID][i].Opened = !r.entries[sessionID][i].Opened
	e := r.entries[sessionID][i]
	return &e, nil
}

func (r *memoryRepository) MarkUsed(ctx context.Context, sessionID, entryID uuid.UUID, usage model.Usage) (*model.UsedEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(sessionID, entryID)
	if i < 0 {
		return nil, model.ErrItemNotFound
	}

	list := r.entries[sessionID]
	used := model.NewUsedEntry(list[i], usage)
	r.entries[sessionID] = append(list[:i:i], list[i+1:]...)
	r.used[sessionID] = append(r.used[sessionID], used)

	r.logger.Debug().
		Str("session_id", sessionID.String()).
		Str("entry_id", entryID.String()).
		Str("used_id", used.ID.String()).
		Msg("inventory entry marked used")
	return &used, nil
}

func (r *memoryRepository) AddUsed(ctx context.Context, used *model.UsedEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.used[used.SessionID] = append(r.used[used.SessionID], *used)
	return nil
}

func (r *memoryRepository) ListUsedByMode(ctx context.Context, sessionID uuid.UUID, mode model.Mode) ([]model.UsedEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []model.UsedEntry{}
	for _, u := range r.used[sessionID] {
		if u.Mode == mode {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *memoryRepository) Purge(ctx context.Context, sessionID uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, sessionID)
	delete(r.used, sessionID)
	return nil
}

// indexOf must be called with mu held.
func (r *memoryRepository) indexOf(sessionID, entryID uuid.UUID) int {
	for i, e := range r.entries[sessionID] {
		if e.ID == entryID {
			return i
		}
	}
	return -1
}
