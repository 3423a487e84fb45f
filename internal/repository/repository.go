package repository

import (
	"context"

	"smartexpire/internal/model"

	"github.com/google/uuid"
)

// InventoryRepository defines data access for inventory and used entries.
// Every call is scoped to one session.
type InventoryRepository interface {
	// Add appends an entry. Entries are not unique by name.
	Add(ctx context.Context, entry *model.InventoryEntry) error

	// ListByMode returns the session's entries in mode, in insertion order.
	ListByMode(ctx context.Context, sessionID uuid.UUID, mode model.Mode) ([]model.InventoryEntry, error)

	// Get returns one entry or model.ErrItemNotFound.
	Get(ctx context.Context, sessionID, entryID uuid.UUID) (*model.InventoryEntry, error)

	// ToggleOpened flips the opened flag and returns the updated entry.
	ToggleOpened(ctx context.Context, sessionID, entryID uuid.UUID) (*model.InventoryEntry, error)

	// MarkUsed removes the entry and appends its used record atomically.
	// Unknown ids return model.ErrItemNotFound and change nothing.
	MarkUsed(ctx context.Context, sessionID, entryID uuid.UUID, usage model.Usage) (*model.UsedEntry, error)

	// AddUsed appends a used record directly.
	AddUsed(ctx context.Context, used *model.UsedEntry) error

	// ListUsedByMode returns the session's used records in mode, in insertion order.
	ListUsedByMode(ctx context.Context, sessionID uuid.UUID, mode model.Mode) ([]model.UsedEntry, error)

	// Purge deletes everything owned by the session.
	Purge(ctx context.Context, sessionID uuid.UUID) error
}
