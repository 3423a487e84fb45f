package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"smartexpire/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const entryColumns = `id, session_id, item_name, category, quantity, purchase_date, expiry_date,
	opened, calories, storage_instructions, notes, mode, best_before, use_by, best_stored, created_at`

const usedColumns = `id, session_id, item_name, category, quantity, used_on, used_in, notes, mode`

// inventoryRepository implements InventoryRepository using PostgreSQL.
type inventoryRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewInventoryRepository creates a new PostgreSQL-backed inventory repository.
func NewInventoryRepository(pool *pgxpool.Pool, logger zerolog.Logger) InventoryRepository {
	return &inventoryRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "inventory").Logger(),
	}
}

func (r *inventoryRepository) Add(ctx context.Context, e *model.InventoryEntry) error {
	query := `
		INSERT INTO inventory_entries (` + entryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	_, err := r.pool.Exec(ctx, query,
		e.ID, e.SessionID, e.ItemName, e.Category, e.Quantity,
		e.PurchaseDate.Time(), e.ExpiryDate.Time(), e.Opened, e.Calories,
		e.StorageInstructions, e.Notes, string(e.Mode),
		e.BestBefore.Time(), e.UseBy.Time(), e.BestStored, e.CreatedAt,
	)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("entry_id", e.ID.String()).
			Msg("failed to insert inventory entry")
		return fmt.Errorf("failed to insert inventory entry: %w", err)
	}

	r.logger.Debug().Str("entry_id", e.ID.String()).Msg("inventory entry inserted")
	return nil
}

func (r *inventoryRepository) ListByMode(ctx context.Context, sessionID uuid.UUID, mode model.Mode) ([]model.InventoryEntry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM inventory_entries
		WHERE session_id = $1 AND mode = $2
		ORDER BY seq
	`

	rows, err := r.pool.Query(ctx, query, sessionID, string(mode))
	if err != nil {
		r.logger.Error().Err(err).Str("session_id", sessionID.String()).Msg("failed to query inventory entries")
		return nil, fmt.Errorf("failed to query inventory entries: %w", err)
	}
	defer rows.Close()

	entries := []model.InventoryEntry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan inventory entry row")
			return nil, fmt.Errorf("failed to scan inventory entry: %w", err)
		}
		entries = append(entries, *e)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating inventory entry rows")
		return nil, fmt.Errorf("error iterating inventory entries: %w", err)
	}

	return entries, nil
}

func (r *inventoryRepository) Get(ctx context.Context, sessionID, entryID uuid.UUID) (*model.InventoryEntry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM inventory_entries
		WHERE session_id = $1 AND id = $2
	`

	e, err := scanEntry(r.pool.QueryRow(ctx, query, sessionID, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrItemNotFound
		}
		r.logger.Error().Err(err).Str("entry_id", entryID.String()).Msg("failed to query inventory entry")
		return nil, fmt.Errorf("failed to query inventory entry: %w", err)
	}
	return e, nil
}

func (r *inventoryRepository) ToggleOpened(ctx context.Context, sessionID, entryID uuid.UUID) (*model.InventoryEntry, error) {
	query := `
		UPDATE inventory_entries
		SET opened = NOT opened
		WHERE session_id = $1 AND id = $2
		RETURNING ` + entryColumns

	e, err := scanEntry(r.pool.QueryRow(ctx, query, sessionID, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrItemNotFound
		}
		r.logger.Error().Err(err).Str("entry_id", entryID.String()).Msg("failed to toggle opened flag")
		return nil, fmt.Errorf("failed to toggle opened flag: %w", err)
	}
	return e, nil
}

func (r *inventoryRepository) MarkUsed(ctx context.Context, sessionID, entryID uuid.UUID, usage model.Usage) (*model.UsedEntry, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		DELETE FROM inventory_entries
		WHERE session_id = $1 AND id = $2
		RETURNING ` + entryColumns

	e, err := scanEntry(tx.QueryRow(ctx, query, sessionID, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrItemNotFound
		}
		r.logger.Error().Err(err).Str("entry_id", entryID.String()).Msg("failed to delete inventory entry")
		return nil, fmt.Errorf("failed to delete inventory entry: %w", err)
	}

	used := model.NewUsedEntry(*e, usage)
	if err := insertUsed(ctx, tx, &used); err != nil {
		r.logger.Error().Err(err).Str("entry_id", entryID.String()).Msg("failed to insert used entry")
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		r.logger.Error().Err(err).Msg("failed to commit transaction")
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	r.logger.Debug().
		Str("entry_id", entryID.String()).
		Str("used_id", used.ID.String()).
		Msg("inventory entry marked used")
	return &used, nil
}

func (r *inventoryRepository) AddUsed(ctx context.Context, used *model.UsedEntry) error {
	if err := insertUsed(ctx, r.pool, used); err != nil {
		r.logger.Error().Err(err).Str("used_id", used.ID.String()).Msg("failed to insert used entry")
		return err
	}
	return nil
}

func (r *inventoryRepository) ListUsedByMode(ctx context.Context, sessionID uuid.UUID, mode model.Mode) ([]model.UsedEntry, error) {
	query := `
		SELECT ` + usedColumns + `
		FROM used_entries
		WHERE session_id = $1 AND mode = $2
		ORDER BY seq
	`

	rows, err := r.pool.Query(ctx, query, sessionID, string(mode))
	if err != nil {
		r.logger.Error().Err(err).Str("session_id", sessionID.String()).Msg("failed to query used entries")
		return nil, fmt.Errorf("failed to query used entries: %w", err)
	}
	defer rows.Close()

	out := []model.UsedEntry{}
	for rows.Next() {
		var (
			u      model.UsedEntry
			usedOn time.Time
			m      string
		)
		if err := rows.Scan(&u.ID, &u.SessionID, &u.ItemName, &u.Category, &u.Quantity,
			&usedOn, &u.UsedIn, &u.Notes, &m); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan used entry row")
			return nil, fmt.Errorf("failed to scan used entry: %w", err)
		}
		u.UsedOn = model.DateOf(usedOn)
		u.Mode = model.Mode(m)
		out = append(out, u)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating used entry rows")
		return nil, fmt.Errorf("error iterating used entries: %w", err)
	}

	return out, nil
}

func (r *inventoryRepository) Purge(ctx context.Context, sessionID uuid.UUID) error {
	batch := &pgx.Batch{}
	batch.Queue(`DELETE FROM inventory_entries WHERE session_id = $1`, sessionID)
	batch.Queue(`DELETE FROM used_entries WHERE session_id = $1`, sessionID)

	results := r.pool.SendBatch(ctx, batch)
	defer results.Close()

	for i := 0; i < batch.Len(); i++ {
		if _, err := results.Exec(); err != nil {
			r.logger.Error().Err(err).Str("session_id", sessionID.String()).Msg("failed to purge session inventory")
			return fmt.Errorf("failed to purge session inventory: %w", err)
		}
	}

	r.logger.Debug().Str("session_id", sessionID.String()).Msg("session inventory purged")
	return nil
}

type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func insertUsed(ctx context.Context, db execer, u *model.UsedEntry) error {
	query := `
		INSERT INTO used_entries (` + usedColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := db.Exec(ctx, query,
		u.ID, u.SessionID, u.ItemName, u.Category, u.Quantity,
		u.UsedOn.Time(), u.UsedIn, u.Notes, string(u.Mode),
	)
	if err != nil {
		return fmt.Errorf("failed to insert used entry: %w", err)
	}
	return nil
}

func scanEntry(row pgx.Row) (*model.InventoryEntry, error) {
	var (
		e                                   model.InventoryEntry
		purchase, expiry, bestBefore, useBy time.Time
		mode                                string
	)
	err := row.Scan(
		&e.ID, &e.SessionID, &e.ItemName, &e.Category, &e.Quantity,
		&purchase, &expiry, &e.Opened, &e.Calories,
		&e.StorageInstructions, &e.Notes, &mode,
		&bestBefore, &useBy, &e.BestStored, &e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	e.PurchaseDate = model.DateOf(purchase)
	e.ExpiryDate = model.DateOf(expiry)
	e.BestBefore = model.DateOf(bestBefore)
	e.UseBy = model.DateOf(useBy)
	e.Mode = model.Mode(mode)
	return &e, nil
}
