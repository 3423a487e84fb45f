package repository

import (
	"context"
	"testing"
	"time"

	"smartexpire/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testToday = model.NewDate(2026, time.March, 10)

func newTestEntry(sessionID uuid.UUID, name string, mode model.Mode, expiresIn int) *model.InventoryEntry {
	expiry := testToday.AddDays(expiresIn)
	return &model.InventoryEntry{
		ID:                  uuid.New(),
		SessionID:           sessionID,
		ItemName:            name,
		Category:            model.CategoryOther,
		Quantity:            2,
		PurchaseDate:        testToday.AddDays(-1),
		ExpiryDate:          expiry,
		Calories:            100,
		StorageInstructions: "Keep cool",
		Notes:               "from the market",
		Mode:                mode,
		BestBefore:          expiry,
		UseBy:               expiry.AddDays(model.UseByGraceDays),
		BestStored:          "Shelf",
		CreatedAt:           time.Now().UTC().Truncate(time.Microsecond),
	}
}

// runRepositoryContract exercises behaviour every InventoryRepository must share.
func runRepositoryContract(t *testing.T, newRepo func(t *testing.T) InventoryRepository) {
	ctx := context.Background()

	t.Run("Add and ListByMode keep insertion order per mode", func(t *testing.T) {
		repo := newRepo(t)
		session := uuid.New()

		milk := newTestEntry(session, "Milk", model.ModeGrocery, 3)
		aspirin := newTestEntry(session, "Aspirin", model.ModePharmacy, 100)
		eggs := newTestEntry(session, "Eggs", model.ModeGrocery, 1)
		for _, e := range []*model.InventoryEntry{milk, aspirin, eggs} {
			require.NoError(t, repo.Add(ctx, e))
		}

		grocery, err := repo.ListByMode(ctx, session, model.ModeGrocery)
		require.NoError(t, err)
		require.Len(t, grocery, 2)
		assert.Equal(t, "Milk", grocery[0].ItemName)
		assert.Equal(t, "Eggs", grocery[1].ItemName)
		assert.Equal(t, milk.ExpiryDate, grocery[0].ExpiryDate)
		assert.Equal(t, milk.UseBy, grocery[0].UseBy)
		assert.Equal(t, model.ModeGrocery, grocery[0].Mode)

		pharmacy, err := repo.ListByMode(ctx, session, model.ModePharmacy)
		require.NoError(t, err)
		require.Len(t, pharmacy, 1)
		assert.Equal(t, "Aspirin", pharmacy[0].ItemName)

		cleaning, err := repo.ListByMode(ctx, session, model.ModeCleaning)
		require.NoError(t, err)
		assert.Empty(t, cleaning)
	})

	t.Run("duplicate names are allowed", func(t *testing.T) {
		repo := newRepo(t)
		session := uuid.New()

		require.NoError(t, repo.Add(ctx, newTestEntry(session, "Milk", model.ModeGrocery, 3)))
		require.NoError(t, repo.Add(ctx, newTestEntry(session, "Milk", model.ModeGrocery, 5)))

		entries, err := repo.ListByMode(ctx, session, model.ModeGrocery)
		require.NoError(t, err)
		assert.Len(t, entries, 2)
	})

	t.Run("sessions are isolated", func(t *testing.T) {
		repo := newRepo(t)
		alice, bob := uuid.New(), uuid.New()

		entry := newTestEntry(alice, "Milk", model.ModeGrocery, 3)
		require.NoError(t, repo.Add(ctx, entry))

		entries, err := repo.ListByMode(ctx, bob, model.ModeGrocery)
		require.NoError(t, err)
		assert.Empty(t, entries)

		_, err = repo.Get(ctx, bob, entry.ID)
		assert.ErrorIs(t, err, model.ErrItemNotFound)

		_, err = repo.MarkUsed(ctx, bob, entry.ID, model.Usage{UsedOn: testToday})
		assert.ErrorIs(t, err, model.ErrItemNotFound)

		entries, err = repo.ListByMode(ctx, alice, model.ModeGrocery)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("Get and ToggleOpened", func(t *testing.T) {
		repo := newRepo(t)
		session := uuid.New()
		entry := newTestEntry(session, "Moisturizer", model.ModeCosmetics, 300)
		require.NoError(t, repo.Add(ctx, entry))

		got, err := repo.Get(ctx, session, entry.ID)
		require.NoError(t, err)
		assert.Equal(t, entry.ItemName, got.ItemName)
		assert.False(t, got.Opened)

		toggled, err := repo.ToggleOpened(ctx, session, entry.ID)
		require.NoError(t, err)
		assert.True(t, toggled.Opened)

		toggled, err = repo.ToggleOpened(ctx, session, entry.ID)
		require.NoError(t, err)
		assert.False(t, toggled.Opened)

		_, err = repo.ToggleOpened(ctx, session, uuid.New())
		assert.ErrorIs(t, err, model.ErrItemNotFound)

		_, err = repo.Get(ctx, session, uuid.New())
		assert.ErrorIs(t, err, model.ErrItemNotFound)
	})

	t.Run("MarkUsed moves the entry", func(t *testing.T) {
		repo := newRepo(t)
		session := uuid.New()
		milk := newTestEntry(session, "Organic Milk", model.ModeGrocery, 3)
		eggs := newTestEntry(session, "Eggs", model.ModeGrocery, 10)
		require.NoError(t, repo.Add(ctx, milk))
		require.NoError(t, repo.Add(ctx, eggs))

		used, err := repo.MarkUsed(ctx, session, milk.ID, model.Usage{UsedOn: testToday, UsedIn: "Pancakes"})
		require.NoError(t, err)
		assert.Equal(t, "Organic Milk", used.ItemName)
		assert.Equal(t, testToday, used.UsedOn)
		assert.Equal(t, "Pancakes", used.UsedIn)
		assert.Equal(t, "from the market", used.Notes)
		assert.Equal(t, 2, used.Quantity)

		remaining, err := repo.ListByMode(ctx, session, model.ModeGrocery)
		require.NoError(t, err)
		require.Len(t, remaining, 1)
		assert.Equal(t, "Eggs", remaining[0].ItemName)

		usedList, err := repo.ListUsedByMode(ctx, session, model.ModeGrocery)
		require.NoError(t, err)
		require.Len(t, usedList, 1)
		assert.Equal(t, used.ID, usedList[0].ID)
		assert.Equal(t, testToday, usedList[0].UsedOn)
	})

	t.Run("MarkUsed defaults and notes override", func(t *testing.T) {
		repo := newRepo(t)
		session := uuid.New()
		entry := newTestEntry(session, "Chicken", model.ModeGrocery, 2)
		require.NoError(t, repo.Add(ctx, entry))

		blank := ""
		used, err := repo.MarkUsed(ctx, session, entry.ID, model.Usage{UsedOn: testToday, Notes: &blank})
		require.NoError(t, err)
		assert.Equal(t, model.DefaultUsedIn, used.UsedIn)
		assert.Equal(t, "", used.Notes)
	})

	t.Run("MarkUsed unknown id changes nothing", func(t *testing.T) {
		repo := newRepo(t)
		session := uuid.New()
		require.NoError(t, repo.Add(ctx, newTestEntry(session, "Eggs", model.ModeGrocery, 10)))

		_, err := repo.MarkUsed(ctx, session, uuid.New(), model.Usage{UsedOn: testToday})
		assert.ErrorIs(t, err, model.ErrItemNotFound)

		entries, err := repo.ListByMode(ctx, session, model.ModeGrocery)
		require.NoError(t, err)
		assert.Len(t, entries, 1)

		usedList, err := repo.ListUsedByMode(ctx, session, model.ModeGrocery)
		require.NoError(t, err)
		assert.Empty(t, usedList)
	})

	t.Run("AddUsed and ListUsedByMode filter by mode", func(t *testing.T) {
		repo := newRepo(t)
		session := uuid.New()

		carrots := model.UsedEntry{
			ID: uuid.New(), SessionID: session, ItemName: "Organic Carrots", Category: "Vegetable",
			Quantity: 5, UsedOn: testToday.AddDays(-2), UsedIn: "Carrot Soup", Notes: "Used all", Mode: model.ModeGrocery,
		}
		soap := model.UsedEntry{
			ID: uuid.New(), SessionID: session, ItemName: "Dish Soap", Category: "Kitchen",
			Quantity: 1, UsedOn: testToday, UsedIn: model.DefaultUsedIn, Mode: model.ModeCleaning,
		}
		require.NoError(t, repo.AddUsed(ctx, &carrots))
		require.NoError(t, repo.AddUsed(ctx, &soap))

		grocery, err := repo.ListUsedByMode(ctx, session, model.ModeGrocery)
		require.NoError(t, err)
		require.Len(t, grocery, 1)
		assert.Equal(t, "Carrot Soup", grocery[0].UsedIn)
		assert.Equal(t, testToday.AddDays(-2), grocery[0].UsedOn)
	})

	t.Run("Purge removes everything for the session only", func(t *testing.T) {
		repo := newRepo(t)
		gone, kept := uuid.New(), uuid.New()

		e := newTestEntry(gone, "Milk", model.ModeGrocery, 3)
		require.NoError(t, repo.Add(ctx, e))
		_, err := repo.MarkUsed(ctx, gone, e.ID, model.Usage{UsedOn: testToday})
		require.NoError(t, err)
		require.NoError(t, repo.Add(ctx, newTestEntry(gone, "Eggs", model.ModeGrocery, 3)))
		require.NoError(t, repo.Add(ctx, newTestEntry(kept, "Bread", model.ModeGrocery, 3)))

		require.NoError(t, repo.Purge(ctx, gone))

		entries, err := repo.ListByMode(ctx, gone, model.ModeGrocery)
		require.NoError(t, err)
		assert.Empty(t, entries)
		usedList, err := repo.ListUsedByMode(ctx, gone, model.ModeGrocery)
		require.NoError(t, err)
		assert.Empty(t, usedList)

		entries, err = repo.ListByMode(ctx, kept, model.ModeGrocery)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})
}
