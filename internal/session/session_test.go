package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"smartexpire/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time {
	return time.Date(2026, time.March, 10, 9, 30, 0, 0, time.UTC)
}

func TestManager_Lifecycle(t *testing.T) {
	m := NewManager(fixedNow, zerolog.Nop())

	s := m.Create()
	require.NotNil(t, s)
	assert.Equal(t, 1, m.Len())
	assert.Equal(t, model.ModeGrocery, s.Mode())

	got, err := m.Get(s.ID())
	require.NoError(t, err)
	assert.Same(t, s, got)

	require.NoError(t, m.End(s.ID()))
	assert.Equal(t, 0, m.Len())

	_, err = m.Get(s.ID())
	assert.ErrorIs(t, err, model.ErrSessionNotFound)
	assert.ErrorIs(t, m.End(s.ID()), model.ErrSessionNotFound)
}

func TestManager_SessionsAreIndependent(t *testing.T) {
	m := NewManager(nil, zerolog.Nop())
	a, b := m.Create(), m.Create()

	assert.NotEqual(t, a.ID(), b.ID())

	a.SetMode(model.ModePharmacy)
	a.AddShoppingItem("Milk")

	assert.Equal(t, model.ModeGrocery, b.Mode())
	assert.Empty(t, b.ShoppingList())
}

func TestManager_ConcurrentCreate(t *testing.T) {
	m := NewManager(nil, zerolog.Nop())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s := m.Create()
			s.AddShoppingItem("Bread")
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, m.Len())
}

func TestState_StartsWithSampleCards(t *testing.T) {
	s := NewManager(fixedNow, zerolog.Nop()).Create()

	cards := s.Cards()
	require.Len(t, cards, 2)
	assert.Equal(t, "Organic Grocers Loyalty", cards[0].Name)
	assert.Equal(t, "123456789", cards[0].Number)
	assert.Equal(t, "Pharmacy Rewards", cards[1].Name)
	assert.Equal(t, "987654321", cards[1].Number)

	summary := s.Summary()
	assert.Equal(t, 2, summary.Cards)
	assert.Equal(t, "Grocery", summary.ModeLabel)
	assert.Equal(t, fixedNow(), summary.CreatedAt)
}

func TestState_ShoppingList(t *testing.T) {
	s := newState(uuid.New(), fixedNow())

	assert.True(t, s.AddShoppingItem("Milk"))
	assert.False(t, s.AddShoppingItem("Milk"))
	assert.True(t, s.AddShoppingItem("milk"), "names are case sensitive")
	assert.True(t, s.AddShoppingItem("Eggs"))

	assert.Equal(t, []model.ShoppingListItem{{Name: "Milk"}, {Name: "milk"}, {Name: "Eggs"}}, s.ShoppingList())

	require.NoError(t, s.RemoveShoppingItem("milk"))
	assert.ErrorIs(t, s.RemoveShoppingItem("milk"), model.ErrListItemNotFound)
	assert.Equal(t, []model.ShoppingListItem{{Name: "Milk"}, {Name: "Eggs"}}, s.ShoppingList())
}

func TestState_ShoppingListReturnsCopy(t *testing.T) {
	s := newState(uuid.New(), fixedNow())
	s.AddShoppingItem("Milk")

	list := s.ShoppingList()
	list[0].Name = "Changed"

	assert.Equal(t, "Milk", s.ShoppingList()[0].Name)
}

func TestState_Favorites(t *testing.T) {
	s := newState(uuid.New(), fixedNow())
	pancakes := model.Recipe{Name: "Pancakes", Tier: model.TierSimple}

	assert.True(t, s.AddFavorite(pancakes))
	assert.False(t, s.AddFavorite(pancakes))
	assert.True(t, s.AddFavorite(model.Recipe{Name: "Pancakes", Tier: model.TierGourmet}))
	assert.Len(t, s.Favorites(), 2)

	require.NoError(t, s.RemoveFavorite("Pancakes", model.TierGourmet))
	assert.ErrorIs(t, s.RemoveFavorite("Pancakes", model.TierGourmet), model.ErrListItemNotFound)
	assert.Equal(t, []model.Recipe{pancakes}, s.Favorites())
}

func TestState_Cards(t *testing.T) {
	s := newState(uuid.New(), fixedNow())
	card := model.BarcodeCard{ID: uuid.New(), Name: "Cafe", Number: "42", Image: model.DefaultCardImage}

	s.AddCard(card)
	assert.Len(t, s.Cards(), 3)

	require.NoError(t, s.RemoveCard(card.ID))
	assert.ErrorIs(t, s.RemoveCard(card.ID), model.ErrListItemNotFound)
	assert.Len(t, s.Cards(), 2)
}

func TestState_ScheduleFiltersByMode(t *testing.T) {
	s := newState(uuid.New(), fixedNow())
	pill := model.ScheduleEntry{ID: uuid.New(), ItemName: "Ibuprofen", Times: []string{"Morning"}, Days: []string{"Daily"}, Mode: model.ModePharmacy}
	cream := model.ScheduleEntry{ID: uuid.New(), ItemName: "Moisturizer", Times: []string{"Night"}, Days: []string{"Monday"}, Mode: model.ModeCosmetics}

	s.AddSchedule(pill)
	s.AddSchedule(cream)

	assert.Equal(t, []model.ScheduleEntry{pill}, s.Schedule(model.ModePharmacy))
	assert.Equal(t, []model.ScheduleEntry{cream}, s.Schedule(model.ModeCosmetics))
	assert.Empty(t, s.Schedule(model.ModeGrocery))

	s.SetMode(model.ModePharmacy)
	assert.Equal(t, 1, s.Summary().Schedule)

	require.NoError(t, s.RemoveSchedule(pill.ID))
	assert.ErrorIs(t, s.RemoveSchedule(pill.ID), model.ErrListItemNotFound)
	assert.Empty(t, s.Schedule(model.ModePharmacy))
}

func TestState_Receipts(t *testing.T) {
	s := newState(uuid.New(), fixedNow())
	r := model.ReceiptRecord{ID: uuid.New(), Text: "MILK 2.49", Image: []byte{1, 2, 3}, ContentType: "image/png"}

	s.AddReceipt(r)
	require.Len(t, s.Receipts(), 1)
	assert.Equal(t, 1, s.Summary().Receipts)

	require.NoError(t, s.RemoveReceipt(r.ID))
	assert.ErrorIs(t, s.RemoveReceipt(r.ID), model.ErrListItemNotFound)
	assert.Empty(t, s.Receipts())
}

func TestSampleInventory(t *testing.T) {
	today := model.NewDate(2026, time.March, 10)
	sessionID := uuid.New()

	entries := SampleInventory(sessionID, today, fixedNow())

	require.Len(t, entries, 7)
	perMode := map[model.Mode]int{}
	for _, e := range entries {
		perMode[e.Mode]++
		assert.Equal(t, sessionID, e.SessionID)
		assert.True(t, e.Mode.Profile().HasCategory(e.Category), "%s category %s", e.ItemName, e.Category)
		if !e.Mode.Profile().TracksCalories {
			assert.Zero(t, e.Calories, e.ItemName)
		}
	}
	assert.Equal(t, 3, perMode[model.ModeGrocery])
	for _, m := range []model.Mode{model.ModePharmacy, model.ModeCosmetics, model.ModeCleaning, model.ModePetCare} {
		assert.Equal(t, 1, perMode[m], string(m))
	}

	milk := entries[1]
	assert.Equal(t, "Organic Milk", milk.ItemName)
	assert.Equal(t, today.AddDays(3), milk.ExpiryDate)
	assert.Equal(t, today.AddDays(5), milk.UseBy)
}

func TestSampleUsed(t *testing.T) {
	today := model.NewDate(2026, time.March, 10)

	used := SampleUsed(uuid.New(), today)

	assert.Equal(t, "Organic Carrots", used.ItemName)
	assert.Equal(t, "Carrot Soup", used.UsedIn)
	assert.Equal(t, today.AddDays(-2), used.UsedOn)
	assert.Equal(t, model.ModeGrocery, used.Mode)
}

func TestContext(t *testing.T) {
	s := newState(uuid.New(), fixedNow())

	_, ok := FromContext(context.Background())
	assert.False(t, ok)

	got, ok := FromContext(NewContext(context.Background(), s))
	require.True(t, ok)
	assert.Same(t, s, got)
}
