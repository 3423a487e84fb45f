// Package session holds per-session state: the active mode and the
// auxiliary lists that live alongside the inventory.
package session

import (
	"sync"
	"time"

	"smartexpire/internal/model"

	"github.com/google/uuid"
)

// State is one user's session. All methods are safe for concurrent use.
type State struct {
	mu        sync.Mutex
	id        uuid.UUID
	mode      model.Mode
	createdAt time.Time

	shopping  []model.ShoppingListItem
	favorites []model.Recipe
	cards     []model.BarcodeCard
	schedule  []model.ScheduleEntry
	receipts  []model.ReceiptRecord
}

func newState(id uuid.UUID, createdAt time.Time) *State {
	return &State{
		id:        id,
		mode:      model.ModeGrocery,
		createdAt: createdAt,
		cards:     SampleCards(),
	}
}

// ID returns the session id.
func (s *State) ID() uuid.UUID {
	return s.id
}

// Mode returns the active mode.
func (s *State) Mode() model.Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// SetMode switches the active mode.
func (s *State) SetMode(m model.Mode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = m
}

// Summary describes the session and its list sizes.
func (s *State) Summary() model.SessionSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	schedule := 0
	for _, e := range s.schedule {
		if e.Mode == s.mode {
			schedule++
		}
	}

	return model.SessionSummary{
		ID:            s.id,
		Mode:          s.mode,
		ModeLabel:     s.mode.Profile().Label,
		ShoppingItems: len(s.shopping),
		Favorites:     len(s.favorites),
		Cards:         len(s.cards),
		Schedule:      schedule,
		Receipts:      len(s.receipts),
		CreatedAt:     s.createdAt,
	}
}

// AddShoppingItem appends name unless an identical name is already listed.
// It reports whether the list changed.
func (s *State) AddShoppingItem(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.shopping {
		if item.Name == name {
			return false
		}
	}
	s.shopping = append(s.shopping, model.ShoppingListItem{Name: name})
	return true
}

// RemoveShoppingItem deletes name from the shopping list.
func (s *State) RemoveShoppingItem(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.shopping {
		if item.Name == name {
			s.shopping = append(s.shopping[:i:i], s.shopping[i+1:]...)
			return nil
		}
	}
	return model.ErrListItemNotFound
}

// ShoppingList returns a copy of the shopping list.
func (s *State) ShoppingList() []model.ShoppingListItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.ShoppingListItem{}, s.shopping...)
}

// AddFavorite saves r unless a recipe with the same name and tier is saved.
func (s *State) AddFavorite(r model.Recipe) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, f := range s.favorites {
		if f.Same(r) {
			return false
		}
	}
	s.favorites = append(s.favorites, r)
	return true
}

// RemoveFavorite deletes the saved recipe with name and tier.
func (s *State) RemoveFavorite(name string, tier model.Tier) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, f := range s.favorites {
		if f.Name == name && f.Tier == tier {
			s.favorites = append(s.favorites[:i:i], s.favorites[i+1:]...)
			return nil
		}
	}
	return model.ErrListItemNotFound
}

// Favorites returns a copy of the saved recipes.
func (s *State) Favorites() []model.Recipe {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Recipe{}, s.favorites...)
}

// AddCard appends a barcode card.
func (s *State) AddCard(c model.BarcodeCard) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cards = append(s.cards, c)
}

// RemoveCard deletes the card with id.
func (s *State) RemoveCard(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, c := range s.cards {
		if c.ID == id {
			s.cards = append(s.cards[:i:i], s.cards[i+1:]...)
			return nil
		}
	}
	return model.ErrListItemNotFound
}

// Cards returns a copy of the barcode cards.
func (s *State) Cards() []model.BarcodeCard {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.BarcodeCard{}, s.cards...)
}

// AddSchedule appends a schedule entry.
func (s *State) AddSchedule(e model.ScheduleEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.schedule = append(s.schedule, e)
}

// RemoveSchedule deletes the schedule entry with id.
func (s *State) RemoveSchedule(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.schedule {
		if e.ID == id {
			s.schedule = append(s.schedule[:i:i], s.schedule[i+1:]...)
			return nil
		}
	}
	return model.ErrListItemNotFound
}

// Schedule returns the schedule entries recorded in mode.
func (s *State) Schedule(mode model.Mode) []model.ScheduleEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []model.ScheduleEntry{}
	for _, e := range s.schedule {
		if e.Mode == mode {
			out = append(out, e)
		}
	}
	return out
}

// AddReceipt appends a receipt record.
func (s *State) AddReceipt(r model.ReceiptRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.receipts = append(s.receipts, r)
}

// RemoveReceipt deletes the receipt with id.
func (s *State) RemoveReceipt(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, r := range s.receipts {
		if r.ID == id {
			s.receipts = append(s.receipts[:i:i], s.receipts[i+1:]...)
			return nil
		}
	}
	return model.ErrListItemNotFound
}

// Receipts returns a copy of the receipt records.
func (s *State) Receipts() []model.ReceiptRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.ReceiptRecord{}, s.receipts...)
}
