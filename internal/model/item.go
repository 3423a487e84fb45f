package model

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// DefaultUsedIn is recorded when a used entry has no usage description.
const DefaultUsedIn = "Not specified"

// UseByGraceDays is added to the expiry date when no use-by date is given.
const UseByGraceDays = 2

// InventoryEntry is one tracked item in a session's inventory.
type InventoryEntry struct {
	ID                  uuid.UUID `json:"id" db:"id"`
	SessionID           uuid.UUID `json:"-" db:"session_id"`
	ItemName            string    `json:"itemName" db:"item_name"`
	Category            string    `json:"category" db:"category"`
	Quantity            int       `json:"quantity" db:"quantity"`
	PurchaseDate        Date      `json:"purchaseDate" db:"purchase_date"`
	ExpiryDate          Date      `json:"expiryDate" db:"expiry_date"`
	Opened              bool      `json:"opened" db:"opened"`
	Calories            int       `json:"calories" db:"calories"`
	StorageInstructions string    `json:"storageInstructions" db:"storage_instructions"`
	Notes               string    `json:"notes" db:"notes"`
	Mode                Mode      `json:"mode" db:"mode"`
	BestBefore          Date      `json:"bestBefore" db:"best_before"`
	UseBy               Date      `json:"useBy" db:"use_by"`
	BestStored          string    `json:"bestStored" db:"best_stored"`
	CreatedAt           time.Time `json:"createdAt" db:"created_at"`
}

// UsedEntry records an inventory entry that was consumed.
type UsedEntry struct {
	ID        uuid.UUID `json:"id" db:"id"`
	SessionID uuid.UUID `json:"-" db:"session_id"`
	ItemName  string    `json:"itemName" db:"item_name"`
	Category  string    `json:"category" db:"category"`
	Quantity  int       `json:"quantity" db:"quantity"`
	UsedOn    Date      `json:"usedOn" db:"used_on"`
	UsedIn    string    `json:"usedIn" db:"used_in"`
	Notes     string    `json:"notes" db:"notes"`
	Mode      Mode      `json:"mode" db:"mode"`
}

// Usage describes how an entry was consumed. A nil Notes keeps the entry's
// own notes.
type Usage struct {
	UsedOn Date
	UsedIn string
	Notes  *string
}

// NewUsedEntry builds the used record for e.
func NewUsedEntry(e InventoryEntry, u Usage) UsedEntry {
	usedIn := u.UsedIn
	if usedIn == "" {
		usedIn = DefaultUsedIn
	}
	notes := e.Notes
	if u.Notes != nil {
		notes = *u.Notes
	}
	return UsedEntry{
		ID:        uuid.New(),
		SessionID: e.SessionID,
		ItemName:  e.ItemName,
		Category:  e.Category,
		Quantity:  e.Quantity,
		UsedOn:    u.UsedOn,
		UsedIn:    usedIn,
		Notes:     notes,
		Mode:      e.Mode,
	}
}

// Bucket is the urgency class of an entry relative to today.
type Bucket string

const (
	BucketUrgent   Bucket = "Urgent"
	BucketModerate Bucket = "Moderate"
	BucketFine     Bucket = "Fine"
)

// ClassifiedEntry is an inventory entry annotated for display.
type ClassifiedEntry struct {
	InventoryEntry
	DaysUntilExpiry int    `json:"daysUntilExpiry"`
	Bucket          Bucket `json:"bucket"`
	Status          string `json:"status"`
}

// ItemDetail is the info view of a single entry.
type ItemDetail struct {
	ClassifiedEntry
	Disposal Disposal `json:"disposal"`
}

// Stats are the home page counters for the active mode.
type Stats struct {
	Mode           Mode `json:"mode"`
	TotalItems     int  `json:"totalItems"`
	ExpiringSoon   int  `json:"expiringSoon"`
	ModerateExpiry int  `json:"moderateExpiry"`
	Categories     int  `json:"categories"`
}

// AddItemRequest is the payload for adding an inventory entry.
type AddItemRequest struct {
	ItemName            string `json:"itemName" validate:"required"`
	Category            string `json:"category"`
	Quantity            int    `json:"quantity" validate:"required,min=1"`
	PurchaseDate        string `json:"purchaseDate" validate:"required,datetime=2006-01-02"`
	ExpiryDate          string `json:"expiryDate" validate:"required,datetime=2006-01-02"`
	Opened              bool   `json:"opened"`
	Calories            int    `json:"calories" validate:"min=0"`
	StorageInstructions string `json:"storageInstructions"`
	Notes               string `json:"notes"`
	BestBefore          string `json:"bestBefore" validate:"omitempty,datetime=2006-01-02"`
	UseBy               string `json:"useBy" validate:"omitempty,datetime=2006-01-02"`
	BestStored          string `json:"bestStored"`
}

// MarkUsedRequest is the payload for marking an entry as used.
type MarkUsedRequest struct {
	UsedIn            string  `json:"usedIn"`
	Notes             *string `json:"notes,omitempty"`
	AddToShoppingList bool    `json:"addToShoppingList"`
}
