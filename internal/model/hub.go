package model

import (
	"time"

	"github.com/google/uuid"
)

// DefaultCardImage is used for cards added without an image.
const DefaultCardImage = "https://via.placeholder.com/300x150.png?text=New+Card"

// ReceiptPreviewLength is the number of characters shown in receipt listings.
const ReceiptPreviewLength = 100

// ShoppingListItem is a name on the shopping list.
type ShoppingListItem struct {
	Name string `json:"name"`
}

// BarcodeCard is a stored loyalty card.
type BarcodeCard struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Number string    `json:"number"`
	Image  string    `json:"image"`
}

// ScheduleEntry is a usage reminder for a non-grocery item.
type ScheduleEntry struct {
	ID           uuid.UUID `json:"id"`
	ItemName     string    `json:"item"`
	Instructions string    `json:"instructions"`
	Times        []string  `json:"times"`
	Days         []string  `json:"days"`
	Mode         Mode      `json:"mode"`
}

// ReceiptRecord is an uploaded receipt with its extracted text.
type ReceiptRecord struct {
	ID          uuid.UUID `json:"id"`
	Date        Date      `json:"date"`
	Text        string    `json:"text"`
	Image       []byte    `json:"-"`
	ContentType string    `json:"contentType"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ReceiptSummary is the listing view of a receipt.
type ReceiptSummary struct {
	ID          uuid.UUID `json:"id"`
	Date        Date      `json:"date"`
	Preview     string    `json:"preview"`
	ContentType string    `json:"contentType"`
	Size        int       `json:"size"`
}

// Summary returns the listing view of r.
func (r ReceiptRecord) Summary() ReceiptSummary {
	preview := r.Text
	if runes := []rune(preview); len(runes) > ReceiptPreviewLength {
		preview = string(runes[:ReceiptPreviewLength]) + "..."
	}
	return ReceiptSummary{
		ID:          r.ID,
		Date:        r.Date,
		Preview:     preview,
		ContentType: r.ContentType,
		Size:        len(r.Image),
	}
}

// ShoppingItemRequest adds a name to the shopping list.
type ShoppingItemRequest struct {
	Name string `json:"name" validate:"required"`
}

// CardRequest adds a barcode card.
type CardRequest struct {
	Name   string `json:"name" validate:"required"`
	Number string `json:"number" validate:"required"`
	Image  string `json:"image" validate:"omitempty,url"`
}

// ScheduleRequest adds a schedule entry.
type ScheduleRequest struct {
	ItemName     string   `json:"item" validate:"required"`
	Instructions string   `json:"instructions"`
	Times        []string `json:"times" validate:"required,min=1,dive,oneof=Morning Afternoon Evening Night"`
	Days         []string `json:"days" validate:"required,min=1,dive,oneof=Daily Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
}

// SetModeRequest switches the active mode.
type SetModeRequest struct {
	Mode string `json:"mode" validate:"required"`
}

// SessionSummary describes a session and its contents.
type SessionSummary struct {
	ID            uuid.UUID `json:"id"`
	Mode          Mode      `json:"mode"`
	ModeLabel     string    `json:"modeLabel"`
	ShoppingItems int       `json:"shoppingItems"`
	Favorites     int       `json:"favorites"`
	Cards         int       `json:"cards"`
	Schedule      int       `json:"schedule"`
	Receipts      int       `json:"receipts"`
	CreatedAt     time.Time `json:"createdAt"`
}
