package session

import (
	"time"

	"smartexpire/internal/model"

	"github.com/google/uuid"
)

// SampleCards returns the loyalty cards every new session starts with.
func SampleCards() []model.BarcodeCard {
	return []model.BarcodeCard{
		{
			ID:     uuid.New(),
			Name:   "Organic Grocers Loyalty",
			Number: "123456789",
			Image:  "https://via.placeholder.com/300x150.png?text=Organic+Grocers",
		},
		{
			ID:     uuid.New(),
			Name:   "Pharmacy Rewards",
			Number: "987654321",
			Image:  "https://via.placeholder.com/300x150.png?text=Pharmacy+Rewards",
		},
	}
}

type sampleItem struct {
	name, category     string
	mode               model.Mode
	quantity           int
	purchased, expires int
	opened             bool
	calories           int
	storage, notes     string
	bestBefore, useBy  int
	bestStored         string
}

var sampleItems = []sampleItem{
	{
		name: "Eggs", category: "Dairy", mode: model.ModeGrocery, quantity: 12,
		purchased: -5, expires: 10, calories: 155,
		storage: "Refrigerate at 4°C", notes: "Best used within 3 weeks",
		bestBefore: 10, useBy: 12, bestStored: "In original carton in refrigerator",
	},
	{
		name: "Organic Milk", category: "Dairy", mode: model.ModeGrocery, quantity: 1,
		purchased: -2, expires: 3, calories: 103,
		storage: "Refrigerate at 4°C", notes: "Consume within 7 days of opening",
		bestBefore: 3, useBy: 5, bestStored: "In refrigerator door",
	},
	{
		name: "Free-Range Chicken Breast", category: "Meat", mode: model.ModeGrocery, quantity: 2,
		purchased: -1, expires: 2, calories: 165,
		storage: "Refrigerate at 2°C", notes: "Use or freeze by expiry",
		bestBefore: 2, useBy: 3, bestStored: "In coldest part of refrigerator",
	},
	{
		name: "Ibuprofen", category: "Pain Relief", mode: model.ModePharmacy, quantity: 30,
		purchased: -30, expires: 180, opened: true,
		storage: "Store at room temperature", notes: "Take 1-2 tablets every 4-6 hours",
		bestBefore: 180, useBy: 200, bestStored: "In a cool, dry place away from sunlight",
	},
	{
		name: "Moisturizer", category: "Skincare", mode: model.ModeCosmetics, quantity: 1,
		purchased: -60, expires: 300, opened: true,
		storage: "Store in cool, dry place", notes: "Use within 6 months of opening",
		bestBefore: 300, useBy: 330, bestStored: "Away from direct sunlight",
	},
	{
		name: "Dish Soap", category: "Kitchen", mode: model.ModeCleaning, quantity: 1,
		purchased: -10, expires: 720, opened: true,
		storage: "Store at room temperature", notes: "Safe for all dishes",
		bestBefore: 720, useBy: 750, bestStored: "Under sink",
	},
	{
		name: "Dog Food", category: "Pet Food", mode: model.ModePetCare, quantity: 1,
		purchased: -5, expires: 180, opened: true, calories: 350,
		storage: "Store in cool, dry place", notes: "Feed 2 cups daily",
		bestBefore: 180, useBy: 200, bestStored: "In airtight container",
	},
}

// SampleInventory returns demo entries for every mode, dated relative to today.
func SampleInventory(sessionID uuid.UUID, today model.Date, now time.Time) []model.InventoryEntry {
	out := make([]model.InventoryEntry, 0, len(sampleItems))
	for _, s := range sampleItems {
		calories := s.calories
		if !s.mode.Profile().TracksCalories {
			calories = 0
		}
		out = append(out, model.InventoryEntry{
			ID:                  uuid.New(),
			SessionID:           sessionID,
			ItemName:            s.name,
			Category:            s.category,
			Quantity:            s.quantity,
			PurchaseDate:        today.AddDays(s.purchased),
			ExpiryDate:          today.AddDays(s.expires),
			Opened:              s.opened,
			Calories:            calories,
			StorageInstructions: s.storage,
			Notes:               s.notes,
			Mode:                s.mode,
			BestBefore:          today.AddDays(s.bestBefore),
			UseBy:               today.AddDays(s.useBy),
			BestStored:          s.bestStored,
			CreatedAt:           now,
		})
	}
	return out
}

// SampleUsed returns the demo used entry.
func SampleUsed(sessionID uuid.UUID, today model.Date) model.UsedEntry {
	return model.UsedEntry{
		ID:        uuid.New(),
		SessionID: sessionID,
		ItemName:  "Organic Carrots",
		Category:  "Vegetable",
		Quantity:  5,
		UsedOn:    today.AddDays(-2),
		UsedIn:    "Carrot Soup",
		Notes:     "Used all",
		Mode:      model.ModeGrocery,
	}
}
