package catalog

import "smartexpire/internal/model"

// Builtin returns the catalog compiled into the binary.
func Builtin() *Catalog {
	return &Catalog{
		Recipes: map[string][]model.Recipe{
			"Eggs": {
				{
					Name:         "Scrambled Eggs",
					Tier:         model.TierPanic,
					Description:  "Quick and easy with pantry staples",
					Ingredients:  "Eggs, butter, salt, pepper",
					PrepTime:     "5 mins",
					Instructions: "1. Beat eggs. 2. Melt butter in pan. 3. Cook eggs, stirring constantly. 4. Season to taste.",
					Image:        "https://images.unsplash.com/photo-1559847844-5315695dadae",
				},
				{
					Name:         "Boiled Eggs",
					Tier:         model.TierSimple,
					Description:  "Perfect for snacks or salads",
					Ingredients:  "Eggs, water",
					PrepTime:     "15 mins",
					Instructions: "1. Boil water. 2. Add eggs. 3. Cook for desired doneness (6 mins soft, 12 mins hard).",
					Image:        "https://images.unsplash.com/photo-1518562180175-34a163b1c9c9",
				},
				{
					Name:         "Vegetable Frittata",
					Tier:         model.TierGourmet,
					Description:  "Hearty meal with fresh veggies",
					Ingredients:  "Eggs, mixed vegetables, cheese, fresh herbs",
					PrepTime:     "30 mins",
					Instructions: "1. Sauté vegetables. 2. Beat eggs with seasoning. 3. Combine in oven-safe pan. 4. Bake at 180°C for 20 mins.",
					Image:        "https://images.unsplash.com/photo-1547592180-85f173990554",
				},
			},
			"Organic Milk": {
				{
					Name:         "Milk Smoothie",
					Tier:         model.TierPanic,
					Description:  "Quick drink with pantry items",
					Ingredients:  "Milk, sugar, vanilla",
					PrepTime:     "5 mins",
					Instructions: "1. Blend all ingredients until smooth. 2. Serve chilled.",
					Image:        "https://images.unsplash.com/photo-1505576399279-565b52d4ac71",
				},
				{
					Name:         "Pancakes",
					Tier:         model.TierSimple,
					Description:  "Fluffy breakfast treat",
					Ingredients:  "Milk, flour, eggs, baking powder",
					PrepTime:     "20 mins",
					Instructions: "1. Mix dry ingredients. 2. Add wet ingredients. 3. Cook on griddle.",
					Image:        "https://images.unsplash.com/photo-1550583724-b2692b85b150",
				},
				{
					Name:         "Creamy Mushroom Pasta",
					Tier:         model.TierGourmet,
					Description:  "Rich dinner option",
					Ingredients:  "Milk, pasta, mushrooms, cream, parmesan",
					PrepTime:     "30 mins",
					Instructions: "1. Sauté mushrooms. 2. Make cream sauce with milk. 3. Toss with pasta and cheese.",
					Image:        "https://images.unsplash.com/photo-1555949258-eb67b1ef0ceb",
				},
			},
			DefaultKey: {
				{
					Name:         "Quick Stir-fry",
					Tier:         model.TierPanic,
					Description:  "Fast dish with basic ingredients",
					Ingredients:  "Item, oil, salt, pepper",
					PrepTime:     "15 mins",
					Instructions: "1. Slice ingredients. 2. Heat oil. 3. Stir-fry quickly. 4. Season.",
					Image:        "https://images.unsplash.com/photo-1546069901-ba9599a7e63c",
				},
				{
					Name:         "Roasted Dish",
					Tier:         model.TierSimple,
					Description:  "Easy prep for most items",
					Ingredients:  "Item, oil, salt, pepper",
					PrepTime:     "30 mins",
					Instructions: "1. Toss with oil and seasonings. 2. Roast at 200°C until done.",
					Image:        "https://images.unsplash.com/photo-1546069901-4567c3e4e9a1",
				},
				{
					Name:         "Gourmet Casserole",
					Tier:         model.TierGourmet,
					Description:  "Combine with premium ingredients",
					Ingredients:  "Item, rice/pasta, sauce, cheese, herbs",
					PrepTime:     "45 mins",
					Instructions: "1. Layer ingredients. 2. Bake at 180°C for 30-40 mins.",
					Image:        "https://images.unsplash.com/photo-1551183053-bf91a1d81141",
				},
			},
		},
		Disposal: map[string]model.Disposal{
			"Dairy": {
				Instructions: "Compost or dispose in food waste bin.",
				Reason:       "Reduces landfill methane.",
			},
			"Meat": {
				Instructions: "Wrap securely and dispose in food waste bin.",
				Reason:       "Prevents odor and pests.",
			},
			"Vegetable": {
				Instructions: "Compost or dispose in food waste bin.",
				Reason:       "Breaks down easily.",
			},
			"Fruit": {
				Instructions: "Compost or dispose in food waste bin.",
				Reason:       "Breaks down easily.",
			},
			"Bakery": {
				Instructions: "Compost or dispose in food waste bin.",
				Reason:       "Breaks down easily.",
			},
		},
		DefaultDisposal: model.Disposal{
			Instructions: "Dispose in food waste bin or trash.",
			Reason:       "Reduces environmental impact.",
		},
	}
}
