package lexicon

// NutrientProfile is the canonical per-food reference record. Calories and
// macro fields are per 100g; StandardServingGrams converts one standard unit
// of the food into grams.
type NutrientProfile struct {
	Name                 string
	Calories             float64
	Protein              float64
	Carbs                float64
	Fats                 float64
	Fiber                float64
	Sugar                float64
	Sodium               float64 // mg
	StandardServingGrams float64
	StandardUnit         string
}

// FoodRecord binds one nutrient profile to its lookup keys. Keys[0] is the
// canonical key; the rest are aliases. Records are scanned in declaration
// order, so "first match wins" is deterministic.
type FoodRecord struct {
	Keys    []string
	Profile NutrientProfile
}

func foodRecords() []FoodRecord {
	return []FoodRecord{
		// Indian
		{Keys: []string{"roti", "chapati"}, Profile: NutrientProfile{Name: "Roti", Calories: 297, Protein: 7.85, Carbs: 46.36, Fats: 7.45, Fiber: 4.9, Sugar: 0, Sodium: 298, StandardServingGrams: 60, StandardUnit: "piece"}},
		{Keys: []string{"naan"}, Profile: NutrientProfile{Name: "Naan", Calories: 310, Protein: 8.0, Carbs: 48.0, Fats: 10.0, Fiber: 2.0, Sugar: 2.0, Sodium: 400, StandardServingGrams: 90, StandardUnit: "piece"}},
		{Keys: []string{"dal fry", "dal tadka"}, Profile: NutrientProfile{Name: "Dal Fry", Calories: 125, Protein: 6.8, Carbs: 20.3, Fats: 2.4, Fiber: 4.8, Sugar: 1.2, Sodium: 400, StandardServingGrams: 200, StandardUnit: "bowl"}},
		{Keys: []string{"dal"}, Profile: NutrientProfile{Name: "Dal", Calories: 105, Protein: 6.8, Carbs: 18.3, Fats: 1.4, Fiber: 4.8, Sugar: 1.2, Sodium: 300, StandardServingGrams: 200, StandardUnit: "bowl"}},
		{Keys: []string{"biriyani", "biryani"}, Profile: NutrientProfile{Name: "Biryani", Calories: 225, Protein: 12.0, Carbs: 35.0, Fats: 5.0, Fiber: 2.0, Sugar: 2.0, Sodium: 600, StandardServingGrams: 250, StandardUnit: "plate"}},
		{Keys: []string{"fried rice"}, Profile: NutrientProfile{Name: "Fried Rice", Calories: 163, Protein: 4.3, Carbs: 28.0, Fats: 3.8, Fiber: 1.0, Sugar: 0.8, Sodium: 500, StandardServingGrams: 200, StandardUnit: "plate"}},
		{Keys: []string{"rice"}, Profile: NutrientProfile{Name: "Rice", Calories: 130, Protein: 2.7, Carbs: 28.0, Fats: 0.3, Fiber: 0.4, Sugar: 0.05, Sodium: 1, StandardServingGrams: 100, StandardUnit: "cup"}},
		{Keys: []string{"paneer"}, Profile: NutrientProfile{Name: "Paneer", Calories: 295, Protein: 18.3, Carbs: 3.4, Fats: 20.8, Fiber: 0, Sugar: 3.4, Sodium: 15, StandardServingGrams: 100, StandardUnit: "grams"}},
		{Keys: []string{"paratha"}, Profile: NutrientProfile{Name: "Paratha", Calories: 326, Protein: 6.36, Carbs: 45.36, Fats: 13.6, Fiber: 2.7, Sugar: 0, Sodium: 500, StandardServingGrams: 100, StandardUnit: "piece"}},
		{Keys: []string{"dosa"}, Profile: NutrientProfile{Name: "Dosa", Calories: 133, Protein: 2.7, Carbs: 23.4, Fats: 3.2, Fiber: 1.5, Sugar: 0.5, Sodium: 300, StandardServingGrams: 50, StandardUnit: "piece"}},
		{Keys: []string{"idli"}, Profile: NutrientProfile{Name: "Idli", Calories: 39, Protein: 2.2, Carbs: 7.5, Fats: 0.2, Fiber: 1.0, Sugar: 0.3, Sodium: 220, StandardServingGrams: 38, StandardUnit: "piece"}},
		{Keys: []string{"sambar"}, Profile: NutrientProfile{Name: "Sambar", Calories: 85, Protein: 3.5, Carbs: 15.0, Fats: 1.5, Fiber: 3.0, Sugar: 4.0, Sodium: 450, StandardServingGrams: 150, StandardUnit: "bowl"}},
		{Keys: []string{"curry"}, Profile: NutrientProfile{Name: "Curry", Calories: 120, Protein: 4.0, Carbs: 12.0, Fats: 6.0, Fiber: 2.0, Sugar: 5.0, Sodium: 500, StandardServingGrams: 200, StandardUnit: "bowl"}},
		{Keys: []string{"aloo"}, Profile: NutrientProfile{Name: "Aloo Curry", Calories: 150, Protein: 2.5, Carbs: 20.0, Fats: 6.5, Fiber: 2.5, Sugar: 3.0, Sodium: 400, StandardServingGrams: 150, StandardUnit: "bowl"}},
		{Keys: []string{"gobi"}, Profile: NutrientProfile{Name: "Gobi Curry", Calories: 100, Protein: 3.0, Carbs: 12.0, Fats: 4.0, Fiber: 3.5, Sugar: 4.0, Sodium: 450, StandardServingGrams: 150, StandardUnit: "bowl"}},
		{Keys: []string{"chana", "chole"}, Profile: NutrientProfile{Name: "Chana Masala", Calories: 180, Protein: 8.5, Carbs: 28.0, Fats: 4.5, Fiber: 7.0, Sugar: 5.0, Sodium: 600, StandardServingGrams: 200, StandardUnit: "bowl"}},
		{Keys: []string{"rajma"}, Profile: NutrientProfile{Name: "Rajma", Calories: 175, Protein: 9.0, Carbs: 26.0, Fats: 4.0, Fiber: 8.0, Sugar: 4.0, Sodium: 500, StandardServingGrams: 200, StandardUnit: "bowl"}},

		// Asian
		{Keys: []string{"sushi"}, Profile: NutrientProfile{Name: "Sushi", Calories: 150, Protein: 6.0, Carbs: 28.0, Fats: 2.0, Fiber: 1.0, Sugar: 3.0, Sodium: 600, StandardServingGrams: 100, StandardUnit: "piece"}},
		{Keys: []string{"ramen"}, Profile: NutrientProfile{Name: "Ramen", Calories: 200, Protein: 8.0, Carbs: 35.0, Fats: 4.0, Fiber: 2.0, Sugar: 2.0, Sodium: 1200, StandardServingGrams: 250, StandardUnit: "bowl"}},
		{Keys: []string{"noodles"}, Profile: NutrientProfile{Name: "Noodles", Calories: 138, Protein: 4.5, Carbs: 25.0, Fats: 2.1, Fiber: 1.8, Sugar: 0.5, Sodium: 400, StandardServingGrams: 200, StandardUnit: "bowl"}},
		{Keys: []string{"pho"}, Profile: NutrientProfile{Name: "Pho", Calories: 350, Protein: 15.0, Carbs: 45.0, Fats: 10.0, Fiber: 2.0, Sugar: 3.0, Sodium: 1000, StandardServingGrams: 350, StandardUnit: "bowl"}},
		{Keys: []string{"pad thai"}, Profile: NutrientProfile{Name: "Pad Thai", Calories: 357, Protein: 14.0, Carbs: 52.0, Fats: 11.0, Fiber: 2.5, Sugar: 8.0, Sodium: 800, StandardServingGrams: 200, StandardUnit: "plate"}},
		{Keys: []string{"dumpling"}, Profile: NutrientProfile{Name: "Dumpling", Calories: 42, Protein: 2.0, Carbs: 6.0, Fats: 1.0, Fiber: 0.3, Sugar: 0.5, Sodium: 200, StandardServingGrams: 25, StandardUnit: "piece"}},

		// Western
		{Keys: []string{"pizza"}, Profile: NutrientProfile{Name: "Pizza", Calories: 266, Protein: 11.0, Carbs: 33.0, Fats: 10.0, Fiber: 2.3, Sugar: 3.6, Sodium: 551, StandardServingGrams: 100, StandardUnit: "slice"}},
		{Keys: []string{"pasta"}, Profile: NutrientProfile{Name: "Pasta", Calories: 131, Protein: 5.0, Carbs: 25.0, Fats: 1.1, Fiber: 1.8, Sugar: 0.6, Sodium: 6, StandardServingGrams: 100, StandardUnit: "grams"}},
		{Keys: []string{"burger"}, Profile: NutrientProfile{Name: "Burger", Calories: 354, Protein: 16.0, Carbs: 33.0, Fats: 16.0, Fiber: 2.0, Sugar: 5.0, Sodium: 497, StandardServingGrams: 150, StandardUnit: "piece"}},
		{Keys: []string{"sandwich"}, Profile: NutrientProfile{Name: "Sandwich", Calories: 250, Protein: 10.0, Carbs: 35.0, Fats: 8.0, Fiber: 3.0, Sugar: 5.0, Sodium: 600, StandardServingGrams: 150, StandardUnit: "piece"}},
		{Keys: []string{"salad"}, Profile: NutrientProfile{Name: "Salad", Calories: 20, Protein: 1.0, Carbs: 4.0, Fats: 0.2, Fiber: 1.5, Sugar: 2.0, Sodium: 10, StandardServingGrams: 100, StandardUnit: "grams"}},
		{Keys: []string{"chicken"}, Profile: NutrientProfile{Name: "Chicken", Calories: 165, Protein: 31.0, Carbs: 0.0, Fats: 3.6, Fiber: 0, Sugar: 0, Sodium: 74, StandardServingGrams: 100, StandardUnit: "grams"}},
		{Keys: []string{"bread"}, Profile: NutrientProfile{Name: "Bread", Calories: 265, Protein: 9.0, Carbs: 49.0, Fats: 3.2, Fiber: 2.7, Sugar: 5.7, Sodium: 491, StandardServingGrams: 100, StandardUnit: "grams"}},
	}
}

// foodKeywords returns the combined extraction lexicon, regional lists first
// to last: Indian, Asian, Western. Scanned in order during keyword fallback
// and name validation.
func foodKeywords() []string {
	return []string{
		// Indian
		"roti", "chapati", "naan", "dal", "dal fry", "dal tadka", "rice",
		"biriyani", "biryani", "curry", "sabzi", "sabji", "paratha", "dosa",
		"idli", "sambar", "rasam", "paneer", "palak", "aloo", "gobi",
		"bhindi", "rajma", "chana", "chole",
		// Asian
		"sushi", "ramen", "noodles", "fried rice", "dim sum", "dumpling",
		"pho", "pad thai", "teriyaki", "tempura",
		// Western
		"pizza", "pasta", "burger", "sandwich", "salad", "soup", "bread",
		"chicken", "beef", "pork", "fish", "steak",
	}
}
