package models

// ClothingItem is a single garment in the wardrobe. Optional attributes are
// pointers so an absent value is distinguishable from a zero one.
type ClothingItem struct {
	ID               string   `json:"id"`
	ImageURL         string   `json:"imageUrl"`
	Category         Category `json:"category"`
	Color            string   `json:"color"`
	Season           Season   `json:"season"`
	Description      string   `json:"description"`
	Brand            *string  `json:"brand,omitempty"`
	Material         *string  `json:"material,omitempty"`
	PurchaseDate     *string  `json:"purchaseDate,omitempty"` // YYYY-MM-DD
	Price            *float64 `json:"price,omitempty"`
	ShopLink         *string  `json:"shopLink,omitempty"`
	WearCount        int      `json:"wearCount"`
	Rating           *int     `json:"rating,omitempty"`
	CareInstructions []string `json:"careInstructions,omitempty"`
	IsArchived       bool     `json:"isArchived,omitempty"`
}

// PartialClothingItem is the attribute guess produced by image analysis.
type PartialClothingItem struct {
	Category    Category `json:"category"`
	Color       string   `json:"color"`
	Season      Season   `json:"season"`
	Description string   `json:"description"`
	Brand       *string  `json:"brand,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Material    *string  `json:"material,omitempty"`
}

type SavedOutfit struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description *string  `json:"description,omitempty"`
	Occasion    *string  `json:"occasion,omitempty"`
	ItemIDs     []string `json:"itemIds"`
	WearDates   []string `json:"wearDates,omitempty"`
}

// RecommendationResult carries unvalidated item references; callers resolve
// them against the wardrobe and drop unknown ids.
type RecommendationResult struct {
	ItemIDs []string `json:"itemIds"`
	Text    string   `json:"text"`
}
