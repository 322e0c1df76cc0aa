package wardrobe

import "smartcloset/models"

func strRef(value string) *string {
	return &value
}

func priceRef(value float64) *float64 {
	return &value
}

func ratingRef(value int) *int {
	return &value
}

func InitialCloset() []models.ClothingItem {
	return []models.ClothingItem{
		{
			ID:               "1",
			ImageURL:         "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=400&q=80",
			Category:         models.CategoryTop,
			Color:            "白色",
			Season:           models.SeasonAllYear,
			Description:      "基础款纯棉白T恤",
			WearCount:        12,
			Price:            priceRef(99),
			Rating:           ratingRef(5),
			Brand:            strRef("Uniqlo"),
			CareInstructions: []string{"Machine Wash Cold", "Tumble Dry Low"},
		},
		{
			ID:               "2",
			ImageURL:         "https://images.unsplash.com/photo-1542272454315-4c01d7abdf4a?w=400&q=80",
			Category:         models.CategoryBottom,
			Color:            "蓝色",
			Season:           models.SeasonAllYear,
			Description:      "经典直筒丹宁牛仔裤",
			WearCount:        25,
			Price:            priceRef(299),
			Rating:           ratingRef(4),
			Brand:            strRef("Levi's"),
			CareInstructions: []string{"Wash Less", "Inside Out"},
		},
		{
			ID:           "3",
			ImageURL:     "https://images.unsplash.com/photo-1591047139829-d91aecb6caea?w=400&q=80",
			Category:     models.CategoryOuterwear,
			Color:        "米色",
			Season:       models.SeasonAutumn,
			Description:  "英伦风双排扣风衣",
			WearCount:    5,
			Price:        priceRef(899),
			Rating:       ratingRef(5),
			Brand:        strRef("Burberry"),
			PurchaseDate: strRef("2023-10-01"),
		},
		{
			ID:          "4",
			ImageURL:    "https://images.unsplash.com/photo-1549298916-b41d501d3772?w=400&q=80",
			Category:    models.CategoryShoes,
			Color:       "白色",
			Season:      models.SeasonAllYear,
			Description: "百搭小白鞋",
			WearCount:   30,
			Price:       priceRef(599),
			Rating:      ratingRef(4),
		},
		{
			ID:          "5",
			ImageURL:    "https://images.unsplash.com/photo-1551028919-ac66e6a39d44?w=400&q=80",
			Category:    models.CategoryOuterwear,
			Color:       "黑色",
			Season:      models.SeasonWinter,
			Description: "机车皮夹克",
			WearCount:   8,
			Price:       priceRef(1200),
			Rating:      ratingRef(5),
		},
		{
			ID:          "6",
			ImageURL:    "https://images.unsplash.com/photo-1596755094514-f87e34085b2c?w=400&q=80",
			Category:    models.CategoryTop,
			Color:       "红色",
			Season:      models.SeasonSummer,
			Description: "法式复古衬衫",
			WearCount:   3,
			Price:       priceRef(150),
			Rating:      ratingRef(3),
		},
	}
}

func InitialOutfits() []models.SavedOutfit {
	return []models.SavedOutfit{
		{
			ID:          "outfit-1",
			Name:        "周末休闲",
			Description: strRef("适合去公园散步或喝咖啡的轻松装扮。"),
			ItemIDs:     []string{"1", "2", "4"},
			WearDates:   []string{"2023-11-10", "2023-11-18"},
		},
	}
}

// NewSeededStore starts with the demo closet in display order.
func NewSeededStore() *Store {
	s := NewStore()
	s.items = InitialCloset()
	s.outfits = InitialOutfits()
	return s
}
