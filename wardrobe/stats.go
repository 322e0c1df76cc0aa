package wardrobe

import "smartcloset/models"

type CategoryCount struct {
	Category models.Category `json:"category"`
	Count    int             `json:"count"`
}

type ProfileStats struct {
	TotalItems  int             `json:"totalItems"`
	Categories  []CategoryCount `json:"categories"`
	TotalValue  float64         `json:"totalValue"`
	TotalWears  int             `json:"totalWears"`
	OutfitCount int             `json:"outfitCount"`
}

// Stats summarizes the closet. Categories without items are left out of the
// breakdown and the order follows models.Categories.
func (s *Store) Stats() ProfileStats {
	items := s.Items()
	stats := ProfileStats{
		TotalItems:  len(items),
		Categories:  []CategoryCount{},
		TotalValue:  TotalValue(items),
		OutfitCount: len(s.Outfits()),
	}
	counts := make(map[models.Category]int)
	for _, item := range items {
		counts[item.Category]++
		stats.TotalWears += item.WearCount
	}
	for _, category := range models.Categories {
		if counts[category] > 0 {
			stats.Categories = append(stats.Categories, CategoryCount{Category: category, Count: counts[category]})
		}
	}
	return stats
}
