package wardrobe

import (
	"math"

	"smartcloset/models"
)

func round1(value float64) float64 {
	return math.Round(value*10) / 10
}

// CostPerWear is price over wears rounded to one decimal, or the full price
// for an item never worn. Items without a price cost nothing.
func CostPerWear(item models.ClothingItem) float64 {
	if item.Price == nil {
		return 0
	}
	if item.WearCount > 0 {
		return round1(*item.Price / float64(item.WearCount))
	}
	return *item.Price
}

// ResolveItems maps ids onto closet items in order. Unknown ids are dropped
// and duplicates resolve twice.
func ResolveItems(ids []string, closet []models.ClothingItem) []models.ClothingItem {
	byID := make(map[string]models.ClothingItem, len(closet))
	for _, item := range closet {
		byID[item.ID] = item
	}
	resolved := []models.ClothingItem{}
	for _, id := range ids {
		if item, ok := byID[id]; ok {
			resolved = append(resolved, item)
		}
	}
	return resolved
}

func TotalValue(items []models.ClothingItem) float64 {
	var total float64
	for _, item := range items {
		if item.Price != nil {
			total += *item.Price
		}
	}
	return total
}

type OutfitDetail struct {
	models.SavedOutfit
	Items      []models.ClothingItem `json:"items"`
	TotalValue float64               `json:"totalValue"`
	WearCount  int                   `json:"wearCount"`
}

func DescribeOutfit(outfit models.SavedOutfit, closet []models.ClothingItem) OutfitDetail {
	items := ResolveItems(outfit.ItemIDs, closet)
	return OutfitDetail{
		SavedOutfit: outfit,
		Items:       items,
		TotalValue:  TotalValue(items),
		WearCount:   len(outfit.WearDates),
	}
}
