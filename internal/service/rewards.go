package service

import "github.com/avc/ecocart-rewards/internal/domain"

// fallbackFeedbackCoins — награда за обратную связь неизвестной категории
const fallbackFeedbackCoins = 5

// DefaultRewardCatalog возвращает каталог наград, доступных за EcoCoins
func DefaultRewardCatalog() []domain.CoinReward {
	return []domain.CoinReward{
		{
			ID:          "reward-plant-tree",
			Name:        "Plant a Tree",
			Description: "We plant a tree on your behalf through a reforestation partner",
			Cost:        100,
		},
		{
			ID:          "reward-discount-5",
			Name:        "5% Store Discount",
			Description: "One-time 5% discount on your next sustainable purchase",
			Cost:        75,
		},
		{
			ID:          "reward-ocean-cleanup",
			Name:        "Ocean Cleanup Donation",
			Description: "Donate to removing 1 kg of plastic from the ocean",
			Cost:        150,
		},
		{
			ID:          "reward-eco-badge",
			Name:        "Exclusive Eco Badge",
			Description: "Limited profile badge for dedicated eco-shoppers",
			Cost:        50,
		},
	}
}

// DefaultFeedbackRewards возвращает таблицу наград за обратную связь по категориям
func DefaultFeedbackRewards() map[string]int {
	return map[string]int{
		"bug_report":         15,
		"feature_suggestion": 10,
		"usability":          10,
		"content_feedback":   8,
		"general":            5,
	}
}
