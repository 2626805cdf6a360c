// Package progression implements garden experience and levelling.
package progression

import "github.com/osse101/TrenchGarden_Go/internal/domain"

// experienceByRarity is awarded when a plant of the rarity reaches full growth
var experienceByRarity = map[domain.Rarity]int{
	domain.RarityCommon:    5,
	domain.RarityUncommon:  10,
	domain.RarityRare:      20,
	domain.RarityEpic:      35,
	domain.RarityLegendary: 50,
}

// ExperienceForRarity returns the maturity reward for a rarity, 0 if unknown
func ExperienceForRarity(r domain.Rarity) int {
	return experienceByRarity[r]
}

// Threshold is the experience needed to leave level
func Threshold(level int) int {
	if level < domain.StartingLevel {
		level = domain.StartingLevel
	}
	return level * domain.ExperiencePerLevel
}

// ApplyExperience adds amount to exp and resolves every threshold crossed.
// Each level gained subtracts its threshold and pays the level-up coin bonus.
func ApplyExperience(level, exp, coins, amount int) domain.LevelChange {
	change := domain.LevelChange{OldLevel: level}
	if amount > 0 {
		exp += amount
	}

	for exp >= Threshold(level) {
		exp -= Threshold(level)
		level++
		coins += domain.LevelUpCoinBonus
	}

	change.NewLevel = level
	change.Experience = exp
	change.Coins = coins
	return change
}

// Apply awards experience to a garden in place and reports the level change
func Apply(g *domain.Garden, amount int) domain.LevelChange {
	change := ApplyExperience(g.Level, g.Experience, g.Coins, amount)
	g.Level = change.NewLevel
	g.Experience = change.Experience
	g.Coins = change.Coins
	return change
}
