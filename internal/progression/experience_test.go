package progression

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/TrenchGarden_Go/internal/domain"
)

func TestExperienceForRarity(t *testing.T) {
	assert.Equal(t, 5, ExperienceForRarity(domain.RarityCommon))
	assert.Equal(t, 10, ExperienceForRarity(domain.RarityUncommon))
	assert.Equal(t, 20, ExperienceForRarity(domain.RarityRare))
	assert.Equal(t, 35, ExperienceForRarity(domain.RarityEpic))
	assert.Equal(t, 50, ExperienceForRarity(domain.RarityLegendary))
	assert.Equal(t, 0, ExperienceForRarity("mythic"))
}

func TestApplyExperience(t *testing.T) {
	tests := []struct {
		name                         string
		level, exp, coins, amount    int
		wantLevel, wantExp, wantCoin int
	}{
		{"below threshold", 1, 0, 100, 50, 1, 50, 100},
		{"exactly threshold", 1, 0, 100, 100, 2, 0, 150},
		{"carry remainder", 1, 90, 100, 20, 2, 10, 150},
		// level 1 needs 100, level 2 needs 200: 350 crosses both
		{"multiple levels", 1, 0, 0, 350, 3, 50, 100},
		{"non-positive amount", 3, 10, 0, 0, 3, 10, 0},
		{"negative amount ignored", 3, 10, 0, -40, 3, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyExperience(tt.level, tt.exp, tt.coins, tt.amount)

			assert.Equal(t, tt.level, got.OldLevel)
			assert.Equal(t, tt.wantLevel, got.NewLevel)
			assert.Equal(t, tt.wantExp, got.Experience)
			assert.Equal(t, tt.wantCoin, got.Coins)
			assert.Equal(t, tt.wantLevel > tt.level, got.LeveledUp())
			assert.Less(t, got.Experience, Threshold(got.NewLevel))
		})
	}
}

func TestApply(t *testing.T) {
	g := &domain.Garden{Level: 2, Experience: 150, Coins: 10}

	change := Apply(g, 60)

	assert.True(t, change.LeveledUp())
	assert.Equal(t, 3, g.Level)
	assert.Equal(t, 10, g.Experience)
	assert.Equal(t, 60, g.Coins)
}

func TestThreshold(t *testing.T) {
	assert.Equal(t, 100, Threshold(1))
	assert.Equal(t, 500, Threshold(5))
	assert.Equal(t, 100, Threshold(0))
}
