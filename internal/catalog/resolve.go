package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/cases"

	"github.com/osse101/TrenchGarden_Go/internal/domain"
)

// normalize folds case and trims input so "Venus", " VENUS " and "venus" match
func normalize(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// slug turns a display name into an identifier ("Lucky Bamboo" -> "lucky-bamboo")
func slug(s string) string {
	return strings.Join(strings.Fields(normalize(s)), "-")
}

// Resolve finds a plant definition by type key or display name.
// On a miss it returns ErrUnknownPlantType with the closest known type as a suggestion.
func (c *Catalog) Resolve(input string) (domain.PlantDefinition, error) {
	key := normalize(input)
	if def, ok := c.plants[domain.PlantType(key)]; ok {
		return def, nil
	}

	candidates := make([]string, 0, len(c.plantOrder))
	for _, t := range c.plantOrder {
		def := c.plants[t]
		if normalize(def.Name) == key {
			return def, nil
		}
		candidates = append(candidates, string(t))
	}

	return domain.PlantDefinition{}, missError(domain.ErrUnknownPlantType, input, key, candidates)
}

// ResolveShopItem finds a shop item by ID or display name.
// On a miss it returns ErrShopItemNotFound with the closest ID as a suggestion.
func (c *Catalog) ResolveShopItem(input string) (domain.ShopItem, error) {
	key := slug(input)
	if item, ok := c.shop[key]; ok {
		return item, nil
	}

	candidates := make([]string, 0, len(c.shopOrder))
	for _, id := range c.shopOrder {
		if slug(c.shop[id].Name) == key {
			return c.shop[id], nil
		}
		candidates = append(candidates, id)
	}

	return domain.ShopItem{}, missError(domain.ErrShopItemNotFound, input, key, candidates)
}

func missError(sentinel error, input, key string, candidates []string) error {
	if s, ok := Suggest(key, candidates); ok {
		return fmt.Errorf("%w: %q (did you mean %q?)", sentinel, input, s)
	}
	return fmt.Errorf("%w: %q", sentinel, input)
}

// Suggest returns the candidate closest to input by edit distance,
// if any lies within the tolerance for its length
func Suggest(input string, candidates []string) (string, bool) {
	if input == "" || len(candidates) == 0 {
		return "", false
	}

	type scored struct {
		val  string
		dist int
	}

	results := make([]scored, 0, len(candidates))
	for _, cand := range candidates {
		dist := levenshtein.ComputeDistance(input, cand)
		if dist > distanceLimit(len(cand)) {
			continue
		}
		results = append(results, scored{val: cand, dist: dist})
	}
	if len(results) == 0 {
		return "", false
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].dist == results[j].dist {
			return results[i].val < results[j].val
		}
		return results[i].dist < results[j].dist
	})
	return results[0].val, true
}

func distanceLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
