package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/osse101/TrenchGarden_Go/internal/domain"
	"github.com/osse101/TrenchGarden_Go/internal/validation"
)

//go:embed data/catalog.yaml
var defaultCatalog []byte

var schemas = validation.NewSchemaValidator()

// file is the YAML layout of a catalog document
type file struct {
	Plants []domain.PlantDefinition `yaml:"plants"`
	Shop   []domain.ShopItem        `yaml:"shop"`
}

// Catalog holds the static plant definitions and shop items.
// It is read-only after construction and safe for concurrent use.
type Catalog struct {
	plants     map[domain.PlantType]domain.PlantDefinition
	plantOrder []domain.PlantType
	shop       map[string]domain.ShopItem
	shopOrder  []string
	defaults   []domain.PlantType
}

// Default returns the catalog compiled into the binary
func Default() (*Catalog, error) {
	return Load(bytes.NewReader(defaultCatalog))
}

// New loads the catalog from path, or the built-in catalog when path is empty
func New(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	return LoadFile(path)
}

// LoadFile loads a catalog from a YAML file
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file %s: %w", path, err)
	}
	defer f.Close()

	return Load(f)
}

// Load parses and validates a YAML catalog. The document is checked against
// the catalog schema before the game rules are applied.
func Load(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	if err := schemas.ValidateYAML(data, validation.CatalogSchema); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	var doc file
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	c := &Catalog{
		plants: make(map[domain.PlantType]domain.PlantDefinition, len(doc.Plants)),
		shop:   make(map[string]domain.ShopItem, len(doc.Shop)),
	}

	if len(doc.Plants) == 0 {
		return nil, fmt.Errorf("%w: catalog has no plants", domain.ErrInvalidInput)
	}

	for _, def := range doc.Plants {
		if err := validatePlant(def); err != nil {
			return nil, err
		}
		if _, dup := c.plants[def.Type]; dup {
			return nil, fmt.Errorf("%w: duplicate plant type %q", domain.ErrInvalidInput, def.Type)
		}
		c.plants[def.Type] = def
		c.plantOrder = append(c.plantOrder, def.Type)
		if def.Default {
			c.defaults = append(c.defaults, def.Type)
		}
	}

	for _, item := range doc.Shop {
		if err := c.validateShopItem(item); err != nil {
			return nil, err
		}
		if _, dup := c.shop[item.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate shop item %q", domain.ErrInvalidInput, item.ID)
		}
		c.shop[item.ID] = item
		c.shopOrder = append(c.shopOrder, item.ID)
	}

	return c, nil
}

func validatePlant(def domain.PlantDefinition) error {
	switch {
	case def.Type == "":
		return fmt.Errorf("%w: plant without type", domain.ErrInvalidInput)
	case def.GrowthTime <= 0:
		return fmt.Errorf("%w: plant %q growth_time must be positive", domain.ErrInvalidInput, def.Type)
	case def.GrowthStages != domain.MaxGrowthStage:
		return fmt.Errorf("%w: plant %q must have %d growth stages, has %d",
			domain.ErrInvalidInput, def.Type, domain.MaxGrowthStage, def.GrowthStages)
	case !def.Rarity.IsValid():
		return fmt.Errorf("%w: plant %q has unknown rarity %q", domain.ErrInvalidInput, def.Type, def.Rarity)
	}
	return nil
}

func (c *Catalog) validateShopItem(item domain.ShopItem) error {
	switch {
	case item.ID == "":
		return fmt.Errorf("%w: shop item without id", domain.ErrInvalidInput)
	case item.Price < 0:
		return fmt.Errorf("%w: shop item %q has negative price", domain.ErrInvalidInput, item.ID)
	case item.UnlockLevel < domain.StartingLevel:
		return fmt.Errorf("%w: shop item %q unlock_level must be at least %d",
			domain.ErrInvalidInput, item.ID, domain.StartingLevel)
	case !item.Rarity.IsValid():
		return fmt.Errorf("%w: shop item %q has unknown rarity %q", domain.ErrInvalidInput, item.ID, item.Rarity)
	}
	if _, ok := c.plants[item.Type]; !ok {
		return fmt.Errorf("%w: shop item %q references unknown plant type %q", domain.ErrUnknownPlantType, item.ID, item.Type)
	}
	return nil
}

// Plant returns the definition for a plant type
func (c *Catalog) Plant(t domain.PlantType) (domain.PlantDefinition, bool) {
	def, ok := c.plants[t]
	return def, ok
}

// ShopItem returns the shop item with the given ID
func (c *Catalog) ShopItem(id string) (domain.ShopItem, bool) {
	item, ok := c.shop[id]
	return item, ok
}

// Plants returns every plant definition in catalog order
func (c *Catalog) Plants() []domain.PlantDefinition {
	out := make([]domain.PlantDefinition, 0, len(c.plantOrder))
	for _, t := range c.plantOrder {
		out = append(out, c.plants[t])
	}
	return out
}

// ShopItems returns every shop item in catalog order
func (c *Catalog) ShopItems() []domain.ShopItem {
	out := make([]domain.ShopItem, 0, len(c.shopOrder))
	for _, id := range c.shopOrder {
		out = append(out, c.shop[id])
	}
	return out
}

// DefaultPlantTypes lists the types every player may place without buying
func (c *Catalog) DefaultPlantTypes() []domain.PlantType {
	return append([]domain.PlantType(nil), c.defaults...)
}

// IsDefault reports whether t can be placed without owning it
func (c *Catalog) IsDefault(t domain.PlantType) bool {
	for _, d := range c.defaults {
		if d == t {
			return true
		}
	}
	return false
}
