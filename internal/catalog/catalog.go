package catalog

import (
	"fmt"

	"talentloop/internal/domain"
)

// Catalog is the read-only registry of attribute definitions, attribute sets
// and scenes. It is built once at process start and passed into engine
// constructors; nothing mutates it afterwards.
type Catalog struct {
	attributes map[string]domain.AttributeDefinition
	sets       map[string]domain.AttributeSet
	scenes     map[domain.Scene]SceneDefinition
}

// New loads the static registries and verifies set invariants.
func New() (*Catalog, error) {
	c := &Catalog{
		attributes: make(map[string]domain.AttributeDefinition, len(attributeDefs)),
		sets:       make(map[string]domain.AttributeSet, len(attributeSets)),
		scenes:     make(map[domain.Scene]SceneDefinition, len(sceneDefs)),
	}
	for _, def := range attributeDefs {
		if !def.Category.Valid() {
			return nil, fmt.Errorf("%w: attribute %q has unknown category %q", domain.ErrConfiguration, def.ID, def.Category)
		}
		if _, dup := c.attributes[def.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate attribute id %q", domain.ErrConfiguration, def.ID)
		}
		c.attributes[def.ID] = def
	}
	for _, set := range attributeSets {
		if err := set.Validate(); err != nil {
			return nil, err
		}
		for _, id := range set.Attributes {
			if _, ok := c.attributes[id]; !ok {
				return nil, fmt.Errorf("%w: set %q references unknown attribute %q", domain.ErrConfiguration, set.ID, id)
			}
		}
		c.sets[set.ID] = set
	}
	for _, sc := range sceneDefs {
		c.scenes[sc.Scene] = sc
	}
	for _, scene := range domain.SceneOrder {
		if _, ok := c.scenes[scene]; !ok {
			return nil, fmt.Errorf("%w: missing scene definition %q", domain.ErrConfiguration, scene)
		}
	}
	return c, nil
}

// Attribute looks up one attribute definition.
func (c *Catalog) Attribute(id string) (domain.AttributeDefinition, bool) {
	def, ok := c.attributes[id]
	return def, ok
}

// Set looks up an attribute set by id.
func (c *Catalog) Set(id string) (domain.AttributeSet, error) {
	set, ok := c.sets[id]
	if !ok {
		return domain.AttributeSet{}, fmt.Errorf("%w: unknown attribute set %q", domain.ErrConfiguration, id)
	}
	return set, nil
}

// Scene returns the static definition of a scene.
func (c *Catalog) Scene(scene domain.Scene) (SceneDefinition, error) {
	def, ok := c.scenes[scene]
	if !ok {
		return SceneDefinition{}, fmt.Errorf("%w: unknown scene %q", domain.ErrConfiguration, scene)
	}
	return def, nil
}

// SetAttributes resolves a set's member definitions in set order.
func (c *Catalog) SetAttributes(set domain.AttributeSet) []domain.AttributeDefinition {
	out := make([]domain.AttributeDefinition, 0, len(set.Attributes))
	for _, id := range set.Attributes {
		if def, ok := c.attributes[id]; ok {
			out = append(out, def)
		}
	}
	return out
}
