package style

import (
	"github.com/wieslawsoltes/DxfParser-sub001/cache"
	"github.com/wieslawsoltes/DxfParser-sub001/scene"
)

// Material is the resolved descriptor of a MATERIAL object.
type Material struct {
	Name       string
	Diffuse    *Color
	Opacity    float64
	HasOpacity bool
}

// MaterialCache memoizes material descriptors by normalized handle or name.
// It is bound to one materials table; looking up against another table
// drops every entry.
type MaterialCache struct {
	c *cache.Bound[string, *Material]
}

// NewMaterialCache returns an empty cache.
func NewMaterialCache() *MaterialCache {
	return &MaterialCache{c: cache.NewBound[string, *Material](0)}
}

// Lookup resolves a material reference in table.
func (m *MaterialCache) Lookup(table *scene.MaterialTable, ref string) (*Material, bool) {
	if table == nil || ref == "" {
		return nil, false
	}
	m.c.Bind(table)
	key := scene.Key(ref)
	d := m.c.GetOrCreate(key, func() *Material {
		return describe(table, key)
	})
	return d, d != nil
}

// Stats exposes the underlying cache statistics.
func (m *MaterialCache) Stats() cache.Stats {
	return m.c.Stats()
}

func describe(table *scene.MaterialTable, key string) *Material {
	for i := range table.Entries {
		e := &table.Entries[i]
		if scene.Key(e.Handle) != key && scene.Key(e.Name) != key {
			continue
		}
		switch scene.Key(e.Name) {
		case "BYLAYER", "BYBLOCK", "GLOBAL":
			return &Material{Name: e.Name}
		}
		d := &Material{Name: e.Name, Opacity: 1}
		if e.Diffuse != nil {
			c := RGBColor(*e.Diffuse)
			if f := e.DiffuseFactor; f > 0 && f < 1 {
				c = Color{
					R: uint8(float64(c.R) * f),
					G: uint8(float64(c.G) * f),
					B: uint8(float64(c.B) * f),
					A: 1,
				}
			}
			d.Diffuse = &c
		}
		if e.HasOpacity {
			d.Opacity = clamp01(e.Opacity)
			d.HasOpacity = true
		}
		return d
	}
	return nil
}
