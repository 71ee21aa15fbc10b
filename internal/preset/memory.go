package preset

import (
	"fmt"
	"slices"
)

// MemoryCatalog is a Catalog over fixed preset slices.
type MemoryCatalog struct {
	presets  map[DeviceClass][]Descriptor
	selected map[DeviceClass]string
}

// NewMemoryCatalog creates a catalog holding the given printers and filaments.
// Nothing is selected until Select is called.
func NewMemoryCatalog(printers, filaments []Descriptor) *MemoryCatalog {
	return &MemoryCatalog{
		presets: map[DeviceClass][]Descriptor{
			ClassPrinter:  slices.Clone(printers),
			ClassFilament: slices.Clone(filaments),
		},
		selected: make(map[DeviceClass]string),
	}
}

// Presets implements Catalog.
func (c *MemoryCatalog) Presets(class DeviceClass) []Descriptor {
	return slices.Clone(c.presets[class])
}

// Selected implements Catalog.
func (c *MemoryCatalog) Selected(class DeviceClass) (Descriptor, bool) {
	name, ok := c.selected[class]
	if !ok {
		return Descriptor{}, false
	}

	return Find(c.presets[class], name)
}

// Select marks the named preset as active for its class.
func (c *MemoryCatalog) Select(class DeviceClass, name string) error {
	if _, ok := Find(c.presets[class], name); !ok {
		return fmt.Errorf("%s preset %q not found", class, name)
	}

	c.selected[class] = name

	return nil
}
