package rank

// OtherVendor is the vendor assigned to presets without one.
const OtherVendor = "Other"

// Config holds the priority tables used by Rank.
type Config struct {
	// VendorPriority lists normalized vendors in display order.
	// Unlisted vendors rank after all listed ones.
	VendorPriority []string
	// TypePriority lists filament types in display order.
	// Unlisted types rank after all listed ones.
	TypePriority []string
	// VendorAliases maps a long-form vendor name to its canonical form.
	VendorAliases map[string]string
}

// DefaultConfig returns the priorities used by the preset sidebar.
func DefaultConfig() Config {
	return Config{
		VendorPriority: []string{"Bambu", "Generic"},
		TypePriority:   []string{"PLA", "PETG", "ABS", "TPU"},
		VendorAliases: map[string]string{
			"Bambu Lab": "Bambu",
		},
	}
}

// NormalizeVendor returns the canonical vendor name for comparison.
func (c Config) NormalizeVendor(vendor string) string {
	if vendor == "" {
		return OtherVendor
	}

	if canonical, ok := c.VendorAliases[vendor]; ok {
		return canonical
	}

	return vendor
}

// vendorRank returns the priority index of a normalized vendor.
func (c Config) vendorRank(vendor string) int {
	return priorityIndex(c.VendorPriority, vendor)
}

// typeRank returns the priority index of a filament type.
func (c Config) typeRank(typ string) int {
	return priorityIndex(c.TypePriority, typ)
}

// priorityIndex returns the position of v in list, or len(list) when absent.
func priorityIndex(list []string, v string) int {
	for i, item := range list {
		if item == v {
			return i
		}
	}

	return len(list)
}
