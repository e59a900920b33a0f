package model

// Item represents a purchasable catalog item. Items are immutable once
// seeded; auctions reference them by ID and never mutate them.
type Item struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Type        string         `json:"itemType"`
	Value       int            `json:"value"`
	Stats       map[string]int `json:"stats,omitempty"`
}

// Item types. "Consumible" is the value carried by the catalog data.
const (
	ItemTypeWeapon     = "Weapon"
	ItemTypeArmor      = "Armor"
	ItemTypeConsumable = "Consumible"
)

// CategoryAll selects every item regardless of type.
const CategoryAll = "All"

// Categories returns the closed set of filter categories, CategoryAll first.
func Categories() []string {
	return []string{CategoryAll, ItemTypeWeapon, ItemTypeArmor, ItemTypeConsumable}
}

// ValidCategory reports whether category is CategoryAll or a known item type.
func ValidCategory(category string) bool {
	switch category {
	case CategoryAll, ItemTypeWeapon, ItemTypeArmor, ItemTypeConsumable:
		return true
	}
	return false
}

// Clone returns a deep copy of the item.
func (i Item) Clone() Item {
	out := i
	if i.Stats != nil {
		out.Stats = make(map[string]int, len(i.Stats))
		for k, v := range i.Stats {
			out.Stats[k] = v
		}
	}
	return out
}
