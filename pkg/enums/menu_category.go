package enums

import "fmt"

// MenuCategory groups menu items into the four storefront sections.
type MenuCategory string

const (
	MenuCategoryStarters MenuCategory = "starters"
	MenuCategoryMain     MenuCategory = "main"
	MenuCategoryDesserts MenuCategory = "desserts"
	MenuCategoryDrinks   MenuCategory = "drinks"
)

var validMenuCategories = []MenuCategory{
	MenuCategoryStarters,
	MenuCategoryMain,
	MenuCategoryDesserts,
	MenuCategoryDrinks,
}

// String implements fmt.Stringer.
func (m MenuCategory) String() string {
	return string(m)
}

// IsValid reports whether the value is a known MenuCategory.
func (m MenuCategory) IsValid() bool {
	for _, candidate := range validMenuCategories {
		if candidate == m {
			return true
		}
	}
	return false
}

// ParseMenuCategory converts raw input into a MenuCategory.
func ParseMenuCategory(value string) (MenuCategory, error) {
	for _, candidate := range validMenuCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid menu category %q", value)
}
