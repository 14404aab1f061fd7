package models

// Category is the fixed set of areas a task can belong to. The set is closed:
// tasks cannot be created with a category outside this enumeration.
type Category string

const (
	CategoryHome   Category = "Home"
	CategoryShop   Category = "Shop"
	CategoryWork   Category = "Work"
	CategoryIdeas  Category = "Ideas"
	CategoryPlaces Category = "Places"
)

// Categories lists every valid category in display order.
func Categories() []Category {
	return []Category{CategoryHome, CategoryShop, CategoryWork, CategoryIdeas, CategoryPlaces}
}

// Valid reports whether c is a member of the category enumeration.
func (c Category) Valid() bool {
	switch c {
	case CategoryHome, CategoryShop, CategoryWork, CategoryIdeas, CategoryPlaces:
		return true
	}
	return false
}

func (c Category) String() string {
	return string(c)
}
