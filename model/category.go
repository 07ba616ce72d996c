package model

// Category identifies one of the independent term classes of the query
// builder. The set is fixed: each category owns its own query tree and the
// trees never share nodes.
type Category int

const (
	CategoryCondition Category = iota
	CategoryIntervention
	CategoryOther
)

// Categories lists all categories in display order.
var Categories = [3]Category{CategoryCondition, CategoryIntervention, CategoryOther}

// String returns the display name of the category.
func (c Category) String() string {
	switch c {
	case CategoryCondition:
		return "Condition"
	case CategoryIntervention:
		return "Intervention"
	case CategoryOther:
		return "Other"
	default:
		return "Unknown"
	}
}

// Valid reports whether the category is one of the known values.
func (c Category) Valid() bool {
	return c >= CategoryCondition && c <= CategoryOther
}

// NextCategory returns the category after c in display order, wrapping
// around at the end. Used for cycling the active pane in the builder view.
func NextCategory(c Category) Category {
	switch c {
	case CategoryCondition:
		return CategoryIntervention
	case CategoryIntervention:
		return CategoryOther
	default:
		return CategoryCondition
	}
}
