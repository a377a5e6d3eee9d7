package domain

// Machine is one recipe source: one entity per recipe file in the raw
// export. Display name and category are derived from the identifier
// by the naming rules.
type Machine struct {
	// ID is the machine identifier, e.g. "gt.recipe.arcFurnace".
	ID string `json:"id"`

	// DisplayName is the derived human-readable name.
	DisplayName string `json:"displayName"`

	// RecipeCount is the total number of recipes.
	RecipeCount int `json:"recipeCount"`

	// Chunks is the number of chunk files the recipe list was split
	// into. This count is the only chunk metadata a reader needs for
	// full enumeration.
	Chunks int `json:"chunks"`

	// Category is the derived mod category, e.g. "GregTech".
	Category string `json:"category"`
}
