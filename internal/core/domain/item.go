package domain

// Item is a game item as published in the dataset. The identifier is
// the raw export id and may contain colons, dots and other characters
// that are unsafe in URLs or filenames; see EncodeItemID.
//
// Items are created once per pipeline run and immutable thereafter.
type Item struct {
	// ID is the raw item identifier, e.g. "gregtech:gt.metaitem.01:32741".
	ID string `json:"id"`

	// ModID is the owning mod identifier.
	ModID string `json:"modId"`

	// ItemName is the internal item name from the export.
	ItemName string `json:"itemName"`

	// Metadata is the item damage/metadata value.
	Metadata int `json:"metadata"`

	// DisplayName is the human-readable name.
	DisplayName string `json:"displayName"`

	// UnlocalizedName is the raw localisation key.
	UnlocalizedName string `json:"unlocalizedName"`

	// OreDictNames lists ore-dictionary aliases, if any.
	OreDictNames []string `json:"oreDictNames,omitempty"`

	// RecipesAsOutput references every recipe producing this item,
	// in recipe-file order.
	RecipesAsOutput []RecipeRef `json:"recipesAsOutput"`

	// RecipesAsInput references every recipe consuming this item,
	// in recipe-file order.
	RecipesAsInput []RecipeRef `json:"recipesAsInput"`
}

// ItemSummary is the lightweight entry stored in the items index.
type ItemSummary struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	ModID       string `json:"modId"`
}

// ModItem is an items-by-mod index entry. The mod id is the map key,
// so entries carry only the id and display name.
type ModItem struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
}

// ItemDetail is a hydrated item: the item record plus the first
// few referenced recipes resolved from their chunks. Totals report
// the full reference counts regardless of how many were hydrated.
type ItemDetail struct {
	Item               Item     `json:"item"`
	OutputRecipes      []Recipe `json:"outputRecipes"`
	InputRecipes       []Recipe `json:"inputRecipes"`
	TotalOutputRecipes int      `json:"totalOutputRecipes"`
	TotalInputRecipes  int      `json:"totalInputRecipes"`
}
