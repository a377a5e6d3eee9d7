package domain

// Fluid is a fluid record. Fluids live in their own dot-delimited
// identifier namespace, disjoint from items.
//
// Fluids are not part of the trigram index: there are few enough of
// them that search matches them with a direct substring scan, and no
// recipe cross-references are built for them.
type Fluid struct {
	// Name is the fluid identifier, e.g. "fluid.molten.iron".
	Name string `json:"name"`

	// DisplayName is the human-readable name.
	DisplayName string `json:"displayName"`
}
