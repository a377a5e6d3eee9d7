package domain

// ResultType distinguishes item hits from fluid hits.
type ResultType string

const (
	// ResultTypeItem marks a hit from the trigram item index.
	ResultTypeItem ResultType = "item"

	// ResultTypeFluid marks a hit from the fluid name scan.
	ResultTypeFluid ResultType = "fluid"
)

// SearchResult is a single search hit.
//
// Item scores are trigram overlap counts plus substring boosts; fluid
// scores are a flat tier (300/150/50). The two scales are not
// normalised against each other, so cross-type ranking is heuristic.
type SearchResult struct {
	// ID is the raw identifier (item id or fluid name).
	ID string `json:"id"`

	// DisplayName is the human-readable name.
	DisplayName string `json:"displayName"`

	// ModID is the owning mod for items; empty for fluids.
	ModID string `json:"modId"`

	// Type reports whether the hit is an item or a fluid.
	Type ResultType `json:"type"`

	// Score is the relevance score.
	Score int `json:"score"`
}
