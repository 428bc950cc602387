package types

// ------------------------------
// Response Types
// ------------------------------

// CollectionBundle mirrors the GET /collections/{id} response shape: the
// collection plus its twelve cards in order.
type CollectionBundle struct {
	Collection Collection `json:"collection"`
	Cards      []Card     `json:"cards"`
}

// CardResponse wraps the PATCH /cards/{id} response.
type CardResponse struct {
	Card Card `json:"card"`
}

// CollectionResponse wraps the PATCH /collections/{id} response.
type CollectionResponse struct {
	Collection Collection `json:"collection"`
}
