package types

// ------------------------------
// Request Types
// ------------------------------

// UpdateCardRequest is the PATCH /cards/{id} body. It always carries the full
// current value of every editable field, never a delta, so a slower in-flight
// request cannot overwrite a newer field with a stale one.
type UpdateCardRequest struct {
	Title       string  `json:"title"`
	MessageText string  `json:"messageText"`
	ImageURL    *string `json:"imageUrl"`
	YoutubeURL  *string `json:"youtubeUrl"`
}

// UpdateCollectionRequest is the PATCH /collections/{id} body. Nil fields are
// omitted and left unchanged server-side.
type UpdateCollectionRequest struct {
	RecipientName  *string `json:"recipientName,omitempty"`
	SenderName     *string `json:"senderName,omitempty"`
	ContactName    *string `json:"contactName,omitempty"`
	ContactEmail   *string `json:"contactEmail,omitempty"`
	ContactPhone   *string `json:"contactPhone,omitempty"`
	IntroMessage   *string `json:"introMessage,omitempty"`
	YoutubeVideoID *string `json:"youtubeVideoId,omitempty"`
}

// CreateCollectionRequest is the POST /collections body used by the dev server
// and by cold bootstrap flows.
type CreateCollectionRequest struct {
	RecipientName string `json:"recipientName"`
	SenderName    string `json:"senderName"`
}
