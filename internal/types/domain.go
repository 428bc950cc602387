package types

import "time"

// ------------------------------
// Core Domain Entities
// ------------------------------

// CollectionStatus is the lifecycle stage of a collection. It is assigned by
// the remote store; the editor only reads it.
type CollectionStatus string

const (
	CollectionPending   CollectionStatus = "pending"
	CollectionFinalized CollectionStatus = "finalized"
)

// CardStatus tracks whether the recipient has opened a card. The transition to
// opened happens in the recipient experience, never in the editor.
type CardStatus string

const (
	CardUnopened CardStatus = "unopened"
	CardOpened   CardStatus = "opened"
)

// CardsPerCollection is the fixed number of cards every collection owns.
const CardsPerCollection = 12

// MaxMessageLength is the hard limit on a card's message text.
const MaxMessageLength = 500

// Collection is the top-level editable unit. Contact fields are only required
// at finalize time; status and timestamps are server-authoritative once synced.
type Collection struct {
	ID             string           `json:"collectionId"`
	RecipientName  string           `json:"recipientName"`
	SenderName     string           `json:"senderName"`
	ContactName    string           `json:"contactName,omitempty"`
	ContactEmail   string           `json:"contactEmail,omitempty"`
	ContactPhone   string           `json:"contactPhone,omitempty"`
	IntroMessage   string           `json:"introMessage,omitempty"`
	YoutubeVideoID string           `json:"youtubeVideoId,omitempty"`
	Status         CollectionStatus `json:"status"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
}

// Card is one of the twelve messages within a collection. Order is unique
// within the collection, range 1..12, fixed at creation.
type Card struct {
	ID           string     `json:"cardId"`
	CollectionID string     `json:"collectionId"`
	Order        int        `json:"order"`
	Title        string     `json:"title"`
	MessageText  string     `json:"messageText"`
	ImageURL     *string    `json:"imageUrl,omitempty"`
	YoutubeURL   *string    `json:"youtubeUrl,omitempty"`
	Status       CardStatus `json:"status"`
	OpenedAt     *time.Time `json:"openedAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// ------------------------------
// Patches (optimistic local mutation)
// ------------------------------

// CardPatch carries the editable card fields for a local mutation. Nil fields
// are left untouched; last write wins per field.
type CardPatch struct {
	Title       *string
	MessageText *string
	ImageURL    *string
	YoutubeURL  *string
}

// Apply copies the set fields onto c. It does not stamp UpdatedAt; callers own
// timestamping so patches stay pure.
func (p CardPatch) Apply(c *Card) {
	if p.Title != nil {
		c.Title = *p.Title
	}
	if p.MessageText != nil {
		c.MessageText = *p.MessageText
	}
	if p.ImageURL != nil {
		c.ImageURL = p.ImageURL
	}
	if p.YoutubeURL != nil {
		c.YoutubeURL = p.YoutubeURL
	}
}

// CollectionPatch carries the editable collection fields for a local mutation.
type CollectionPatch struct {
	RecipientName  *string
	SenderName     *string
	ContactName    *string
	ContactEmail   *string
	ContactPhone   *string
	IntroMessage   *string
	YoutubeVideoID *string
}

// Apply copies the set fields onto c.
func (p CollectionPatch) Apply(c *Collection) {
	if p.RecipientName != nil {
		c.RecipientName = *p.RecipientName
	}
	if p.SenderName != nil {
		c.SenderName = *p.SenderName
	}
	if p.ContactName != nil {
		c.ContactName = *p.ContactName
	}
	if p.ContactEmail != nil {
		c.ContactEmail = *p.ContactEmail
	}
	if p.ContactPhone != nil {
		c.ContactPhone = *p.ContactPhone
	}
	if p.IntroMessage != nil {
		c.IntroMessage = *p.IntroMessage
	}
	if p.YoutubeVideoID != nil {
		c.YoutubeVideoID = *p.YoutubeVideoID
	}
}

// Contact is the buyer contact info collected at finalize time.
type Contact struct {
	Name  string `json:"contactName"`
	Email string `json:"contactEmail"`
	Phone string `json:"contactPhone"`
}
