package model

import "time"

// Theme identifies one of the fixed set of card themes.
type Theme string

const (
	ThemeClassic Theme = "classic"
	ThemeModern  Theme = "modern"
	ThemeBoho    Theme = "boho"
)

// ValidThemes lists every accepted theme value, in the order they are
// echoed back in validation errors.
var ValidThemes = []Theme{ThemeClassic, ThemeModern, ThemeBoho}

// IsValidTheme reports whether s names a known theme.
func IsValidTheme(s string) bool {
	for _, t := range ValidThemes {
		if string(t) == s {
			return true
		}
	}
	return false
}

// TimelineEntry is one milestone in the couple's story.
type TimelineEntry struct {
	Year        string `json:"year"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"`
}

// ScheduleEvent is one entry in the wedding-day schedule.
type ScheduleEvent struct {
	Time        string `json:"time"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location,omitempty"`
	Duration    string `json:"duration,omitempty"`
	Highlight   bool   `json:"highlight"`
}

// GalleryPhoto is one photo in the couple's gallery, grouped by category
// ("engagement", "travel", "family", ...).
type GalleryPhoto struct {
	Category string `json:"category,omitempty"`
	URL      string `json:"url"`
	Caption  string `json:"caption,omitempty"`
}

// PartyMember describes one member of the bridal party, groom party, or
// a special role (flower girl, ring bearer).
type PartyMember struct {
	Name        string `json:"name"`
	Designation string `json:"designation"`
	Description string `json:"description,omitempty"`
	Photo       string `json:"photo,omitempty"`
}

// RegistryItem is one gift-registry entry.
type RegistryItem struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       string `json:"price,omitempty"`
	Store       string `json:"store,omitempty"`
	Purchased   bool   `json:"purchased"`
	Image       string `json:"image,omitempty"`
}

// FAQ is one question/answer pair shown on the FAQ page.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// HoneymoonFund holds the registry/payment configuration stored inline
// inside a wedding document.
type HoneymoonFund struct {
	UPIID       string `json:"upi_id"`
	PhoneNumber string `json:"phone_number"`
	Destination string `json:"destination"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	IsActive    bool   `json:"is_active"`
}

// Wedding is the per-user wedding-card document. Each user owns at most
// one. ShareableID is an 8-character public identifier assigned at
// creation and immutable thereafter.
type Wedding struct {
	ID             string          `json:"id"`
	UserID         string          `json:"user_id"`
	ShareableID    string          `json:"shareable_id"`
	CoupleName1    string          `json:"couple_name_1"`
	CoupleName2    string          `json:"couple_name_2"`
	WeddingDate    string          `json:"wedding_date"`
	VenueName      string          `json:"venue_name"`
	VenueLocation  string          `json:"venue_location"`
	TheirStory     string          `json:"their_story"`
	StoryTimeline  []TimelineEntry `json:"story_timeline"`
	ScheduleEvents []ScheduleEvent `json:"schedule_events"`
	GalleryPhotos  []GalleryPhoto  `json:"gallery_photos"`
	BridalParty    []PartyMember   `json:"bridal_party"`
	GroomParty     []PartyMember   `json:"groom_party"`
	SpecialRoles   []PartyMember   `json:"special_roles"`
	RegistryItems  []RegistryItem  `json:"registry_items"`
	HoneymoonFund  HoneymoonFund   `json:"honeymoon_fund"`
	FAQs           []FAQ           `json:"faqs"`
	Theme          string          `json:"theme"`
	RSVPResponses  []RSVP          `json:"rsvp_responses"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// PublicWedding is the sanitized projection returned by every public
// resolver. It deliberately has no owner or storage-internal identifier
// field, so leaking one is a compile-time impossibility rather than a
// filtering bug.
type PublicWedding struct {
	ID             string          `json:"id"`
	ShareableID    string          `json:"shareable_id,omitempty"`
	CoupleName1    string          `json:"couple_name_1"`
	CoupleName2    string          `json:"couple_name_2"`
	WeddingDate    string          `json:"wedding_date"`
	VenueName      string          `json:"venue_name"`
	VenueLocation  string          `json:"venue_location"`
	TheirStory     string          `json:"their_story"`
	StoryTimeline  []TimelineEntry `json:"story_timeline"`
	ScheduleEvents []ScheduleEvent `json:"schedule_events"`
	GalleryPhotos  []GalleryPhoto  `json:"gallery_photos"`
	BridalParty    []PartyMember   `json:"bridal_party"`
	GroomParty     []PartyMember   `json:"groom_party"`
	SpecialRoles   []PartyMember   `json:"special_roles"`
	RegistryItems  []RegistryItem  `json:"registry_items"`
	HoneymoonFund  HoneymoonFund   `json:"honeymoon_fund"`
	FAQs           []FAQ           `json:"faqs"`
	Theme          string          `json:"theme"`
	RSVPResponses  []RSVP          `json:"rsvp_responses"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`

	// Section-routing metadata, set only by the username/section resolver.
	CurrentSection string `json:"current_section,omitempty"`
	Username       string `json:"username,omitempty"`
}

// Public returns the sanitized projection of w.
func (w *Wedding) Public() *PublicWedding {
	return &PublicWedding{
		ID:             w.ID,
		ShareableID:    w.ShareableID,
		CoupleName1:    w.CoupleName1,
		CoupleName2:    w.CoupleName2,
		WeddingDate:    w.WeddingDate,
		VenueName:      w.VenueName,
		VenueLocation:  w.VenueLocation,
		TheirStory:     w.TheirStory,
		StoryTimeline:  w.StoryTimeline,
		ScheduleEvents: w.ScheduleEvents,
		GalleryPhotos:  w.GalleryPhotos,
		BridalParty:    w.BridalParty,
		GroomParty:     w.GroomParty,
		SpecialRoles:   w.SpecialRoles,
		RegistryItems:  w.RegistryItems,
		HoneymoonFund:  w.HoneymoonFund,
		FAQs:           w.FAQs,
		Theme:          w.Theme,
		RSVPResponses:  w.RSVPResponses,
		CreatedAt:      w.CreatedAt,
		UpdatedAt:      w.UpdatedAt,
	}
}

// WeddingUpdate carries a partial update for a wedding document. Nil
// fields are left untouched; non-nil fields replace the stored value.
// The id, owner, shareable id, and creation timestamp of the stored
// document are never touched regardless of what the caller supplies.
type WeddingUpdate struct {
	CoupleName1    *string          `json:"couple_name_1"`
	CoupleName2    *string          `json:"couple_name_2"`
	WeddingDate    *string          `json:"wedding_date"`
	VenueName      *string          `json:"venue_name"`
	VenueLocation  *string          `json:"venue_location"`
	TheirStory     *string          `json:"their_story"`
	StoryTimeline  []TimelineEntry  `json:"story_timeline"`
	ScheduleEvents []ScheduleEvent  `json:"schedule_events"`
	GalleryPhotos  []GalleryPhoto   `json:"gallery_photos"`
	BridalParty    []PartyMember    `json:"bridal_party"`
	GroomParty     []PartyMember    `json:"groom_party"`
	SpecialRoles   []PartyMember    `json:"special_roles"`
	RegistryItems  []RegistryItem   `json:"registry_items"`
	HoneymoonFund  *HoneymoonFund   `json:"honeymoon_fund"`
	FAQs           []FAQ            `json:"faqs"`
	Theme          *string          `json:"theme"`
}

// Apply merges the update into w, preserving the immutable fields.
func (u *WeddingUpdate) Apply(w *Wedding) {
	if u.CoupleName1 != nil {
		w.CoupleName1 = *u.CoupleName1
	}
	if u.CoupleName2 != nil {
		w.CoupleName2 = *u.CoupleName2
	}
	if u.WeddingDate != nil {
		w.WeddingDate = *u.WeddingDate
	}
	if u.VenueName != nil {
		w.VenueName = *u.VenueName
	}
	if u.VenueLocation != nil {
		w.VenueLocation = *u.VenueLocation
	}
	if u.TheirStory != nil {
		w.TheirStory = *u.TheirStory
	}
	if u.StoryTimeline != nil {
		w.StoryTimeline = u.StoryTimeline
	}
	if u.ScheduleEvents != nil {
		w.ScheduleEvents = u.ScheduleEvents
	}
	if u.GalleryPhotos != nil {
		w.GalleryPhotos = u.GalleryPhotos
	}
	if u.BridalParty != nil {
		w.BridalParty = u.BridalParty
	}
	if u.GroomParty != nil {
		w.GroomParty = u.GroomParty
	}
	if u.SpecialRoles != nil {
		w.SpecialRoles = u.SpecialRoles
	}
	if u.RegistryItems != nil {
		w.RegistryItems = u.RegistryItems
	}
	if u.HoneymoonFund != nil {
		w.HoneymoonFund = *u.HoneymoonFund
	}
	if u.FAQs != nil {
		w.FAQs = u.FAQs
	}
	if u.Theme != nil {
		w.Theme = *u.Theme
	}
}
