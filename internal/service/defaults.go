package service

import (
	"time"

	"github.com/weddingcard/api/internal/model"
)

// NewDefaultWedding builds the starter wedding document seeded for every
// new account. The caller assigns the id and shareable id.
func NewDefaultWedding(userID string) *model.Wedding {
	now := time.Now().UTC()
	return &model.Wedding{
		UserID:        userID,
		CoupleName1:   "Sarah",
		CoupleName2:   "Michael",
		WeddingDate:   "2025-06-15",
		VenueName:     "Sunset Garden Estate",
		VenueLocation: "Sunset Garden Estate • Napa Valley, California",
		TheirStory:    "We can't wait to celebrate our love story with the people who matter most to us. Join us for an unforgettable evening of joy, laughter, and new beginnings.",
		StoryTimeline: []model.TimelineEntry{
			{
				Year:        "2019",
				Title:       "First Meeting",
				Description: "We met at a coffee shop in downtown San Francisco on a rainy Tuesday morning.",
				Image:       "https://images.unsplash.com/photo-1511285560929-80b456fea0bc?w=600&h=400&fit=crop",
			},
		},
		ScheduleEvents: []model.ScheduleEvent{
			{
				Time:        "2:00 PM",
				Title:       "Guests Arrival & Welcome",
				Description: "Please arrive by 2:00 PM for welcome drinks and mingling.",
				Location:    "Sunset Garden Estate - Main Entrance",
				Duration:    "30 minutes",
				Highlight:   false,
			},
		},
		GalleryPhotos: []model.GalleryPhoto{},
		BridalParty:   []model.PartyMember{},
		GroomParty:    []model.PartyMember{},
		SpecialRoles:  []model.PartyMember{},
		RegistryItems: []model.RegistryItem{},
		FAQs:          []model.FAQ{},
		Theme:         string(model.ThemeClassic),
		RSVPResponses: []model.RSVP{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// ShowcaseWedding builds the fully populated demo card served when a
// public lookup cannot be resolved to a real wedding. Its id is the
// literal "default" so the frontend can tell it apart from user data.
func ShowcaseWedding() *model.PublicWedding {
	seeded := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	return &model.PublicWedding{
		ID:            "default",
		CoupleName1:   "Sarah",
		CoupleName2:   "Michael",
		WeddingDate:   "2025-06-15",
		VenueName:     "Sunset Garden Estate",
		VenueLocation: "Napa Valley, California",
		TheirStory:    "Our beautiful love story began when we met at a coffee shop in downtown San Francisco...",
		StoryTimeline: []model.TimelineEntry{
			{
				Year:        "2019",
				Title:       "First Meeting",
				Description: "We met at Blue Bottle Coffee on a rainy Tuesday morning. Sarah was reading a book about sustainable architecture, and Michael couldn't help but strike up a conversation.",
				Image:       "https://images.unsplash.com/photo-1511988617509-a57c8a288659?w=400",
			},
			{
				Year:        "2020",
				Title:       "First Date",
				Description: "Our first official date was a hiking trip to Mount Tamalpais. We spent hours talking about our dreams and aspirations while watching the sunset over the Bay Area.",
				Image:       "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=400",
			},
			{
				Year:        "2022",
				Title:       "Moving In Together",
				Description: "We decided to take the next step and move in together in a cozy apartment in Mission District. Our first shared space became our little sanctuary.",
				Image:       "https://images.unsplash.com/photo-1556909114-f6e7ad7d3136?w=400",
			},
			{
				Year:        "2024",
				Title:       "The Proposal",
				Description: "Michael proposed during a weekend getaway to Big Sur. He had planned the perfect moment during a sunset walk along the cliffs overlooking the Pacific Ocean.",
				Image:       "https://images.unsplash.com/photo-1469371670807-013ccf25f16a?w=400",
			},
		},
		ScheduleEvents: []model.ScheduleEvent{
			{
				Time:        "2:00 PM",
				Title:       "Ceremony",
				Description: "Join us for our wedding ceremony in the beautiful garden pavilion",
				Location:    "Garden Pavilion",
				Duration:    "45 minutes",
				Highlight:   true,
			},
			{
				Time:        "3:00 PM",
				Title:       "Cocktail Hour",
				Description: "Celebrate with drinks and appetizers on the terrace",
				Location:    "Sunset Terrace",
				Duration:    "60 minutes",
				Highlight:   false,
			},
			{
				Time:        "4:30 PM",
				Title:       "Reception",
				Description: "Dinner, dancing, and celebration in the grand ballroom",
				Location:    "Grand Ballroom",
				Duration:    "5 hours",
				Highlight:   true,
			},
		},
		GalleryPhotos: []model.GalleryPhoto{
			{Category: "engagement", URL: "https://images.unsplash.com/photo-1606216794074-735e91aa2c92?w=500"},
			{Category: "engagement", URL: "https://images.unsplash.com/photo-1583939003579-730e3918a45a?w=500"},
			{Category: "engagement", URL: "https://images.unsplash.com/photo-1582750433449-648ed127bb54?w=500"},
			{Category: "travel", URL: "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=500"},
			{Category: "travel", URL: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=500"},
			{Category: "travel", URL: "https://images.unsplash.com/photo-1506197603052-3cc9c3a201bd?w=500"},
			{Category: "family", URL: "https://images.unsplash.com/photo-1511895426328-dc8714191300?w=500"},
			{Category: "family", URL: "https://images.unsplash.com/photo-1515934751635-c81c6bc9a2d8?w=500"},
			{Category: "family", URL: "https://images.unsplash.com/photo-1556909114-f6e7ad7d3136?w=500"},
		},
		BridalParty: []model.PartyMember{
			{
				Name:        "Emma Johnson",
				Designation: "Maid of Honor",
				Description: "Sarah's best friend since college and her constant source of laughter and support.",
				Photo:       "https://images.unsplash.com/photo-1494790108755-2616b612b789?w=300",
			},
			{
				Name:        "Rachel Davis",
				Designation: "Bridesmaid",
				Description: "Sarah's sister and adventure buddy who shares her love for hiking and travel.",
				Photo:       "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=300",
			},
			{
				Name:        "Lisa Chen",
				Designation: "Bridesmaid",
				Description: "College roommate turned lifelong friend, always there with wise advice and hugs.",
				Photo:       "https://images.unsplash.com/photo-1489424731084-a5d8b219a5bb?w=300",
			},
		},
		GroomParty: []model.PartyMember{
			{
				Name:        "David Wilson",
				Designation: "Best Man",
				Description: "Michael's brother and partner in crime since childhood adventures.",
				Photo:       "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=300",
			},
			{
				Name:        "James Miller",
				Designation: "Groomsman",
				Description: "College best friend and Michael's go-to person for both serious talks and fun times.",
				Photo:       "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=300",
			},
			{
				Name:        "Alex Rodriguez",
				Designation: "Groomsman",
				Description: "Work colleague turned close friend who shares Michael's passion for technology and good coffee.",
				Photo:       "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=300",
			},
		},
		SpecialRoles: []model.PartyMember{
			{
				Name:        "Grace Thompson",
				Designation: "Flower Girl",
				Description: "Sarah's adorable 6-year-old niece who will sprinkle flower petals down the aisle.",
				Photo:       "https://images.unsplash.com/photo-1544005313-94ddf0286df2?w=300",
			},
			{
				Name:        "Oliver Wilson",
				Designation: "Ring Bearer",
				Description: "Michael's nephew who will proudly carry the rings with the biggest smile.",
				Photo:       "https://images.unsplash.com/photo-1519340333755-56e9c1d3611d?w=300",
			},
		},
		RegistryItems: []model.RegistryItem{
			{
				Name:        "Professional Stand Mixer",
				Description: "For all our future baking adventures together",
				Price:       "$299.99",
				Store:       "Williams Sonoma",
				Purchased:   false,
				Image:       "https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=300",
			},
			{
				Name:        "Luxury Bedding Set",
				Description: "Soft organic cotton sheets for cozy nights",
				Price:       "$199.99",
				Store:       "West Elm",
				Purchased:   false,
				Image:       "https://images.unsplash.com/photo-1586023492125-27b2c045efd7?w=300",
			},
			{
				Name:        "Honeymoon Fund",
				Description: "Help us create memories on our dream honeymoon to Italy",
				Price:       "Any Amount",
				Store:       "Honeymoon Fund",
				Purchased:   false,
				Image:       "https://images.unsplash.com/photo-1523906834658-6e24ef2386f9?w=300",
			},
		},
		HoneymoonFund: model.HoneymoonFund{
			Destination: "Italy",
			Description: "Help us create unforgettable memories on our honeymoon to Italy!",
			IsActive:    true,
		},
		FAQs: []model.FAQ{
			{
				Question: "What should I wear?",
				Answer:   "We're having a garden ceremony, so we recommend cocktail attire. Ladies, consider comfortable shoes for outdoor surfaces.",
			},
			{
				Question: "Will there be parking available?",
				Answer:   "Yes, there is complimentary valet parking available at the venue entrance.",
			},
			{
				Question: "Can I bring a guest?",
				Answer:   "Please check your invitation for guest details. If you have any questions, feel free to reach out to us directly.",
			},
			{
				Question: "Is the venue accessible?",
				Answer:   "Yes, Sunset Garden Estate is fully wheelchair accessible with ramps and accessible restroom facilities.",
			},
		},
		Theme:         string(model.ThemeClassic),
		RSVPResponses: []model.RSVP{},
		CreatedAt:     seeded,
		UpdatedAt:     seeded,
	}
}
