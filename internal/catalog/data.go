package catalog

import "recohub/pkg/models"

// Hand-authored content. Embedded in the binary and immutable at runtime;
// templates exist to seed a profile's activity and jump straight to the
// recommendations view.

var activities = []models.ActivityCategory{
	{
		ID:          "study",
		Label:       "Study & Focus",
		Description: "Deep work, learning, and concentration",
		Gradient:    "from-blue-500/20 to-purple-500/20",
	},
	{
		ID:          "gym",
		Label:       "Gym & Workout",
		Description: "High energy, motivation, and power",
		Gradient:    "from-red-500/20 to-orange-500/20",
	},
	{
		ID:          "travel",
		Label:       "Travel & Commute",
		Description: "Discovery, immersion, and passage of time",
		Gradient:    "from-green-500/20 to-emerald-500/20",
	},
	{
		ID:          "meditation",
		Label:       "Meditation & Peace",
		Description: "Mindfulness, calm, and inner silence",
		Gradient:    "from-indigo-500/20 to-violet-500/20",
	},
	{
		ID:          "party",
		Label:       "Party & Social",
		Description: "Upbeat, connection, and celebration",
		Gradient:    "from-pink-500/20 to-rose-500/20",
	},
	{
		ID:          "creative",
		Label:       "Creative Flow",
		Description: "Inspiration, divergent thinking, and art",
		Gradient:    "from-amber-500/20 to-yellow-500/20",
	},
	{
		ID:          "healing",
		Label:       "Healing & Rest",
		Description: "Recovery, comfort, and soothing",
		Gradient:    "from-teal-500/20 to-cyan-500/20",
	},
}

var templates = []models.TemplateItem{
	// --- study ---
	{
		ID:          "study-deep-focus",
		Title:       "Deep Focus Protocol",
		Description: "Minimalist soundscapes and thought-provoking reads for sustained attention.",
		ActivityID:  "study",
		Recommendations: []models.RecommendationItem{
			{ID: "m-study-1", Title: "Music for Airports", Creator: "Brian Eno", Type: "music", Tags: []string{"Ambient", "Instrumental"}},
			{ID: "b-study-1", Title: "Deep Work", Creator: "Cal Newport", Type: "book", Tags: []string{"Productivity", "Non-fiction"}},
		},
	},
	{
		ID:          "study-philosophy",
		Title:       "Philosophical Inquiry",
		Description: "Classical music and fundamental texts for heavy cerebral lifting.",
		ActivityID:  "study",
		Recommendations: []models.RecommendationItem{
			{ID: "m-study-2", Title: "Goldberg Variations", Creator: "J.S. Bach", Type: "music", Tags: []string{"Classical", "Baroque"}},
			{ID: "b-study-2", Title: "Meditations", Creator: "Marcus Aurelius", Type: "book", Tags: []string{"Philosophy", "Stoicism"}},
		},
	},
	{
		ID:          "study-lofi-flow",
		Title:       "Lo-Fi Flow State",
		Description: "Relaxed beats and engaging lighter reads for creative study sessions.",
		ActivityID:  "study",
		Recommendations: []models.RecommendationItem{
			{ID: "m-study-3", Title: "Lofi Girl - Study Beats", Creator: "Lofi Records", Type: "music", Tags: []string{"Lofi", "Chill"}},
			{ID: "b-study-3", Title: "Atomic Habits", Creator: "James Clear", Type: "book", Tags: []string{"Self-help", "Psychology"}},
		},
	},

	// --- gym ---
	{
		ID:          "gym-high-intensity",
		Title:       "High Intensity Shred",
		Description: "Aggressive beats and high-octane visuals for maximum output.",
		ActivityID:  "gym",
		Recommendations: []models.RecommendationItem{
			{ID: "m-gym-1", Title: "Yeezus", Creator: "Kanye West", Type: "music", Tags: []string{"Hip Hop", "Industrial"}},
			{ID: "f-gym-1", Title: "Pumping Iron", Creator: "George Butler", Type: "movie", Tags: []string{"Documentary", "Bodybuilding"}},
		},
	},
	{
		ID:          "gym-endurance",
		Title:       "Endurance Runner",
		Description: "Steady rhythms and inspiring stories of human limits.",
		ActivityID:  "gym",
		Recommendations: []models.RecommendationItem{
			{ID: "b-gym-1", Title: "Born to Run", Creator: "Christopher McDougall", Type: "book", Tags: []string{"Non-fiction", "Running"}},
			{ID: "m-gym-2", Title: "Discovery", Creator: "Daft Punk", Type: "music", Tags: []string{"Electronic", "House"}},
		},
	},
	{
		ID:          "gym-power",
		Title:       "Powerlifting Heavy",
		Description: "Heavy metal and intense focus for max lifts.",
		ActivityID:  "gym",
		Recommendations: []models.RecommendationItem{
			{ID: "m-gym-3", Title: "Master of Puppets", Creator: "Metallica", Type: "music", Tags: []string{"Metal", "Thrash"}},
			{ID: "f-gym-2", Title: "Rocky IV", Creator: "Sylvester Stallone", Type: "movie", Tags: []string{"Action", "Sports"}},
		},
	},

	// --- travel ---
	{
		ID:          "travel-roadtrip",
		Title:       "Classic Road Trip",
		Description: "Sing-along anthems and stories of adventure.",
		ActivityID:  "travel",
		Recommendations: []models.RecommendationItem{
			{ID: "b-travel-1", Title: "On the Road", Creator: "Jack Kerouac", Type: "book", Tags: []string{"Fiction", "Beat Generation"}},
			{ID: "m-travel-1", Title: "Rumours", Creator: "Fleetwood Mac", Type: "music", Tags: []string{"Rock", "Classic Rock"}},
		},
	},
	{
		ID:          "travel-flight",
		Title:       "Long Haul Flight",
		Description: "Immersive worlds to make the hours disappear.",
		ActivityID:  "travel",
		Recommendations: []models.RecommendationItem{
			{ID: "f-travel-1", Title: "Lost in Translation", Creator: "Sofia Coppola", Type: "movie", Tags: []string{"Drama", "Indie"}},
			{ID: "b-travel-2", Title: "Dune", Creator: "Frank Herbert", Type: "book", Tags: []string{"Sci-Fi", "Epic"}},
		},
	},
	{
		ID:          "travel-train",
		Title:       "Scenic Train Ride",
		Description: "Reflective and atmospheric companions for window gazing.",
		ActivityID:  "travel",
		Recommendations: []models.RecommendationItem{
			{ID: "m-travel-2", Title: "Illinois", Creator: "Sufjan Stevens", Type: "music", Tags: []string{"Indie Folk", "Baroque Pop"}},
			{ID: "f-travel-2", Title: "Before Sunrise", Creator: "Richard Linklater", Type: "movie", Tags: []string{"Romance", "Drama"}},
		},
	},

	// --- meditation ---
	{
		ID:          "meditation-mindfulness",
		Title:       "Mindfulness Basics",
		Description: "Guides to the present moment.",
		ActivityID:  "meditation",
		Recommendations: []models.RecommendationItem{
			{ID: "b-med-1", Title: "The Power of Now", Creator: "Eckhart Tolle", Type: "book", Tags: []string{"Spirituality", "Self-help"}},
			{ID: "m-med-1", Title: "Weightless", Creator: "Marconi Union", Type: "music", Tags: []string{"Ambient", "Relaxation"}},
		},
	},
	{
		ID:          "meditation-zen",
		Title:       "Zen Gardens",
		Description: "Minimalist aesthetics for emptying the mind.",
		ActivityID:  "meditation",
		Recommendations: []models.RecommendationItem{
			{ID: "b-med-2", Title: "Zen Mind, Beginner's Mind", Creator: "Shunryu Suzuki", Type: "book", Tags: []string{"Buddhism", "Philosophy"}},
			{ID: "m-med-2", Title: "Music for Zen Meditation", Creator: "Tony Scott", Type: "music", Tags: []string{"Jazz", "World"}},
		},
	},

	// --- healing ---
	{
		ID:          "healing-comfort",
		Title:       "Comfort & Warmth",
		Description: "Gentle stories and sounds for difficult days.",
		ActivityID:  "healing",
		Recommendations: []models.RecommendationItem{
			{ID: "f-heal-1", Title: "My Neighbor Totoro", Creator: "Hayao Miyazaki", Type: "movie", Tags: []string{"Animation", "Feel-good"}},
			{ID: "m-heal-1", Title: "Carrie & Lowell", Creator: "Sufjan Stevens", Type: "music", Tags: []string{"Folk", "Indie"}},
		},
	},

	// --- party ---
	{
		ID:          "party-house",
		Title:       "House Party Vibes",
		Description: "Groovy beats to get people moving.",
		ActivityID:  "party",
		Recommendations: []models.RecommendationItem{
			{ID: "m-party-1", Title: "Random Access Memories", Creator: "Daft Punk", Type: "music", Tags: []string{"Disco", "Funk"}},
			{ID: "f-party-1", Title: "Superbad", Creator: "Greg Mottola", Type: "movie", Tags: []string{"Comedy", "Teen"}},
		},
	},

	// --- creative ---
	{
		ID:          "creative-spark",
		Title:       "Spark of Genius",
		Description: "Works that break boundaries and ignite imagination.",
		ActivityID:  "creative",
		Recommendations: []models.RecommendationItem{
			{ID: "b-creat-1", Title: "Steal Like an Artist", Creator: "Austin Kleon", Type: "book", Tags: []string{"Creativity", "Art"}},
			{ID: "f-creat-1", Title: "Everything Everywhere All At Once", Creator: "Daniels", Type: "movie", Tags: []string{"Sci-Fi", "Absurdist"}},
		},
	},
}

// Activities lists the selectable activity categories.
func Activities() []models.ActivityCategory {
	return activities
}

// Templates returns every template, optionally filtered by activity id.
func Templates(activityID string) []models.TemplateItem {
	if activityID == "" {
		return templates
	}
	out := make([]models.TemplateItem, 0, len(templates))
	for _, t := range templates {
		if t.ActivityID == activityID {
			out = append(out, t)
		}
	}
	return out
}

// TemplateByID returns nil when no template matches.
func TemplateByID(id string) *models.TemplateItem {
	for i := range templates {
		if templates[i].ID == id {
			return &templates[i]
		}
	}
	return nil
}
