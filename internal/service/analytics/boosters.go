package analytics

import "github.com/calmbird/moodtrack-backend/internal/domain"

// boosterCatalog is the static list of short mood-lifting activities shown
// next to recommendations. Selection and execution happen in the consumer.
var boosterCatalog = []domain.Booster{
	{
		Title:       "Box Breathing",
		Icon:        "wind",
		Duration:    "3 min",
		Category:    "calm",
		Description: "A slow breathing cycle that settles the nervous system.",
		Steps: []string{
			"Breathe in for 4 counts",
			"Hold for 4 counts",
			"Breathe out for 4 counts",
			"Hold for 4 counts, repeat 6 times",
		},
	},
	{
		Title:       "Gratitude Trio",
		Icon:        "heart",
		Duration:    "5 min",
		Category:    "reflect",
		Description: "Write down three small things that went right today.",
		Steps: []string{
			"Grab your notes or a piece of paper",
			"List three specific good moments",
			"For each, note why it happened",
		},
	},
	{
		Title:       "Walk Around the Block",
		Icon:        "footprints",
		Duration:    "10 min",
		Category:    "move",
		Description: "Light movement and a change of scenery reset a heavy mood.",
		Steps: []string{
			"Put on comfortable shoes",
			"Walk one loop without your phone",
			"Name five things you notice on the way",
		},
	},
	{
		Title:       "Reach Out",
		Icon:        "message-circle",
		Duration:    "5 min",
		Category:    "connect",
		Description: "Send a short message to someone you have not talked to lately.",
		Steps: []string{
			"Pick one person who came to mind this week",
			"Send a two-line check-in, no agenda",
		},
	},
	{
		Title:       "Desk Stretch",
		Icon:        "activity",
		Duration:    "4 min",
		Category:    "move",
		Description: "Release neck and shoulder tension that builds up while sitting.",
		Steps: []string{
			"Roll your shoulders back ten times",
			"Tilt your head to each side for 20 seconds",
			"Stand and reach overhead for 30 seconds",
		},
	},
	{
		Title:       "One-Song Reset",
		Icon:        "music",
		Duration:    "4 min",
		Category:    "calm",
		Description: "Play one song you love and do nothing else until it ends.",
		Steps: []string{
			"Pick a song that reliably lifts you",
			"Headphones on, eyes closed",
			"Just listen — no scrolling",
		},
	},
}

// BoosterCatalog returns the static booster catalog. The returned slice is
// shared; callers must treat it as read-only.
func BoosterCatalog() []domain.Booster {
	return boosterCatalog
}
