package wellness

import (
	"fmt"
	"math/rand"
	"time"
)

// Mock analytics. There is no real usage tracking behind any of this; the
// dataset and nudges are fixed and only delivery is delayed to feel like a
// remote analysis.

const (
	AnalyzeLatency = 1500 * time.Millisecond
	NudgeLatency   = 1000 * time.Millisecond
)

type CategoryShare struct {
	Category   string
	Percentage int
}

type AppUsage struct {
	Name     string
	Hours    float64
	Category string
}

// Habits is the habit-analysis result shown in the wellness panel.
type Habits struct {
	DailyScreenHours  float64
	WeeklyScreenHours float64
	ScreenTrend       string
	Breakdown         []CategoryShare
	Apps              []AppUsage
	DailyPickups      int
	WeeklyPickups     int
	PickupTrend       string
	BedtimeDelayMin   int
	Recommendations   []string
}

var mockHabits = Habits{
	DailyScreenHours:  6.2,
	WeeklyScreenHours: 43.5,
	ScreenTrend:       "increasing",
	Breakdown: []CategoryShare{
		{Category: "Social Media", Percentage: 35},
		{Category: "Productivity", Percentage: 25},
		{Category: "Entertainment", Percentage: 30},
		{Category: "Other", Percentage: 10},
	},
	Apps: []AppUsage{
		{Name: "Instagram", Hours: 1.8, Category: "Social Media"},
		{Name: "Gmail", Hours: 1.2, Category: "Productivity"},
		{Name: "YouTube", Hours: 1.5, Category: "Entertainment"},
		{Name: "Spotify", Hours: 0.8, Category: "Entertainment"},
	},
	DailyPickups:    42,
	WeeklyPickups:   294,
	PickupTrend:     "stable",
	BedtimeDelayMin: 32,
	Recommendations: []string{
		"Consider setting app time limits for Instagram",
		"Try to reduce phone pickups during work hours",
		"Avoid screen time 1 hour before bed",
	},
}

var nudges = []string{
	"Taking a 20-minute nature walk could help reset your focus and reduce digital fatigue.",
	"Your evening screen time has increased by 30% this week. Consider reading a book instead tonight.",
	"You tend to check social media most frequently between 2-4pm. Try setting your phone to Do Not Disturb during this time.",
	"Your most productive hours are in the morning, but you often start the day with 30+ minutes of social media. Consider a different morning routine.",
}

// AnalyzeHabits returns the habit dataset.
func AnalyzeHabits() Habits {
	return mockHabits
}

// Nudge picks a personalized nudge from the rotation.
func Nudge() string {
	return nudges[rand.Intn(len(nudges))]
}

// RespondTo produces a canned response for a free-text concern.
func RespondTo(concern string) string {
	return fmt.Sprintf(
		"Based on your concern about %q, consider setting specific boundaries around your digital usage in this area. Start with small changes and track your progress daily.",
		concern,
	)
}
