// Package community holds the mock community features: saved-water
// leaderboards and group goals. Data is static sample data; there is no
// multi-user backend.
package community

import "sort"

// GroupType classifies a community group.
type GroupType string

const (
	// GroupSociety is a residential society or neighborhood group.
	GroupSociety GroupType = "society"

	// GroupSchool is a school or campus group.
	GroupSchool GroupType = "school"

	// GroupOffice is a workplace group.
	GroupOffice GroupType = "office"
)

// Group is a community water-saving group working toward a shared goal.
type Group struct {
	// ID uniquely identifies the group.
	ID string `json:"id"`

	// Name is the display name.
	Name string `json:"name"`

	// Type classifies the group.
	Type GroupType `json:"type"`

	// Members is the number of participants.
	Members int `json:"members"`

	// WaterSaved is the liters saved so far toward the goal.
	WaterSaved int `json:"water_saved"`

	// Goal is the group's liters-saved target.
	Goal int `json:"goal"`
}

// Progress returns the group's goal completion as a percentage, capped at
// 100. A zero goal yields zero rather than dividing by zero.
func (g Group) Progress() float64 {
	if g.Goal <= 0 {
		return 0
	}
	p := float64(g.WaterSaved) / float64(g.Goal) * 100
	if p > 100 {
		return 100
	}
	return p
}

// LeaderboardEntry is one participant's standing.
type LeaderboardEntry struct {
	// Rank is the 1-based position after ranking. Zero before Rank runs.
	Rank int `json:"rank"`

	// Name is the participant's display name.
	Name string `json:"name"`

	// WaterSaved is the participant's total liters saved.
	WaterSaved int `json:"water_saved"`

	// Streak is the participant's consecutive days of tracked savings.
	Streak int `json:"streak"`
}

// Rank orders entries by liters saved, highest first, and assigns 1-based
// ranks. The sort is stable, so participants with equal savings keep
// their input order. The input slice is not modified.
func Rank(entries []LeaderboardEntry) []LeaderboardEntry {
	ranked := make([]LeaderboardEntry, len(entries))
	copy(ranked, entries)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].WaterSaved > ranked[j].WaterSaved
	})

	for i := range ranked {
		ranked[i].Rank = i + 1
	}

	return ranked
}

// SampleGroups returns the demo community groups.
func SampleGroups() []Group {
	return []Group{
		{ID: "green-valley", Name: "Green Valley Society", Type: GroupSociety, Members: 45, WaterSaved: 12500, Goal: 20000},
		{ID: "sunrise-school", Name: "Sunrise Public School", Type: GroupSchool, Members: 230, WaterSaved: 31000, Goal: 30000},
		{ID: "techpark-office", Name: "TechPark Office Campus", Type: GroupOffice, Members: 120, WaterSaved: 8200, Goal: 25000},
	}
}

// SampleLeaderboard returns the demo leaderboard, unranked.
func SampleLeaderboard() []LeaderboardEntry {
	return []LeaderboardEntry{
		{Name: "Priya S.", WaterSaved: 1240, Streak: 21},
		{Name: "Marcus T.", WaterSaved: 980, Streak: 14},
		{Name: "Aiko N.", WaterSaved: 1505, Streak: 30},
		{Name: "Jordan W.", WaterSaved: 770, Streak: 9},
		{Name: "Fatima R.", WaterSaved: 1240, Streak: 17},
	}
}
