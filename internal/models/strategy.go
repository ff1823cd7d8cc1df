package models

import (
	"encoding/json"
	"fmt"
)

// LegacyIdeaDescription is attached to content ideas stored as plain strings.
const LegacyIdeaDescription = "Engaging content tailored to your audience."

type BrandProfile struct {
	Story   string   `json:"story"`
	Mission string   `json:"mission"`
	Values  []string `json:"values"`
	Tone    string   `json:"tone"`
}

type ContentIdea struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// UnmarshalJSON accepts either an object or a bare string title.
func (c *ContentIdea) UnmarshalJSON(data []byte) error {
	var title string
	if err := json.Unmarshal(data, &title); err == nil {
		*c = ContentIdea{Title: title, Description: LegacyIdeaDescription}
		return nil
	}

	type plain ContentIdea
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("content idea: %w", err)
	}
	*c = ContentIdea(p)
	return nil
}

type Strategy struct {
	PlatformName   string        `json:"platformName"`
	TargetRange    string        `json:"targetRange"`
	Frequency      string        `json:"frequency"`
	Reasoning      string        `json:"reasoning"`
	ContentIdeas   []ContentIdea `json:"contentIdeas"`
	NorthStar      string        `json:"northStar"`
	GoalReasoning  string        `json:"goalReasoning"`
	CreatorPersona string        `json:"creatorPersona"`
}

// DashboardData is the generated document shown on the dashboard.
type DashboardData struct {
	Brand    BrandProfile       `json:"brand"`
	Strategy Strategy           `json:"strategy"`
	Creators []ScoredInfluencer `json:"creators"`
}

// Clone returns a copy that shares no slices with d.
func (d *DashboardData) Clone() *DashboardData {
	if d == nil {
		return nil
	}
	out := *d
	out.Brand.Values = append([]string(nil), d.Brand.Values...)
	out.Strategy.ContentIdeas = append([]ContentIdea(nil), d.Strategy.ContentIdeas...)
	out.Creators = append([]ScoredInfluencer(nil), d.Creators...)
	return &out
}
