package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentIdea_UnmarshalNormalizesLegacyStrings(t *testing.T) {
	raw := `{"platformName":"TikTok","contentIdeas":["Day in the life",{"title":"Unboxing","description":"First look."}]}`

	var s Strategy
	require.NoError(t, json.Unmarshal([]byte(raw), &s))

	require.Len(t, s.ContentIdeas, 2)
	assert.Equal(t, ContentIdea{Title: "Day in the life", Description: LegacyIdeaDescription}, s.ContentIdeas[0])
	assert.Equal(t, ContentIdea{Title: "Unboxing", Description: "First look."}, s.ContentIdeas[1])
}

func TestContentIdea_UnmarshalRejectsNumbers(t *testing.T) {
	var c ContentIdea
	assert.Error(t, json.Unmarshal([]byte(`42`), &c))
}

func TestDashboardData_CloneIsIndependent(t *testing.T) {
	d := &DashboardData{
		Brand:    BrandProfile{Values: []string{"Quality"}},
		Strategy: Strategy{ContentIdeas: []ContentIdea{{Title: "A"}}},
	}

	c := d.Clone()
	c.Brand.Values[0] = "Speed"
	c.Strategy.ContentIdeas[0].Title = "B"

	assert.Equal(t, "Quality", d.Brand.Values[0])
	assert.Equal(t, "A", d.Strategy.ContentIdeas[0].Title)
	assert.Nil(t, (*DashboardData)(nil).Clone())
}

func TestGoalType_Label(t *testing.T) {
	assert.Equal(t, "Generate UGC", GoalUGC.Label())
	assert.Equal(t, "mystery", GoalType("mystery").Label())
	assert.True(t, GoalEvent.Valid())
	assert.False(t, GoalType("").Valid())
}
