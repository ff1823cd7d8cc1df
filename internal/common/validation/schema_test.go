package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Goal analysis
// ==========================

func TestValidateJSON_GoalAnalysis(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		valid bool
		code  string
	}{
		{"valid", `{"recommendedGoal":"sales","refinedGoal":"Sell More Coffee"}`, true, ""},
		{"unknown category", `{"recommendedGoal":"growth","refinedGoal":"Grow"}`, false, "ENUM"},
		{"missing title", `{"recommendedGoal":"ugc"}`, false, "REQUIRED"},
		{"not json", `{"recommendedGoal":`, false, "INVALID_JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := ValidateJSON(GoalAnalysisSchema, []byte(tt.raw))
			require.NoError(t, err)
			assert.Equal(t, tt.valid, res.Valid)
			if !tt.valid {
				require.NotEmpty(t, res.Errors)
				assert.Equal(t, tt.code, res.Errors[0].Code)
				assert.NotEmpty(t, res.Summary())
			}
		})
	}
}

// ==========================
// Strategy document
// ==========================

func createTestStrategyDocument(ideas []interface{}) map[string]interface{} {
	return map[string]interface{}{
		"brand": map[string]interface{}{
			"story":   "Roasted in Austin.",
			"mission": "Better mornings.",
			"values":  []interface{}{"Quality", "Trust"},
			"tone":    "Warm",
		},
		"strategy": map[string]interface{}{
			"platformName": "TikTok",
			"targetRange":  "10k - 50k",
			"frequency":    "3 posts / week",
			"reasoning":    "Short video converts.",
			"contentIdeas": ideas,
		},
	}
}

func TestValidate_StrategyAcceptsMixedContentIdeas(t *testing.T) {
	doc := createTestStrategyDocument([]interface{}{
		"Behind the roast",
		map[string]interface{}{"title": "Latte art", "description": "Slow motion pours."},
	})

	res, err := Validate(StrategySchema, doc)
	require.NoError(t, err)
	assert.True(t, res.Valid, res.Summary())
}

func TestValidate_StrategyRejectsUnknownPlatform(t *testing.T) {
	doc := createTestStrategyDocument([]interface{}{})
	doc["strategy"].(map[string]interface{})["platformName"] = "MySpace"

	res, err := Validate(StrategySchema, doc)
	require.NoError(t, err)
	assert.False(t, res.Valid)
	assert.Contains(t, res.Summary(), "platformName")
}

func TestValidate_StrategyRequiresBrand(t *testing.T) {
	doc := createTestStrategyDocument([]interface{}{})
	delete(doc, "brand")

	res, err := Validate(StrategySchema, doc)
	require.NoError(t, err)
	assert.False(t, res.Valid)
}
