package onboarding

import (
	"testing"

	"lumina-workers/internal/common/errors"
	"lumina-workers/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func createTestFormData() models.FormData {
	f := InitialFormData()
	f.BusinessName = "Bean There"
	f.Industry = "Food & Beverage"
	f.Location = "Austin, USA"
	f.HasWebsite = boolPtr(true)
	f.WebsiteURL = "https://beanthere.example"
	f.Goal = models.GoalSales
	return f
}

func TestInitialFormData(t *testing.T) {
	f := InitialFormData()
	assert.Equal(t, ReachNational, f.Reach)
	assert.Nil(t, f.HasWebsite)
	assert.False(t, CanProceed(StepBasics, f))
}

func TestCanProceed(t *testing.T) {
	tests := []struct {
		name     string
		step     Step
		mutate   func(f *models.FormData)
		expected bool
	}{
		{"basics complete", StepBasics, func(f *models.FormData) {}, true},
		{"basics missing industry", StepBasics, func(f *models.FormData) { f.Industry = "" }, false},
		{"location missing", StepLocation, func(f *models.FormData) { f.Location = "" }, false},
		{"website undecided", StepDigital, func(f *models.FormData) { f.HasWebsite = nil }, false},
		{"website without url", StepDigital, func(f *models.FormData) { f.WebsiteURL = "" }, false},
		{"no website needs description", StepDigital, func(f *models.FormData) { f.HasWebsite = boolPtr(false) }, false},
		{"no website with description", StepDigital, func(f *models.FormData) {
			f.HasWebsite = boolPtr(false)
			f.BusinessDescription = "Small-batch roaster"
		}, true},
		{"goal missing", StepGoal, func(f *models.FormData) { f.Goal = "" }, false},
		{"past last step", Step(9), func(f *models.FormData) { *f = models.FormData{} }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestFormData()
			tt.mutate(&f)
			assert.Equal(t, tt.expected, CanProceed(tt.step, f))
		})
	}
}

func TestValidateComplete(t *testing.T) {
	require.NoError(t, ValidateComplete(createTestFormData()))

	f := createTestFormData()
	f.Location = ""
	err := ValidateComplete(f)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeValidationFailed))

	f = createTestFormData()
	f.Goal = "viral"
	assert.Error(t, ValidateComplete(f))
}

func TestValidateGoalText(t *testing.T) {
	assert.NoError(t, ValidateGoalText("sell more coffee"))
	assert.True(t, errors.HasCode(ValidateGoalText("   \n"), errors.ErrCodeValidationFailed))
}
