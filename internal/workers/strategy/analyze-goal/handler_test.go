// internal/workers/strategy/analyze-goal/handler_test.go
package analyzegoal

import (
	"context"
	"errors"
	"testing"
	"time"

	"lumina-workers/internal/catalog"
	apperrors "lumina-workers/internal/common/errors"
	"lumina-workers/internal/common/logger"
	"lumina-workers/internal/generator"
	"lumina-workers/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

type mockTextModel struct {
	mock.Mock
}

func (m *mockTextModel) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

type mockGenerator struct {
	mock.Mock
}

func (m *mockGenerator) AnalyzeGoal(ctx context.Context, text string) (generator.GoalAnalysis, error) {
	args := m.Called(ctx, text)
	return args.Get(0).(generator.GoalAnalysis), args.Error(1)
}

func (m *mockGenerator) GenerateStrategy(ctx context.Context, form models.FormData) (*models.DashboardData, error) {
	args := m.Called(ctx, form)
	d, _ := args.Get(0).(*models.DashboardData)
	return d, args.Error(1)
}

func createTestConfig() *Config {
	return &Config{Timeout: 3 * time.Second}
}

func createTestHandler(t *testing.T, model generator.TextModel) *Handler {
	log := logger.NewTestLogger(t)
	gen := generator.NewService(model, catalog.Seed(), generator.Options{}, log)
	return NewHandler(createTestConfig(), gen, log)
}

// ==========================
// Execute
// ==========================

func TestExecute(t *testing.T) {
	tests := []struct {
		name             string
		modelResponse    string
		modelErr         error
		expectedCategory models.GoalType
		expectedTitle    string
	}{
		{
			name:             "model classifies the goal",
			modelResponse:    `{"recommendedGoal": "sales", "refinedGoal": "Sell 500 Keyboards In Q3"}`,
			expectedCategory: models.GoalSales,
			expectedTitle:    "Sell 500 Keyboards In Q3",
		},
		{
			name:             "fenced response is unwrapped",
			modelResponse:    "```json\n{\"recommendedGoal\": \"community\", \"refinedGoal\": \"Grow A Maker Community\"}\n```",
			expectedCategory: models.GoalCommunity,
			expectedTitle:    "Grow A Maker Community",
		},
		{
			name:             "unknown category falls back",
			modelResponse:    `{"recommendedGoal": "virality", "refinedGoal": "Go Viral"}`,
			expectedCategory: models.GoalAwareness,
			expectedTitle:    "Maximize Brand Potential",
		},
		{
			name:             "model error falls back",
			modelErr:         errors.New("503 from upstream"),
			expectedCategory: models.GoalAwareness,
			expectedTitle:    "Maximize Brand Potential",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model := &mockTextModel{}
			model.On("Generate", mock.Anything, mock.Anything).Return(tt.modelResponse, tt.modelErr).Once()
			h := createTestHandler(t, model)

			output, err := h.execute(context.Background(), &Input{GoalDescription: "sell more keyboards this summer"})
			require.NoError(t, err)

			assert.Equal(t, tt.expectedCategory, output.Category)
			assert.Equal(t, tt.expectedCategory.Label(), output.CategoryName)
			assert.Equal(t, tt.expectedTitle, output.RefinedTitle)
			model.AssertExpectations(t)
		})
	}
}

func TestExecute_EmptyGoalNeverCallsModel(t *testing.T) {
	model := &mockTextModel{}
	h := createTestHandler(t, model)

	_, err := h.execute(context.Background(), &Input{GoalDescription: "   "})

	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeValidationFailed))
	model.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}

func TestExecute_GeneratorErrorIsGenerationFailed(t *testing.T) {
	gen := &mockGenerator{}
	gen.On("AnalyzeGoal", mock.Anything, "launch a podcast").
		Return(generator.GoalAnalysis{}, context.DeadlineExceeded).Once()
	h := NewHandler(createTestConfig(), gen, logger.NewTestLogger(t))

	_, err := h.execute(context.Background(), &Input{GoalDescription: "launch a podcast"})

	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeGenerationFailed))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
