// Package validation checks documents returned by the strategy generator
// against JSON schemas before they are decoded into domain types.
package validation

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Goal ids accepted from the generator.
var GoalCategories = []interface{}{"awareness", "launch", "sales", "ugc", "event", "community"}

// Platforms the generator may choose between.
var StrategyPlatforms = []interface{}{"Instagram", "YouTube", "TikTok"}

// GoalAnalysisSchema describes the goal analysis document.
var GoalAnalysisSchema = map[string]interface{}{
	"type":     "object",
	"required": []interface{}{"recommendedGoal", "refinedGoal"},
	"properties": map[string]interface{}{
		"recommendedGoal": map[string]interface{}{"type": "string", "enum": GoalCategories},
		"refinedGoal":     map[string]interface{}{"type": "string", "minLength": 1},
	},
}

// StrategySchema describes the brand + strategy document. Content ideas may be
// plain strings or title/description objects.
var StrategySchema = map[string]interface{}{
	"type":     "object",
	"required": []interface{}{"brand", "strategy"},
	"properties": map[string]interface{}{
		"brand": map[string]interface{}{
			"type":     "object",
			"required": []interface{}{"story", "mission", "values", "tone"},
			"properties": map[string]interface{}{
				"story":   map[string]interface{}{"type": "string"},
				"mission": map[string]interface{}{"type": "string"},
				"values":  map[string]interface{}{"type": "array", "items": map[string]interface{}{"type": "string"}},
				"tone":    map[string]interface{}{"type": "string"},
			},
		},
		"strategy": map[string]interface{}{
			"type":     "object",
			"required": []interface{}{"platformName", "targetRange", "frequency", "reasoning", "contentIdeas"},
			"properties": map[string]interface{}{
				"platformName":   map[string]interface{}{"type": "string", "enum": StrategyPlatforms},
				"targetRange":    map[string]interface{}{"type": "string"},
				"frequency":      map[string]interface{}{"type": "string"},
				"reasoning":      map[string]interface{}{"type": "string"},
				"northStar":      map[string]interface{}{"type": "string"},
				"goalReasoning":  map[string]interface{}{"type": "string"},
				"creatorPersona": map[string]interface{}{"type": "string"},
				"contentIdeas": map[string]interface{}{
					"type": "array",
					"items": map[string]interface{}{
						"oneOf": []interface{}{
							map[string]interface{}{"type": "string"},
							map[string]interface{}{
								"type":     "object",
								"required": []interface{}{"title"},
								"properties": map[string]interface{}{
									"title":       map[string]interface{}{"type": "string"},
									"description": map[string]interface{}{"type": "string"},
								},
							},
						},
					},
				},
			},
		},
	},
}

type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// Summary joins the errors into a single line for logs.
func (r *ValidationResult) Summary() string {
	parts := make([]string, len(r.Errors))
	for i, e := range r.Errors {
		parts[i] = fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return strings.Join(parts, "; ")
}

// Validate checks an already decoded document against schema.
func Validate(schema map[string]interface{}, document interface{}) (*ValidationResult, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewGoLoader(schema),
		gojsonschema.NewGoLoader(document),
	)
	if err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}
	return toResult(result), nil
}

// ValidateJSON checks raw JSON bytes against schema.
func ValidateJSON(schema map[string]interface{}, raw []byte) (*ValidationResult, error) {
	if !json.Valid(raw) {
		return &ValidationResult{Errors: []ValidationError{{
			Field:   "(root)",
			Message: "document is not valid JSON",
			Code:    "INVALID_JSON",
		}}}, nil
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewGoLoader(schema),
		gojsonschema.NewBytesLoader(raw),
	)
	if err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}
	return toResult(result), nil
}

func toResult(result *gojsonschema.Result) *ValidationResult {
	out := &ValidationResult{Valid: result.Valid()}
	for _, desc := range result.Errors() {
		out.Errors = append(out.Errors, ValidationError{
			Field:   desc.Field(),
			Message: desc.Description(),
			Code:    strings.ToUpper(desc.Type()),
		})
	}
	return out
}
