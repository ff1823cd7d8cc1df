// Package onboarding holds the wizard's step rules and option lists.
package onboarding

import (
	"fmt"
	"strings"

	"lumina-workers/internal/common/errors"
	"lumina-workers/internal/models"
)

type Step int

const (
	StepBasics Step = iota
	StepLocation
	StepDigital
	StepGoal
)

// Steps lists the wizard in order.
var Steps = []Step{StepBasics, StepLocation, StepDigital, StepGoal}

func (s Step) String() string {
	switch s {
	case StepBasics:
		return "basics"
	case StepLocation:
		return "location"
	case StepDigital:
		return "digital"
	case StepGoal:
		return "goal"
	}
	return fmt.Sprintf("step(%d)", int(s))
}

var Industries = []string{
	"Technology", "Fashion & Beauty", "Food & Beverage", "Health & Wellness",
	"Travel & Hospitality", "Finance", "Education", "E-commerce", "Other",
}

const (
	ReachLocal    = "Local"
	ReachNational = "National"
	ReachGlobal   = "Global"
)

var ReachOptions = []string{ReachLocal, ReachNational, ReachGlobal}

// InitialFormData is the wizard's starting state.
func InitialFormData() models.FormData {
	return models.FormData{Reach: ReachNational}
}

// CanProceed reports whether the answers allow leaving step. Steps past the
// last one always allow it.
func CanProceed(step Step, f models.FormData) bool {
	return missingField(step, f) == ""
}

func missingField(step Step, f models.FormData) string {
	switch step {
	case StepBasics:
		if f.BusinessName == "" {
			return "businessName"
		}
		if f.Industry == "" {
			return "industry"
		}
	case StepLocation:
		if f.Location == "" {
			return "location"
		}
	case StepDigital:
		if f.HasWebsite == nil {
			return "hasWebsite"
		}
		if *f.HasWebsite && f.WebsiteURL == "" {
			return "websiteUrl"
		}
		if !*f.HasWebsite && f.BusinessDescription == "" {
			return "businessDescription"
		}
	case StepGoal:
		if f.Goal == "" {
			return "goal"
		}
	}
	return ""
}

// ValidateComplete checks every step and reports the first missing answer.
func ValidateComplete(f models.FormData) error {
	for _, s := range Steps {
		if field := missingField(s, f); field != "" {
			return errors.NewValidationError(field, fmt.Sprintf("%s step is incomplete", s))
		}
	}
	if !f.Goal.Valid() {
		return errors.NewValidationError("goal", fmt.Sprintf("unknown goal %q", f.Goal))
	}
	return nil
}

// ValidateGoalText rejects an empty goal description before it is analyzed.
func ValidateGoalText(text string) error {
	if strings.TrimSpace(text) == "" {
		return errors.NewValidationError("goalDescription", "goal description is empty")
	}
	return nil
}
