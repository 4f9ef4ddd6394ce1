package onboarding

import "slices"

// View identifies the screen a step activates.
type View uint8

const (
	ViewWelcome View = iota + 1
	ViewSignUp
	ViewRecommendationSelection
	ViewDataTracking
	ViewPersonalInfo
	ViewRating
	ViewOfflineModeNotice
)

// String returns the screen name.
func (v View) String() string {
	switch v {
	case ViewWelcome:
		return "WelcomeScreen"
	case ViewSignUp:
		return "SignUpScreen"
	case ViewRecommendationSelection:
		return "RecommendationSelectionScreen"
	case ViewDataTracking:
		return "DataTrackingScreen"
	case ViewPersonalInfo:
		return "PersonalInfoScreen"
	case ViewRating:
		return "RatingScreen"
	case ViewOfflineModeNotice:
		return "OfflineModeNotice"
	}
	return "UnknownScreen"
}

// StepSpec is one row of the step registry.
type StepSpec struct {
	Step Step
	View View
	// Next lists every step the controller may move to from Step.
	Next []Step
}

// Terminal reports whether the step has no outgoing transitions.
func (s StepSpec) Terminal() bool {
	return len(s.Next) == 0
}

var registry = [...]StepSpec{
	StepWelcome: {
		Step: StepWelcome,
		View: ViewWelcome,
		Next: []Step{StepSignup, StepRecommendations},
	},
	StepSignup: {
		Step: StepSignup,
		View: ViewSignUp,
		Next: []Step{StepRecommendations},
	},
	StepRecommendations: {
		Step: StepRecommendations,
		View: ViewRecommendationSelection,
		Next: []Step{StepWelcome, StepDataTracking, StepOfflineNotice},
	},
	StepDataTracking: {
		Step: StepDataTracking,
		View: ViewDataTracking,
		Next: []Step{StepRecommendations, StepPersonalInfo},
	},
	StepPersonalInfo: {
		Step: StepPersonalInfo,
		View: ViewPersonalInfo,
		Next: []Step{StepDataTracking, StepRating},
	},
	StepRating: {
		Step: StepRating,
		View: ViewRating,
	},
	StepOfflineNotice: {
		Step: StepOfflineNotice,
		View: ViewOfflineModeNotice,
	},
}

// Lookup returns the registry row for step.
func Lookup(step Step) (StepSpec, bool) {
	if !step.Valid() {
		return StepSpec{}, false
	}
	spec := registry[step]
	spec.Next = slices.Clone(spec.Next)
	return spec, true
}

// Allows reports whether the registry permits moving from one step to another.
func Allows(from, to Step) bool {
	if !from.Valid() {
		return false
	}
	return slices.Contains(registry[from].Next, to)
}

// Steps returns every step in declaration order.
func Steps() []Step {
	steps := make([]Step, 0, len(registry)-1)
	for s := StepWelcome; s <= StepOfflineNotice; s++ {
		steps = append(steps, s)
	}
	return steps
}
