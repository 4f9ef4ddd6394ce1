package onboarding

import (
	apperrors "github.com/MaybeLow/OfficeAI/internal/errors"
)

// Transition applies ev to s and returns the resulting state. finished is
// true when ev completed a terminal step; the state is then returned as-is.
// Transition is pure: s is never modified in place.
//
// The offline branch is decided here. An offline run that continues from
// the recommendation picker is redirected to the offline notice, skipping
// data tracking, personal info and rating. Any other exit from the picker
// leaves offline mode.
func Transition(s SessionState, ev Event) (next SessionState, finished bool, err error) {
	if ev == nil {
		return s, false, misuse(s, s.CurrentStep, "nil event")
	}
	if ev.Step() != s.CurrentStep {
		return s, false, apperrors.StepError{Current: s.CurrentStep.String(), Event: ev.Step().String()}
	}

	next = s
	switch e := ev.(type) {
	case WelcomeChosen:
		switch e.Choice {
		case ChoiceOffline:
			next.Offline = true
			next.CurrentStep = StepRecommendations
		case ChoiceSignup:
			next.CurrentStep = StepSignup
		case ChoiceLogin:
			next.CurrentStep = StepRecommendations
		default:
			return s, false, misuse(s, ev.Step(), "unknown choice "+e.Choice.String())
		}

	case SignupCompleted:
		next.CurrentStep = StepRecommendations

	case RecommendationsSubmitted:
		if e.Next.step == 0 {
			return s, false, misuse(s, ev.Step(), "missing next step")
		}
		next.Recommendations = e.Selected
		if s.Offline && e.Next == RecommendationsContinue {
			next.CurrentStep = StepOfflineNotice
		} else {
			next.Offline = false
			next.CurrentStep = e.Next.step
		}

	case DataTrackingSubmitted:
		if e.Next.step == 0 {
			return s, false, misuse(s, ev.Step(), "missing next step")
		}
		next.DataTracking = e.Selected
		next.CurrentStep = e.Next.step

	case PersonalInfoSubmitted:
		if e.Next.step == 0 {
			return s, false, misuse(s, ev.Step(), "missing next step")
		}
		next.PersonalInfo = e.Text
		next.CurrentStep = e.Next.step

	case RatingCompleted, OfflineNoticeCompleted:
		return s, true, nil
	}

	if !Allows(s.CurrentStep, next.CurrentStep) {
		return s, false, misuse(s, ev.Step(), "transition to "+next.CurrentStep.String()+" not registered")
	}
	return next, false, nil
}

// FinishedOffline reports the mode handed to the host when the wizard
// completes from the given terminal step.
func FinishedOffline(terminal Step) bool {
	return terminal == StepOfflineNotice
}

func misuse(s SessionState, event Step, reason string) error {
	return apperrors.StepError{Current: s.CurrentStep.String(), Event: event.String(), Reason: reason}
}
