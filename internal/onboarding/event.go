package onboarding

// Event is something a view reports when the user finishes with it. Each
// concrete event belongs to exactly one step. The set of events is closed.
type Event interface {
	// Step returns the step the event is emitted from.
	Step() Step
	isEvent()
}

// WelcomeChosen is emitted by the welcome screen.
type WelcomeChosen struct {
	Choice Choice
}

// SignupCompleted is emitted by the sign-up screen once a provider is picked.
type SignupCompleted struct {
	// Provider is the button the user pressed. It is recorded for logging
	// only; no identity flow happens behind it.
	Provider string
}

// RecommendationsSubmitted is emitted by the recommendation picker.
type RecommendationsSubmitted struct {
	Selected Selection
	Next     RecommendationsNext
}

// DataTrackingSubmitted is emitted by the data-tracking picker.
type DataTrackingSubmitted struct {
	Selected Selection
	Next     DataTrackingNext
}

// PersonalInfoSubmitted is emitted by the personal-info text entry.
type PersonalInfoSubmitted struct {
	Text string
	Next PersonalInfoNext
}

// RatingCompleted is emitted by the rating screen.
type RatingCompleted struct{}

// OfflineNoticeCompleted is emitted by the offline notice.
type OfflineNoticeCompleted struct{}

func (WelcomeChosen) Step() Step            { return StepWelcome }
func (SignupCompleted) Step() Step          { return StepSignup }
func (RecommendationsSubmitted) Step() Step { return StepRecommendations }
func (DataTrackingSubmitted) Step() Step    { return StepDataTracking }
func (PersonalInfoSubmitted) Step() Step    { return StepPersonalInfo }
func (RatingCompleted) Step() Step          { return StepRating }
func (OfflineNoticeCompleted) Step() Step   { return StepOfflineNotice }

func (WelcomeChosen) isEvent()            {}
func (SignupCompleted) isEvent()          {}
func (RecommendationsSubmitted) isEvent() {}
func (DataTrackingSubmitted) isEvent()    {}
func (PersonalInfoSubmitted) isEvent()    {}
func (RatingCompleted) isEvent()          {}
func (OfflineNoticeCompleted) isEvent()   {}

// RecommendationsNext is a step the recommendation picker may ask for.
// Only RecommendationsBack and RecommendationsContinue are valid.
type RecommendationsNext struct{ step Step }

// DataTrackingNext is a step the data-tracking picker may ask for.
// Only DataTrackingBack and DataTrackingContinue are valid.
type DataTrackingNext struct{ step Step }

// PersonalInfoNext is a step the personal-info screen may ask for.
// Only PersonalInfoBack and PersonalInfoContinue are valid.
type PersonalInfoNext struct{ step Step }

var (
	RecommendationsBack     = RecommendationsNext{StepWelcome}
	RecommendationsContinue = RecommendationsNext{StepDataTracking}

	DataTrackingBack     = DataTrackingNext{StepRecommendations}
	DataTrackingContinue = DataTrackingNext{StepPersonalInfo}

	PersonalInfoBack     = PersonalInfoNext{StepDataTracking}
	PersonalInfoContinue = PersonalInfoNext{StepRating}
)

// Step returns the requested step; zero for the zero value.
func (n RecommendationsNext) Step() Step { return n.step }

// Step returns the requested step; zero for the zero value.
func (n DataTrackingNext) Step() Step { return n.step }

// Step returns the requested step; zero for the zero value.
func (n PersonalInfoNext) Step() Step { return n.step }

// RecommendationsNextFor maps a step name used by scripted input onto the
// picker's typed target.
func RecommendationsNextFor(s Step) (RecommendationsNext, bool) {
	switch s {
	case RecommendationsBack.step:
		return RecommendationsBack, true
	case RecommendationsContinue.step:
		return RecommendationsContinue, true
	}
	return RecommendationsNext{}, false
}

// DataTrackingNextFor is the DataTrackingNext counterpart of RecommendationsNextFor.
func DataTrackingNextFor(s Step) (DataTrackingNext, bool) {
	switch s {
	case DataTrackingBack.step:
		return DataTrackingBack, true
	case DataTrackingContinue.step:
		return DataTrackingContinue, true
	}
	return DataTrackingNext{}, false
}

// PersonalInfoNextFor is the PersonalInfoNext counterpart of RecommendationsNextFor.
func PersonalInfoNextFor(s Step) (PersonalInfoNext, bool) {
	switch s {
	case PersonalInfoBack.step:
		return PersonalInfoBack, true
	case PersonalInfoContinue.step:
		return PersonalInfoContinue, true
	}
	return PersonalInfoNext{}, false
}
