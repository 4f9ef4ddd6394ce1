package onboarding

import "fmt"

// Step identifies one stage of the onboarding wizard.
// The zero value is not a valid step.
type Step uint8

const (
	StepWelcome Step = iota + 1
	StepSignup
	StepRecommendations
	StepDataTracking
	StepPersonalInfo
	StepRating
	StepOfflineNotice
)

var stepNames = [...]string{
	StepWelcome:         "welcome",
	StepSignup:          "signup",
	StepRecommendations: "recommendations",
	StepDataTracking:    "dataTracking",
	StepPersonalInfo:    "personalInfo",
	StepRating:          "rating",
	StepOfflineNotice:   "offlineNotice",
}

// String returns the wire name of the step, e.g. "dataTracking".
func (s Step) String() string {
	if s.Valid() {
		return stepNames[s]
	}
	return fmt.Sprintf("Step(%d)", uint8(s))
}

// Valid reports whether s is one of the declared steps.
func (s Step) Valid() bool {
	return s >= StepWelcome && s <= StepOfflineNotice
}

// Terminal reports whether completing s ends the wizard.
func (s Step) Terminal() bool {
	return s == StepRating || s == StepOfflineNotice
}

// ParseStep looks a step up by its wire name.
func ParseStep(name string) (Step, error) {
	for s := StepWelcome; s <= StepOfflineNotice; s++ {
		if stepNames[s] == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown step %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (s Step) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("cannot marshal invalid step %d", uint8(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Step) UnmarshalText(text []byte) error {
	parsed, err := ParseStep(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Choice is the account path picked on the welcome screen.
type Choice uint8

const (
	ChoiceLogin Choice = iota + 1
	ChoiceSignup
	ChoiceOffline
)

// String returns the wire name of the choice.
func (c Choice) String() string {
	switch c {
	case ChoiceLogin:
		return "login"
	case ChoiceSignup:
		return "signup"
	case ChoiceOffline:
		return "offline"
	}
	return fmt.Sprintf("Choice(%d)", uint8(c))
}

// ParseChoice looks a choice up by its wire name.
func ParseChoice(name string) (Choice, error) {
	for _, c := range []Choice{ChoiceLogin, ChoiceSignup, ChoiceOffline} {
		if c.String() == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown choice %q", name)
}
