package answers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	apperrors "github.com/MaybeLow/OfficeAI/internal/errors"
	"github.com/MaybeLow/OfficeAI/internal/onboarding"
)

// Entry is one scripted event. Which fields apply depends on Step.
type Entry struct {
	Step     string   `yaml:"step"`
	Choice   string   `yaml:"choice,omitempty"`
	Provider string   `yaml:"provider,omitempty"`
	Selected []string `yaml:"selected,omitempty"`
	Text     string   `yaml:"text,omitempty"`
	Next     string   `yaml:"next,omitempty"`
}

// Script is a validated answers document.
type Script struct {
	// Session optionally fixes the run identifier.
	Session string  `yaml:"session,omitempty"`
	Entries []Entry `yaml:"events"`

	events []onboarding.Event
}

// Events returns the decoded events in replay order.
func (s *Script) Events() []onboarding.Event {
	out := make([]onboarding.Event, len(s.events))
	copy(out, s.events)
	return out
}

// Dispatcher is the part of the controller a replay needs.
type Dispatcher interface {
	Dispatch(ev onboarding.Event) error
	Finished() bool
	Step() onboarding.Step
}

// LoadFile opens path and decodes it with Load.
func LoadFile(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.WrapError(err, "opening answers file")
	}
	defer f.Close()
	return Load(f)
}

// Load decodes and validates an answers document. Unknown keys, steps,
// choices, category ids and next steps are reported as a ValidationError
// naming the offending entry, e.g. "events[2].next".
func Load(r io.Reader) (*Script, error) {
	var s Script
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, apperrors.ValidationError{Field: "events", Message: "answers file is empty"}
		}
		return nil, apperrors.WrapError(err, "decoding answers")
	}
	if len(s.Entries) == 0 {
		return nil, apperrors.ValidationError{Field: "events", Message: "no events listed"}
	}

	s.events = make([]onboarding.Event, 0, len(s.Entries))
	for i, e := range s.Entries {
		ev, err := e.event(fmt.Sprintf("events[%d]", i))
		if err != nil {
			return nil, err
		}
		s.events = append(s.events, ev)
	}
	return &s, nil
}

// Replay dispatches every scripted event in order. It stops at the first
// rejected event and wraps the failure in a ScriptError carrying the entry
// index. A script that runs out before a terminal step yields an error
// wrapping ErrIncomplete.
func Replay(ctx context.Context, d Dispatcher, s *Script) error {
	for i, ev := range s.events {
		if err := ctx.Err(); err != nil {
			return apperrors.WrapError(err, "replay stopped before entry %d", i)
		}
		if err := d.Dispatch(ev); err != nil {
			return apperrors.ScriptError{Index: i, Cause: err}
		}
	}
	if !d.Finished() {
		return apperrors.WrapError(apperrors.ErrIncomplete, "answers ended on step %s", d.Step())
	}
	return nil
}

func (e Entry) event(path string) (onboarding.Event, error) {
	invalid := func(field, format string, a ...any) error {
		return apperrors.ValidationError{Field: path + "." + field, Message: fmt.Sprintf(format, a...)}
	}

	step, err := onboarding.ParseStep(e.Step)
	if err != nil {
		return nil, invalid("step", "%v", err)
	}
	if err := e.checkUnused(step, invalid); err != nil {
		return nil, err
	}

	switch step {
	case onboarding.StepWelcome:
		choice, err := onboarding.ParseChoice(e.Choice)
		if err != nil {
			return nil, invalid("choice", "%v", err)
		}
		return onboarding.WelcomeChosen{Choice: choice}, nil

	case onboarding.StepSignup:
		if e.Provider != "" && !onboarding.KnownProvider(e.Provider) {
			return nil, invalid("provider", "unknown provider %q", e.Provider)
		}
		return onboarding.SignupCompleted{Provider: e.Provider}, nil

	case onboarding.StepRecommendations:
		for _, id := range e.Selected {
			if !onboarding.KnownRecommendation(id) {
				return nil, invalid("selected", "unknown recommendation category %q", id)
			}
		}
		next, err := e.nextStep()
		if err != nil {
			return nil, invalid("next", "%v", err)
		}
		n, ok := onboarding.RecommendationsNextFor(next)
		if !ok {
			return nil, invalid("next", "recommendations cannot continue to %s", next)
		}
		return onboarding.RecommendationsSubmitted{Selected: onboarding.NewSelection(e.Selected...), Next: n}, nil

	case onboarding.StepDataTracking:
		for _, id := range e.Selected {
			if !onboarding.KnownTracking(id) {
				return nil, invalid("selected", "unknown tracking category %q", id)
			}
		}
		next, err := e.nextStep()
		if err != nil {
			return nil, invalid("next", "%v", err)
		}
		n, ok := onboarding.DataTrackingNextFor(next)
		if !ok {
			return nil, invalid("next", "dataTracking cannot continue to %s", next)
		}
		return onboarding.DataTrackingSubmitted{Selected: onboarding.NewSelection(e.Selected...), Next: n}, nil

	case onboarding.StepPersonalInfo:
		next, err := e.nextStep()
		if err != nil {
			return nil, invalid("next", "%v", err)
		}
		n, ok := onboarding.PersonalInfoNextFor(next)
		if !ok {
			return nil, invalid("next", "personalInfo cannot continue to %s", next)
		}
		return onboarding.PersonalInfoSubmitted{Text: e.Text, Next: n}, nil

	case onboarding.StepRating:
		return onboarding.RatingCompleted{}, nil

	default:
		return onboarding.OfflineNoticeCompleted{}, nil
	}
}

func (e Entry) nextStep() (onboarding.Step, error) {
	if e.Next == "" {
		return 0, errors.New("next step is required")
	}
	return onboarding.ParseStep(e.Next)
}

// checkUnused rejects fields that the step's screen cannot produce.
func (e Entry) checkUnused(step onboarding.Step, invalid func(field, format string, a ...any) error) error {
	used := map[string]bool{}
	switch step {
	case onboarding.StepWelcome:
		used["choice"] = true
	case onboarding.StepSignup:
		used["provider"] = true
	case onboarding.StepRecommendations, onboarding.StepDataTracking:
		used["selected"] = true
		used["next"] = true
	case onboarding.StepPersonalInfo:
		used["text"] = true
		used["next"] = true
	}

	set := map[string]bool{
		"choice":   e.Choice != "",
		"provider": e.Provider != "",
		"selected": len(e.Selected) > 0,
		"text":     e.Text != "",
		"next":     e.Next != "",
	}
	for _, field := range []string{"choice", "provider", "selected", "text", "next"} {
		if set[field] && !used[field] {
			return invalid(field, "not used by step %s", step)
		}
	}
	return nil
}
