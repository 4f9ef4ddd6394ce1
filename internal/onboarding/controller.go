package onboarding

import (
	"errors"

	"github.com/google/uuid"

	"github.com/MaybeLow/OfficeAI/internal/logging"
)

// ErrFinished is returned for events delivered after the run has ended.
var ErrFinished = errors.New("onboarding already finished")

// Controller drives one wizard run. It owns the session state, applies the
// events reported by the active view and calls the host back exactly once
// when a terminal step completes.
//
// A Controller is not safe for concurrent use; the wizard delivers one event
// at a time from the active view.
type Controller struct {
	id         string
	state      SessionState
	finished   bool
	onFinished func(offline bool)
	observers  []Observer
	logger     logging.Logger
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithLogger sets the logger used for transition records.
func WithLogger(l logging.Logger) ControllerOption {
	return func(c *Controller) { c.logger = l }
}

// WithObserver registers an observer. Observers are notified in the order
// they were registered.
func WithObserver(o Observer) ControllerOption {
	return func(c *Controller) { c.observers = append(c.observers, o) }
}

// WithSessionID overrides the generated run identifier.
func WithSessionID(id string) ControllerOption {
	return func(c *Controller) { c.id = id }
}

// NewController starts a run on the welcome step. onFinished receives the
// final mode: true when the user stayed offline.
func NewController(onFinished func(offline bool), opts ...ControllerOption) *Controller {
	c := &Controller{
		state:      NewSessionState(),
		onFinished: onFinished,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.id == "" {
		c.id = uuid.NewString()
	}
	if c.logger == nil {
		c.logger = logging.NewNopLogger()
	}
	if c.onFinished == nil {
		c.onFinished = func(bool) {}
	}
	return c
}

// SessionID returns the run identifier.
func (c *Controller) SessionID() string { return c.id }

// Step returns the active step.
func (c *Controller) Step() Step { return c.state.CurrentStep }

// View returns the screen bound to the active step.
func (c *Controller) View() View {
	spec, _ := Lookup(c.state.CurrentStep)
	return spec.View
}

// State returns a copy of the session state.
func (c *Controller) State() SessionState { return c.state }

// Summary returns the data collected so far, as shown on the rating screen.
func (c *Controller) Summary() Summary { return c.state.Summary() }

// Offline reports whether the run is currently on the offline path.
func (c *Controller) Offline() bool { return c.state.Offline }

// Finished reports whether a terminal step has completed.
func (c *Controller) Finished() bool { return c.finished }

// Progress returns the completion percentage and whether it should be shown.
// The percentage is hidden on the welcome step.
func (c *Controller) Progress() (percent int, visible bool) {
	return c.state.Progress(), c.state.CurrentStep != StepWelcome
}

// Choose handles the welcome screen.
func (c *Controller) Choose(choice Choice) error {
	return c.Dispatch(WelcomeChosen{Choice: choice})
}

// CompleteSignup handles the sign-up screen. provider is informational.
func (c *Controller) CompleteSignup(provider string) error {
	return c.Dispatch(SignupCompleted{Provider: provider})
}

// SubmitRecommendations handles the recommendation picker.
func (c *Controller) SubmitRecommendations(selected Selection, next RecommendationsNext) error {
	return c.Dispatch(RecommendationsSubmitted{Selected: selected, Next: next})
}

// SubmitDataTracking handles the data-tracking picker.
func (c *Controller) SubmitDataTracking(selected Selection, next DataTrackingNext) error {
	return c.Dispatch(DataTrackingSubmitted{Selected: selected, Next: next})
}

// SubmitPersonalInfo handles the personal-info screen.
func (c *Controller) SubmitPersonalInfo(text string, next PersonalInfoNext) error {
	return c.Dispatch(PersonalInfoSubmitted{Text: text, Next: next})
}

// CompleteRating handles the rating screen and finishes an online run.
func (c *Controller) CompleteRating() error {
	return c.Dispatch(RatingCompleted{})
}

// CompleteOfflineNotice handles the offline notice and finishes an offline run.
func (c *Controller) CompleteOfflineNotice() error {
	return c.Dispatch(OfflineNoticeCompleted{})
}

// Dispatch applies ev to the session. Views normally go through the typed
// handlers above; Dispatch is the entry point for scripted replay.
func (c *Controller) Dispatch(ev Event) error {
	if c.finished {
		return ErrFinished
	}

	from := c.state.CurrentStep
	next, finished, err := Transition(c.state, ev)
	if err != nil {
		c.logger.Error("event rejected", err,
			logging.String("session", c.id),
			logging.String("step", from.String()))
		return err
	}
	c.state = next

	if finished {
		c.finish(from)
		return nil
	}

	rec := TransitionRecord{
		SessionID: c.id,
		From:      from,
		To:        next.CurrentStep,
		Progress:  next.Progress(),
		Offline:   next.Offline,
	}
	c.logger.Debug("step transition",
		logging.String("session", c.id),
		logging.String("from", rec.From.String()),
		logging.String("to", rec.To.String()),
		logging.Int("progress", rec.Progress),
		logging.Bool("offline", rec.Offline))
	for _, o := range c.observers {
		o.OnTransition(rec)
	}
	return nil
}

func (c *Controller) finish(terminal Step) {
	c.finished = true
	offline := FinishedOffline(terminal)
	res := Result{
		SessionID: c.id,
		Terminal:  terminal,
		Offline:   offline,
		Summary:   c.state.Summary(),
	}
	c.logger.Info("onboarding finished",
		logging.String("session", c.id),
		logging.String("terminal", terminal.String()),
		logging.Bool("offline", offline),
		logging.Int("recommendations", res.Summary.Recommendations.Len()),
		logging.Int("data_tracking", res.Summary.DataTracking.Len()))
	for _, o := range c.observers {
		o.OnFinished(res)
	}
	c.onFinished(offline)
}
