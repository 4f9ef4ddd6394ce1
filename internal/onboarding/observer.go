//go:generate mockgen -source=observer.go -destination=mocks/mock_observer.go -package=mocks

package onboarding

// TransitionRecord describes one step change made by the controller.
type TransitionRecord struct {
	SessionID string
	From      Step
	To        Step
	// Progress is the percentage for To, computed after the state changed.
	Progress int
	Offline  bool
}

// Result is what a finished run hands over to observers.
type Result struct {
	SessionID string
	// Terminal is the step whose completion ended the run.
	Terminal Step
	Offline  bool
	Summary  Summary
}

// Observer is notified about controller activity. Notifications happen
// synchronously, after the controller has updated its state.
type Observer interface {
	// OnTransition is called after every step change.
	OnTransition(rec TransitionRecord)
	// OnFinished is called once, when a terminal step completes and
	// before the host callback runs.
	OnFinished(res Result)
}
