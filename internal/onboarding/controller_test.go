package onboarding

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/MaybeLow/OfficeAI/internal/logging"
)

// finishRecorder captures host callback invocations.
type finishRecorder struct {
	calls []bool
}

func (r *finishRecorder) done(offline bool) { r.calls = append(r.calls, offline) }

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNewController_InitialState(t *testing.T) {
	t.Parallel()
	c := NewController(nil)

	if c.Step() != StepWelcome || c.View() != ViewWelcome {
		t.Errorf("starts on %s/%s, want welcome", c.Step(), c.View())
	}
	if _, visible := c.Progress(); visible {
		t.Error("progress must be hidden on welcome")
	}
	if c.SessionID() == "" {
		t.Error("session id should be generated")
	}
	if c.Finished() || c.Offline() {
		t.Error("fresh controller should be online and unfinished")
	}
}

func TestController_WithSessionID(t *testing.T) {
	t.Parallel()
	c := NewController(nil, WithSessionID("run-1"))
	if c.SessionID() != "run-1" {
		t.Errorf("SessionID() = %q", c.SessionID())
	}
}

// Scenario A: welcome(offline) -> recommendations({health}, dataTracking).
func TestController_ScenarioOfflinePath(t *testing.T) {
	t.Parallel()
	rec := &finishRecorder{}
	c := NewController(rec.done)

	must(t, c.Choose(ChoiceOffline))
	if p, _ := c.Progress(); p != 50 {
		t.Errorf("offline recommendations progress = %d, want 50", p)
	}
	must(t, c.SubmitRecommendations(NewSelection("health"), RecommendationsContinue))

	if c.Step() != StepOfflineNotice {
		t.Fatalf("step = %s, want offlineNotice", c.Step())
	}
	if p, visible := c.Progress(); p != 90 || !visible {
		t.Errorf("progress = %d (visible=%v), want 90", p, visible)
	}
	if !c.Offline() {
		t.Error("offline flag should still be set")
	}
	if len(rec.calls) != 0 {
		t.Fatal("host called before the terminal step completed")
	}

	must(t, c.CompleteOfflineNotice())
	if diff := cmp.Diff([]bool{true}, rec.calls); diff != "" {
		t.Errorf("host calls (-want +got):\n%s", diff)
	}
	st := c.State()
	if !st.DataTracking.Empty() || st.PersonalInfo != "" {
		t.Errorf("offline run touched online-only data: %+v", st)
	}
}

// Scenario B: full signup path with empty answers everywhere.
func TestController_ScenarioEmptyOnlinePath(t *testing.T) {
	t.Parallel()
	rec := &finishRecorder{}
	c := NewController(rec.done)

	must(t, c.Choose(ChoiceSignup))
	must(t, c.CompleteSignup("email"))
	must(t, c.SubmitRecommendations(NewSelection(), RecommendationsContinue))
	must(t, c.SubmitDataTracking(NewSelection(), DataTrackingContinue))
	must(t, c.SubmitPersonalInfo("", PersonalInfoContinue))
	if c.View() != ViewRating {
		t.Fatalf("view = %s, want rating", c.View())
	}
	must(t, c.CompleteRating())

	if diff := cmp.Diff([]bool{false}, rec.calls); diff != "" {
		t.Errorf("host calls (-want +got):\n%s", diff)
	}
	want := Summary{}
	if diff := cmp.Diff(want, c.Summary()); diff != "" {
		t.Errorf("summary (-want +got):\n%s", diff)
	}
	if !c.Finished() {
		t.Error("controller should report finished")
	}
}

// Scenario C: the progress shown on each screen the user submits from.
func TestController_ScenarioLoginProgress(t *testing.T) {
	t.Parallel()
	c := NewController(nil)
	var seen []int
	deliver := func(handler func() error) {
		t.Helper()
		p, _ := c.Progress()
		seen = append(seen, p)
		must(t, handler())
	}

	deliver(func() error { return c.Choose(ChoiceLogin) })
	deliver(func() error {
		return c.SubmitRecommendations(NewSelection("exercises", "breaks"), RecommendationsContinue)
	})
	deliver(func() error { return c.SubmitDataTracking(NewSelection("health"), DataTrackingContinue) })

	if diff := cmp.Diff([]int{0, 30, 50}, seen); diff != "" {
		t.Errorf("progress sequence (-want +got):\n%s", diff)
	}
	if c.Step() != StepPersonalInfo || c.Offline() {
		t.Errorf("ended on %s offline=%v", c.Step(), c.Offline())
	}
}

// Resubmitting the picker keeps only the latest selection.
func TestController_ResubmitOverwrites(t *testing.T) {
	t.Parallel()
	c := NewController(nil)
	must(t, c.Choose(ChoiceLogin))
	must(t, c.SubmitRecommendations(NewSelection("health", "hobbies"), RecommendationsContinue))
	must(t, c.SubmitDataTracking(NewSelection(), DataTrackingBack))
	must(t, c.SubmitRecommendations(NewSelection("breaks"), RecommendationsContinue))

	if got := c.Summary().Recommendations; !got.Equal(NewSelection("breaks")) {
		t.Errorf("recommendations = %s, want {breaks}", got)
	}
}

// Navigating backward never clears data recorded further down the path.
func TestController_BackNavigationKeepsData(t *testing.T) {
	t.Parallel()
	c := NewController(nil)
	must(t, c.Choose(ChoiceLogin))
	must(t, c.SubmitRecommendations(NewSelection("health"), RecommendationsContinue))
	must(t, c.SubmitDataTracking(NewSelection("location"), DataTrackingContinue))
	must(t, c.SubmitPersonalInfo("hybrid worker", PersonalInfoBack))
	must(t, c.SubmitDataTracking(NewSelection("location"), DataTrackingBack))

	if c.Step() != StepRecommendations {
		t.Fatalf("step = %s", c.Step())
	}
	want := Summary{
		Recommendations: NewSelection("health"),
		DataTracking:    NewSelection("location"),
		PersonalInfo:    "hybrid worker",
	}
	if diff := cmp.Diff(want, c.Summary()); diff != "" {
		t.Errorf("summary (-want +got):\n%s", diff)
	}
}

// Going back to welcome from an offline run returns to the online default.
func TestController_OfflineBackToWelcomeClearsOffline(t *testing.T) {
	t.Parallel()
	rec := &finishRecorder{}
	c := NewController(rec.done)
	must(t, c.Choose(ChoiceOffline))
	must(t, c.SubmitRecommendations(NewSelection(), RecommendationsBack))

	if c.Step() != StepWelcome || c.Offline() {
		t.Fatalf("step=%s offline=%v, want welcome/online", c.Step(), c.Offline())
	}
	must(t, c.Choose(ChoiceLogin))
	must(t, c.SubmitRecommendations(NewSelection(), RecommendationsContinue))
	if c.Step() != StepDataTracking {
		t.Errorf("online continue after leaving offline mode went to %s", c.Step())
	}
}

func TestController_RejectsMisuseWithoutChangingState(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	c := NewController(nil, WithLogger(logging.NewLogger(&buf, "test")))
	before := c.State()

	if err := c.CompleteRating(); err == nil {
		t.Fatal("rating on welcome should be rejected")
	}
	if diff := cmp.Diff(before, c.State()); diff != "" {
		t.Errorf("state changed (-want +got):\n%s", diff)
	}
	if !strings.Contains(buf.String(), "event rejected") {
		t.Errorf("rejection should be logged, got: %s", buf.String())
	}
}

func TestController_EventsAfterFinishAreRejected(t *testing.T) {
	t.Parallel()
	rec := &finishRecorder{}
	c := NewController(rec.done)
	must(t, c.Choose(ChoiceOffline))
	must(t, c.SubmitRecommendations(NewSelection(), RecommendationsContinue))
	must(t, c.CompleteOfflineNotice())

	if err := c.CompleteOfflineNotice(); !errors.Is(err, ErrFinished) {
		t.Errorf("second completion error = %v, want ErrFinished", err)
	}
	if len(rec.calls) != 1 {
		t.Errorf("host called %d times, want 1", len(rec.calls))
	}
}

func TestController_LogsTransitions(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	c := NewController(nil, WithSessionID("abc"), WithLogger(logging.NewLogger(&buf, "onboarding")))
	must(t, c.Choose(ChoiceSignup))

	out := buf.String()
	for _, want := range []string{"step transition", `"from":"welcome"`, `"to":"signup"`, `"progress":15`, `"session":"abc"`} {
		if !strings.Contains(out, want) {
			t.Errorf("log should contain %s, got: %s", want, out)
		}
	}
}
