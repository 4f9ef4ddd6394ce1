package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MaybeLow/OfficeAI/internal/logging"
	"github.com/MaybeLow/OfficeAI/internal/onboarding"
)

// action is what a screen asks the root model to do once the user is done
// with it. Screens never touch the controller themselves.
type action func(c *onboarding.Controller) error

// screen is the view model of one wizard step.
type screen interface {
	update(msg tea.KeyMsg, km KeyMap) (screen, action, tea.Cmd)
	view(width int) string
	bindings(km KeyMap) []key.Binding
}

// newScreen builds the screen for the controller's active step, seeded
// with whatever the session already holds for it.
func newScreen(c *onboarding.Controller, logger logging.Logger) (screen, tea.Cmd) {
	st := c.State()
	switch c.Step() {
	case onboarding.StepSignup:
		return signupScreen{}, nil
	case onboarding.StepRecommendations:
		return newPicker(recommendationsPicker, st.Recommendations), nil
	case onboarding.StepDataTracking:
		return newPicker(trackingPicker, st.DataTracking), nil
	case onboarding.StepPersonalInfo:
		s := newPersonalInfoScreen(st.PersonalInfo)
		cmd := s.input.Focus()
		return s, cmd
	case onboarding.StepRating:
		return newRatingScreen(c.Summary(), logger), nil
	case onboarding.StepOfflineNotice:
		return offlineNoticeScreen{}, nil
	default:
		return welcomeScreen{}, nil
	}
}

// moveCursor applies Up/Down to a cursor over n items, wrapping around.
func moveCursor(msg tea.KeyMsg, km KeyMap, cursor, n int) int {
	switch {
	case key.Matches(msg, km.Up):
		return (cursor - 1 + n) % n
	case key.Matches(msg, km.Down):
		return (cursor + 1) % n
	}
	return cursor
}

func renderButton(label string, active bool) string {
	if active {
		return activeButtonStyle.Render(label)
	}
	return buttonStyle.Render(label)
}

func renderAdvisory(title, body string, width int) string {
	return advisoryStyle.Width(width).Render(title + "\n" + dimStyle.Render(body))
}

// ─────────────────────────────────────────────────────────────────────────────
// Welcome
// ─────────────────────────────────────────────────────────────────────────────

var welcomeChoices = []struct {
	label  string
	choice onboarding.Choice
}{
	{"Log In", onboarding.ChoiceLogin},
	{"Sign Up", onboarding.ChoiceSignup},
	{"Stay Offline", onboarding.ChoiceOffline},
}

type welcomeScreen struct {
	cursor int
	about  bool
}

func (s welcomeScreen) update(msg tea.KeyMsg, km KeyMap) (screen, action, tea.Cmd) {
	switch {
	case key.Matches(msg, km.Tooltip):
		s.about = !s.about
	case key.Matches(msg, km.Select):
		choice := welcomeChoices[s.cursor].choice
		return s, func(c *onboarding.Controller) error { return c.Choose(choice) }, nil
	default:
		s.cursor = moveCursor(msg, km, s.cursor, len(welcomeChoices))
	}
	return s, nil, nil
}

func (s welcomeScreen) view(width int) string {
	var b strings.Builder
	b.WriteString(headingStyle.Render("Welcome to OfficeAI") + "\n")
	b.WriteString(subtitleStyle.Render("Your intelligent office assistant powered by AI") + "\n\n")

	for i, c := range welcomeChoices {
		b.WriteString(renderButton(c.label, i == s.cursor) + "\n")
	}

	if welcomeChoices[s.cursor].choice == onboarding.ChoiceOffline {
		b.WriteString(tooltipStyle.Width(width).Render(
			"No information will be sent to the cloud. AI features will be limited to generic, rule-based responses for maximum privacy.") + "\n")
	}
	if s.about {
		b.WriteString(tooltipStyle.Width(width).Render(
			"About OfficeAI\nOfficeAI is your personal assistant for wellness and productivity. "+
				"You can choose to Sign Up for cloud sync or Stay Offline to keep all data strictly on this device.") + "\n")
	}
	return b.String()
}

func (welcomeScreen) bindings(km KeyMap) []key.Binding {
	about := km.Tooltip
	about.SetHelp("?", "about")
	return []key.Binding{km.Up, km.Down, km.Select, about, km.Quit}
}

// ─────────────────────────────────────────────────────────────────────────────
// Sign up
// ─────────────────────────────────────────────────────────────────────────────

type signupScreen struct {
	cursor int
}

func (s signupScreen) update(msg tea.KeyMsg, km KeyMap) (screen, action, tea.Cmd) {
	if key.Matches(msg, km.Select) {
		provider := onboarding.SignupProviders[s.cursor].ID
		return s, func(c *onboarding.Controller) error { return c.CompleteSignup(provider) }, nil
	}
	s.cursor = moveCursor(msg, km, s.cursor, len(onboarding.SignupProviders))
	return s, nil, nil
}

func (s signupScreen) view(int) string {
	var b strings.Builder
	b.WriteString(headingStyle.Render("Create your account") + "\n")
	b.WriteString(subtitleStyle.Render("Choose your preferred sign up method") + "\n\n")
	for i, p := range onboarding.SignupProviders {
		if p.ID == "email" {
			b.WriteString(dimStyle.Render("  or") + "\n")
		}
		b.WriteString(renderButton(p.Label, i == s.cursor) + "\n")
	}
	return b.String()
}

func (signupScreen) bindings(km KeyMap) []key.Binding {
	return []key.Binding{km.Up, km.Down, km.Select, km.Quit}
}

// ─────────────────────────────────────────────────────────────────────────────
// Category pickers
// ─────────────────────────────────────────────────────────────────────────────

// pickerKind holds what differs between the two category pickers.
type pickerKind struct {
	heading, subtitle string
	note              string
	options           []onboarding.Option
	emptyTitle        string
	emptyBody         string
	submit            func(sel onboarding.Selection, forward bool) action
}

var recommendationsPicker = pickerKind{
	heading:    "Choose your recommendations",
	subtitle:   "Select the types of recommendations you'd like to receive",
	options:    onboarding.RecommendationOptions,
	emptyTitle: "No recommendations selected",
	emptyBody:  "If you continue without selecting any recommendations, you won't receive personalized suggestions. Are you sure you want to proceed?",
	submit: func(sel onboarding.Selection, forward bool) action {
		next := onboarding.RecommendationsBack
		if forward {
			next = onboarding.RecommendationsContinue
		}
		return func(c *onboarding.Controller) error { return c.SubmitRecommendations(sel, next) }
	},
}

var trackingPicker = pickerKind{
	heading:    "Data tracking preferences",
	subtitle:   "Choose what data you'd like to share for personalized recommendations",
	note:       "Your privacy matters. All data is encrypted and used only to generate your personalized recommendations. You can change these settings anytime.",
	options:    onboarding.TrackingOptions,
	emptyTitle: "No data tracking method selected",
	emptyBody:  "You can safely proceed without selecting any data tracking methods. You can enable them later in the settings menu.",
	submit: func(sel onboarding.Selection, forward bool) action {
		next := onboarding.DataTrackingBack
		if forward {
			next = onboarding.DataTrackingContinue
		}
		return func(c *onboarding.Controller) error { return c.SubmitDataTracking(sel, next) }
	},
}

// pickerScreen lists the options followed by the Back and Continue buttons.
type pickerScreen struct {
	kind    pickerKind
	checked map[string]bool
	cursor  int
}

func newPicker(kind pickerKind, current onboarding.Selection) pickerScreen {
	checked := make(map[string]bool, len(kind.options))
	for _, o := range kind.options {
		checked[o.ID] = current.Contains(o.ID)
	}
	return pickerScreen{kind: kind, checked: checked}
}

func (s pickerScreen) backIndex() int     { return len(s.kind.options) }
func (s pickerScreen) continueIndex() int { return len(s.kind.options) + 1 }

func (s pickerScreen) selection() onboarding.Selection {
	var ids []string
	for _, o := range s.kind.options {
		if s.checked[o.ID] {
			ids = append(ids, o.ID)
		}
	}
	return onboarding.NewSelection(ids...)
}

func (s pickerScreen) toggle(i int) pickerScreen {
	id := s.kind.options[i].ID
	checked := make(map[string]bool, len(s.checked))
	for k, v := range s.checked {
		checked[k] = v
	}
	checked[id] = !checked[id]
	s.checked = checked
	return s
}

func (s pickerScreen) update(msg tea.KeyMsg, km KeyMap) (screen, action, tea.Cmd) {
	switch {
	case key.Matches(msg, km.Back):
		return s, s.kind.submit(s.selection(), false), nil
	case key.Matches(msg, km.Toggle):
		if s.cursor < len(s.kind.options) {
			s = s.toggle(s.cursor)
		}
	case key.Matches(msg, km.Select):
		switch s.cursor {
		case s.backIndex():
			return s, s.kind.submit(s.selection(), false), nil
		case s.continueIndex():
			return s, s.kind.submit(s.selection(), true), nil
		default:
			s = s.toggle(s.cursor)
		}
	default:
		s.cursor = moveCursor(msg, km, s.cursor, len(s.kind.options)+2)
	}
	return s, nil, nil
}

func (s pickerScreen) view(width int) string {
	var b strings.Builder
	b.WriteString(headingStyle.Render(s.kind.heading) + "\n")
	b.WriteString(subtitleStyle.Render(s.kind.subtitle) + "\n\n")
	if s.kind.note != "" {
		b.WriteString(dimStyle.Width(width).Render(s.kind.note) + "\n\n")
	}

	for i, o := range s.kind.options {
		pointer := "  "
		if i == s.cursor {
			pointer = cursorStyle.Render("› ")
		}
		box := "[ ]"
		if s.checked[o.ID] {
			box = checkedStyle.Render("[x]")
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", pointer, box, textStyle.Render(o.Label)))
		b.WriteString("      " + dimStyle.Render(o.Description) + "\n")
		if o.Details != "" && s.checked[o.ID] {
			b.WriteString("      " + dimStyle.Render(o.Details) + "\n")
		}
	}
	b.WriteString("\n")

	if s.selection().Empty() {
		b.WriteString(renderAdvisory(s.kind.emptyTitle, s.kind.emptyBody, width) + "\n\n")
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		renderButton("Back", s.cursor == s.backIndex()), " ",
		renderButton("Continue", s.cursor == s.continueIndex())))
	return b.String()
}

func (pickerScreen) bindings(km KeyMap) []key.Binding {
	return []key.Binding{km.Up, km.Down, km.Toggle, km.Select, km.Back, km.Quit}
}

// ─────────────────────────────────────────────────────────────────────────────
// Personal info
// ─────────────────────────────────────────────────────────────────────────────

const personalInfoPlaceholder = "Example: My name is Bob Anderson, I work from 9am to 5pm, prefer standing breaks every hour, " +
	"use a standing desk, have back issues, commute by public transport, and want to improve my hydration and posture."

type personalInfoScreen struct {
	input textarea.Model
}

func newPersonalInfoScreen(text string) personalInfoScreen {
	ta := textarea.New()
	ta.Placeholder = personalInfoPlaceholder
	ta.CharLimit = 2000
	ta.ShowLineNumbers = false
	ta.SetWidth(64)
	ta.SetHeight(6)
	// Enter submits; alt+enter starts a new line.
	ta.KeyMap.InsertNewline = key.NewBinding(key.WithKeys("alt+enter"))
	ta.SetValue(text)
	return personalInfoScreen{input: ta}
}

func (s personalInfoScreen) update(msg tea.KeyMsg, km KeyMap) (screen, action, tea.Cmd) {
	text := s.input.Value()
	switch {
	case key.Matches(msg, km.Back):
		return s, func(c *onboarding.Controller) error {
			return c.SubmitPersonalInfo(text, onboarding.PersonalInfoBack)
		}, nil
	case key.Matches(msg, km.Select):
		return s, func(c *onboarding.Controller) error {
			return c.SubmitPersonalInfo(text, onboarding.PersonalInfoContinue)
		}, nil
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, nil, cmd
}

func (s personalInfoScreen) view(width int) string {
	var b strings.Builder
	b.WriteString(headingStyle.Render("Provide personal information") + "\n")
	b.WriteString(subtitleStyle.Render("Enter anything you think is relevant to your work environment") + "\n\n")
	b.WriteString(s.input.View() + "\n")
	b.WriteString(dimStyle.Width(width).Render(fmt.Sprintf(
		"%d characters • This information will be used to set up your profile. "+
			"The data can be deleted or changed at any point in the settings menu.",
		utf8.RuneCountInString(s.input.Value()))) + "\n\n")

	if strings.TrimSpace(s.input.Value()) == "" {
		b.WriteString(renderAdvisory("No personal information provided",
			"The app won't have any of the requested personal data. Recommendations will be more generic. "+
				"It is safe to proceed if you prefer not to share this information.", width) + "\n")
	}
	return b.String()
}

func (personalInfoScreen) bindings(km KeyMap) []key.Binding {
	cont := km.Select
	cont.SetHelp("enter", "continue")
	newline := key.NewBinding(key.WithKeys("alt+enter"), key.WithHelp("alt+enter", "new line"))
	quit := key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit"))
	return []key.Binding{cont, km.Back, newline, quit}
}

// ─────────────────────────────────────────────────────────────────────────────
// Rating
// ─────────────────────────────────────────────────────────────────────────────

type vote int

const (
	voteNone vote = iota
	voteUp
	voteDown
)

func (v vote) String() string {
	switch v {
	case voteUp:
		return "positive"
	case voteDown:
		return "negative"
	}
	return "none"
}

// ratingScreen shows the generated recommendations. Votes stay on this
// screen; they are logged when the run finishes but not stored.
type ratingScreen struct {
	summary onboarding.Summary
	votes   []vote
	cursor  int
	logger  logging.Logger
}

func newRatingScreen(summary onboarding.Summary, logger logging.Logger) ratingScreen {
	return ratingScreen{
		summary: summary,
		votes:   make([]vote, len(onboarding.FirstRecommendations)),
		logger:  logger,
	}
}

func (s ratingScreen) finishIndex() int { return len(onboarding.FirstRecommendations) }

func (s ratingScreen) vote(v vote) ratingScreen {
	if s.cursor == s.finishIndex() {
		return s
	}
	votes := append([]vote(nil), s.votes...)
	if votes[s.cursor] == v {
		votes[s.cursor] = voteNone
	} else {
		votes[s.cursor] = v
	}
	s.votes = votes
	return s
}

func (s ratingScreen) update(msg tea.KeyMsg, km KeyMap) (screen, action, tea.Cmd) {
	switch {
	case key.Matches(msg, km.ThumbUp):
		s = s.vote(voteUp)
	case key.Matches(msg, km.ThumbDown):
		s = s.vote(voteDown)
	case key.Matches(msg, km.Select) && s.cursor == s.finishIndex():
		votes := s.votes
		logger := s.logger
		return s, func(c *onboarding.Controller) error {
			for i, rec := range onboarding.FirstRecommendations {
				if votes[i] != voteNone {
					logger.Debug("recommendation rated",
						logging.String("recommendation", rec.ID),
						logging.String("rating", votes[i].String()))
				}
			}
			return c.CompleteRating()
		}, nil
	default:
		s.cursor = moveCursor(msg, km, s.cursor, len(onboarding.FirstRecommendations)+1)
	}
	return s, nil, nil
}

func (s ratingScreen) view(width int) string {
	var b strings.Builder
	b.WriteString(headingStyle.Render("Your first recommendations") + "\n")
	b.WriteString(subtitleStyle.Width(width).Render(
		"We've generated personalized recommendations based on your preferences. "+
			"Help us improve by rating these suggestions") + "\n\n")
	b.WriteString(dimStyle.Render(onboarding.SummaryLine(s.summary)) + "\n\n")

	for i, rec := range onboarding.FirstRecommendations {
		pointer := "  "
		if i == s.cursor {
			pointer = cursorStyle.Render("› ")
		}
		up, down := dimStyle.Render("[+]"), dimStyle.Render("[-]")
		switch s.votes[i] {
		case voteUp:
			up = goodStyle.Render("[+]")
		case voteDown:
			down = badStyle.Render("[-]")
		}
		b.WriteString(pointer + textStyle.Bold(true).Render(rec.Title) + "\n")
		b.WriteString("  " + dimStyle.Width(width-2).Render(rec.Description) + "\n")
		b.WriteString("  " + dimStyle.Render("Was this helpful? ") + up + " " + down + "\n\n")
	}
	b.WriteString(renderButton("Get Started", s.cursor == s.finishIndex()))
	return b.String()
}

func (ratingScreen) bindings(km KeyMap) []key.Binding {
	finish := km.Select
	finish.SetHelp("enter", "get started")
	return []key.Binding{km.Up, km.Down, km.ThumbUp, km.ThumbDown, finish, km.Quit}
}

// ─────────────────────────────────────────────────────────────────────────────
// Offline notice
// ─────────────────────────────────────────────────────────────────────────────

var offlinePoints = []struct {
	good        bool
	title, body string
}{
	{true, "No data collection", "None of your information, activities, or preferences will be stored or tracked."},
	{true, "Complete privacy", "All interactions remain local to your device and are not sent to any servers."},
	{false, "Limited personalization", "Recommendations will be generic and not tailored to your specific needs or environment."},
	{false, "No sync across devices", "Your settings and preferences won't be available on other devices."},
}

type offlineNoticeScreen struct{}

func (s offlineNoticeScreen) update(msg tea.KeyMsg, km KeyMap) (screen, action, tea.Cmd) {
	if key.Matches(msg, km.Select) {
		return s, func(c *onboarding.Controller) error { return c.CompleteOfflineNotice() }, nil
	}
	return s, nil, nil
}

func (offlineNoticeScreen) view(width int) string {
	var b strings.Builder
	b.WriteString(headingStyle.Render("You're in Offline Mode") + "\n")
	b.WriteString(subtitleStyle.Render("Your privacy is protected") + "\n\n")
	for _, p := range offlinePoints {
		mark := goodStyle.Render("✓")
		if !p.good {
			mark = warnStyle.Render("!")
		}
		b.WriteString(mark + " " + textStyle.Bold(true).Render(p.title) + "\n")
		b.WriteString("  " + dimStyle.Width(width-2).Render(p.body) + "\n")
	}
	b.WriteString("\n" + dimStyle.Width(width).Render(
		"Note: You can always switch to an online account later from the Profile settings to enable personalized features.") + "\n\n")
	b.WriteString(renderButton("Continue to OfficeAI", true))
	return b.String()
}

func (offlineNoticeScreen) bindings(km KeyMap) []key.Binding {
	cont := km.Select
	cont.SetHelp("enter", "continue")
	return []key.Binding{cont, km.Quit}
}
