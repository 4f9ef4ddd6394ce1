package onboarding

import (
	"slices"
	"strings"
)

// Selection is an immutable set of category identifiers. The zero value is
// the empty set. Values can be copied and shared freely.
type Selection struct {
	ids []string // sorted, unique, never mutated after construction
}

// NewSelection builds a set from ids, dropping duplicates and empty strings.
func NewSelection(ids ...string) Selection {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != "" {
			out = append(out, id)
		}
	}
	slices.Sort(out)
	out = slices.Compact(out)
	if len(out) == 0 {
		return Selection{}
	}
	return Selection{ids: out}
}

// Len returns the number of ids in the set.
func (s Selection) Len() int { return len(s.ids) }

// Empty reports whether the set has no ids.
func (s Selection) Empty() bool { return len(s.ids) == 0 }

// Contains reports whether id is in the set.
func (s Selection) Contains(id string) bool {
	_, found := slices.BinarySearch(s.ids, id)
	return found
}

// IDs returns the ids in sorted order. The caller owns the returned slice.
func (s Selection) IDs() []string {
	return slices.Clone(s.ids)
}

// Equal reports whether both sets hold the same ids.
func (s Selection) Equal(other Selection) bool {
	return slices.Equal(s.ids, other.ids)
}

// String renders the set as {a,b}.
func (s Selection) String() string {
	return "{" + strings.Join(s.ids, ",") + "}"
}

// SessionState is the record of one wizard run: where the user is and what
// they have chosen so far. Only the controller advances it.
type SessionState struct {
	CurrentStep     Step
	Offline         bool
	Recommendations Selection
	DataTracking    Selection
	PersonalInfo    string
}

// NewSessionState returns the state every run starts from.
func NewSessionState() SessionState {
	return SessionState{CurrentStep: StepWelcome}
}

// Progress returns the percentage for the current step and mode.
func (s SessionState) Progress() int {
	return Progress(s.CurrentStep, s.Offline)
}

// Summary is the read-only view of the collected data handed to the rating
// screen and to the completion observers.
type Summary struct {
	Recommendations Selection
	DataTracking    Selection
	PersonalInfo    string
}

// Summary returns the collected data.
func (s SessionState) Summary() Summary {
	return Summary{
		Recommendations: s.Recommendations,
		DataTracking:    s.DataTracking,
		PersonalInfo:    s.PersonalInfo,
	}
}
