package onboarding

import "strconv"

// Option is one selectable category offered by a picker screen.
type Option struct {
	ID          string
	Label       string
	Description string
	// Details is an optional second line, e.g. what the data is used for.
	Details string
}

// RecommendationOptions are the categories offered by the recommendation picker.
var RecommendationOptions = []Option{
	{ID: "health", Label: "Health Advice", Description: "Tips for posture, hydration, and wellness"},
	{ID: "environment", Label: "Environment", Description: "Office setup and air quality recommendations"},
	{ID: "hobbies", Label: "Hobbies", Description: "Suggestions for work-life balance activities"},
	{ID: "exercises", Label: "Exercises", Description: "Quick desk exercises and stretches"},
	{ID: "breaks", Label: "Break Reminders", Description: "Smart reminders to take regular breaks"},
}

// TrackingOptions are the data sources offered by the data-tracking picker.
var TrackingOptions = []Option{
	{
		ID:          "location",
		Label:       "Location",
		Description: "Track your location for commute optimization and nearby recommendations",
		Details:     "Used for: Traffic alerts, route suggestions, nearby amenities",
	},
	{
		ID:          "health",
		Label:       "Health Data",
		Description: "Monitor activity levels, hydration, and posture for health recommendations",
		Details:     "Used for: Break reminders, hydration alerts, posture tracking",
	},
	{
		ID:          "screen",
		Label:       "Screen Usage",
		Description: "Track screen time and focus patterns for productivity insights",
		Details:     "Used for: Eye strain prevention, focus time optimization, productivity tips",
	},
}

// SignupProviders are the sign-up buttons. Picking any of them completes
// the sign-up step.
var SignupProviders = []Option{
	{ID: "google", Label: "Continue with Google"},
	{ID: "microsoft", Label: "Continue with Microsoft"},
	{ID: "apple", Label: "Continue with Apple"},
	{ID: "email", Label: "Continue with Email"},
}

// GeneratedRecommendation is a suggestion shown on the rating screen.
type GeneratedRecommendation struct {
	ID          string
	Title       string
	Description string
}

// FirstRecommendations are the suggestions the rating screen asks the user
// to rate.
var FirstRecommendations = []GeneratedRecommendation{
	{
		ID:          "1",
		Title:       "Take regular breaks",
		Description: "Based on your work schedule, we recommend taking a 5-minute break every 90 minutes to maintain focus and reduce eye strain.",
	},
	{
		ID:          "2",
		Title:       "Optimize your workspace ergonomics",
		Description: "Your dual monitor setup should be positioned at eye level, about an arm's length away. Consider adjusting your chair height for better posture.",
	},
	{
		ID:          "3",
		Title:       "Stay hydrated throughout the day",
		Description: "Set up automatic reminders to drink water every hour. Aim for 8 glasses per day to maintain energy and cognitive performance.",
	},
}

// KnownRecommendation reports whether id is a recommendation category.
func KnownRecommendation(id string) bool { return hasOption(RecommendationOptions, id) }

// KnownTracking reports whether id is a tracking category.
func KnownTracking(id string) bool { return hasOption(TrackingOptions, id) }

// KnownProvider reports whether id is a sign-up provider.
func KnownProvider(id string) bool { return hasOption(SignupProviders, id) }

func hasOption(opts []Option, id string) bool {
	for _, o := range opts {
		if o.ID == id {
			return true
		}
	}
	return false
}

// SummaryLine renders the "Generated using" sentence of the rating screen.
func SummaryLine(s Summary) string {
	recs := "No recommendation types"
	if n := s.Recommendations.Len(); n > 0 {
		recs = strconv.Itoa(n) + " recommendation types"
	}
	tracking := "no data tracking"
	if n := s.DataTracking.Len(); n > 0 {
		tracking = strconv.Itoa(n) + " data sources"
	}
	info := "no personal information"
	if s.PersonalInfo != "" {
		info = "your personal information"
	}
	return "Generated using: " + recs + ", " + tracking + ", " + info
}
