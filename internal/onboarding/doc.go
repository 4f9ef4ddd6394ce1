// Package onboarding implements the step controller of the first-run wizard.
//
// The wizard walks a user from the welcome screen either along the online
// path
//
//	welcome -> [signup] -> recommendations -> dataTracking -> personalInfo -> rating
//
// or along the offline path
//
//	welcome -> recommendations -> offlineNotice
//
// and reports the chosen mode to the host once a terminal step completes.
// Screens are not part of this package: they report what the user did
// through the Controller's typed handlers and read back the active step,
// the progress percentage and, for the rating screen, the collected data.
package onboarding
