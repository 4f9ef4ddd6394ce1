// Package answers loads scripted wizard runs from YAML and replays them
// against an onboarding controller. A script lists the events the views
// would report, in order:
//
//	events:
//	  - step: welcome
//	    choice: offline
//	  - step: recommendations
//	    selected: [health]
//	    next: dataTracking
//	  - step: offlineNotice
//
// Scripts are validated as a whole before anything is replayed, so a typo
// in the last entry is reported without driving the controller at all.
package answers
