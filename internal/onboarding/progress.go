package onboarding

// Progress returns the completion percentage shown for step. The offline
// path is shorter, so the same step maps to a larger share of the run.
// Combinations that cannot be reached return 0.
func Progress(step Step, offline bool) int {
	if offline {
		switch step {
		case StepRecommendations:
			return 50
		case StepOfflineNotice:
			return 90
		}
		return 0
	}

	switch step {
	case StepSignup:
		return 15
	case StepRecommendations:
		return 30
	case StepDataTracking:
		return 50
	case StepPersonalInfo:
		return 70
	case StepRating, StepOfflineNotice:
		return 100
	}
	return 0
}
