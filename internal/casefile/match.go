package casefile

import "strings"

// DetectGuess reports the first suspect, in list order, whose name appears in text ignoring case.
func DetectGuess(text string) (Suspect, bool) {
	s := strings.ToLower(strings.TrimSpace(text))
	for _, suspect := range suspects {
		if strings.Contains(s, strings.ToLower(suspect.Name)) {
			return suspect, true
		}
	}
	return Suspect{}, false
}
