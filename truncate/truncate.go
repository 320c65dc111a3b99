package truncate

import "github.com/randalmurphal/contextkit/tokens"

// Markers appended (or prepended) where content was cut.
const (
	EndMarker   = "\n...[truncated]"
	StartMarker = "...[truncated]\n"
)

// KeepStart clips text so that it fits within maxTokens, removing content
// from the end. Returns the clipped text and whether clipping occurred.
// If counter is nil, the default estimating counter is used.
func KeepStart(text string, maxTokens int, counter tokens.Counter) (string, bool) {
	counter = orDefault(counter)
	if counter.FitsInLimit(text, maxTokens) {
		return text, false
	}

	target := maxTokens - counter.Count(EndMarker)
	if target <= 0 {
		return EndMarker, true
	}

	runes := []rune(text)
	keep := fitPrefix(runes, target, counter)
	return string(runes[:keep]) + EndMarker, true
}

// KeepEnd clips text so that it fits within maxTokens, removing content
// from the start. Returns the clipped text and whether clipping occurred.
// If counter is nil, the default estimating counter is used.
func KeepEnd(text string, maxTokens int, counter tokens.Counter) (string, bool) {
	counter = orDefault(counter)
	if counter.FitsInLimit(text, maxTokens) {
		return text, false
	}

	target := maxTokens - counter.Count(StartMarker)
	if target <= 0 {
		return StartMarker, true
	}

	// Binary search for the earliest start position that fits.
	runes := []rune(text)
	low, high := 0, len(runes)
	for low < high {
		mid := (low + high) / 2
		if counter.FitsInLimit(string(runes[mid:]), target) {
			high = mid
		} else {
			low = mid + 1
		}
	}
	return StartMarker + string(runes[low:]), true
}

// fitPrefix finds the longest prefix of runes that fits in maxTokens.
func fitPrefix(runes []rune, maxTokens int, counter tokens.Counter) int {
	low, high := 0, len(runes)
	for low < high {
		mid := (low + high + 1) / 2
		if counter.FitsInLimit(string(runes[:mid]), maxTokens) {
			low = mid
		} else {
			high = mid - 1
		}
	}
	return low
}

func orDefault(counter tokens.Counter) tokens.Counter {
	if counter == nil {
		return tokens.NewEstimatingCounter()
	}
	return counter
}
