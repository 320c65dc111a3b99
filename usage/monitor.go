package usage

import (
	"github.com/randalmurphal/contextkit/filectx"
	"github.com/randalmurphal/contextkit/history"
)

// Default thresholds for the warn and critical tiers, as fractions of the
// token budget.
const (
	DefaultWarnThreshold     = 0.8
	DefaultCriticalThreshold = 0.9
)

// Tier classifies context usage against the configured thresholds.
type Tier int

const (
	TierOK Tier = iota
	TierWarn
	TierCritical
)

// String returns the tier name.
func (t Tier) String() string {
	switch t {
	case TierWarn:
		return "warn"
	case TierCritical:
		return "critical"
	default:
		return "ok"
	}
}

// Report is a point-in-time usage readout.
//
// TotalTokens is the unbounded sum across the history log and file store —
// deliberately larger than what a built payload would actually carry. It is
// an early-warning signal, not the payload's cost.
type Report struct {
	TotalTokens int
	Ratio       float64
	Tier        Tier
}

// Check derives the usage report for the given state. Pure: it reads the
// log and store and mutates nothing. log and files may be nil.
//
// Tier is critical when Ratio exceeds criticalThreshold, warn when it
// exceeds warnThreshold, ok otherwise. Thresholds outside (0, 1), or a
// warn threshold at or above critical, fall back to the defaults.
func Check(files *filectx.Store, log *history.Log, maxTokens int, warnThreshold, criticalThreshold float64) Report {
	if warnThreshold <= 0 || criticalThreshold >= 1 || warnThreshold >= criticalThreshold {
		warnThreshold = DefaultWarnThreshold
		criticalThreshold = DefaultCriticalThreshold
	}

	var total int
	if log != nil {
		total += log.TotalTokens()
	}
	if files != nil {
		total += files.TotalTokens()
	}

	var ratio float64
	if maxTokens > 0 {
		ratio = float64(total) / float64(maxTokens)
	}

	tier := TierOK
	switch {
	case ratio > criticalThreshold:
		tier = TierCritical
	case ratio > warnThreshold:
		tier = TierWarn
	}

	return Report{TotalTokens: total, Ratio: ratio, Tier: tier}
}
