// Package usage classifies context consumption into ok/warn/critical tiers.
//
// The report is an early-warning signal for a status line or health
// indicator, computed over everything recorded — not over what would
// actually fit in a payload:
//
//	report := usage.Check(files, log, 100000, 0.8, 0.9)
//	fmt.Printf("%d tokens (%.0f%%) %s\n",
//	    report.TotalTokens, report.Ratio*100, report.Tier)
//
// Because the history log is unbounded, the ratio can exceed 1.0. A caller
// seeing TierCritical should warn the user or compact before the next
// request; how the tier is rendered (colors, icons) is up to the caller.
package usage
