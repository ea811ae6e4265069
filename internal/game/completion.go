package game

// CompleteThreshold is the coverage percentage at which a board counts as
// cleared. Deliberately below 100 so near-perfect boards still win; true
// 100% coverage is rewarded separately with the perfect bonus.
const CompleteThreshold = 95.0

// PerfectThreshold is the coverage percentage for the perfect bonus.
const PerfectThreshold = 100.0

// Completion returns the percentage of colored cells, in [0.0, 100.0].
// Exact integer counts are converted to floating point; the result cannot
// exceed 100 since ColoredCount is bounded by the cell total.
func Completion(g *Grid) float64 {
	total := g.Size() * g.Size()
	return 100.0 * float64(g.ColoredCount()) / float64(total)
}

// IsComplete reports whether the given coverage clears the board.
func IsComplete(completionPercent float64) bool {
	return completionPercent >= CompleteThreshold
}

// IsPerfect reports whether the given coverage earns the perfect bonus.
func IsPerfect(completionPercent float64) bool {
	return completionPercent >= PerfectThreshold
}
