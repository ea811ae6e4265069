package game

import "fmt"

// Scoring constants. The final score is the base plus bonuses for unspent
// taps, coverage, speed, and a flat bonus for a fully colored board.
const (
	scoreBase          = 1000
	tapBonusPerUnspent = 50
	completionBonusMul = 10
	timeBonusCeiling   = 300
	perfectBonus       = 500
)

// ComputeScore calculates the final score for an ended play. It is a pure
// function of its four inputs:
//
//	base       = 1000
//	tapBonus   = (maxTaps - tapsUsed) * 50
//	coverage   = floor(completionPercent * 10)
//	timeBonus  = max(0, 300 - elapsedSeconds)
//	perfect    = 500 if completionPercent >= 100
//
// Negative inputs and tapsUsed > maxTaps are caller contract violations and
// panic.
func ComputeScore(maxTaps, tapsUsed int, completionPercent float64, elapsedSeconds int) int {
	if maxTaps < 0 || tapsUsed < 0 || elapsedSeconds < 0 || completionPercent < 0 {
		panic(fmt.Sprintf("game: negative score input (maxTaps=%d tapsUsed=%d completion=%.1f elapsed=%d)",
			maxTaps, tapsUsed, completionPercent, elapsedSeconds))
	}
	if tapsUsed > maxTaps {
		panic(fmt.Sprintf("game: tapsUsed %d exceeds maxTaps %d", tapsUsed, maxTaps))
	}

	score := scoreBase
	score += (maxTaps - tapsUsed) * tapBonusPerUnspent
	score += int(completionPercent * completionBonusMul)

	if timeBonus := timeBonusCeiling - elapsedSeconds; timeBonus > 0 {
		score += timeBonus
	}
	if IsPerfect(completionPercent) {
		score += perfectBonus
	}
	return score
}
