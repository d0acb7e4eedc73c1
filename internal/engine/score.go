package engine

import (
	"math"

	"compass-engine/internal/model"
)

// System-wide financial assumptions. Named here so the figures can be
// revisited without touching the algorithm.
const (
	ProgramYears        = 4    // four-year program
	RepaymentShare      = 0.20 // share of gross income available for debt service
	DefaultEarnings     = 50000
	FallbackAnnualCost  = 25000
	DefaultBudgetTarget = 25000
	CooldownSentinel    = 99 // years; stands in for "never" when repayment capacity is zero
	EliteAdmRateCutoff  = 0.20
	ElitePenaltyFactor  = 0.25
	ROICooldownSlope    = 1.5
)

// BudgetTarget resolves the profile's annual budget. Unset, unparsable,
// zero or negative budgets fall back to the default target; fractional
// input truncates to match the client's integer field.
func BudgetTarget(p model.StudentProfile) float64 {
	b := math.Trunc(Coerce(p.Budget, 0))
	if b <= 0 {
		return DefaultBudgetTarget
	}
	return b
}

// Score computes the viability stat block for one school.
//
// Two cost tracks run in parallel on purpose: displayed debt and cooldown
// use the sticker price (the worst case the student sees), while the score
// uses the aid-adjusted net price, so a school with generous aid scores
// well even though its displayed debt looks large.
func Score(school *model.SchoolRecord, loadout model.Loadout, weights model.PersonaWeights, budgetTarget float64) model.ScoreResult {
	netPrice := CoerceAmount(school.NetPrice, 0)
	stickerPrice := CoerceAmount(school.StickerPrice, 0)
	earnings := CoerceAmount(school.Earnings, DefaultEarnings)
	admRate := CoerceAmount(school.AdmRate, 1.0) // missing rate reads as open admission

	displayCost := stickerPrice
	if displayCost == 0 {
		displayCost = netPrice
	}
	if displayCost == 0 {
		displayCost = FallbackAnnualCost
	}
	totalDegreeCost := displayCost * ProgramYears

	aid := loadout.Total()
	effectiveDebt := math.Max(0, totalDegreeCost-aid)

	repayment := earnings * RepaymentShare
	cooldown := float64(CooldownSentinel)
	if repayment > 0 {
		cooldown = effectiveDebt / repayment
	}

	scoreCost := displayCost
	if netPrice > 0 {
		scoreCost = netPrice
	}
	optimisticDebt := math.Max(0, scoreCost*ProgramYears-aid)
	optimisticCooldown := float64(CooldownSentinel)
	if repayment > 0 {
		optimisticCooldown = optimisticDebt / repayment
	}

	roiScore := math.Max(0, weights.WROI-optimisticCooldown*ROICooldownSlope)

	if budgetTarget <= 0 {
		budgetTarget = DefaultBudgetTarget
	}
	annualNetCost := math.Max(0, (scoreCost*ProgramYears-aid)/ProgramYears)
	budgetScore := weights.WBudget
	if annualNetCost > budgetTarget {
		penalty := (annualNetCost/budgetTarget - 1.0) * 100
		if admRate < EliteAdmRateCutoff {
			// Elite schools discount sticker heavily in practice; soften
			// the cost penalty instead of punishing prestige picks.
			penalty *= ElitePenaltyFactor
		}
		budgetScore = math.Max(0, weights.WBudget-penalty)
	}

	prestigeScore := (1.0 - admRate) * weights.WPrestige

	score := int(math.Floor(math.Min(100, roiScore+budgetScore+prestigeScore)))
	if score < 0 {
		score = 0
	}

	return model.ScoreResult{
		Name:          school.SchoolName,
		Score:         score,
		RawCost:       displayCost,
		EffectiveDebt: effectiveDebt,
		Cooldown:      math.Round(cooldown*10) / 10,
		Salary:        earnings,
		Repayment:     repayment,
	}
}

// TierFor buckets a compass score into the ranking tiers the catalog
// reports.
func TierFor(score int) string {
	switch {
	case score >= 90:
		return "S"
	case score >= 80:
		return "A"
	case score >= 70:
		return "B"
	case score >= 50:
		return "C"
	default:
		return "F"
	}
}
