package engine

import (
	"math"

	"compass-engine/internal/model"
)

const (
	comparisonSamples    = 6
	minComparisonYears   = 5
	singleSeriesCapYears = 15
)

// ComparisonTrajectory plots both schools' remaining debt on a shared
// axis: six evenly spaced sample years from zero to one past the longer
// cooldown (never shorter than the five-year minimum).
func ComparisonTrajectory(s1, s2 model.ScoreResult) model.TrajectorySet {
	maxYears := int(math.Ceil(math.Max(math.Max(s1.Cooldown, s2.Cooldown), minComparisonYears))) + 1

	set := model.TrajectorySet{
		MaxYears: maxYears,
		Labels:   make([]int, comparisonSamples),
		Series1:  make([]float64, comparisonSamples),
		Series2:  make([]float64, comparisonSamples),
	}
	for i := 0; i < comparisonSamples; i++ {
		year := int(math.Floor(float64(maxYears) / 5 * float64(i)))
		set.Labels[i] = year
		set.Series1[i] = remainingAt(s1, year)
		set.Series2[i] = remainingAt(s2, year)
	}
	return set
}

func remainingAt(s model.ScoreResult, year int) float64 {
	return math.Max(0, s.EffectiveDebt-s.Repayment*float64(year))
}

// PayoffTrajectory builds the single-school year-by-year balance table,
// one row per year from zero through one past payoff, capped at 15 years
// for display. With no repayment capacity the table runs the full cap with
// a flat balance.
func PayoffTrajectory(debt, salary float64) []model.TrajectoryPoint {
	repayment := salary * RepaymentShare

	maxYears := singleSeriesCapYears
	if repayment > 0 {
		if y := int(math.Ceil(debt/repayment)) + 1; y < maxYears {
			maxYears = y
		}
	}

	points := make([]model.TrajectoryPoint, 0, maxYears+1)
	for year := 0; year <= maxYears; year++ {
		points = append(points, model.TrajectoryPoint{
			Year:             year,
			RemainingBalance: math.Max(0, debt-repayment*float64(year)),
		})
	}
	return points
}
