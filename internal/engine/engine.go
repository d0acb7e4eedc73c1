package engine

import (
	"time"

	"github.com/google/uuid"

	"compass-engine/internal/model"
)

// Metadata stamps a response with a calculation id and timing.
func Metadata(start time.Time) model.CalculationMetadata {
	elapsed := time.Since(start)
	now := time.Now().UTC()

	return model.CalculationMetadata{
		CalculationID:          uuid.New().String(),
		CalculationStartedAt:   now.Add(-elapsed).Format(time.RFC3339),
		CalculationCompletedAt: now.Format(time.RFC3339),
		CalculationDurationMs:  elapsed.Milliseconds(),
		CalculationOutcome:     model.OutcomeSuccess,
	}
}

// Compare scores both schools with a shared loadout and persona, then
// plots their payoff trajectories on a common axis. Weights are derived
// once from the profile so both schools are judged by the same persona.
func Compare(req *model.CompareRequest) *model.CompareResponse {
	start := time.Now()

	weights := WeightsFor(req.Profile.TargetCareer)
	budget := BudgetTarget(req.Profile)

	s1 := Score(req.School1, req.Loadout, weights, budget)
	s2 := Score(req.School2, req.Loadout, weights, budget)

	return &model.CompareResponse{
		CalculationMetadata: Metadata(start),
		Weights:             weights,
		School1:             s1,
		School2:             s2,
		Trajectory:          ComparisonTrajectory(s1, s2),
	}
}

// ScoreOne is the single-school damage report: one stat block plus its
// payoff table.
func ScoreOne(req *model.ScoreRequest) *model.ScoreResponse {
	start := time.Now()

	weights := WeightsFor(req.Profile.TargetCareer)
	result := Score(req.School, req.Loadout, weights, BudgetTarget(req.Profile))

	return &model.ScoreResponse{
		CalculationMetadata: Metadata(start),
		Weights:             weights,
		Result:              result,
		Trajectory:          PayoffTrajectory(result.EffectiveDebt, result.Salary),
	}
}
