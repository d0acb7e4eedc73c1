package model

// CalculationMetadata annotates every engine response so saved missions can
// be traced back to a specific run.
type CalculationMetadata struct {
	CalculationID          string `json:"calculation_id"`
	CalculationStartedAt   string `json:"calculation_started_at"`
	CalculationCompletedAt string `json:"calculation_completed_at"`
	CalculationDurationMs  int64  `json:"calculation_duration_ms"`
	CalculationOutcome     string `json:"calculation_outcome"`
}

const (
	OutcomeSuccess = "SUCCESS"
	OutcomeFailure = "FAILURE"
)

// CompareResponse is the full tactical comparison: both stat blocks plus
// the shared-axis payoff trajectory.
type CompareResponse struct {
	CalculationMetadata CalculationMetadata `json:"calculation_metadata"`
	Weights             PersonaWeights      `json:"weights"`
	School1             ScoreResult         `json:"school1"`
	School2             ScoreResult         `json:"school2"`
	Trajectory          TrajectorySet       `json:"trajectory"`
}

// ScoreResponse is the single-school damage report.
type ScoreResponse struct {
	CalculationMetadata CalculationMetadata `json:"calculation_metadata"`
	Weights             PersonaWeights      `json:"weights"`
	Result              ScoreResult         `json:"result"`
	Trajectory          []TrajectoryPoint   `json:"trajectory"`
}

// SimulateResponse is the zero-day simulator outcome.
type SimulateResponse struct {
	CalculationMetadata CalculationMetadata `json:"calculation_metadata"`
	Result              AmortizationResult  `json:"result"`
	TotalDebt           float64             `json:"totalDebt"`
	Salary              float64             `json:"salary"`
	SalaryTier          string              `json:"salaryTier"`
	Advice              []AdviceItem        `json:"advice"`
}

// MatchResult is one ranked row from the school catalog.
type MatchResult struct {
	SchoolID     int64   `json:"school_id"`
	SchoolName   string  `json:"school_name"`
	CompassScore int     `json:"compass_score"`
	Ranking      string  `json:"ranking"`
	DebtYears    float64 `json:"debt_years"`
	NetPrice     float64 `json:"net_price"`
	Earnings     float64 `json:"earnings"`
}

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}
