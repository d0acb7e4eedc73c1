package model

// ScoreResult is the fully derived stat block for one school. Field names
// are the exact camelCase keys the mobile client binds to; do not rename.
type ScoreResult struct {
	Name          string  `json:"name"`
	Score         int     `json:"score"`
	RawCost       float64 `json:"rawCost"`
	EffectiveDebt float64 `json:"effectiveDebt"`
	Cooldown      float64 `json:"cooldown"` // years, one decimal, 99 = sentinel
	Salary        float64 `json:"salary"`
	Repayment     float64 `json:"repayment"`
}

// TrajectoryPoint is one sample of the debt elimination curve.
type TrajectoryPoint struct {
	Year             int     `json:"year"`
	RemainingBalance float64 `json:"remainingBalance"`
}

// TrajectorySet is the two-series comparison chart: both series share the
// same six-label year axis.
type TrajectorySet struct {
	MaxYears int       `json:"maxYears"`
	Labels   []int     `json:"labels"`
	Series1  []float64 `json:"series1"`
	Series2  []float64 `json:"series2"`
}

// AmortizationResult is the simulator outcome. Months == 360 means the
// balance never reaches zero within the 30-year cap.
type AmortizationResult struct {
	Months       int    `json:"months"`
	DebtFreeDate string `json:"debtFreeDate"` // "January 2006"
}

// AdviceItem is a contextual hint attached to a simulation run.
type AdviceItem struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}
