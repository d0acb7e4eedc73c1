package model

// CompareRequest is the tactical comparison (PvP) input: two schools, one
// shared loadout, one profile.
type CompareRequest struct {
	School1 *SchoolRecord  `json:"school1"`
	School2 *SchoolRecord  `json:"school2"`
	Profile StudentProfile `json:"profile"`
	Loadout Loadout        `json:"loadout"`
}

// ScoreRequest scores a single school.
type ScoreRequest struct {
	School  *SchoolRecord  `json:"school"`
	Profile StudentProfile `json:"profile"`
	Loadout Loadout        `json:"loadout"`
}

// TrajectoryRequest asks for the year-by-year payoff table of an already
// computed debt at a given salary.
type TrajectoryRequest struct {
	SchoolName string  `json:"school_name,omitempty"`
	Debt       float64 `json:"debt"`
	Salary     float64 `json:"salary"`
}

// SimulateRequest drives the zero-day simulator. Career is optional; when
// absent the school's earnings estimate supplies the salary.
type SimulateRequest struct {
	School             *SchoolRecord `json:"school"`
	Career             *CareerRecord `json:"career,omitempty"`
	PrincipalReduction float64       `json:"principalReduction"`
	MonthlyAddOn       float64       `json:"monthlyAddOn"`
	SalaryTier         string        `json:"salaryTier,omitempty"`
}

// BossRequest resolves a SOC code to wage data.
type BossRequest struct {
	SOCCode string `json:"soc_code"`
}

// MatchRequest ranks the school catalog for a career and budget.
type MatchRequest struct {
	UserGPA         float64 `json:"user_gpa"`
	TargetCareerSOC string  `json:"target_career_soc"`
	UserBudget      int     `json:"user_budget"`
	Limit           int     `json:"limit,omitempty"`
}
