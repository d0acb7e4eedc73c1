package model

// Loadout holds the user-adjustable aid offsets. All values are annual
// currency amounts from slider inputs; the engine floors derived debt at
// zero so oversized loadouts are safe.
type Loadout struct {
	Scholarships       float64 `json:"scholarships"`
	FamilyContribution float64 `json:"familyContribution"`
	WorkStudy          float64 `json:"workStudy"`
}

// Total is the combined annual aid the loadout contributes.
func (l Loadout) Total() float64 {
	return l.Scholarships + l.FamilyContribution + l.WorkStudy
}

// PersonaWeights is the {ROI, Budget, Prestige} importance triple derived
// from the student's target career field. By convention the three weights
// sum to 100.
type PersonaWeights struct {
	WROI      float64 `json:"w_roi"`
	WBudget   float64 `json:"w_budget"`
	WPrestige float64 `json:"w_prestige"`
}

// SimulationParams drives the loan amortization simulator.
type SimulationParams struct {
	AnnualCost         float64 `json:"annualCost"`
	PrincipalReduction float64 `json:"principalReduction"`
	MonthlyAddOn       float64 `json:"monthlyAddOn"`
	Salary             float64 `json:"salary"`
	SalaryTier         string  `json:"salaryTier"` // "Median" or "75th"
}
