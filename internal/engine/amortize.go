package engine

import (
	"time"

	"compass-engine/internal/model"
)

// Federal Direct Loan terms, 2024-2025 award year.
const (
	InterestRate   = 0.0639 // annual, Direct Subsidized/Unsubsidized
	OriginationFee = 0.0106
	MaxMonths      = 360 // 30-year cap; doubles as the "never pays off" sentinel

	// Salary75thFactor approximates the 75th percentile wage from the median.
	Salary75thFactor = 1.3

	SalaryTierMedian = "Median"
	SalaryTier75th   = "75th"
)

// FallbackSimulatorSalary is used when neither career data nor a school
// earnings estimate is available.
const FallbackSimulatorSalary = 65000

const debtFreeDateLayout = "January 2006"

// AdjustedDebt is the financed principal: the four-year program debt net
// of the one-time principal reduction, plus the origination fee.
func AdjustedDebt(p model.SimulationParams) float64 {
	return (p.AnnualCost*ProgramYears - p.PrincipalReduction) * (1 + OriginationFee)
}

// EffectiveSalary applies the salary tier selection.
func EffectiveSalary(salary float64, tier string) float64 {
	if tier == SalaryTier75th {
		return salary * Salary75thFactor
	}
	return salary
}

// Simulate runs month-by-month amortization of the four-year program debt,
// origination fee included, until the balance clears or the 30-year cap is
// hit. A payment that never covers interest reports the cap immediately
// rather than looping on a growing balance.
func Simulate(p model.SimulationParams, now time.Time) model.AmortizationResult {
	salary := EffectiveSalary(p.Salary, p.SalaryTier)

	adjustedDebt := AdjustedDebt(p)

	baseMonthly := salary * RepaymentShare / 12
	payment := baseMonthly + p.MonthlyAddOn

	months := 0
	if payment > 0 && adjustedDebt > 0 {
		monthlyRate := InterestRate / 12
		balance := adjustedDebt
		for balance > 0 && months < MaxMonths {
			interest := balance * monthlyRate
			principal := payment - interest
			if principal <= 0 {
				months = MaxMonths
				break
			}
			balance -= principal
			months++
		}
	}

	return model.AmortizationResult{
		Months:       months,
		DebtFreeDate: now.AddDate(0, months, 0).Format(debtFreeDateLayout),
	}
}

// AuraAdvice returns the contextual hints shown alongside a simulation
// run, keyed off the school's athletics flag and Carnegie classification.
func AuraAdvice(school *model.SchoolRecord) []model.AdviceItem {
	if school == nil {
		return nil
	}

	var advice []model.AdviceItem

	if hasSports(school.HasSports) {
		advice = append(advice, model.AdviceItem{
			Title:   "Sports Powerhouse",
			Message: "Strong athletics = larger alumni networks. Could accelerate your job search by 3-6 months.",
		})
	}

	switch Coerce(school.C21Basic, 0) {
	case 15:
		advice = append(advice, model.AdviceItem{
			Title:   "R1 Research Hub",
			Message: "Top-tier research university. Prestige can boost starting salaries by 10-15% in STEM.",
		})
	case 16:
		advice = append(advice, model.AdviceItem{
			Title:   "R2 Research Institution",
			Message: "Strong research focus with good faculty ratios. Great for grad school prep.",
		})
	}

	return advice
}

func hasSports(v any) bool {
	if b, ok := v.(bool); ok {
		return b
	}
	return Coerce(v, 0) == 1
}
