package scenario

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"compass-engine/internal/jsonpatch"
)

// ErrNotFound is returned when a scenario id does not exist.
var ErrNotFound = errors.New("scenario not found")

// Scenario is one saved simulator run, enough to reload the zero-day
// screen exactly as it was.
type Scenario struct {
	ID                 string  `json:"id"`
	SchoolName         string  `json:"schoolName"`
	CareerName         string  `json:"careerName"`
	SalaryTier         string  `json:"salaryTier"`
	Salary             float64 `json:"salary"`
	TotalDebt          float64 `json:"totalDebt"`
	PrincipalReduction float64 `json:"principalReduction"`
	MonthlyAddOn       float64 `json:"monthlyAddOn"`
	DebtFreeMonths     int     `json:"debtFreeMonths"`
	DebtFreeDate       string  `json:"debtFreeDate"`
	CreatedAt          string  `json:"createdAt"`
}

// params are the editable fields, in JSON form, for change tracking.
func (s *Scenario) params() map[string]any {
	return map[string]any{
		"schoolName":         s.SchoolName,
		"careerName":         s.CareerName,
		"salaryTier":         s.SalaryTier,
		"salary":             s.Salary,
		"totalDebt":          s.TotalDebt,
		"principalReduction": s.PrincipalReduction,
		"monthlyAddOn":       s.MonthlyAddOn,
		"debtFreeMonths":     float64(s.DebtFreeMonths),
		"debtFreeDate":       s.DebtFreeDate,
	}
}

// Store persists saved scenarios. The engine never reads it; it exists so
// the client can reload and edit past simulations.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) (*Store, error) {
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS scenarios (
			id                  TEXT PRIMARY KEY,
			school_name         TEXT NOT NULL,
			career_name         TEXT,
			salary_tier         TEXT,
			salary              REAL,
			total_debt          REAL,
			principal_reduction REAL,
			monthly_add_on      REAL,
			debt_free_months    INTEGER,
			debt_free_date      TEXT,
			created_at          TEXT NOT NULL
		)`)
	return err
}

// Save inserts a scenario and returns its generated id.
func (s *Store) Save(sc *Scenario) (string, error) {
	sc.ID = uuid.New().String()
	sc.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	_, err := s.db.Exec(`
		INSERT INTO scenarios (id, school_name, career_name, salary_tier, salary, total_debt,
			principal_reduction, monthly_add_on, debt_free_months, debt_free_date, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sc.ID, sc.SchoolName, sc.CareerName, sc.SalaryTier, sc.Salary, sc.TotalDebt,
		sc.PrincipalReduction, sc.MonthlyAddOn, sc.DebtFreeMonths, sc.DebtFreeDate, sc.CreatedAt)
	if err != nil {
		return "", err
	}
	return sc.ID, nil
}

const scenarioColumns = `id, school_name, career_name, salary_tier, salary, total_debt,
	principal_reduction, monthly_add_on, debt_free_months, debt_free_date, created_at`

func scanScenario(row interface{ Scan(...any) error }) (*Scenario, error) {
	var sc Scenario
	err := row.Scan(&sc.ID, &sc.SchoolName, &sc.CareerName, &sc.SalaryTier, &sc.Salary,
		&sc.TotalDebt, &sc.PrincipalReduction, &sc.MonthlyAddOn, &sc.DebtFreeMonths,
		&sc.DebtFreeDate, &sc.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &sc, nil
}

// Get loads one scenario by id.
func (s *Store) Get(id string) (*Scenario, error) {
	row := s.db.QueryRow(`SELECT `+scenarioColumns+` FROM scenarios WHERE id = ?`, id)
	sc, err := scanScenario(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return sc, err
}

// List returns all saved scenarios, newest first.
func (s *Store) List() ([]Scenario, error) {
	rows, err := s.db.Query(`SELECT ` + scenarioColumns + ` FROM scenarios ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Scenario{}
	for rows.Next() {
		sc, err := scanScenario(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *sc)
	}
	return out, rows.Err()
}

// Update overwrites an existing scenario and reports what changed as an
// RFC 6902 patch, so the client can show an edit summary.
func (s *Store) Update(id string, sc *Scenario) ([]jsonpatch.Op, error) {
	old, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	sc.ID = old.ID
	sc.CreatedAt = old.CreatedAt

	_, err = s.db.Exec(`
		UPDATE scenarios SET school_name = ?, career_name = ?, salary_tier = ?, salary = ?,
			total_debt = ?, principal_reduction = ?, monthly_add_on = ?,
			debt_free_months = ?, debt_free_date = ?
		WHERE id = ?`,
		sc.SchoolName, sc.CareerName, sc.SalaryTier, sc.Salary, sc.TotalDebt,
		sc.PrincipalReduction, sc.MonthlyAddOn, sc.DebtFreeMonths, sc.DebtFreeDate, id)
	if err != nil {
		return nil, err
	}

	return jsonpatch.Diff(old.params(), sc.params(), ""), nil
}

// Delete removes a saved scenario.
func (s *Store) Delete(id string) error {
	res, err := s.db.Exec(`DELETE FROM scenarios WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
