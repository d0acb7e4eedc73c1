package catalog

import (
	"database/sql"
	"math"
	"sort"

	"compass-engine/internal/engine"
	"compass-engine/internal/model"
)

// DefaultMatchLimit caps the ranked list returned to the mission map.
const DefaultMatchLimit = 20

// Catalog is the local College Scorecard extract the match endpoint ranks.
type Catalog struct {
	db *sql.DB
}

func New(db *sql.DB) (*Catalog, error) {
	c := &Catalog{db: db}
	if err := c.ensureSchema(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Catalog) ensureSchema() error {
	_, err := c.db.Exec(`
		CREATE TABLE IF NOT EXISTS schools (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			school_name   TEXT NOT NULL,
			sticker_price REAL,
			net_price     REAL,
			earnings      REAL,
			adm_rate      REAL,
			has_sports    INTEGER DEFAULT 0,
			c21basic      INTEGER
		)`)
	return err
}

// Add inserts a school row. Unusable numeric values are stored as NULL so
// the engine's defaults apply on the way back out.
func (c *Catalog) Add(s model.SchoolRecord) (int64, error) {
	res, err := c.db.Exec(`
		INSERT INTO schools (school_name, sticker_price, net_price, earnings, adm_rate, has_sports, c21basic)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		s.SchoolName,
		nullable(s.StickerPrice),
		nullable(s.NetPrice),
		nullable(s.Earnings),
		nullable(s.AdmRate),
		nullable(s.HasSports),
		nullable(s.C21Basic),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func nullable(v any) any {
	if v == nil {
		return nil
	}
	f := engine.Coerce(v, math.NaN())
	if math.IsNaN(f) {
		return nil
	}
	return f
}

type schoolRow struct {
	id     int64
	school model.SchoolRecord
}

func (c *Catalog) schools() ([]schoolRow, error) {
	rows, err := c.db.Query(`
		SELECT id, school_name, sticker_price, net_price, earnings, adm_rate, has_sports, c21basic
		FROM schools`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []schoolRow
	for rows.Next() {
		var (
			r                           schoolRow
			sticker, net, earnings, adm sql.NullFloat64
			sports, c21                 sql.NullInt64
		)
		if err := rows.Scan(&r.id, &r.school.SchoolName, &sticker, &net, &earnings, &adm, &sports, &c21); err != nil {
			return nil, err
		}
		r.school.StickerPrice = fromNullFloat(sticker)
		r.school.NetPrice = fromNullFloat(net)
		r.school.Earnings = fromNullFloat(earnings)
		r.school.AdmRate = fromNullFloat(adm)
		r.school.HasSports = fromNullInt(sports)
		r.school.C21Basic = fromNullInt(c21)
		out = append(out, r)
	}
	return out, rows.Err()
}

func fromNullFloat(v sql.NullFloat64) any {
	if !v.Valid {
		return nil
	}
	return v.Float64
}

func fromNullInt(v sql.NullInt64) any {
	if !v.Valid {
		return nil
	}
	return float64(v.Int64)
}

// Match scores every cataloged school for the requested career and budget
// with a zero loadout and returns the ranked list. An elite school is
// downgraded when the applicant's GPA is far below its intake profile.
func (c *Catalog) Match(req *model.MatchRequest) ([]model.MatchResult, error) {
	rows, err := c.schools()
	if err != nil {
		return nil, err
	}

	weights := engine.WeightsFor(req.TargetCareerSOC)
	budget := float64(req.UserBudget)
	if budget <= 0 {
		budget = engine.DefaultBudgetTarget
	}

	results := make([]model.MatchResult, 0, len(rows))
	for _, r := range rows {
		sr := engine.Score(&r.school, model.Loadout{}, weights, budget)

		score := sr.Score
		admRate := engine.CoerceAmount(r.school.AdmRate, 1.0)
		if admRate < engine.EliteAdmRateCutoff && req.UserGPA > 0 && req.UserGPA < 3.5 {
			score = int(float64(score) * 0.4)
		}

		results = append(results, model.MatchResult{
			SchoolID:     r.id,
			SchoolName:   sr.Name,
			CompassScore: score,
			Ranking:      engine.TierFor(score),
			DebtYears:    sr.Cooldown,
			NetPrice:     engine.CoerceAmount(r.school.NetPrice, 0),
			Earnings:     sr.Salary,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].CompassScore > results[j].CompassScore
	})

	limit := req.Limit
	if limit <= 0 {
		limit = DefaultMatchLimit
	}
	if limit > len(results) {
		limit = len(results)
	}
	return results[:limit], nil
}
