package handler

import (
	"errors"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"

	"compass-engine/internal/careers"
	"compass-engine/internal/catalog"
	"compass-engine/internal/engine"
	"compass-engine/internal/jsonpatch"
	"compass-engine/internal/model"
	"compass-engine/internal/scenario"
)

// Handler routes the compass API. Catalog and scenario store are optional;
// when nil their endpoints answer 503 and the pure calculation endpoints
// keep working.
type Handler struct {
	catalog   *catalog.Catalog
	scenarios *scenario.Store
}

func New(cat *catalog.Catalog, sc *scenario.Store) *Handler {
	return &Handler{catalog: cat, scenarios: sc}
}

// Route dispatches a single request.
func (h *Handler) Route(ctx *fasthttp.RequestCtx) {
	path := string(ctx.Path())
	method := string(ctx.Method())

	switch {
	case path == "/health":
		if requireMethod(ctx, method, fasthttp.MethodGet) {
			writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "ok"})
		}
	case path == "/api/classes":
		if requireMethod(ctx, method, fasthttp.MethodGet) {
			writeJSON(ctx, fasthttp.StatusOK, careers.Classes())
		}
	case strings.HasPrefix(path, "/api/classes/"):
		if requireMethod(ctx, method, fasthttp.MethodGet) {
			h.handleClassRoster(ctx, strings.TrimPrefix(path, "/api/classes/"))
		}
	case path == "/api/boss":
		if requireMethod(ctx, method, fasthttp.MethodPost) {
			h.handleBoss(ctx)
		}
	case path == "/api/score":
		if requireMethod(ctx, method, fasthttp.MethodPost) {
			h.handleScore(ctx)
		}
	case path == "/api/compare":
		if requireMethod(ctx, method, fasthttp.MethodPost) {
			h.handleCompare(ctx)
		}
	case path == "/api/trajectory":
		if requireMethod(ctx, method, fasthttp.MethodPost) {
			h.handleTrajectory(ctx)
		}
	case path == "/api/simulate":
		if requireMethod(ctx, method, fasthttp.MethodPost) {
			h.handleSimulate(ctx)
		}
	case path == "/api/match":
		if requireMethod(ctx, method, fasthttp.MethodPost) {
			h.handleMatch(ctx)
		}
	case path == "/api/schools":
		if requireMethod(ctx, method, fasthttp.MethodPost) {
			h.handleAddSchool(ctx)
		}
	case path == "/api/scenarios":
		h.handleScenarios(ctx, method)
	case strings.HasPrefix(path, "/api/scenarios/"):
		h.handleScenarioByID(ctx, method, strings.TrimPrefix(path, "/api/scenarios/"))
	default:
		writeError(ctx, fasthttp.StatusNotFound, "Not found")
	}
}

func (h *Handler) handleClassRoster(ctx *fasthttp.RequestCtx, classID string) {
	roster, ok := careers.ClassRoster(classID)
	if !ok {
		writeError(ctx, fasthttp.StatusNotFound, "Unknown class: "+classID)
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, roster)
}

func (h *Handler) handleBoss(ctx *fasthttp.RequestCtx) {
	var req model.BossRequest
	if err := decode(ctx, &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, careers.Lookup(req.SOCCode))
}

func (h *Handler) handleScore(ctx *fasthttp.RequestCtx) {
	var req model.ScoreRequest
	if err := decode(ctx, &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.School == nil {
		writeError(ctx, fasthttp.StatusBadRequest, "A school is required")
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, engine.ScoreOne(&req))
}

func (h *Handler) handleCompare(ctx *fasthttp.RequestCtx) {
	var req model.CompareRequest
	if err := decode(ctx, &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.School1 == nil || req.School2 == nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Two schools are required")
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, engine.Compare(&req))
}

func (h *Handler) handleTrajectory(ctx *fasthttp.RequestCtx) {
	var req model.TrajectoryRequest
	if err := decode(ctx, &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, struct {
		SchoolName string                  `json:"school_name,omitempty"`
		Trajectory []model.TrajectoryPoint `json:"trajectory"`
	}{
		SchoolName: req.SchoolName,
		Trajectory: engine.PayoffTrajectory(req.Debt, req.Salary),
	})
}

func (h *Handler) handleSimulate(ctx *fasthttp.RequestCtx) {
	start := time.Now()

	var req model.SimulateRequest
	if err := decode(ctx, &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	params := simulationParams(&req)

	writeJSON(ctx, fasthttp.StatusOK, model.SimulateResponse{
		CalculationMetadata: engine.Metadata(start),
		Result:              engine.Simulate(params, time.Now()),
		TotalDebt:           engine.AdjustedDebt(params),
		Salary:              engine.EffectiveSalary(params.Salary, params.SalaryTier),
		SalaryTier:          params.SalaryTier,
		Advice:              engine.AuraAdvice(req.School),
	})
}

// simulationParams resolves the simulator inputs: sticker price first, net
// price second, fallback cost last; career wage over school earnings over
// the fallback salary; any tier other than "75th" means median.
func simulationParams(req *model.SimulateRequest) model.SimulationParams {
	annualCost := float64(engine.FallbackAnnualCost)
	if req.School != nil {
		if sticker := engine.CoerceAmount(req.School.StickerPrice, 0); sticker > 0 {
			annualCost = sticker
		} else if net := engine.CoerceAmount(req.School.NetPrice, 0); net > 0 {
			annualCost = net
		}
	}

	salary := float64(engine.FallbackSimulatorSalary)
	if req.Career != nil && req.Career.AnnualMeanWage > 0 {
		salary = req.Career.AnnualMeanWage
	} else if req.School != nil {
		if earnings := engine.CoerceAmount(req.School.Earnings, 0); earnings > 0 {
			salary = earnings
		}
	}

	tier := engine.SalaryTierMedian
	if req.SalaryTier == engine.SalaryTier75th {
		tier = engine.SalaryTier75th
	}

	return model.SimulationParams{
		AnnualCost:         annualCost,
		PrincipalReduction: req.PrincipalReduction,
		MonthlyAddOn:       req.MonthlyAddOn,
		Salary:             salary,
		SalaryTier:         tier,
	}
}

func (h *Handler) handleMatch(ctx *fasthttp.RequestCtx) {
	if h.catalog == nil {
		writeError(ctx, fasthttp.StatusServiceUnavailable, "School catalog is not configured")
		return
	}

	var req model.MatchRequest
	if err := decode(ctx, &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.TargetCareerSOC == "" {
		writeError(ctx, fasthttp.StatusBadRequest, "target_career_soc is required")
		return
	}

	results, err := h.catalog.Match(&req)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, "Match failed: "+err.Error())
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, results)
}

func (h *Handler) handleAddSchool(ctx *fasthttp.RequestCtx) {
	if h.catalog == nil {
		writeError(ctx, fasthttp.StatusServiceUnavailable, "School catalog is not configured")
		return
	}

	var school model.SchoolRecord
	if err := decode(ctx, &school); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if school.SchoolName == "" {
		writeError(ctx, fasthttp.StatusBadRequest, "school_name is required")
		return
	}

	id, err := h.catalog.Add(school)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, "Add failed: "+err.Error())
		return
	}
	writeJSON(ctx, fasthttp.StatusCreated, map[string]int64{"school_id": id})
}

func (h *Handler) handleScenarios(ctx *fasthttp.RequestCtx, method string) {
	if h.scenarios == nil {
		writeError(ctx, fasthttp.StatusServiceUnavailable, "Scenario store is not configured")
		return
	}

	switch method {
	case fasthttp.MethodGet:
		all, err := h.scenarios.List()
		if err != nil {
			writeError(ctx, fasthttp.StatusInternalServerError, "List failed: "+err.Error())
			return
		}
		writeJSON(ctx, fasthttp.StatusOK, all)
	case fasthttp.MethodPost:
		var sc scenario.Scenario
		if err := decode(ctx, &sc); err != nil {
			writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
			return
		}
		if sc.SchoolName == "" {
			writeError(ctx, fasthttp.StatusBadRequest, "schoolName is required")
			return
		}
		if _, err := h.scenarios.Save(&sc); err != nil {
			writeError(ctx, fasthttp.StatusInternalServerError, "Save failed: "+err.Error())
			return
		}
		writeJSON(ctx, fasthttp.StatusCreated, sc)
	default:
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
	}
}

func (h *Handler) handleScenarioByID(ctx *fasthttp.RequestCtx, method, id string) {
	if h.scenarios == nil {
		writeError(ctx, fasthttp.StatusServiceUnavailable, "Scenario store is not configured")
		return
	}
	if id == "" || strings.Contains(id, "/") {
		writeError(ctx, fasthttp.StatusNotFound, "Not found")
		return
	}

	switch method {
	case fasthttp.MethodGet:
		sc, err := h.scenarios.Get(id)
		if err != nil {
			writeScenarioError(ctx, err)
			return
		}
		writeJSON(ctx, fasthttp.StatusOK, sc)
	case fasthttp.MethodPut:
		var sc scenario.Scenario
		if err := decode(ctx, &sc); err != nil {
			writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
			return
		}
		changes, err := h.scenarios.Update(id, &sc)
		if err != nil {
			writeScenarioError(ctx, err)
			return
		}
		writeJSON(ctx, fasthttp.StatusOK, scenarioUpdateResponse{Scenario: sc, Changes: changes})
	case fasthttp.MethodDelete:
		if err := h.scenarios.Delete(id); err != nil {
			writeScenarioError(ctx, err)
			return
		}
		writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "deleted"})
	default:
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
	}
}

type scenarioUpdateResponse struct {
	Scenario scenario.Scenario `json:"scenario"`
	Changes  []jsonpatch.Op    `json:"changes"`
}

func writeScenarioError(ctx *fasthttp.RequestCtx, err error) {
	if errors.Is(err, scenario.ErrNotFound) {
		writeError(ctx, fasthttp.StatusNotFound, "Scenario not found")
		return
	}
	writeError(ctx, fasthttp.StatusInternalServerError, err.Error())
}

func requireMethod(ctx *fasthttp.RequestCtx, got, want string) bool {
	if got != want {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return false
	}
	return true
}

func decode(ctx *fasthttp.RequestCtx, v any) error {
	return json.Unmarshal(ctx.PostBody(), v)
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	if err := json.NewEncoder(ctx).Encode(v); err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
	}
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	writeJSON(ctx, status, model.ErrorResponse{Status: status, Message: message})
}
