package handler

import (
	"database/sql"
	"fmt"
	"testing"

	json "github.com/goccy/go-json"
	_ "github.com/mattn/go-sqlite3"
	"github.com/valyala/fasthttp"

	"compass-engine/internal/catalog"
	"compass-engine/internal/model"
	"compass-engine/internal/scenario"
)

func engineOnly() *Handler {
	return New(nil, nil)
}

func fullStack(t *testing.T) *Handler {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	cat, err := catalog.New(db)
	if err != nil {
		t.Fatalf("init catalog: %v", err)
	}
	store, err := scenario.New(db)
	if err != nil {
		t.Fatalf("init scenario store: %v", err)
	}
	return New(cat, store)
}

func request(h *Handler, method, path, body string) *fasthttp.RequestCtx {
	ctx := &fasthttp.RequestCtx{}
	ctx.Request.SetRequestURI(path)
	ctx.Request.Header.SetMethod(method)
	if body != "" {
		ctx.Request.SetBodyString(body)
	}
	h.Route(ctx)
	return ctx
}

func decodeBody(t *testing.T, ctx *fasthttp.RequestCtx, v any) {
	t.Helper()
	if err := json.Unmarshal(ctx.Response.Body(), v); err != nil {
		t.Fatalf("decode response %q: %v", ctx.Response.Body(), err)
	}
}

func TestHealth(t *testing.T) {
	ctx := request(engineOnly(), fasthttp.MethodGet, "/health", "")
	if ctx.Response.StatusCode() != fasthttp.StatusOK {
		t.Fatalf("status = %d", ctx.Response.StatusCode())
	}

	var body map[string]string
	decodeBody(t, ctx, &body)
	if body["status"] != "ok" {
		t.Fatalf("body = %v", body)
	}
}

func TestUnknownRoute(t *testing.T) {
	ctx := request(engineOnly(), fasthttp.MethodGet, "/api/nope", "")
	if ctx.Response.StatusCode() != fasthttp.StatusNotFound {
		t.Fatalf("status = %d, want 404", ctx.Response.StatusCode())
	}
}

func TestWrongMethod(t *testing.T) {
	ctx := request(engineOnly(), fasthttp.MethodGet, "/api/compare", "")
	if ctx.Response.StatusCode() != fasthttp.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", ctx.Response.StatusCode())
	}
}

func TestClasses(t *testing.T) {
	ctx := request(engineOnly(), fasthttp.MethodGet, "/api/classes", "")
	if ctx.Response.StatusCode() != fasthttp.StatusOK {
		t.Fatalf("status = %d", ctx.Response.StatusCode())
	}

	var classes []model.ClassOption
	decodeBody(t, ctx, &classes)
	if len(classes) != 4 {
		t.Fatalf("class count = %d, want 4", len(classes))
	}
}

func TestClassRoster(t *testing.T) {
	ctx := request(engineOnly(), fasthttp.MethodGet, "/api/classes/healer", "")
	if ctx.Response.StatusCode() != fasthttp.StatusOK {
		t.Fatalf("status = %d", ctx.Response.StatusCode())
	}
	var roster []model.CareerRecord
	decodeBody(t, ctx, &roster)
	if len(roster) == 0 {
		t.Fatal("empty healer roster")
	}

	ctx = request(engineOnly(), fasthttp.MethodGet, "/api/classes/rogue", "")
	if ctx.Response.StatusCode() != fasthttp.StatusNotFound {
		t.Fatalf("unknown class status = %d, want 404", ctx.Response.StatusCode())
	}
}

func TestBoss(t *testing.T) {
	ctx := request(engineOnly(), fasthttp.MethodPost, "/api/boss", `{"soc_code":"29-1141"}`)
	if ctx.Response.StatusCode() != fasthttp.StatusOK {
		t.Fatalf("status = %d", ctx.Response.StatusCode())
	}

	var rec model.CareerRecord
	decodeBody(t, ctx, &rec)
	if rec.Title != "Registered Nurse" || rec.AnnualMeanWage != 86070 {
		t.Fatalf("boss = %+v", rec)
	}
}

func TestScoreEndpoint(t *testing.T) {
	body := `{
		"school": {"school_name":"State University","sticker_price":25000,"net_price":18000,"earnings":75000,"adm_rate":0.95},
		"profile": {"targetCareer":""},
		"loadout": {}
	}`
	ctx := request(engineOnly(), fasthttp.MethodPost, "/api/score", body)
	if ctx.Response.StatusCode() != fasthttp.StatusOK {
		t.Fatalf("status = %d: %s", ctx.Response.StatusCode(), ctx.Response.Body())
	}

	var resp model.ScoreResponse
	decodeBody(t, ctx, &resp)
	if resp.Result.Score != 64 {
		t.Fatalf("score = %d, want 64", resp.Result.Score)
	}
	if len(resp.Trajectory) != 9 {
		t.Fatalf("trajectory rows = %d, want 9", len(resp.Trajectory))
	}
	if resp.CalculationMetadata.CalculationID == "" {
		t.Fatal("missing calculation id")
	}
	if resp.CalculationMetadata.CalculationOutcome != model.OutcomeSuccess {
		t.Fatalf("outcome = %q", resp.CalculationMetadata.CalculationOutcome)
	}
}

func TestScoreRequiresSchool(t *testing.T) {
	ctx := request(engineOnly(), fasthttp.MethodPost, "/api/score", `{"profile":{},"loadout":{}}`)
	if ctx.Response.StatusCode() != fasthttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", ctx.Response.StatusCode())
	}
}

func TestCompareEndpoint(t *testing.T) {
	body := `{
		"school1": {"school_name":"State University","sticker_price":25000,"net_price":18000,"earnings":75000,"adm_rate":0.95},
		"school2": {"school_name":"Tech Institute","sticker_price":55000,"net_price":32000,"earnings":95000,"adm_rate":0.30},
		"profile": {"targetCareer":"15-1252"},
		"loadout": {"scholarships":5000}
	}`
	ctx := request(engineOnly(), fasthttp.MethodPost, "/api/compare", body)
	if ctx.Response.StatusCode() != fasthttp.StatusOK {
		t.Fatalf("status = %d: %s", ctx.Response.StatusCode(), ctx.Response.Body())
	}

	var resp model.CompareResponse
	decodeBody(t, ctx, &resp)
	if resp.Weights.WROI != 60 {
		t.Fatalf("weights = %+v, want tech persona", resp.Weights)
	}
	if resp.School1.Name != "State University" || resp.School2.Name != "Tech Institute" {
		t.Fatalf("names = %q, %q", resp.School1.Name, resp.School2.Name)
	}
	if len(resp.Trajectory.Labels) != 6 || len(resp.Trajectory.Series1) != 6 {
		t.Fatalf("trajectory shape: %+v", resp.Trajectory)
	}
}

func TestCompareRequiresBothSchools(t *testing.T) {
	body := `{"school1": {"school_name":"Lonely U"}, "profile": {}, "loadout": {}}`
	ctx := request(engineOnly(), fasthttp.MethodPost, "/api/compare", body)
	if ctx.Response.StatusCode() != fasthttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", ctx.Response.StatusCode())
	}
}

func TestTrajectoryEndpoint(t *testing.T) {
	ctx := request(engineOnly(), fasthttp.MethodPost, "/api/trajectory", `{"debt":100000,"salary":75000}`)
	if ctx.Response.StatusCode() != fasthttp.StatusOK {
		t.Fatalf("status = %d", ctx.Response.StatusCode())
	}

	var resp struct {
		Trajectory []model.TrajectoryPoint `json:"trajectory"`
	}
	decodeBody(t, ctx, &resp)
	if len(resp.Trajectory) != 9 {
		t.Fatalf("rows = %d, want 9", len(resp.Trajectory))
	}
	if resp.Trajectory[0].RemainingBalance != 100000 {
		t.Fatalf("year 0 balance = %v", resp.Trajectory[0].RemainingBalance)
	}
}

func TestSimulateEndpoint(t *testing.T) {
	body := `{
		"school": {"school_name":"State University","sticker_price":25000,"has_sports":true,"c21basic":15},
		"principalReduction": 0,
		"monthlyAddOn": 0
	}`
	ctx := request(engineOnly(), fasthttp.MethodPost, "/api/simulate", body)
	if ctx.Response.StatusCode() != fasthttp.StatusOK {
		t.Fatalf("status = %d: %s", ctx.Response.StatusCode(), ctx.Response.Body())
	}

	var resp model.SimulateResponse
	decodeBody(t, ctx, &resp)
	if resp.Result.Months != 130 {
		t.Fatalf("months = %d, want 130", resp.Result.Months)
	}
	if resp.TotalDebt != 101060 {
		t.Fatalf("totalDebt = %v, want 101060", resp.TotalDebt)
	}
	if resp.Salary != 65000 || resp.SalaryTier != "Median" {
		t.Fatalf("salary = %v tier = %q", resp.Salary, resp.SalaryTier)
	}
	if len(resp.Advice) != 2 {
		t.Fatalf("advice = %+v, want sports + R1", resp.Advice)
	}
}

func TestSimulateCareerSalaryWins(t *testing.T) {
	body := `{
		"school": {"school_name":"State University","sticker_price":25000,"earnings":75000},
		"career": {"soc_code":"15-1252","title":"Software Developer","annual_mean_wage":132270},
		"salaryTier": "75th"
	}`
	ctx := request(engineOnly(), fasthttp.MethodPost, "/api/simulate", body)
	if ctx.Response.StatusCode() != fasthttp.StatusOK {
		t.Fatalf("status = %d", ctx.Response.StatusCode())
	}

	var resp model.SimulateResponse
	decodeBody(t, ctx, &resp)
	if resp.Salary != 132270*1.3 {
		t.Fatalf("salary = %v, want 75th tier of career wage", resp.Salary)
	}
	if resp.SalaryTier != "75th" {
		t.Fatalf("tier = %q", resp.SalaryTier)
	}
}

func TestMatchWithoutCatalog(t *testing.T) {
	ctx := request(engineOnly(), fasthttp.MethodPost, "/api/match", `{"target_career_soc":"15-1252"}`)
	if ctx.Response.StatusCode() != fasthttp.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", ctx.Response.StatusCode())
	}
}

func TestMatchEndpoint(t *testing.T) {
	h := fullStack(t)

	seed := `{"school_name":"Affordable State","sticker_price":12000,"net_price":9000,"earnings":70000,"adm_rate":0.85}`
	ctx := request(h, fasthttp.MethodPost, "/api/schools", seed)
	if ctx.Response.StatusCode() != fasthttp.StatusCreated {
		t.Fatalf("seed status = %d: %s", ctx.Response.StatusCode(), ctx.Response.Body())
	}

	ctx = request(h, fasthttp.MethodPost, "/api/match", `{"target_career_soc":"15-1252","user_budget":25000,"user_gpa":3.5}`)
	if ctx.Response.StatusCode() != fasthttp.StatusOK {
		t.Fatalf("status = %d: %s", ctx.Response.StatusCode(), ctx.Response.Body())
	}

	var results []model.MatchResult
	decodeBody(t, ctx, &results)
	if len(results) != 1 || results[0].SchoolName != "Affordable State" {
		t.Fatalf("results = %+v", results)
	}
}

func TestMatchRequiresSOC(t *testing.T) {
	ctx := request(fullStack(t), fasthttp.MethodPost, "/api/match", `{"user_budget":25000}`)
	if ctx.Response.StatusCode() != fasthttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", ctx.Response.StatusCode())
	}
}

func TestScenarioLifecycle(t *testing.T) {
	h := fullStack(t)

	body := `{"schoolName":"State University","careerName":"Software Developer","salaryTier":"Median","salary":132270,"totalDebt":101060,"debtFreeMonths":52,"debtFreeDate":"May 2030"}`
	ctx := request(h, fasthttp.MethodPost, "/api/scenarios", body)
	if ctx.Response.StatusCode() != fasthttp.StatusCreated {
		t.Fatalf("create status = %d: %s", ctx.Response.StatusCode(), ctx.Response.Body())
	}
	var created scenario.Scenario
	decodeBody(t, ctx, &created)
	if created.ID == "" {
		t.Fatal("missing scenario id")
	}

	ctx = request(h, fasthttp.MethodGet, "/api/scenarios", "")
	var all []scenario.Scenario
	decodeBody(t, ctx, &all)
	if len(all) != 1 {
		t.Fatalf("list count = %d, want 1", len(all))
	}

	update := `{"schoolName":"State University","careerName":"Software Developer","salaryTier":"Median","salary":132270,"totalDebt":101060,"monthlyAddOn":250,"debtFreeMonths":44,"debtFreeDate":"September 2029"}`
	ctx = request(h, fasthttp.MethodPut, fmt.Sprintf("/api/scenarios/%s", created.ID), update)
	if ctx.Response.StatusCode() != fasthttp.StatusOK {
		t.Fatalf("update status = %d: %s", ctx.Response.StatusCode(), ctx.Response.Body())
	}
	var updated scenarioUpdateResponse
	decodeBody(t, ctx, &updated)
	if len(updated.Changes) != 3 {
		t.Fatalf("changes = %+v, want 3 replacements", updated.Changes)
	}

	ctx = request(h, fasthttp.MethodDelete, fmt.Sprintf("/api/scenarios/%s", created.ID), "")
	if ctx.Response.StatusCode() != fasthttp.StatusOK {
		t.Fatalf("delete status = %d", ctx.Response.StatusCode())
	}

	ctx = request(h, fasthttp.MethodGet, fmt.Sprintf("/api/scenarios/%s", created.ID), "")
	if ctx.Response.StatusCode() != fasthttp.StatusNotFound {
		t.Fatalf("get deleted status = %d, want 404", ctx.Response.StatusCode())
	}
}

func TestScenariosWithoutStore(t *testing.T) {
	ctx := request(engineOnly(), fasthttp.MethodGet, "/api/scenarios", "")
	if ctx.Response.StatusCode() != fasthttp.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", ctx.Response.StatusCode())
	}
}
