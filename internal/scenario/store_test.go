package scenario

import (
	"database/sql"
	"errors"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	s, err := New(db)
	if err != nil {
		t.Fatalf("init store: %v", err)
	}
	return s
}

func sample() *Scenario {
	return &Scenario{
		SchoolName:     "State University",
		CareerName:     "Software Developer",
		SalaryTier:     "Median",
		Salary:         132270,
		TotalDebt:      101060,
		MonthlyAddOn:   0,
		DebtFreeMonths: 52,
		DebtFreeDate:   "May 2030",
	}
}

func TestSaveAndGet(t *testing.T) {
	s := openTestStore(t)

	id, err := s.Save(sample())
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if id == "" {
		t.Fatal("expected generated id")
	}

	got, err := s.Get(id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.SchoolName != "State University" || got.DebtFreeMonths != 52 {
		t.Fatalf("loaded scenario = %+v", got)
	}
	if got.CreatedAt == "" {
		t.Fatal("expected created_at to be stamped")
	}
}

func TestGetMissing(t *testing.T) {
	s := openTestStore(t)

	if _, err := s.Get("nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestList(t *testing.T) {
	s := openTestStore(t)

	if _, err := s.Save(sample()); err != nil {
		t.Fatalf("save: %v", err)
	}
	second := sample()
	second.SchoolName = "Tech Institute"
	if _, err := s.Save(second); err != nil {
		t.Fatalf("save: %v", err)
	}

	all, err := s.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("count = %d, want 2", len(all))
	}
}

func TestUpdateReportsChanges(t *testing.T) {
	s := openTestStore(t)

	id, err := s.Save(sample())
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	edited := sample()
	edited.MonthlyAddOn = 250
	edited.DebtFreeMonths = 44
	edited.DebtFreeDate = "September 2029"

	ops, err := s.Update(id, edited)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(ops) != 3 {
		t.Fatalf("patch ops = %+v, want 3 replacements", ops)
	}
	for _, op := range ops {
		if op.Op != "replace" {
			t.Fatalf("unexpected op %+v", op)
		}
	}

	got, err := s.Get(id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.MonthlyAddOn != 250 || got.DebtFreeMonths != 44 {
		t.Fatalf("update not persisted: %+v", got)
	}
	if got.ID != id {
		t.Fatalf("id changed on update: %q", got.ID)
	}
}

func TestUpdateNoChanges(t *testing.T) {
	s := openTestStore(t)

	id, err := s.Save(sample())
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	ops, err := s.Update(id, sample())
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(ops) != 0 {
		t.Fatalf("expected empty patch, got %+v", ops)
	}
}

func TestDelete(t *testing.T) {
	s := openTestStore(t)

	id, err := s.Save(sample())
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.Delete(id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := s.Delete(id); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete err = %v, want ErrNotFound", err)
	}
}
