package careers

import (
	"io"
	"net/http"
	"os"
	"sync"
	"time"

	json "github.com/goccy/go-json"

	"compass-engine/internal/model"
)

// DefaultSOCCode is used when the profile names no career at all.
const DefaultSOCCode = "15-1252"

var (
	apiURL string
	cache  sync.Map
	client *http.Client
)

func init() {
	Configure(os.Getenv("CAREER_API_URL"))
}

// Configure points the registry at a live wage API. An empty URL keeps the
// registry fully offline.
func Configure(url string) {
	apiURL = url
	if apiURL == "" {
		client = nil
		return
	}
	client = &http.Client{
		Timeout: 3 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 100,
			IdleConnTimeout:     90 * time.Second,
		},
	}
}

// Lookup resolves a SOC code to wage data. Priority: in-memory cache, live
// wage API (3 second budget), verified offline table, generic fallback.
// Never returns an error; offline tactics always produce a usable record.
func Lookup(socCode string) model.CareerRecord {
	if socCode == "" {
		socCode = DefaultSOCCode
	}

	if rec, ok := cache.Load(socCode); ok {
		return rec.(model.CareerRecord)
	}

	rec, ok := fetchLive(socCode)
	if !ok {
		rec, ok = offlineWages[socCode]
		if !ok {
			rec = model.CareerRecord{
				SOCCode:         socCode,
				Title:           "Unknown Specialist",
				AnnualMeanWage:  65000,
				ProjectedGrowth: 4.0,
				Source:          sourceFallback,
			}
		}
	}

	cache.Store(socCode, rec)
	return rec
}

func fetchLive(socCode string) (model.CareerRecord, bool) {
	if client == nil {
		return model.CareerRecord{}, false
	}

	resp, err := client.Get(apiURL + "/wages/" + socCode)
	if err != nil {
		return model.CareerRecord{}, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return model.CareerRecord{}, false
	}

	var rec model.CareerRecord
	if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
		return model.CareerRecord{}, false
	}
	if rec.SOCCode == "" {
		rec.SOCCode = socCode
	}
	rec.Source = sourceLive
	return rec, true
}

// Classes lists the four playable classes and their SOC rosters.
func Classes() []model.ClassOption {
	return classOptions
}

// ClassRoster resolves a class id to its careers, offline table first.
func ClassRoster(classID string) ([]model.CareerRecord, bool) {
	socs, ok := classRosters[classID]
	if !ok {
		return nil, false
	}
	roster := make([]model.CareerRecord, 0, len(socs))
	for _, soc := range socs {
		roster = append(roster, Lookup(soc))
	}
	return roster, true
}
