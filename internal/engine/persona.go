package engine

import "compass-engine/internal/model"

// defaultWeights is the balanced triple used when the career field is
// unknown or missing.
var defaultWeights = model.PersonaWeights{WROI: 40, WBudget: 30, WPrestige: 30}

// WeightsFor maps a SOC code (DD-DDDD) to persona weights via its
// two-digit group prefix. Every triple sums to 100.
func WeightsFor(socCode string) model.PersonaWeights {
	if len(socCode) < 2 {
		return defaultWeights
	}
	switch socCode[:2] {
	case "11", "13": // Leader: management, business and finance
		return model.PersonaWeights{WROI: 40, WBudget: 20, WPrestige: 40}
	case "27", "21", "25": // Creative: arts, community service, education
		return model.PersonaWeights{WROI: 20, WBudget: 60, WPrestige: 20}
	case "15", "17": // Engineer: computing, architecture and engineering
		return model.PersonaWeights{WROI: 60, WBudget: 20, WPrestige: 20}
	case "29", "51": // Healer: health practitioners and support
		return model.PersonaWeights{WROI: 35, WBudget: 35, WPrestige: 30}
	}
	return defaultWeights
}
