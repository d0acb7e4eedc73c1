package model

// CareerRecord is the "boss" a student fights: wage and outlook data for a
// single SOC occupation code (format DD-DDDD).
type CareerRecord struct {
	SOCCode         string  `json:"soc_code"`
	Title           string  `json:"title"`
	AnnualMeanWage  float64 `json:"annual_mean_wage"`
	ProjectedGrowth float64 `json:"projected_growth"`
	Source          string  `json:"source,omitempty"`
}

// ClassOption groups SOC codes into the four playable classes.
type ClassOption struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	SOCCodes    []string `json:"soc_codes"`
	Description string   `json:"description"`
}
