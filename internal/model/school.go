package model

// SchoolRecord is a College Scorecard row as the mobile client hands it
// over. The numeric fields are deliberately typed any: upstream data is
// dirty and prices, earnings and rates arrive as numbers, numeric strings,
// null, or worse. The engine coerces them to finite defaults before use.
type SchoolRecord struct {
	SchoolName   string `json:"school_name"`
	StickerPrice any    `json:"sticker_price"`
	NetPrice     any    `json:"net_price"`
	Earnings     any    `json:"earnings"`
	AdmRate      any    `json:"adm_rate"`
	Ranking      string `json:"ranking,omitempty"`
	HasSports    any    `json:"has_sports,omitempty"`
	C21Basic     any    `json:"c21basic,omitempty"`
}

// StudentProfile carries the user-level inputs that shape scoring: the
// target career drives persona weights, the budget drives the budget
// sub-score. Budget is any for the same reason as the school fields.
type StudentProfile struct {
	TargetCareer string `json:"targetCareer,omitempty"`
	Major        string `json:"major,omitempty"`
	CareerName   string `json:"careerName,omitempty"`
	Budget       any    `json:"budget,omitempty"`
}
