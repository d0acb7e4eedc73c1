package careers

import "compass-engine/internal/model"

const (
	sourceLive     = "Live Wage API"
	sourceOffline  = "BLS May 2023 (offline)"
	sourceFallback = "Offline Database"
)

// offlineWages is the verified May-2023 BLS OES dataset the app ships with
// so career lookups survive without network access.
var offlineWages = map[string]model.CareerRecord{
	// Engineer (builders)
	"15-1252": {SOCCode: "15-1252", Title: "Software Developer", AnnualMeanWage: 132270, ProjectedGrowth: 25.0, Source: sourceOffline},
	"17-2051": {SOCCode: "17-2051", Title: "Civil Engineer", AnnualMeanWage: 95890, ProjectedGrowth: 5.0, Source: sourceOffline},
	"17-2141": {SOCCode: "17-2141", Title: "Mechanical Engineer", AnnualMeanWage: 100820, ProjectedGrowth: 10.0, Source: sourceOffline},
	"17-2071": {SOCCode: "17-2071", Title: "Electrical Engineer", AnnualMeanWage: 106950, ProjectedGrowth: 5.0, Source: sourceOffline},
	"17-2011": {SOCCode: "17-2011", Title: "Aerospace Engineer", AnnualMeanWage: 130720, ProjectedGrowth: 6.0, Source: sourceOffline},
	"15-1251": {SOCCode: "15-1251", Title: "Computer Programmer", AnnualMeanWage: 99700, ProjectedGrowth: -11.0, Source: sourceOffline},
	"15-2031": {SOCCode: "15-2031", Title: "Operations Analyst", AnnualMeanWage: 82360, ProjectedGrowth: 23.0, Source: sourceOffline},
	"19-2031": {SOCCode: "19-2031", Title: "Chemist", AnnualMeanWage: 95570, ProjectedGrowth: 6.0, Source: sourceOffline},
	"19-1029": {SOCCode: "19-1029", Title: "Biologist", AnnualMeanWage: 98770, ProjectedGrowth: 5.0, Source: sourceOffline},
	"17-2199": {SOCCode: "17-2199", Title: "Robotics Engineer", AnnualMeanWage: 115560, ProjectedGrowth: 12.0, Source: sourceOffline},

	// Healer (guardians)
	"29-1248": {SOCCode: "29-1248", Title: "Surgeon", AnnualMeanWage: 343990, ProjectedGrowth: 3.0, Source: sourceOffline},
	"29-1141": {SOCCode: "29-1141", Title: "Registered Nurse", AnnualMeanWage: 86070, ProjectedGrowth: 6.0, Source: sourceOffline},
	"29-1021": {SOCCode: "29-1021", Title: "Dentist", AnnualMeanWage: 191760, ProjectedGrowth: 4.0, Source: sourceOffline},
	"29-1171": {SOCCode: "29-1171", Title: "Nurse Practitioner", AnnualMeanWage: 126260, ProjectedGrowth: 45.0, Source: sourceOffline},
	"29-1051": {SOCCode: "29-1051", Title: "Pharmacist", AnnualMeanWage: 136030, ProjectedGrowth: 3.0, Source: sourceOffline},
	"29-1123": {SOCCode: "29-1123", Title: "Physical Therapist", AnnualMeanWage: 99710, ProjectedGrowth: 15.0, Source: sourceOffline},
	"29-1071": {SOCCode: "29-1071", Title: "Physician Assistant", AnnualMeanWage: 130020, ProjectedGrowth: 27.0, Source: sourceOffline},
	"31-1131": {SOCCode: "31-1131", Title: "Nursing Assistant", AnnualMeanWage: 38130, ProjectedGrowth: 4.0, Source: sourceOffline},
	"29-2061": {SOCCode: "29-2061", Title: "LPN / LVN", AnnualMeanWage: 59730, ProjectedGrowth: 5.0, Source: sourceOffline},
	"19-1042": {SOCCode: "19-1042", Title: "Medical Scientist", AnnualMeanWage: 100890, ProjectedGrowth: 10.0, Source: sourceOffline},

	// Leader (commanders)
	"11-1011": {SOCCode: "11-1011", Title: "Chief Executive", AnnualMeanWage: 258900, ProjectedGrowth: -8.0, Source: sourceOffline},
	"11-2021": {SOCCode: "11-2021", Title: "Marketing Manager", AnnualMeanWage: 157620, ProjectedGrowth: 6.0, Source: sourceOffline},
	"11-3031": {SOCCode: "11-3031", Title: "Financial Manager", AnnualMeanWage: 156100, ProjectedGrowth: 16.0, Source: sourceOffline},
	"11-1021": {SOCCode: "11-1021", Title: "General Manager", AnnualMeanWage: 106470, ProjectedGrowth: 4.0, Source: sourceOffline},
	"11-2022": {SOCCode: "11-2022", Title: "Sales Manager", AnnualMeanWage: 135790, ProjectedGrowth: 4.0, Source: sourceOffline},
	"11-3121": {SOCCode: "11-3121", Title: "HR Manager", AnnualMeanWage: 136350, ProjectedGrowth: 5.0, Source: sourceOffline},
	"13-1111": {SOCCode: "13-1111", Title: "Management Analyst", AnnualMeanWage: 99410, ProjectedGrowth: 10.0, Source: sourceOffline},
	"13-2011": {SOCCode: "13-2011", Title: "Accountant", AnnualMeanWage: 79880, ProjectedGrowth: 4.0, Source: sourceOffline},
	"11-9033": {SOCCode: "11-9033", Title: "Education Admin", AnnualMeanWage: 103460, ProjectedGrowth: 3.0, Source: sourceOffline},
	"23-1011": {SOCCode: "23-1011", Title: "Lawyer", AnnualMeanWage: 145760, ProjectedGrowth: 8.0, Source: sourceOffline},

	// Creative (architects)
	"27-1011": {SOCCode: "27-1011", Title: "Art Director", AnnualMeanWage: 110590, ProjectedGrowth: 6.0, Source: sourceOffline},
	"27-1024": {SOCCode: "27-1024", Title: "Graphic Designer", AnnualMeanWage: 64500, ProjectedGrowth: 3.0, Source: sourceOffline},
	"27-3041": {SOCCode: "27-3041", Title: "Editor", AnnualMeanWage: 76400, ProjectedGrowth: -4.0, Source: sourceOffline},
	"27-1014": {SOCCode: "27-1014", Title: "Animator / VFX", AnnualMeanWage: 99130, ProjectedGrowth: 8.0, Source: sourceOffline},
	"27-2012": {SOCCode: "27-2012", Title: "Producer / Director", AnnualMeanWage: 105630, ProjectedGrowth: 7.0, Source: sourceOffline},
	"27-3031": {SOCCode: "27-3031", Title: "Public Relations", AnnualMeanWage: 73250, ProjectedGrowth: 6.0, Source: sourceOffline},
	"27-4011": {SOCCode: "27-4011", Title: "Audio Engineer", AnnualMeanWage: 65160, ProjectedGrowth: 5.0, Source: sourceOffline},
	"27-2041": {SOCCode: "27-2041", Title: "Music Director", AnnualMeanWage: 66140, ProjectedGrowth: 2.0, Source: sourceOffline},
	"27-1021": {SOCCode: "27-1021", Title: "Commercial Designer", AnnualMeanWage: 77640, ProjectedGrowth: 4.0, Source: sourceOffline},
	"25-1121": {SOCCode: "25-1121", Title: "Art Professor", AnnualMeanWage: 88350, ProjectedGrowth: 3.0, Source: sourceOffline},
}

var classRosters = map[string][]string{
	"engineer": {"15-1252", "17-2051", "17-2141", "17-2071", "17-2011", "15-1251", "15-2031", "19-2031", "19-1029", "17-2199"},
	"healer":   {"29-1248", "29-1141", "29-1021", "29-1171", "29-1051", "29-1123", "29-1071", "31-1131", "29-2061", "19-1042"},
	"leader":   {"11-1011", "11-2021", "11-3031", "11-1021", "11-2022", "11-3121", "13-1111", "13-2011", "11-9033", "23-1011"},
	"creative": {"27-1011", "27-1024", "27-3041", "27-1014", "27-2012", "27-3031", "27-4011", "27-2041", "27-1021", "25-1121"},
}

var classOptions = []model.ClassOption{
	{ID: "engineer", Name: "Engineer", SOCCodes: []string{"17-0000", "15-0000"}, Description: "Builders of the digital and physical world."},
	{ID: "healer", Name: "Healer", SOCCodes: []string{"29-0000"}, Description: "Guardians of health and vitality."},
	{ID: "leader", Name: "Leader", SOCCodes: []string{"11-0000", "13-0000"}, Description: "Commanders of organizations and capital."},
	{ID: "creative", Name: "Creative", SOCCodes: []string{"27-0000"}, Description: "Attributes of culture and imagination."},
}
