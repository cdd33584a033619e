package domain

// CollegeInfo is the institution profile printed on certificates and reports.
type CollegeInfo struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	UnitCode string `json:"unitCode"`
}

// DefaultCollegeInfo is used until the profile has been saved once.
func DefaultCollegeInfo() CollegeInfo {
	return CollegeInfo{
		Name:     "St. Paul College",
		Address:  "Ulhasnagar-421004, Affiliated to University of Mumbai",
		UnitCode: "B-22",
	}
}
