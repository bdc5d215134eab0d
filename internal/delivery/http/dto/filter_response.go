package dto

import "jobscout/internal/domain/filtering"

type FilterResponse struct {
	SalaryValue   int      `json:"salary_value"`
	SalaryUnknown bool     `json:"salary_unknown"`
	SalaryFlagLow bool     `json:"salary_flag_low"`
	LocationFlag  bool     `json:"location_flag"`
	ReputableFlag bool     `json:"reputable_flag"`
	Notes         []string `json:"notes"`
}

func FromFilterResult(res filtering.Result) FilterResponse {
	notes := res.Notes
	if notes == nil {
		notes = []string{}
	}
	return FilterResponse{
		SalaryValue:   res.SalaryValue,
		SalaryUnknown: res.SalaryUnknown,
		SalaryFlagLow: res.SalaryFlagLow,
		LocationFlag:  res.LocationFlag,
		ReputableFlag: res.ReputableFlag,
		Notes:         notes,
	}
}
