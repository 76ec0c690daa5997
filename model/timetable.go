package model

import "salon_manager/criteria"

// TimeTable keeps weekly opening hours as "HH:MM" strings; an empty pair
// means the salon is closed that part of the week.
type TimeTable struct {
	DTO
	WeekdayOpen   string `json:"weekdayOpen"`
	WeekdayClose  string `json:"weekdayClose"`
	SaturdayOpen  string `json:"saturdayOpen"`
	SaturdayClose string `json:"saturdayClose"`
	SundayOpen    string `json:"sundayOpen"`
	SundayClose   string `json:"sundayClose"`
}

var TimeTableCriteria = criteria.Spec{
	"id":           {Column: "time_tables.id", Kind: criteria.KindNumber},
	"weekdayOpen":  {Column: "time_tables.weekday_open", Kind: criteria.KindString},
	"weekdayClose": {Column: "time_tables.weekday_close", Kind: criteria.KindString},
}
