package model

import "time"

// WeekdayColumns maps weekday 1..5 (Mon..Fri) to its column in menu_entries.
var WeekdayColumns = [5]string{"mon", "tue", "wed", "thu", "fri"}

// WeekdayColumn returns the column for weekday, or false when it is outside 1..5.
func WeekdayColumn(weekday int) (string, bool) {
	if weekday < 1 || weekday > len(WeekdayColumns) {
		return "", false
	}
	return WeekdayColumns[weekday-1], true
}

// ValidWeekday reports whether weekday is a school day (1 = Monday .. 5 = Friday).
func ValidWeekday(weekday int) bool {
	_, ok := WeekdayColumn(weekday)
	return ok
}

// MenuWeek holds the five weekday texts of one ISO week.
// An absent row is equivalent to five empty strings.
type MenuWeek struct {
	Year int    `json:"year" gorm:"primaryKey;autoIncrement:false"`
	Week int    `json:"week" gorm:"primaryKey;autoIncrement:false"`
	Mon  string `json:"mon" gorm:"type:text"`
	Tue  string `json:"tue" gorm:"type:text"`
	Wed  string `json:"wed" gorm:"type:text"`
	Thu  string `json:"thu" gorm:"type:text"`
	Fri  string `json:"fri" gorm:"type:text"`
}

// TableName pins the table name.
func (MenuWeek) TableName() string { return "menu_entries" }

// Days returns the texts ordered Monday to Friday.
func (m *MenuWeek) Days() [5]string {
	if m == nil {
		return [5]string{}
	}
	return [5]string{m.Mon, m.Tue, m.Wed, m.Thu, m.Fri}
}

// Set writes text into weekday (1..5). Out of range weekdays are ignored.
func (m *MenuWeek) Set(weekday int, text string) {
	switch weekday {
	case 1:
		m.Mon = text
	case 2:
		m.Tue = text
	case 3:
		m.Wed = text
	case 4:
		m.Thu = text
	case 5:
		m.Fri = text
	}
}

// MenuEntry is a single (year, week, weekday) cell, as produced by a bulk import.
type MenuEntry struct {
	Year    int    `json:"year"`
	Week    int    `json:"week"`
	Weekday int    `json:"weekday"`
	Text    string `json:"text"`
}

// DayView is one weekday slot of a week view.
type DayView struct {
	Weekday  int       `json:"day"`
	Date     time.Time `json:"date"`
	Text     string    `json:"text"`
	Comments int       `json:"comments"`
}

// WeekView is a week of the menu together with its Monday date.
type WeekView struct {
	Year int        `json:"year"`
	Week int        `json:"week"`
	Date time.Time  `json:"date"`
	Days [5]DayView `json:"days"`
}
