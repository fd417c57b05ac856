package user

import "time"

// User is a sales agent ("closer") account.
type User struct {
	Id          int
	Uid         string
	Username    string
	DisplayName string
	Settings    Settings
}

type ExternalCalendarType string

const (
	NoExternalCalendar ExternalCalendarType = "none"
	GoogleCalendar     ExternalCalendarType = "google"
)

type Settings struct {
	Timezone             string
	WeekFirstDay         time.Weekday
	ExternalCalendarType ExternalCalendarType
	GoogleCalendar       GoogleCalendarSettings
}

type GoogleCalendarSettings struct {
	CalendarId string
}
