package models

type Gender string

const (
	GenderUnset  Gender = ""
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Preferences are the scalar settings stored outside the record namespace.
type Preferences struct {
	Gender          Gender `json:"gender"`
	Onboarded       bool   `json:"onboarded"`
	ReminderEnabled bool   `json:"reminder_enabled"`
	ReminderTime    string `json:"reminder_time"` // HH:MM, 24h
}

// DefaultPreferences mirror a fresh install: not onboarded, reminder off at 21:00.
func DefaultPreferences() Preferences {
	return Preferences{
		ReminderTime: "21:00",
	}
}
