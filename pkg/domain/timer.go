package domain

import "fmt"

// ReminderSettings controls the timer reminder schedule. EndSeconds of zero
// means no configured end time; negative values collapse to zero.
// PauseAfterRemindSeconds is meaningful only when RemindIntervalSeconds > 0.
type ReminderSettings struct {
	EndSeconds              int `json:"end_seconds"`
	RemindIntervalSeconds   int `json:"remind_interval_seconds"`
	PauseAfterRemindSeconds int `json:"pause_after_remind_seconds"`
}

// Normalized returns a copy with invalid values collapsed
func (s ReminderSettings) Normalized() ReminderSettings {
	if s.EndSeconds < 0 {
		s.EndSeconds = 0
	}
	if s.RemindIntervalSeconds < 0 {
		s.RemindIntervalSeconds = 0
	}
	if s.PauseAfterRemindSeconds < 0 {
		s.PauseAfterRemindSeconds = 0
	}
	return s
}

// TimerRecord is one completed timer session, appended to the timer log
type TimerRecord struct {
	EndAt          string `json:"end_at"` // ISO-8601 local time
	ElapsedSeconds int    `json:"elapsed_seconds"`
	ElapsedHMS     string `json:"elapsed_hms"` // HH:MM:SS
}

// FormatHMS renders seconds as HH:MM:SS
func FormatHMS(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, (seconds%3600)/60, seconds%60)
}
