package timer

import (
	"log"
	"sync"
	"time"

	"github.com/glowpaw/steampet/pkg/domain"
)

//go:generate moq -out mocks/record_log.go -pkg mocks -skip-ensure -fmt goimports . RecordLog

// maxSeconds caps a session at 99:59:59
const maxSeconds = 99*3600 + 59*60 + 59

// RecordLog receives one record per completed timer session
type RecordLog interface {
	Append(record domain.TimerRecord) error
}

// Notification is a user-facing timer message
type Notification struct {
	Title string
	Body  string
}

// TickResult carries the effects of one tick. StopAndPersist asks the
// caller to run Stop; the service never persists from inside Tick.
type TickResult struct {
	StopAndPersist bool
	Notify         *Notification
}

// Service is the idle/running/paused timer state machine. Tick is driven
// at ~1 Hz by the loop goroutine; reminders are bucketed by elapsed time,
// so missed ticks never replay. All methods are safe for concurrent use,
// the control API and menu providers call in from other goroutines.
type Service struct {
	mu       sync.Mutex
	settings domain.ReminderSettings
	log      RecordLog

	running      bool
	paused       bool
	startAt      time.Time
	accumulated  time.Duration
	autoPaused   bool
	autoResumeAt time.Time
	nextRemindAt int // seconds of elapsed time

	now func() time.Time
}

// NewService creates an idle timer with the given reminder settings
func NewService(settings domain.ReminderSettings, recordLog RecordLog) *Service {
	return &Service{settings: settings.Normalized(), log: recordLog, now: time.Now}
}

// SetSettings replaces the reminder settings and recomputes the next
// reminder for a session already in flight
func (s *Service) SetSettings(settings domain.ReminderSettings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings.Normalized()
	if s.running || s.paused {
		s.scheduleNextRemind()
	}
}

// Settings returns the active reminder settings
func (s *Service) Settings() domain.ReminderSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// Running reports whether the timer is counting right now
func (s *Service) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Active reports whether a session exists, running or paused
func (s *Service) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running || s.paused
}

// ElapsedSeconds returns the session's elapsed time, capped at 99:59:59
func (s *Service) ElapsedSeconds() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.elapsedSeconds()
}

func (s *Service) elapsedSeconds() int {
	elapsed := s.accumulated
	if s.running {
		elapsed += s.now().Sub(s.startAt)
	}
	secs := int(elapsed / time.Second)
	if secs > maxSeconds {
		secs = maxSeconds
	}
	return secs
}

// Start begins a fresh session; a session already in flight is untouched
func (s *Service) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.start()
}

func (s *Service) start() {
	if s.running || s.paused {
		return
	}
	s.running = true
	s.startAt = s.now()
	s.accumulated = 0
	s.autoPaused = false
	s.scheduleNextRemind()
}

// Pause suspends a running session
func (s *Service) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pause()
}

func (s *Service) pause() {
	if !s.running {
		return
	}
	s.accumulated += s.now().Sub(s.startAt)
	s.running = false
	s.paused = true
}

// Resume continues a paused session and recomputes the next reminder
func (s *Service) Resume() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resume()
}

func (s *Service) resume() {
	if !s.paused {
		return
	}
	s.paused = false
	s.autoPaused = false
	s.running = true
	s.startAt = s.now()
	s.scheduleNextRemind()
}

// Toggle starts when idle, pauses when running, resumes when paused
func (s *Service) Toggle() {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch {
	case s.running:
		s.pause()
	case s.paused:
		s.resume()
	default:
		s.start()
	}
}

// Stop appends one record to the log and resets to idle. Stopping an idle
// timer is a no-op.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running && !s.paused {
		return
	}
	secs := s.elapsedSeconds()
	record := domain.TimerRecord{
		EndAt:          s.now().Format("2006-01-02T15:04:05"),
		ElapsedSeconds: secs,
		ElapsedHMS:     domain.FormatHMS(secs),
	}
	if err := s.log.Append(record); err != nil {
		log.Printf("[WARN] append timer record: %v", err)
	}
	s.reset()
}

// Reset drops the session without persisting
func (s *Service) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
}

func (s *Service) reset() {
	s.running = false
	s.paused = false
	s.accumulated = 0
	s.autoPaused = false
	s.nextRemindAt = 0
}

// Tick advances the state machine once. Call at roughly one hertz.
func (s *Service) Tick() TickResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running && !s.paused {
		return TickResult{}
	}

	now := s.now()

	if s.paused {
		if s.autoPaused && !now.Before(s.autoResumeAt) {
			s.resume()
		}
		return TickResult{}
	}

	elapsed := s.elapsedSeconds()

	if s.settings.EndSeconds > 0 && elapsed >= s.settings.EndSeconds {
		return TickResult{
			StopAndPersist: true,
			Notify:         &Notification{Title: "计时结束", Body: domain.FormatHMS(elapsed)},
		}
	}

	if s.settings.RemindIntervalSeconds <= 0 {
		return TickResult{}
	}

	if elapsed >= s.nextRemindAt {
		s.nextRemindAt += s.settings.RemindIntervalSeconds
		if s.settings.PauseAfterRemindSeconds > 0 {
			s.pause()
			s.autoPaused = true
			s.autoResumeAt = now.Add(time.Duration(s.settings.PauseAfterRemindSeconds) * time.Second)
		}
		return TickResult{Notify: &Notification{Title: "计时提醒", Body: domain.FormatHMS(elapsed)}}
	}

	return TickResult{}
}

// scheduleNextRemind aligns the next reminder to the next interval
// boundary so a resume or settings change never fires immediately
func (s *Service) scheduleNextRemind() {
	interval := s.settings.RemindIntervalSeconds
	if interval <= 0 {
		s.nextRemindAt = 0
		return
	}
	s.nextRemindAt = (s.elapsedSeconds()/interval + 1) * interval
}
