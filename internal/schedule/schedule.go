// Package schedule decides which meal window, if any, contains a given
// wall-clock instant, and when the next window starts. A window is a daily
// recurring interval [start, end) anchored to the instant's calendar date.
package schedule

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"sync"
	"time"

	"github.com/bos-com/BUGEMAUNIV-CAFETERIA-MANAGEMENT-SYSTEM/internal/config"
	"github.com/bos-com/BUGEMAUNIV-CAFETERIA-MANAGEMENT-SYSTEM/internal/domain"
)

var (
	ErrUnknownMeal   = errors.New("unknown meal type")
	errMissingWindow = errors.New("meal window missing from configuration")
)

var clockPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)

type window struct {
	startMinute int
	endMinute   int
}

// Schedule is the meal window table. It is safe for concurrent use and can
// be rebuilt in place when the configuration changes.
type Schedule struct {
	mu      sync.RWMutex
	windows map[domain.MealType]window
}

// New builds a schedule from "HH:MM" window strings. Every meal type must
// be present and parseable; a malformed time is a configuration error, not
// a silent midnight.
func New(conf map[string]config.WindowConfig) (*Schedule, error) {
	windows, err := buildWindows(conf)
	if err != nil {
		return nil, err
	}

	return &Schedule{windows: windows}, nil
}

// Reload swaps in a new window table. On error the previous table stays
// active.
func (s *Schedule) Reload(conf map[string]config.WindowConfig) error {
	windows, err := buildWindows(conf)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.windows = windows
	s.mu.Unlock()

	return nil
}

func buildWindows(conf map[string]config.WindowConfig) (map[domain.MealType]window, error) {
	windows := make(map[domain.MealType]window, len(domain.MealOrder))

	for _, meal := range domain.MealOrder {
		wc, ok := conf[string(meal)]
		if !ok {
			return nil, fmt.Errorf("%w: %v", errMissingWindow, meal)
		}

		start, err := parseClock(wc.Start)
		if err != nil {
			return nil, fmt.Errorf("invalid start time for %v -> %w", meal, err)
		}

		end, err := parseClock(wc.End)
		if err != nil {
			return nil, fmt.Errorf("invalid end time for %v -> %w", meal, err)
		}

		if end <= start {
			return nil, fmt.Errorf("window for %v ends before it starts (%v..%v)", meal, wc.Start, wc.End)
		}

		windows[meal] = window{startMinute: start, endMinute: end}
	}

	return windows, nil
}

// parseClock converts "HH:MM" to minutes since midnight.
func parseClock(s string) (int, error) {
	m := clockPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("cannot parse clock time %q", s)
	}

	hh, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, err
	}

	mm, err := strconv.Atoi(m[2])
	if err != nil {
		return 0, err
	}

	if hh > 23 || mm > 59 {
		return 0, fmt.Errorf("clock time %q out of range", s)
	}

	return hh*60 + mm, nil
}

// ActiveMeal returns the meal whose window contains now. Windows are
// checked in breakfast, lunch, supper order; first match wins.
func (s *Schedule) ActiveMeal(now time.Time) (domain.MealType, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	minute := now.Hour()*60 + now.Minute()

	for _, meal := range domain.MealOrder {
		w := s.windows[meal]
		if minute >= w.startMinute && minute < w.endMinute {
			return meal, true
		}
	}

	return "", false
}

// NextMeal returns the earliest window starting strictly after now,
// rolling to the next day's breakfast when no window remains today.
func (s *Schedule) NextMeal(now time.Time) (domain.MealType, time.Time) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	minute := now.Hour()*60 + now.Minute()

	for _, meal := range domain.MealOrder {
		w := s.windows[meal]
		if w.startMinute > minute {
			return meal, atMinute(now, w.startMinute)
		}
	}

	breakfast := s.windows[domain.MealBreakfast]

	return domain.MealBreakfast, atMinute(now.AddDate(0, 0, 1), breakfast.startMinute)
}

// Window returns today's [start, end) occurrence of the given meal,
// anchored to now's calendar date.
func (s *Schedule) Window(meal domain.MealType, now time.Time) (time.Time, time.Time, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	w, ok := s.windows[meal]
	if !ok {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %v", ErrUnknownMeal, meal)
	}

	return atMinute(now, w.startMinute), atMinute(now, w.endMinute), nil
}

func atMinute(day time.Time, minute int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), minute/60, minute%60, 0, 0, day.Location())
}
