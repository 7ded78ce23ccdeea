package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bos-com/BUGEMAUNIV-CAFETERIA-MANAGEMENT-SYSTEM/internal/config"
	"github.com/bos-com/BUGEMAUNIV-CAFETERIA-MANAGEMENT-SYSTEM/internal/domain"
)

func defaultWindows() map[string]config.WindowConfig {
	return map[string]config.WindowConfig{
		"breakfast": {Start: "06:00", End: "07:00"},
		"lunch":     {Start: "13:00", End: "14:30"},
		"supper":    {Start: "18:00", End: "19:30"},
	}
}

func at(t *testing.T, clock string) time.Time {
	t.Helper()

	parsed, err := time.Parse("2006-01-02 15:04", "2024-03-11 "+clock)
	require.NoError(t, err)

	return parsed
}

func TestNew_InvalidTimes(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(map[string]config.WindowConfig)
		wantErr string
	}{
		{
			name:    "unparseable start",
			mutate:  func(w map[string]config.WindowConfig) { w["lunch"] = config.WindowConfig{Start: "1pm", End: "14:30"} },
			wantErr: "invalid start time for lunch",
		},
		{
			name:    "hour out of range",
			mutate:  func(w map[string]config.WindowConfig) { w["supper"] = config.WindowConfig{Start: "25:00", End: "26:00"} },
			wantErr: "out of range",
		},
		{
			name:    "end before start",
			mutate:  func(w map[string]config.WindowConfig) { w["breakfast"] = config.WindowConfig{Start: "07:00", End: "06:00"} },
			wantErr: "ends before it starts",
		},
		{
			name:    "missing window",
			mutate:  func(w map[string]config.WindowConfig) { delete(w, "supper") },
			wantErr: "meal window missing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			windows := defaultWindows()
			tt.mutate(windows)

			_, err := New(windows)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSchedule_ActiveMeal(t *testing.T) {
	sched, err := New(defaultWindows())
	require.NoError(t, err)

	tests := []struct {
		clock    string
		wantMeal domain.MealType
		wantOK   bool
	}{
		{"05:59", "", false},
		{"06:00", domain.MealBreakfast, true},
		{"06:30", domain.MealBreakfast, true},
		{"07:00", "", false}, // end is exclusive
		{"07:01", "", false},
		{"13:00", domain.MealLunch, true},
		{"14:29", domain.MealLunch, true},
		{"14:30", "", false},
		{"18:45", domain.MealSupper, true},
		{"19:30", "", false},
		{"23:59", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.clock, func(t *testing.T) {
			meal, ok := sched.ActiveMeal(at(t, tt.clock))

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantMeal, meal)
		})
	}
}

func TestSchedule_ActiveMeal_AtMostOne(t *testing.T) {
	sched, err := New(defaultWindows())
	require.NoError(t, err)

	// Sweep the whole day in 1-minute steps; each instant matches at most
	// one window and first-match order is breakfast, lunch, supper.
	day := at(t, "00:00")
	for minute := 0; minute < 24*60; minute++ {
		now := day.Add(time.Duration(minute) * time.Minute)

		matches := 0
		for _, meal := range domain.MealOrder {
			start, end, werr := sched.Window(meal, now)
			require.NoError(t, werr)

			if !now.Before(start) && now.Before(end) {
				matches++
			}
		}

		_, ok := sched.ActiveMeal(now)
		assert.Equal(t, matches > 0, ok, "at %v", now)
		assert.LessOrEqual(t, matches, 1)
	}
}

func TestSchedule_NextMeal(t *testing.T) {
	sched, err := New(defaultWindows())
	require.NoError(t, err)

	tests := []struct {
		clock     string
		wantMeal  domain.MealType
		wantClock string
		nextDay   bool
	}{
		{"05:00", domain.MealBreakfast, "06:00", false},
		{"06:30", domain.MealLunch, "13:00", false}, // mid-breakfast, next is lunch
		{"07:01", domain.MealLunch, "13:00", false},
		{"14:30", domain.MealSupper, "18:00", false},
		{"19:30", domain.MealBreakfast, "06:00", true},
		{"23:59", domain.MealBreakfast, "06:00", true},
	}

	for _, tt := range tests {
		t.Run(tt.clock, func(t *testing.T) {
			now := at(t, tt.clock)
			meal, start := sched.NextMeal(now)

			assert.Equal(t, tt.wantMeal, meal)
			assert.True(t, start.After(now), "next meal must start strictly in the future")

			want := at(t, tt.wantClock)
			if tt.nextDay {
				want = want.AddDate(0, 0, 1)
			}
			assert.True(t, start.Equal(want), "want %v, got %v", want, start)
		})
	}
}

func TestSchedule_Window(t *testing.T) {
	sched, err := New(defaultWindows())
	require.NoError(t, err)

	now := at(t, "13:42")
	start, end, err := sched.Window(domain.MealLunch, now)

	require.NoError(t, err)
	assert.True(t, start.Equal(at(t, "13:00")))
	assert.True(t, end.Equal(at(t, "14:30")))

	_, _, err = sched.Window("brunch", now)
	assert.ErrorIs(t, err, ErrUnknownMeal)
}

func TestSchedule_Reload(t *testing.T) {
	sched, err := New(defaultWindows())
	require.NoError(t, err)

	windows := defaultWindows()
	windows["breakfast"] = config.WindowConfig{Start: "08:00", End: "09:00"}
	require.NoError(t, sched.Reload(windows))

	meal, ok := sched.ActiveMeal(at(t, "08:30"))
	assert.True(t, ok)
	assert.Equal(t, domain.MealBreakfast, meal)

	// A bad reload keeps the previous table.
	windows["lunch"] = config.WindowConfig{Start: "nope", End: "14:30"}
	require.Error(t, sched.Reload(windows))

	meal, ok = sched.ActiveMeal(at(t, "08:30"))
	assert.True(t, ok)
	assert.Equal(t, domain.MealBreakfast, meal)
}
