package schedule

import (
	"testing"
	"time"

	"github.com/nholm/sundial/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2025-06-14 is a Saturday, 2025-06-16 a Monday.
var (
	saturday = time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)
	sunday   = time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	monday   = time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)
)

func configMarking(date time.Time, types ...domain.DayType) domain.ScheduleConfig {
	cfg := domain.EmptyScheduleConfig()
	cfg.MarkedDates[date.Format(domain.DateKey)] = domain.MarkedDate{
		Date:     date,
		DayTypes: domain.NewDayTypeSet(types...),
	}
	return cfg
}

func TestDayTypesFor_AutoDetect(t *testing.T) {
	cfg := domain.EmptyScheduleConfig()

	assert.Equal(t, []domain.DayType{domain.DayWeekend}, DayTypesFor(saturday, cfg))
	assert.Equal(t, []domain.DayType{domain.DayWeekend}, DayTypesFor(sunday, cfg))
	assert.Equal(t, []domain.DayType{domain.DayRegular}, DayTypesFor(monday, cfg))
}

func TestDayTypesFor_MarkedDateWins(t *testing.T) {
	cfg := configMarking(monday, domain.DayTravel, domain.DaySick)

	got := DayTypesFor(monday, cfg)
	assert.ElementsMatch(t, []domain.DayType{domain.DayTravel, domain.DaySick}, got)
	// Other dates still auto-detect.
	assert.Equal(t, []domain.DayType{domain.DayWeekend}, DayTypesFor(saturday, cfg))
}

func TestDayTypesFor_NeverEmpty(t *testing.T) {
	cfg := domain.EmptyScheduleConfig()
	for d := saturday; d.Before(saturday.AddDate(0, 0, 30)); d = d.AddDate(0, 0, 1) {
		require.NotEmpty(t, DayTypesFor(d, cfg), "date %s", d.Format(domain.DateKey))
	}
}

func TestDayTypesFor_EmptyMarkedSetFallsBack(t *testing.T) {
	// A marked date with zero types is equivalent to unmarked. The store
	// should never persist one, but the classifier tolerates it anyway.
	cfg := configMarking(monday)
	assert.Equal(t, []domain.DayType{domain.DayRegular}, DayTypesFor(monday, cfg))
}

func TestDayTypesFor_Pure(t *testing.T) {
	cfg := configMarking(monday, domain.DayTravel)
	first := DayTypesFor(monday, cfg)
	second := DayTypesFor(monday, cfg)
	assert.Equal(t, first, second, "pure function of (date, config)")
}
