package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var never = RandFunc(func(int) int { return 1 })

func at(day, hour, minute int) time.Time {
	return time.Date(2024, time.June, day, hour, minute, 0, 0, time.UTC)
}

func TestNewInitialState(t *testing.T) {
	m := New(never)

	assert.Equal(t, InitialTime, m.Clock.Text.String())
	assert.Equal(t, InitialDate, m.Date.Date.String())
	assert.Equal(t, InitialDay, m.Date.Day.String())
	assert.Equal(t, DaySentinel, m.Date.Today)
	assert.Equal(t, 100, m.Battery.Percent)
	assert.Equal(t, BandGreen, m.Battery.Band)
	assert.Equal(t, "100", m.Battery.Label.String())
	assert.True(t, m.Connection.Connected)
	assert.Equal(t, ColorNormal, m.Connection.TimeColor)
}

func TestBandOf(t *testing.T) {
	for p := 0; p <= 100; p++ {
		got := BandOf(p)
		switch {
		case p <= 20:
			assert.Equal(t, BandRed, got, "percent %d", p)
		case p <= 30:
			assert.Equal(t, BandYellow, got, "percent %d", p)
		default:
			assert.Equal(t, BandGreen, got, "percent %d", p)
		}
	}
	assert.Equal(t, ColorRed, BandRed.Color())
	assert.Equal(t, ColorYellow, BandYellow.Color())
	assert.Equal(t, ColorGreen, BandGreen.Color())
}

func TestBarWidth(t *testing.T) {
	const width = 30
	assert.Equal(t, 0, BarWidth(0, width))
	assert.Equal(t, width, BarWidth(100, width))
	assert.Equal(t, 4, BarWidth(15, width))

	prev := 0
	for p := 0; p <= 100; p++ {
		w := BarWidth(p, width)
		assert.Equal(t, p*width/100, w)
		assert.GreaterOrEqual(t, w, prev, "percent %d", p)
		prev = w
	}

	assert.Equal(t, 0, BarWidth(-10, width))
	assert.Equal(t, width, BarWidth(250, width))
}

func TestTickFormatsTime(t *testing.T) {
	tests := []struct {
		name  string
		is24h bool
		when  time.Time
		want  string
	}{
		{name: "24h afternoon", is24h: true, when: at(3, 14, 5), want: "14:05"},
		{name: "12h afternoon", is24h: false, when: at(3, 14, 5), want: "02:05"},
		{name: "24h midnight", is24h: true, when: at(3, 0, 0), want: "00:00"},
		{name: "12h midnight", is24h: false, when: at(3, 0, 0), want: "12:00"},
		{name: "12h noon", is24h: false, when: at(3, 12, 30), want: "12:30"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(never)
			_, err := m.Apply(Tick{Time: tt.when, Is24h: tt.is24h})
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.Clock.Text.String())
			assert.Equal(t, tt.when.Hour(), m.Clock.Hour)
			assert.Equal(t, tt.when.Minute(), m.Clock.Minute)
			assert.False(t, m.Clock.Placeholder)
		})
	}
}

func TestTickStyleIndependentOfOtherState(t *testing.T) {
	m := New(never)
	_, err := m.Apply(BatteryChanged{Percent: 5})
	require.NoError(t, err)
	_, err = m.Apply(ConnectionChanged{Connected: false})
	require.NoError(t, err)

	_, err = m.Apply(Tick{Time: at(3, 21, 45), Is24h: true})
	require.NoError(t, err)
	assert.Equal(t, "21:45", m.Clock.Text.String())

	_, err = m.Apply(Tick{Time: at(3, 21, 45), Is24h: false})
	require.NoError(t, err)
	assert.Equal(t, "09:45", m.Clock.Text.String())
}

func TestTickPlaceholder(t *testing.T) {
	var asked []int
	r := RandFunc(func(n int) int {
		asked = append(asked, n)
		return 0
	})
	m := New(r)
	_, err := m.Apply(Tick{Time: at(3, 14, 5), Is24h: true})
	require.NoError(t, err)

	assert.Equal(t, Placeholder, m.Clock.Text.String())
	assert.True(t, m.Clock.Placeholder)
	assert.Equal(t, []int{PlaceholderOdds}, asked)
	// the rest of the tick still happens
	assert.Equal(t, 14, m.Clock.Hour)
	assert.Equal(t, 3, m.Date.Today)
}

func TestTickScenario(t *testing.T) {
	m := New(never)
	effects, err := m.Apply(Tick{Time: at(3, 14, 5), Is24h: true})
	require.NoError(t, err)

	assert.Equal(t, "14:05", m.Clock.Text.String())
	assert.Equal(t, "2024-06-03", m.Date.Date.String())
	assert.Equal(t, "MONDAY-JUNE", m.Date.Day.String())
	assert.Equal(t, 3, m.Date.Today)
	assert.Equal(t, []Effect{
		MarkDirty{RegionTime},
		MarkDirty{RegionDate},
		MarkDirty{RegionDay},
	}, effects)
}

func TestTickSameDaySkipsDate(t *testing.T) {
	m := New(never)
	_, err := m.Apply(Tick{Time: at(3, 14, 5), Is24h: true})
	require.NoError(t, err)
	date, day := m.Date.Date.String(), m.Date.Day.String()

	// clobber the labels so a recompute would be visible
	require.NoError(t, m.Date.Date.Set("x"))
	require.NoError(t, m.Date.Day.Set("y"))

	effects, err := m.Apply(Tick{Time: at(3, 14, 6), Is24h: true})
	require.NoError(t, err)
	assert.Equal(t, []Effect{MarkDirty{RegionTime}}, effects)
	assert.Equal(t, "x", m.Date.Date.String())
	assert.Equal(t, "y", m.Date.Day.String())

	require.NoError(t, m.Date.Date.Set(date))
	require.NoError(t, m.Date.Day.Set(day))
	_, err = m.Apply(Tick{Time: at(3, 23, 59), Is24h: true})
	require.NoError(t, err)
	assert.Equal(t, date, m.Date.Date.String())
	assert.Equal(t, day, m.Date.Day.String())
}

func TestTickNewDayRecomputesDate(t *testing.T) {
	m := New(never)
	_, err := m.Apply(Tick{Time: at(3, 23, 59), Is24h: true})
	require.NoError(t, err)

	effects, err := m.Apply(Tick{Time: at(4, 0, 0), Is24h: true})
	require.NoError(t, err)
	assert.Contains(t, effects, Effect(MarkDirty{RegionDate}))
	assert.Contains(t, effects, Effect(MarkDirty{RegionDay}))
	assert.Equal(t, "2024-06-04", m.Date.Date.String())
	assert.Equal(t, "TUESDAY-JUNE", m.Date.Day.String())
	assert.Equal(t, 4, m.Date.Today)
}

func TestTickLongestDayFits(t *testing.T) {
	m := New(never)
	// a Wednesday in September
	_, err := m.Apply(Tick{Time: time.Date(2024, time.September, 4, 8, 0, 0, 0, time.UTC), Is24h: true})
	require.NoError(t, err)
	assert.Equal(t, "WEDNESDAY-SEPTEMBER", m.Date.Day.String())
}

func TestBatteryScenario(t *testing.T) {
	m := New(never)
	effects, err := m.Apply(BatteryChanged{Percent: 15})
	require.NoError(t, err)

	assert.Equal(t, 15, m.Battery.Percent)
	assert.Equal(t, BandRed, m.Battery.Band)
	assert.Equal(t, "15", m.Battery.Label.String())
	assert.Equal(t, 4, BarWidth(m.Battery.Percent, 30))
	assert.Equal(t, []Effect{MarkDirty{RegionBattery}, MarkDirty{RegionStatus}}, effects)
}

func TestBatteryClamped(t *testing.T) {
	m := New(never)
	_, err := m.Apply(BatteryChanged{Percent: 140})
	require.NoError(t, err)
	assert.Equal(t, "100", m.Battery.Label.String())

	_, err = m.Apply(BatteryChanged{Percent: -3})
	require.NoError(t, err)
	assert.Equal(t, "0", m.Battery.Label.String())
	assert.Equal(t, BandRed, m.Battery.Band)
}

func TestConnectionScenario(t *testing.T) {
	m := New(never)

	effects, err := m.Apply(ConnectionChanged{Connected: false})
	require.NoError(t, err)
	assert.Equal(t, ColorAlert, m.Connection.TimeColor)
	assert.Equal(t, 1, countVibrate(effects))

	effects, err = m.Apply(ConnectionChanged{Connected: false})
	require.NoError(t, err)
	assert.Equal(t, ColorAlert, m.Connection.TimeColor)
	assert.Equal(t, 1, countVibrate(effects), "pulse re-fires while already disconnected")

	effects, err = m.Apply(ConnectionChanged{Connected: true})
	require.NoError(t, err)
	assert.Equal(t, ColorNormal, m.Connection.TimeColor)
	assert.Equal(t, 0, countVibrate(effects))
	assert.Equal(t, []Effect{MarkDirty{RegionTime}}, effects)
}

type bogus struct{ Tick }

func TestApplyUnknownEvent(t *testing.T) {
	m := New(never)
	_, err := m.Apply(bogus{})
	require.ErrorIs(t, err, ErrUnknownEvent)
}

func countVibrate(effects []Effect) (n int) {
	for _, e := range effects {
		if v, ok := e.(Vibrate); ok {
			if v.Pattern == PatternLongPulse {
				n++
			}
		}
	}
	return
}
