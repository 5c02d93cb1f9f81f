package model

import (
	"fmt"
	"time"
)

// Formatting layouts for each label.
const (
	Layout24h  = "15:04"
	Layout12h  = "03:04"
	LayoutDate = "2006-01-02"
	LayoutDay  = "Monday-January"
)

// Placeholder replaces the time label on roughly one tick in PlaceholderOdds.
const (
	Placeholder     = "NARF"
	PlaceholderOdds = 500
)

// Apply updates the Model for a single host event and returns the side effects
// the host should carry out.
func (m *Model) Apply(ev Event) ([]Effect, error) {
	switch ev := ev.(type) {
	case Tick:
		return m.tick(ev)
	case BatteryChanged:
		if err := m.setBattery(ev.Percent); nil != err {
			return nil, err
		}
		return []Effect{MarkDirty{RegionBattery}, MarkDirty{RegionStatus}}, nil
	case ConnectionChanged:
		return m.connection(ev.Connected), nil
	}
	return nil, fmt.Errorf("%w: %T", ErrUnknownEvent, ev)
}

func (m *Model) tick(ev Tick) ([]Effect, error) {
	layout := Layout12h
	if ev.Is24h {
		layout = Layout24h
	}
	c := &m.Clock
	c.Hour, c.Minute, c.Is24h = ev.Time.Hour(), ev.Time.Minute(), ev.Is24h
	c.Placeholder = m.rand.IntN(PlaceholderOdds) == 0
	var err error
	if c.Placeholder {
		err = c.Text.Set(Placeholder)
	} else {
		err = c.Text.SetTime(ev.Time, layout)
	}
	if nil != err {
		return nil, fmt.Errorf("time label: %w", err)
	}
	effects := []Effect{MarkDirty{RegionTime}}

	// the date only needs repainting once a day
	if ev.Time.Day() != m.Date.Today {
		if err := m.setDate(ev.Time); nil != err {
			return effects, err
		}
		effects = append(effects, MarkDirty{RegionDate}, MarkDirty{RegionDay})
	}
	return effects, nil
}

func (m *Model) setDate(t time.Time) error {
	d := &m.Date
	if err := d.Date.SetTime(t, LayoutDate); nil != err {
		return fmt.Errorf("date label: %w", err)
	}
	d.Date.Upper(d.Date.Len())
	if err := d.Day.SetTime(t, LayoutDay); nil != err {
		return fmt.Errorf("day label: %w", err)
	}
	d.Day.Upper(d.Day.Len())
	d.Today = t.Day()
	return nil
}

func (m *Model) setBattery(percent int) error {
	b := &m.Battery
	b.Percent = clampPercent(percent)
	b.Band = BandOf(b.Percent)
	if err := b.Label.SetInt(b.Percent); nil != err {
		return fmt.Errorf("battery label: %w", err)
	}
	return nil
}

// connection re-fires the pulse on every disconnected notification, even when
// already disconnected.
func (m *Model) connection(connected bool) []Effect {
	m.Connection.Connected = connected
	if !connected {
		m.Connection.TimeColor = ColorAlert
		return []Effect{Vibrate{PatternLongPulse}, MarkDirty{RegionTime}}
	}
	m.Connection.TimeColor = ColorNormal
	return []Effect{MarkDirty{RegionTime}}
}
