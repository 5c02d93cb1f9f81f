package host

import (
	"context"
	"sync"
	"time"

	"github.com/ardnew/watchface/model"
)

// SimConfig defines the initial state of a Sim. The zero value is a 12-hour
// clock on a full battery with the phone connected.
type SimConfig struct {
	Battery      int
	Disconnected bool
	Quiet        bool
	Is24h        bool
	// Now returns the wall clock. Defaults to time.Now.
	Now func() time.Time
	// OnVibrate is called for every haptic request.
	OnVibrate func(model.Pattern)
}

// DefaultSimBattery is the charge level of a Sim configured with 0.
const DefaultSimBattery = 100

// simBuffer bounds the number of undelivered events.
const simBuffer = 16

// Sim is an in-process Host whose state is set by the caller. Setters push the
// matching event; they block only while the event buffer is full.
type Sim struct {
	lock      *sync.Mutex
	battery   int
	connected bool
	quiet     bool
	is24h     bool
	offset    time.Duration
	now       func() time.Time
	onVibrate func(model.Pattern)

	events chan model.Event
	done   chan struct{}
}

var _ Host = (*Sim)(nil)

// NewSim returns a Sim initialized with given configuration.
func NewSim(config SimConfig) *Sim {
	if 0 == config.Battery {
		config.Battery = DefaultSimBattery
	}
	if nil == config.Now {
		config.Now = time.Now
	}
	return &Sim{
		lock:      &sync.Mutex{},
		battery:   config.Battery,
		connected: !config.Disconnected,
		quiet:     config.Quiet,
		is24h:     config.Is24h,
		now:       config.Now,
		onVibrate: config.OnVibrate,
		events:    make(chan model.Event, simBuffer),
		done:      make(chan struct{}),
	}
}

// Start delivers minute ticks until ctx is done. After that, setters no longer
// report events. Start must be called at most once.
func (s *Sim) Start(ctx context.Context) {
	Ticker{Now: s.Now}.Run(ctx, s.events)
	close(s.done)
}

func (s *Sim) Now() time.Time {
	s.lock.Lock()
	offset := s.offset
	s.lock.Unlock()
	return s.now().Add(offset)
}

func (s *Sim) ClockIs24h() bool {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.is24h
}

func (s *Sim) Battery() int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.battery
}

func (s *Sim) Connected() bool {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.connected
}

func (s *Sim) QuietTime() bool {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.quiet
}

func (s *Sim) Vibrate(p model.Pattern) {
	if nil != s.onVibrate {
		s.onVibrate(p)
	}
}

func (s *Sim) Events() <-chan model.Event { return s.events }

// SetBattery records a new charge level and reports it.
func (s *Sim) SetBattery(percent int) {
	s.update(func(s *Sim) model.Event {
		s.battery = percent
		return model.BatteryChanged{Percent: percent}
	})
}

// SetConnected records the phone link state and reports it, even if it did not
// change.
func (s *Sim) SetConnected(connected bool) {
	s.update(func(s *Sim) model.Event {
		s.connected = connected
		return model.ConnectionChanged{Connected: connected}
	})
}

// SetQuiet records the do-not-disturb state. Nothing is reported; the
// watchface polls it on repaint.
func (s *Sim) SetQuiet(quiet bool) {
	s.lock.Lock()
	s.quiet = quiet
	s.lock.Unlock()
}

// SetClock24h records the clock style and reports a Tick so the time label is
// reformatted.
func (s *Sim) SetClock24h(is24h bool) {
	s.update(func(s *Sim) model.Event {
		s.is24h = is24h
		return model.Tick{Time: s.now().Add(s.offset)}
	})
}

// Skip moves the simulated clock forward by d and reports a Tick.
func (s *Sim) Skip(d time.Duration) {
	s.update(func(s *Sim) model.Event {
		s.offset += d
		return model.Tick{Time: s.now().Add(s.offset)}
	})
}

func (s *Sim) update(set func(*Sim) model.Event) {
	s.lock.Lock()
	ev := set(s)
	s.lock.Unlock()
	select {
	case s.events <- ev:
	case <-s.done:
	}
}
