// Package ble reports the phone link state from a Bluetooth LE peripheral.
package ble

import (
	"errors"
	"fmt"
	"sync/atomic"

	"tinygo.org/x/bluetooth"

	"github.com/ardnew/watchface/model"
)

var (
	ErrAlreadyStarted = errors.New("bluetooth monitor already started")
)

// DefaultName is the advertised local name when Config.Name is empty.
const DefaultName = "watchface"

// Config defines how the watch advertises itself.
type Config struct {
	Name string
}

// Monitor advertises the watch and tracks whether a central is connected.
type Monitor struct {
	adapter   *bluetooth.Adapter
	config    Config
	connected atomic.Bool
	started   atomic.Bool
	out       chan<- model.Event
}

// New returns a Monitor on the given adapter, or bluetooth.DefaultAdapter if
// adapter is nil. Nothing is enabled until Start.
func New(adapter *bluetooth.Adapter, config Config) *Monitor {
	if nil == adapter {
		adapter = bluetooth.DefaultAdapter
	}
	if "" == config.Name {
		config.Name = DefaultName
	}
	return &Monitor{adapter: adapter, config: config}
}

// Start enables the adapter, begins advertising and forwards every connect or
// disconnect to out as a model.ConnectionChanged.
func (m *Monitor) Start(out chan<- model.Event) error {
	if !m.started.CompareAndSwap(false, true) {
		return ErrAlreadyStarted
	}
	m.out = out
	if err := m.adapter.Enable(); nil != err {
		return fmt.Errorf("enable adapter: %w", err)
	}
	m.adapter.SetConnectHandler(func(_ bluetooth.Device, connected bool) {
		m.handle(connected)
	})
	adv := m.adapter.DefaultAdvertisement()
	if err := adv.Configure(bluetooth.AdvertisementOptions{
		LocalName: m.config.Name,
	}); nil != err {
		return fmt.Errorf("configure advertisement: %w", err)
	}
	if err := adv.Start(); nil != err {
		return fmt.Errorf("start advertisement: %w", err)
	}
	return nil
}

// Connected reports the most recent link state.
func (m *Monitor) Connected() bool {
	return m.connected.Load()
}

// handle may run in interrupt context on some stacks, so it never blocks. If
// out is full the event is dropped; Connected still reflects it.
func (m *Monitor) handle(connected bool) {
	m.connected.Store(connected)
	if nil == m.out {
		return
	}
	select {
	case m.out <- model.ConnectionChanged{Connected: connected}:
	default:
	}
}
