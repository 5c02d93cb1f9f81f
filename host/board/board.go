//go:build tinygo && nrf52

// Package board binds the watchface to a PineTime-class nRF52 watch: an ST7789
// panel on SPI0, a vibration motor, a battery voltage divider on an ADC pin and
// the on-chip Bluetooth radio.
package board

import (
	"context"
	"sync/atomic"
	"time"

	"machine"

	"tinygo.org/x/drivers/st7789"

	"github.com/ardnew/watchface/host"
	"github.com/ardnew/watchface/host/ble"
	"github.com/ardnew/watchface/model"
)

// Pin assignments.
const (
	pinLCDSCK       = machine.P0_02
	pinLCDSDO       = machine.P0_03
	pinLCDCS        = machine.P0_25
	pinLCDDC        = machine.P0_18
	pinLCDReset     = machine.P0_26
	pinLCDBacklight = machine.P0_23
	pinMotor        = machine.P0_16 // active low
	pinBattery      = machine.P0_31
)

// Default constants for Board configuration.
const (
	DefaultPanelSize    = 240 // px
	DefaultBatteryPoll  = 30 * time.Second
	DefaultShortPulse   = 100 * time.Millisecond
	DefaultLongPulse    = 500 * time.Millisecond
	DefaultEmptyVoltage = 3500 // mV
	DefaultFullVoltage  = 4200 // mV
)

// eventBuffer bounds the number of undelivered events.
const eventBuffer = 8

// Config defines the board settings. Zero fields take the Default constants.
type Config struct {
	Is24h       bool
	TZOffset    int           // seconds east of UTC
	BatteryPoll time.Duration // how often to sample the battery voltage
	Name        string        // advertised Bluetooth name
}

// Board implements host.Host on the watch hardware.
type Board struct {
	Panel *st7789.Device

	config  Config
	locale  *time.Location
	adc     machine.ADC
	ble     *ble.Monitor
	events  chan model.Event
	battery atomic.Int32
}

var _ host.Host = (*Board)(nil)

// New configures the peripherals and returns a Board with the motor off and the
// battery sampled once.
func New(config Config) (*Board, error) {
	if 0 == config.BatteryPoll {
		config.BatteryPoll = DefaultBatteryPoll
	}

	// configure the SPI interface connected to the panel
	if err := machine.SPI0.Configure(machine.SPIConfig{
		Frequency: 8 * 1.0e6,
		SCK:       pinLCDSCK,
		SDO:       pinLCDSDO,
		Mode:      3,
	}); nil != err {
		return nil, err
	}
	panel := st7789.New(machine.SPI0, pinLCDReset, pinLCDDC, pinLCDCS, pinLCDBacklight)
	panel.Configure(st7789.Config{
		Width:  DefaultPanelSize,
		Height: DefaultPanelSize,
	})

	pinMotor.Configure(machine.PinConfig{Mode: machine.PinOutput})
	pinMotor.High()

	machine.InitADC()
	adc := machine.ADC{Pin: pinBattery}
	adc.Configure(machine.ADCConfig{})

	b := &Board{
		Panel:  &panel,
		config: config,
		locale: time.FixedZone("localtime", config.TZOffset),
		adc:    adc,
		ble:    ble.New(nil, ble.Config{Name: config.Name}),
		events: make(chan model.Event, eventBuffer),
	}
	b.battery.Store(int32(b.sample()))
	return b, nil
}

// Start subscribes to the Bluetooth link and begins delivering minute ticks and
// battery changes until ctx is done.
func (b *Board) Start(ctx context.Context) error {
	if err := b.ble.Start(b.events); nil != err {
		return err
	}
	go host.Ticker{Now: b.Now}.Run(ctx, b.events)
	go b.pollBattery(ctx)
	return nil
}

func (b *Board) Now() time.Time   { return time.Now().In(b.locale) }
func (b *Board) ClockIs24h() bool { return b.config.Is24h }
func (b *Board) Battery() int     { return int(b.battery.Load()) }
func (b *Board) Connected() bool  { return b.ble.Connected() }

// QuietTime is always false; the watch has no do-not-disturb setting yet.
func (b *Board) QuietTime() bool { return false }

func (b *Board) Events() <-chan model.Event { return b.events }

// Vibrate pulses the motor in the background.
func (b *Board) Vibrate(p model.Pattern) {
	d := DefaultShortPulse
	if model.PatternLongPulse == p {
		d = DefaultLongPulse
	}
	go func() {
		pinMotor.Low()
		time.Sleep(d)
		pinMotor.High()
	}()
}

func (b *Board) pollBattery(ctx context.Context) {
	t := time.NewTicker(b.config.BatteryPoll)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
		}
		p := b.sample()
		if int32(p) == b.battery.Swap(int32(p)) {
			continue
		}
		select {
		case b.events <- model.BatteryChanged{Percent: p}:
		case <-ctx.Done():
			return
		}
	}
}

// sample reads the battery voltage and maps it linearly onto 0-100%.
func (b *Board) sample() int {
	// 16-bit reading of half the battery voltage against a 3.3V reference
	mv := int(b.adc.Get()) * 2 * 3300 / 0xFFFF
	return percent(mv, DefaultEmptyVoltage, DefaultFullVoltage)
}
