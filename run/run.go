// Package run drives the watchface: it paints the initial state, then applies
// host events one at a time until the host goes away.
package run

import (
	"context"
	"log/slog"

	"github.com/ardnew/watchface/display"
	"github.com/ardnew/watchface/host"
	"github.com/ardnew/watchface/model"
)

// Run paints m on disp and keeps it current with the events delivered by h.
// Events are applied strictly one at a time. Run returns nil after blanking
// the display once ctx is done or the host closes its event channel; it only
// returns an error if the display cannot be blanked.
func Run(ctx context.Context, h host.Host, disp *display.Display, m *model.Model, log *slog.Logger) error {
	if nil == log {
		log = slog.Default()
	}
	w := &watch{host: h, disp: disp, model: m, log: log}

	// initial state, so the face is complete before the first minute boundary
	w.dispatch(model.Tick{Time: h.Now()})
	w.dispatch(model.BatteryChanged{Percent: h.Battery()})
	w.dispatch(model.ConnectionChanged{Connected: h.Connected()})
	w.render()

	events := h.Events()
	for {
		select {
		case <-ctx.Done():
			return w.teardown()
		case ev, ok := <-events:
			if !ok {
				return w.teardown()
			}
			w.dispatch(ev)
			w.render()
		}
	}
}

type watch struct {
	host  host.Host
	disp  *display.Display
	model *model.Model
	log   *slog.Logger
}

func (w *watch) dispatch(ev model.Event) {
	if tick, ok := ev.(model.Tick); ok {
		tick.Is24h = w.host.ClockIs24h()
		ev = tick
	}
	effects, err := w.model.Apply(ev)
	if nil != err {
		w.log.Error("apply event", slog.String("event", eventName(ev)), slog.Any("error", err))
	}
	for _, e := range effects {
		switch e := e.(type) {
		case model.MarkDirty:
			w.disp.MarkDirty(e.Region)
		case model.Vibrate:
			w.log.Debug("vibrate", slog.Int("pattern", int(e.Pattern)))
			w.host.Vibrate(e.Pattern)
		}
	}
}

func (w *watch) render() {
	if err := w.disp.Render(w.model); nil != err {
		w.log.Error("render", slog.Any("error", err))
	}
}

func (w *watch) teardown() error {
	w.log.Debug("teardown")
	return w.disp.Close()
}

func eventName(ev model.Event) string {
	switch ev.(type) {
	case model.Tick:
		return "tick"
	case model.BatteryChanged:
		return "battery"
	case model.ConnectionChanged:
		return "connection"
	}
	return "unknown"
}
