//go:build tinygo && nrf52

package main

import (
	"context"
	"time"

	"github.com/ardnew/watchface/display"
	"github.com/ardnew/watchface/host/board"
	"github.com/ardnew/watchface/model"
	"github.com/ardnew/watchface/run"
)

func main() {
	// initialize the panel, motor, battery ADC and radio
	hw, err := board.New(board.Config{Is24h: true})
	if nil != err {
		halt(err)
	}
	ctx := context.Background()
	// subscribe to ticks, battery changes and the phone link
	if err := hw.Start(ctx); nil != err {
		halt(err)
	}
	disp := display.New(hw.Panel, display.Config{}, hw)
	// enter event loop
	if err := run.Run(ctx, hw, disp, model.New(nil), nil); nil != err {
		halt(err)
	}
}

func halt(err error) {
	for {
		println("error: " + err.Error())
		time.Sleep(time.Second)
	}
}
