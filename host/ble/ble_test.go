package ble

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardnew/watchface/model"
)

func TestNewDefaults(t *testing.T) {
	m := New(nil, Config{})
	assert.Equal(t, DefaultName, m.config.Name)
	assert.NotNil(t, m.adapter)
	assert.False(t, m.Connected())
}

func TestHandleForwards(t *testing.T) {
	out := make(chan model.Event, 1)
	m := &Monitor{out: out}

	m.handle(false)
	assert.False(t, m.Connected())
	assert.Equal(t, model.ConnectionChanged{Connected: false}, <-out)

	m.handle(true)
	assert.True(t, m.Connected())
	assert.Equal(t, model.ConnectionChanged{Connected: true}, <-out)
}

func TestHandleNeverBlocks(t *testing.T) {
	out := make(chan model.Event, 1)
	m := &Monitor{out: out}

	m.handle(false)
	m.handle(true) // buffer full, dropped
	assert.True(t, m.Connected(), "peek reflects the dropped event")
	assert.Equal(t, model.ConnectionChanged{Connected: false}, <-out)
	assert.Empty(t, out)

	(&Monitor{}).handle(true) // no subscriber yet
}

func TestStartTwice(t *testing.T) {
	m := New(nil, Config{})
	m.started.Store(true)
	require.ErrorIs(t, m.Start(make(chan model.Event)), ErrAlreadyStarted)
}
