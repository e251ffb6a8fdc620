package main

import (
	"context"

	"github.com/glowpaw/steampet/pkg/behavior"
	"github.com/glowpaw/steampet/pkg/ui"
)

// petBridge routes executed pet actions to the intent hub and the
// greeter. Exit cancels the root context so the runtime winds down.
type petBridge struct {
	ctx     context.Context
	hub     *ui.Hub
	greeter *behavior.Greeter
	cancel  context.CancelFunc
}

func (b *petBridge) SayHello() { b.greeter.SayHello(b.ctx) }

func (b *petBridge) HidePet() { b.hub.Publish(ui.IntentHidePet, nil) }

func (b *petBridge) ToggleTopmost() { b.hub.Publish(ui.IntentToggleTopmost, nil) }

func (b *petBridge) ActivatePet() { b.hub.Publish(ui.IntentActivatePet, nil) }

func (b *petBridge) OpenWindow(name string) { b.hub.Publish(ui.IntentOpenWindow, name) }

func (b *petBridge) Exit() {
	b.hub.Publish(ui.IntentExit, nil)
	b.cancel()
}
