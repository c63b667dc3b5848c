package tui

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mirunaCalugar/Home-Assistant-Frontend/internal/service"
)

const statusTTL = 3 * time.Second

var (
	defaultClipboardWrite = clipboard.WriteAll
	clipboardWrite        = defaultClipboardWrite
)

// waitForChange blocks until the state signals a write.
func waitForChange(changes <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return stateClosedMsg{}
		}
		return stateChangedMsg{}
	}
}

func runOp(op string, fn func() error) tea.Cmd {
	return func() tea.Msg {
		return opDoneMsg{op: op, err: fn()}
	}
}

func sendMessageCmd(ctx context.Context, client service.SyncClient, text string) tea.Cmd {
	return runOp(service.OpSendMessage, func() error { return client.SendMessage(ctx, text) })
}

func setActuatorCmd(ctx context.Context, client service.SyncClient, on bool) tea.Cmd {
	return runOp(service.OpSetActuator, func() error { return client.SetActuator(ctx, on) })
}

func deleteEventCmd(ctx context.Context, client service.SyncClient, displayIndex int) tea.Cmd {
	return runOp(service.OpDeleteEvent, func() error { return client.DeleteEvent(ctx, displayIndex) })
}

// refreshAllCmd reruns the startup refreshes one after another.
func refreshAllCmd(ctx context.Context, client service.SyncClient) tea.Cmd {
	return runOp("refresh", func() error {
		errSensors := client.RefreshSensors(ctx)
		errEvents := client.RefreshEvents(ctx)
		errMessages := client.RefreshMessages(ctx)
		for _, err := range []error{errSensors, errEvents, errMessages} {
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func copyCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboardWrite(text)}
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{} })
}
