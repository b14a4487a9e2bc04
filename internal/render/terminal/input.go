package terminal

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"chosenoffset.com/raycaster/internal/core/player"
)

// Translate maps a key event to a player input. Terminals report no key
// release, so Space stops the player. quit is true for Esc, Ctrl-C and q.
func Translate(ev *tcell.EventKey, turnStep float64) (in player.Input, quit bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return player.Input{}, true
	case tcell.KeyUp:
		return player.Input{Action: player.Forward}, false
	case tcell.KeyDown:
		return player.Input{Action: player.Backward}, false
	case tcell.KeyLeft:
		return player.LookBy(-turnStep), false
	case tcell.KeyRight:
		return player.LookBy(turnStep), false
	case tcell.KeyRune:
	default:
		return player.Input{}, false
	}

	switch ev.Rune() {
	case 'q', 'Q':
		return player.Input{}, true
	case 'w', 'W':
		return player.Input{Action: player.Forward}, false
	case 's', 'S':
		return player.Input{Action: player.Backward}, false
	case 'a', 'A':
		return player.LookBy(-turnStep), false
	case 'd', 'D':
		return player.LookBy(turnStep), false
	case ' ':
		return player.Input{Action: player.Release}, false
	}
	return player.Input{}, false
}

// Poll reads events from screen on its own goroutine and sends the inputs
// they map to. The channel is closed when a quit key is pressed, the screen
// is finalised or ctx is done.
func Poll(ctx context.Context, screen tcell.Screen, turnStep float64) <-chan player.Input {
	inputs := make(chan player.Input)

	go func() {
		defer close(inputs)

		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}

			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				in, quit := Translate(ev, turnStep)
				if quit {
					log.Debug().Msg("quit key pressed")
					return
				}
				if in.Action == player.None {
					continue
				}
				select {
				case inputs <- in:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return inputs
}
