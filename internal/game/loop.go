package game

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"chosenoffset.com/raycaster/internal/core/player"
)

// PresentFunc paints a frame. It runs on the loop goroutine.
type PresentFunc func(Frame) error

// Run ticks s every period and hands each frame to present. Inputs are
// applied between ticks in arrival order. The period does not stretch or
// skip to match present's duration; a slow present simply delays the next
// tick. Run returns nil when ctx is done or inputs is closed, and the
// present error otherwise.
func Run(ctx context.Context, s *Session, period time.Duration, inputs <-chan player.Input, present PresentFunc) error {
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	log.Debug().Dur("period", period).Msg("frame loop started")

	for {
		select {
		case <-ctx.Done():
			log.Debug().Uint64("frames", s.Frame().Number).Msg("frame loop stopped")
			return nil
		case in, ok := <-inputs:
			if !ok {
				log.Debug().Uint64("frames", s.Frame().Number).Msg("input closed, frame loop stopped")
				return nil
			}
			s.Apply(in)
		case <-ticker.C:
			frame := s.Tick()
			if err := present(frame); err != nil {
				return fmt.Errorf("failed to present frame %d: %w", frame.Number, err)
			}
		}
	}
}
