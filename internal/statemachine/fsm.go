package statemachine

import (
	"context"
	"errors"
	"fmt"

	"github.com/looplab/fsm"
)

// ErrInvalidTransition is returned when an event is not allowed from the current state
var ErrInvalidTransition = errors.New("transição de estado inválida")

// fire runs event on f and hands the resulting state to set
func fire(ctx context.Context, f *fsm.FSM, kind, event string, set func(string)) error {
	if !f.Can(event) {
		return fmt.Errorf("%w: %s não pode executar %q a partir de %q", ErrInvalidTransition, kind, event, f.Current())
	}
	if err := f.Event(ctx, event); err != nil {
		return fmt.Errorf("failed to %s %s: %w", event, kind, err)
	}
	set(f.Current())
	return nil
}
