package pipeline

import (
	"fmt"
	"io"
)

// Observer receives stage lifecycle events. Progress display goes through
// here so stages stay unit-testable without capturing console output.
type Observer interface {
	// OnStageStart fires immediately before a stage executes
	OnStageStart(stage Stage)

	// OnStageComplete fires after a stage executed successfully
	OnStageComplete(stage Stage, state *State)
}

// NopObserver ignores all events.
type NopObserver struct{}

func (NopObserver) OnStageStart(Stage) {}

func (NopObserver) OnStageComplete(Stage, *State) {}

// ConsoleObserver prints one progress line when a stage starts and an
// indented outcome line when it completes.
type ConsoleObserver struct {
	Out io.Writer
}

// NewConsoleObserver creates an observer writing to out.
func NewConsoleObserver(out io.Writer) *ConsoleObserver {
	return &ConsoleObserver{Out: out}
}

func (o *ConsoleObserver) OnStageStart(stage Stage) {
	fmt.Fprintf(o.Out, "%s...\n", stage.Name())
}

func (o *ConsoleObserver) OnStageComplete(stage Stage, state *State) {
	if state.LastStatus != "" {
		fmt.Fprintf(o.Out, "   %s\n", state.LastStatus)
	}
}
