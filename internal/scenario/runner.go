package scenario

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/comalice/forwardlist"
)

// ErrPrecondition marks a step that would violate a list precondition.
var ErrPrecondition = errors.New("precondition violated")

// StepError reports the failing step of a scenario run.
type StepError struct {
	Index int
	Step  Step
	Err   error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d %s: %v", e.Index, e.Step, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// Runner applies scenarios to lists.
type Runner struct {
	logger *slog.Logger
}

// NewRunner returns a Runner logging to logger. A nil logger discards.
func NewRunner(logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Runner{logger: logger}
}

// Run builds the initial list and applies every step. On failure the list in
// the state reached before the failing step is returned with the error.
func (r *Runner) Run(ctx context.Context, cfg Config) (*forwardlist.List[int], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	l := forwardlist.Of(cfg.Initial...)
	r.logger.Debug("scenario.start", "id", cfg.ID, "version", ComputeVersion(&cfg), "size", l.Size())

	for i, s := range cfg.Steps {
		if err := ctx.Err(); err != nil {
			return l, err
		}
		if err := apply(l, s); err != nil {
			r.logger.Debug("scenario.step_failed", "id", cfg.ID, "index", i, "step", s.String(), "err", err)
			return l, &StepError{Index: i, Step: s, Err: err}
		}
		r.logger.Debug("scenario.step", "id", cfg.ID, "index", i, "step", s.String(), "size", l.Size())
	}

	r.logger.Debug("scenario.done", "id", cfg.ID, "size", l.Size())
	return l, nil
}

func apply(l *forwardlist.List[int], s Step) error {
	switch s.Op {
	case PushFront:
		l.PushFront(s.Value)
	case PopFront:
		if l.IsEmpty() {
			return fmt.Errorf("%w: list is empty", ErrPrecondition)
		}
		l.PopFront()
	case InsertAfter:
		if s.After > l.Size() {
			return fmt.Errorf("%w: position %d beyond size %d", ErrPrecondition, s.After, l.Size())
		}
		l.InsertAfter(position(l, s.After), s.Value)
	case EraseAfter:
		if s.After >= l.Size() {
			return fmt.Errorf("%w: no element after position %d", ErrPrecondition, s.After)
		}
		l.EraseAfter(position(l, s.After))
	case Clear:
		l.Clear()
	case Assign:
		return l.Assign(forwardlist.Of(s.Values...))
	default:
		return fmt.Errorf("%w: unknown op %q", ErrInvalidScenario, s.Op)
	}
	return nil
}

// position returns the iterator for index k, where 0 is the before-begin
// anchor.
func position(l *forwardlist.List[int], k int) forwardlist.Iterator[int] {
	it := l.BeforeBegin()
	for ; k > 0; k-- {
		it.Inc()
	}
	return it
}
