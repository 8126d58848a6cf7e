package listview

import "context"

// State is the load state of one list render.
type State uint8

const (
	StateIdle State = iota
	StateLoading
	StateReady
	StateError
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateError:
		return "error"
	default:
		return "idle"
	}
}

// Result is the outcome of fetching one collection snapshot.
type Result[T any] struct {
	State State
	Items []T
	Err   error
}

// Load runs fetch once and records the terminal state. There is no retry; a
// failed load renders its error in place of the table.
func Load[T any](ctx context.Context, fetch func(context.Context) ([]T, error)) Result[T] {
	result := Result[T]{State: StateLoading}
	if fetch == nil {
		result.State = StateReady
		return result
	}
	items, err := fetch(ctx)
	if err != nil {
		result.State = StateError
		result.Err = err
		return result
	}
	result.State = StateReady
	result.Items = items
	return result
}
