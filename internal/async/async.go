package async

// Status is the lifecycle tag of an asynchronous operation.
type Status int

const (
	StatusNotStarted Status = iota
	StatusInProgress
	StatusComplete
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusNotStarted:
		return "not-started"
	case StatusInProgress:
		return "in-progress"
	case StatusComplete:
		return "complete"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Value is the tagged state of an asynchronous operation: not started,
// in progress, complete with a value, or failed with a message.
// Exactly one tag is active at a time. The zero Value is NotStarted,
// so a zero slice state is already in its documented initial state.
//
// Values are immutable; "transitions" are just new constructor calls.
// Going from Complete/Error back to InProgress is valid (re-fetch).
type Value[T any] struct {
	status Status
	value  T
	errMsg string
}

// NotStarted returns the initial state. Equivalent to the zero Value.
func NotStarted[T any]() Value[T] {
	return Value[T]{}
}

// InProgress marks the operation as started but not yet resolved.
func InProgress[T any]() Value[T] {
	return Value[T]{status: StatusInProgress}
}

// Complete wraps a successfully produced value.
func Complete[T any](v T) Value[T] {
	return Value[T]{status: StatusComplete, value: v}
}

// Errored wraps a human-readable failure message.
func Errored[T any](msg string) Value[T] {
	return Value[T]{status: StatusError, errMsg: msg}
}

func (v Value[T]) Status() Status { return v.status }

// Get returns the completed value. ok is false unless Status is Complete.
func (v Value[T]) Get() (T, bool) {
	if v.status != StatusComplete {
		var zero T
		return zero, false
	}
	return v.value, true
}

// ErrMessage returns the failure message, or "" unless Status is Error.
func (v Value[T]) ErrMessage() string {
	if v.status != StatusError {
		return ""
	}
	return v.errMsg
}
