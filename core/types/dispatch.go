package types

// Dispatcher routes a call to the module that owns its semantics and executes
// it on behalf of a caller. Implementations mutate their own state only and
// report expected failures (insufficient funds, unknown validator, ...) as
// ordinary errors; they never panic for an expected condition.
type Dispatcher[Caller, Call any] interface {
	Dispatch(caller Caller, call Call) error
}
