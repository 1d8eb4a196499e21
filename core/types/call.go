package types

// RuntimeCall marks the closed set of calls the runtime knows how to route.
// Each pallet's call variants implement it and report the module that owns
// their semantics.
type RuntimeCall interface {
	RuntimeModule() string
}
