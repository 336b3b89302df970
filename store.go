package rebind

// Action is a value describing a requested state change. Concrete action
// types belong to the application; the store interprets them.
type Action any

// Dispatch sends an action into a store. The store passed to New supplies
// the Dispatch that mapDispatchToActions closes over.
type Dispatch func(Action)

// Unsubscribe removes a previously registered listener. After it returns,
// the listener receives no further notifications. Calling it more than
// once is harmless.
type Unsubscribe func()

// Store is the contract a state container must satisfy for a Connection
// to attach to it. The application owns the store; Connections share it.
type Store[State any] interface {
	// Subscribe registers a listener, invokes it synchronously with the
	// current state before returning, and invokes it again after every
	// subsequent state change.
	Subscribe(listener func(State)) Unsubscribe

	// Dispatch feeds an action into the store. Fire and forget; any
	// resulting state change arrives through Subscribe listeners.
	Dispatch(action Action)
}
