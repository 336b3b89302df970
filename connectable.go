package rebind

// Connectable marks a controller that owns a store connection. A
// controller adopts the capability by exposing its Connection; everything
// else (props access, action invocation, binding) goes through that.
type Connectable[State, Props, Actions any] interface {
	Connection() *Connection[State, Props, Actions]
}

// Connect attaches a controller's connection to its store. Equivalent to
// c.Connection().Connect(); exists so setup code reads in terms of the
// controller, not its plumbing.
func Connect[State, Props, Actions any](c Connectable[State, Props, Actions]) {
	c.Connection().Connect()
}

// Disconnect releases a controller's store subscription. Safe to call
// from teardown paths whether or not the controller is connected.
func Disconnect[State, Props, Actions any](c Connectable[State, Props, Actions]) {
	c.Connection().Disconnect()
}
