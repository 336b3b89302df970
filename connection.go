package rebind

// Connection derives a controller's Props and Actions from a Store and
// manages the subscription lifecycle between them.
//
// While connected, every state notification replaces Props wholesale with
// mapStateToProps(state) and republishes it to all live bindings. Actions
// is built exactly once, at construction, and never changes: the dispatch
// function it closes over is stable, so there is nothing to recompute.
//
// A Connection is not safe for concurrent use. It belongs to the
// goroutine that owns the controller and its UI; stores that notify from
// elsewhere must marshal onto that goroutine first.
type Connection[State, Props, Actions any] struct {
	store    Store[State]
	mapProps func(State) Props
	actions  Actions

	props    Props
	hasProps bool

	unsubscribe Unsubscribe
	sinks       map[*Binding]func(Props)
}

// New builds a Connection for one controller. Actions is computed eagerly
// from the store's dispatch function; no subscription is established and
// no Props exists until Connect.
func New[State, Props, Actions any](
	store Store[State],
	mapStateToProps func(State) Props,
	mapDispatchToActions func(Dispatch) Actions,
) *Connection[State, Props, Actions] {
	return &Connection[State, Props, Actions]{
		store:    store,
		mapProps: mapStateToProps,
		actions:  mapDispatchToActions(store.Dispatch),
		sinks:    make(map[*Binding]func(Props)),
	}
}

// Connect subscribes to the store. A conforming store delivers the
// current state synchronously, so Props is available when Connect
// returns. Panics if the Connection is already connected.
func (c *Connection[State, Props, Actions]) Connect() {
	if c.unsubscribe != nil {
		panic("rebind: Connect called on an already connected Connection")
	}
	c.unsubscribe = c.store.Subscribe(func(state State) {
		c.props = c.mapProps(state)
		c.hasProps = true
		c.publish(c.props)
	})
}

// Disconnect releases the store subscription. The listener is removed
// before Disconnect returns: later store changes neither alter Props nor
// reach any binding. Safe to call unconditionally from teardown paths;
// a Connection that is not connected is left untouched.
func (c *Connection[State, Props, Actions]) Disconnect() {
	if c.unsubscribe == nil {
		return
	}
	c.unsubscribe()
	c.unsubscribe = nil
}

// Connected reports whether a store subscription is currently held.
func (c *Connection[State, Props, Actions]) Connected() bool {
	return c.unsubscribe != nil
}

// Props returns the value derived from the most recent state
// notification. Panics if no state has been received yet; reading Props
// before Connect is a programming error, not an empty value.
func (c *Connection[State, Props, Actions]) Props() Props {
	if !c.hasProps {
		panic("rebind: Props read before any state was received")
	}
	return c.props
}

// Actions returns the callback aggregate built at construction. The same
// value is returned for the lifetime of the Connection.
func (c *Connection[State, Props, Actions]) Actions() Actions {
	return c.actions
}

func (c *Connection[State, Props, Actions]) publish(props Props) {
	// Deleting from a map mid-range is allowed, so a sink may release
	// its own binding while being delivered to.
	for _, deliver := range c.sinks {
		deliver(props)
	}
}
