// Package rebind connects a unidirectional state store to per-controller
// reactive bindings.
//
// # Overview
//
// Applications built around a single store tend to grow controllers that
// read global state and dispatch actions directly. This package inserts a
// thin contract between the two: each controller declares a Props value
// (the read-only slice of state it renders) and an Actions value (the
// callbacks it may invoke), and a Connection keeps both in sync with the
// store. Controllers never see the store; the store never sees controllers.
//
// # Architecture
//
// The package has one composed component, Connection, parameterized over
// the application's State plus the controller's Props and Actions types:
//
//	┌────────────┐  Subscribe   ┌──────────────────┐   Bind    ┌───────────┐
//	│   Store    │─────────────→│    Connection    │──────────→│ Observers │
//	│  (yours)   │              │ mapStateToProps  │  dedup on │ (UI sinks)│
//	│            │←─────────────│ mapDispatchTo-   │  field == │           │
//	└────────────┘  Dispatch    │ Actions          │           └───────────┘
//	                            └──────────────────┘
//
// Control flow: the controller calls Connect, the Connection subscribes to
// the store, and every state notification recomputes Props wholesale and
// republishes it to all live bindings. Invoking an Actions callback
// dispatches a concrete action back into the store, which notifies again,
// closing the loop. Disconnect releases the subscription.
//
// # Core Types
//
// Store is the consumed contract: a container that delivers the current
// state immediately on Subscribe, again on every change, and accepts
// dispatched actions. Observer is the offered contract: a single-method
// sink that Bind forwards field values into.
//
// Connection owns the current Props (replaced on every notification, unset
// before the first one), the Actions aggregate (built exactly once at
// construction, referentially stable afterwards), and the subscription
// handle (present iff connected).
//
// # Bindings
//
// Bind pipes one Props field into an Observer, suppressing consecutive
// duplicates by comparing the extracted field, not the whole Props value.
// Unrelated Props churn therefore never reaches a sink whose field did not
// change. BindMapped applies a pure transform between extraction and
// delivery. Field types must be comparable; the constraint is enforced at
// the type level.
//
// Bindings may be established before or after Connect. They emit only
// while connected and only once a first Props value exists; a binding made
// after that point receives the current value immediately. Release removes
// a binding synchronously, with no delivery after it returns.
//
// # Concurrency Model
//
// A Connection has a single logical owner: the goroutine that runs the
// controller and its UI. It takes no locks. Stores that notify from other
// goroutines must marshal notifications onto the owner before they reach
// the Connection. The store subscription and every binding are scoped
// resources; Disconnect and Release remove listeners before returning, so
// no callback is delivered after either call completes.
//
// # Usage Example
//
//	type props struct{ Text string }
//	type actions struct{ SetText func(string) }
//
//	conn := rebind.New(store,
//		func(s appState) props { return props{Text: s.Content} },
//		func(dispatch rebind.Dispatch) actions {
//			return actions{SetText: func(v string) { dispatch(setContent{v}) }}
//		},
//	)
//	conn.Connect()
//	defer conn.Disconnect()
//
//	rebind.Bind(conn,
//		func(p props) string { return p.Text },
//		rebind.ObserverFunc[string](label.SetText))
//
//	conn.Actions().SetText("hello") // store updates, label follows
//
// # Error Handling
//
// There is no error taxonomy. Misuse panics: Connect on an already
// connected Connection, and Props before any state has been received.
// Mapping functions are assumed total and pure; a panic inside one
// propagates to whoever triggered the notification.
//
// # Design Rationale
//
// This package intentionally avoids:
//   - Shipping a store or reducer runtime (the Store interface is the
//     whole dependency; internal/memstore exists only for tests and
//     examples)
//   - Whole-Props deduplication (field-level comparison is what prevents
//     redundant UI writes when unrelated fields change)
//   - Internal locking (single-owner use is the contract; locks would only
//     hide misuse)
//   - Queued or replayed notification history (only the latest state
//     matters; each notification supersedes the previous Props)
package rebind
