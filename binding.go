package rebind

// Binding is the handle for one live Props-field forwarding. It is a
// scoped resource: release it at the same teardown point as Disconnect.
type Binding struct {
	release func()
}

// Release removes the binding. The target observer receives nothing after
// Release returns. Releasing an already released Binding is a no-op.
func (b *Binding) Release() {
	if b.release != nil {
		b.release()
		b.release = nil
	}
}

// Bind forwards one Props field to an observer, suppressing consecutive
// duplicates by comparing the extracted field with ==. Equality on the
// field, not the whole Props value, is what keeps unrelated Props churn
// away from the sink.
//
// A binding established while the Connection is connected and a Props
// value exists receives the current field value immediately. One
// established earlier first fires on the first Props computation after
// Connect. Bindings survive Disconnect/Connect cycles until released.
//
// Bind is a package function rather than a method because the field type V
// is a fresh type parameter per call site.
func Bind[State, Props, Actions any, V comparable](
	c *Connection[State, Props, Actions],
	selector func(Props) V,
	target Observer[V],
) *Binding {
	return BindMapped(c, selector, func(v V) V { return v }, target)
}

// BindMapped is Bind with a pure transform applied between extraction and
// delivery. Deduplication happens on the extracted field value, before
// the transform runs.
func BindMapped[State, Props, Actions any, V comparable, W any](
	c *Connection[State, Props, Actions],
	selector func(Props) V,
	transform func(V) W,
	target Observer[W],
) *Binding {
	b := &Binding{}

	var last V
	var seen bool
	deliver := func(props Props) {
		v := selector(props)
		if seen && v == last {
			return
		}
		last, seen = v, true
		target.OnNext(transform(v))
	}

	c.sinks[b] = deliver
	b.release = func() { delete(c.sinks, b) }

	if c.Connected() && c.hasProps {
		deliver(c.props)
	}
	return b
}
