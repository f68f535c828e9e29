package core

// constructOptions holds the capacity hints DynamicGraph construction
// accepts. They affect only pre-allocation, never semantics — mirrors
// the functional-options idiom used elsewhere in this module (see
// ConstructOption/PoolOption). Construction stays infallible, so a
// negative hint is simply clamped to zero rather than rejected.
type constructOptions struct {
	NodeCapacity  int
	OutDegreeHint int
}

func defaultConstructOptions() constructOptions {
	return constructOptions{}
}

// ConstructOption configures a DynamicGraph before it is built.
type ConstructOption func(*constructOptions)

// WithNodeCapacity hints the expected final node count, used only to
// pre-size the internal node/edge slices.
func WithNodeCapacity(n int) ConstructOption {
	return func(o *constructOptions) { o.NodeCapacity = n }
}

// WithOutDegreeHint hints the expected out-degree per node, used only
// to pre-size each node's edge-list capacity.
func WithOutDegreeHint(d int) ConstructOption {
	return func(o *constructOptions) { o.OutDegreeHint = d }
}

func resolveConstructOptions(opts []ConstructOption) constructOptions {
	o := defaultConstructOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.NodeCapacity < 0 {
		o.NodeCapacity = 0
	}
	if o.OutDegreeHint < 0 {
		o.OutDegreeHint = 0
	}
	return o
}
