package algopar

import (
	"fmt"
	"runtime"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"
)

var validate = validator.New()

// poolOptions is the tagged struct validator.Struct checks before a
// Pool is built. Workers is validated rather than merely clamped,
// unlike core's construction hints, because a misconfigured worker
// count is a genuine runtime configuration error, not a harmless
// pre-allocation hint.
type poolOptions struct {
	Workers int `validate:"omitempty,gte=1"`
}

// PoolOption configures a Pool before it is built.
type PoolOption func(*poolOptions)

// WithWorkers overrides the default worker count (runtime.GOMAXPROCS(0)).
// n must be at least 1; n <= 0 leaves the default in place.
func WithWorkers(n int) PoolOption {
	return func(o *poolOptions) {
		if n > 0 {
			o.Workers = n
		}
	}
}

// Pool bounds the goroutine fan-out used by every parallel algorithm's
// frontier-expansion step to a fixed worker count, joining each step
// with errgroup.Group.Wait before the next level begins.
type Pool struct {
	workers int
}

// NewPool builds a Pool, validating its worker-count configuration.
// The only way this returns an error is an explicit WithWorkers(n)
// call with n below 1 surviving into the resolved options — which
// cannot happen given WithWorkers' own guard, but Validate is run
// anyway so a future option that bypasses that guard is still caught.
func NewPool(opts ...PoolOption) (*Pool, error) {
	o := poolOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if err := validate.Struct(&o); err != nil {
		return nil, fmt.Errorf("algopar: invalid pool configuration: %w", err)
	}
	workers := o.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers < 1 {
		workers = 1
	}
	return &Pool{workers: workers}, nil
}

// forEach runs fn(i) for every index in [0, n) across at most p.workers
// goroutines and blocks until all of them return — this Wait is the
// level barrier every parallel algorithm relies on. If any fn returns
// an error, Wait reports the first one after the rest finish.
func (p *Pool) forEach(n int, fn func(i int) error) error {
	g := new(errgroup.Group)
	g.SetLimit(p.workers)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error { return fn(i) })
	}
	return g.Wait()
}
