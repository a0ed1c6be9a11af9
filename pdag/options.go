package pdag

import "context"

// buildOptions holds settings for FromEdgelist, currently only cancellation,
// matching the functional-options shape the teacher uses for TopoOption.
type buildOptions struct {
	ctx context.Context
}

func defaultBuildOptions() buildOptions {
	return buildOptions{ctx: context.Background()}
}

// Option configures FromEdgelist.
type Option func(*buildOptions)

// WithContext sets a cancellation context checked periodically while
// walking the triple stream and running Kahn's algorithm; useful when the
// stream is backed by a very large or slow source. Passing a nil context
// has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *buildOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// checkDone returns ctx.Err() if ctx has already been cancelled, else nil.
func checkDone(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
