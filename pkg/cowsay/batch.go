package cowsay

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// SayAll renders reqs concurrently and returns the speeches in input order.
// The first failure cancels the remaining work and is returned.
func (s *Sayer) SayAll(ctx context.Context, reqs []Request) ([]*Speech, error) {
	// Random picks share one source, so they are made up front.
	names := make([]string, len(reqs))
	for i, req := range reqs {
		name, err := s.figureName(req)
		if err != nil {
			return nil, err
		}
		names[i] = name
	}

	out := make([]*Speech, len(reqs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range reqs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			speech, err := s.say(reqs[i], names[i])
			if err != nil {
				return err
			}
			out[i] = speech
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Everyone returns one copy of req per known figure, in name order.
func (s *Sayer) Everyone(req Request) []Request {
	names := s.resolver.Names()
	reqs := make([]Request, len(names))
	for i, name := range names {
		r := req
		r.Figure = name
		r.Random = false
		reqs[i] = r
	}
	return reqs
}
