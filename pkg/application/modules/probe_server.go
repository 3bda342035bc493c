package modules

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"vendor_verify/pkg/probe"
)

type ProbeServer struct {
	Server probe.Server
}

func (p ProbeServer) Run(ctx context.Context, g *errgroup.Group) {
	g.Go(func() error {
		if err := p.Server.Run(ctx); err != nil {
			return fmt.Errorf("probeServer.Run: %w", err)
		}

		return nil
	})
}
