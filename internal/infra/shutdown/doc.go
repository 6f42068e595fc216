// Package shutdown turns process termination signals into context
// cancellation and runs cleanup hooks.
//
// Usage:
//
//	h := shutdown.NewHandler(5 * time.Second)
//	ctx, stop := h.Watch(context.Background())
//	defer stop()
//	h.OnShutdown(func(ctx context.Context) error { return srv.Shutdown(ctx) })
//	err := run(ctx) // returns early on SIGINT/SIGTERM
//	h.Shutdown()
package shutdown
