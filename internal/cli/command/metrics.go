package command

import (
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/yndnr/listset-go/internal/telemetry/logger"
	"github.com/yndnr/listset-go/internal/telemetry/metric"
)

// startMetricsServer serves reg on addr at /metrics. The listener is bound
// before returning so address errors surface immediately.
func startMetricsServer(addr string, reg *metric.Registry, log logger.Logger) (*http.Server, net.Addr, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, nil, err
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", reg.Handler())
	srv := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics server error", "error", err)
		}
	}()
	return srv, ln.Addr(), nil
}
