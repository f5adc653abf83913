package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/statekit/flow/counter"
	"github.com/statekit/flow/metrics"
	"github.com/statekit/flow/observability"
	"github.com/statekit/flow/store"
)

func demoCmd() *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the canonical dispatch sequence on a fresh in-memory store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			registry := prometheus.NewRegistry()
			recorder := observability.NewRecorder(0)
			obs := observability.NewFanout(observer, metrics.NewObserver(registry), recorder)

			st, err := counter.NewStore(store.WithObserver(obs))
			if err != nil {
				return err
			}

			unsub := store.Watch(st, counter.SelectCount, func(v int64) {
				fmt.Printf("count: %d\n", v)
			})
			defer unsub()

			sequence := []counter.Action{
				counter.Increment,
				counter.Increment,
				counter.Increment,
				counter.Decrement,
			}
			for _, action := range sequence {
				st.Dispatch(ctx, action)
			}

			fmt.Printf("final: %d (%d events recorded)\n",
				counter.SelectCount(st.GetState()), recorder.Len())

			if listen == "" {
				return nil
			}
			return serveMetrics(ctx, listen, registry)
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "", "serve Prometheus metrics on this address until interrupted")
	return cmd
}

func serveMetrics(ctx context.Context, addr string, registry *prometheus.Registry) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	server := &http.Server{Addr: addr, Handler: mux}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	fmt.Printf("serving metrics on %s/metrics\n", addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
