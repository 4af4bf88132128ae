package main

import (
	"flag"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/example/taxi-dispatch/internal/config"
	"github.com/example/taxi-dispatch/internal/dispatch"
	"github.com/example/taxi-dispatch/internal/logging"
	"github.com/example/taxi-dispatch/internal/models"
	"github.com/example/taxi-dispatch/internal/payments"
	"github.com/example/taxi-dispatch/internal/shell"
)

func main() {
	var metricsAddr string
	flag.StringVar(&metricsAddr, "metrics-addr", "", "address to serve prometheus metrics on (overrides METRICS_ADDR; empty disables)")
	flag.Parse()

	cfg, err := config.Load()
	logger := logging.NewLogger(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		logger.Error("config error", "error", err)
		os.Exit(1)
	}
	if metricsAddr != "" {
		cfg.MetricsAddr = metricsAddr
	}

	if cfg.MetricsAddr != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); w.Write([]byte("ok")) })
			logger.Info("metrics listening", "addr", cfg.MetricsAddr)
			if err := http.ListenAndServe(cfg.MetricsAddr, mux); err != nil {
				logger.Error("metrics server stopped", "error", err)
			}
		}()
	}

	sys := dispatch.NewSystem(payments.NewProcessor(logger), logger)
	seed(sys)

	if err := shell.New(sys, os.Stdin, os.Stdout).Run(); err != nil {
		logger.Error("shell error", "error", err)
		os.Exit(1)
	}
}

// seed loads the demo fleet and users the simulator starts with.
func seed(sys *dispatch.System) {
	sys.AddVehicle("TAXI001", "Toyota Corolla", models.Standard)
	sys.AddVehicle("TAXI002", "Honda Civic", models.Standard)
	sys.AddVehicle("LUX001", "Mercedes S-Class", models.Luxury)

	sys.AddUser("USER001", "John Doe")
	sys.AddUser("USER002", "Jane Smith")
}
