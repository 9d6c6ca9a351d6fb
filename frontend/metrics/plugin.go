// Copyright 2025 NetApp, Inc. All Rights Reserved.

package metrics

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/netapp/multisvm/config"
	. "github.com/netapp/multisvm/logging"
)

const MetricsURL = "/metrics"

type Server struct {
	server *http.Server
}

// NewMetricsServer see also: https://godoc.org/github.com/prometheus/client_golang/prometheus/promauto
func NewMetricsServer(address string) *Server {
	mux := http.NewServeMux()
	mux.Handle(MetricsURL, promhttp.Handler())

	metricsServer := &Server{
		server: &http.Server{
			Addr:         address,
			Handler:      mux,
			ReadTimeout:  config.MetricsServerTimeout,
			WriteTimeout: config.MetricsServerTimeout,
		},
	}

	Log().WithField("address", metricsServer.server.Addr).Info("Initializing metrics frontend.")

	return metricsServer
}

func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

func (s *Server) Activate() error {
	go func() {
		Log().WithField("address", s.server.Addr).Info("Activating metrics frontend.")

		err := s.server.ListenAndServe()
		if err == http.ErrServerClosed {
			Log().WithField("address", s.server.Addr).Info("Metrics frontend server has closed.")
		} else if err != nil {
			Log().Fatal(err)
		}
	}()
	return nil
}

func (s *Server) Deactivate() error {
	Log().WithField("address", s.server.Addr).Info("Deactivating metrics frontend.")
	ctx, cancel := context.WithTimeout(context.Background(), config.MetricsServerTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

func (s *Server) GetName() string {
	return "metrics"
}

func (s *Server) Version() string {
	return config.OrchestratorAPIVersion
}
