// Copyright 2025 NetApp, Inc. All Rights Reserved.

package events

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/netapp/multisvm/config"
)

var eventsHandledCounter = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: config.OrchestratorName,
		Subsystem: "events",
		Name:      "handled_total",
		Help:      "The total number of project events handled",
	},
	[]string{"event_type", "result"},
)
