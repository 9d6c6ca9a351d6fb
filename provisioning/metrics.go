// Copyright 2025 NetApp, Inc. All Rights Reserved.

package provisioning

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/netapp/multisvm/config"
)

var provisioningOperationsCounter = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: config.OrchestratorName,
		Subsystem: "provisioning",
		Name:      "operations_total",
		Help:      "The total number of tenant provisioning operations",
	},
	[]string{"operation", "result"},
)

func recordOperation(operation string, err error) {
	result := "success"
	if err != nil {
		result = "failure"
	}
	provisioningOperationsCounter.WithLabelValues(operation, result).Inc()
}
