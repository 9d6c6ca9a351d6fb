// Copyright 2022 NetApp, Inc. All Rights Reserved.

package ontap

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/netapp/multisvm/config"
)

const (
	resultSuccess = "success"
	resultFailure = "failure"
)

var (
	registeredSVMsGauge = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: config.OrchestratorName,
			Name:      "registered_svms_total",
			Help:      "The number of SVMs in the driver registry",
		},
		[]string{"backend"},
	)
	discoveryTicksCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: config.OrchestratorName,
			Name:      "svm_discovery_ticks_total",
			Help:      "The number of SVM discovery passes by result",
		},
		[]string{"backend", "result"},
	)
	svmUpsertsCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: config.OrchestratorName,
			Name:      "svm_upserts_total",
			Help:      "The number of attempts to register an SVM by result",
		},
		[]string{"backend", "result"},
	)
	routedOperationsCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: config.OrchestratorName,
			Name:      "routed_operations_total",
			Help:      "The number of volume operations dispatched to an SVM by operation and result",
		},
		[]string{"operation", "result"},
	)
)

func resultLabel(err error) string {
	if err != nil {
		return resultFailure
	}
	return resultSuccess
}
