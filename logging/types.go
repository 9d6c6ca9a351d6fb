// Copyright 2022 NetApp, Inc. All Rights Reserved.

package logging

import (
	log "github.com/sirupsen/logrus"
)

const (
	ContextKeyRequestID     ContextKey = "requestID"
	ContextKeyRequestSource ContextKey = "requestSource"
	ContextKeySVM           ContextKey = "svm"

	ContextSourceREST     = "REST"
	ContextSourceCLI      = "CLI"
	ContextSourceEvent    = "Event"
	ContextSourceDriver   = "Driver"
	ContextSourceInternal = "Internal"
	ContextSourcePeriodic = "Periodic"

	// ContextRequestTargetCluster labels outgoing requests sent to the storage cluster.
	ContextRequestTargetCluster = "ontap"
)

// ContextKey is used for context.Context value. The value requires a key that is not primitive type.
type ContextKey string

type LogFields = log.Fields
