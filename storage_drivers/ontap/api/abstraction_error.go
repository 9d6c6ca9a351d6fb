// Copyright 2024 NetApp, Inc. All Rights Reserved.

package api

import (
	"net/http"

	"github.com/netapp/multisvm/utils/errors"
)

// ///////////////////////////////////////////////////////////////////////////
// REST error codes
// ///////////////////////////////////////////////////////////////////////////
const (
	ENTRY_DOESNT_EXIST = "4"
	DUPLICATE_ENTRY    = "1"
)

// IsNotFound reports whether err means the addressed resource does not exist.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	return errors.ClusterStatusCode(err) == http.StatusNotFound || errors.ClusterErrorCode(err) == ENTRY_DOESNT_EXIST
}

// IsAlreadyExists reports whether err means the resource being created already exists.
func IsAlreadyExists(err error) bool {
	if err == nil {
		return false
	}
	return errors.ClusterErrorCode(err) == DUPLICATE_ENTRY || errors.ClusterStatusCode(err) == http.StatusConflict
}
