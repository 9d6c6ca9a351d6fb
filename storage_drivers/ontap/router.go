// Copyright 2025 NetApp, Inc. All Rights Reserved.

package ontap

import (
	"context"
	"strings"

	multisvmconfig "github.com/netapp/multisvm/config"
	. "github.com/netapp/multisvm/logging"
	"github.com/netapp/multisvm/utils/errors"
)

// Router dispatches volume operations to the client of the SVM that owns the volume.
type Router struct {
	registry *SVMRegistry
}

func NewRouter(registry *SVMRegistry) *Router {
	return &Router{registry: registry}
}

// extractPool returns the pool segment of a host string, or "" when there is none.
func extractPool(host string) string {
	idx := strings.Index(host, multisvmconfig.HostPoolSeparator)
	if idx < 0 {
		return ""
	}
	return host[idx+1:]
}

// resolveSVM returns the SVM that owns volume. A pool qualified with a managed SVM name wins;
// otherwise the SVM is derived from the volume's project.
func (r *Router) resolveSVM(volume *Volume) (string, error) {
	if volume == nil {
		return "", errors.InvalidInputError("missing volume")
	}
	pool := extractPool(volume.Host)
	if pool == "" {
		return "", errors.InvalidInputError("host %q of volume %s has no pool", volume.Host, volume.ID)
	}

	candidate := strings.SplitN(pool, multisvmconfig.PoolSeparator, 2)[0]
	if strings.HasPrefix(candidate, r.registry.Prefix()) {
		return candidate, nil
	}
	return r.registry.Prefix() + volume.ProjectID, nil
}

// route runs fn against the client owning volume. While fn runs, volume.Host carries the pool
// without its SVM qualification; the original host is restored on every return path.
func (r *Router) route(ctx context.Context, volume *Volume, operation string, fn func(SVMClient) error) (err error) {
	defer func() {
		routedOperationsCounter.WithLabelValues(operation, resultLabel(err)).Inc()
	}()

	svm, err := r.resolveSVM(volume)
	if err != nil {
		return err
	}
	ctx = WithSVM(ctx, svm)

	entry, err := r.registry.Get(svm)
	if err != nil {
		return errors.DriverNotInitializedError("SVM %s is not registered", svm)
	}
	if entry.Client.VServer() != svm {
		return errors.InvalidInputError("client for SVM %s is pinned to %s", svm, entry.Client.VServer())
	}

	originalHost := volume.Host
	volume.Host = strings.Replace(originalHost, svm+multisvmconfig.PoolSeparator, "", 1)
	defer func() {
		volume.Host = originalHost
	}()

	Logc(ctx).WithFields(LogFields{
		"operation": operation,
		"volume":    volume.ID,
		"host":      volume.Host,
	}).Trace("Routing volume operation.")

	return fn(entry.Client)
}

// routeSnapshot routes by the snapshot's volume.
func (r *Router) routeSnapshot(
	ctx context.Context, snapshot *Snapshot, operation string, fn func(SVMClient) error,
) error {
	if snapshot == nil || snapshot.Volume == nil {
		routedOperationsCounter.WithLabelValues(operation, resultFailure).Inc()
		return errors.InvalidInputError("snapshot has no volume")
	}
	return r.route(ctx, snapshot.Volume, operation, fn)
}

// normalizeConnector returns a copy of connector in which the host NQN is set from the initiator
// when only the initiator was given.
func normalizeConnector(connector Connector) Connector {
	normalized := connector.Copy()
	if _, ok := normalized[ConnectorNQN]; !ok {
		if initiator, ok := normalized[ConnectorInitiator]; ok {
			normalized[ConnectorNQN] = initiator
		}
	}
	return normalized
}

func (r *Router) CreateVolume(ctx context.Context, volume *Volume) error {
	return r.route(ctx, volume, "CreateVolume", func(client SVMClient) error {
		return client.CreateVolume(ctx, volume)
	})
}

func (r *Router) DeleteVolume(ctx context.Context, volume *Volume) error {
	return r.route(ctx, volume, "DeleteVolume", func(client SVMClient) error {
		return client.DeleteVolume(ctx, volume)
	})
}

func (r *Router) ExtendVolume(ctx context.Context, volume *Volume, newSize int) error {
	return r.route(ctx, volume, "ExtendVolume", func(client SVMClient) error {
		return client.ExtendVolume(ctx, volume, newSize)
	})
}

func (r *Router) CreateSnapshot(ctx context.Context, snapshot *Snapshot) error {
	return r.routeSnapshot(ctx, snapshot, "CreateSnapshot", func(client SVMClient) error {
		return client.CreateSnapshot(ctx, snapshot)
	})
}

func (r *Router) DeleteSnapshot(ctx context.Context, snapshot *Snapshot) error {
	return r.routeSnapshot(ctx, snapshot, "DeleteSnapshot", func(client SVMClient) error {
		return client.DeleteSnapshot(ctx, snapshot)
	})
}

func (r *Router) CreateVolumeFromSnapshot(ctx context.Context, volume *Volume, snapshot *Snapshot) error {
	return r.route(ctx, volume, "CreateVolumeFromSnapshot", func(client SVMClient) error {
		return client.CreateVolumeFromSnapshot(ctx, volume, snapshot)
	})
}

func (r *Router) CreateClonedVolume(ctx context.Context, volume, source *Volume) error {
	return r.route(ctx, volume, "CreateClonedVolume", func(client SVMClient) error {
		return client.CreateClonedVolume(ctx, volume, source)
	})
}

func (r *Router) InitializeConnection(
	ctx context.Context, volume *Volume, connector Connector,
) (info *ConnectionInfo, err error) {
	normalized := normalizeConnector(connector)
	err = r.route(ctx, volume, "InitializeConnection", func(client SVMClient) error {
		info, err = client.InitializeConnection(ctx, volume, normalized)
		return err
	})
	if err != nil {
		return nil, err
	}
	return info, nil
}

func (r *Router) TerminateConnection(ctx context.Context, volume *Volume, connector Connector) error {
	return r.route(ctx, volume, "TerminateConnection", func(client SVMClient) error {
		return client.TerminateConnection(ctx, volume, connector)
	})
}

func (r *Router) CreateExport(ctx context.Context, volume *Volume, connector Connector) error {
	return r.route(ctx, volume, "CreateExport", func(client SVMClient) error {
		return client.CreateExport(ctx, volume, connector)
	})
}

func (r *Router) EnsureExport(ctx context.Context, volume *Volume) error {
	return r.route(ctx, volume, "EnsureExport", func(client SVMClient) error {
		return client.EnsureExport(ctx, volume)
	})
}

func (r *Router) RemoveExport(ctx context.Context, volume *Volume) error {
	return r.route(ctx, volume, "RemoveExport", func(client SVMClient) error {
		return client.RemoveExport(ctx, volume)
	})
}
