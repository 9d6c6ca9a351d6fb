// Copyright 2023 NetApp, Inc. All Rights Reserved.

package api

import (
	"context"
	"net/http"
	"net/url"

	. "github.com/netapp/multisvm/logging"
	"github.com/netapp/multisvm/utils/errors"
)

// The operations below are SVM scoped: they act on the SVM the client was built for.

const (
	subsystemFields    = "name,uuid,os_type,target_nqn,svm.name,hosts.nqn"
	subsystemMapFields = "svm.name,subsystem.name,subsystem.uuid,namespace.name,namespace.uuid,nsid"
	perfVolumeFields   = volumeFields + ",metric.latency.total,metric.iops.total,metric.throughput.total,metric.status"
)

// SvmCapabilities returns the client's SVM with its protocol state.
func (c *RestClient) SvmCapabilities(ctx context.Context) (*Svm, error) {
	svmName, err := c.requireSVM()
	if err != nil {
		return nil, err
	}
	svm, err := c.SvmGetByName(ctx, svmName)
	if err != nil {
		return nil, err
	}
	if svm == nil {
		return nil, errors.SVMNotFoundError(svmName)
	}
	return svm, nil
}

// FlexvolList returns the SVM's online read-write FlexVols with space and performance metrics.
func (c *RestClient) FlexvolList(ctx context.Context) ([]Volume, error) {
	svmName, err := c.requireSVM()
	if err != nil {
		return nil, err
	}
	query := url.Values{
		"svm.name":    []string{svmName},
		"style":       []string{"flexvol"},
		"type":        []string{"rw"},
		"state":       []string{"online"},
		"is_svm_root": []string{"false"},
		"fields":      []string{perfVolumeFields},
	}
	return getAll[Volume](ctx, c, "/api/storage/volumes", query)
}

// NVMeNamespaceGetByName returns the namespace at path, or nil.
func (c *RestClient) NVMeNamespaceGetByName(ctx context.Context, path string) (*NVMeNamespace, error) {
	svmName, err := c.requireSVM()
	if err != nil {
		return nil, err
	}
	query := url.Values{
		"svm.name": []string{svmName},
		"name":     []string{path},
		"fields":   []string{namespaceFields},
	}
	return getOne[NVMeNamespace](ctx, c, "/api/storage/namespaces", query)
}

// NVMeNamespaceCreate creates a namespace and returns it.
func (c *RestClient) NVMeNamespaceCreate(ctx context.Context, spec NVMeNamespaceSpec) (*NVMeNamespace, error) {
	svmName, err := c.requireSVM()
	if err != nil {
		return nil, err
	}
	ns := NVMeNamespace{
		Name:    spec.Path,
		OsType:  spec.OsType,
		Svm:     &NamedReference{Name: svmName},
		Space:   &NamespaceSpace{Size: int64(spec.Size)},
		Comment: spec.Comment,
	}

	Logc(ctx).WithFields(LogFields{
		"svm":       svmName,
		"namespace": spec.Path,
		"size":      spec.Size,
	}).Debug("Creating namespace.")

	if err = c.modify(ctx, http.MethodPost, "/api/storage/namespaces", nil, ns, nil); err != nil {
		return nil, err
	}
	return c.namespaceAfterCreate(ctx, spec.Path)
}

// NVMeNamespaceClone creates the namespace at path as a clone of source.
func (c *RestClient) NVMeNamespaceClone(ctx context.Context, source, path string) (*NVMeNamespace, error) {
	svmName, err := c.requireSVM()
	if err != nil {
		return nil, err
	}
	clone := struct {
		Name  string         `json:"name"`
		Svm   NamedReference `json:"svm"`
		Clone struct {
			Source NamedReference `json:"source"`
		} `json:"clone"`
	}{
		Name: path,
		Svm:  NamedReference{Name: svmName},
	}
	clone.Clone.Source.Name = source

	Logc(ctx).WithFields(LogFields{
		"svm":    svmName,
		"source": source,
		"clone":  path,
	}).Debug("Cloning namespace.")

	if err = c.modify(ctx, http.MethodPost, "/api/storage/namespaces", nil, clone, nil); err != nil {
		return nil, err
	}
	return c.namespaceAfterCreate(ctx, path)
}

func (c *RestClient) namespaceAfterCreate(ctx context.Context, path string) (*NVMeNamespace, error) {
	ns, err := c.NVMeNamespaceGetByName(ctx, path)
	if err != nil {
		return nil, err
	}
	if ns == nil {
		return nil, errors.NotFoundError("namespace %s not found after creation", path)
	}
	return ns, nil
}

// NVMeNamespaceResize sets the size of the namespace at path, in bytes.
func (c *RestClient) NVMeNamespaceResize(ctx context.Context, path string, size uint64) error {
	ns, err := c.NVMeNamespaceGetByName(ctx, path)
	if err != nil {
		return err
	}
	if ns == nil {
		return errors.NotFoundError("namespace %s not found", path)
	}
	body := NVMeNamespace{Space: &NamespaceSpace{Size: int64(size)}}
	return c.modify(ctx, http.MethodPatch, "/api/storage/namespaces/"+url.PathEscape(ns.UUID), nil, body, nil)
}

// NVMeNamespaceDelete deletes the namespace at path. It returns false if it did not exist.
func (c *RestClient) NVMeNamespaceDelete(ctx context.Context, path string) (bool, error) {
	ns, err := c.NVMeNamespaceGetByName(ctx, path)
	if err != nil {
		return false, err
	}
	if ns == nil {
		return false, nil
	}
	if err = c.modify(ctx, http.MethodDelete, "/api/storage/namespaces/"+url.PathEscape(ns.UUID), nil, nil,
		nil); err != nil {
		if IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// NVMeSubsystemGetByName returns the named subsystem, or nil.
func (c *RestClient) NVMeSubsystemGetByName(ctx context.Context, name string) (*NVMeSubsystem, error) {
	svmName, err := c.requireSVM()
	if err != nil {
		return nil, err
	}
	query := url.Values{
		"svm.name": []string{svmName},
		"name":     []string{name},
		"fields":   []string{subsystemFields},
	}
	return getOne[NVMeSubsystem](ctx, c, "/api/protocols/nvme/subsystems", query)
}

// NVMeSubsystemGetOrCreate returns the named subsystem, creating it if needed.
func (c *RestClient) NVMeSubsystemGetOrCreate(ctx context.Context, name, osType string) (*NVMeSubsystem, error) {
	subsystem, err := c.NVMeSubsystemGetByName(ctx, name)
	if err != nil || subsystem != nil {
		return subsystem, err
	}

	svmName, _ := c.requireSVM()
	body := NVMeSubsystem{Name: name, OsType: osType, Svm: &NamedReference{Name: svmName}}

	Logc(ctx).WithFields(LogFields{"svm": svmName, "subsystem": name}).Debug("Creating subsystem.")

	if err = c.modify(ctx, http.MethodPost, "/api/protocols/nvme/subsystems", nil, body, nil); err != nil &&
		!IsAlreadyExists(err) {
		return nil, err
	}

	if subsystem, err = c.NVMeSubsystemGetByName(ctx, name); err != nil {
		return nil, err
	}
	if subsystem == nil {
		return nil, errors.NotFoundError("subsystem %s not found after creation", name)
	}
	return subsystem, nil
}

// NVMeSubsystemDelete deletes a subsystem by UUID.
func (c *RestClient) NVMeSubsystemDelete(ctx context.Context, subsystemUUID string) error {
	path := "/api/protocols/nvme/subsystems/" + url.PathEscape(subsystemUUID)
	if err := c.modify(ctx, http.MethodDelete, path, nil, nil, nil); err != nil && !IsNotFound(err) {
		return err
	}
	return nil
}

// NVMeAddHostToSubsystem grants hostNQN access to the subsystem. Adding a present host succeeds.
func (c *RestClient) NVMeAddHostToSubsystem(ctx context.Context, subsystemUUID, hostNQN string) error {
	path := "/api/protocols/nvme/subsystems/" + url.PathEscape(subsystemUUID) + "/hosts"
	body := NVMeSubsystemHost{NQN: hostNQN}
	if err := c.modify(ctx, http.MethodPost, path, nil, body, nil); err != nil && !IsAlreadyExists(err) {
		return err
	}
	return nil
}

// NVMeRemoveHostFromSubsystem revokes hostNQN's access. Removing an absent host succeeds.
func (c *RestClient) NVMeRemoveHostFromSubsystem(ctx context.Context, subsystemUUID, hostNQN string) error {
	path := "/api/protocols/nvme/subsystems/" + url.PathEscape(subsystemUUID) + "/hosts/" + url.PathEscape(hostNQN)
	if err := c.modify(ctx, http.MethodDelete, path, nil, nil, nil); err != nil && !IsNotFound(err) {
		return err
	}
	return nil
}

// NVMeNamespaceMaps returns the subsystem maps of a namespace.
func (c *RestClient) NVMeNamespaceMaps(ctx context.Context, namespaceUUID string) ([]NVMeSubsystemMap, error) {
	svmName, err := c.requireSVM()
	if err != nil {
		return nil, err
	}
	query := url.Values{
		"svm.name":       []string{svmName},
		"namespace.uuid": []string{namespaceUUID},
		"fields":         []string{subsystemMapFields},
	}
	return getAll[NVMeSubsystemMap](ctx, c, "/api/protocols/nvme/subsystem-maps", query)
}

// NVMeSubsystemMapCount returns the number of namespaces mapped to a subsystem.
func (c *RestClient) NVMeSubsystemMapCount(ctx context.Context, subsystemUUID string) (int, error) {
	svmName, err := c.requireSVM()
	if err != nil {
		return 0, err
	}
	query := url.Values{
		"svm.name":       []string{svmName},
		"subsystem.uuid": []string{subsystemUUID},
		"fields":         []string{subsystemMapFields},
	}
	maps, err := getAll[NVMeSubsystemMap](ctx, c, "/api/protocols/nvme/subsystem-maps", query)
	if err != nil {
		return 0, err
	}
	return len(maps), nil
}

// NVMeEnsureNamespaceMapped maps the namespace to the subsystem unless it already is.
func (c *RestClient) NVMeEnsureNamespaceMapped(ctx context.Context, subsystemUUID, namespaceUUID string) error {
	maps, err := c.NVMeNamespaceMaps(ctx, namespaceUUID)
	if err != nil {
		return err
	}
	for _, m := range maps {
		if m.Subsystem != nil && m.Subsystem.UUID == subsystemUUID {
			return nil
		}
	}

	svmName, _ := c.requireSVM()
	body := NVMeSubsystemMap{
		Svm:       &NamedReference{Name: svmName},
		Subsystem: &NamedReference{UUID: subsystemUUID},
		Namespace: &NamedReference{UUID: namespaceUUID},
	}
	if err = c.modify(ctx, http.MethodPost, "/api/protocols/nvme/subsystem-maps", nil, body, nil); err != nil &&
		!IsAlreadyExists(err) {
		return err
	}
	return nil
}

// NVMeEnsureNamespaceUnmapped removes the namespace from the subsystem if it is mapped there.
func (c *RestClient) NVMeEnsureNamespaceUnmapped(ctx context.Context, subsystemUUID, namespaceUUID string) error {
	path := "/api/protocols/nvme/subsystem-maps/" + url.PathEscape(subsystemUUID) + "/" + url.PathEscape(namespaceUUID)
	if err := c.modify(ctx, http.MethodDelete, path, nil, nil, nil); err != nil && !IsNotFound(err) {
		return err
	}
	return nil
}

// NVMeDataLIFs returns the addresses of the SVM's NVMe/TCP data interfaces.
func (c *RestClient) NVMeDataLIFs(ctx context.Context) ([]string, error) {
	svmName, err := c.requireSVM()
	if err != nil {
		return nil, err
	}
	query := url.Values{
		"svm.name": []string{svmName},
		"services": []string{"data_nvme_tcp"},
		"fields":   []string{ipInterfaceFields},
	}
	lifs, err := getAll[IPInterface](ctx, c, "/api/network/ip/interfaces", query)
	if err != nil {
		return nil, err
	}

	addresses := make([]string, 0, len(lifs))
	for _, lif := range lifs {
		if lif.Enabled != nil && !*lif.Enabled {
			continue
		}
		if lif.IP != nil && lif.IP.Address != "" {
			addresses = append(addresses, lif.IP.Address)
		}
	}
	return addresses, nil
}
