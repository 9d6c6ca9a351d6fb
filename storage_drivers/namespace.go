// Copyright 2025 NetApp, Inc. All Rights Reserved.

package storagedrivers

import (
	"context"
	"strings"
	"sync"

	"github.com/brunoga/deep"

	"github.com/netapp/multisvm/config"
	. "github.com/netapp/multisvm/logging"
	"github.com/netapp/multisvm/utils/errors"
)

// DerivedGroupName returns the name of the group derived from parent for one SVM.
func DerivedGroupName(parent, svm string) string {
	return parent + config.DerivedGroupSeparator + svm
}

type derivedGroup struct {
	group             *BackendGroup
	parentFingerprint uint64
}

// ConfigNamespace derives per-SVM backend groups from a parent group. Derived groups are local to the
// namespace; nothing is registered globally.
type ConfigNamespace struct {
	parent  *BackendGroup
	mutex   sync.Mutex
	derived map[string]*derivedGroup
}

func NewConfigNamespace(parent *BackendGroup) *ConfigNamespace {
	return &ConfigNamespace{
		parent:  parent,
		derived: make(map[string]*derivedGroup),
	}
}

// Parent returns the parent group.
func (n *ConfigNamespace) Parent() *BackendGroup {
	return n.parent
}

// Derive returns the group P_<svm>. It holds every recognized option set on the parent, with vserver
// pinned to svm and backend_name set to the derived group's name. Repeated calls for the same SVM
// return the same group while the parent is unchanged.
func (n *ConfigNamespace) Derive(ctx context.Context, svm string) (*BackendGroup, error) {
	if svm == "" || strings.ContainsAny(svm, config.PoolSeparator+config.HostPoolSeparator) {
		return nil, errors.InvalidInputError("invalid SVM name %q", svm)
	}

	parentFingerprint, err := n.parent.Fingerprint()
	if err != nil {
		return nil, errors.WrapWithConfigError(err, "could not fingerprint backend group %s", n.parent.Name)
	}

	n.mutex.Lock()
	defer n.mutex.Unlock()

	if existing, ok := n.derived[svm]; ok && existing.parentFingerprint == parentFingerprint {
		return existing.group, nil
	}

	options, err := deep.Copy(n.parent.Options)
	if err != nil {
		return nil, errors.WrapWithConfigError(err, "could not copy backend group %s", n.parent.Name)
	}
	for name := range options {
		if !IsRecognizedOption(name) {
			delete(options, name)
		}
	}

	name := DerivedGroupName(n.parent.Name, svm)
	options[OptionVServer] = svm
	options[OptionBackendName] = name

	group := &BackendGroup{Name: name, Options: options}
	n.derived[svm] = &derivedGroup{group: group, parentFingerprint: parentFingerprint}

	Logc(ctx).WithFields(LogFields{
		"parent": n.parent.Name,
		"group":  name,
	}).Debug("Derived backend group for SVM.")

	return group, nil
}

// Forget drops the derived group for svm, if any.
func (n *ConfigNamespace) Forget(svm string) {
	n.mutex.Lock()
	defer n.mutex.Unlock()
	delete(n.derived, svm)
}

// Groups returns the names of all derived groups.
func (n *ConfigNamespace) Groups() []string {
	n.mutex.Lock()
	defer n.mutex.Unlock()

	names := make([]string, 0, len(n.derived))
	for _, d := range n.derived {
		names = append(names, d.group.Name)
	}
	return names
}
