// Copyright 2025 NetApp, Inc. All Rights Reserved.

package storagedrivers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netapp/multisvm/utils/errors"
)

func TestConfigNamespace_Derive(t *testing.T) {
	ctx := context.Background()
	parent := newTestGroup(map[string]string{
		OptionNamespaceOSType: "linux",
		"not_in_schema":       "x",
	})
	ns := NewConfigNamespace(parent)

	group, err := ns.Derive(ctx, "os-abc")
	require.NoError(t, err)

	assert.Equal(t, "netapp_nvme_os-abc", group.Name)
	assert.Equal(t, "os-abc", group.Options[OptionVServer])
	assert.Equal(t, "netapp_nvme_os-abc", group.Options[OptionBackendName])
	assert.Equal(t, "10.0.0.1", group.Options[OptionConnectionHost])
	assert.Equal(t, "secret", group.Options[OptionPassword])
	assert.Equal(t, "linux", group.Options[OptionNamespaceOSType])
	_, ok := group.Options["not_in_schema"]
	assert.False(t, ok, "unrecognized options must not be carried over")

	// The parent is untouched.
	_, ok = parent.Options[OptionVServer]
	assert.False(t, ok)
	assert.Equal(t, parent, ns.Parent())

	// A derived group yields a config pinned to the SVM.
	c, err := NewDriverConfig(ctx, group)
	require.NoError(t, err)
	assert.Equal(t, "os-abc", c.SVM)
	assert.Equal(t, "netapp_nvme_os-abc", c.BackendName)
}

func TestConfigNamespace_DeriveIsIdempotent(t *testing.T) {
	ctx := context.Background()
	ns := NewConfigNamespace(newTestGroup(nil))

	first, err := ns.Derive(ctx, "os-abc")
	require.NoError(t, err)
	second, err := ns.Derive(ctx, "os-abc")
	require.NoError(t, err)
	assert.Same(t, first, second)

	other, err := ns.Derive(ctx, "os-def")
	require.NoError(t, err)
	assert.NotEqual(t, first.Name, other.Name)
	assert.ElementsMatch(t, []string{"netapp_nvme_os-abc", "netapp_nvme_os-def"}, ns.Groups())

	ns.Forget("os-abc")
	assert.ElementsMatch(t, []string{"netapp_nvme_os-def"}, ns.Groups())

	third, err := ns.Derive(ctx, "os-abc")
	require.NoError(t, err)
	assert.NotSame(t, first, third)
	assert.Equal(t, first.Options, third.Options)
}

func TestConfigNamespace_ParentChangeRederives(t *testing.T) {
	ctx := context.Background()
	parent := newTestGroup(nil)
	ns := NewConfigNamespace(parent)

	first, err := ns.Derive(ctx, "os-abc")
	require.NoError(t, err)

	parent.Options[OptionHostType] = "vmware"
	second, err := ns.Derive(ctx, "os-abc")
	require.NoError(t, err)
	assert.NotSame(t, first, second)
	assert.Equal(t, "vmware", second.Options[OptionHostType])
}

func TestConfigNamespace_InvalidSVM(t *testing.T) {
	ns := NewConfigNamespace(newTestGroup(nil))

	for _, svm := range []string{"", "os-a+b", "os-a#b"} {
		_, err := ns.Derive(context.Background(), svm)
		assert.True(t, errors.IsInvalidInputError(err), "svm %q", svm)
	}
}
