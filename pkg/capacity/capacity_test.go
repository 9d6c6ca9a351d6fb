// Copyright 2025 NetApp, Inc. All Rights Reserved.

package capacity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		size      string
		expected  uint64
		expectErr bool
	}{
		{size: "1GB", expected: 1000000000},
		{size: "1GiB", expected: OneGiB},
		{size: "1Gi", expected: OneGiB},
		{size: "512MiB", expected: 512 * 1024 * 1024},
		{size: "10", expected: 10 * OneGiB},
		{size: " 2 ", expected: 2 * OneGiB},
		{size: "", expectErr: true},
		{size: "abc", expectErr: true},
		{size: "1.5.5GB", expectErr: true},
	}

	for _, test := range tests {
		t.Run(test.size, func(t *testing.T) {
			actual, err := ParseSize(test.size)
			if test.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, test.expected, actual)
		})
	}
}

func TestGiBConversions(t *testing.T) {
	assert.Equal(t, uint64(0), GiBToBytes(-1))
	assert.Equal(t, 3*OneGiB, GiBToBytes(3))

	assert.Equal(t, 0.0, BytesToGiB(-5))
	assert.Equal(t, 10.0, BytesToGiB(int64(10*OneGiB)))
	assert.Equal(t, 1.5, BytesToGiB(int64(OneGiB+OneGiB/2)))
	assert.Equal(t, 0.33, BytesToGiB(int64(OneGiB/3)))
}

func TestVolumeSizeWithinTolerance(t *testing.T) {
	delta := int64(50000000)

	assert.True(t, VolumeSizeWithinTolerance(int64(OneGiB), int64(OneGiB), delta))
	assert.True(t, VolumeSizeWithinTolerance(int64(OneGiB), int64(OneGiB)-delta, delta))
	assert.True(t, VolumeSizeWithinTolerance(int64(OneGiB)-delta, int64(OneGiB), delta))
	assert.False(t, VolumeSizeWithinTolerance(int64(OneGiB), int64(OneGiB)-delta-1, delta))
	assert.False(t, VolumeSizeWithinTolerance(2*int64(OneGiB), int64(OneGiB), delta))
}
