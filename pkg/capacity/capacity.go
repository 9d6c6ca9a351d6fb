// Copyright 2025 NetApp, Inc. All Rights Reserved.

package capacity

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/dustin/go-humanize"
)

const (
	OneGiB = uint64(1073741824)
)

// sizeHasUnits checks whether a size string includes a units suffix.
func sizeHasUnits(size string) bool {
	size = strings.TrimSpace(size)
	return size != "" && !unicode.IsDigit(rune(size[len(size)-1]))
}

// ParseSize returns the size in bytes of a size string such as "1GB", "512Mi" or "10". A value
// without units is taken as GiB.
func ParseSize(size string) (uint64, error) {
	size = strings.TrimSpace(size)
	if size == "" {
		return 0, fmt.Errorf("empty size value")
	}
	if !sizeHasUnits(size) {
		size += "GiB"
	}
	sizeBytes, err := humanize.ParseBytes(size)
	if err != nil {
		return 0, fmt.Errorf("invalid size value '%s': %v", size, err)
	}
	return sizeBytes, nil
}

// GiBToBytes converts a whole number of GiB to bytes.
func GiBToBytes(gib int) uint64 {
	if gib < 0 {
		return 0
	}
	return uint64(gib) * OneGiB
}

// BytesToGiB converts bytes to GiB, rounded to two decimals.
func BytesToGiB(bytes int64) float64 {
	if bytes <= 0 {
		return 0
	}
	return math.Round(float64(bytes)/float64(OneGiB)*100) / 100
}

// VolumeSizeWithinTolerance checks to see if requestedSize is within the delta of the currentSize.
// If within the delta true is returned. If not within the delta and requestedSize is less than the
// currentSize false is returned.
func VolumeSizeWithinTolerance(requestedSize, currentSize, delta int64) bool {
	sizeDiff := requestedSize - currentSize
	if sizeDiff < 0 {
		sizeDiff = -sizeDiff
	}

	if sizeDiff <= delta {
		return true
	}
	return false
}
