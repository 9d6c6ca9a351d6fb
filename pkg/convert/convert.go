// Copyright 2025 NetApp, Inc. All Rights Reserved.

package convert

import (
	"fmt"
	"strconv"
)

// ToPtr converts any value into a pointer to that value.
func ToPtr[T any](v T) *T {
	return &v
}

// PtrToString converts any value into its string representation, or nil
func PtrToString[T any](v *T) string {
	if v == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%v", *v)
}

// ToBool wraps strconv.ParseBool to suppress errors. Returns false if strconv.ParseBool would return an error.
func ToBool(b string) bool {
	v, _ := strconv.ParseBool(b)
	return v
}

func ToPrintableBoolPtr(bPtr *bool) string {
	if bPtr != nil {
		if *bPtr {
			return "true"
		}
		return "false"
	}
	return "none"
}

// TruncateString returns the specified string, shortened by dropping characters on the right side to the given limit.
func TruncateString(s string, maxLength int) string {
	if len(s) > maxLength {
		return s[:maxLength]
	}
	return s
}
