// Copyright 2025 NetApp, Inc. All Rights Reserved.

package events

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/afero"
)

const (
	OutputSVMEnabled     = "svm_enabled"
	OutputSVMCreated     = "svm_created"
	OutputSVMName        = "svm_name"
	OutputProjectTags    = "project_tags"
	OutputTeardownResult = "teardown_result"

	outputFilePrefix = "output."
	outputFileMode   = 0o644
)

// OutputWriter writes handler results as output.<name> files for the workflow engine to pick up.
type OutputWriter struct {
	fs  afero.Fs
	dir string
}

func NewOutputWriter(fs afero.Fs, dir string) *OutputWriter {
	return &OutputWriter{fs: fs, dir: dir}
}

// Path returns the file an output is written to.
func (w *OutputWriter) Path(name string) string {
	return filepath.Join(w.dir, outputFilePrefix+name)
}

func (w *OutputWriter) WriteString(name, value string) error {
	if err := w.fs.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("could not create output directory %s; %w", w.dir, err)
	}
	if err := afero.WriteFile(w.fs, w.Path(name), []byte(value), outputFileMode); err != nil {
		return fmt.Errorf("could not write output %s; %w", name, err)
	}
	return nil
}

func (w *OutputWriter) WriteBool(name string, value bool) error {
	return w.WriteString(name, strconv.FormatBool(value))
}

// WriteJSON writes value as a JSON document.
func (w *OutputWriter) WriteJSON(name string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("could not encode output %s; %w", name, err)
	}
	return w.WriteString(name, string(data))
}
