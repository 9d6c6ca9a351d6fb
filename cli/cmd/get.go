// Copyright 2025 NetApp, Inc. All Rights Reserved.

package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ghodss/yaml"
	"github.com/spf13/cobra"
)

func init() {
	RootCmd.AddCommand(getCmd)
}

var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Get one or more resources from a multi-SVM backend",
}

func WriteJSON(out io.Writer, value interface{}) {
	jsonBytes, _ := json.MarshalIndent(value, "", "  ")
	_, _ = fmt.Fprintln(out, string(jsonBytes))
}

func WriteYAML(out io.Writer, value interface{}) {
	jsonBytes, _ := json.Marshal(value)
	yamlBytes, _ := yaml.JSONToYAML(jsonBytes)
	_, _ = fmt.Fprintln(out, string(yamlBytes))
}
