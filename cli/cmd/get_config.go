// Copyright 2025 NetApp, Inc. All Rights Reserved.

package cmd

import (
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func init() {
	getCmd.AddCommand(getConfigCmd)
}

var getConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Get the effective options of a backend group",
	RunE: func(cmd *cobra.Command, args []string) error {
		group, _, err := loadBackend(cmdContext())
		if err != nil {
			return err
		}

		document := map[string]map[string]string{group.Name: group.EffectiveOptions()}
		if OutputFormat == FormatJSON {
			WriteJSON(cmd.OutOrStdout(), document)
			return nil
		}
		return writeConfigYAML(cmd.OutOrStdout(), document)
	},
}

// writeConfigYAML writes the options in the layout of the backend configuration file.
func writeConfigYAML(out io.Writer, document map[string]map[string]string) error {
	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(2)
	if err := encoder.Encode(map[string]interface{}{"backends": document}); err != nil {
		return err
	}
	return encoder.Close()
}
