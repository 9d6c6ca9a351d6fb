// Copyright 2025 NetApp, Inc. All Rights Reserved.

package cmd

import (
	"io"
	"runtime"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/netapp/multisvm/config"
)

type Version struct {
	Version   string `json:"version"`
	GoVersion string `json:"goVersion"`
	BuildTime string `json:"buildTime,omitempty"`
}

func init() {
	RootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of the multisvm CLI",
	RunE: func(cmd *cobra.Command, args []string) error {
		writeVersion(cmd.OutOrStdout(), Version{
			Version:   config.OrchestratorVersion,
			GoVersion: runtime.Version(),
			BuildTime: config.BuildTime,
		})
		return nil
	},
}

func writeVersion(out io.Writer, version Version) {
	switch OutputFormat {
	case FormatJSON:
		WriteJSON(out, version)
	case FormatYAML:
		WriteYAML(out, version)
	default:
		table := tablewriter.NewWriter(out)
		table.SetHeader([]string{"Version", "Go Version"})
		table.Append([]string{version.Version, version.GoVersion})
		table.Render()
	}
}
