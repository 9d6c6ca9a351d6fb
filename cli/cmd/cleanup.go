// Copyright 2025 NetApp, Inc. All Rights Reserved.

package cmd

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/netapp/multisvm/provisioning"
)

func init() {
	RootCmd.AddCommand(cleanupCmd)
	cleanupCmd.AddCommand(cleanupTenantCmd)
}

var cleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Remove cluster resources of a tenant",
}

var cleanupTenantCmd = &cobra.Command{
	Use:   "tenant <project-id>",
	Short: "Delete the data volume and then the SVM of a tenant",
	Long: `Delete the data volume and then the SVM of a tenant. The SVM is kept when the volume
cannot be deleted.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmdContext()
		_, driverConfig, client, err := clusterClient(ctx)
		if err != nil {
			return withExitCode(ExitCodeClientError, err)
		}

		manager := provisioning.NewManager(client, provisioning.NewConfig(driverConfig))
		result, err := manager.CleanupTenant(ctx, args[0])
		if result != nil {
			WriteTeardownResult(cmd.OutOrStdout(), result)
		}
		return err
	},
}

func WriteTeardownResult(out io.Writer, result *provisioning.TeardownResult) {
	switch OutputFormat {
	case FormatJSON:
		WriteJSON(out, result)
	case FormatYAML:
		WriteYAML(out, result)
	default:
		table := tablewriter.NewWriter(out)
		table.SetHeader([]string{"Volume Removed", "SVM Removed"})
		table.Append([]string{strconv.FormatBool(result.Volume), strconv.FormatBool(result.SVM)})
		table.Render()
	}
}
