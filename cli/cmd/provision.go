// Copyright 2025 NetApp, Inc. All Rights Reserved.

package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/netapp/multisvm/provisioning"
)

func init() {
	RootCmd.AddCommand(provisionCmd)
	provisionCmd.AddCommand(provisionTenantCmd)
}

var provisionCmd = &cobra.Command{
	Use:   "provision",
	Short: "Provision cluster resources for a tenant",
}

var provisionTenantCmd = &cobra.Command{
	Use:   "tenant <project-id>",
	Short: "Create the SVM and data volume of a tenant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmdContext()
		_, driverConfig, client, err := clusterClient(ctx)
		if err != nil {
			return withExitCode(ExitCodeClientError, err)
		}

		manager := provisioning.NewManager(client, provisioning.NewConfig(driverConfig))
		result, err := manager.ProvisionTenant(ctx, args[0])
		if err != nil {
			return err
		}

		WriteProvisionResult(cmd.OutOrStdout(), result)
		return nil
	},
}

func WriteProvisionResult(out io.Writer, result *provisioning.ProvisionResult) {
	switch OutputFormat {
	case FormatJSON:
		WriteJSON(out, result)
	case FormatYAML:
		WriteYAML(out, result)
	case FormatName:
		_, _ = fmt.Fprintln(out, result.SVMName)
	default:
		table := tablewriter.NewWriter(out)
		table.SetHeader([]string{"SVM", "SVM Created", "Volume", "Volume Created"})
		table.Append([]string{
			result.SVMName,
			strconv.FormatBool(result.SVMCreated),
			result.VolumeName,
			strconv.FormatBool(result.VolumeCreated),
		})
		table.Render()
	}
}
