// Copyright 2025 NetApp, Inc. All Rights Reserved.

package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/netapp/multisvm/provisioning"
	"github.com/netapp/multisvm/utils/errors"
)

var (
	projectID       string
	networkDataPath string
)

func init() {
	RootCmd.AddCommand(configureNetCmd)
	configureNetCmd.Flags().StringVar(&projectID, "project-id", "", "Tenant project ID")
	configureNetCmd.Flags().StringVar(&networkDataPath, "network-file", "", "YAML or JSON file with the interfaces to create")
}

var configureNetCmd = &cobra.Command{
	Use:   "configure-net",
	Short: "Create the VLAN ports, LIFs and routes of a tenant SVM",
	RunE: func(cmd *cobra.Command, args []string) error {
		if projectID == "" || networkDataPath == "" {
			return errors.InvalidInputError("--project-id and --network-file are required")
		}

		ctx := cmdContext()
		_, driverConfig, client, err := clusterClient(ctx)
		if err != nil {
			return withExitCode(ExitCodeClientError, err)
		}

		ifaces, err := provisioning.LoadNetworkData(ctx, AppFs, networkDataPath, driverConfig.NICSlotPrefix)
		if err != nil {
			return err
		}

		manager := provisioning.NewManager(client, provisioning.NewConfig(driverConfig))
		result, err := manager.ConfigureNetwork(ctx, projectID, ifaces)
		if err != nil {
			return err
		}

		WriteNetworkResult(cmd.OutOrStdout(), result)
		return nil
	},
}

type networkResultDocument struct {
	SVMName string   `json:"svm_name"`
	LIFs    []string `json:"lifs"`
	Routes  []string `json:"routes"`
}

func WriteNetworkResult(out io.Writer, result *provisioning.NetworkResult) {
	document := networkResultDocument{SVMName: result.SVMName, LIFs: result.LIFs, Routes: []string{}}
	for _, route := range result.Routes {
		document.Routes = append(document.Routes, route.String())
	}

	switch OutputFormat {
	case FormatJSON:
		WriteJSON(out, document)
	case FormatYAML:
		WriteYAML(out, document)
	case FormatName:
		_, _ = fmt.Fprintln(out, result.SVMName)
	default:
		table := tablewriter.NewWriter(out)
		table.SetHeader([]string{"SVM", "LIFs", "Routes Created"})
		table.Append([]string{
			document.SVMName,
			strings.Join(document.LIFs, ","),
			strings.Join(document.Routes, "\n"),
		})
		table.Render()
	}
}
