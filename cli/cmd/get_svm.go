// Copyright 2025 NetApp, Inc. All Rights Reserved.

package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/netapp/multisvm/storage_drivers/ontap/api"
)

func init() {
	getCmd.AddCommand(getSVMCmd)
}

var getSVMCmd = &cobra.Command{
	Use:     "svm [<name>...]",
	Short:   "Get the managed SVMs of a backend",
	Aliases: []string{"svms"},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmdContext()
		_, driverConfig, client, err := clusterClient(ctx)
		if err != nil {
			return err
		}

		svms, err := client.SvmList(ctx, api.SvmFilter{NamePattern: driverConfig.SVMPrefix + "*"})
		if err != nil {
			return err
		}

		if len(args) > 0 {
			wanted := make(map[string]struct{}, len(args))
			for _, name := range args {
				wanted[name] = struct{}{}
			}
			filtered := svms[:0]
			for _, svm := range svms {
				if _, ok := wanted[svm.Name]; ok {
					filtered = append(filtered, svm)
				}
			}
			svms = filtered
		}

		WriteSVMs(cmd.OutOrStdout(), svms, driverConfig.SVMPrefix)
		return nil
	},
}

func WriteSVMs(out io.Writer, svms []api.Svm, prefix string) {
	switch OutputFormat {
	case FormatJSON:
		WriteJSON(out, svms)
	case FormatYAML:
		WriteYAML(out, svms)
	case FormatName:
		writeSVMNames(out, svms)
	case FormatWide:
		writeWideSVMTable(out, svms, prefix)
	default:
		writeSVMTable(out, svms)
	}
}

func writeSVMTable(out io.Writer, svms []api.Svm) {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Name", "State", "NVMe"})

	for _, svm := range svms {
		table.Append([]string{
			svm.Name,
			svm.State,
			strconv.FormatBool(svm.NVMeEnabled()),
		})
	}

	table.Render()
}

func writeWideSVMTable(out io.Writer, svms []api.Svm, prefix string) {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Name", "Tenant", "State", "NVMe", "UUID", "Aggregates"})

	for _, svm := range svms {
		aggregates := make([]string, 0, len(svm.Aggregates))
		for _, aggregate := range svm.Aggregates {
			aggregates = append(aggregates, aggregate.Name)
		}
		table.Append([]string{
			svm.Name,
			strings.TrimPrefix(svm.Name, prefix),
			svm.State,
			strconv.FormatBool(svm.NVMeEnabled()),
			svm.UUID,
			strings.Join(aggregates, ","),
		})
	}

	table.Render()
}

func writeSVMNames(out io.Writer, svms []api.Svm) {
	for _, svm := range svms {
		_, _ = fmt.Fprintln(out, svm.Name)
	}
}
