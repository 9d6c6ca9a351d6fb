// Copyright 2025 NetApp, Inc. All Rights Reserved.

package cmd

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/netapp/multisvm/pkg/capacity"
	drivers "github.com/netapp/multisvm/storage_drivers"
	"github.com/netapp/multisvm/storage_drivers/ontap"
	"github.com/netapp/multisvm/storage_drivers/ontap/api"
)

// newDriver builds the dynamic SVM driver for a backend group.
var newDriver = func(
	ctx context.Context, group *drivers.BackendGroup, client api.RestClientInterface,
) (*ontap.DynamicSVMDriver, error) {
	return ontap.NewDynamicSVMDriver(ctx, group, ontap.WithClusterClient(client))
}

func init() {
	getCmd.AddCommand(getStatsCmd)
}

var getStatsCmd = &cobra.Command{
	Use:     "stats",
	Short:   "Get the aggregated pool report of a backend",
	Aliases: []string{"pools"},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmdContext()
		group, _, client, err := clusterClient(ctx)
		if err != nil {
			return err
		}

		driver, err := newDriver(ctx, group, client)
		if err != nil {
			return err
		}
		if err = driver.Setup(ctx); err != nil {
			return err
		}
		defer driver.Teardown(ctx)

		stats, err := driver.GetVolumeStats(ctx, true)
		if err != nil {
			return err
		}

		WriteStats(cmd.OutOrStdout(), stats)
		return nil
	},
}

func WriteStats(out io.Writer, stats *ontap.VolumeStats) {
	switch OutputFormat {
	case FormatJSON:
		WriteJSON(out, stats)
	case FormatYAML:
		WriteYAML(out, stats)
	case FormatName:
		writePoolNames(out, stats.Pools)
	case FormatWide:
		writeWidePoolTable(out, stats.Pools)
	default:
		writePoolTable(out, stats.Pools)
	}
}

func gibString(gib float64) string {
	return humanize.IBytes(uint64(gib * float64(capacity.OneGiB)))
}

func writePoolTable(out io.Writer, pools []ontap.Pool) {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Pool", "Tenant", "Total", "Free", "Utilization"})

	for _, pool := range pools {
		table.Append([]string{
			pool.PoolName,
			pool.TenantID,
			gibString(pool.TotalCapacityGB),
			gibString(pool.FreeCapacityGB),
			fmt.Sprintf("%.2f%%", pool.Utilization),
		})
	}

	table.Render()
}

func writeWidePoolTable(out io.Writer, pools []ontap.Pool) {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{
		"Pool", "Tenant", "Total", "Free", "Provisioned", "Utilization", "Latency (us)", "IOPS", "Thin", "Multiattach",
	})

	for _, pool := range pools {
		table.Append([]string{
			pool.PoolName,
			pool.TenantID,
			gibString(pool.TotalCapacityGB),
			gibString(pool.FreeCapacityGB),
			gibString(pool.ProvisionedCapacityGB),
			fmt.Sprintf("%.2f%%", pool.Utilization),
			humanize.FormatFloat("#,###.##", pool.LatencyMicroseconds),
			humanize.FormatFloat("#,###.", pool.IOPS),
			strconv.FormatBool(pool.ThinProvisioningSupport),
			strconv.FormatBool(pool.Multiattach),
		})
	}

	table.Render()
}

func writePoolNames(out io.Writer, pools []ontap.Pool) {
	for _, pool := range pools {
		_, _ = fmt.Fprintln(out, pool.PoolName)
	}
}
