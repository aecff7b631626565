package cli

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/MKhiriev/stoq-client/internal/discovery"
	"github.com/MKhiriev/stoq-client/models"
	"github.com/spf13/cobra"
)

func (c *commands) discoverCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "discover",
		Short: "Browse for servers and print the ones found",
		Long:  "Browses for announced servers for --browse-timeout and prints every server still announced at the end.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := c.clientConfig("discover")
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Discovery.BrowseTimeout)
			defer cancel()

			registry := discovery.NewRegistry(log)
			if err = discovery.NewBrowser(cfg.Discovery, registry, log).Run(ctx); err != nil {
				return err
			}

			return printServers(cmd, registry.List())
		},
	}
}

func printServers(cmd *cobra.Command, servers []models.ServerAnnouncement) error {
	if len(servers) == 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), "No server found")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "INSTANCE\tADDRESS\tHOST\tPROPERTIES")
	for _, server := range servers {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			orDash(server.Instance), server.Key.HostPort(), orDash(server.HostName), formatProperties(server.Properties))
	}
	return w.Flush()
}

func formatProperties(props map[string]string) string {
	if len(props) == 0 {
		return "-"
	}

	pairs := make([]string, 0, len(props))
	for _, k := range slices.Sorted(maps.Keys(props)) {
		pairs = append(pairs, k+"="+props[k])
	}
	return strings.Join(pairs, " ")
}

func orDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}
