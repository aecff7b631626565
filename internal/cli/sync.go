package cli

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/stoq-client/internal/config"
	"github.com/MKhiriev/stoq-client/internal/launcher"
	"github.com/MKhiriev/stoq-client/models"
	"github.com/spf13/cobra"
)

func (c *commands) syncCommand() *cobra.Command {
	var (
		server   config.NetAddress
		username string
		password      string
		passwordStdin bool
		launch        bool
	)

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Synchronize bundles from a known server",
		Long: "Synchronize bundles from a known server.\n\n" +
			"The password is taken from --password-stdin, then --password, then the\n" +
			passwordEnv + " environment variable, and finally prompted for on the terminal.\n" +
			"--password is a fallback: its value is visible to other users in the process list.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if server.Port == 0 {
				return ErrMissingServer
			}
			if username == "" {
				return ErrMissingCredentials
			}
			secret, err := syncPassword(cmd, password, passwordStdin)
			if err != nil {
				return err
			}
			if secret == "" {
				return ErrMissingCredentials
			}

			cfg, log, err := c.clientConfig("sync")
			if err != nil {
				return err
			}

			services, err := newClientServices(cfg, log)
			if err != nil {
				return err
			}

			key := models.ServerKey{Address: server.Host, Port: server.Port}
			result, err := services.SyncService.Synchronize(cmd.Context(), key,
				models.Credentials{Username: username, Password: secret})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Synchronized %d bundles from %s\n", len(result.SearchPaths), key)
			if len(result.Downloaded) > 0 {
				fmt.Fprintf(out, "Downloaded: %s\n", strings.Join(result.Downloaded, ", "))
			}

			if !launch {
				return nil
			}
			return launcher.NewLauncher(cfg.Launch, log).Launch(cmd.Context(), result)
		},
	}

	cmd.Flags().Var(&server, "server", "Server address in form host:port")
	cmd.Flags().StringVarP(&username, "username", "u", "", "Server user name")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Server password (visible in the process list; prefer "+passwordEnv+" or --password-stdin)")
	cmd.Flags().BoolVar(&passwordStdin, "password-stdin", false, "Read the server password from the first line of stdin")
	cmd.Flags().BoolVar(&launch, "launch", false, "Launch the application after a successful sync")

	return cmd
}
