package cli

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/stoq-client/internal/adapter"
	"github.com/MKhiriev/stoq-client/internal/client"
	"github.com/MKhiriev/stoq-client/internal/config"
	"github.com/MKhiriev/stoq-client/internal/discovery"
	"github.com/MKhiriev/stoq-client/internal/launcher"
	"github.com/MKhiriev/stoq-client/internal/logger"
	"github.com/MKhiriev/stoq-client/internal/service"
	"github.com/MKhiriev/stoq-client/internal/store"
	"github.com/MKhiriev/stoq-client/internal/tui"
	"github.com/MKhiriev/stoq-client/models"
	"github.com/spf13/cobra"
)

type commands struct {
	flags     *config.StructuredConfig
	buildInfo models.AppBuildInfo
}

// NewRootCommand builds the stoq-client command tree. Running the root
// command without a subcommand is the same as "pick".
func NewRootCommand(buildInfo models.AppBuildInfo) *cobra.Command {
	root := &cobra.Command{
		Use:           "stoq-client",
		Short:         "Discover, synchronize and launch Stoq",
		Long:          "Finds Stoq servers on the local network, synchronizes the application bundles from the chosen one and launches the application.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	c := &commands{
		flags:     config.BindClientFlags(root.PersistentFlags()),
		buildInfo: buildInfo,
	}
	root.RunE = c.runPick

	root.AddCommand(
		c.pickCommand(),
		c.discoverCommand(),
		c.syncCommand(),
		c.backupCommand(),
		c.restoreCommand(),
		c.statusCommand(),
		c.versionCommand(),
	)
	return root
}

func (c *commands) pickCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pick",
		Short: "Choose a server interactively, synchronize and launch",
		Args:  cobra.NoArgs,
		RunE:  c.runPick,
	}
}

func (c *commands) runPick(cmd *cobra.Command, _ []string) error {
	cfg, log, err := c.clientConfig("client")
	if err != nil {
		return err
	}

	services, err := newClientServices(cfg, log)
	if err != nil {
		return err
	}

	registry := discovery.NewRegistry(log)
	browser := discovery.NewBrowser(cfg.Discovery, registry, log)
	ui := tui.New(registry, services.SyncService, log)

	app, err := client.NewApp(browser, ui, launcher.NewLauncher(cfg.Launch, log), log)
	if err != nil {
		return err
	}

	err = app.Run(cmd.Context())
	if errors.Is(err, tui.ErrUserQuit) {
		return nil
	}
	return err
}

func (c *commands) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprint(cmd.OutOrStdout(), c.buildInfo.String())
		},
	}
}

func (c *commands) clientConfig(role string) (*config.ClientConfig, *logger.Logger, error) {
	cfg, err := config.GetClientConfig(c.flags)
	if err != nil {
		return nil, nil, fmt.Errorf("error getting configs: %w", err)
	}

	return cfg, logger.NewClientLogger(role, cfg.LogFile), nil
}

func newClientServices(cfg *config.ClientConfig, log *logger.Logger) (*service.ClientServices, error) {
	storages, err := store.NewClientStorages(cfg.Sync, log)
	if err != nil {
		return nil, fmt.Errorf("create client storages: %w", err)
	}

	return service.NewClientServices(storages, adapter.NewFactory(cfg.Sync, log), cfg.Sync, log), nil
}
