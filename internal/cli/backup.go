package cli

import (
	"github.com/MKhiriev/stoq-client/internal/backup"
	"github.com/MKhiriev/stoq-client/internal/config"
	"github.com/MKhiriev/stoq-client/internal/logger"
	"github.com/spf13/cobra"
)

func (c *commands) backupCommand() *cobra.Command {
	var full bool

	cmd := &cobra.Command{
		Use:   "backup <destination-dir>",
		Short: "Back up the database with the external backup tool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			proxy, err := c.backupProxy(cmd)
			if err != nil {
				return err
			}
			return commandResult(proxy.Backup(cmd.Context(), args[0], full))
		},
	}
	cmd.Flags().BoolVar(&full, "full", false, "Take a full backup instead of an incremental one")

	return cmd
}

func (c *commands) restoreCommand() *cobra.Command {
	var userHash, at string

	cmd := &cobra.Command{
		Use:   "restore <destination-dir>",
		Short: "Restore a backup with the external backup tool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			proxy, err := c.backupProxy(cmd)
			if err != nil {
				return err
			}
			return commandResult(proxy.Restore(cmd.Context(), args[0], userHash, at))
		},
	}
	cmd.Flags().StringVar(&userHash, "user-hash", "", "Backup owner hash")
	cmd.Flags().StringVar(&at, "time", "", "Point in time to restore; latest when empty")

	return cmd
}

func (c *commands) statusCommand() *cobra.Command {
	var userHash string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show backup status with the external backup tool",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			proxy, err := c.backupProxy(cmd)
			if err != nil {
				return err
			}
			return commandResult(proxy.Status(cmd.Context(), userHash))
		},
	}
	cmd.Flags().StringVar(&userHash, "user-hash", "", "Backup owner hash; all when empty")

	return cmd
}

func (c *commands) backupProxy(cmd *cobra.Command) (*backup.Proxy, error) {
	cfg, err := config.GetBackupConfig(c.flags)
	if err != nil {
		return nil, err
	}

	log := logger.NewClientLogger("backup", cfg.LogFile)
	return backup.NewProxy(*cfg, cmd.OutOrStdout(), cmd.ErrOrStderr(), log), nil
}

func commandResult(ok bool) error {
	if !ok {
		return ErrCommandFailed
	}
	return nil
}
