package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/stoq-client/internal/config"
	"github.com/MKhiriev/stoq-client/internal/crypto"
	"github.com/MKhiriev/stoq-client/internal/handler"
	"github.com/MKhiriev/stoq-client/internal/logger"
	"github.com/MKhiriev/stoq-client/internal/server"
	"github.com/MKhiriev/stoq-client/internal/service"
	"github.com/MKhiriev/stoq-client/internal/store"
	"github.com/MKhiriev/stoq-client/models"
	"github.com/spf13/pflag"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fs := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	flags := config.BindPublisherFlags(fs)
	hashPassword := fs.String("hash-password", "", "Print the --password-hash value for a password and exit")
	hashScheme := fs.String("hash-scheme", config.DefaultPasswordScheme, "Password encoding clients use: md5 or plain")
	_ = fs.Parse(os.Args[1:])

	if *hashPassword != "" {
		if err := printPasswordHash(*hashScheme, *hashPassword); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo.String())

	log := logger.NewLogger("stoq-publisher")
	cfg, err := config.GetPublisherConfig(flags)
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Str("address", cfg.Address).
		Str("bundle_dir", cfg.BundleDir).
		Str("instance", cfg.Instance).
		Msg("received configs")

	storages, err := store.NewStorages(*cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services := service.NewServices(storages, log)

	handlers, err := handler.NewHandlers(services, *cfg, buildInfo.BuildVersion(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, *cfg, buildInfo.BuildVersion(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printPasswordHash(scheme, password string) error {
	transmitted, err := crypto.EncodePassword(scheme, password)
	if err != nil {
		return err
	}

	hash, err := crypto.HashPassword(transmitted, 0)
	if err != nil {
		return err
	}

	fmt.Println(hash)
	return nil
}
