// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/MKhiriev/go-secret-vault/internal/config"
	"github.com/MKhiriev/go-secret-vault/internal/crypto"
	"github.com/MKhiriev/go-secret-vault/internal/logger"
	"github.com/MKhiriev/go-secret-vault/internal/passgen"
	"github.com/MKhiriev/go-secret-vault/internal/service"
	"github.com/MKhiriev/go-secret-vault/internal/store"
	"github.com/MKhiriev/go-secret-vault/internal/validators"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("vaultctl")
	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	db, err := store.NewConnectSQLite(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("open vault database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("migrate vault database")
	}

	repository := store.NewVaultRepository(db, log)

	params := crypto.Params{
		Iterations: cfg.Crypto.KDFIterations,
		KeyLength:  cfg.Crypto.KeyLength,
		SaltLength: cfg.Crypto.SaltLength,
	}
	random := crypto.NewOSRandomSource()
	keyChain := crypto.NewKeyChain(params, random)
	recordCipher := service.NewRecordCipherService(crypto.NewCipher(random))

	vault := service.NewVaultService(params, keyChain, recordCipher, repository, log)

	cli := newApp(vault, passgen.NewGenerator(random), validators.NewCredentialValidator(), log)
	if err = cli.run(ctx, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
