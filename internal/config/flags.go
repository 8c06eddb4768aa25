package config

import "flag"

// ParseFlags parses the global configuration flags. Subcommand arguments
// remain available through flag.Args after parsing.
//
// Flags:
//
//	-d database file path
//	-iterations key-stretching iteration count for new vaults
//	-role log role label
//	-c/-config json file path with configs
func ParseFlags() *VaultConfig {
	var databaseDSN string
	var iterations int
	var role string
	var jsonConfigPath string

	flag.StringVar(&databaseDSN, "d", "", "Vault database file path")
	flag.IntVar(&iterations, "iterations", 0, "KDF iteration count for new vaults")
	flag.StringVar(&role, "role", "", "Log role label")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &VaultConfig{
		App: App{
			Role: role,
		},
		Crypto: Crypto{
			KDFIterations: iterations,
		},
		Storage: Storage{
			DSN: databaseDSN,
		},
		JSONFilePath: jsonConfigPath,
	}
}
