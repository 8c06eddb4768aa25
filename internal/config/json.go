package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// StructuredJSONConfig mirrors [VaultConfig] with json tags for the
// optional configuration file layer.
type StructuredJSONConfig struct {
	App struct {
		Role string `json:"role"`
	} `json:"app,omitempty"`

	Crypto struct {
		KDFIterations int `json:"kdf_iterations"`
		KeyLength     int `json:"key_length"`
		SaltLength    int `json:"salt_length"`
	} `json:"crypto,omitempty"`

	Storage struct {
		DSN string `json:"dsn"`
	} `json:"storage,omitempty"`
}

func parseJSON(jsonFilePath string) (*VaultConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return &VaultConfig{
		App: App{
			Role: jsonCfg.App.Role,
		},
		Crypto: Crypto{
			KDFIterations: jsonCfg.Crypto.KDFIterations,
			KeyLength:     jsonCfg.Crypto.KeyLength,
			SaltLength:    jsonCfg.Crypto.SaltLength,
		},
		Storage: Storage{
			DSN: jsonCfg.Storage.DSN,
		},
	}, nil
}
