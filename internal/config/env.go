package config

import (
	"os"

	"github.com/joho/godotenv"
)

// ReadEnv loads ./.env into the process environment, matching the key
// file the launcher scripts shipped alongside the scanner. Existing
// variables win over file values. Returns os.ErrNotExist when the file
// is missing.
func ReadEnv() error {
	if _, err := os.Stat("./.env"); err != nil {
		return err
	}

	envMap, err := godotenv.Read("./.env")
	if err != nil {
		return err
	}
	for k, v := range envMap {
		if _, exists := os.LookupEnv(k); !exists {
			_ = os.Setenv(k, v)
		}
	}
	return nil
}
