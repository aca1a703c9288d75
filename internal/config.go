/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mikeb26/hoopelo/basketball"
)

// LoadConfig returns the home court settings, starting from the library
// defaults and overriding them from the environment. envFiles are loaded
// first (default ".env"); a missing file is not an error and variables
// already set in the environment win over the file.
func LoadConfig(envFiles ...string) (basketball.Config, error) {
	cfg := basketball.DefaultConfig()

	if len(envFiles) == 0 {
		envFiles = []string{DefaultEnvFile}
	}
	for _, f := range envFiles {
		err := godotenv.Load(f)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("loading %v: %w", f, err)
		}
	}

	var err error
	cfg.RegularSeasonHCA, err = envFloat(EnvRegularHCA, cfg.RegularSeasonHCA)
	if err != nil {
		return cfg, err
	}
	cfg.PlayoffHCA, err = envFloat(EnvPlayoffHCA, cfg.PlayoffHCA)
	if err != nil {
		return cfg, err
	}

	return cfg, nil
}

func envFloat(key string, def float64) (float64, error) {
	s := strings.TrimSpace(os.Getenv(key))
	if s == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def, fmt.Errorf("parsing %v=%q: %w", key, s, err)
	}

	return v, nil
}
