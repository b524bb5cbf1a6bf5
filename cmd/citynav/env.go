// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment keys.
const (
	envSeed     = "CITYNAV_SEED"
	envLogLevel = "CITYNAV_LOG_LEVEL"
	envAddr     = "CITYNAV_ADDR"
)

// loadDotEnv reads path into the environment without overriding variables
// that are already set. A missing file is not an error.
func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}

	return defaultValue
}

// envInt64 returns the parsed value of key and whether it was set.
func envInt64(key string) (int64, bool, error) {
	v := getEnv(key, "")
	if v == "" {
		return 0, false, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, true, err
	}

	return n, true, nil
}
