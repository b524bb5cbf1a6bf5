// SPDX-License-Identifier: MIT

// Command citynav generates a city transport network and answers
// "most convenient path" queries on it, interactively, from flags or over
// HTTP.
//
// Usage:
//
//	citynav                         # show the city, prompt for start/end
//	citynav graph --seed 42
//	citynav paths --from 1 --to 15 --scores
//	citynav serve --addr :8080
//
// Environment (also read from ./.env):
//
//	CITYNAV_SEED        default --seed
//	CITYNAV_LOG_LEVEL   default --log-level
//	CITYNAV_ADDR        default serve --addr
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
