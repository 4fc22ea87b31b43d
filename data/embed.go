// Package data bundles the species, move and item tables the engine loads at startup.
package data

import "embed"

//go:embed *.csv *.json *.yaml schemas/*.json
var Files embed.FS
