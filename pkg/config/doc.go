// Package config loads and validates the settings a test session reads
// (spec §6 "average_list_length", plus the test-runner passthrough
// fields SPEC_FULL.md §6 adds): YAML parsing and validation follow the
// dungeon generator's config.go pattern.
package config
