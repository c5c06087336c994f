// Package config provides configuration management for the lead consolidator.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file. Defaults come from the `default` struct tags of
// each section.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Log: logging level and format, change log path, console mirroring (stdout or stderr)
//   - Files: input leads file, output file, JSON indentation
//   - Consolidate: identifying keys, timestamp field, pass limit, missing-key handling
//
// Environment variables map to nested keys by replacing "." with "_", so
// CONSOLIDATE_KEYS=_id,email,phone sets consolidate.keys.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Files.Input)
package config
