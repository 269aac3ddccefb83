// Package config loads the application configuration.
//
// Settings come from, in increasing priority: the 'default' struct tags, an
// optional param-host.{yaml,toml,json} file, a .env file, and the process
// environment. Environment keys are the upper-cased dotted keys with dots
// replaced by underscores (server.api_key -> SERVER_API_KEY).
//
// Sections:
//   - Server: HTTP port, API key, body limit
//   - Storage: S3/MinIO credentials and bucket
//   - Log: level and format
//   - Database: snapshot database driver and DSN parts
//   - Reconcile: default plug name and exclusion key
//   - Document: where the parameter document is read from
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
package config
