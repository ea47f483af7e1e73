// Package config manages user-level settings stored at ~/.tickerkit/config.yaml.
// Settings can be overridden with TICKERKIT_* environment variables and cover
// the project root, the report link prefix, prompting, logging and color.
package config
