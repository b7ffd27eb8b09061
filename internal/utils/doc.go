// Package utils exposes reusable helpers consumed by multiple commands.
//
// It houses ConfigurationLoader, LoggerFactory, and the configuration-aware struct
// validator that integrate Viper, dotenv files, validator tags, and zap logging for the CLI.
package utils
