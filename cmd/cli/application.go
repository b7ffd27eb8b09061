package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	brandcmd "github.com/temirov/brandbot/cmd/cli/brand"
	"github.com/temirov/brandbot/internal/audit"
	"github.com/temirov/brandbot/internal/brand"
	"github.com/temirov/brandbot/internal/migration"
	"github.com/temirov/brandbot/internal/utils"
)

const (
	applicationNameConstant                 = "brandbot"
	applicationShortDescriptionConstant     = "Brand record and legacy brand audit toolkit"
	applicationLongDescriptionConstant      = "brandbot holds the current brand record and audits site trees for references to the brand it replaced. Running it without a subcommand audits the configured roots."
	configFileFlagNameConstant              = "config"
	configFileFlagUsageConstant             = "Optional path to a configuration file (YAML or JSON)."
	logLevelFlagNameConstant                = "log-level"
	logLevelFlagUsageConstant               = "Override the configured log level."
	logFormatFlagNameConstant               = "log-format"
	logFormatFlagUsageConstant              = "Override the configured log format (structured or console)."
	environmentPrefixConstant               = "BRANDBOT"
	configurationNameConstant               = "brandbot"
	configurationTypeConstant               = "yaml"
	configurationDirectoryNameConstant      = "brandbot"
	environmentFileNameConstant             = ".env"
	configurationInitializedMessageConstant = "configuration initialized"
	configurationLogLevelFieldConstant      = "log_level"
	configurationLogFormatFieldConstant     = "log_format"
	configurationFileFieldConstant          = "config_file"
	configurationLoadErrorTemplateConstant  = "unable to load configuration: %w"
	loggerCreationErrorTemplateConstant     = "unable to create logger: %w"
	loggerSyncErrorTemplateConstant         = "unable to flush logger: %w"
	rootCommandInfoMessageConstant          = "brandbot CLI executed"
	logFieldCommandNameConstant             = "command_name"
	logFieldArgumentCountConstant           = "argument_count"
	defaultConfigurationSearchPathConstant  = "."
	auditConfigurationKeyConstant           = "audit"
)

// ApplicationConfiguration describes the persisted configuration for the CLI entrypoint.
type ApplicationConfiguration struct {
	Common    ApplicationCommonConfiguration `mapstructure:"common"`
	Brand     brand.Record                   `mapstructure:"brand"`
	Migration migration.Manifest             `mapstructure:"migration"`
	Audit     audit.CommandConfiguration     `mapstructure:"audit"`
}

// ApplicationCommonConfiguration stores logging configuration shared across commands.
type ApplicationCommonConfiguration struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

// Application wires the Cobra root command, configuration loader, and structured logger.
type Application struct {
	rootCommand           *cobra.Command
	auditBuilder          *audit.CommandBuilder
	configurationLoader   *utils.ConfigurationLoader
	loggerFactory         *utils.LoggerFactory
	logger                *zap.Logger
	configuration         ApplicationConfiguration
	configurationMetadata utils.LoadedConfiguration
	configurationFilePath string
	logLevelFlagValue     string
	logFormatFlagValue    string
}

// NewApplication assembles a fully wired CLI application instance.
func NewApplication() *Application {
	configurationLoader := utils.NewConfigurationLoader(
		configurationNameConstant,
		configurationTypeConstant,
		environmentPrefixConstant,
		configurationSearchPaths(),
	)
	configurationLoader.SetEmbeddedConfiguration(EmbeddedDefaultConfiguration())
	configurationLoader.SetEnvironmentFiles([]string{environmentFileNameConstant})

	application := &Application{
		configurationLoader: configurationLoader,
		loggerFactory:       utils.NewLoggerFactory(),
		logger:              zap.NewNop(),
	}

	application.auditBuilder = &audit.CommandBuilder{
		LoggerProvider: func() *zap.Logger {
			return application.logger
		},
		ConfigurationProvider: func() audit.CommandConfiguration {
			return application.configuration.Audit
		},
		ManifestProvider: func() migration.Manifest {
			return application.configuration.Migration
		},
		RecordProvider: func() brand.Record {
			return application.configuration.Brand
		},
		FileSystem: afero.NewOsFs(),
	}

	cobraCommand := &cobra.Command{
		Use:           applicationNameConstant,
		Short:         applicationShortDescriptionConstant,
		Long:          applicationLongDescriptionConstant,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(command *cobra.Command, arguments []string) error {
			return application.initializeConfiguration(command)
		},
		RunE: func(command *cobra.Command, arguments []string) error {
			return application.runRootCommand(command, arguments)
		},
	}

	cobraCommand.SetContext(context.Background())
	cobraCommand.PersistentFlags().StringVar(&application.configurationFilePath, configFileFlagNameConstant, "", configFileFlagUsageConstant)
	cobraCommand.PersistentFlags().StringVar(&application.logLevelFlagValue, logLevelFlagNameConstant, "", logLevelFlagUsageConstant)
	cobraCommand.PersistentFlags().StringVar(&application.logFormatFlagValue, logFormatFlagNameConstant, "", logFormatFlagUsageConstant)

	auditCommand, auditBuildError := application.auditBuilder.Build()
	if auditBuildError == nil {
		cobraCommand.AddCommand(auditCommand)
	}

	brandBuilder := brandcmd.CommandGroupBuilder{
		LoggerProvider: func() *zap.Logger {
			return application.logger
		},
		RecordProvider: func() brand.Record {
			return application.configuration.Brand
		},
		ManifestProvider: func() migration.Manifest {
			return application.configuration.Migration
		},
	}
	brandCommand, brandBuildError := brandBuilder.Build()
	if brandBuildError == nil {
		cobraCommand.AddCommand(brandCommand)
	}

	application.rootCommand = cobraCommand

	return application
}

// Execute runs the configured Cobra command hierarchy and ensures logger flushing.
func (application *Application) Execute() error {
	executionError := application.rootCommand.Execute()
	if syncError := application.flushLogger(); syncError != nil && executionError == nil {
		return fmt.Errorf(loggerSyncErrorTemplateConstant, syncError)
	}
	return executionError
}

// Execute builds a fresh application instance and executes the root command hierarchy.
func Execute() error {
	return NewApplication().Execute()
}

func configurationSearchPaths() []string {
	searchPaths := []string{defaultConfigurationSearchPathConstant}
	if userConfigurationDirectory, directoryError := os.UserConfigDir(); directoryError == nil {
		searchPaths = append(searchPaths, filepath.Join(userConfigurationDirectory, configurationDirectoryNameConstant))
	}
	return searchPaths
}

func (application *Application) initializeConfiguration(command *cobra.Command) error {
	defaultValues := audit.DefaultConfigurationValues(auditConfigurationKeyConstant)

	loadedConfiguration, loadError := application.configurationLoader.LoadConfiguration(application.configurationFilePath, defaultValues, &application.configuration)
	if loadError != nil {
		return fmt.Errorf(configurationLoadErrorTemplateConstant, loadError)
	}

	application.configurationMetadata = loadedConfiguration

	if application.persistentFlagChanged(command, logLevelFlagNameConstant) {
		application.configuration.Common.LogLevel = application.logLevelFlagValue
	}

	if application.persistentFlagChanged(command, logFormatFlagNameConstant) {
		application.configuration.Common.LogFormat = application.logFormatFlagValue
	}

	logger, loggerCreationError := application.loggerFactory.CreateLogger(
		utils.LogLevel(application.configuration.Common.LogLevel),
		utils.LogFormat(application.configuration.Common.LogFormat),
	)
	if loggerCreationError != nil {
		return fmt.Errorf(loggerCreationErrorTemplateConstant, loggerCreationError)
	}

	application.logger = logger

	application.logger.Debug(
		configurationInitializedMessageConstant,
		zap.String(configurationLogLevelFieldConstant, application.configuration.Common.LogLevel),
		zap.String(configurationLogFormatFieldConstant, application.configuration.Common.LogFormat),
		zap.String(configurationFileFieldConstant, application.configurationMetadata.ConfigFileUsed),
	)

	return nil
}

// runRootCommand treats a bare invocation as an audit of the configured roots.
func (application *Application) runRootCommand(command *cobra.Command, arguments []string) error {
	application.logger.Debug(
		rootCommandInfoMessageConstant,
		zap.String(logFieldCommandNameConstant, command.Name()),
		zap.Int(logFieldArgumentCountConstant, len(arguments)),
	)

	return application.auditBuilder.Run(command, arguments)
}

func (application *Application) flushLogger() error {
	if application.logger == nil {
		return nil
	}
	syncError := application.logger.Sync()
	if syncError == nil || isIgnorableSyncError(syncError) {
		return nil
	}
	return syncError
}

// isIgnorableSyncError reports errors returned when syncing terminals and pipes.
func isIgnorableSyncError(syncError error) bool {
	for _, ignorableError := range []error{syscall.ENOTSUP, syscall.EINVAL, syscall.ENOTTY} {
		if errors.Is(syncError, ignorableError) {
			return true
		}
	}
	return false
}

func (application *Application) persistentFlagChanged(command *cobra.Command, flagName string) bool {
	if command == nil {
		return false
	}
	for _, flagSet := range []*pflag.FlagSet{command.PersistentFlags(), command.InheritedFlags(), command.Root().PersistentFlags()} {
		if flagSet != nil && flagSet.Changed(flagName) {
			return true
		}
	}
	return false
}
