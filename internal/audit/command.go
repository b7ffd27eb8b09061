package audit

import (
	"errors"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/brandbot/internal/brand"
	"github.com/temirov/brandbot/internal/migration"
	"github.com/temirov/brandbot/internal/utils/flags"
	pathutils "github.com/temirov/brandbot/internal/utils/path"
)

const (
	commandUseConstant              = "audit"
	commandShortDescriptionConstant = "Scan files for leftover legacy brand references"
	commandLongDescriptionConstant  = "audit walks the configured roots, reports every line of a text file that mentions a legacy brand token, and fails when any are found."
	logMessageManifestInvalid       = "Migration manifest rejected"
)

// ErrBrandIssuesFound signals that an audit completed and found legacy brand references.
var ErrBrandIssuesFound = errors.New("legacy brand references found")

// LoggerProvider supplies a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the audit cobra command with configurable dependencies.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider func() CommandConfiguration
	ManifestProvider      func() migration.Manifest
	RecordProvider        func() brand.Record
	FileSystem            afero.Fs
	Clock                 Clock
	RootResolver          *pathutils.RootResolver
}

// Build constructs the cobra command for brand audits.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		Args:  cobra.NoArgs,
		RunE:  builder.Run,
	}

	flags.BindRootFlags(command, flags.RootFlagDefinition{})

	return command, nil
}

// Run executes an audit on behalf of command. Commands without the root flag scan the
// configured roots.
func (builder *CommandBuilder) Run(command *cobra.Command, arguments []string) error {
	logger := builder.resolveLogger()
	configuration := builder.resolveConfiguration()

	roots := configuration.Roots
	if flagRoots, provided := flags.RootFlagValues(command, flags.DefaultRootFlagName); provided {
		roots = flagRoots
	}
	roots = builder.resolveRootResolver().Resolve(roots)

	manifest := builder.resolveManifest()
	if validationError := manifest.Validate(); validationError != nil {
		logger.Error(logMessageManifestInvalid, zap.Error(validationError))
		return validationError
	}

	service := NewService(builder.FileSystem, manifest, builder.resolveRecord(), logger, command.OutOrStdout(), builder.Clock)
	report, runError := service.Run(command.Context(), CommandOptions{
		Roots:               roots,
		ExcludedDirectories: configuration.ExcludedDirectories,
		Extensions:          configuration.Extensions,
	})
	if runError != nil {
		return runError
	}
	if !report.Clean() {
		return ErrBrandIssuesFound
	}
	return nil
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}
	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return DefaultCommandConfiguration()
	}
	return builder.ConfigurationProvider().sanitize()
}

func (builder *CommandBuilder) resolveManifest() migration.Manifest {
	if builder.ManifestProvider == nil {
		return migration.Manifest{}
	}
	return builder.ManifestProvider()
}

func (builder *CommandBuilder) resolveRecord() brand.Record {
	if builder.RecordProvider == nil {
		return brand.Record{}
	}
	return builder.RecordProvider()
}

func (builder *CommandBuilder) resolveRootResolver() *pathutils.RootResolver {
	if builder.RootResolver == nil {
		return pathutils.NewRootResolver()
	}
	return builder.RootResolver
}
