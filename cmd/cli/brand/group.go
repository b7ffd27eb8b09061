package brand

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	brandrecord "github.com/temirov/brandbot/internal/brand"
	"github.com/temirov/brandbot/internal/migration"
)

const (
	groupUseConstant      = "brand"
	groupShortDescription = "Inspect the configured brand record"
	groupLongDescription  = "brand groups subcommands that render and check the brand record consumed by every other command."
)

// LoggerProvider supplies a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// RecordProvider supplies the brand record loaded from configuration.
type RecordProvider func() brandrecord.Record

// ManifestProvider supplies the migration manifest loaded from configuration.
type ManifestProvider func() migration.Manifest

// CommandGroupBuilder assembles the brand command group.
type CommandGroupBuilder struct {
	LoggerProvider   LoggerProvider
	RecordProvider   RecordProvider
	ManifestProvider ManifestProvider
}

// Build constructs the brand command hierarchy.
func (builder *CommandGroupBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   groupUseConstant,
		Short: groupShortDescription,
		Long:  groupLongDescription,
	}

	showBuilder := ShowCommandBuilder{RecordProvider: builder.RecordProvider}
	showCommand, showError := showBuilder.Build()
	if showError == nil {
		command.AddCommand(showCommand)
	}

	validateBuilder := ValidateCommandBuilder{
		LoggerProvider:   builder.LoggerProvider,
		RecordProvider:   builder.RecordProvider,
		ManifestProvider: builder.ManifestProvider,
	}
	validateCommand, validateError := validateBuilder.Build()
	if validateError == nil {
		command.AddCommand(validateCommand)
	}

	return command, nil
}

func resolveRecord(provider RecordProvider) brandrecord.Record {
	if provider == nil {
		return brandrecord.Record{}
	}
	return provider()
}

func resolveManifest(provider ManifestProvider) migration.Manifest {
	if provider == nil {
		return migration.Manifest{}
	}
	return provider()
}

func resolveLogger(provider LoggerProvider) *zap.Logger {
	if provider == nil {
		return zap.NewNop()
	}
	logger := provider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
