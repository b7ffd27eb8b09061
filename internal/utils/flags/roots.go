package flags

import "github.com/spf13/cobra"

const (
	// DefaultRootFlagName exposes the shared scan root flag name.
	DefaultRootFlagName = "root"
	// DefaultRootFlagUsage describes the shared scan root flag purpose.
	DefaultRootFlagUsage = "Directory roots to scan (repeatable)"
)

// RootFlagDefinition captures configuration for scan root flags.
type RootFlagDefinition struct {
	Name  string
	Usage string
}

// BindRootFlags attaches the scan root flag to the provided command.
func BindRootFlags(command *cobra.Command, definition RootFlagDefinition) {
	if command == nil {
		return
	}
	flagName := definition.Name
	if len(flagName) == 0 {
		flagName = DefaultRootFlagName
	}
	flagUsage := definition.Usage
	if len(flagUsage) == 0 {
		flagUsage = DefaultRootFlagUsage
	}
	if command.Flags().Lookup(flagName) == nil {
		command.Flags().StringSlice(flagName, nil, flagUsage)
	}
}

// RootFlagValues returns the roots provided on the command line and whether the flag was set.
func RootFlagValues(command *cobra.Command, flagName string) ([]string, bool) {
	if command == nil {
		return nil, false
	}
	if len(flagName) == 0 {
		flagName = DefaultRootFlagName
	}
	rootFlag := command.Flags().Lookup(flagName)
	if rootFlag == nil || !rootFlag.Changed {
		return nil, false
	}
	roots, rootsError := command.Flags().GetStringSlice(flagName)
	if rootsError != nil {
		return nil, false
	}
	return roots, true
}
