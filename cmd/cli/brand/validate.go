package brand

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	validateUseConstant             = "validate"
	validateShortDescription        = "Check the brand record and migration manifest for gaps"
	validateLongDescription         = "validate reports missing required brand fields, manifest problems, and legacy tokens that still appear in current brand values. It never fails the invocation."
	validateCompleteMessage         = "Brand configuration complete."
	validateIncompleteTemplate      = "Brand configuration incomplete; missing: %s\n"
	validateManifestInvalidTemplate = "Migration manifest invalid: %v\n"
	validateConflictsTemplate       = "Legacy tokens found in current brand values: %s\n"
	validateUnresolvedTemplate      = "Manifest fields not found in brand record: %s\n"
	validateManifestCleanMessage    = "Migration manifest consistent with brand record."
	validateListSeparator           = ", "
	logMessageManifestDrift         = "migration manifest drift detected"
	logFieldConflictsConstant       = "conflicting_tokens"
	logFieldUnresolvedConstant      = "unresolved_fields"
)

// ValidateCommandBuilder assembles the brand validate command.
type ValidateCommandBuilder struct {
	LoggerProvider   LoggerProvider
	RecordProvider   RecordProvider
	ManifestProvider ManifestProvider
}

// Build constructs the brand validate command.
func (builder *ValidateCommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   validateUseConstant,
		Short: validateShortDescription,
		Long:  validateLongDescription,
		Args:  cobra.NoArgs,
		RunE:  builder.run,
	}
	return command, nil
}

func (builder *ValidateCommandBuilder) run(command *cobra.Command, arguments []string) error {
	logger := resolveLogger(builder.LoggerProvider)
	record := resolveRecord(builder.RecordProvider)
	manifest := resolveManifest(builder.ManifestProvider)
	writer := command.OutOrStdout()

	if record.Validate(logger) {
		fmt.Fprintln(writer, validateCompleteMessage)
	} else {
		fmt.Fprintf(writer, validateIncompleteTemplate, strings.Join(record.MissingFields(), validateListSeparator))
	}

	if manifestError := manifest.Validate(); manifestError != nil {
		fmt.Fprintf(writer, validateManifestInvalidTemplate, manifestError)
		return nil
	}

	conflicts := manifest.Conflicts(record)
	unresolvedFields := manifest.UnresolvedFields(record)
	if len(conflicts) == 0 && len(unresolvedFields) == 0 {
		fmt.Fprintln(writer, validateManifestCleanMessage)
		return nil
	}

	logger.Warn(
		logMessageManifestDrift,
		zap.Strings(logFieldConflictsConstant, conflicts),
		zap.Strings(logFieldUnresolvedConstant, unresolvedFields),
	)
	if len(conflicts) > 0 {
		fmt.Fprintf(writer, validateConflictsTemplate, strings.Join(conflicts, validateListSeparator))
	}
	if len(unresolvedFields) > 0 {
		fmt.Fprintf(writer, validateUnresolvedTemplate, strings.Join(unresolvedFields, validateListSeparator))
	}
	return nil
}
