package audit

import "strings"

const (
	configurationRootsKeyConstant               = "roots"
	configurationExcludedDirectoriesKeyConstant = "excluded_directories"
	configurationExtensionsKeyConstant          = "extensions"
	configurationKeySeparatorConstant           = "."
	defaultRootPathConstant                     = "."
	extensionPrefixConstant                     = "."
)

var (
	defaultExcludedDirectories = []string{".git", "node_modules", ".idea", ".vscode", "dist", "build"}
	defaultScanExtensions      = []string{".html", ".css", ".js", ".json", ".md", ".txt", ".xml"}
)

// CommandConfiguration captures persistent settings for the audit command.
type CommandConfiguration struct {
	Roots               []string `mapstructure:"roots"`
	ExcludedDirectories []string `mapstructure:"excluded_directories"`
	Extensions          []string `mapstructure:"extensions"`
}

// DefaultCommandConfiguration returns baseline configuration values for the audit command.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		Roots:               []string{defaultRootPathConstant},
		ExcludedDirectories: append([]string{}, defaultExcludedDirectories...),
		Extensions:          append([]string{}, defaultScanExtensions...),
	}
}

// DefaultConfigurationValues produces Viper defaults for the audit command under rootKey.
func DefaultConfigurationValues(rootKey string) map[string]any {
	defaults := DefaultCommandConfiguration()
	prefix := rootKey + configurationKeySeparatorConstant
	return map[string]any{
		prefix + configurationRootsKeyConstant:               defaults.Roots,
		prefix + configurationExcludedDirectoriesKeyConstant: defaults.ExcludedDirectories,
		prefix + configurationExtensionsKeyConstant:          defaults.Extensions,
	}
}

// sanitize trims whitespace, normalizes extensions, and restores defaults for empty lists.
func (configuration CommandConfiguration) sanitize() CommandConfiguration {
	defaults := DefaultCommandConfiguration()
	sanitized := CommandConfiguration{
		Roots:               trimValues(configuration.Roots),
		ExcludedDirectories: trimValues(configuration.ExcludedDirectories),
		Extensions:          normalizeExtensions(configuration.Extensions),
	}

	if len(sanitized.Roots) == 0 {
		sanitized.Roots = defaults.Roots
	}
	if len(sanitized.ExcludedDirectories) == 0 {
		sanitized.ExcludedDirectories = defaults.ExcludedDirectories
	}
	if len(sanitized.Extensions) == 0 {
		sanitized.Extensions = defaults.Extensions
	}
	return sanitized
}

func trimValues(raw []string) []string {
	trimmed := make([]string, 0, len(raw))
	for _, value := range raw {
		trimmedValue := strings.TrimSpace(value)
		if len(trimmedValue) == 0 {
			continue
		}
		trimmed = append(trimmed, trimmedValue)
	}
	return trimmed
}

func normalizeExtensions(raw []string) []string {
	extensions := trimValues(raw)
	for index, extension := range extensions {
		extension = strings.ToLower(extension)
		if !strings.HasPrefix(extension, extensionPrefixConstant) {
			extension = extensionPrefixConstant + extension
		}
		extensions[index] = extension
	}
	return extensions
}
