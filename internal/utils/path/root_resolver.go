package pathutils

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const (
	tildeSymbolConstant             = "~"
	tildeForwardSlashPrefixConstant = "~/"
	defaultRootConstant             = "."
)

var tildeWithPathSeparatorPrefix = tildeSymbolConstant + string(os.PathSeparator)

// HomeDirectoryProvider resolves the current user's home directory path.
type HomeDirectoryProvider func() (string, error)

// RootResolver turns user supplied scan roots into clean, unique paths.
type RootResolver struct {
	homeDirectoryProvider HomeDirectoryProvider
	homeDirectory         string
	homeDirectoryError    error
	initializationGuard   sync.Once
}

// NewRootResolver constructs a RootResolver using the operating system home lookup.
func NewRootResolver() *RootResolver {
	return NewRootResolverWithProvider(os.UserHomeDir)
}

// NewRootResolverWithProvider constructs a RootResolver with a custom home provider.
func NewRootResolverWithProvider(provider HomeDirectoryProvider) *RootResolver {
	if provider == nil {
		provider = os.UserHomeDir
	}
	return &RootResolver{homeDirectoryProvider: provider}
}

// Resolve trims, expands, cleans and deduplicates roots, preserving their order.
// An empty result falls back to the working directory.
func (resolver *RootResolver) Resolve(rawRoots []string) []string {
	seen := make(map[string]struct{}, len(rawRoots))
	resolved := make([]string, 0, len(rawRoots))

	for _, rawRoot := range rawRoots {
		trimmedRoot := strings.TrimSpace(rawRoot)
		if len(trimmedRoot) == 0 {
			continue
		}

		cleanedRoot := filepath.Clean(resolver.expandHome(trimmedRoot))
		if _, exists := seen[cleanedRoot]; exists {
			continue
		}
		seen[cleanedRoot] = struct{}{}
		resolved = append(resolved, cleanedRoot)
	}

	if len(resolved) == 0 {
		return []string{defaultRootConstant}
	}
	return resolved
}

func (resolver *RootResolver) expandHome(candidatePath string) string {
	if !strings.HasPrefix(candidatePath, tildeSymbolConstant) {
		return candidatePath
	}

	homeDirectory := resolver.resolveHomeDirectory()
	if len(homeDirectory) == 0 {
		return candidatePath
	}

	switch {
	case candidatePath == tildeSymbolConstant:
		return homeDirectory
	case strings.HasPrefix(candidatePath, tildeForwardSlashPrefixConstant):
		return filepath.Join(homeDirectory, strings.TrimPrefix(candidatePath, tildeForwardSlashPrefixConstant))
	case strings.HasPrefix(candidatePath, tildeWithPathSeparatorPrefix):
		return filepath.Join(homeDirectory, strings.TrimPrefix(candidatePath, tildeWithPathSeparatorPrefix))
	default:
		return candidatePath
	}
}

func (resolver *RootResolver) resolveHomeDirectory() string {
	resolver.initializationGuard.Do(func() {
		resolver.homeDirectory, resolver.homeDirectoryError = resolver.homeDirectoryProvider()
	})
	if resolver.homeDirectoryError != nil {
		return ""
	}
	return resolver.homeDirectory
}
