package audit

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

const (
	logMessagePathUnreadableConstant = "Error scanning path"
	logMessageFileUnreadableConstant = "Error reading file"
	logFieldPathConstant             = "path"
)

var errFileNotText = errors.New("file content is not valid UTF-8 text")

// Scanner walks directory trees and feeds eligible files to a Matcher.
type Scanner struct {
	fileSystem          afero.Fs
	logger              *zap.Logger
	matcher             *Matcher
	excludedDirectories map[string]struct{}
	extensions          map[string]struct{}
}

// NewScanner constructs a Scanner. Extensions are compared lower-cased, including the dot.
func NewScanner(fileSystem afero.Fs, logger *zap.Logger, matcher *Matcher, excludedDirectories []string, extensions []string) *Scanner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scanner{
		fileSystem:          fileSystem,
		logger:              logger,
		matcher:             matcher,
		excludedDirectories: toSet(excludedDirectories, false),
		extensions:          toSet(extensions, true),
	}
}

// ScanRoot walks root depth-first and records findings in report. Unreadable paths are
// logged and skipped; only context cancellation aborts the walk.
func (scanner *Scanner) ScanRoot(executionContext context.Context, root string, report *Report) error {
	walkError := afero.Walk(scanner.fileSystem, root, func(path string, info os.FileInfo, pathError error) error {
		if contextError := executionContext.Err(); contextError != nil {
			return contextError
		}

		if pathError != nil {
			scanner.logger.Error(logMessagePathUnreadableConstant, zap.String(logFieldPathConstant, path), zap.Error(pathError))
			return nil
		}

		if info.IsDir() {
			if path != root && scanner.isExcludedDirectory(info.Name()) {
				return filepath.SkipDir
			}
			return nil
		}

		if !info.Mode().IsRegular() || !scanner.isScannableFile(info.Name()) {
			return nil
		}

		scanner.scanFile(path, report)
		return nil
	})
	if errors.Is(walkError, filepath.SkipDir) {
		return nil
	}
	return walkError
}

func (scanner *Scanner) scanFile(path string, report *Report) {
	content, readError := afero.ReadFile(scanner.fileSystem, path)
	if readError == nil && !utf8.Valid(content) {
		readError = errFileNotText
	}
	if readError != nil {
		scanner.logger.Error(logMessageFileUnreadableConstant, zap.String(logFieldPathConstant, path), zap.Error(readError))
		report.FilesSkipped++
		return
	}

	report.FilesScanned++
	report.addFile(FileReport{
		FilePath: path,
		Issues:   scanner.matcher.ScanContent(path, string(content)),
	})
}

func (scanner *Scanner) isExcludedDirectory(directoryName string) bool {
	_, excluded := scanner.excludedDirectories[directoryName]
	return excluded
}

func (scanner *Scanner) isScannableFile(fileName string) bool {
	_, allowed := scanner.extensions[strings.ToLower(filepath.Ext(fileName))]
	return allowed
}

func toSet(values []string, lowerCase bool) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, value := range values {
		if lowerCase {
			value = strings.ToLower(value)
		}
		set[value] = struct{}{}
	}
	return set
}
