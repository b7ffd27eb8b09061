package audit

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/temirov/brandbot/internal/brand"
	"github.com/temirov/brandbot/internal/migration"
)

const (
	logMessageAuditStartedConstant   = "Brand audit started"
	logMessageAuditCompletedConstant = "Brand audit completed"
	logFieldRunIdentifierConstant    = "run_id"
	logFieldRootsConstant            = "roots"
	logFieldTokenCountConstant       = "token_count"
	logFieldManifestVersionConstant  = "manifest_version"
	logFieldIssueCountConstant       = "issues"
	logFieldFilesWithIssuesConstant  = "files_with_issues"
	logFieldFilesScannedConstant     = "files_scanned"
	logFieldFilesSkippedConstant     = "files_skipped"
	logFieldElapsedConstant          = "elapsed"
)

// Service coordinates traversal, matching, and reporting for one audit run at a time.
type Service struct {
	fileSystem   afero.Fs
	manifest     migration.Manifest
	record       brand.Record
	logger       *zap.Logger
	outputWriter io.Writer
	clock        Clock
}

// NewService constructs a Service using the provided dependencies.
func NewService(fileSystem afero.Fs, manifest migration.Manifest, record brand.Record, logger *zap.Logger, outputWriter io.Writer, clock Clock) *Service {
	if fileSystem == nil {
		fileSystem = afero.NewOsFs()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if outputWriter == nil {
		outputWriter = io.Discard
	}
	if clock == nil {
		clock = SystemClock{}
	}
	return &Service{
		fileSystem:   fileSystem,
		manifest:     manifest,
		record:       record,
		logger:       logger,
		outputWriter: outputWriter,
		clock:        clock,
	}
}

// Run scans every root in order, prints the report, and returns it. The error result is
// reserved for cancellation; findings are conveyed by Report.Clean.
func (service *Service) Run(executionContext context.Context, options CommandOptions) (Report, error) {
	if executionContext == nil {
		executionContext = context.Background()
	}

	roots := options.Roots
	if len(roots) == 0 {
		roots = []string{defaultRootPathConstant}
	}

	runLogger := service.logger.With(zap.String(logFieldRunIdentifierConstant, uuid.NewString()))

	tokens := service.manifest.Tokens()
	matcher := NewMatcher(tokens, NewFalsePositiveRules(service.manifest.FalsePositives))
	scanner := NewScanner(service.fileSystem, runLogger, matcher, options.ExcludedDirectories, options.Extensions)
	printer := NewReportPrinter(service.outputWriter, service.record.CompanyName, service.record.ServiceAreaString())

	runLogger.Info(
		logMessageAuditStartedConstant,
		zap.Strings(logFieldRootsConstant, roots),
		zap.Int(logFieldTokenCountConstant, matcher.TokenCount()),
		zap.Int(logFieldManifestVersionConstant, service.manifest.Version),
	)
	printer.PrintHeader(roots, matcher.TokenCount())

	startTime := service.clock.Now()
	report := Report{}
	for _, root := range roots {
		if scanError := scanner.ScanRoot(executionContext, root, &report); scanError != nil {
			return report, scanError
		}
	}
	report.Elapsed = service.clock.Now().Sub(startTime)

	service.attachReplacements(&report)

	printer.PrintTiming(report.Elapsed)
	printer.PrintReport(report)

	runLogger.Info(
		logMessageAuditCompletedConstant,
		zap.Int(logFieldIssueCountConstant, report.TotalIssues),
		zap.Int(logFieldFilesWithIssuesConstant, len(report.Files)),
		zap.Int(logFieldFilesScannedConstant, report.FilesScanned),
		zap.Int(logFieldFilesSkippedConstant, report.FilesSkipped),
		zap.Duration(logFieldElapsedConstant, report.Elapsed),
	)

	return report, nil
}

func (service *Service) attachReplacements(report *Report) {
	for fileIndex := range report.Files {
		issues := report.Files[fileIndex].Issues
		for issueIndex := range issues {
			replacement, found := service.manifest.Replacement(issues[issueIndex].Token, service.record)
			if found {
				issues[issueIndex].Replacement = replacement
			}
		}
	}
}
