package audit

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

const (
	auditStartMessageConstant         = "Starting brand audit..."
	scanningDirectoryTemplateConstant = "Scanning directory: %s\n"
	tokenCountTemplateConstant        = "Looking for %d brand tokens...\n\n"
	timingTemplateConstant            = "Audit completed in %dms\n"
	resultsTitleConstant              = "Brand Audit Results"
	cleanBannerConstant               = "No brand issues found! The transformation is complete."
	cleanDetailTemplateConstant       = "All legacy brand references have been updated to %s.\n"
	issueSummaryTemplateConstant      = "Found %d brand issues across %d files:\n\n"
	issueLineTemplateConstant         = "   Line %d: %q\n"
	issueContentTemplateConstant      = "   Content: %s\n"
	issueReplacementTemplateConstant  = "   Replace with: %s\n"
	remediationTitleConstant          = "To fix these issues:"
	remediationItemTemplateConstant   = "   %d. %s\n"
	fallbackBrandNameConstant         = "the current brand"
	fallbackServiceAreaConstant       = "the current service area"
	contentPreviewLimitConstant       = 80
	contentPreviewEllipsisConstant    = "..."
	separatorWidthConstant            = 60
	separatorCharacterConstant        = "="
	remediationBrandingTemplate       = "Update the identified files with correct %s branding"
	remediationContactConstant        = "Replace old contact information with new details"
	remediationServiceAreaTemplate    = "Update service areas to %s"
	remediationColorsConstant         = "Replace old color codes with new brand colors"
	remediationRerunConstant          = "Run this audit again to verify fixes"
)

// ReportPrinter renders audit progress and results for people, not machines.
type ReportPrinter struct {
	writer       io.Writer
	colorEnabled bool
	brandName    string
	serviceArea  string
}

// NewReportPrinter constructs a printer. Colors are used only when writer is a terminal.
func NewReportPrinter(writer io.Writer, brandName string, serviceArea string) *ReportPrinter {
	if len(strings.TrimSpace(brandName)) == 0 {
		brandName = fallbackBrandNameConstant
	}
	if len(strings.TrimSpace(serviceArea)) == 0 {
		serviceArea = fallbackServiceAreaConstant
	}
	return &ReportPrinter{
		writer:       writer,
		colorEnabled: isTerminalWriter(writer),
		brandName:    brandName,
		serviceArea:  serviceArea,
	}
}

// PrintHeader announces the roots being scanned and the token count.
func (printer *ReportPrinter) PrintHeader(roots []string, tokenCount int) {
	fmt.Fprintln(printer.writer, printer.paint(auditStartMessageConstant, color.Bold))
	for _, root := range roots {
		fmt.Fprintf(printer.writer, scanningDirectoryTemplateConstant, root)
	}
	fmt.Fprintf(printer.writer, tokenCountTemplateConstant, tokenCount)
}

// PrintTiming reports the elapsed wall-clock time in milliseconds.
func (printer *ReportPrinter) PrintTiming(elapsed time.Duration) {
	fmt.Fprintf(printer.writer, timingTemplateConstant, elapsed.Milliseconds())
}

// PrintReport renders the success banner or the per-file breakdown and remediation list.
func (printer *ReportPrinter) PrintReport(report Report) {
	separator := strings.Repeat(separatorCharacterConstant, separatorWidthConstant)

	fmt.Fprintln(printer.writer)
	fmt.Fprintln(printer.writer, printer.paint(resultsTitleConstant, color.Bold))
	fmt.Fprintln(printer.writer, separator)

	if report.Clean() {
		fmt.Fprintln(printer.writer, printer.paint(cleanBannerConstant, color.FgGreen, color.Bold))
		fmt.Fprintf(printer.writer, cleanDetailTemplateConstant, printer.brandName)
		return
	}

	fmt.Fprint(printer.writer, printer.paint(fmt.Sprintf(issueSummaryTemplateConstant, report.TotalIssues, len(report.Files)), color.FgRed, color.Bold))

	for _, fileReport := range report.Files {
		fmt.Fprintln(printer.writer, printer.paint(fileReport.FilePath, color.FgCyan))
		for _, issue := range fileReport.Issues {
			fmt.Fprintf(printer.writer, issueLineTemplateConstant, issue.LineNumber, issue.Token)
			fmt.Fprintf(printer.writer, issueContentTemplateConstant, previewContent(issue.Content))
			if len(issue.Replacement) > 0 {
				fmt.Fprintf(printer.writer, issueReplacementTemplateConstant, issue.Replacement)
			}
		}
		fmt.Fprintln(printer.writer)
	}

	fmt.Fprintln(printer.writer, separator)
	fmt.Fprintln(printer.writer, printer.paint(remediationTitleConstant, color.FgYellow))
	remediationSteps := []string{
		fmt.Sprintf(remediationBrandingTemplate, printer.brandName),
		remediationContactConstant,
		fmt.Sprintf(remediationServiceAreaTemplate, printer.serviceArea),
		remediationColorsConstant,
		remediationRerunConstant,
	}
	for stepIndex, step := range remediationSteps {
		fmt.Fprintf(printer.writer, remediationItemTemplateConstant, stepIndex+1, step)
	}
	fmt.Fprintln(printer.writer)
}

func (printer *ReportPrinter) paint(text string, attributes ...color.Attribute) string {
	if !printer.colorEnabled {
		return text
	}
	colorizer := color.New(attributes...)
	colorizer.EnableColor()
	return colorizer.Sprint(text)
}

// previewContent truncates content to the preview limit, counted in characters.
func previewContent(content string) string {
	characters := []rune(content)
	if len(characters) <= contentPreviewLimitConstant {
		return content
	}
	return string(characters[:contentPreviewLimitConstant]) + contentPreviewEllipsisConstant
}

func isTerminalWriter(writer io.Writer) bool {
	file, isFile := writer.(*os.File)
	if !isFile || color.NoColor {
		return false
	}
	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}
