package audit_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/temirov/brandbot/internal/brand"
	"github.com/temirov/brandbot/internal/migration"
)

const (
	legacyCompanyNameConstant  = "island drains & excavation"
	legacyConcatenatedConstant = "islanddrainsandexcavation"
	legacyDomainConstant       = "islanddrainsandexcavation.ca"
	legacyPhoneConstant        = "818-5611"
	legacyColorConstant        = "#0C4A6E"
	legacyServiceAreaConstant  = "victoria & southern vancouver island"
	genericDrainsConstant      = "drains"
	currentCompanyNameConstant = "Jaden's Excavation & Landscaping"
	currentDomainConstant      = "jadensexcavation.ca"
	currentColorConstant       = "#265D2D"
	fixtureRootConstant        = "/site"
	fixtureFilePermissions     = 0o644
	fixtureDirectoryPermission = 0o755
)

var legacyPhrases = []string{"island drains", legacyConcatenatedConstant, legacyServiceAreaConstant}

func fixtureManifest() migration.Manifest {
	return migration.Manifest{
		Version: 1,
		Replacements: []migration.Replacement{
			{Category: "company", Legacy: legacyCompanyNameConstant, Current: "company_name"},
			{Category: "domain", Legacy: legacyDomainConstant, Current: "primary_domain"},
			{Category: "phone", Legacy: legacyPhoneConstant, Current: "phone_display"},
			{Category: "color", Legacy: legacyColorConstant, Current: "colors.primary"},
			{Category: "service_area", Legacy: legacyServiceAreaConstant, Current: "service_area"},
			{Category: "generic", Legacy: genericDrainsConstant},
		},
		FalsePositives: []migration.FalsePositiveRule{
			{Token: "drain", Phrases: legacyPhrases},
			{Token: genericDrainsConstant, Phrases: legacyPhrases},
			{Token: "island", Phrases: legacyPhrases},
		},
	}
}

func fixtureRecord() brand.Record {
	return brand.Record{
		CompanyName:   currentCompanyNameConstant,
		PrimaryDomain: currentDomainConstant,
		PhoneDisplay:  "(250) 555-0199",
		PhoneDial:     "+12505550199",
		Email:         "info@jadensexcavation.ca",
		ServiceArea:   []string{"Metro Vancouver", "Greater Vancouver Area"},
		Colors:        map[string]string{"primary": currentColorConstant},
	}
}

func writeFixtureFiles(testInstance *testing.T, fileSystem afero.Fs, files map[string]string) {
	testInstance.Helper()
	for relativePath, content := range files {
		absolutePath := filepath.Join(fixtureRootConstant, filepath.FromSlash(relativePath))
		require.NoError(testInstance, fileSystem.MkdirAll(filepath.Dir(absolutePath), fixtureDirectoryPermission))
		require.NoError(testInstance, afero.WriteFile(fileSystem, absolutePath, []byte(content), fixtureFilePermissions))
	}
}

func fixturePath(relativePath string) string {
	return filepath.Join(fixtureRootConstant, filepath.FromSlash(relativePath))
}

// steppingClock advances by a fixed step on every reading.
type steppingClock struct {
	current time.Time
	step    time.Duration
}

func (clock *steppingClock) Now() time.Time {
	reading := clock.current
	clock.current = clock.current.Add(clock.step)
	return reading
}

// unreadableFileSystem fails to open the configured paths with a permission error.
type unreadableFileSystem struct {
	afero.Fs
	unreadablePaths map[string]struct{}
}

func (fileSystem unreadableFileSystem) Open(name string) (afero.File, error) {
	if _, unreadable := fileSystem.unreadablePaths[filepath.Clean(name)]; unreadable {
		return nil, &os.PathError{Op: "open", Path: name, Err: os.ErrPermission}
	}
	return fileSystem.Fs.Open(name)
}

func (fileSystem unreadableFileSystem) OpenFile(name string, flag int, permissions os.FileMode) (afero.File, error) {
	if _, unreadable := fileSystem.unreadablePaths[filepath.Clean(name)]; unreadable {
		return nil, &os.PathError{Op: "open", Path: name, Err: os.ErrPermission}
	}
	return fileSystem.Fs.OpenFile(name, flag, permissions)
}
