package migration_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/brandbot/internal/brand"
	"github.com/temirov/brandbot/internal/migration"
)

const (
	legacyDomainConstant       = "islanddrainsandexcavation.ca"
	legacyPrimaryColorConstant = "#0C4A6E"
	legacyServiceConstant      = "perimeter drains"
	currentDomainConstant      = "jadensexcavation.ca"
	currentPrimaryColor        = "#265D2D"
)

func fixtureRecord() brand.Record {
	return brand.Record{
		CompanyName:   "Jaden's Excavation & Landscaping",
		PrimaryDomain: currentDomainConstant,
		PhoneDisplay:  "(250) 555-0199",
		PhoneDial:     "+12505550199",
		Email:         "info@jadensexcavation.ca",
		ServiceArea:   []string{"Metro Vancouver", "Greater Vancouver Area"},
		Colors:        map[string]string{"primary": currentPrimaryColor},
	}
}

func fixtureManifest() migration.Manifest {
	return migration.Manifest{
		Version: 1,
		Replacements: []migration.Replacement{
			{Category: "domain", Legacy: legacyDomainConstant, Current: "primary_domain"},
			{Category: "color", Legacy: legacyPrimaryColorConstant, Current: "colors.primary"},
			{Category: "color", Legacy: "#0c4a6e", Current: "colors.primary"},
			{Category: "service", Legacy: legacyServiceConstant},
			{Category: "blank", Legacy: "   "},
		},
		FalsePositives: []migration.FalsePositiveRule{
			{Token: "drains", Phrases: []string{"island drains"}},
		},
	}
}

func TestManifestTokensPreserveOrderAndDeduplicate(testInstance *testing.T) {
	require.Equal(testInstance,
		[]string{legacyDomainConstant, legacyPrimaryColorConstant, legacyServiceConstant},
		fixtureManifest().Tokens(),
	)
}

func TestManifestReplacement(testInstance *testing.T) {
	testCases := []struct {
		name          string
		token         string
		expectedValue string
		expectedFound bool
	}{
		{name: "domain_resolves", token: legacyDomainConstant, expectedValue: currentDomainConstant, expectedFound: true},
		{name: "case_insensitive_token", token: "#0c4a6e", expectedValue: currentPrimaryColor, expectedFound: true},
		{name: "no_current_field", token: legacyServiceConstant, expectedFound: false},
		{name: "unknown_token", token: "unrelated", expectedFound: false},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			value, found := fixtureManifest().Replacement(testCase.token, fixtureRecord())
			require.Equal(testInstance, testCase.expectedFound, found)
			require.Equal(testInstance, testCase.expectedValue, value)
		})
	}
}

func TestManifestConflicts(testInstance *testing.T) {
	manifest := fixtureManifest()
	require.Empty(testInstance, manifest.Conflicts(fixtureRecord()))

	driftedRecord := fixtureRecord()
	driftedRecord.Email = "info@" + legacyDomainConstant
	require.Equal(testInstance, []string{legacyDomainConstant}, manifest.Conflicts(driftedRecord))
}

func TestManifestUnresolvedFields(testInstance *testing.T) {
	manifest := fixtureManifest()
	manifest.Replacements = append(manifest.Replacements, migration.Replacement{Legacy: "old", Current: "colors.missing"})
	require.Equal(testInstance, []string{"colors.missing"}, manifest.UnresolvedFields(fixtureRecord()))
}

func TestManifestValidate(testInstance *testing.T) {
	testCases := []struct {
		name        string
		mutate      func(manifest *migration.Manifest)
		expectError bool
	}{
		{name: "valid", mutate: func(manifest *migration.Manifest) {
			manifest.Replacements = manifest.Replacements[:4]
		}},
		{name: "zero_version", mutate: func(manifest *migration.Manifest) {
			manifest.Replacements = manifest.Replacements[:4]
			manifest.Version = 0
		}, expectError: true},
		{name: "no_replacements", mutate: func(manifest *migration.Manifest) {
			manifest.Replacements = nil
		}, expectError: true},
		{name: "blank_legacy_value", mutate: func(manifest *migration.Manifest) {
			manifest.Replacements = []migration.Replacement{{Legacy: ""}}
		}, expectError: true},
		{name: "rule_without_phrases", mutate: func(manifest *migration.Manifest) {
			manifest.Replacements = manifest.Replacements[:4]
			manifest.FalsePositives = []migration.FalsePositiveRule{{Token: "drains"}}
		}, expectError: true},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			manifest := fixtureManifest()
			testCase.mutate(&manifest)
			validationError := manifest.Validate()
			if testCase.expectError {
				require.Error(testInstance, validationError)
				return
			}
			require.NoError(testInstance, validationError)
		})
	}
}
