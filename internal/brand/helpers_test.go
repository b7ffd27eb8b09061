package brand_test

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/brandbot/internal/brand"
)

const (
	testPhoneDisplayConstant = "(250) 555-0199"
	testPhoneDialConstant    = "+12505550199"
	testEmailConstant        = "info@jadensexcavation.ca"
	testDomainConstant       = "jadensexcavation.ca"
	testLegalNameConstant    = "Jaden's Excavation & Landscaping Ltd."
)

func completeRecord() brand.Record {
	return brand.Record{
		CompanyName:   "Jaden's Excavation & Landscaping",
		ShortName:     "Jaden's Excavation",
		LegalName:     testLegalNameConstant,
		PrimaryDomain: testDomainConstant,
		PhoneDisplay:  testPhoneDisplayConstant,
		PhoneDial:     testPhoneDialConstant,
		Email:         testEmailConstant,
		ServiceArea:   []string{"Metro Vancouver", "Greater Vancouver Area"},
		Colors:        map[string]string{"primary": "#265D2D", "secondary": "#F9A825"},
		LogoPaths:     map[string]string{"full": "/images/jadenlogo.png"},
		Services: brand.Services{
			Categories: map[string]string{"residential": "Residential Services"},
		},
		SEO: brand.SEOMetadata{Locale: "en_CA"},
	}
}

func TestFormatPhone(testInstance *testing.T) {
	record := completeRecord()

	testCases := []struct {
		name          string
		context       brand.PhoneContext
		expectedValue string
	}{
		{name: "tel", context: brand.PhoneContextTel, expectedValue: testPhoneDialConstant},
		{name: "display", context: brand.PhoneContextDisplay, expectedValue: testPhoneDisplayConstant},
		{name: "plain", context: brand.PhoneContextPlain, expectedValue: "2505550199"},
		{name: "unrecognized_falls_back_to_display", context: brand.PhoneContext("fax"), expectedValue: testPhoneDisplayConstant},
		{name: "empty_falls_back_to_display", context: brand.PhoneContext(""), expectedValue: testPhoneDisplayConstant},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			require.Equal(testInstance, testCase.expectedValue, record.FormatPhone(testCase.context))
		})
	}
}

func TestFormatPhonePlainKeepsOnlyDigits(testInstance *testing.T) {
	record := completeRecord()
	record.PhoneDisplay = "+1 (604) 555-0100 ext. 7"
	record.PhoneDial = "not related"

	plain := record.FormatPhone(brand.PhoneContextPlain)
	require.Equal(testInstance, "160455501007", plain)

	digitCount := 0
	for _, character := range record.PhoneDisplay {
		if character >= '0' && character <= '9' {
			digitCount++
		}
	}
	require.Len(testInstance, plain, digitCount)
	require.Equal(testInstance, "not related", record.FormatPhone(brand.PhoneContextTel))
}

func TestServiceAreaString(testInstance *testing.T) {
	record := completeRecord()
	require.Equal(testInstance, "Metro Vancouver & Greater Vancouver Area", record.ServiceAreaString())

	record.ServiceArea = nil
	require.Empty(testInstance, record.ServiceAreaString())
}

func TestFullLegalNameAndDomain(testInstance *testing.T) {
	record := completeRecord()
	require.Equal(testInstance, testLegalNameConstant, record.FullLegalName())
	require.Equal(testInstance, "https://jadensexcavation.ca", record.FullDomain(""))
	require.Equal(testInstance, "http://jadensexcavation.ca", record.FullDomain("http"))
	require.Equal(testInstance, "not a scheme://jadensexcavation.ca", record.FullDomain("not a scheme"))
}

func TestMailtoLink(testInstance *testing.T) {
	record := completeRecord()

	require.Equal(testInstance, "mailto:"+testEmailConstant, record.MailtoLink(""))

	link := record.MailtoLink("Quote Request")
	require.Equal(testInstance, "mailto:info@jadensexcavation.ca?subject=Quote%20Request", link)

	_, rawQuery, hasQuery := strings.Cut(link, "?")
	require.True(testInstance, hasQuery)
	decodedQuery, decodeError := url.PathUnescape(rawQuery)
	require.NoError(testInstance, decodeError)
	require.Equal(testInstance, "subject=Quote Request", decodedQuery)

	reservedLink := record.MailtoLink("Fees & Rates?")
	_, reservedQuery, _ := strings.Cut(reservedLink, "?")
	require.NotContains(testInstance, reservedQuery, "&")
	decodedReserved, reservedError := url.QueryUnescape(reservedQuery)
	require.NoError(testInstance, reservedError)
	require.Equal(testInstance, "subject=Fees & Rates?", decodedReserved)
}

func TestLookup(testInstance *testing.T) {
	record := completeRecord()

	testCases := []struct {
		fieldPath     string
		expectedValue string
		expectedFound bool
	}{
		{fieldPath: "primary_domain", expectedValue: testDomainConstant, expectedFound: true},
		{fieldPath: "phone_plain", expectedValue: "2505550199", expectedFound: true},
		{fieldPath: "service_area", expectedValue: "Metro Vancouver & Greater Vancouver Area", expectedFound: true},
		{fieldPath: "Colors.Primary", expectedValue: "#265D2D", expectedFound: true},
		{fieldPath: "logo_paths.full", expectedValue: "/images/jadenlogo.png", expectedFound: true},
		{fieldPath: "services.categories.residential", expectedValue: "Residential Services", expectedFound: true},
		{fieldPath: "colors.tertiary", expectedFound: false},
		{fieldPath: "unknown.field", expectedFound: false},
		{fieldPath: "colors.", expectedFound: false},
		{fieldPath: "nonsense", expectedFound: false},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.fieldPath, func(testInstance *testing.T) {
			value, found := record.Lookup(testCase.fieldPath)
			require.Equal(testInstance, testCase.expectedFound, found)
			require.Equal(testInstance, testCase.expectedValue, value)
		})
	}
}

func TestValuesSkipsBlanks(testInstance *testing.T) {
	values := completeRecord().Values()
	require.Contains(testInstance, values, testEmailConstant)
	require.Contains(testInstance, values, "#F9A825")
	require.Contains(testInstance, values, "Greater Vancouver Area")
	for _, value := range values {
		require.NotEmpty(testInstance, strings.TrimSpace(value))
	}
}
