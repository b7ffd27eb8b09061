package brand

import (
	"sort"
	"strings"
)

const (
	fieldPathSeparatorConstant    = "."
	colorsFieldPrefixConstant     = "colors"
	logoPathsFieldPrefixConstant  = "logo_paths"
	socialFieldPrefixConstant     = "social"
	categoriesFieldPrefixConstant = "services.categories"
)

// Lookup resolves a configuration field path such as "primary_domain" or "colors.primary"
// to the current display value.
func (record Record) Lookup(fieldPath string) (string, bool) {
	normalizedPath := strings.ToLower(strings.TrimSpace(fieldPath))

	switch normalizedPath {
	case "company_name":
		return record.CompanyName, true
	case "short_name":
		return record.ShortName, true
	case "legal_name":
		return record.FullLegalName(), true
	case "tagline":
		return record.Tagline, true
	case "primary_domain":
		return record.PrimaryDomain, true
	case "full_domain":
		return record.FullDomain(""), true
	case "phone_display":
		return record.FormatPhone(PhoneContextDisplay), true
	case "phone_dial":
		return record.FormatPhone(PhoneContextTel), true
	case "phone_plain":
		return record.FormatPhone(PhoneContextPlain), true
	case "email":
		return record.Email, true
	case "service_area":
		return record.ServiceAreaString(), true
	case "primary_location":
		return record.PrimaryLocation, true
	case "seo.default_title":
		return record.SEO.DefaultTitle, true
	case "seo.locale":
		return record.SEO.Locale, true
	}

	prefix, key, hasKey := cutLast(normalizedPath)
	if !hasKey {
		return "", false
	}

	var source map[string]string
	switch prefix {
	case colorsFieldPrefixConstant:
		source = record.Colors
	case logoPathsFieldPrefixConstant:
		source = record.LogoPaths
	case socialFieldPrefixConstant:
		source = record.Social
	case categoriesFieldPrefixConstant:
		source = record.Services.Categories
	default:
		return "", false
	}

	value, exists := source[key]
	return value, exists
}

// Values returns every non-empty string held by the record. Map values are ordered by key.
func (record Record) Values() []string {
	values := []string{
		record.CompanyName,
		record.ShortName,
		record.LegalName,
		record.Tagline,
		record.PrimaryDomain,
		record.PhoneDisplay,
		record.PhoneDial,
		record.Email,
		record.PrimaryLocation,
		record.BusinessInfo.ServiceRadius,
		record.SEO.DefaultTitle,
		record.SEO.DefaultDescription,
		record.SEO.Locale,
		record.SEO.Region,
		record.SEO.Placename,
	}
	values = append(values, record.AltDomains...)
	values = append(values, record.ServiceArea...)
	values = append(values, record.AddressLines...)
	values = append(values, record.Services.Primary...)
	values = append(values, record.SEO.Keywords...)
	for _, source := range []map[string]string{record.Colors, record.LogoPaths, record.Social, record.Services.Categories} {
		values = append(values, sortedMapValues(source)...)
	}

	nonEmpty := values[:0]
	for _, value := range values {
		if len(strings.TrimSpace(value)) == 0 {
			continue
		}
		nonEmpty = append(nonEmpty, value)
	}
	return nonEmpty
}

func cutLast(fieldPath string) (string, string, bool) {
	separatorIndex := strings.LastIndex(fieldPath, fieldPathSeparatorConstant)
	if separatorIndex <= 0 || separatorIndex == len(fieldPath)-1 {
		return "", "", false
	}
	return fieldPath[:separatorIndex], fieldPath[separatorIndex+1:], true
}

func sortedMapValues(source map[string]string) []string {
	keys := make([]string, 0, len(source))
	for key := range source {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	values := make([]string, 0, len(keys))
	for _, key := range keys {
		values = append(values, source[key])
	}
	return values
}
