package brand

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	defaultProtocolConstant        = "https"
	domainURLTemplateConstant      = "%s://%s"
	mailtoPrefixConstant           = "mailto:"
	mailtoSubjectParameterConstant = "?subject="
	serviceAreaSeparatorConstant   = " & "
	queryEscapedSpaceConstant      = "+"
	percentEncodedSpaceConstant    = "%20"
)

// PhoneContext selects the representation returned by FormatPhone.
type PhoneContext string

// Supported phone contexts.
const (
	PhoneContextTel     PhoneContext = "tel"
	PhoneContextDisplay PhoneContext = "display"
	PhoneContextPlain   PhoneContext = "plain"
)

// FormatPhone returns the phone number shaped for the requested context.
// Unrecognized contexts fall back to the display form.
func (record Record) FormatPhone(phoneContext PhoneContext) string {
	switch phoneContext {
	case PhoneContextTel:
		return record.PhoneDial
	case PhoneContextPlain:
		return digitsOnly(record.PhoneDisplay)
	default:
		return record.PhoneDisplay
	}
}

// FullLegalName returns the registered legal name.
func (record Record) FullLegalName() string {
	return record.LegalName
}

// ServiceAreaString joins the service areas for display.
func (record Record) ServiceAreaString() string {
	return strings.Join(record.ServiceArea, serviceAreaSeparatorConstant)
}

// FullDomain returns the primary domain prefixed with the protocol, https when empty.
func (record Record) FullDomain(protocol string) string {
	if len(protocol) == 0 {
		protocol = defaultProtocolConstant
	}
	return fmt.Sprintf(domainURLTemplateConstant, protocol, record.PrimaryDomain)
}

// MailtoLink builds a mailto URI for the primary email with an optional subject.
func (record Record) MailtoLink(subject string) string {
	link := mailtoPrefixConstant + record.Email
	if len(subject) == 0 {
		return link
	}
	return link + mailtoSubjectParameterConstant + encodeURIComponent(subject)
}

// encodeURIComponent percent-encodes a query value with spaces as %20 so that mail clients
// which do not treat '+' as a space still show the subject verbatim.
func encodeURIComponent(value string) string {
	return strings.ReplaceAll(url.QueryEscape(value), queryEscapedSpaceConstant, percentEncodedSpaceConstant)
}

func digitsOnly(value string) string {
	return strings.Map(func(character rune) rune {
		if character >= '0' && character <= '9' {
			return character
		}
		return -1
	}, value)
}
