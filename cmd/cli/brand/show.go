package brand

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	brandrecord "github.com/temirov/brandbot/internal/brand"
)

const (
	showUseConstant             = "show"
	showShortDescription        = "Print the brand record and its derived values as YAML"
	showLongDescription         = "show renders the configured brand record together with the formatted phone numbers, domain URL, and mailto link derived from it."
	showProtocolFlagName        = "protocol"
	showProtocolFlagDescription = "Protocol used for the derived domain URL"
	showSubjectFlagName         = "subject"
	showSubjectFlagDescription  = "Subject used for the derived mailto link"
	showDefaultProtocolConstant = "https"
	showIndentWidthConstant     = 2
	showRenderErrorTemplate     = "unable to render brand record: %w"
)

// ShowCommandBuilder assembles the brand show command.
type ShowCommandBuilder struct {
	RecordProvider RecordProvider
}

type showDocument struct {
	Record  brandrecord.Record `yaml:"record"`
	Derived derivedValues      `yaml:"derived"`
}

type derivedValues struct {
	PhoneTel     string `yaml:"phone_tel"`
	PhoneDisplay string `yaml:"phone_display"`
	PhonePlain   string `yaml:"phone_plain"`
	LegalName    string `yaml:"legal_name"`
	ServiceArea  string `yaml:"service_area"`
	FullDomain   string `yaml:"full_domain"`
	MailtoLink   string `yaml:"mailto_link"`
}

// Build constructs the brand show command.
func (builder *ShowCommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   showUseConstant,
		Short: showShortDescription,
		Long:  showLongDescription,
		Args:  cobra.NoArgs,
		RunE:  builder.run,
	}

	command.Flags().String(showProtocolFlagName, showDefaultProtocolConstant, showProtocolFlagDescription)
	command.Flags().String(showSubjectFlagName, "", showSubjectFlagDescription)

	return command, nil
}

func (builder *ShowCommandBuilder) run(command *cobra.Command, arguments []string) error {
	protocol, _ := command.Flags().GetString(showProtocolFlagName)
	subject, _ := command.Flags().GetString(showSubjectFlagName)

	record := resolveRecord(builder.RecordProvider)
	document := showDocument{
		Record: record,
		Derived: derivedValues{
			PhoneTel:     record.FormatPhone(brandrecord.PhoneContextTel),
			PhoneDisplay: record.FormatPhone(brandrecord.PhoneContextDisplay),
			PhonePlain:   record.FormatPhone(brandrecord.PhoneContextPlain),
			LegalName:    record.FullLegalName(),
			ServiceArea:  record.ServiceAreaString(),
			FullDomain:   record.FullDomain(protocol),
			MailtoLink:   record.MailtoLink(subject),
		},
	}

	encoder := yaml.NewEncoder(command.OutOrStdout())
	encoder.SetIndent(showIndentWidthConstant)
	if encodeError := encoder.Encode(document); encodeError != nil {
		return fmt.Errorf(showRenderErrorTemplate, encodeError)
	}
	if closeError := encoder.Close(); closeError != nil {
		return fmt.Errorf(showRenderErrorTemplate, closeError)
	}
	return nil
}
