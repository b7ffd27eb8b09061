package brand

// Record captures the authoritative values of the current brand.
type Record struct {
	CompanyName     string            `mapstructure:"company_name" yaml:"company_name" validate:"required"`
	ShortName       string            `mapstructure:"short_name" yaml:"short_name"`
	LegalName       string            `mapstructure:"legal_name" yaml:"legal_name"`
	Tagline         string            `mapstructure:"tagline" yaml:"tagline"`
	PrimaryDomain   string            `mapstructure:"primary_domain" yaml:"primary_domain" validate:"required"`
	AltDomains      []string          `mapstructure:"alt_domains" yaml:"alt_domains"`
	PhoneDisplay    string            `mapstructure:"phone_display" yaml:"phone_display" validate:"required"`
	PhoneDial       string            `mapstructure:"phone_dial" yaml:"phone_dial"`
	Email           string            `mapstructure:"email" yaml:"email" validate:"required"`
	ServiceArea     []string          `mapstructure:"service_area" yaml:"service_area"`
	PrimaryLocation string            `mapstructure:"primary_location" yaml:"primary_location"`
	AddressLines    []string          `mapstructure:"address_lines" yaml:"address_lines"`
	Colors          map[string]string `mapstructure:"colors" yaml:"colors"`
	LogoPaths       map[string]string `mapstructure:"logo_paths" yaml:"logo_paths"`
	Social          map[string]string `mapstructure:"social" yaml:"social"`
	Services        Services          `mapstructure:"services" yaml:"services"`
	BusinessInfo    BusinessInfo      `mapstructure:"business_info" yaml:"business_info"`
	SEO             SEOMetadata       `mapstructure:"seo" yaml:"seo"`
}

// Services lists the offered services and their category labels.
type Services struct {
	Primary    []string          `mapstructure:"primary" yaml:"primary"`
	Categories map[string]string `mapstructure:"categories" yaml:"categories"`
}

// BusinessInfo describes operating facts about the business.
type BusinessInfo struct {
	Founded          int    `mapstructure:"founded" yaml:"founded,omitempty"`
	ServiceRadius    string `mapstructure:"service_radius" yaml:"service_radius"`
	EmergencyService bool   `mapstructure:"emergency_service" yaml:"emergency_service"`
	Licensed         bool   `mapstructure:"licensed" yaml:"licensed"`
	Insured          bool   `mapstructure:"insured" yaml:"insured"`
}

// SEOMetadata groups search-engine metadata rendered into page heads.
type SEOMetadata struct {
	DefaultTitle       string   `mapstructure:"default_title" yaml:"default_title"`
	DefaultDescription string   `mapstructure:"default_description" yaml:"default_description"`
	Keywords           []string `mapstructure:"keywords" yaml:"keywords"`
	Locale             string   `mapstructure:"locale" yaml:"locale"`
	Region             string   `mapstructure:"region" yaml:"region"`
	Placename          string   `mapstructure:"placename" yaml:"placename"`
}
