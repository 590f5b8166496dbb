package config

// File represents the structure of the .typediff configuration file.
// Pointer fields distinguish "not set" from the zero value.
type File struct {
	// Language is the default programming language.
	Language string `yaml:"language,omitempty"`

	// Combining sets whether combining marks count as differences.
	Combining *bool `yaml:"combining,omitempty"`

	// Batch is the number of cards graded concurrently.
	Batch int `yaml:"batch,omitempty"`

	// Report configures report output.
	Report ReportFile `yaml:"report,omitempty"`
}

// ReportFile is the report section of the configuration file.
type ReportFile struct {
	// Font styles answer blocks in HTML reports.
	Font FontFile `yaml:"font,omitempty"`
}

// FontFile is the font section of the configuration file.
type FontFile struct {
	Family string `yaml:"family,omitempty"`
	Size   int    `yaml:"size,omitempty"`
}

// Setting names shared by the configuration file and the CLI flags.
const (
	SettingLanguage  = "language"
	SettingCombining = "no-combining"
	SettingBatch     = "batch"
)

// ApplyTo copies the values set in the file into c. Settings for which
// explicit reports true were given on the command line and are left alone.
func (f *File) ApplyTo(c *Config, explicit func(setting string) bool) {
	if f.Language != "" && !explicit(SettingLanguage) {
		c.Language = f.Language
	}
	if f.Combining != nil && !explicit(SettingCombining) {
		c.Combining = *f.Combining
	}
	if f.Batch != 0 && !explicit(SettingBatch) {
		c.BatchSize = f.Batch
	}
	if f.Report.Font.Family != "" {
		c.FontFamily = f.Report.Font.Family
	}
	if f.Report.Font.Size != 0 {
		c.FontSize = f.Report.Font.Size
	}
}
