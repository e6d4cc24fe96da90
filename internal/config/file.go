package config

// File represents the structure of the .gradecard configuration file.
//
//	open_browser: false
//	output_dir: reports
//	formats:
//	  markdown: true
//	  json: false
//	  xlsx: true
type File struct {
	// OpenBrowser is a pointer so an absent key keeps the default.
	OpenBrowser *bool `yaml:"open_browser,omitempty"`

	// OutputDir overrides the directory report files are written to.
	OutputDir string `yaml:"output_dir,omitempty"`

	// Formats switches the extra report formats on.
	Formats Formats `yaml:"formats,omitempty"`
}

// Formats lists the optional report formats.
type Formats struct {
	Markdown bool `yaml:"markdown,omitempty"`
	JSON     bool `yaml:"json,omitempty"`
	XLSX     bool `yaml:"xlsx,omitempty"`
}
