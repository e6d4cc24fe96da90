// Package config holds the settings that shape a gradecard run: which extra
// report formats to write, where to write them and whether the HTML report
// is opened in a browser. Settings come from defaults, then the optional
// YAML config file, then command line flags.
package config
