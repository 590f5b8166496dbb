// Package config provides the configuration of the typediff command: the
// defaults, the optional YAML configuration file and the validation of the
// combined settings.
package config
