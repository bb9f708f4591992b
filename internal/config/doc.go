// Package config manages user-level settings stored at ~/.extwizard/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// additional template search paths and per-template substitution keys.
package config
