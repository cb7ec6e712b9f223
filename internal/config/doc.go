// Package config manages user-level settings stored at ~/.pyboot/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the default Python version and the template URLs used by the scaffolder.
package config
