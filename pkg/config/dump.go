package config

import (
	toml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/reactspring/pkg/errors"
)

// Dump renders settings as a TOML document that Load accepts back as a
// user config file
func Dump(s *Settings) (string, error) {
	data, err := toml.Marshal(s)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to render configuration")
	}
	return string(data), nil
}

// Defaults returns the built-in defaults document
func Defaults() string {
	return string(defaultConfig)
}
