// Package config contains the schema and helper functions to work with the configuration file.
package config

import (
	"io"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"
)

// read reads the configuration from the given bytes slice.
func read(data []byte) (*Configuration, error) {
	var config Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	validate := validator.New()
	if err := validate.Struct(config); err != nil {
		return nil, err
	}

	return &config, nil
}

// ReadConfig reads the configuration from the given reader and returns it.
func ReadConfig(reader io.Reader) (*Configuration, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	return read(data)
}
