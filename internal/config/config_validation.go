package config

import "errors"

var (
	errNoTokenSignKey = errors.New("token sign key is not set")
	errNoDatabaseDSN  = errors.New("database DSN is not set")
)

// validate checks that the merged configuration carries the values the
// application cannot run without.
func (c *StructuredConfig) validate() error {
	var err error

	if c.App.TokenSignKey == "" {
		err = errors.Join(err, errNoTokenSignKey)
	}
	if c.Storage.DB.DSN == "" {
		err = errors.Join(err, errNoDatabaseDSN)
	}

	return err
}
