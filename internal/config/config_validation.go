// SPDX-License-Identifier: Apache-2.0

package config

// validate checks that every configuration value the server cannot run
// without is present. Defaults cover the rest.
func (c *StructuredConfig) validate() error {
	if c.App.TokenSignKey == "" {
		return ErrNoTokenSignKey
	}
	if c.Storage.Mongo.URI == "" {
		return ErrNoMongoURI
	}
	if c.Storage.Mongo.Database == "" {
		return ErrNoMongoDatabase
	}

	return nil
}
