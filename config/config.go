// SPDX-License-Identifier: GPL-3.0-or-later
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type Account struct {
	Key string

	ImapHost string
	User     string
	Password string

	// Compress requests COMPRESS=DEFLATE if the server offers it.
	Compress bool
}

type Config struct {
	Database string

	Accounts []Account

	Source      string
	Destination string

	PageSize int

	DryRun bool

	Loglevel *string
}

func ReadConfig(filename string) (*Config, error) {
	config := defaults()

	_, err := toml.DecodeFile(filename, config)
	if err != nil {
		return nil, fmt.Errorf("could not read config file: %w", err)
	}

	return config, nil
}

// ParseConfig decodes a TOML document without validating it.
func ParseConfig(data string) (*Config, error) {
	config := defaults()

	_, err := toml.Decode(data, config)
	if err != nil {
		return nil, fmt.Errorf("could not parse config: %w", err)
	}

	return config, nil
}

func defaults() *Config {
	return &Config{
		Database: "transfer.db",
		PageSize: 100,
		DryRun:   false,
	}
}

func (c *Config) Account(key string) (*Account, bool) {
	for i := range c.Accounts {
		if c.Accounts[i].Key == key {
			return &c.Accounts[i], true
		}
	}
	return nil, false
}

// ValidateDatabase checks only what is needed to open the journal.
func (c *Config) ValidateDatabase() error {
	return validateNonEmptyStringField(c.Database, "Database name must not be empty, set to a filename for the sqlite database")
}

// Validate checks the config after command line overrides were applied.
func (c *Config) Validate() error {
	if err := c.ValidateDatabase(); err != nil {
		return err
	}

	if len(c.Accounts) == 0 {
		return errors.New("no Accounts configured, add an [[Accounts]] entry per mailbox")
	}

	keys := map[string]bool{}
	for i, a := range c.Accounts {
		if err := validateNonEmptyStringField(a.Key, fmt.Sprintf("Key of account %d must not be empty", i+1)); err != nil {
			return err
		}
		if keys[a.Key] {
			return fmt.Errorf("account key %s is used more than once", a.Key)
		}
		keys[a.Key] = true

		if err := validateNonEmptyStringField(a.ImapHost, fmt.Sprintf("ImapHost of account %s must not be empty, set to host:port of the imap server", a.Key)); err != nil {
			return err
		}

		if err := validateNonEmptyStringField(a.User, fmt.Sprintf("User of account %s must not be empty, set to username on the imap server", a.Key)); err != nil {
			return err
		}

		if err := validateNonEmptyStringField(a.Password, fmt.Sprintf("Password of account %s must not be empty, set to password of User on the imap server", a.Key)); err != nil {
			return err
		}
	}

	if err := validateNonEmptyStringField(c.Source, "Source must not be empty, set to the key of the account to transfer from"); err != nil {
		return err
	}
	if err := validateNonEmptyStringField(c.Destination, "Destination must not be empty, set to the key of the account to transfer to"); err != nil {
		return err
	}
	if !keys[c.Source] {
		return fmt.Errorf("Source %s is not a configured account", c.Source)
	}
	if !keys[c.Destination] {
		return fmt.Errorf("Destination %s is not a configured account", c.Destination)
	}
	if c.Source == c.Destination {
		return errors.New("Source and Destination must be different accounts")
	}

	if c.PageSize <= 0 {
		return fmt.Errorf("PageSize must be greater than 0, got %d", c.PageSize)
	}

	return nil
}

func validateNonEmptyStringField(field string, err string) error {
	if len(strings.TrimSpace(field)) == 0 {
		return errors.New(err)
	}

	return nil
}
