// Package config holds the runtime settings of instantnews and the loader
// for the NewsAPI credential.
package config

import (
	"encoding/hex"
	"errors"
	"time"
)

// RegisterURL is where users obtain an API key.
const RegisterURL = "https://newsapi.org/register"

// KeyEnv is the environment variable that carries the API key.
const KeyEnv = "IN_API_KEY"

// DefaultBaseURL is the NewsAPI host every endpoint is resolved against.
const DefaultBaseURL = "https://newsapi.org"

// keyLength is the length of a key issued by the registration page.
const keyLength = 32

var (
	// ErrMissingKey is returned when IN_API_KEY is unset or empty.
	ErrMissingKey = errors.New("config: no API key in " + KeyEnv)
	// ErrMalformedKey is returned for a key of the issued length that is not
	// hexadecimal.
	ErrMalformedKey = errors.New("config: malformed API key")
)

// Conf is decoded from flags and the environment by viper.
type Conf struct {
	APIKey  string        `mapstructure:"apikey"`
	BaseURL string        `mapstructure:"baseurl"`
	Timeout time.Duration `mapstructure:"timeout"`
	Debug   bool          `mapstructure:"debug"`
	EnvFile string        `mapstructure:"envfile"`
}

// LoadAPIKey validates the key already decoded into c.
//
// Keys of exactly 32 characters must be hexadecimal; keys of any other
// non-zero length are accepted as is.
func (c *Conf) LoadAPIKey() (string, error) {
	return ValidateKey(c.APIKey)
}

// ValidateKey applies the credential format rules to key.
func ValidateKey(key string) (string, error) {
	if key == "" {
		return "", ErrMissingKey
	}
	if len(key) == keyLength {
		if _, err := hex.DecodeString(key); err != nil {
			return "", ErrMalformedKey
		}
	}
	return key, nil
}
