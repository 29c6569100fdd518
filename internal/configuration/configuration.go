// Package configuration implements the application configuration layer,
// reading generic Unix-type environment files into typed settings.
package configuration

import (
	"strconv"
)

const (
	// KeyNamenodeHost selects the default namenode host.
	KeyNamenodeHost = "HDFSBRIDGE_NAMENODE_HOST"

	// KeyNamenodePort selects the default namenode port.
	KeyNamenodePort = "HDFSBRIDGE_NAMENODE_PORT"

	// KeyUser selects the user to connect to the namenode as.
	KeyUser = "HDFSBRIDGE_USER"

	// KeyVerify selects whether copies are verified by default.
	KeyVerify = "HDFSBRIDGE_VERIFY"
)

// Settings holds the typed application settings.
type Settings struct {
	NamenodeHost string
	NamenodePort uint16
	User         string
	Verify       bool
}

type genericConfigProvider interface {
	Read(filenames ...string) (envMap map[string]string, err error)
}

// Handler is the principal implementation of the configuration layer.
type Handler struct {
	GenericHandler genericConfigProvider
}

// NewHandler returns a pointer to a new configuration [Handler].
func NewHandler(genericHandler genericConfigProvider) *Handler {
	return &Handler{
		GenericHandler: genericHandler,
	}
}

// ReadGeneric reads generic Unix-type configuration files into a map.
func (c *Handler) ReadGeneric(filenames ...string) (map[string]string, error) {
	return c.GenericHandler.Read(filenames...)
}

// EstablishSettings reads the given configuration files into [Settings].
// Missing files yield zero-valued [Settings] rather than an error, so that a
// plain flag-driven invocation needs no environment file at all.
func (c *Handler) EstablishSettings(filenames ...string) Settings {
	envMap, err := c.ReadGeneric(filenames...)
	if err != nil {
		return Settings{}
	}

	return Settings{
		NamenodeHost: c.MapKeyToString(envMap, KeyNamenodeHost),
		NamenodePort: uint16(max(c.MapKeyToInt(envMap, KeyNamenodePort), 0)), //nolint:gosec
		User:         c.MapKeyToString(envMap, KeyUser),
		Verify:       c.MapKeyToBool(envMap, KeyVerify),
	}
}

// MapKeyToString returns the string value for a key, or an empty string.
func (c *Handler) MapKeyToString(envMap map[string]string, key string) string {
	if value, exists := envMap[key]; exists {
		return value
	}

	return ""
}

// MapKeyToInt returns the integer value for a key, or -1.
func (c *Handler) MapKeyToInt(envMap map[string]string, key string) int {
	value := c.MapKeyToString(envMap, key)
	if value == "" {
		return -1
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return -1
	}

	return intValue
}

// MapKeyToBool returns the boolean value for a key, or false.
func (c *Handler) MapKeyToBool(envMap map[string]string, key string) bool {
	value := c.MapKeyToString(envMap, key)
	if value == "" {
		return false
	}
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return false
	}

	return boolValue
}
