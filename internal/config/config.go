// Package config provides a struct to store the application's configuration
package config

import (
	"go.infratographer.com/x/loggingx"
)

// BigIPConfig stores the connection settings for the target BIG-IP
type BigIPConfig struct {
	Host      string
	Username  string
	Password  string
	Partition string
	Insecure  bool
	Strict    bool
}

var AppConfig struct {
	Logging loggingx.Config
	BigIP   BigIPConfig
}
