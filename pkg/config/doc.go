// Package config loads configuration structs from environment variables.
//
// A .env file in the working directory is loaded once, on the first Load
// call, before any parsing; a missing file is not an error. Struct fields
// are populated from `env` tags:
//
//	type ServerConfig struct {
//		Addr    string        `env:"HTTP_ADDR" envDefault:":8080"`
//		Timeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"30s"`
//	}
//
//	var cfg ServerConfig
//	config.MustLoad(&cfg)
package config
