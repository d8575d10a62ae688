// Package config loads service configuration.
//
// It uses Viper to read a YAML file, overlays environment variables (a
// dotted key such as supadata.api_key is bound to SUPADATA_API_KEY) and
// finally a .env file loaded through godotenv.
//
// # Usage
//
//	var cfg Config
//	err := config.LoadConfig("transcript-gateway", &cfg)
package config
