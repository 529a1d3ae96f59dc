package config

import (
	"strings"

	"github.com/preston-bernstein/site-server/internal/option"
)

var (
	defaultCORSHeaders = []string{"Origin", "X-Requested-With", "Content-Type", "Accept", "Authorization"}
	defaultCORSMethods = []string{"GET", "POST", "DELETE"}
)

// CORSConfig holds the headers added to every response.
type CORSConfig struct {
	AllowOrigin      string
	AllowCredentials bool
	AllowHeaders     []string
	AllowMethods     []string
}

func loadCORS(bc *BuildConfig) (CORSConfig, error) {
	origin, err := bc.GetValue(KeyCORSAllowOrigin, option.Some("*"))
	if err != nil {
		return CORSConfig{}, err
	}
	creds, err := bc.GetBoolean(KeyCORSAllowCredentials, option.Some(true))
	if err != nil {
		return CORSConfig{}, err
	}
	return CORSConfig{
		AllowOrigin:      origin,
		AllowCredentials: creds,
		AllowHeaders:     trimAll(bc.GetArray(KeyCORSAllowHeaders, option.Some(defaultCORSHeaders), ",")),
		AllowMethods:     trimAll(bc.GetArray(KeyCORSAllowMethods, option.Some(defaultCORSMethods), ",")),
	}, nil
}

// trimAll drops surrounding spaces so "GET, POST" reads like "GET,POST".
func trimAll(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
