package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"
	"time"

	"aws-health-notifier/internal/domain/model"
)

// ErrMissingConfiguration is returned when a required variable is absent or empty.
var ErrMissingConfiguration = errors.New("missing required configuration")

// Config contains runtime configuration values.
type Config struct {
	SlackWebhookURL string
	SlackChannel    string
	ChannelTemplate string
	AccountMapping  model.AccountMapping
	ChannelRouting  model.ChannelRouting
	RequestTimeout  time.Duration
	LogLevel        slog.Level

	// Warnings collects optional settings that were ignored because they could not be parsed.
	Warnings []string
}

const (
	DefaultChannelTemplate = "#aws-health-{application}-{environment}"

	defaultTimeout  = 0 // no client timeout
	defaultLogLevel = slog.LevelInfo
)

// Load builds a Config from environment variables.
func Load() (*Config, error) {
	webhookURL, err := getenvRequired("SLACK_WEBHOOK_URL")
	if err != nil {
		return nil, err
	}
	channel, err := getenvRequired("SLACK_CHANNEL")
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		SlackWebhookURL: webhookURL,
		SlackChannel:    channel,
		ChannelTemplate: getenvDefault("SLACK_CHANNEL_TEMPLATE", DefaultChannelTemplate),
	}

	mapping, warnings := parseJSONObject[model.Application]("ACCOUNT_APPLICATION_MAPPING")
	cfg.AccountMapping = model.AccountMapping(mapping)
	cfg.Warnings = append(cfg.Warnings, warnings...)

	cfg.ChannelRouting, warnings = parseChannelRouting("CHANNEL_ROUTING")
	cfg.Warnings = append(cfg.Warnings, warnings...)

	var w string
	cfg.RequestTimeout, w = parseDurationDefault("REQUEST_TIMEOUT", defaultTimeout)
	if w != "" {
		cfg.Warnings = append(cfg.Warnings, w)
	}
	cfg.LogLevel, w = parseLevelDefault("LOG_LEVEL", defaultLogLevel)
	if w != "" {
		cfg.Warnings = append(cfg.Warnings, w)
	}

	return cfg, nil
}

func getenvRequired(key string) (string, error) {
	val := os.Getenv(key)
	if val == "" {
		return "", fmt.Errorf("%w: %s is required", ErrMissingConfiguration, key)
	}
	return val, nil
}

func getenvDefault(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

// parseJSONObject decodes key as a JSON object, keeping every entry that
// decodes as T. Malformed input is never an error: the value becomes an empty
// mapping (or loses the bad entries) and a warning is returned instead.
func parseJSONObject[T any](key string) (map[string]T, []string) {
	out := map[string]T{}
	val := os.Getenv(key)
	if strings.TrimSpace(val) == "" {
		return out, nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(val), &raw); err != nil {
		return out, []string{fmt.Sprintf("%s is not a valid JSON object, using empty mapping: %v", key, err)}
	}

	var warnings []string
	for _, name := range sortedKeys(raw) {
		var entry T
		if err := json.Unmarshal(raw[name], &entry); err != nil {
			warnings = append(warnings, fmt.Sprintf("%s entry %q ignored: %v", key, name, err))
			continue
		}
		out[name] = entry
	}
	return out, warnings
}

// parseChannelRouting applies the same per-entry leniency one level deeper,
// so a bad channel value only drops that environment.
func parseChannelRouting(key string) (model.ChannelRouting, []string) {
	apps, warnings := parseJSONObject[map[string]json.RawMessage](key)

	routing := model.ChannelRouting{}
	for _, application := range sortedKeys(apps) {
		envs := map[string]string{}
		for _, environment := range sortedKeys(apps[application]) {
			var channel string
			if err := json.Unmarshal(apps[application][environment], &channel); err != nil {
				warnings = append(warnings, fmt.Sprintf("%s entry %q.%q ignored: %v", key, application, environment, err))
				continue
			}
			envs[environment] = channel
		}
		routing[application] = envs
	}
	return routing, warnings
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func parseDurationDefault(key string, fallback time.Duration) (time.Duration, string) {
	val := os.Getenv(key)
	if val == "" {
		return fallback, ""
	}
	d, err := time.ParseDuration(val)
	if err != nil || d < 0 {
		return fallback, fmt.Sprintf("%s=%q is not a valid duration, using default", key, val)
	}
	return d, ""
}

func parseLevelDefault(key string, fallback slog.Level) (slog.Level, string) {
	val := os.Getenv(key)
	if val == "" {
		return fallback, ""
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(val)); err != nil {
		return fallback, fmt.Sprintf("%s=%q is not a valid level, using default", key, val)
	}
	return level, ""
}
