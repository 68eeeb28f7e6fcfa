package config

import (
	"fmt"
	"slices"

	"github.com/atlanticdynamic/urlbridge/internal/fancy"
)

// String returns a pretty-printed tree representation of the config
func (c *Config) String() string {
	return ConfigTree(c)
}

// ConfigTree converts a Config struct into a rendered tree string
func ConfigTree(cfg *Config) string {
	t := fancy.Tree()
	t.Root(fancy.RootStyle.Render(fmt.Sprintf("Urlbridge Config (%s)", cfg.Version)))

	loggingTree := t.Child("Logging")
	loggingTree.Child(fmt.Sprintf("Format: %s", cfg.Logging.Format))
	loggingTree.Child(fmt.Sprintf("Level: %s", cfg.Logging.Level))

	settingsTree := t.Child(
		fancy.BranchNode("Settings", fmt.Sprintf("(%d)", len(cfg.Settings))),
	)
	for _, key := range sortedKeys(cfg.Settings) {
		settingsTree.Child(fancy.SettingStyle.Render(fmt.Sprintf("%s: %s", key, cfg.Settings[key])))
	}

	prefixTree := t.Child(
		fancy.BranchNode("Blueprint Prefixes", fmt.Sprintf("(%d)", len(cfg.BlueprintPrefixes))),
	)
	for _, name := range sortedKeys(cfg.BlueprintPrefixes) {
		prefixTree.Child(fmt.Sprintf(
			"%s: %s",
			fancy.BlueprintStyle.Render(name),
			fancy.RouteText(cfg.BlueprintPrefixes[name]),
		))
	}

	return t.String()
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
