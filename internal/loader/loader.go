// internal/loader/loader.go

package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/imellyn/rulebasedlt/internal/rules"
)

// ParseRules decodes a JSON array of rule definitions. Entries that lack the
// expected rule shape are skipped with a warning rather than failing the whole
// set; a payload that is not an array at all is an error.
func ParseRules(rulesJSON []byte) ([]rules.Rule, error) {
	var ruleDefs []json.RawMessage
	if err := json.Unmarshal(rulesJSON, &ruleDefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal rules JSON: %w", err)
	}

	parsed := make([]rules.Rule, 0, len(ruleDefs))
	for i, raw := range ruleDefs {
		var rule rules.Rule
		if err := json.Unmarshal(raw, &rule); err != nil {
			log.Warn().Err(err).Int("index", i).Msg("Skipping malformed rule definition")
			continue
		}
		parsed = append(parsed, rule)
	}
	return parsed, nil
}

// ParseRulesYAML decodes a YAML sequence of rule definitions with the same
// skip-on-malformed semantics as ParseRules.
func ParseRulesYAML(rulesYAML []byte) ([]rules.Rule, error) {
	var ruleDefs []yaml.Node
	if err := yaml.Unmarshal(rulesYAML, &ruleDefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal rules YAML: %w", err)
	}

	parsed := make([]rules.Rule, 0, len(ruleDefs))
	for i, node := range ruleDefs {
		var rule rules.Rule
		if err := node.Decode(&rule); err != nil {
			log.Warn().Err(err).Int("index", i).Msg("Skipping malformed rule definition")
			continue
		}
		parsed = append(parsed, rule)
	}
	return parsed, nil
}

// LoadFile reads a rule set from disk, dispatching on the file extension:
// .yaml/.yml parse as YAML, anything else as JSON.
func LoadFile(path string) ([]rules.Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseRulesYAML(data)
	default:
		return ParseRules(data)
	}
}
