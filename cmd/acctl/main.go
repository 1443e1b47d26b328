package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/imellyn/rulebasedlt/internal/config"
	"github.com/imellyn/rulebasedlt/internal/engine"
	"github.com/imellyn/rulebasedlt/internal/loader"
	"github.com/imellyn/rulebasedlt/internal/rules"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Error().Err(err).Msg("Error loading configuration")
		os.Exit(1)
	}
	zerolog.SetGlobalLevel(cfg.Level())

	if len(os.Args) < 2 {
		log.Error().Msg("Usage: acctl <facts_file>")
		os.Exit(1)
	}

	ruleSet := rules.DefaultRules()
	if cfg.RulesPath != "" {
		// The rule file is user-edited text: a broken file means no rules,
		// not a crash.
		loaded, err := loader.LoadFile(cfg.RulesPath)
		if err != nil {
			log.Error().Err(err).Str("path", cfg.RulesPath).Msg("Error loading rules, continuing with an empty rule set")
		}
		ruleSet = loaded
	}

	factsJSON, err := os.ReadFile(os.Args[1])
	if err != nil {
		log.Error().Err(err).Msg("Error reading facts file")
		os.Exit(1)
	}
	var facts rules.Facts
	if err := json.Unmarshal(factsJSON, &facts); err != nil {
		log.Error().Err(err).Msg("Error parsing facts JSON")
		os.Exit(1)
	}

	decision, ok := engine.Decide(ruleSet, facts)
	if !ok {
		log.Warn().Msg("No rule matched the current conditions")
		fmt.Println("Default behavior: AC remains OFF / unchanged")
		return
	}

	if cfg.Pretty {
		printPretty(decision)
		return
	}
	out, err := json.MarshalIndent(decision, "", "  ")
	if err != nil {
		log.Error().Err(err).Msg("Error encoding decision")
		os.Exit(1)
	}
	fmt.Println(string(out))
}

func printPretty(decision rules.Decision) {
	setpoint := "—"
	if decision.Action.Setpoint != nil {
		setpoint = fmt.Sprintf("%.1f°C", *decision.Action.Setpoint)
	}
	fmt.Printf("Rule triggered: %s (priority %d)\n", decision.RuleName, decision.Priority)
	fmt.Printf("Mode: %s  Fan: %s  Setpoint: %s\n", decision.Action.Mode, decision.Action.FanSpeed, setpoint)
	fmt.Printf("Reason: %s\n", decision.Action.Reason)
}
