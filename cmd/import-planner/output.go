package main

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"import-planner/internal/pending"
	"import-planner/internal/plan"
)

// result is the YAML document printed by the CLI.
type result struct {
	LoadType string               `yaml:"load_type"`
	Pending  *plan.ImportSettings `yaml:"pending,omitempty"`
}

// printResult consumes the pending slot exactly once, the way the loader
// does, and writes the outcome as YAML.
func printResult(w io.Writer, loadType plan.LoadType, loader pending.Reader[plan.ImportSettings]) error {
	out := result{LoadType: loadType.String()}

	if s, ok := loader.Take(); ok {
		out.Pending = &s
	}

	data, err := yaml.Marshal(out)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	_, err = w.Write(data)

	return err
}
