// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package trips

import (
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/tripconv/pkg/types"
)

// PurposeRule assigns a trip purpose when both place fragments match.
// Matching is substring containment, so a rule can name a landmark rather
// than the platform's full address string.
type PurposeRule struct {
	Origin      string `yaml:"origin"`
	Destination string `yaml:"destination"`
	Purpose     string `yaml:"purpose"`
}

// RuleSet is the on-disk purpose configuration.
type RuleSet struct {
	Rules []PurposeRule `yaml:"rules"`
}

// LoadRules reads a YAML rules file. A missing path yields an empty set.
func LoadRules(path string) (RuleSet, error) {
	if path == "" {
		return RuleSet{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return RuleSet{}, fmt.Errorf("reading rules file %s: %w", path, err)
	}

	var rs RuleSet
	if err := yaml.Unmarshal(data, &rs); err != nil {
		return RuleSet{}, fmt.Errorf("parsing rules file %s: %w", path, err)
	}
	return rs, nil
}

// Apply tags each trip with the first matching rule's purpose. Trips that
// match no rule are dropped unless keepUnmatched is set. An empty rule set
// keeps everything, since there is nothing to match against.
func (rs RuleSet) Apply(in []types.Trip, keepUnmatched bool) []types.Trip {
	if len(rs.Rules) == 0 {
		return in
	}

	var out []types.Trip
	for _, t := range in {
		matched := false
		for _, r := range rs.Rules {
			if containsBoth(t, r) {
				t.Purpose = r.Purpose
				matched = true
				break
			}
		}
		if matched || keepUnmatched {
			out = append(out, t)
		}
	}
	return out
}

func containsBoth(t types.Trip, r PurposeRule) bool {
	return strings.Contains(t.Origin, r.Origin) && strings.Contains(t.Destination, r.Destination)
}
