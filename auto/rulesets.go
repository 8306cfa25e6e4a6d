package auto

import (
	"strings"

	"autofaker/engine"
)

// ParseRuleSets turns a comma-delimited list of rule-set names into an
// ordered list of trimmed, non-empty names. Empty or all-whitespace input
// stands for the default rule set, as does input whose tokens are all
// empty. Order is preserved and duplicates are kept.
func ParseRuleSets(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{engine.DefaultRuleSet}
	}

	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))

	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}

		out = append(out, p)
	}

	if len(out) == 0 {
		return []string{engine.DefaultRuleSet}
	}

	return out
}
