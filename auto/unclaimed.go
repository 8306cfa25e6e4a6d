package auto

import (
	"sort"

	"autofaker/fake"
)

// unclaimedMembers returns the members of an inventory that no explicit rule
// claims across the given rule sets, sorted by name so population order is
// stable. targets maps a rule-set name to the member names with explicit
// rules under it; rule sets without registrations contribute nothing.
func unclaimedMembers(
	inventory map[string]fake.Member, ruleSets []string, targets func(string) []string,
) []fake.Member {
	claimed := make(map[string]struct{})
	for _, rs := range ruleSets {
		for _, name := range targets(rs) {
			claimed[name] = struct{}{}
		}
	}

	out := make([]fake.Member, 0, len(inventory))
	for name, m := range inventory {
		if _, ok := claimed[name]; ok {
			continue
		}

		out = append(out, m)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out
}
