// Package locale provides the locale-tagged vocabularies backing string
// synthesis. Locales are resolved with BCP-47 matching, so "en-US" and
// "en-GB" both land on the English dataset and unknown tags fall back to the
// first registered locale.
package locale

import (
	"math/rand/v2"
	"strings"

	"golang.org/x/text/language"
)

// Default is the locale used when a configuration names none.
const Default = "en"

// Data is one locale's vocabulary.
type Data struct {
	Tag        language.Tag
	Words      []string
	FirstNames []string
	LastNames  []string
	Domains    []string
	Cities     []string
	Countries  []string
}

// registry order is matcher priority; English first so it is the fallback.
var registry = []*Data{english, german}

var matcher = func() language.Matcher {
	tags := make([]language.Tag, len(registry))
	for i, d := range registry {
		tags[i] = d.Tag
	}

	return language.NewMatcher(tags)
}()

// For resolves a locale tag to its vocabulary. Underscore separators are
// accepted ("en_US"); unparsable and unmatched tags yield the fallback
// locale.
func For(tag string) *Data {
	t, err := language.Parse(strings.ReplaceAll(tag, "_", "-"))
	if err != nil {
		return registry[0]
	}

	_, idx, _ := matcher.Match(t)

	return registry[idx]
}

func pick(r *rand.Rand, list []string) string {
	if len(list) == 0 {
		return ""
	}

	return list[r.IntN(len(list))]
}

// Word returns one random vocabulary word.
func (d *Data) Word(r *rand.Rand) string { return pick(r, d.Words) }

// Phrase returns n random words joined with spaces.
func (d *Data) Phrase(r *rand.Rand, n int) string {
	words := make([]string, 0, n)
	for i := 0; i < n; i++ {
		words = append(words, d.Word(r))
	}

	return strings.Join(words, " ")
}

// FirstName returns a random given name.
func (d *Data) FirstName(r *rand.Rand) string { return pick(r, d.FirstNames) }

// LastName returns a random family name.
func (d *Data) LastName(r *rand.Rand) string { return pick(r, d.LastNames) }

// FullName returns a random "given family" name pair.
func (d *Data) FullName(r *rand.Rand) string {
	return d.FirstName(r) + " " + d.LastName(r)
}

// Domain returns a random internet domain.
func (d *Data) Domain(r *rand.Rand) string { return pick(r, d.Domains) }

// Email returns a random name-based email address.
func (d *Data) Email(r *rand.Rand) string {
	local := strings.ToLower(d.FirstName(r) + "." + d.LastName(r))
	return local + "@" + d.Domain(r)
}

// City returns a random city name.
func (d *Data) City(r *rand.Rand) string { return pick(r, d.Cities) }

// Country returns a random country name.
func (d *Data) Country(r *rand.Rand) string { return pick(r, d.Countries) }
