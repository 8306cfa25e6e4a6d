package synth

import (
	"fmt"
	"strings"

	"autofaker/fake"
	"autofaker/locale"
)

// textValue synthesizes a string, shaping it after the target member's name
// when the name suggests a well-known format. Root-level and element-level
// generations carry no useful member name and fall through to a plain
// phrase.
func textValue(ctx *fake.Context) string {
	d := locale.For(ctx.Config.Locale)
	r := ctx.Rand

	switch name := normalizeMember(ctx.TargetMember); {
	case strings.Contains(name, "email"):
		return d.Email(r)
	case strings.Contains(name, "firstname") || strings.Contains(name, "givenname"):
		return d.FirstName(r)
	case strings.Contains(name, "lastname") || strings.Contains(name, "surname") ||
		strings.Contains(name, "familyname"):
		return d.LastName(r)
	case name == "name" || name == "fullname":
		return d.FullName(r)
	case strings.Contains(name, "url") || strings.Contains(name, "website") ||
		strings.Contains(name, "homepage"):
		return "https://" + d.Domain(r)
	case strings.Contains(name, "phone"):
		return fmt.Sprintf("+1-%03d-%03d-%04d", r.IntN(1000), r.IntN(1000), r.IntN(10000))
	case strings.Contains(name, "city"):
		return d.City(r)
	case strings.Contains(name, "country"):
		return d.Country(r)
	default:
		return d.Phrase(r, 3)
	}
}

// normalizeMember lowercases a member name and strips underscores so both
// FirstName and first_name match the same shape.
func normalizeMember(member string) string {
	return strings.ReplaceAll(strings.ToLower(member), "_", "")
}
