package template

import (
	"regexp"

	"github.com/arthur-debert/templatize/pkg/errors"
)

// Delimiter frames a field name inside template text.
const Delimiter = "%"

// Placeholder returns the literal token a field name is matched against.
func Placeholder(name string) string {
	return Delimiter + name + Delimiter
}

// compilePlaceholder builds an exact-match pattern for name. Every regexp
// metacharacter is quoted, so the match is always literal; names that are not
// valid UTF-8 cannot be compiled.
func compilePlaceholder(name string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(regexp.QuoteMeta(Placeholder(name)))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrPlaceholderInvalid, "cannot build placeholder for field %q", name).
			WithDetail("field", name)
	}
	return re, nil
}
