package fields

import (
	"strconv"
	"strings"
)

// Separator joins parent and child names.
const Separator = "_"

// Flatten walks v depth first and emits one Field per scalar leaf. prefix is
// prepended verbatim to every child name; callers normally pass "".
// A bare scalar has no name and yields an empty set.
func Flatten(v Value, prefix string) FieldSet {
	out := FieldSet{}

	switch v.Kind {
	case KindObject:
		for _, m := range v.Members {
			out = appendChild(out, prefix+m.Key, m.Value)
		}
	case KindArray:
		for i, item := range v.Items {
			out = appendChild(out, prefix+strconv.Itoa(i), item)
		}
	}

	return out
}

func appendChild(out FieldSet, name string, v Value) FieldSet {
	if v.IsContainer() {
		return append(out, Flatten(v, name+Separator)...)
	}
	return append(out, Field{Name: upperASCII(name), Value: v.Text})
}

// upperASCII upper-cases ASCII letters only; other runes pass through.
func upperASCII(s string) string {
	return strings.Map(func(r rune) rune {
		if 'a' <= r && r <= 'z' {
			return r - ('a' - 'A')
		}
		return r
	}, s)
}
