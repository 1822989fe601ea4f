package fields

// Kind identifies the variant held by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindObject
	KindArray
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	default:
		return "unknown"
	}
}

// Member is one key/value pair of an object, in declaration order.
type Member struct {
	Key   string
	Value Value
}

// Value is a decoded payload node. Scalars carry their substitution text in
// Text; objects carry Members; arrays carry Items.
type Value struct {
	Kind    Kind
	Text    string
	Members []Member
	Items   []Value
}

// Null returns the null scalar.
func Null() Value { return Value{Kind: KindNull, Text: "null"} }

// Bool returns a boolean scalar.
func Bool(b bool) Value {
	if b {
		return Value{Kind: KindBool, Text: "true"}
	}
	return Value{Kind: KindBool, Text: "false"}
}

// Number returns a numeric scalar whose text is already normalised.
func Number(text string) Value { return Value{Kind: KindNumber, Text: text} }

// String returns a string scalar.
func String(s string) Value { return Value{Kind: KindString, Text: s} }

// Object returns an object holding members in the given order.
func Object(members ...Member) Value {
	return Value{Kind: KindObject, Members: members}
}

// Array returns an array holding items in the given order.
func Array(items ...Value) Value {
	return Value{Kind: KindArray, Items: items}
}

// IsContainer reports whether v is an object or an array.
func (v Value) IsContainer() bool {
	return v.Kind == KindObject || v.Kind == KindArray
}

// objectBuilder collects members while keeping the first position of a
// repeated key and the last value written to it.
type objectBuilder struct {
	members []Member
	index   map[string]int
}

func (b *objectBuilder) set(key string, v Value) {
	if b.index == nil {
		b.index = make(map[string]int)
	}
	if i, ok := b.index[key]; ok {
		b.members[i].Value = v
		return
	}
	b.index[key] = len(b.members)
	b.members = append(b.members, Member{Key: key, Value: v})
}

func (b *objectBuilder) value() Value {
	return Object(b.members...)
}
