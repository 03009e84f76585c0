package coerce

// Enum is implemented by ordinal enumeration members: named constants
// belonging to a closed set, ordered by declaration. Ordinal is the
// member's zero based position in that order.
type Enum interface {
	Name() string
	Ordinal() int
}

// Backed is implemented by enumeration members that additionally carry a
// scalar payload. The payload is an int or a string by contract.
type Backed interface {
	Enum
	Value() any
}

// enumString reduces a member to its string form. A string payload wins;
// a numeric payload yields the symbolic name instead.
func enumString(member Enum) string {
	if backed, ok := member.(Backed); ok {
		if text, ok := backed.Value().(string); ok {
			return text
		}
	}
	return member.Name()
}

// enumInt reduces a member to its numeric form: the numeric payload when
// present, the ordinal index otherwise.
func enumInt(member Enum) int {
	if backed, ok := member.(Backed); ok {
		switch payload := backed.Value().(type) {
		case int:
			return payload
		case int64:
			return int(payload)
		}
	}
	return member.Ordinal()
}
