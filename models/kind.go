package models

// Kind is the expected type of a [Field] value.
type Kind int

const (
	// KindAny keeps the value exactly as found in the configuration.
	KindAny Kind = iota
	KindString
	KindInt
	KindFloat
	KindBool
	// KindDuration accepts Go duration strings ("30s", "1h") and integer nanoseconds.
	KindDuration
	// KindStringSlice accepts sequences and comma separated strings.
	KindStringSlice
	// KindMap expects a nested mapping.
	KindMap
)

var kindNames = map[Kind]string{
	KindAny:         "any",
	KindString:      "string",
	KindInt:         "int",
	KindFloat:       "float",
	KindBool:        "bool",
	KindDuration:    "duration",
	KindStringSlice: "[]string",
	KindMap:         "map",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}
