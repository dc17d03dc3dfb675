package jsondoc

// Kind identifies which JSON variant a Value holds.
type Kind int

const (
	Null Kind = iota
	Bool
	Number
	String
	Array
	Object
)

// String returns the JSON type name, as used in error messages.
func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "boolean"
	case Number:
		return "number"
	case String:
		return "string"
	case Array:
		return "array"
	case Object:
		return "object"
	default:
		return "unknown"
	}
}

// Member is a single key/value pair of an object.
type Member struct {
	Key   string
	Value *Value
}

// Value is one node of a JSON document. Object members keep the order in
// which they were first inserted, so a document round-trips with its field
// order intact.
type Value struct {
	kind    Kind
	str     string
	num     string // number literal as it appeared in the source
	boolean bool
	items   []*Value
	members []Member
}

// NewNull returns a null value.
func NewNull() *Value {
	return &Value{kind: Null}
}

// NewBool returns a boolean value.
func NewBool(b bool) *Value {
	return &Value{kind: Bool, boolean: b}
}

// NewNumber returns a number value holding the given literal. The literal
// is emitted verbatim on encode and must be a valid JSON number token.
func NewNumber(literal string) *Value {
	return &Value{kind: Number, num: literal}
}

// NewString returns a string value.
func NewString(s string) *Value {
	return &Value{kind: String, str: s}
}

// NewArray returns an empty array value.
func NewArray() *Value {
	return &Value{kind: Array}
}

// NewObject returns an empty object value.
func NewObject() *Value {
	return &Value{kind: Object}
}

// Kind reports which JSON variant v holds.
func (v *Value) Kind() Kind {
	return v.kind
}

// IsObject reports whether v is an object.
func (v *Value) IsObject() bool {
	return v.kind == Object
}

// StringValue returns the string payload, or "" if v is not a string.
func (v *Value) StringValue() string {
	if v.kind != String {
		return ""
	}
	return v.str
}

// NumberLiteral returns the number literal, or "" if v is not a number.
func (v *Value) NumberLiteral() string {
	if v.kind != Number {
		return ""
	}
	return v.num
}

// BoolValue returns the boolean payload, or false if v is not a boolean.
func (v *Value) BoolValue() bool {
	return v.kind == Bool && v.boolean
}

// Items returns the elements of an array value, or nil for other kinds.
func (v *Value) Items() []*Value {
	if v.kind != Array {
		return nil
	}
	return v.items
}

// Append adds an element to an array value.
func (v *Value) Append(item *Value) {
	if v.kind != Array {
		panic("jsondoc: Append on non-array value")
	}
	v.items = append(v.items, item)
}

// Members returns the object members in insertion order, or nil for other
// kinds. The returned slice is the live backing store; callers must not
// mutate it.
func (v *Value) Members() []Member {
	if v.kind != Object {
		return nil
	}
	return v.members
}

// Len returns the number of object members or array elements.
func (v *Value) Len() int {
	switch v.kind {
	case Object:
		return len(v.members)
	case Array:
		return len(v.items)
	default:
		return 0
	}
}

// Get returns the value for key, or nil if v is not an object or has no
// such member.
func (v *Value) Get(key string) *Value {
	if v.kind != Object {
		return nil
	}
	for i := range v.members {
		if v.members[i].Key == key {
			return v.members[i].Value
		}
	}
	return nil
}

// Has reports whether the object has a member with the given key.
func (v *Value) Has(key string) bool {
	return v.Get(key) != nil
}

// Keys returns the object's keys in insertion order.
func (v *Value) Keys() []string {
	if v.kind != Object {
		return nil
	}
	keys := make([]string, len(v.members))
	for i := range v.members {
		keys[i] = v.members[i].Key
	}
	return keys
}

// Set stores val under key. An existing member is overwritten in place,
// keeping its position; a new key is appended at the end. This mirrors how
// ordered mappings behave in most languages, so repeated edits do not
// reorder the document.
func (v *Value) Set(key string, val *Value) {
	if v.kind != Object {
		panic("jsondoc: Set on non-object value")
	}
	for i := range v.members {
		if v.members[i].Key == key {
			v.members[i].Value = val
			return
		}
	}
	v.members = append(v.members, Member{Key: key, Value: val})
}

// Delete removes the member with the given key, keeping the order of the
// remaining members. It reports whether a member was removed.
func (v *Value) Delete(key string) bool {
	if v.kind != Object {
		return false
	}
	for i := range v.members {
		if v.members[i].Key == key {
			v.members = append(v.members[:i], v.members[i+1:]...)
			return true
		}
	}
	return false
}
