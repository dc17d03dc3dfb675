package jsondoc

import (
	"bytes"
	"io"
)

// Encode writes v to w as compact JSON.
func (v *Value) Encode(w io.Writer) error {
	return v.encode(w, "", "")
}

// EncodeIndent writes v to w as indented JSON in the style of
// json.MarshalIndent: each member or element on its own line, nested one
// indent deeper, with prefix prepended to every line after the first. No
// trailing newline is written.
func (v *Value) EncodeIndent(w io.Writer, prefix, indent string) error {
	return v.encode(w, prefix, indent)
}

func (v *Value) encode(w io.Writer, prefix, indent string) error {
	var buf bytes.Buffer
	v.appendJSON(&buf, prefix, indent, 0)
	_, err := w.Write(buf.Bytes())
	return err
}

func (v *Value) appendJSON(buf *bytes.Buffer, prefix, indent string, depth int) {
	switch v.kind {
	case Null:
		buf.WriteString("null")
	case Bool:
		if v.boolean {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case Number:
		buf.WriteString(v.num)
	case String:
		appendString(buf, v.str)
	case Array:
		if len(v.items) == 0 {
			buf.WriteString("[]")
			return
		}
		buf.WriteByte('[')
		for i, item := range v.items {
			if i > 0 {
				buf.WriteByte(',')
			}
			appendNewline(buf, prefix, indent, depth+1)
			item.appendJSON(buf, prefix, indent, depth+1)
		}
		appendNewline(buf, prefix, indent, depth)
		buf.WriteByte(']')
	case Object:
		if len(v.members) == 0 {
			buf.WriteString("{}")
			return
		}
		buf.WriteByte('{')
		for i := range v.members {
			if i > 0 {
				buf.WriteByte(',')
			}
			appendNewline(buf, prefix, indent, depth+1)
			appendString(buf, v.members[i].Key)
			buf.WriteByte(':')
			if indent != "" {
				buf.WriteByte(' ')
			}
			v.members[i].Value.appendJSON(buf, prefix, indent, depth+1)
		}
		appendNewline(buf, prefix, indent, depth)
		buf.WriteByte('}')
	}
}

func appendNewline(buf *bytes.Buffer, prefix, indent string, depth int) {
	if indent == "" {
		return
	}
	buf.WriteByte('\n')
	buf.WriteString(prefix)
	for i := 0; i < depth; i++ {
		buf.WriteString(indent)
	}
}

const hexDigits = "0123456789abcdef"

// appendString writes s as a quoted JSON string. Unlike encoding/json it
// does not HTML-escape & < >, so shell commands such as "a && b" come out
// the way they went in. Multi-byte UTF-8 sequences pass through unescaped.
func appendString(buf *bytes.Buffer, s string) {
	buf.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"':
			buf.WriteString(`\"`)
		case c == '\\':
			buf.WriteString(`\\`)
		case c == '\n':
			buf.WriteString(`\n`)
		case c == '\r':
			buf.WriteString(`\r`)
		case c == '\t':
			buf.WriteString(`\t`)
		case c == '\b':
			buf.WriteString(`\b`)
		case c == '\f':
			buf.WriteString(`\f`)
		case c < 0x20:
			buf.WriteString(`\u00`)
			buf.WriteByte(hexDigits[c>>4])
			buf.WriteByte(hexDigits[c&0xf])
		default:
			buf.WriteByte(c)
		}
	}
	buf.WriteByte('"')
}
