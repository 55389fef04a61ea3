package ir

import "strconv"

// Paths name a location in a document the way diffs are rendered: object
// fields and identity keys are dot-joined, array positions are bracketed.
// The document root is the empty path.

func FieldPath(prefix, field string) string {
	if prefix == "" {
		return field
	}
	return prefix + "." + field
}

func IndexPath(prefix string, i int) string {
	return prefix + "[" + strconv.Itoa(i) + "]"
}

// KeyPath renders an identity key. String keys that read as another type
// are quoted, so the string "1" and the number 1 render differently.
func KeyPath(prefix string, k IdentityKey) string {
	text := k.Text
	if k.Type == StringType && !isPlainKey(text) {
		text = strconv.Quote(text)
	}
	return FieldPath(prefix, text)
}

func isPlainKey(s string) bool {
	switch s {
	case "", "true", "false", "null":
		return false
	}
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return false
	}
	switch s[0] {
	case '"', '[', '{':
		return false
	}
	return true
}

// DisplayPath renders the root path as "$".
func DisplayPath(p string) string {
	if p == "" {
		return "$"
	}
	return p
}
