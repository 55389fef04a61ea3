package mergeop

import "fmt"

type Kind int

const (
	RemoveKind Kind = iota
	SetKind
	EnterObjectKind
	EnterPositionArrayKind
	EnterIdentityArrayKind
)

var kindNames = map[Kind]string{
	RemoveKind:             "remove",
	SetKind:                "set",
	EnterObjectKind:        "object",
	EnterPositionArrayKind: "position-array",
	EnterIdentityArrayKind: "identity-array",
}

func (k Kind) String() string {
	s, ok := kindNames[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	for kk, s := range kindNames {
		if s == string(d) {
			*k = kk
			return nil
		}
	}
	return fmt.Errorf("unrecognized op kind %q", d)
}

// IsStructural is true for the Enter kinds.
func (k Kind) IsStructural() bool {
	switch k {
	case EnterObjectKind, EnterPositionArrayKind, EnterIdentityArrayKind:
		return true
	default:
		return false
	}
}
