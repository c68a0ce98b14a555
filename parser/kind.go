package parser

import "fmt"

// Kind is the structural kind of a statement. It decides the terminator and
// how block depth is tracked.
type Kind int

const (
	Plain Kind = iota
	Wrapped
	PackageBody
	ProceduralBlock
	JavaSource
	ViewWithInlineFunction
)

var kindNames = map[Kind]string{
	Plain:                  "plain",
	Wrapped:                "wrapped",
	PackageBody:            "package-body",
	ProceduralBlock:        "procedural-block",
	JavaSource:             "java-source",
	ViewWithInlineFunction: "view-with-function",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return Plain, fmt.Errorf("unknown statement kind: %s", s)
}

func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k *Kind) UnmarshalText(b []byte) error {
	parsed, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// CanExecuteInTransaction is true for every kind of this dialect.
func (k Kind) CanExecuteInTransaction() bool {
	return true
}
