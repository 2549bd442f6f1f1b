package value

import (
	"fmt"
	"strings"

	"github.com/arloliu/pkgtext/errs"
)

type (
	// Dependency is a dependency declaration such as "glibc>=2.0".
	Dependency string
	// DependencyName is the name part of a Dependency.
	DependencyName string
	// DependencySpecification is the version constraint of a Dependency, such as ">=2.0".
	DependencySpecification string
	// DependencyReason explains why an optional dependency is useful.
	DependencyReason string
	// DependencyAndReason is an optional dependency declaration such as "git: for clones".
	DependencyAndReason string
)

// Operator is a version constraint operator.
type Operator int8

const (
	Less           Operator = -2
	LessOrEqual    Operator = -1
	Equal          Operator = 0
	GreaterOrEqual Operator = 1
	Greater        Operator = 2
)

// operators lists the spellings, the "or equal" forms before their prefixes.
var operators = [...]struct {
	op    Operator
	token string
}{
	{LessOrEqual, "<="},
	{GreaterOrEqual, ">="},
	{Less, "<"},
	{Equal, "="},
	{Greater, ">"},
}

func (o Operator) String() string {
	for _, candidate := range operators {
		if candidate.op == o {
			return candidate.token
		}
	}

	return "?"
}

// Satisfies reports whether a comparison result satisfies the operator.
//
// Parameters:
//   - cmp: Result of comparing the candidate version with the constraint version (-1, 0, 1)
func (o Operator) Satisfies(cmp int) bool {
	switch o {
	case Less:
		return cmp < 0
	case LessOrEqual:
		return cmp <= 0
	case Equal:
		return cmp == 0
	case GreaterOrEqual:
		return cmp >= 0
	case Greater:
		return cmp > 0
	default:
		return false
	}
}

func isDependencyNameChar(index int, ch rune) bool {
	switch {
	case ch >= 'a' && ch <= 'z', ch >= '0' && ch <= '9':
		return true
	case index == 0 && (ch == '-' || ch == '.'):
		return false
	case ch == '@', ch == '.', ch == '_', ch == '+', ch == '-':
		return true
	default:
		return false
	}
}

// ParseDependencyName splits the longest valid name off the front of input.
//
// Returns the name and the remaining text.
func ParseDependencyName(input string) (DependencyName, string) {
	for i, ch := range input {
		if !isDependencyNameChar(i, ch) {
			return DependencyName(input[:i]), input[i:]
		}
	}

	return DependencyName(input), ""
}

// Validate checks that the whole name consists of valid characters.
func (n DependencyName) Validate() error {
	name, rest := ParseDependencyName(string(n))
	if name == "" || rest != "" {
		return fmt.Errorf("%w: %q", errs.ErrInvalidDependencyName, string(n))
	}

	return nil
}

// Components splits the dependency into its name and version constraint.
func (d Dependency) Components() (DependencyName, DependencySpecification) {
	name, rest := ParseDependencyName(string(d))
	return name, DependencySpecification(rest)
}

// Components splits the constraint into operator and version.
//
// Returns false when the specification does not start with an operator.
func (s DependencySpecification) Components() (Operator, Version, bool) {
	for _, candidate := range operators {
		if rest, ok := strings.CutPrefix(string(s), candidate.token); ok {
			return candidate.op, Version(rest), true
		}
	}

	return 0, "", false
}

// Components splits an optional dependency on ": " into the dependency and its reason.
// The reason is empty when absent.
func (d DependencyAndReason) Components() (Dependency, DependencyReason) {
	dep, reason, _ := strings.Cut(string(d), ": ")
	return Dependency(dep), DependencyReason(reason)
}
