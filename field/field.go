package field

import (
	"fmt"
	"strings"

	"github.com/arloliu/pkgtext/errs"
)

const (
	descDelimiter  = '%'
	archSeparator  = '_'
	valueSeparator = '='
)

// Raw is a field token as it appears in the text, before it is matched against a catalog.
type Raw struct {
	// Name is the field name without any architecture suffix.
	Name string
	// Architecture is the suffix after the first '_', empty when absent.
	Architecture string
}

// HasArchitecture reports whether the token carries an architecture suffix.
func (r Raw) HasArchitecture() bool {
	return r.Architecture != ""
}

// String returns the token the way it is written in a sectioned record.
func (r Raw) String() string {
	if r.HasArchitecture() {
		return r.Name + string(archSeparator) + r.Architecture
	}

	return r.Name
}

// TokenizeErrorKind classifies a TokenizeError.
type TokenizeErrorKind uint8

const (
	IncorrectStartingCharacter TokenizeErrorKind = iota + 1
	IncorrectEndingCharacter
	Empty
	NotASCIIUppercase
	MissingSeparator
)

// TokenizeError describes why a line is not a field token.
type TokenizeError struct {
	Kind TokenizeErrorKind
	// Index is the character index inside the name, set for NotASCIIUppercase.
	Index int
	// Char is the offending character, set for NotASCIIUppercase.
	Char rune
}

var _ error = (*TokenizeError)(nil)

func (e *TokenizeError) Error() string {
	if e.Kind == NotASCIIUppercase {
		return fmt.Sprintf("%s: character %q at index %d", e.Unwrap(), e.Char, e.Index)
	}

	return e.Unwrap().Error()
}

// Unwrap returns the sentinel error matching the kind.
func (e *TokenizeError) Unwrap() error {
	switch e.Kind {
	case IncorrectStartingCharacter:
		return errs.ErrIncorrectStartingCharacter
	case IncorrectEndingCharacter:
		return errs.ErrIncorrectEndingCharacter
	case Empty:
		return errs.ErrEmptyFieldName
	case NotASCIIUppercase:
		return errs.ErrNotASCIIUppercase
	default:
		return errs.ErrMissingSeparator
	}
}

// ParseDesc tokenizes a flat record field line such as "%NAME%".
//
// The line must already be trimmed of surrounding whitespace. The name must start with an
// ASCII uppercase letter and continue with ASCII uppercase letters or digits. Digits go
// beyond the plain uppercase rule of the format so that %MD5SUM% and %SHA256SUM%, which
// repo-add writes, tokenize as fields; a strictly uppercase tokenizer would fold their
// values into the preceding field.
//
// Parameters:
//   - line: Trimmed candidate field line
//
// Returns:
//   - string: The field name between the delimiters
//   - error: *TokenizeError when the line is not a field line
func ParseDesc(line string) (string, error) {
	if len(line) == 0 || line[0] != descDelimiter {
		return "", &TokenizeError{Kind: IncorrectStartingCharacter}
	}
	line = line[1:]

	if len(line) == 0 || line[len(line)-1] != descDelimiter {
		return "", &TokenizeError{Kind: IncorrectEndingCharacter}
	}
	name := line[:len(line)-1]

	if name == "" {
		return "", &TokenizeError{Kind: Empty}
	}

	index := 0
	for _, ch := range name {
		// digits are allowed after the first character: %MD5SUM%, %SHA256SUM%
		if (ch < 'A' || ch > 'Z') && (index == 0 || ch < '0' || ch > '9') {
			return "", &TokenizeError{Kind: NotASCIIUppercase, Index: index, Char: ch}
		}
		index++
	}

	return name, nil
}

// IsDescField reports whether a line, after trimming, is a flat record field line.
func IsDescField(line string) bool {
	_, err := ParseDesc(strings.TrimSpace(line))
	return err == nil
}

// ParseSrcinfo tokenizes a sectioned record line such as "depends_x86_64 = glibc".
//
// The left side of the first '=' is trimmed and split on its first '_' into name and
// architecture; the right side is left-trimmed and returned as the value.
//
// Parameters:
//   - line: Trimmed, non-blank, non-comment line
//
// Returns:
//   - Raw: The field token
//   - string: The value, possibly empty
//   - error: *TokenizeError with kind MissingSeparator or Empty
func ParseSrcinfo(line string) (Raw, string, error) {
	sep := strings.IndexByte(line, valueSeparator)
	if sep < 0 {
		return Raw{}, "", &TokenizeError{Kind: MissingSeparator}
	}

	key := strings.TrimSpace(line[:sep])
	value := strings.TrimLeft(line[sep+1:], " \t")
	if key == "" {
		return Raw{}, "", &TokenizeError{Kind: Empty}
	}

	raw := Raw{Name: key}
	if i := strings.IndexByte(key, archSeparator); i >= 0 {
		raw.Name = key[:i]
		raw.Architecture = key[i+1:]
	}
	if raw.Name == "" {
		return Raw{}, "", &TokenizeError{Kind: Empty}
	}

	return raw, value, nil
}

// IsSrcinfoSkippable reports whether a trimmed sectioned line carries no data:
// it is blank or a '#' comment.
func IsSrcinfoSkippable(line string) bool {
	return line == "" || line[0] == '#'
}
