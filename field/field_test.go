package field

import (
	"errors"
	"testing"

	"github.com/arloliu/pkgtext/errs"
	"github.com/stretchr/testify/require"
)

// ==============================================================================
// Flat record tokens
// ==============================================================================

func TestParseDesc(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		want  string
		kind  TokenizeErrorKind
		index int
		char  rune
	}{
		{name: "valid", line: "%NAME%", want: "NAME"},
		{name: "long", line: "%MAKEDEPENDS%", want: "MAKEDEPENDS"},
		{name: "missing start", line: "NAME%", kind: IncorrectStartingCharacter},
		{name: "empty line", line: "", kind: IncorrectStartingCharacter},
		{name: "missing end", line: "%NAME", kind: IncorrectEndingCharacter},
		{name: "single delimiter", line: "%", kind: IncorrectEndingCharacter},
		{name: "empty name", line: "%%", kind: Empty},
		{name: "lowercase", line: "%NaME%", kind: NotASCIIUppercase, index: 1, char: 'a'},
		{name: "digits inside", line: "%SHA256SUM%", want: "SHA256SUM"},
		{name: "leading digit", line: "%5SUM%", kind: NotASCIIUppercase, index: 0, char: '5'},
		{name: "underscore", line: "%A_B%", kind: NotASCIIUppercase, index: 1, char: '_'},
		{name: "unicode", line: "%ÄB%", kind: NotASCIIUppercase, index: 0, char: 'Ä'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDesc(tt.line)
			if tt.kind == 0 {
				require.NoError(t, err)
				require.Equal(t, tt.want, got)

				return
			}

			var tokErr *TokenizeError
			require.ErrorAs(t, err, &tokErr)
			require.Equal(t, tt.kind, tokErr.Kind)
			require.Equal(t, tt.index, tokErr.Index)
			require.Equal(t, tt.char, tokErr.Char)
		})
	}
}

func TestParseDescSentinels(t *testing.T) {
	_, err := ParseDesc("%lower%")
	require.ErrorIs(t, err, errs.ErrNotASCIIUppercase)
	require.Contains(t, err.Error(), "'l'")

	_, err = ParseDesc("%%")
	require.True(t, errors.Is(err, errs.ErrEmptyFieldName))
}

func TestIsDescField(t *testing.T) {
	require.True(t, IsDescField("  %DESC%\r\n"))
	require.False(t, IsDescField("gnome-shell\n"))
	require.False(t, IsDescField("\n"))
}

// ==============================================================================
// Sectioned record tokens
// ==============================================================================

func TestParseSrcinfo(t *testing.T) {
	tests := []struct {
		line  string
		raw   Raw
		value string
	}{
		{"pkgname = foo", Raw{Name: "pkgname"}, "foo"},
		{"depends_x86_64 = glibc>=2.0", Raw{Name: "depends", Architecture: "x86_64"}, "glibc>=2.0"},
		{"source_aarch64=url=with=equals", Raw{Name: "source", Architecture: "aarch64"}, "url=with=equals"},
		{"pkgdesc = ", Raw{Name: "pkgdesc"}, ""},
		{"sha256sums_x86_64 = SKIP", Raw{Name: "sha256sums", Architecture: "x86_64"}, "SKIP"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			raw, value, err := ParseSrcinfo(tt.line)
			require.NoError(t, err)
			require.Equal(t, tt.raw, raw)
			require.Equal(t, tt.value, value)
		})
	}
}

func TestParseSrcinfoErrors(t *testing.T) {
	_, _, err := ParseSrcinfo("no separator here")
	require.ErrorIs(t, err, errs.ErrMissingSeparator)

	_, _, err = ParseSrcinfo(" = value")
	require.ErrorIs(t, err, errs.ErrEmptyFieldName)

	_, _, err = ParseSrcinfo("_x86_64 = value")
	require.ErrorIs(t, err, errs.ErrEmptyFieldName)
}

func TestRaw(t *testing.T) {
	require.Equal(t, "depends_i686", Raw{Name: "depends", Architecture: "i686"}.String())
	require.Equal(t, "url", Raw{Name: "url"}.String())
	require.False(t, Raw{Name: "url"}.HasArchitecture())
}

func TestIsSrcinfoSkippable(t *testing.T) {
	require.True(t, IsSrcinfoSkippable(""))
	require.True(t, IsSrcinfoSkippable("# comment"))
	require.False(t, IsSrcinfoSkippable("pkgname = x"))
}
