package pkgtext

import (
	"archive/tar"
	"bytes"
	"slices"
	"testing"

	"github.com/arloliu/pkgtext/desc"
	"github.com/arloliu/pkgtext/errs"
	"github.com/arloliu/pkgtext/format"
	"github.com/arloliu/pkgtext/srcinfo"
	"github.com/arloliu/pkgtext/value"
	"github.com/stretchr/testify/require"
)

const sampleDesc = `%FILENAME%
zstd-1.5.7-1-x86_64.pkg.tar.zst

%NAME%
zstd

%VERSION%
1.5.7-1

%DEPENDS%
glibc
gcc-libs
zlib
`

const sampleSrcinfo = `pkgbase = example
	pkgver = 1.0.0
	pkgrel = 1
	pkgdesc = Base description
	arch = x86_64
	depends = glibc

pkgname = example-cli
	depends = example-lib

pkgname = example-lib
	pkgdesc = Library part
`

var allStrategies = []Strategy{StrategyEager, StrategyForgetful, StrategyMemo, StrategySyncMemo}

func TestQueryDescStrategies(t *testing.T) {
	for _, s := range allStrategies {
		t.Run(s.String(), func(t *testing.T) {
			q, err := QueryDesc(sampleDesc, s)
			require.NoError(t, err)

			name, ok := desc.Access(q).Name()
			require.True(t, ok)
			require.Equal(t, value.Name("zstd"), name)

			deps, ok := desc.Access(q).Dependencies()
			require.True(t, ok)
			require.Equal(t, 3, deps.Len())
		})
	}

	_, err := QueryDesc(sampleDesc, Strategy(99))
	require.ErrorIs(t, err, errs.ErrInvalidOption)
}

func TestQuerySrcinfoStrategies(t *testing.T) {
	for _, s := range allStrategies {
		t.Run(s.String(), func(t *testing.T) {
			q, err := QuerySrcinfo(sampleSrcinfo, s)
			require.NoError(t, err)

			view := srcinfo.Access(q).Section(srcinfo.Derivative("example-cli"))
			d, ok := view.Description()
			require.True(t, ok)
			require.Equal(t, value.Description("Base description"), d)

			var deps []string
			for item := range q.Query(srcinfo.Dependencies) {
				deps = append(deps, item.Value)
			}
			require.Equal(t, []string{"glibc", "example-lib"}, deps)
		})
	}

	_, err := QuerySrcinfo(sampleSrcinfo, Strategy(0))
	require.ErrorIs(t, err, errs.ErrInvalidOption)
}

func TestParseWrappers(t *testing.T) {
	d, err := ParseDesc(sampleDesc)
	require.NoError(t, err)
	v, ok := desc.Access(d).Version()
	require.True(t, ok)
	require.Equal(t, value.Version("1.5.7-1"), v)

	s, err := ParseSrcinfo(sampleSrcinfo)
	require.NoError(t, err)
	require.Equal(t, []srcinfo.Section{
		srcinfo.BaseSection, srcinfo.Derivative("example-cli"), srcinfo.Derivative("example-lib"),
	}, s.Sections())

	_, err = ParseDesc("")
	require.ErrorIs(t, err, errs.ErrEmptyInput)
}

func TestParseStrategy(t *testing.T) {
	for _, s := range allStrategies {
		got, err := ParseStrategy(s.String())
		require.NoError(t, err)
		require.Equal(t, s, got)
	}

	_, err := ParseStrategy("lazy")
	require.ErrorIs(t, err, errs.ErrInvalidOption)
	require.Equal(t, "unknown", Strategy(42).String())
}

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.0-1", "1.0-1", 0},
		{"1:1.0-1", "2.0-1", 1},
		{"1.0a-1", "1.0-1", 1},
		{"1.0-2", "1.0-10", -1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			got, err := CompareVersions(tt.a, tt.b)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}

	_, err := CompareVersions("1.0", "1.0-1")
	require.ErrorIs(t, err, errs.ErrMissingRelease)
}

func TestDetectFormat(t *testing.T) {
	require.Equal(t, format.FormatDesc, DetectFormat(sampleDesc))
	require.Equal(t, format.FormatSrcinfo, DetectFormat(sampleSrcinfo))
	require.Equal(t, format.FormatSrcinfo, DetectFormat("# Generated by makepkg\n\npkgbase = x\n"))
	require.Equal(t, format.RecordFormat(0), DetectFormat("\n  \n"))
}

func TestLoadDatabase(t *testing.T) {
	var buf bytes.Buffer
	tw := tar.NewWriter(&buf)
	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name: "zstd-1.5.7-1/desc", Mode: 0o644, Size: int64(len(sampleDesc)), Typeflag: tar.TypeReg,
	}))
	_, err := tw.Write([]byte(sampleDesc))
	require.NoError(t, err)
	require.NoError(t, tw.Close())

	db, err := LoadDatabase(&buf)
	require.NoError(t, err)

	var names []value.Name
	for e := range db.Entries() {
		names = append(names, e.Name)
	}
	require.Equal(t, []value.Name{"zstd"}, names)
	require.True(t, slices.Contains(names, "zstd"))
}

func TestPackageID(t *testing.T) {
	require.Equal(t, PackageID("zstd"), PackageID("zstd"))
	require.NotEqual(t, PackageID("zstd"), PackageID("zlib"))
}
