package commands

import (
	"archive/tar"
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/arloliu/pkgtext/compress"
	"github.com/arloliu/pkgtext/errs"
	"github.com/arloliu/pkgtext/format"
)

const zstdDesc = `%FILENAME%
zstd-1.5.7-1-x86_64.pkg.tar.zst

%NAME%
zstd

%VERSION%
1.5.7-1

%CSIZE%
1024

%DEPENDS%
glibc
gcc-libs
`

const demoSrcinfo = `pkgbase = demo
	pkgdesc = Demo package
	pkgver = 1.0
	pkgrel = 1
	arch = x86_64
	source = demo.txt
	source_x86_64 = demo-x86_64.bin
	sha256sums = SKIP
	sha256sums_x86_64 = d7e17f20ffb45f5c86d00514bbb664a28511c3efb9a6d7dc1f73b16418e7bc8a

pkgname = demo-cli
	depends = demo-lib

pkgname = demo-lib
	pkgdesc = Demo library
`

// demoContent hashes to the sha256sums_x86_64 value of demoSrcinfo.
const demoContent = "complex-example source\n"

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCommand("test", "none", "today")
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())

	return out.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

// ==============================================================================
// vercmp
// ==============================================================================

func TestVercmp(t *testing.T) {
	out, err := run(t, "vercmp", "1:1.0-1", "2.0-1")
	require.NoError(t, err)
	require.Equal(t, "1\n", out)

	out, err = run(t, "vercmp", "1.2.3-1", "1_2_3-1")
	require.NoError(t, err)
	require.Equal(t, "0\n", out)

	_, err = run(t, "vercmp", "1.0", "1.0-1")
	require.ErrorIs(t, err, errs.ErrMissingRelease)

	_, err = run(t, "vercmp", "1.0-1")
	require.Error(t, err)
}

// ==============================================================================
// desc
// ==============================================================================

func TestDescText(t *testing.T) {
	path := writeFile(t, t.TempDir(), "desc", zstdDesc)

	out, err := run(t, "desc", "--field", "NAME", "-f", "%CSIZE%", "-f", "depends", path)
	require.NoError(t, err)
	require.Contains(t, out, "NAME           zstd\n")
	require.Contains(t, out, "(1024)")
	require.Contains(t, out, "DEPENDS        glibc\n               gcc-libs\n")
	require.NotContains(t, out, "VERSION")
}

func TestDescJSONAllStrategies(t *testing.T) {
	path := writeFile(t, t.TempDir(), "desc", zstdDesc)

	for _, strategy := range []string{"eager", "forgetful", "memo", "sync-memo"} {
		t.Run(strategy, func(t *testing.T) {
			out, err := run(t, "desc", "-o", "json", "--strategy", strategy, path)
			require.NoError(t, err)

			var got []fieldValues
			require.NoError(t, json.Unmarshal([]byte(out), &got))
			require.Equal(t, []fieldValues{
				{Field: "FILENAME", Values: []string{"zstd-1.5.7-1-x86_64.pkg.tar.zst"}},
				{Field: "NAME", Values: []string{"zstd"}},
				{Field: "VERSION", Values: []string{"1.5.7-1"}},
				{Field: "CSIZE", Values: []string{"1024"}},
				{Field: "DEPENDS", Values: []string{"glibc", "gcc-libs"}},
			}, got)
		})
	}
}

func TestDescStrict(t *testing.T) {
	path := writeFile(t, t.TempDir(), "desc", "%NAME%\nzstd\n\n%CUSTOM%\nvalue\n")

	out, err := run(t, "desc", "-f", "NAME", path)
	require.NoError(t, err)
	require.Contains(t, out, "zstd")

	_, err = run(t, "--strict", "desc", path)
	require.ErrorIs(t, err, errs.ErrUnknownField)
}

func TestDescBadFlags(t *testing.T) {
	path := writeFile(t, t.TempDir(), "desc", zstdDesc)

	_, err := run(t, "desc", "--strategy", "lazy", path)
	require.Error(t, err)

	_, err = run(t, "desc", "-f", "NOPE", path)
	require.ErrorContains(t, err, "unknown desc field")

	_, err = run(t, "-o", "xml", "desc", path)
	require.ErrorContains(t, err, "invalid flags")

	_, err = run(t, "desc", filepath.Join(t.TempDir(), "missing"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

// ==============================================================================
// srcinfo
// ==============================================================================

func TestSrcinfoWholeRecord(t *testing.T) {
	path := writeFile(t, t.TempDir(), ".SRCINFO", demoSrcinfo)

	out, err := run(t, "srcinfo", "-f", "pkgdesc", "-o", "json", path)
	require.NoError(t, err)

	var got []srcinfoValue
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Equal(t, []srcinfoValue{
		{Field: "pkgdesc", Value: "Demo package", Section: "pkgbase"},
		{Field: "pkgdesc", Value: "Demo library", Section: "pkgname:demo-lib"},
	}, got)
}

func TestSrcinfoSectionInheritance(t *testing.T) {
	path := writeFile(t, t.TempDir(), ".SRCINFO", demoSrcinfo)

	out, err := run(t, "srcinfo", "--section", "demo-cli", "-f", "pkgdesc", "-f", "depends", "-o", "yaml", path)
	require.NoError(t, err)

	var got []srcinfoValue
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	require.Equal(t, []srcinfoValue{
		{Field: "pkgdesc", Value: "Demo package", Section: "pkgbase", Inherited: true},
		{Field: "depends", Value: "demo-lib", Section: "pkgname:demo-cli"},
	}, got)

	out, err = run(t, "srcinfo", "--section", "demo-lib", "-f", "pkgdesc", path)
	require.NoError(t, err)
	require.Contains(t, out, "Demo library")
	require.NotContains(t, out, "inherited")
}

func TestSrcinfoArchSuffixInText(t *testing.T) {
	path := writeFile(t, t.TempDir(), ".SRCINFO", demoSrcinfo)

	out, err := run(t, "srcinfo", "-f", "source", "--strategy", "memo", path)
	require.NoError(t, err)
	require.Contains(t, out, "source_x86_64")
	require.Contains(t, out, "demo-x86_64.bin")
}

// ==============================================================================
// checksums and verify
// ==============================================================================

func TestChecksums(t *testing.T) {
	path := writeFile(t, t.TempDir(), ".SRCINFO", demoSrcinfo)

	out, err := run(t, "checksums", "-o", "json", path)
	require.NoError(t, err)

	var got []sourceSum
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)
	require.Equal(t, "demo.txt", got[0].Source)
	require.Equal(t, "SKIP", got[0].Checksum)
	require.Equal(t, "x86_64", got[1].Architecture)
	require.True(t, got[1].Valid)
}

func TestChecksumsInvalidDigest(t *testing.T) {
	text := "pkgbase = demo\n\tsource = a.txt\n\tmd5sums = nothex\n"
	path := writeFile(t, t.TempDir(), ".SRCINFO", text)

	out, err := run(t, "checksums", path)
	require.NoError(t, err)
	require.Contains(t, out, "(invalid)")

	_, err = run(t, "--strict", "checksums", path)
	require.Error(t, err)
}

func TestVerify(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, ".SRCINFO", demoSrcinfo)
	writeFile(t, dir, "demo-x86_64.bin", demoContent)

	out, err := run(t, "verify", "--dir", dir, "--arch", "x86_64", "-o", "json", path)
	require.NoError(t, err)

	var got []verifyResult
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Equal(t, []verifyResult{
		{Source: "demo.txt", File: "demo.txt", Type: "sha256", Status: statusSkipped},
		{Source: "demo-x86_64.bin", File: "demo-x86_64.bin", Type: "sha256", Status: statusOK},
	}, got)

	// other architectures only check unqualified sources
	out, err = run(t, "verify", "--dir", dir, "--arch", "aarch64", path)
	require.NoError(t, err)
	require.NotContains(t, out, "demo-x86_64.bin")
}

func TestVerifyFailures(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, ".SRCINFO", demoSrcinfo)

	out, err := run(t, "verify", "--dir", dir, "--arch", "x86_64", path)
	require.ErrorIs(t, err, errs.ErrChecksumMismatch)
	require.Contains(t, out, statusMissing)

	writeFile(t, dir, "demo-x86_64.bin", "tampered")
	out, err = run(t, "verify", "--dir", dir, "--arch", "x86_64", path)
	require.ErrorIs(t, err, errs.ErrChecksumMismatch)
	require.Contains(t, out, statusMismatch)

	_, err = run(t, "verify", "--dir", filepath.Join(dir, "nope"), path)
	require.ErrorContains(t, err, "invalid flags")
}

func TestVerifyRejectsNamesOutsideDir(t *testing.T) {
	parent := t.TempDir()
	dir := filepath.Join(parent, "src")
	require.NoError(t, os.Mkdir(dir, 0o700))

	// the file exists and matches, but lies outside --dir
	writeFile(t, parent, "secret.txt", demoContent)
	text := "pkgbase = demo\n\tpkgver = 1.0\n\tpkgrel = 1\n" +
		"\tsource = ../secret.txt::https://example.org/secret.txt\n" +
		"\tsha256sums = d7e17f20ffb45f5c86d00514bbb664a28511c3efb9a6d7dc1f73b16418e7bc8a\n"
	path := writeFile(t, dir, ".SRCINFO", text)

	out, err := run(t, "verify", "--dir", dir, "-o", "json", path)
	require.ErrorIs(t, err, errs.ErrChecksumMismatch)

	var got []verifyResult
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Equal(t, []verifyResult{{
		Source: "../secret.txt::https://example.org/secret.txt",
		File:   "../secret.txt",
		Type:   "sha256",
		Status: statusInvalid,
	}}, got)
}

// ==============================================================================
// db
// ==============================================================================

func writeDB(t *testing.T, typ format.CompressionType, records map[string]string) string {
	t.Helper()

	var buf bytes.Buffer
	tw := tar.NewWriter(&buf)
	for _, dir := range []string{"zstd-1.5.7-1", "glibc-2.41-1", "broken-1-1"} {
		body, ok := records[dir]
		if !ok {
			continue
		}
		require.NoError(t, tw.WriteHeader(&tar.Header{
			Name: dir + "/desc", Mode: 0o644, Size: int64(len(body)), Typeflag: tar.TypeReg,
		}))
		_, err := tw.Write([]byte(body))
		require.NoError(t, err)
	}
	require.NoError(t, tw.Close())

	codec, err := compress.GetCodec(typ)
	require.NoError(t, err)
	data, err := codec.Compress(buf.Bytes())
	require.NoError(t, err)

	return writeFile(t, t.TempDir(), "core.db", string(data))
}

var coreRecords = map[string]string{
	"zstd-1.5.7-1": zstdDesc,
	"glibc-2.41-1": "%NAME%\nglibc\n\n%VERSION%\n2.41-1\n\n%CSIZE%\n10485760\n",
}

func TestDBList(t *testing.T) {
	path := writeDB(t, format.CompressionGzip, coreRecords)

	out, err := run(t, "db", "-o", "json", path)
	require.NoError(t, err)

	var got []dbPackage
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Equal(t, []dbPackage{
		{Name: "zstd", Version: "1.5.7-1", Size: 1024},
		{Name: "glibc", Version: "2.41-1", Size: 10485760},
	}, got)

	out, err = run(t, "db", path)
	require.NoError(t, err)
	require.Contains(t, out, "10 MB")
}

func TestDBPackage(t *testing.T) {
	path := writeDB(t, format.CompressionZstd, coreRecords)

	out, err := run(t, "db", "--package", "zstd", "-f", "VERSION", path)
	require.NoError(t, err)
	require.Equal(t, "VERSION        1.5.7-1\n", out)

	_, err = run(t, "db", "--package", "bash", path)
	require.ErrorContains(t, err, "not found")
}

func TestDBCompressionFlag(t *testing.T) {
	path := writeDB(t, format.CompressionLZ4, coreRecords)

	_, err := run(t, "db", "--compression", "lz4", path)
	require.NoError(t, err)

	_, err = run(t, "db", "--compression", "gzip", path)
	require.Error(t, err)

	_, err = run(t, "db", "--compression", "xz", path)
	require.ErrorContains(t, err, "invalid flags")
}

func TestDBCheck(t *testing.T) {
	records := map[string]string{
		"zstd-1.5.7-1": zstdDesc,
		"broken-1-1":   "%NAME%\nbroken\n\n%NAME%\nagain\n",
	}
	path := writeDB(t, format.CompressionNone, records)

	_, err := run(t, "db", path)
	require.NoError(t, err)

	_, err = run(t, "db", "--check", "--workers", "2", path)
	require.ErrorIs(t, err, errs.ErrDuplicateField)
}
