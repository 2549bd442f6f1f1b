package srcinfo

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/arloliu/pkgtext/errs"
	"github.com/arloliu/pkgtext/value"
	"github.com/stretchr/testify/require"
)

func TestChecksumsOrderAndTags(t *testing.T) {
	for name, q := range strategies(t, complexSrcinfo) {
		t.Run(name, func(t *testing.T) {
			items := slices.Collect(Checksums(q))
			require.Len(t, items, 9)

			var types []ChecksumType
			for _, item := range items {
				types = append(types, item.Type)
				require.True(t, item.Section.IsBase())
			}
			require.Equal(t, []ChecksumType{Md5, Md5, Md5, Sha256, Sha256, Sha256, Blake2b, Blake2b, Blake2b}, types)
			require.Equal(t, value.Architecture("x86_64"), items[4].Architecture)
		})
	}
}

func TestChecksumDecode(t *testing.T) {
	parsed, err := Parse(complexSrcinfo)
	require.NoError(t, err)

	for item := range Checksums(parsed) {
		sum, err := item.Decode()
		require.NoError(t, err)
		require.Equal(t, item.Type, sum.Type)

		if item.Value.IsSkip() {
			require.True(t, sum.IsSkip())
			require.Nil(t, sum.Bytes())

			continue
		}
		require.False(t, sum.IsSkip())
		require.Len(t, sum.Bytes(), item.Type.Size())
	}
}

func TestChecksumDecodeErrorsDoNotStopIteration(t *testing.T) {
	text := "pkgbase = a\nsha1sums = nothex\nsha1sums = abcd\nsha1sums = SKIP\nsha1sums = c83fe6387de57ce2ae60c558fc63ee90d415c40a\n"

	var decoded, failed int
	for item := range Checksums(NewForgetful(text)) {
		if _, err := item.Decode(); err != nil {
			failed++
			require.True(t, errorsIsAny(err, errs.ErrInvalidHex, errs.ErrInvalidHexLength))

			continue
		}
		decoded++
	}
	require.Equal(t, 2, failed)
	require.Equal(t, 2, decoded)
}

func errorsIsAny(err error, targets ...error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}

func TestChecksumVerify(t *testing.T) {
	sums := map[ChecksumType]string{
		Md5:     "5495cf22d770d93e912dc3fec4e00df1",
		Sha1:    "c83fe6387de57ce2ae60c558fc63ee90d415c40a",
		Sha224:  "dd8327b9e26049a9df1ac9d7d2efdbcb5d89a0f974d2739bc7554385",
		Sha256:  "d7e17f20ffb45f5c86d00514bbb664a28511c3efb9a6d7dc1f73b16418e7bc8a",
		Sha384:  "14988d2a3e80fe2fbca1ad986ad507bf64cd530c74498a97197bbcd0f77f89e4141f0dfaebeb4a67f1f866251564d709",
		Sha512:  "44c0fe59a1ba32b6c42f420be96133daeb08b132f2d4c0d7686b1b92a3e0a82c20c7217a859ff9705a1ad4cd9cf5a06aa4a8ac6bc671c43d49757cd242c0ee50",
		Blake2b: "5fda632a82ba2bb26430d3fc8735d84c1b2f7b646ac278b104d89d678b5ec443e931ed5ebf118b8a46067bb7dafe7167d70b400ea533de42761ceaca52fa6909",
	}

	for typ, hex := range sums {
		t.Run(typ.String(), func(t *testing.T) {
			require.Len(t, hex, typ.Size()*2)

			sum, err := ChecksumItem{Type: typ, Value: value.SkipOrHex(hex)}.Decode()
			require.NoError(t, err)
			require.NoError(t, sum.Verify(strings.NewReader(sourceContent)))

			err = sum.Verify(strings.NewReader("tampered"))
			require.ErrorIs(t, err, errs.ErrChecksumMismatch)
		})
	}

	skip, err := ChecksumItem{Type: Sha256, Value: value.Skip}.Decode()
	require.NoError(t, err)
	require.NoError(t, skip.Verify(strings.NewReader("anything")))
}

func TestSourceChecksums(t *testing.T) {
	parsed, err := Parse(complexSrcinfo)
	require.NoError(t, err)

	pairs := slices.Collect(SourceChecksums(parsed, BaseSection, Sha256))
	require.Len(t, pairs, 3)

	require.Equal(t, value.Source("https://example.com/complex-example-12.34.56.r789.tar.gz"), pairs[0].Source.Value)
	require.True(t, pairs[0].Checksum.Value.IsSkip())

	require.Equal(t, value.Source("complex-example-x86_64.bin"), pairs[1].Source.Value)
	require.Equal(t, value.Architecture("x86_64"), pairs[1].Checksum.Architecture)
	sum, err := pairs[1].Checksum.Decode()
	require.NoError(t, err)
	require.NoError(t, sum.Verify(strings.NewReader(sourceContent)))

	require.Equal(t, value.Architecture("aarch64"), pairs[2].Source.Architecture)
	require.Empty(t, slices.Collect(SourceChecksums(parsed, fooBin, Sha256)))
}

func TestParseChecksumType(t *testing.T) {
	for typ := range ChecksumTypes() {
		got, err := ParseChecksumType(typ.String())
		require.NoError(t, err)
		require.Equal(t, typ, got)
		require.Equal(t, ClassSharedMultiArch, typ.Field().Class())
	}

	_, err := ParseChecksumType("crc32")
	require.ErrorIs(t, err, errs.ErrUnknownChecksumType)
}
