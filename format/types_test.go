package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompressionType_String(t *testing.T) {
	tests := []struct {
		typ  CompressionType
		want string
	}{
		{CompressionNone, "none"},
		{CompressionGzip, "gzip"},
		{CompressionZstd, "zstd"},
		{CompressionLZ4, "lz4"},
		{CompressionType(0xff), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			require.Equal(t, tt.want, tt.typ.String())

			got, ok := ParseCompressionType(tt.want)
			if tt.want == "unknown" {
				require.False(t, ok)
				return
			}
			require.True(t, ok)
			require.Equal(t, tt.typ, got)
		})
	}
}

func TestRecordFormat(t *testing.T) {
	require.Equal(t, "desc", FormatDesc.String())
	require.Equal(t, "srcinfo", FormatSrcinfo.String())
	require.Equal(t, "unknown", RecordFormat(0).String())

	f, ok := ParseRecordFormat(".SRCINFO")
	require.True(t, ok)
	require.Equal(t, FormatSrcinfo, f)

	_, ok = ParseRecordFormat("pkgbuild")
	require.False(t, ok)
}
