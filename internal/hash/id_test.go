package hash

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIDKnownValues(t *testing.T) {
	// xxHash64 with seed 0
	require.Equal(t, uint64(0xef46db3751d8e999), ID(""))
	require.Equal(t, uint64(0x4fdcca5ddb678139), ID("test"))
}

func TestIDDistinctPackageNames(t *testing.T) {
	names := []string{"glibc", "glib2", "lib32-glibc", "linux", "linux-lts", "linux-api-headers", "zstd", "zlib"}

	seen := make(map[uint64]string, len(names))
	for _, name := range names {
		id := ID(name)
		require.Equal(t, id, ID(name), "ID must be deterministic")

		prev, dup := seen[id]
		require.False(t, dup, "%s collides with %s", name, prev)
		seen[id] = name
	}
}

func TestDigest(t *testing.T) {
	d := NewDigest()
	d.WriteString("te")
	d.WriteString("st")
	require.Equal(t, ID("test"), d.Sum64())

	a := NewDigest()
	a.WriteField("ab")
	a.WriteField("c")

	b := NewDigest()
	b.WriteField("a")
	b.WriteField("bc")

	require.NotEqual(t, a.Sum64(), b.Sum64())
}

func BenchmarkID(b *testing.B) {
	names := make([]string, 64)
	for i := range names {
		names[i] = fmt.Sprintf("python-package-%03d", i)
	}

	i := 0
	for b.Loop() {
		ID(names[i%len(names)])
		i++
	}
}
