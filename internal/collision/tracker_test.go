package collision

import (
	"testing"

	"github.com/arloliu/pkgtext/errs"
	"github.com/arloliu/pkgtext/internal/hash"
	"github.com/stretchr/testify/require"
)

func TestNewTracker(t *testing.T) {
	tracker := NewTracker(0)

	require.NotNil(t, tracker)
	require.False(t, tracker.HasCollision())

	_, ok := tracker.Lookup("zstd", hash.ID("zstd"))
	require.False(t, ok)
}

func TestTracker_Track_Success(t *testing.T) {
	tracker := NewTracker(2)

	require.NoError(t, tracker.Track("zstd", hash.ID("zstd"), 0))
	require.NoError(t, tracker.Track("glibc", hash.ID("glibc"), 1))
	require.False(t, tracker.HasCollision())

	pos, ok := tracker.Lookup("zstd", hash.ID("zstd"))
	require.True(t, ok)
	require.Equal(t, 0, pos)

	pos, ok = tracker.Lookup("glibc", hash.ID("glibc"))
	require.True(t, ok)
	require.Equal(t, 1, pos)

	_, ok = tracker.Lookup("bash", hash.ID("bash"))
	require.False(t, ok)
}

func TestTracker_Track_EmptyName(t *testing.T) {
	tracker := NewTracker(1)

	err := tracker.Track("", hash.ID(""), 0)

	require.ErrorIs(t, err, errs.ErrInvalidPackageName)

	_, ok := tracker.Lookup("", hash.ID(""))
	require.False(t, ok)
}

func TestTracker_Track_Duplicate(t *testing.T) {
	tracker := NewTracker(1)

	require.NoError(t, tracker.Track("zstd", hash.ID("zstd"), 0))
	err := tracker.Track("zstd", hash.ID("zstd"), 1)

	require.ErrorIs(t, err, errs.ErrDuplicatePackage)
	require.Contains(t, err.Error(), "zstd")

	pos, ok := tracker.Lookup("zstd", hash.ID("zstd"))
	require.True(t, ok)
	require.Equal(t, 0, pos)
}

func TestTracker_Track_Collision(t *testing.T) {
	tracker := NewTracker(2)

	// Force both names into one bucket
	require.NoError(t, tracker.Track("linux", 0x1234567890abcdef, 0))
	require.NoError(t, tracker.Track("linux-lts", 0x1234567890abcdef, 1))
	require.True(t, tracker.HasCollision())

	pos, ok := tracker.Lookup("linux", 0x1234567890abcdef)
	require.True(t, ok)
	require.Equal(t, 0, pos)

	pos, ok = tracker.Lookup("linux-lts", 0x1234567890abcdef)
	require.True(t, ok)
	require.Equal(t, 1, pos)

	_, ok = tracker.Lookup("linux-zen", 0x1234567890abcdef)
	require.False(t, ok)

	err := tracker.Track("linux-lts", 0x1234567890abcdef, 2)
	require.ErrorIs(t, err, errs.ErrDuplicatePackage)
}
