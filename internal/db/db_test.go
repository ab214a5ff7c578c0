package db

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func openTemp(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "history.db")
	s, err := Open(path, quietLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s, path
}

func TestOpenAppliesSchemaOnce(t *testing.T) {
	s, path := openTemp(t)

	v, err := s.schemaVersion()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	require.NoError(t, s.Close())

	again, err := Open(path, quietLogger())
	require.NoError(t, err)
	defer again.Close()

	v, err = again.schemaVersion()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestAddAndGetReplacements(t *testing.T) {
	s, _ := openTemp(t)

	require.NoError(t, s.AddReplacement(Replacement{SessionID: "a", Input: "hello", From: 'l', To: 'L', Output: "heLLo", Replaced: 2}))
	require.NoError(t, s.AddReplacement(Replacement{SessionID: "b", Input: "aaa", From: 'a', To: 'b', Output: "bbb", Replaced: 3}))
	require.NoError(t, s.AddReplacement(Replacement{SessionID: "a", Input: "", From: 'x', To: 'y', Output: "", Replaced: 0}))

	all, err := s.GetReplacements(0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "", all[0].Input, "newest first")
	assert.Equal(t, "aaa", all[1].Input)
	assert.Equal(t, byte('a'), all[1].From)
	assert.Equal(t, byte('b'), all[1].To)
	assert.Equal(t, 3, all[1].Replaced)
	assert.False(t, all[1].CreatedAt.IsZero())

	limited, err := s.GetReplacements(1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, all[0].ID, limited[0].ID)

	session, err := s.GetSessionReplacements("a")
	require.NoError(t, err)
	require.Len(t, session, 2)
	assert.Equal(t, "heLLo", session[0].Output)
	assert.Equal(t, byte('x'), session[1].From)
}

func TestFlushDB(t *testing.T) {
	s, _ := openTemp(t)

	require.NoError(t, s.AddReplacement(Replacement{SessionID: "a", Input: "ab", From: 'a', To: 'c', Output: "cb", Replaced: 1}))
	require.NoError(t, s.FlushDB())

	all, err := s.GetReplacements(0)
	require.NoError(t, err)
	assert.Empty(t, all)

	require.NoError(t, s.AddReplacement(Replacement{SessionID: "a", Input: "ab", From: 'a', To: 'c', Output: "cb", Replaced: 1}))
	all, err = s.GetReplacements(0)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, 1, all[0].ID, "id counter restarts after a flush")
}

func TestCloseNilStore(t *testing.T) {
	var s *Store
	assert.NoError(t, s.Close())
}
