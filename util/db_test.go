package util

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectDB(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "seen.db")

	db, err := ConnectDB(filename, 100)
	require.NoError(t, err, "Failed to connect to database")
	defer db.Close()

	assert.Equal(t, uint(100), db.rowsLimit)
	rows, err := db.Count()
	assert.NoError(t, err)
	assert.Equal(t, 0, rows, "Initial row count should be 0")
}

func TestDBAdd(t *testing.T) {
	db, err := ConnectDB(filepath.Join(t.TempDir(), "seen.db"), 100)
	require.NoError(t, err)
	defer db.Close()

	found, err := db.IsInDB([]byte("image one"))
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, db.Add("one.bmp", []byte("image one")))
	found, err = db.IsInDB([]byte("image one"))
	require.NoError(t, err)
	assert.True(t, found)

	found, err = db.IsInDB([]byte("image two"))
	require.NoError(t, err)
	assert.False(t, found)

	rows, err := db.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, rows)
}

func TestDBRowsLimit(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "seen.db")
	db, err := ConnectDB(filename, 3)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		require.NoError(t, db.Add("img", []byte(fmt.Sprintf("image %d", i))))
	}
	require.NoError(t, db.Close())

	// over the limit: the registry starts over
	db, err = ConnectDB(filename, 3)
	require.NoError(t, err)
	defer db.Close()
	rows, err := db.Count()
	require.NoError(t, err)
	assert.Equal(t, 0, rows)
}

func TestShredFile(t *testing.T) {
	tempFile, err := os.CreateTemp(t.TempDir(), "test_db_*.db")
	require.NoError(t, err)
	_, err = tempFile.WriteString("some secret content")
	require.NoError(t, err)
	require.NoError(t, tempFile.Close())

	assert.NoError(t, ShredFile(tempFile.Name()), "File shredding should succeed")
	_, err = os.Stat(tempFile.Name())
	assert.ErrorIs(t, err, os.ErrNotExist, "File should no longer exist")

	assert.Error(t, ShredFile(tempFile.Name()))
}
