package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDB_CreatesCollectionsTable(t *testing.T) {
	db, teardown, err := InitDB(filepath.Join(t.TempDir(), "padel.db"), "", "")
	require.NoError(t, err, "InitDB should not return an error")
	defer teardown()

	var tableName string
	err = db.Get(&tableName, "SELECT name FROM sqlite_master WHERE type='table' AND name='collections'")
	require.NoError(t, err, "Querying for collections table should not produce an error")
	assert.Equal(t, "collections", tableName)
}

func TestInitDB_InMemory(t *testing.T) {
	db, teardown, err := InitDB(":memory:", "", "")
	require.NoError(t, err)
	defer teardown()

	_, err = db.Exec("INSERT INTO collections (name, value, updated_at) VALUES (?, ?, ?)", "teams", []byte("[]"), 1)
	require.NoError(t, err, "migrated table should be visible on the pooled connection")
}

func TestInitDB_IsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "padel.db")

	_, teardown, err := InitDB(path, "", "")
	require.NoError(t, err)
	teardown()

	_, teardown, err = InitDB(path, "", "")
	require.NoError(t, err, "running migrations twice should be a no-op")
	teardown()
}
