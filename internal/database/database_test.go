package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDB_CreatesTables(t *testing.T) {
	db, teardown, err := InitDB(":memory:", "", "")
	require.NoError(t, err, "InitDB should not return an error")
	defer teardown()

	// Check if the 'handles' table was created
	var handlesTableName string
	err = db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='handles'").Scan(&handlesTableName)
	require.NoError(t, err, "Querying for handles table should not produce an error")
	assert.Equal(t, "handles", handlesTableName, "The 'handles' table should be created")

	// Check if the 'duels' table was created
	var duelsTableName string
	err = db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='duels'").Scan(&duelsTableName)
	require.NoError(t, err, "Querying for duels table should not produce an error")
	assert.Equal(t, "duels", duelsTableName, "The 'duels' table should be created")
}
