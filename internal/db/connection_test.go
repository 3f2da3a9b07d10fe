package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDSN(t *testing.T) {
	c := &Config{Host: "localhost", Port: "5432", User: "u", Password: "p", Name: "n", SSLMode: "disable"}
	assert.Equal(t, "host=localhost port=5432 user=u password=p dbname=n sslmode=disable", c.DSN())
}

func TestOpenSQLiteCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "portfolio.db")

	database, err := OpenSQLite(path)
	require.NoError(t, err)
	defer database.Close()

	require.NoError(t, database.Health())
	assert.FileExists(t, path)
}

func TestOpenSQLiteInMemory(t *testing.T) {
	database, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	defer database.Close()

	require.NoError(t, database.Exec("CREATE TABLE t (v INTEGER)").Error)
	require.NoError(t, database.Exec("INSERT INTO t (v) VALUES (1)").Error)

	var count int64
	require.NoError(t, database.Raw("SELECT COUNT(*) FROM t").Scan(&count).Error)
	assert.Equal(t, int64(1), count)
}
