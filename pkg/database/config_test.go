package database

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	pg := Config{Host: "db", Port: 5432, User: "u", Password: "p", DBName: "n", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=n sslmode=disable", pg.DSN())

	lite := Config{Driver: "SQLite", Path: "/tmp/n.db"}
	dsn := lite.DSN()
	require.True(t, strings.HasPrefix(dsn, "file:/tmp/n.db?"))
	q, err := url.ParseQuery(strings.SplitN(dsn, "?", 2)[1])
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"foreign_keys(1)", "busy_timeout(5000)"}, q["_pragma"])

	assert.True(t, strings.HasPrefix(Config{Driver: DriverSQLite}.DSN(), "file::memory:?"))
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := openSQLDB(Config{Driver: "mysql"})
	assert.Error(t, err)
}
