package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatabaseURL(t *testing.T) {
	got, err := databaseURL("mysql", "app:pw@tcp(localhost:3306)/fito?parseTime=true")
	require.NoError(t, err)
	assert.Equal(t, "mysql://app:pw@tcp(localhost:3306)/fito?parseTime=true", got)

	got, err = databaseURL("postgres", "postgres://app:pw@localhost:5432/fito?sslmode=disable")
	require.NoError(t, err)
	assert.Equal(t, "pgx5://app:pw@localhost:5432/fito?sslmode=disable", got)

	got, err = databaseURL("postgres", "postgresql://app@db/fito")
	require.NoError(t, err)
	assert.Equal(t, "pgx5://app@db/fito", got)

	_, err = databaseURL("postgres", "host=localhost dbname=fito")
	assert.Error(t, err)

	_, err = databaseURL("sqlite", "x")
	assert.Error(t, err)
}
