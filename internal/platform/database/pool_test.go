package database

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"verisbt/migrations"
)

func TestUpMigrationsOrder(t *testing.T) {
	fsys := fstest.MapFS{
		"000002_b.up.sql":   {Data: []byte("SELECT 2")},
		"000001_a.up.sql":   {Data: []byte("SELECT 1")},
		"000001_a.down.sql": {Data: []byte("SELECT 0")},
		"README.md":         {Data: []byte("x")},
	}
	files, err := UpMigrations(fsys)
	require.NoError(t, err)
	assert.Equal(t, []string{"000001_a.up.sql", "000002_b.up.sql"}, files)
}

func TestEmbeddedMigrationsPair(t *testing.T) {
	files, err := UpMigrations(migrations.FS)
	require.NoError(t, err)
	require.NotEmpty(t, files)
	for _, f := range files {
		down := f[:len(f)-len(".up.sql")] + ".down.sql"
		_, err := migrations.FS.Open(down)
		assert.NoError(t, err, "missing %s", down)
	}
}

func TestOpenRequiresURL(t *testing.T) {
	_, err := Open(context.Background(), DefaultConfig(""))
	require.Error(t, err)
}

func TestNilPoolHealth(t *testing.T) {
	var p *Pool
	require.Error(t, p.Health(context.Background()))
	require.NoError(t, p.Close())
}
