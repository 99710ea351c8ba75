package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/niksmo/storefront/internal/adapter/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKV(t *testing.T) {
	t.Run("SaveLoadRoundtrip", func(t *testing.T) {
		kv := storage.OpenMemory()
		require.NoError(t, kv.Save("cart", []int{1, 2, 3}))

		var got []int
		found, err := kv.Load("cart", &got)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, []int{1, 2, 3}, got)
	})

	t.Run("MissingKey", func(t *testing.T) {
		kv := storage.OpenMemory()
		var got []int
		found, err := kv.Load("nothing", &got)
		require.NoError(t, err)
		assert.False(t, found)
		assert.Empty(t, got)
	})

	t.Run("MismatchedSnapshotIsEmptyDefault", func(t *testing.T) {
		kv := storage.OpenMemory()
		require.NoError(t, kv.Save("wishlist", "not-a-list"))

		var got []int
		found, err := kv.Load("wishlist", &got)
		require.NoError(t, err)
		assert.False(t, found)
		assert.Empty(t, got)
	})

	t.Run("Delete", func(t *testing.T) {
		kv := storage.OpenMemory()
		require.NoError(t, kv.Save("user", map[string]int{"id": 1}))
		require.NoError(t, kv.Delete("user"))

		var got map[string]int
		found, err := kv.Load("user", &got)
		require.NoError(t, err)
		assert.False(t, found)

		// deleting an absent key is not an error
		require.NoError(t, kv.Delete("user"))
	})

	t.Run("LastWriteWins", func(t *testing.T) {
		kv := storage.OpenMemory()
		require.NoError(t, kv.Save("cart", []int{1}))
		require.NoError(t, kv.Save("cart", []int{2}))

		var got []int
		_, err := kv.Load("cart", &got)
		require.NoError(t, err)
		assert.Equal(t, []int{2}, got)
	})
}

func TestLoadFixtures(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "products.json", `[
		{"id": 1, "title": "Alpha", "price": 20.5, "category": "Electronics",
		 "stock": 3, "rating": 4.5,
		 "reviews": [{"userId": 2, "comment": "good", "rating": 5}]}
	]`)
	writeFixture(t, dir, "categories.json",
		`[{"id": 1, "name": "Electronics", "icon": "laptop"}]`)
	writeFixture(t, dir, "users.json", `[
		{"id": 1, "username": "admin", "password": "password",
		 "email": "a@test", "role": "admin", "name": "Admin",
		 "address": {"street": "1 Road", "city": "NY", "state": "NY",
		             "zipCode": "10001", "country": "USA"}}
	]`)

	f, err := storage.LoadFixtures(dir)
	require.NoError(t, err)

	require.Len(t, f.Products, 1)
	assert.Equal(t, "Alpha", f.Products[0].Title)
	assert.InDelta(t, 20.5, f.Products[0].Price, 1e-9)
	require.Len(t, f.Products[0].Reviews, 1)
	assert.Equal(t, 2, f.Products[0].Reviews[0].UserID)

	require.Len(t, f.Categories, 1)
	assert.Equal(t, "laptop", f.Categories[0].Icon)

	require.Len(t, f.Users, 1)
	assert.Equal(t, "password", f.Users[0].Password)
	require.NotNil(t, f.Users[0].Address)
	assert.Equal(t, "10001", f.Users[0].Address.ZipCode)
}

func TestLoadFixturesMissingDir(t *testing.T) {
	_, err := storage.LoadFixtures(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func writeFixture(t *testing.T, dir, name, data string) {
	t.Helper()
	err := os.WriteFile(filepath.Join(dir, name), []byte(data), 0o644)
	require.NoError(t, err)
}
