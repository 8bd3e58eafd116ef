package jsonfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type document struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestStoreWriteAndRead(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(t *testing.T, store *Store)
		validate func(t *testing.T, store *Store)
	}{
		{
			name: "Deve gravar e ler o mesmo documento",
			setup: func(t *testing.T, store *Store) {
				require.NoError(t, store.Write(&document{Name: "caderno", Count: 2}))
			},
			validate: func(t *testing.T, store *Store) {
				loaded := &document{}
				require.NoError(t, store.Read(loaded))
				assert.Equal(t, "caderno", loaded.Name)
				assert.Equal(t, 2, loaded.Count)
			},
		},
		{
			name: "Deve substituir o conteúdo anterior por inteiro",
			setup: func(t *testing.T, store *Store) {
				require.NoError(t, store.Write(&document{Name: "primeiro", Count: 1}))
				require.NoError(t, store.Write(&document{Name: "segundo", Count: 2}))
			},
			validate: func(t *testing.T, store *Store) {
				loaded := &document{}
				require.NoError(t, store.Read(loaded))
				assert.Equal(t, "segundo", loaded.Name)
			},
		},
		{
			name:  "Deve reportar os.ErrNotExist quando o arquivo não existe",
			setup: func(t *testing.T, store *Store) {},
			validate: func(t *testing.T, store *Store) {
				err := store.Read(&document{})
				assert.ErrorIs(t, err, os.ErrNotExist)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := New(filepath.Join(t.TempDir(), "data.json"))

			tt.setup(t, store)
			tt.validate(t, store)
		})
	}
}

func TestStoreReadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte("{conteúdo quebrado"), 0o600))

	err := New(path).Read(&document{})

	assert.ErrorIs(t, err, ErrMalformed)
}

func TestStoreWriteDoesNotLeaveTemporaryFiles(t *testing.T) {
	dir := t.TempDir()
	store := New(filepath.Join(dir, "data.json"))

	require.NoError(t, store.Write(&document{Name: "caneta", Count: 1}))
	require.NoError(t, store.Write(&document{Name: "caneta", Count: 2}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "data.json", entries[0].Name())
}

func TestStoreWriteCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aninhado", "dados", "data.json")
	store := New(path)

	require.NoError(t, store.Write(&document{Name: "caderno", Count: 1}))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}
