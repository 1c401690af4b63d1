package repository

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bosnamedia/bosna-backend/models"
	"github.com/bosnamedia/bosna-backend/pkg"
)

func newTestRepo(t *testing.T) *FileContentRepository {
	t.Helper()
	repo, err := NewFileContentRepository(t.TempDir())
	require.NoError(t, err)
	return repo
}

func TestFileContentRepository_RoundTrip(t *testing.T) {
	repo := newTestRepo(t)

	doc := models.Document{
		"title": "Hakkımızda",
		"stats": map[string]any{"projects": float64(120)},
		"tags":  []any{"video", "film"},
	}

	require.NoError(t, repo.Write("about", doc))

	got, err := repo.Read("about")
	require.NoError(t, err)
	assert.Equal(t, doc, got)
}

func TestFileContentRepository_ReadMissing(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.Read("projects")
	assert.ErrorIs(t, err, pkg.ErrNotFound)
}

func TestFileContentRepository_ReadMalformed(t *testing.T) {
	dir := t.TempDir()
	repo, err := NewFileContentRepository(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "projects.json"), []byte("{broken"), 0644))

	_, err = repo.Read("projects")
	assert.ErrorIs(t, err, pkg.ErrReadFailure)
}

func TestFileContentRepository_WritesPrettyJSON(t *testing.T) {
	dir := t.TempDir()
	repo, err := NewFileContentRepository(dir)
	require.NoError(t, err)

	require.NoError(t, repo.Write("menu", models.Document{"items": []any{}}))

	data, err := os.ReadFile(filepath.Join(dir, "menu.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  \"items\"", "file should be indented for human diffing")
}

func TestFileContentRepository_UpdateSerializesReadModifyWrite(t *testing.T) {
	repo := newTestRepo(t)
	require.NoError(t, repo.Write("homepage", models.Document{"count": float64(0)}))

	const n = 50
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_ = repo.Update("homepage", func(doc models.Document) (models.Document, error) {
				doc["count"] = doc["count"].(float64) + 1
				return doc, nil
			})
		}()
	}
	wg.Wait()

	doc, err := repo.Read("homepage")
	require.NoError(t, err)
	assert.Equal(t, float64(n), doc["count"], "every increment must survive")
}

func TestFileContentRepository_UpdateMutateErrorLeavesFileUnchanged(t *testing.T) {
	repo := newTestRepo(t)
	require.NoError(t, repo.Write("about", models.Document{"title": "Hakkımızda"}))

	wantErr := pkg.ErrInvalidStructure
	err := repo.Update("about", func(doc models.Document) (models.Document, error) {
		doc["title"] = "değişmemeli"
		return nil, wantErr
	})
	assert.ErrorIs(t, err, wantErr)

	doc, err := repo.Read("about")
	require.NoError(t, err)
	assert.Equal(t, "Hakkımızda", doc["title"])
}

func TestFileContentRepository_WriteLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	repo, err := NewFileContentRepository(dir)
	require.NoError(t, err)

	// Yazma temp dosya + rename üzerinden gider; başarılı yazma sonrası
	// dizinde yalnızca asıl dosya kalmalı
	require.NoError(t, repo.Write("seo", models.Document{"defaultTitle": "a"}))
	require.NoError(t, repo.Write("seo", models.Document{"defaultTitle": "b"}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "seo.json", entries[0].Name())

	doc, err := repo.Read("seo")
	require.NoError(t, err)
	assert.Equal(t, "b", doc["defaultTitle"])
}

func TestFileContentRepository_Exists(t *testing.T) {
	repo := newTestRepo(t)

	assert.False(t, repo.Exists("seo"))
	require.NoError(t, repo.Write("seo", models.Document{}))
	assert.True(t, repo.Exists("seo"))
}

func TestGenerateID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := GenerateID()
		assert.NotEmpty(t, id)
		assert.False(t, seen[id], "duplicate id generated: %s", id)
		seen[id] = true
	}
}
