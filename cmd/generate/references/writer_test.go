package references_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"prompt-references/cmd/generate/references"
	"prompt-references/cmd/internal/logger/loggertest"
	"prompt-references/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

func readPrompts(t *testing.T, path string) []models.OutputPrompt {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var out []models.OutputPrompt
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

func TestWriterCleanRemovesOnlyJSON(t *testing.T) {
	loggertest.Install(t)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "stale.json"), []byte("[]"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "featured.json"), []byte("[]"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("keep"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.json"), 0o755))

	removed, err := references.NewWriter(dir).Clean()
	require.NoError(t, err)
	assert.Equal(t, 2, removed)
	assert.Equal(t, []string{"README.md", "nested.json"}, listDir(t, dir))
}

func TestWriterCleanCreatesMissingDir(t *testing.T) {
	loggertest.Install(t)

	dir := filepath.Join(t.TempDir(), "a", "references")
	removed, err := references.NewWriter(dir).Clean()
	require.NoError(t, err)
	assert.Zero(t, removed)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestWriterWritesBucketsInOrder(t *testing.T) {
	loggertest.Install(t)

	useCases := []models.FilterCategory{useCase("portraits"), useCase("logos"), useCase("posters")}
	c := references.NewCategorizer(useCases)
	c.Add(promptWithImage(1, "one", "logos"))
	c.Add(promptWithImage(2, "two", "portraits", "logos"))

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "old-category.json"), []byte("[]"), 0o644))

	w := references.NewWriter(dir)
	_, err := w.Clean()
	require.NoError(t, err)
	written, err := w.Write(c.Buckets(), useCases)
	require.NoError(t, err)

	assert.Equal(t, []models.WrittenFile{
		{Name: "featured.json", Count: 0, Slug: "featured"},
		{Name: "portraits.json", Count: 1, Slug: "portraits"},
		{Name: "logos.json", Count: 2, Slug: "logos"},
		{Name: "others.json", Count: 0, Slug: "others"},
	}, written)

	// 빈 카테고리(posters)는 기록되지 않고, 이전 실행의 파일도 남지 않는다.
	assert.Equal(t, []string{"featured.json", "logos.json", "others.json", "portraits.json"}, listDir(t, dir))

	featured, err := os.ReadFile(filepath.Join(dir, "featured.json"))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(featured))

	assert.Equal(t, []string{"one", "two"}, titles(readPrompts(t, filepath.Join(dir, "logos.json"))))
	assert.Equal(t, []string{"two"}, titles(readPrompts(t, filepath.Join(dir, "portraits.json"))))
}

func TestWriterDryRunTouchesNothing(t *testing.T) {
	rec := loggertest.Install(t)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "stale.json"), []byte("[]"), 0o644))

	c := references.NewCategorizer(nil)
	c.Add(promptWithImage(1, "one"))

	w := &references.Writer{Dir: dir, DryRun: true}
	removed, err := w.Clean()
	require.NoError(t, err)
	assert.Zero(t, removed)

	written, err := w.Write(c.Buckets(), nil)
	require.NoError(t, err)
	assert.Equal(t, []models.WrittenFile{
		{Name: "featured.json", Count: 0, Slug: "featured"},
		{Name: "others.json", Count: 1, Slug: "others"},
	}, written)
	assert.Equal(t, []string{"stale.json"}, listDir(t, dir))
	assert.True(t, rec.Has("info", "[dry-run] would write others.json with 1 prompts"))
}

func TestWriterFailsWhenDirMissing(t *testing.T) {
	loggertest.Install(t)

	w := references.NewWriter(filepath.Join(t.TempDir(), "missing"))
	_, err := w.Write(references.NewCategorizer(nil).Buckets(), nil)
	assert.Error(t, err)
}

func TestMarshalPromptsFormat(t *testing.T) {
	data, err := references.MarshalPrompts([]models.OutputPrompt{{
		Content:     "a <b> & c",
		Title:       "T",
		Description: "D",
		SourceMedia: []string{"x.png"},
	}})
	require.NoError(t, err)

	want := `[
  {
    "content": "a <b> & c",
    "title": "T",
    "description": "D",
    "sourceMedia": [
      "x.png"
    ],
    "needReferenceImages": false
  }
]`
	assert.Equal(t, want, string(data))

	empty, err := references.MarshalPrompts([]models.OutputPrompt{})
	require.NoError(t, err)
	assert.Equal(t, "[]", string(empty))
}
