package references_test

import (
	"testing"

	"prompt-references/cmd/generate/clients/cmsclient"
	"prompt-references/cmd/generate/references"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCategories(t *testing.T) {
	raw := []cmsclient.PromptCategory{
		{ID: 1, Title: "Use Cases", Slug: "use-cases"},
		{ID: 2, Title: "Portraits", Slug: "portraits", Parent: cmsclient.CategoryParent{Set: true, ID: 1, Slug: strPtr("use-cases")}},
		{ID: 3, Title: "Logos", Slug: "logos", Parent: cmsclient.CategoryParent{Set: true, ID: 1}},
		{ID: 4, Title: "Anime", Slug: "anime", Parent: cmsclient.CategoryParent{Set: true, ID: 9, Slug: strPtr("styles")}},
	}

	got := references.NormalizeCategories(raw)
	require.Len(t, got, 4)

	assert.Nil(t, got[0].ParentID)
	assert.Nil(t, got[0].ParentSlug)

	require.NotNil(t, got[1].ParentID)
	assert.Equal(t, 1, *got[1].ParentID)
	require.NotNil(t, got[1].ParentSlug)
	assert.Equal(t, "use-cases", *got[1].ParentSlug)

	require.NotNil(t, got[2].ParentID)
	assert.Equal(t, 1, *got[2].ParentID)
	assert.Nil(t, got[2].ParentSlug)

	assert.Equal(t, "Anime", got[3].Title)
	assert.Equal(t, "styles", *got[3].ParentSlug)
}

func TestUseCaseCategoriesRequiresParentSlug(t *testing.T) {
	raw := []cmsclient.PromptCategory{
		{ID: 1, Title: "Use Cases", Slug: "use-cases"},
		{ID: 2, Title: "Portraits", Slug: "portraits", Parent: cmsclient.CategoryParent{Set: true, ID: 1, Slug: strPtr("use-cases")}},
		// parent 가 ID 로만 온 경우는 use-case 로 보지 않는다.
		{ID: 3, Title: "Logos", Slug: "logos", Parent: cmsclient.CategoryParent{Set: true, ID: 1}},
		{ID: 5, Title: "Posters", Slug: "posters", Parent: cmsclient.CategoryParent{Set: true, ID: 1, Slug: strPtr("use-cases")}},
	}

	got := references.UseCaseCategories(references.NormalizeCategories(raw))

	var slugs []string
	for _, c := range got {
		slugs = append(slugs, c.Slug)
	}
	assert.Equal(t, []string{"portraits", "posters"}, slugs)
}
