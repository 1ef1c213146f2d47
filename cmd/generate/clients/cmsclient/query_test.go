package cmsclient_test

import (
	"net/url"
	"testing"

	"prompt-references/cmd/generate/clients/cmsclient"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamsEncodeNested(t *testing.T) {
	p := cmsclient.Params{
		"limit": 10,
		"where": cmsclient.Params{
			"model": cmsclient.Params{"equals": "nano banana"},
		},
		"draft": false,
		"skip":  nil,
		"ids":   []string{"a", "b"},
	}

	assert.Equal(t,
		"draft=false&ids%5B0%5D=a&ids%5B1%5D=b&limit=10&where%5Bmodel%5D%5Bequals%5D=nano+banana",
		p.Encode())
}

func TestCategoryQueryParams(t *testing.T) {
	q := cmsclient.CategoryQuery{Limit: 9999, Sort: "sort", Locale: "en", Campaign: "nano-banana-pro-prompts"}

	assert.Equal(t,
		"limit=9999&locale=en&sort=sort&where%5Bcampaign%5D%5Bcontains%5D=nano-banana-pro-prompts",
		q.Params().Encode())
}

func TestPromptQueryParams(t *testing.T) {
	q := cmsclient.PromptQuery{
		Limit:  100,
		Page:   3,
		Sort:   cmsclient.DefaultPromptSort,
		Depth:  2,
		Locale: "en",
		Select: []string{"title", "media"},
		Model:  "nano-banana-pro",
	}

	values, err := url.ParseQuery(q.Params().Encode())
	require.NoError(t, err)

	assert.Equal(t, "100", values.Get("limit"))
	assert.Equal(t, "3", values.Get("page"))
	assert.Equal(t, "-featured,sort,-sourcePublishedAt", values.Get("sort"))
	assert.Equal(t, "2", values.Get("depth"))
	assert.Equal(t, "en", values.Get("locale"))
	assert.Equal(t, "true", values.Get("select[title]"))
	assert.Equal(t, "true", values.Get("select[media]"))
	assert.Equal(t, "nano-banana-pro", values.Get("where[model][equals]"))
	assert.Len(t, values, 8)
}

func TestPromptQueryWithoutSelect(t *testing.T) {
	q := cmsclient.PromptQuery{Limit: 1, Page: 1, Model: "m"}

	values, err := url.ParseQuery(q.Params().Encode())
	require.NoError(t, err)
	for key := range values {
		assert.NotContains(t, key, "select")
	}
}
