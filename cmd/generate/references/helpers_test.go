package references_test

import (
	"prompt-references/cmd/generate/clients/cmsclient"
	"prompt-references/models"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }
func intPtr(i int) *int       { return &i }

func useCase(slug string) models.FilterCategory {
	return models.FilterCategory{
		ID:         len(slug),
		Title:      slug + " title",
		Slug:       slug,
		ParentID:   intPtr(1),
		ParentSlug: strPtr(models.UseCasesParentSlug),
	}
}

// promptWithImage 는 이미지 하나를 가진 기본 프롬프트를 만든다.
func promptWithImage(id int, title string, tags ...string) cmsclient.Prompt {
	p := cmsclient.Prompt{
		ID:          id,
		Title:       title,
		Description: title + " description",
		Content:     title + " content",
		SourceMedia: []string{"https://img.example.com/" + title + ".png"},
	}
	if len(tags) > 0 {
		p.ImageCategories = &cmsclient.ImageCategories{}
		for i, slug := range tags {
			p.ImageCategories.UseCases = append(p.ImageCategories.UseCases, cmsclient.UseCase{ID: i + 10, Title: slug, Slug: slug})
		}
	}
	return p
}

func titles(prompts []models.OutputPrompt) []string {
	out := make([]string, 0, len(prompts))
	for _, p := range prompts {
		out = append(out, p.Title)
	}
	return out
}
