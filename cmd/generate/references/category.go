package references

import (
	"prompt-references/cmd/generate/clients/cmsclient"
	"prompt-references/models"
)

// NormalizeCategories 는 CMS 카테고리를 parent 형태와 무관한 평탄한 구조로 바꾼다.
func NormalizeCategories(raw []cmsclient.PromptCategory) []models.FilterCategory {
	out := make([]models.FilterCategory, 0, len(raw))
	for _, cat := range raw {
		fc := models.FilterCategory{
			ID:    cat.ID,
			Title: cat.Title,
			Slug:  cat.Slug,
		}
		if cat.Parent.Set {
			parentID := cat.Parent.ID
			fc.ParentID = &parentID
			if cat.Parent.Slug != nil {
				parentSlug := *cat.Parent.Slug
				fc.ParentSlug = &parentSlug
			}
		}
		out = append(out, fc)
	}
	return out
}

// UseCaseCategories 는 parentSlug 가 정확히 "use-cases" 인 카테고리만 남긴다.
// parent 가 ID 로만 내려온 카테고리는 제외된다.
func UseCaseCategories(all []models.FilterCategory) []models.FilterCategory {
	var out []models.FilterCategory
	for _, cat := range all {
		if cat.IsUseCase() {
			out = append(out, cat)
		}
	}
	return out
}
