package models

// UseCasesParentSlug 는 그룹핑 대상 카테고리의 부모 slug 다.
const UseCasesParentSlug = "use-cases"

// FilterCategory represents a normalized prompt category
// parent 가 없으면 ParentID/ParentSlug 모두 nil,
// parent 가 숫자 ID 로만 내려오면 ParentSlug 는 nil 이다.
type FilterCategory struct {
	ID         int     `json:"id"`
	Title      string  `json:"title"`
	Slug       string  `json:"slug"`
	ParentID   *int    `json:"parentId"`
	ParentSlug *string `json:"parentSlug"`
}

// IsUseCase 는 부모 slug 가 "use-cases" 인 카테고리인지 확인한다.
func (c FilterCategory) IsUseCase() bool {
	return c.ParentSlug != nil && *c.ParentSlug == UseCasesParentSlug
}
