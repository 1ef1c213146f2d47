package models

// 고정 버킷 slug
const (
	FeaturedSlug = "featured"
	OthersSlug   = "others"
)

// OutputPrompt is a single entry of a generated reference file.
// 필드 순서가 곧 JSON 출력 순서이므로 변경하지 않는다.
type OutputPrompt struct {
	Content             string   `json:"content"`
	Title               string   `json:"title"`
	Description         string   `json:"description"`
	SourceMedia         []string `json:"sourceMedia"`
	NeedReferenceImages bool     `json:"needReferenceImages"`
}

// WrittenFile 은 Writer 가 기록한(또는 dry-run 에서 기록할) 파일 요약이다.
type WrittenFile struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
	Slug  string `json:"slug"`
}

// FileName 은 slug 에 대응하는 reference 파일 이름을 반환한다.
func FileName(slug string) string {
	return slug + ".json"
}
