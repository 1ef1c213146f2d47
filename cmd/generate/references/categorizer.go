package references

import (
	"prompt-references/cmd/generate/clients/cmsclient"
	"prompt-references/cmd/internal/logger"
	"prompt-references/models"
)

// Buckets 는 분류가 끝난 결과다. 각 슬라이스는 nil 이 아니다.
type Buckets struct {
	Featured []models.OutputPrompt
	Others   []models.OutputPrompt
	// ByCategory 의 키는 use-case slug 이다. 모든 use-case 카테고리에 대해 키가 존재한다.
	ByCategory map[string][]models.OutputPrompt
}

// Category 는 slug 에 해당하는 버킷을 반환한다. 없는 slug 이면 nil.
func (b Buckets) Category(slug string) []models.OutputPrompt {
	return b.ByCategory[slug]
}

// Categorizer 는 변환된 프롬프트를 featured / use-case / others 버킷으로 나눈다.
// 입력 순서를 그대로 유지하며, 하나의 프롬프트가 여러 버킷에 들어갈 수 있다.
type Categorizer struct {
	buckets Buckets

	processed int
	dropped   int
	unmatched int
}

func NewCategorizer(useCases []models.FilterCategory) *Categorizer {
	byCategory := make(map[string][]models.OutputPrompt, len(useCases))
	for _, cat := range useCases {
		byCategory[cat.Slug] = []models.OutputPrompt{}
	}
	return &Categorizer{
		buckets: Buckets{
			Featured:   []models.OutputPrompt{},
			Others:     []models.OutputPrompt{},
			ByCategory: byCategory,
		},
	}
}

// Add 는 프롬프트 하나를 변환해 해당 버킷들에 추가한다.
// 이미지가 없어 버려지면 false 를 반환한다.
func (c *Categorizer) Add(p cmsclient.Prompt) bool {
	c.processed++

	out, ok := TransformPrompt(p)
	if !ok {
		c.dropped++
		logger.DebugWithFields("dropped prompt without images", logger.Fields{
			"prompt_id": p.ID,
			"title":     p.Title,
		})
		return false
	}

	if p.IsFeatured() {
		c.buckets.Featured = append(c.buckets.Featured, out)
	}

	useCases := p.UseCases()
	if len(useCases) == 0 {
		c.buckets.Others = append(c.buckets.Others, out)
		return true
	}

	// 같은 slug 가 중복 태그되어도 한 버킷에는 한 번만 넣는다.
	placed := make(map[string]bool, len(useCases))
	var unknown []string
	for _, uc := range useCases {
		bucket, known := c.buckets.ByCategory[uc.Slug]
		if !known {
			unknown = append(unknown, uc.Slug)
			continue
		}
		if placed[uc.Slug] {
			continue
		}
		placed[uc.Slug] = true
		c.buckets.ByCategory[uc.Slug] = append(bucket, out)
	}

	// 태그는 있으나 알려진 카테고리가 하나도 없으면 어떤 카테고리 파일에도 들어가지 않는다.
	if len(placed) == 0 {
		c.unmatched++
		logger.WarnWithFields("prompt use-cases match no known category", logger.Fields{
			"prompt_id": p.ID,
			"title":     p.Title,
			"slugs":     unknown,
		})
	}
	return true
}

// AddAll 은 prompts 를 순서대로 Add 한다.
func (c *Categorizer) AddAll(prompts []cmsclient.Prompt) {
	for _, p := range prompts {
		c.Add(p)
	}
}

func (c *Categorizer) Buckets() Buckets {
	return c.buckets
}

// Processed 는 Add 가 호출된 횟수다.
func (c *Categorizer) Processed() int { return c.processed }

// Dropped 는 이미지가 없어 버려진 프롬프트 수다.
func (c *Categorizer) Dropped() int { return c.dropped }

// Unmatched 는 use-case 태그가 있지만 어떤 카테고리에도 들어가지 못한 프롬프트 수다.
func (c *Categorizer) Unmatched() int { return c.unmatched }
