package cmsclient

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ListResponse 는 CMS 목록 API 의 공통 페이지 응답이다.
type ListResponse[T any] struct {
	Docs        []T  `json:"docs"`
	TotalDocs   int  `json:"totalDocs"`
	TotalPages  int  `json:"totalPages"`
	Page        int  `json:"page"`
	HasNextPage bool `json:"hasNextPage"`
}

// -------------------- Categories --------------------

type PromptCategory struct {
	ID     int            `json:"id"`
	Title  string         `json:"title"`
	Slug   string         `json:"slug"`
	Parent CategoryParent `json:"parent"`
}

// CategoryParent 는 parent 필드의 세 가지 형태를 모두 받는다.
//   - null 또는 필드 없음: Set == false
//   - 숫자 ID: ID 만 채워지고 Slug 는 nil
//   - {id, slug} 객체: 둘 다 채워짐
type CategoryParent struct {
	Set  bool
	ID   int
	Slug *string
}

func (p *CategoryParent) UnmarshalJSON(data []byte) error {
	*p = CategoryParent{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	if data[0] == '{' {
		var obj struct {
			ID   int    `json:"id"`
			Slug string `json:"slug"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return fmt.Errorf("decode category parent object: %w", err)
		}
		p.Set = true
		p.ID = obj.ID
		p.Slug = &obj.Slug
		return nil
	}

	var id int
	if err := json.Unmarshal(data, &id); err != nil {
		return fmt.Errorf("decode category parent id: %w", err)
	}
	p.Set = true
	p.ID = id
	return nil
}

// -------------------- Prompts --------------------

type Prompt struct {
	ID                  int              `json:"id"`
	Title               string           `json:"title"`
	Description         string           `json:"description"`
	Content             string           `json:"content"`
	TranslatedContent   *string          `json:"translatedContent"`
	SourceMedia         []string         `json:"sourceMedia"`
	Video               *Video           `json:"video"`
	Media               []Media          `json:"media"`
	Featured            *bool            `json:"featured"`
	NeedReferenceImages *bool            `json:"needReferenceImages"`
	ImageCategories     *ImageCategories `json:"imageCategories"`
}

type Video struct {
	URL       string  `json:"url"`
	Thumbnail *string `json:"thumbnail"`
}

type Media struct {
	ID  int     `json:"id"`
	URL *string `json:"url"`
}

type ImageCategories struct {
	UseCases []UseCase `json:"useCases"`
}

type UseCase struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

// IsFeatured 는 featured 플래그가 명시적으로 true 인지 확인한다.
func (p Prompt) IsFeatured() bool {
	return p.Featured != nil && *p.Featured
}

// UseCases 는 태그된 use-case 목록을 반환한다. 없으면 nil.
func (p Prompt) UseCases() []UseCase {
	if p.ImageCategories == nil {
		return nil
	}
	return p.ImageCategories.UseCases
}
