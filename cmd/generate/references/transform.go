package references

import (
	"prompt-references/cmd/generate/clients/cmsclient"
	"prompt-references/models"
)

// ProcessPromptImages 는 프롬프트의 이미지 목록을 만든다.
//   - media 가 비어 있지 않으면 media 의 url 만 사용한다(빈 url 제외).
//   - 아니면 sourceMedia 뒤에 video thumbnail 을 붙인다.
//
// 반환 슬라이스는 입력과 메모리를 공유하지 않는다.
func ProcessPromptImages(p cmsclient.Prompt) []string {
	images := []string{}
	if len(p.Media) > 0 {
		for _, m := range p.Media {
			if m.URL != nil && *m.URL != "" {
				images = append(images, *m.URL)
			}
		}
		return images
	}

	images = append(images, p.SourceMedia...)
	if p.Video != nil && p.Video.Thumbnail != nil && *p.Video.Thumbnail != "" {
		images = append(images, *p.Video.Thumbnail)
	}
	return images
}

// TransformPrompt 는 CMS 프롬프트를 출력 레코드로 바꾼다.
// 이미지가 하나도 없으면 ok == false 이고 해당 프롬프트는 버려야 한다.
func TransformPrompt(p cmsclient.Prompt) (models.OutputPrompt, bool) {
	sourceMedia := ProcessPromptImages(p)
	if len(sourceMedia) == 0 {
		return models.OutputPrompt{}, false
	}

	content := p.Content
	if p.TranslatedContent != nil && *p.TranslatedContent != "" {
		content = *p.TranslatedContent
	}

	return models.OutputPrompt{
		Content:             content,
		Title:               p.Title,
		Description:         p.Description,
		SourceMedia:         sourceMedia,
		NeedReferenceImages: p.NeedReferenceImages != nil && *p.NeedReferenceImages,
	}, true
}
