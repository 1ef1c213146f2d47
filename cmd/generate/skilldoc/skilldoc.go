// Package skilldoc 는 SKILL.md 의 reference 파일 목록 구간을 다시 생성한다.
package skilldoc

import (
	"fmt"
	"os"
	"strings"

	"prompt-references/cmd/internal/logger"
	"prompt-references/models"
)

const (
	StartMarker = "<!-- REFERENCES_START -->"
	EndMarker   = "<!-- REFERENCES_END -->"

	uncategorizedTitle = "Uncategorized"
)

// RenderReferences 는 두 마커 사이에 들어갈 블록을 만든다.
// 반환 값은 개행으로 시작하고 개행으로 끝난다.
func RenderReferences(files []models.WrittenFile, categories []models.FilterCategory) string {
	titles := make(map[string]string, len(categories))
	for _, cat := range categories {
		titles[cat.Slug] = cat.Title
	}

	featuredCount := 0
	for _, f := range files {
		if f.Slug == models.FeaturedSlug {
			featuredCount = f.Count
			break
		}
	}

	lines := []string{
		"",
		"### Core Files",
		"",
		"| File | Description | Count | Loading |",
		"|------|-------------|-------|---------|",
		fmt.Sprintf("| `%s` | Featured/highlighted prompts | %d | **Full load allowed** |", models.FileName(models.FeaturedSlug), featuredCount),
		"",
		"### Use Case Category Files",
		"",
		"| File | Category | Count |",
		"|------|----------|-------|",
	}

	for _, f := range files {
		if f.Slug == models.FeaturedSlug {
			continue
		}
		lines = append(lines, fmt.Sprintf("| `%s` | %s | %d |", f.Name, fileTitle(f.Slug, titles), f.Count))
	}
	lines = append(lines, "")

	return "\n" + strings.Join(lines, "\n") + "\n"
}

func fileTitle(slug string, titles map[string]string) string {
	if slug == models.OthersSlug {
		return uncategorizedTitle
	}
	if title, ok := titles[slug]; ok && title != "" {
		return title
	}
	return slug
}

// Splice 는 content 에서 StartMarker 와 EndMarker 사이를 block 으로 바꾼다.
// 마커 자체와 그 바깥 내용은 바이트 단위로 그대로 둔다.
// 마커가 없거나 끝 마커가 시작 마커보다 앞에 있으면 (content, false) 를 반환한다.
func Splice(content, block string) (string, bool) {
	start := strings.Index(content, StartMarker)
	if start == -1 {
		return content, false
	}
	innerStart := start + len(StartMarker)

	end := strings.Index(content[innerStart:], EndMarker)
	if end == -1 {
		return content, false
	}
	end += innerStart

	return content[:innerStart] + block + content[end:], true
}

// UpdateFile 은 path 의 마커 구간을 새 목록으로 교체한다.
// 마커가 없으면 파일을 건드리지 않고 경고만 남긴 뒤 (false, nil) 을 반환한다.
// 파일 읽기/쓰기 실패는 에러로 반환한다.
func UpdateFile(path string, files []models.WrittenFile, categories []models.FilterCategory) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", path, err)
	}

	updated, ok := Splice(string(data), RenderReferences(files, categories))
	if !ok {
		logger.WarnWithFields("Could not find REFERENCES markers, skipping update", logger.Fields{
			"path": path,
		})
		return false, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(updated), info.Mode().Perm()); err != nil {
		return false, fmt.Errorf("write %s: %w", path, err)
	}
	logger.InfoWithFields("Updated references list", logger.Fields{"path": path})
	return true, nil
}
