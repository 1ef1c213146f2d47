package references

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"prompt-references/cmd/internal/logger"
	"prompt-references/models"
)

// Writer 는 버킷을 reference JSON 파일로 기록한다.
type Writer struct {
	Dir string
	// DryRun 이면 디렉토리를 건드리지 않고 기록될 파일 목록만 계산한다.
	DryRun bool
}

func NewWriter(dir string) *Writer {
	return &Writer{Dir: dir}
}

// Clean 은 출력 디렉토리를 만들고(없으면) 그 안의 *.json 파일을 모두 지운다.
// 하위 디렉토리와 다른 확장자 파일은 건드리지 않는다. 지운 파일 수를 반환한다.
func (w *Writer) Clean() (int, error) {
	if w.DryRun {
		return 0, nil
	}
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return 0, fmt.Errorf("create references dir %s: %w", w.Dir, err)
	}

	entries, err := os.ReadDir(w.Dir)
	if err != nil {
		return 0, fmt.Errorf("read references dir %s: %w", w.Dir, err)
	}

	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		path := filepath.Join(w.Dir, entry.Name())
		if err := os.Remove(path); err != nil {
			return removed, fmt.Errorf("remove stale file %s: %w", path, err)
		}
		removed++
	}
	logger.Log.Infof("Cleaned %d existing JSON files", removed)
	return removed, nil
}

// Write 는 featured.json, 비어 있지 않은 <slug>.json (useCases 순서), others.json 순서로 기록한다.
// featured.json 과 others.json 은 비어 있어도 항상 기록한다.
func (w *Writer) Write(b Buckets, useCases []models.FilterCategory) ([]models.WrittenFile, error) {
	var written []models.WrittenFile

	if err := w.writeBucket(models.FeaturedSlug, b.Featured, &written); err != nil {
		return written, err
	}

	for _, cat := range useCases {
		prompts := b.Category(cat.Slug)
		if len(prompts) == 0 {
			continue
		}
		if err := w.writeBucket(cat.Slug, prompts, &written); err != nil {
			return written, err
		}
	}

	if err := w.writeBucket(models.OthersSlug, b.Others, &written); err != nil {
		return written, err
	}
	return written, nil
}

func (w *Writer) writeBucket(slug string, prompts []models.OutputPrompt, written *[]models.WrittenFile) error {
	if prompts == nil {
		prompts = []models.OutputPrompt{}
	}
	name := models.FileName(slug)

	if !w.DryRun {
		data, err := MarshalPrompts(prompts)
		if err != nil {
			return fmt.Errorf("encode %s: %w", name, err)
		}
		path := filepath.Join(w.Dir, name)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		logger.Log.Infof("Written %s with %d prompts", name, len(prompts))
	} else {
		logger.Log.Infof("[dry-run] would write %s with %d prompts", name, len(prompts))
	}

	*written = append(*written, models.WrittenFile{Name: name, Count: len(prompts), Slug: slug})
	return nil
}

// MarshalPrompts 는 2칸 들여쓰기 JSON 배열을 만든다.
// HTML 문자를 escape 하지 않고 마지막 개행도 붙이지 않는다.
func MarshalPrompts(prompts []models.OutputPrompt) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(prompts); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
