package services

import (
	"context"
	"fmt"

	"prompt-references/cmd/generate/clients/cmsclient"
	"prompt-references/cmd/generate/references"
	"prompt-references/cmd/generate/skilldoc"
	"prompt-references/cmd/internal/logger"
	"prompt-references/config"
	"prompt-references/models"
)

// CMSClient 는 ReferenceService 가 사용하는 CMS 조회 기능이다.
type CMSClient interface {
	ListCategories(ctx context.Context, q cmsclient.CategoryQuery) (cmsclient.ListResponse[cmsclient.PromptCategory], error)
	FetchAllPrompts(ctx context.Context, q cmsclient.PromptQuery) ([]cmsclient.Prompt, error)
}

type GenerateOptions struct {
	CMS           config.CMSConfig
	ReferencesDir string
	SkillMDPath   string
	// DryRun 이면 CMS 조회와 분류까지만 하고 파일은 쓰지 않는다.
	DryRun bool
}

// Summary 는 한 번의 생성 실행 결과다.
type Summary struct {
	Files        []models.WrittenFile
	TotalFetched int
	Dropped      int
	Unmatched    int
	SkillUpdated bool
}

// ReferenceService 는 CMS 조회 → 변환/분류 → 파일 기록 → SKILL.md 갱신을 순서대로 수행한다.
type ReferenceService struct {
	client CMSClient
	opts   GenerateOptions
}

func NewReferenceService(client CMSClient, opts GenerateOptions) *ReferenceService {
	return &ReferenceService{client: client, opts: opts}
}

func (s *ReferenceService) Generate(ctx context.Context) (Summary, error) {
	useCases, err := s.fetchUseCaseCategories(ctx)
	if err != nil {
		return Summary{}, err
	}

	logger.Log.Info("Fetching all prompts from CMS...")
	prompts, err := s.client.FetchAllPrompts(ctx, s.promptQuery())
	if err != nil {
		return Summary{}, err
	}
	logger.Log.Infof("Total prompts fetched: %d", len(prompts))

	categorizer := references.NewCategorizer(useCases)
	categorizer.AddAll(prompts)

	writer := references.NewWriter(s.opts.ReferencesDir)
	writer.DryRun = s.opts.DryRun
	if _, err := writer.Clean(); err != nil {
		return Summary{}, err
	}
	files, err := writer.Write(categorizer.Buckets(), useCases)
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{
		Files:        files,
		TotalFetched: len(prompts),
		Dropped:      categorizer.Dropped(),
		Unmatched:    categorizer.Unmatched(),
	}

	if s.opts.DryRun {
		logger.Log.Debugf("[dry-run] references block:%s", skilldoc.RenderReferences(files, useCases))
	} else if s.opts.SkillMDPath != "" {
		updated, err := skilldoc.UpdateFile(s.opts.SkillMDPath, files, useCases)
		if err != nil {
			return summary, err
		}
		summary.SkillUpdated = updated
	}

	logger.InfoWithFields("Generation Complete", logger.Fields{
		"files":         len(summary.Files),
		"total_fetched": summary.TotalFetched,
		"dropped":       summary.Dropped,
		"unmatched":     summary.Unmatched,
		"dry_run":       s.opts.DryRun,
	})
	return summary, nil
}

func (s *ReferenceService) fetchUseCaseCategories(ctx context.Context) ([]models.FilterCategory, error) {
	logger.Log.Info("Fetching categories from CMS...")
	resp, err := s.client.ListCategories(ctx, cmsclient.CategoryQuery{
		Limit:    s.opts.CMS.CategoryLimit,
		Sort:     "sort",
		Locale:   s.opts.CMS.Locale,
		Campaign: s.opts.CMS.Campaign,
	})
	if err != nil {
		return nil, fmt.Errorf("fetch categories: %w", err)
	}
	logger.Log.Infof("Found %d categories", len(resp.Docs))

	useCases := references.UseCaseCategories(references.NormalizeCategories(resp.Docs))
	logger.Log.Infof("Found %d use-case categories", len(useCases))
	return useCases, nil
}

func (s *ReferenceService) promptQuery() cmsclient.PromptQuery {
	return cmsclient.PromptQuery{
		Limit:  s.opts.CMS.PageSize,
		Sort:   cmsclient.DefaultPromptSort,
		Depth:  2,
		Locale: s.opts.CMS.Locale,
		Select: cmsclient.DefaultPromptFields,
		Model:  s.opts.CMS.Model,
	}
}
