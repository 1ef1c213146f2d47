package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

// 필수 환경변수 키
const (
	EnvCMSHost   = "CMS_HOST"
	EnvCMSAPIKey = "CMS_API_KEY"
	EnvLogLevel  = "LOG_LEVEL"
)

// ErrMissingSetting 은 필수 설정 값이 비어 있을 때 반환된다.
var ErrMissingSetting = errors.New("missing required setting")

type AppConfig struct {
	Logging LoggingConfig `yaml:"logging"`
	CMS     CMSConfig     `yaml:"cms"`
	Output  OutputConfig  `yaml:"output"`

	// CMSHost, CMSAPIKey 는 yaml 이 아니라 환경변수(.env 포함)에서만 읽는다.
	CMSHost   string `yaml:"-"`
	CMSAPIKey string `yaml:"-"`

	// BasePath 는 config.yaml 이 위치한 디렉토리다. 상대 경로 출력 설정의 기준이 된다.
	BasePath string `yaml:"-"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// CMSConfig 는 CMS 조회 조건을 정의한다.
// 값이 비어 있으면 Defaults 의 값을 사용한다.
type CMSConfig struct {
	Campaign      string `yaml:"campaign"`
	Model         string `yaml:"model"`
	Locale        string `yaml:"locale"`
	PageSize      int    `yaml:"page_size"`
	CategoryLimit int    `yaml:"category_limit"`
	Timeout       string `yaml:"timeout"`
}

type OutputConfig struct {
	ReferencesDir string `yaml:"references_dir"`
	SkillMD       string `yaml:"skill_md"`
}

// Defaults 는 config.yaml 이 없거나 일부 키가 비어 있을 때 적용되는 기본 설정이다.
func Defaults() AppConfig {
	return AppConfig{
		Logging: LoggingConfig{Level: "info"},
		CMS: CMSConfig{
			Campaign:      "nano-banana-pro-prompts",
			Model:         "nano-banana-pro",
			Locale:        "en",
			PageSize:      100,
			CategoryLimit: 9999,
			Timeout:       "30s",
		},
		Output: OutputConfig{
			ReferencesDir: "references",
			SkillMD:       "SKILL.md",
		},
	}
}

// Load 는 basePath 기준으로 .env 와 config.yaml 을 읽어 AppConfig 를 만든다.
// basePath 가 비어 있으면 GetBasePath 로 탐색한다.
// config.yaml 이 없으면 기본값만 사용하지만, 파싱 실패는 에러로 반환한다.
// 필수 값 검증은 Validate 에서 수행한다.
func Load(basePath string) (AppConfig, error) {
	if basePath == "" {
		basePath = GetBasePath()
	}
	if basePath == "" {
		if cwd, err := os.Getwd(); err == nil {
			basePath = cwd
		}
	}

	// .env 는 선택 사항이다. 이미 설정된 환경변수는 덮어쓰지 않는다.
	_ = godotenv.Load(filepath.Join(basePath, ENV_FILE))

	c := Defaults()
	data, err := os.ReadFile(filepath.Join(basePath, CONFIG_FILE))
	switch {
	case err == nil:
		var fileCfg AppConfig
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return AppConfig{}, fmt.Errorf("parse %s: %w", CONFIG_FILE, err)
		}
		c.merge(fileCfg)
	case errors.Is(err, os.ErrNotExist):
	default:
		return AppConfig{}, fmt.Errorf("read %s: %w", CONFIG_FILE, err)
	}

	c.BasePath = basePath
	c.CMSHost = strings.TrimRight(strings.TrimSpace(os.Getenv(EnvCMSHost)), "/")
	c.CMSAPIKey = strings.TrimSpace(os.Getenv(EnvCMSAPIKey))
	if lv := strings.TrimSpace(os.Getenv(EnvLogLevel)); lv != "" {
		c.Logging.Level = lv
	}
	return c, nil
}

// Validate 는 네트워크 호출 전에 필수 설정을 검사한다.
func (c AppConfig) Validate() error {
	var missing []string
	if c.CMSHost == "" {
		missing = append(missing, EnvCMSHost)
	}
	if c.CMSAPIKey == "" {
		missing = append(missing, EnvCMSAPIKey)
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s environment variables are required", ErrMissingSetting, strings.Join(missing, " and "))
	}
	if _, err := c.CMS.TimeoutDuration(); err != nil {
		return err
	}
	return nil
}

// TimeoutDuration 은 cms.timeout 문자열을 time.Duration 으로 변환한다.
func (c CMSConfig) TimeoutDuration() (time.Duration, error) {
	if c.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid cms.timeout %q: %w", c.Timeout, err)
	}
	return d, nil
}

// ResolvePath 는 상대 경로를 BasePath 기준 절대 경로로 바꾼다.
func (c AppConfig) ResolvePath(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.BasePath, p)
}

func (c *AppConfig) merge(o AppConfig) {
	if o.Logging.Level != "" {
		c.Logging.Level = o.Logging.Level
	}
	if o.CMS.Campaign != "" {
		c.CMS.Campaign = o.CMS.Campaign
	}
	if o.CMS.Model != "" {
		c.CMS.Model = o.CMS.Model
	}
	if o.CMS.Locale != "" {
		c.CMS.Locale = o.CMS.Locale
	}
	if o.CMS.PageSize > 0 {
		c.CMS.PageSize = o.CMS.PageSize
	}
	if o.CMS.CategoryLimit > 0 {
		c.CMS.CategoryLimit = o.CMS.CategoryLimit
	}
	if o.CMS.Timeout != "" {
		c.CMS.Timeout = o.CMS.Timeout
	}
	if o.Output.ReferencesDir != "" {
		c.Output.ReferencesDir = o.Output.ReferencesDir
	}
	if o.Output.SkillMD != "" {
		c.Output.SkillMD = o.Output.SkillMD
	}
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
