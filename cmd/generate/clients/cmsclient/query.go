package cmsclient

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// Params 는 CMS(Payload REST API)가 이해하는 중첩 쿼리를 표현한다.
// 값으로 string, bool, int, []string, Params 를 허용한다.
//
//	Params{"where": Params{"model": Params{"equals": "x"}}}
//	=> where[model][equals]=x
type Params map[string]any

// Encode 는 Params 를 qs 스타일(bracket notation) 쿼리 문자열로 직렬화한다.
// 결정적인 URL 을 위해 키는 정렬된 순서로 출력한다. 앞에 '?' 는 붙이지 않는다.
func (p Params) Encode() string {
	var pairs []string
	p.flatten("", &pairs)
	return strings.Join(pairs, "&")
}

func (p Params) flatten(prefix string, pairs *[]string) {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		key := k
		if prefix != "" {
			key = prefix + "[" + k + "]"
		}
		switch v := p[k].(type) {
		case nil:
			// qs 와 동일하게 null 은 키만 남기지 않고 생략한다.
		case Params:
			v.flatten(key, pairs)
		case []string:
			for i, item := range v {
				appendPair(pairs, key+"["+strconv.Itoa(i)+"]", item)
			}
		case string:
			appendPair(pairs, key, v)
		case bool:
			appendPair(pairs, key, strconv.FormatBool(v))
		case int:
			appendPair(pairs, key, strconv.Itoa(v))
		default:
			appendPair(pairs, key, fmt.Sprint(v))
		}
	}
}

func appendPair(pairs *[]string, key, value string) {
	*pairs = append(*pairs, url.QueryEscape(key)+"="+url.QueryEscape(value))
}

// -------------------- Resource queries --------------------

// CategoryQuery 는 GET /api/prompt-categories 조회 조건이다.
type CategoryQuery struct {
	Limit    int
	Sort     string
	Locale   string
	Campaign string
}

func (q CategoryQuery) Params() Params {
	return Params{
		"limit":  q.Limit,
		"sort":   q.Sort,
		"locale": q.Locale,
		"where": Params{
			"campaign": Params{"contains": q.Campaign},
		},
	}
}

// DefaultPromptSort 는 featured 내림차순, sort 오름차순, 게시일 내림차순이다.
var DefaultPromptSort = []string{"-featured", "sort", "-sourcePublishedAt"}

// DefaultPromptFields 는 prompts 조회 시 select 로 요청하는 필드 allow-list 다.
var DefaultPromptFields = []string{
	"id",
	"title",
	"description",
	"content",
	"translatedContent",
	"sourceMedia",
	"video",
	"media",
	"featured",
	"needReferenceImages",
	"imageCategories",
}

// PromptQuery 는 GET /api/prompts 한 페이지 조회 조건이다.
type PromptQuery struct {
	Limit  int
	Page   int
	Sort   []string
	Depth  int
	Locale string
	Select []string
	Model  string
}

func (q PromptQuery) Params() Params {
	sel := Params{}
	for _, f := range q.Select {
		sel[f] = true
	}
	p := Params{
		"limit":  q.Limit,
		"page":   q.Page,
		"sort":   strings.Join(q.Sort, ","),
		"depth":  q.Depth,
		"locale": q.Locale,
		"where": Params{
			"model": Params{"equals": q.Model},
		},
	}
	if len(sel) > 0 {
		p["select"] = sel
	}
	return p
}
