package trace

import (
	"context"
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// 컨텍스트에 저장되는 키 타입은 외부에서 직접 사용하지 못하게 unexported로 둔다.
type ctxKey string

const ctxKeyTrace ctxKey = "trace_info"

// Info는 한 번의 생성 실행(run)에 대한 트레이싱 정보를 담는다.
// - RunID: 실행 단위로 고유
// - spanSeq: 동일 RunID 내에서 각 outbound 호출마다 1,2,3,... 순차 증가
type Info struct {
	RunID   string
	spanSeq int64
}

// GenerateID는 트레이싱에 사용할 랜덤 ID를 생성한다.
func GenerateID() string {
	return uuid.NewString()
}

// WithRun은 새 RunID 를 발급해 컨텍스트에 저장하고, 발급된 RunID 를 함께 반환한다.
func WithRun(ctx context.Context) (context.Context, string) {
	runID := GenerateID()
	return WithRunID(ctx, runID), runID
}

// WithRunID는 주어진 RunID 와 초기 span 0 을 컨텍스트에 저장한다.
func WithRunID(ctx context.Context, runID string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxKeyTrace, &Info{RunID: runID})
}

func infoFromContext(ctx context.Context) *Info {
	if ctx == nil {
		return nil
	}
	v, _ := ctx.Value(ctxKeyTrace).(*Info)
	return v
}

// RunIDFromContext는 컨텍스트에서 RunID 를 조회한다.
func RunIDFromContext(ctx context.Context) string {
	info := infoFromContext(ctx)
	if info == nil {
		return ""
	}
	return info.RunID
}

// NextSpanID는 동일한 RunID 내에서 spanSeq를 1 증가시키고, (runID, spanID 문자열)를 반환한다.
func NextSpanID(ctx context.Context) (string, string) {
	info := infoFromContext(ctx)
	if info == nil {
		// WithRun 바깥에서 사용된 경우를 대비한 fallback
		return GenerateID(), "1"
	}
	val := atomic.AddInt64(&info.spanSeq, 1)
	if val <= 0 {
		val = 1
	}
	return info.RunID, strconv.FormatInt(val, 10)
}
