// Package loggertest 는 테스트에서 전역 로거 출력을 가로채기 위한 도우미를 제공한다.
package loggertest

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"prompt-references/cmd/internal/logger"
)

// Entry 는 기록된 로그 한 줄이다.
type Entry struct {
	Level   string
	Message string
}

// Recorder 는 logger.Logger 구현으로, 출력 대신 메모리에 로그를 쌓는다.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

// Install 은 전역 logger.Log 를 Recorder 로 바꾸고, 테스트 종료 시 원래 로거로 복원한다.
func Install(t testing.TB) *Recorder {
	t.Helper()
	prev := logger.Log
	r := &Recorder{}
	logger.Log = r
	t.Cleanup(func() { logger.Log = prev })
	return r
}

func (r *Recorder) add(level, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, Entry{Level: level, Message: msg})
}

func (r *Recorder) Debug(args ...any) { r.add("debug", fmt.Sprint(args...)) }
func (r *Recorder) Info(args ...any)  { r.add("info", fmt.Sprint(args...)) }
func (r *Recorder) Warn(args ...any)  { r.add("warn", fmt.Sprint(args...)) }
func (r *Recorder) Error(args ...any) { r.add("error", fmt.Sprint(args...)) }

func (r *Recorder) Debugf(format string, args ...any) { r.add("debug", fmt.Sprintf(format, args...)) }
func (r *Recorder) Infof(format string, args ...any)  { r.add("info", fmt.Sprintf(format, args...)) }
func (r *Recorder) Warnf(format string, args ...any)  { r.add("warn", fmt.Sprintf(format, args...)) }
func (r *Recorder) Errorf(format string, args ...any) { r.add("error", fmt.Sprintf(format, args...)) }

// Entries 는 지금까지 기록된 로그의 복사본을 반환한다.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Has 는 주어진 레벨에서 substr 을 포함하는 메시지가 있었는지 확인한다.
func (r *Recorder) Has(level, substr string) bool {
	for _, e := range r.Entries() {
		if e.Level == level && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
