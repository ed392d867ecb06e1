package consolidate

import (
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestNewTokenizerRejectsUnknownKind(t *testing.T) {
	_, err := NewTokenizer("bogus", "", "", zap.NewNop())
	if err == nil {
		t.Fatal("expected error for unknown tokenizer kind")
	}
	if !strings.Contains(err.Error(), "bogus") {
		t.Errorf("error should name the rejected kind: %v", err)
	}
}

func TestNewTokenizerKindIsCaseInsensitive(t *testing.T) {
	// Only the dispatch is under test; the loaders themselves need encoding
	// data and are exercised end to end by the CLI.
	_, err := NewTokenizer("TIKTOKEN", "", "", zap.NewNop())
	if err != nil && strings.Contains(err.Error(), "unsupported tokenizer type") {
		t.Errorf("upper-case kind should dispatch to tiktoken, got %v", err)
	}
}
