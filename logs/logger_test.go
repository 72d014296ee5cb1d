package logs

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/ginc/cmds"
	"github.com/reusee/ginc/modes"
)

func TestLogger(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(new(Module), modes.ForTest(t)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
	) {
		ctx := WithUnit(context.Background(), "foo.gin")
		logger.InfoContext(ctx, "parsed", "items", 3)
		logger.With("pass", "check").InfoContext(ctx, "done")
		logger.Info("no unit")
	})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %q", buf.String())
	}
	if !strings.Contains(lines[0], "gin.unit=foo.gin") ||
		!strings.Contains(lines[0], "items=3") {
		t.Fatalf("got %v", lines[0])
	}
	if !strings.Contains(lines[1], "gin.unit=foo.gin") ||
		!strings.Contains(lines[1], "pass=check") {
		t.Fatalf("got %v", lines[1])
	}
	if strings.Contains(lines[2], "gin.unit") {
		t.Fatalf("got %v", lines[2])
	}
}

func TestLogLevel(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(new(Module), modes.ForTest(t)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
	) {
		defer level.Set(level.Level())
		if err := cmds.GlobalExecutor.Execute([]string{"-log-warn"}); err != nil {
			t.Fatal(err)
		}
		logger.Info("hidden")
		logger.Warn("shown")
	})
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Fatalf("got %q", buf.String())
	}
}

func TestWrapUnit(t *testing.T) {
	base := errors.New("boom")
	if err := WrapUnit(context.Background(), base); err != base {
		t.Fatalf("got %v", err)
	}
	if err := WrapUnit(context.Background(), nil); err != nil {
		t.Fatalf("got %v", err)
	}
	err := WrapUnit(WithUnit(context.Background(), "a/b.gin"), base)
	if !errors.Is(err, base) {
		t.Fatalf("got %v", err)
	}
	if !strings.Contains(err.Error(), "unit: a/b.gin") {
		t.Fatalf("got %v", err)
	}
}

func TestJournalKey(t *testing.T) {
	if got := journalKey("gin.unit"); got != "GIN_UNIT" {
		t.Fatalf("got %v", got)
	}
}
