package builds

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/ginc/caches"
	"github.com/reusee/ginc/configs"
	"github.com/reusee/ginc/ginlang"
	"github.com/reusee/ginc/manifests"
	"github.com/reusee/ginc/modes"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func newScope(t *testing.T) dscope.Scope {
	cacheDir := t.TempDir()
	return dscope.New(new(Module), modes.ForTest(t)).Fork(
		func() configs.CacheDir {
			return configs.CacheDir(cacheDir)
		},
		func() configs.SearchDirs {
			return nil
		},
	)
}

func TestParseUnit(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"main.gin":      "use util.math\n\nmain: add(1, 2)\n",
		"util/math.gin": "add(a, b): a + b\n",
	})
	newScope(t).Call(func(
		parseUnit ParseUnit,
		cache *caches.Cache,
	) {
		ctx := context.Background()
		unit, err := parseUnit(ctx, dir, "main.gin")
		if err != nil {
			t.Fatal(err)
		}
		if unit.Cached || unit.Err() != nil {
			t.Fatalf("got %v %v", unit.Cached, unit.Err())
		}
		if unit.File.Lookup("main") == nil {
			t.Fatal("main not found")
		}

		entry, ok, err := cache.Get(unit.ID)
		if err != nil || !ok {
			t.Fatalf("got %v %v", ok, err)
		}
		content, err := os.ReadFile(filepath.Join(dir, "util/math.gin"))
		if err != nil {
			t.Fatal(err)
		}
		if !slices.Equal(entry.DepIDs, []caches.PackageID{caches.Fingerprint(filepath.Join("util", "math.gin"), content, ginlang.DefaultTabWidth)}) {
			t.Fatalf("got %v", entry.DepIDs)
		}

		again, err := parseUnit(ctx, dir, "main.gin")
		if err != nil {
			t.Fatal(err)
		}
		if !again.Cached || again.ID != unit.ID {
			t.Fatalf("got %+v", again)
		}
		if ginlang.Sprint(again.File) != ginlang.Sprint(unit.File) {
			t.Fatalf("got %v", ginlang.Sprint(again.File))
		}

		if _, err := parseUnit(ctx, dir, "missing.gin"); !errors.Is(err, os.ErrNotExist) {
			t.Fatalf("got %v", err)
		}
	})
}

func TestParseUnitErrors(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"bad.gin": "x: 1\nx: 2\n",
	})
	newScope(t).Call(func(
		parseUnit ParseUnit,
		cache *caches.Cache,
	) {
		for range 2 {
			unit, err := parseUnit(context.Background(), dir, "bad.gin")
			if err != nil {
				t.Fatal(err)
			}
			if unit.Cached {
				t.Fatal("should not be cached")
			}
			if !errors.Is(unit.Err(), ginlang.ErrDuplicateBinding) {
				t.Fatalf("got %v", unit.Err())
			}
		}
		ids, err := cache.IDs()
		if err != nil || len(ids) != 0 {
			t.Fatalf("got %v %v", ids, err)
		}
	})
}

func TestParseUnitTabWidth(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"main.gin": "f:\n\tx: 1\n        y: 2\nreturn y\n",
	})
	scope := newScope(t)
	parseAt := func(width int) *Unit {
		var unit *Unit
		scope.Fork(func() configs.TabWidth {
			return configs.TabWidth(width)
		}).Call(func(parseUnit ParseUnit) {
			var err error
			unit, err = parseUnit(context.Background(), dir, "main.gin")
			if err != nil {
				t.Fatal(err)
			}
		})
		return unit
	}

	wide := parseAt(8)
	if wide.Cached || wide.Err() != nil {
		t.Fatalf("got %v %v", wide.Cached, wide.Err())
	}
	narrow := parseAt(4)
	if narrow.Cached || narrow.Err() == nil {
		t.Fatalf("got %v %v", narrow.Cached, narrow.Err())
	}
	if narrow.ID == wide.ID {
		t.Fatal("should differ")
	}
	if again := parseAt(8); !again.Cached {
		t.Fatal("should be cached")
	}
}

func TestParseUnitSameContent(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.gin": "x: 1\n",
		"b.gin": "x: 1\n",
	})
	newScope(t).Call(func(parseUnit ParseUnit) {
		ctx := context.Background()
		a, err := parseUnit(ctx, dir, "a.gin")
		if err != nil {
			t.Fatal(err)
		}
		b, err := parseUnit(ctx, dir, "b.gin")
		if err != nil {
			t.Fatal(err)
		}
		if b.Cached || b.ID == a.ID {
			t.Fatalf("got %+v", b)
		}
		again, err := parseUnit(ctx, dir, "b.gin")
		if err != nil {
			t.Fatal(err)
		}
		if !again.Cached || again.File.Source.Name != "b.gin" {
			t.Fatalf("got %+v", again)
		}
		if pos := again.File.Items[0].(*ginlang.DefBind).Pos; pos.Filename != "b.gin" {
			t.Fatalf("got %v", pos)
		}
	})
}

func TestImportPath(t *testing.T) {
	path := ginlang.Path{Root: "http", Segments: []string{"web", "server"}}
	if got := ImportPath(path); got != filepath.Join("http", "web", "server.gin") {
		t.Fatalf("got %v", got)
	}
	if got := ImportPath(ginlang.Path{Root: "io"}); got != "io.gin" {
		t.Fatalf("got %v", got)
	}
}

func TestCheck(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"flask.cue":     `name: "demo", version: "0.1.0"`,
		"main.gin":      "use lib\n\nmain: f 1\n",
		"lib.gin":       "f(x): x * 2\n",
		"broken.gin":    "g: (1\n",
		"README.md":     "not a source",
		".hidden/h.gin": "h: 1\n",
	})
	newScope(t).Call(func(
		check Check,
		cache *caches.Cache,
	) {
		// stale entry
		file, _ := ginlang.Parse(ginlang.NewSource("old.gin", "old: 1\n"), ginlang.Options{})
		if err := cache.Put(&caches.Entry{ID: "stale", File: file}); err != nil {
			t.Fatal(err)
		}

		report, err := check(context.Background(), dir)
		if err != nil {
			t.Fatal(err)
		}
		if report.Manifest == nil || report.Manifest.Name != "demo" {
			t.Fatalf("got %+v", report.Manifest)
		}
		var paths []string
		for _, unit := range report.Units {
			paths = append(paths, unit.Path)
		}
		if !slices.Equal(paths, []string{"broken.gin", "lib.gin", "main.gin"}) {
			t.Fatalf("got %v", paths)
		}
		if report.NumErrors() == 0 || report.Err() == nil {
			t.Fatal("should have errors")
		}
		if report.Units[1].Err() != nil || report.Units[2].Err() != nil {
			t.Fatalf("got %v", report.Err())
		}

		ids, err := cache.IDs()
		if err != nil {
			t.Fatal(err)
		}
		slices.Sort(ids)
		expected := []caches.PackageID{report.Units[1].ID, report.Units[2].ID}
		slices.Sort(expected)
		if !slices.Equal(ids, expected) {
			t.Fatalf("got %v, expected %v", ids, expected)
		}
	})
}

func TestCheckWithoutManifest(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.gin": "a: 1\n",
	})
	newScope(t).Call(func(
		check Check,
	) {
		report, err := check(context.Background(), dir)
		if err != nil {
			t.Fatal(err)
		}
		if report.Manifest != nil || len(report.Units) != 1 || report.Err() != nil {
			t.Fatalf("got %+v", report)
		}
	})
}

func TestCheckBadManifest(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"flask.cue": `description: "nameless"`,
	})
	newScope(t).Call(func(
		check Check,
	) {
		if _, err := check(context.Background(), dir); !errors.Is(err, manifests.ErrMissingField) {
			t.Fatalf("got %v", err)
		}
	})
}
