package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/reusee/dscope"
	"github.com/reusee/ginc/builds"
	"github.com/reusee/ginc/cmds"
	"github.com/reusee/ginc/configs"
	"github.com/reusee/ginc/docs"
	"github.com/reusee/ginc/ginlang"
	"github.com/reusee/ginc/inspects"
	"github.com/reusee/ginc/logs"
	"github.com/reusee/ginc/manifests"
	"github.com/reusee/ginc/vars"
	"go.yaml.in/yaml/v3"
)

func init() {
	cmds.Define("tokens", cmds.Func(func(path string) {
		setAction("tokens", func(scope dscope.Scope) error {
			content, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			tabWidth := dscope.Get[configs.TabWidth](scope)
			logger := dscope.Get[logs.Logger](scope)
			return printTokens(os.Stdout, ginlang.NewSource(path, string(content)), ginlang.Options{
				TabWidth: int(tabWidth),
				Logger:   logger,
			})
		})
	}).Desc("print the tokens of a source file"))

	cmds.Define("ast", cmds.Func(func(path string) {
		setAction("ast", func(scope dscope.Scope) error {
			unit, err := parseFile(scope, path)
			if err != nil {
				return err
			}
			fmt.Println(ginlang.Sprint(unit.File))
			return reportErrors(os.Stderr, unit.Errors)
		})
	}).Desc("print the syntax tree of a source file"))

	cmds.Define("check", cmds.Func(func(dir *string) {
		setAction("check", func(scope dscope.Scope) error {
			check := dscope.Get[builds.Check](scope)
			report, err := check(context.Background(), vars.FirstNonZero(*dir, "."))
			if err != nil {
				return err
			}
			return printReport(os.Stdout, os.Stderr, report)
		})
	}).Desc("parse every source file of a project"))

	cmds.Define("doc", cmds.Func(func(path string) {
		setAction("doc", func(scope dscope.Scope) error {
			unit, err := parseFile(scope, path)
			if err != nil {
				return err
			}
			if err := reportErrors(os.Stderr, unit.Errors); err != nil {
				return err
			}
			return docs.Render(os.Stdout, unit.File, int(dscope.Get[configs.DocWidth](scope)))
		})
	}).Desc("print the documentation of a source file"))

	cmds.Define("query", cmds.Func(func(path string, expr string) {
		setAction("query", func(scope dscope.Scope) error {
			unit, err := parseFile(scope, path)
			if err != nil {
				return err
			}
			value, err := inspects.Query(unit.File, expr)
			if err != nil {
				return err
			}
			fmt.Println(value)
			return nil
		})
	}).Desc("evaluate a starlark expression over the items of a source file"))

	cmds.Define("tap", cmds.Func(func(path string) {
		setAction("tap", func(scope dscope.Scope) error {
			unit, err := parseFile(scope, path)
			if err != nil {
				return err
			}
			tap := dscope.Get[inspects.Tap](scope)
			tap(context.Background(), path, inspects.Globals(unit.File))
			return nil
		})
	}).Desc("start a starlark session over the items of a source file"))

	cmds.Define("repl", cmds.Func(func() {
		setAction("repl", func(scope dscope.Scope) error {
			tabWidth := dscope.Get[configs.TabWidth](scope)
			cacheDir := dscope.Get[configs.CacheDir](scope)
			logger := dscope.Get[logs.Logger](scope)
			return runREPL(int(tabWidth), filepath.Join(string(cacheDir), "repl_history"), logger)
		})
	}).Desc("parse lines interactively"))

	cmds.Define("manifest", cmds.Func(func(dir *string) {
		setAction("manifest", func(scope dscope.Scope) error {
			manifest, err := manifests.Load(vars.FirstNonZero(*dir, "."))
			if err != nil {
				return err
			}
			return printManifest(os.Stdout, manifest)
		})
	}).Desc("print the project manifest"))
}

func parseFile(scope dscope.Scope, path string) (*builds.Unit, error) {
	parseUnit := dscope.Get[builds.ParseUnit](scope)
	return parseUnit(context.Background(), filepath.Dir(path), filepath.Base(path))
}

func printTokens(w io.Writer, source *ginlang.Source, options ginlang.Options) error {
	lexer := ginlang.NewLexer(source, options)
	var tokens []ginlang.Token
	for tok := range lexer.Tokens() {
		tokens = append(tokens, tok)
	}
	for i, semantic := range ginlang.SemanticTokens(tokens) {
		tok := tokens[i]
		line := fmt.Sprintf("%d:%d\t%s", tok.Span.Start.Line, tok.Span.Start.Column, tok)
		if semantic != ginlang.SemanticNone {
			line += "\t" + semantic.String()
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return reportErrors(w, lexer.Diagnostics())
}

func reportErrors(w io.Writer, errs []error) error {
	for _, err := range errs {
		fmt.Fprintln(w, err)
	}
	if len(errs) > 0 {
		return errFailed
	}
	return nil
}

func printReport(out io.Writer, errOut io.Writer, report *builds.Report) error {
	if report.Manifest != nil {
		fmt.Fprintf(out, "%s %s\n", report.Manifest.Name, report.Manifest.Version)
	}
	for _, unit := range report.Units {
		status := "ok"
		if len(unit.Errors) > 0 {
			status = fmt.Sprintf("%d errors", len(unit.Errors))
		}
		fmt.Fprintf(out, "%s\t%d items\t%s\n", unit.Path, len(unit.File.Items), status)
	}
	var errs []error
	for _, unit := range report.Units {
		errs = append(errs, unit.Errors...)
	}
	return reportErrors(errOut, errs)
}

func printManifest(w io.Writer, manifest *manifests.Manifest) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(manifest); err != nil {
		return err
	}
	return encoder.Close()
}
