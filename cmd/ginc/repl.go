package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/reusee/ginc/ginlang"
	"github.com/reusee/ginc/logs"
)

const (
	promptMain = "gin> "
	promptCont = "...  "
)

func runREPL(tabWidth int, historyPath string, logger logs.Logger) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if err := loadHistory(ln, historyPath); err != nil {
		logger.Debug("read history", "path", historyPath, "error", err)
	}
	defer func() {
		if err := saveHistory(ln, historyPath); err != nil {
			logger.Debug("write history", "path", historyPath, "error", err)
		}
	}()

	for n := 1; ; n++ {
		src, ok := readInput(ln, tabWidth)
		if !ok {
			fmt.Println()
			return nil
		}
		if strings.TrimSpace(src) == "" {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))
		evalInput(os.Stdout, fmt.Sprintf("repl:%d", n), src, tabWidth)
	}
}

type history interface {
	ReadHistory(io.Reader) (int, error)
	WriteHistory(io.Writer) (int, error)
}

// loadHistory treats a missing file as an empty history
func loadHistory(h history, path string) error {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = h.ReadHistory(f)
	return err
}

func saveHistory(h history, path string) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	_, err = h.WriteHistory(f)
	return err
}

// readInput reads lines until they form a complete input
func readInput(ln *liner.State, tabWidth int) (string, bool) {
	var b strings.Builder
	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			return "", false
		} else if err != nil {
			return b.String(), true
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
		if !needsMore(b.String(), tabWidth) {
			return b.String(), true
		}
	}
}

// needsMore reports whether src is an unfinished input.
// Inputs spanning lines end with a blank line.
func needsMore(src string, tabWidth int) bool {
	lines := strings.Split(src, "\n")
	if len(lines) > 1 {
		return strings.TrimSpace(lines[len(lines)-1]) != ""
	}
	if opensBlock(src) {
		return true
	}
	_, errs := ginlang.Parse(ginlang.NewSource("input", src+"\n"), ginlang.Options{
		TabWidth: tabWidth,
	})
	for _, err := range errs {
		if errors.Is(err, ginlang.ErrUnexpectedEOF) {
			return true
		}
	}
	return false
}

func opensBlock(line string) bool {
	line = strings.TrimSpace(line)
	for _, suffix := range []string{":", " is", "::=", "|", " then", " else"} {
		if strings.HasSuffix(line, suffix) {
			return true
		}
	}
	return false
}

func evalInput(w io.Writer, name string, src string, tabWidth int) {
	file, errs := ginlang.Parse(ginlang.NewSource(name, src+"\n"), ginlang.Options{
		TabWidth: tabWidth,
	})
	for _, err := range errs {
		fmt.Fprintln(w, err)
	}
	for _, item := range file.Items {
		line := ginlang.Sprint(item)
		if def, ok := item.(*ginlang.DefBind); ok {
			if t := ginlang.TypeOf(def); t.Kind != ginlang.TypeUnknown {
				line += " : " + t.String()
			}
		}
		fmt.Fprintln(w, line)
	}
}
