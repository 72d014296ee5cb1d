package caches

import (
	"crypto/sha256"
	"encoding/gob"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/reusee/ginc/ginlang"
	"github.com/reusee/ginc/logs"
)

// PackageID identifies a source file by its path, its content and the tab width it is lexed at.
// Parsed positions carry the path, so files of the same content do not share entries.
type PackageID string

func Fingerprint(path string, content []byte, tabWidth int) PackageID {
	h := sha256.New()
	fmt.Fprintf(h, "%s\x00%d\x00", path, tabWidth)
	h.Write(content)
	return PackageID(hex.EncodeToString(h.Sum(nil)))
}

// Entry is a parsed unit and the units it imports
type Entry struct {
	ID     PackageID
	DepIDs []PackageID
	File   *ginlang.File
}

const entryExt = ".gob"

type Cache struct {
	dir    string
	logger logs.Logger
}

func New(dir string, logger logs.Logger) *Cache {
	return &Cache{
		dir:    dir,
		logger: logger,
	}
}

func (c *Cache) Dir() string {
	return c.dir
}

func (c *Cache) path(id PackageID) string {
	return filepath.Join(c.dir, string(id)+entryExt)
}

// Get returns false for absent entries. Undecodable entries are removed and reported absent.
func (c *Cache) Get(id PackageID) (*Entry, bool, error) {
	f, err := os.Open(c.path(id))
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	} else if err != nil {
		return nil, false, err
	}
	defer f.Close()

	var entry Entry
	if err := gob.NewDecoder(f).Decode(&entry); err != nil {
		c.logger.Warn("drop broken cache entry", "id", id, "error", err)
		if err := os.Remove(c.path(id)); err != nil {
			return nil, false, err
		}
		return nil, false, nil
	}
	if entry.ID != id {
		return nil, false, fmt.Errorf("cache entry %s: id mismatch: %s", id, entry.ID)
	}
	return &entry, true, nil
}

func (c *Cache) Put(entry *Entry) error {
	if entry.ID == "" {
		return fmt.Errorf("cache entry without id")
	}
	if err := os.MkdirAll(c.dir, 0755); err != nil {
		return err
	}

	// write then rename, readers never see partial entries
	f, err := os.CreateTemp(c.dir, "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())
	if err := gob.NewEncoder(f).Encode(entry); err != nil {
		f.Close()
		return fmt.Errorf("encode cache entry %s: %w", entry.ID, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	if err := os.Rename(f.Name(), c.path(entry.ID)); err != nil {
		return err
	}

	c.logger.Debug("cache put", "id", entry.ID, "deps", len(entry.DepIDs))
	return nil
}

// IDs lists the stored entries
func (c *Cache) IDs() ([]PackageID, error) {
	entries, err := os.ReadDir(c.dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	var ret []PackageID
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, entryExt) {
			continue
		}
		ret = append(ret, PackageID(strings.TrimSuffix(name, entryExt)))
	}
	return ret, nil
}
