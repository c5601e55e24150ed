package kv

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Dir stores one file per key under a single directory.
type Dir struct {
	root string
}

func NewDir(root string) (Store, error) {
	err := os.MkdirAll(root, 0755)
	if err != nil {
		return nil, err
	}
	return &Dir{root: root}, nil
}

func (d *Dir) path(key string) (string, error) {
	// keys are simple names; anything that walks the filesystem is a bug
	if key == "" || strings.ContainsAny(key, "/\\") || strings.Contains(key, "..") {
		return "", fmt.Errorf("invalid key %q", key)
	}
	return filepath.Join(d.root, key+".json"), nil
}

func (d *Dir) Get(key string) ([]byte, error) {
	p, err := d.path(key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p)
	if os.IsNotExist(err) {
		return nil, nil
	}
	return data, err
}

func (d *Dir) Set(key string, value []byte) error {
	p, err := d.path(key)
	if err != nil {
		return err
	}
	return os.WriteFile(p, value, 0644)
}

func (d *Dir) Delete(key string) error {
	p, err := d.path(key)
	if err != nil {
		return err
	}
	err = os.Remove(p)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
