package filesystem

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/revelaction/dragonfly/dict"
)

const dictExt = ".json"

// DictStore keeps one <lang>.json file per language in root.
type DictStore struct {
	root string
}

var _ dict.Repository = (*DictStore)(nil)

func NewDictStore(root string) *DictStore {
	return &DictStore{root: root}
}

// Path returns the file of the dictionary of lang.
func (ds *DictStore) Path(lang string) string {
	return filepath.Join(ds.root, strings.ToLower(lang)+dictExt)
}

func (ds *DictStore) Read(lang string) (dict.Dict, error) {
	content, err := os.ReadFile(ds.Path(lang))
	if errors.Is(err, fs.ErrNotExist) {
		return dict.Dict{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("IO error: %w", err)
	}

	d := dict.Dict{}
	if err := json.Unmarshal(content, &d); err != nil {
		return nil, fmt.Errorf("JSON decoding error in %s: %w", ds.Path(lang), err)
	}
	return d, nil
}

func (ds *DictStore) Write(lang string, d dict.Dict) error {
	data, err := json.Marshal(d)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(ds.root, 0o755); err != nil {
		return err
	}
	return os.WriteFile(ds.Path(lang), data, 0o644)
}

func (ds *DictStore) Languages() ([]string, error) {
	files, err := os.ReadDir(ds.root)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	langs := []string{}
	for _, f := range files {
		if f.IsDir() || filepath.Ext(f.Name()) != dictExt {
			continue
		}
		langs = append(langs, strings.TrimSuffix(f.Name(), dictExt))
	}
	slices.Sort(langs)
	return langs, nil
}
