package dict

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

type Manager struct {
	repo   Repository
	logger *slog.Logger
}

func NewManager(repo Repository, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Manager{repo: repo, logger: logger}
}

func (m *Manager) Get(lang string) (Dict, error) {
	return m.repo.Read(lang)
}

func (m *Manager) Languages() ([]string, error) {
	return m.repo.Languages()
}

// Add stores the translation of source. The source is lower-cased and the
// type normalized to an entity type.
func (m *Manager) Add(lang, source, translation, typ string) (Entry, error) {
	d, err := m.repo.Read(lang)
	if err != nil {
		return Entry{}, err
	}

	e := Entry{Translation: translation, Type: NormalizeType(typ)}
	d[strings.ToLower(source)] = e
	if err := m.repo.Write(lang, d); err != nil {
		return Entry{}, err
	}
	return e, nil
}

// Delete removes source and reports whether it was present.
func (m *Manager) Delete(lang, source string) (bool, error) {
	d, err := m.repo.Read(lang)
	if err != nil {
		return false, err
	}

	source = strings.ToLower(source)
	if _, ok := d[source]; !ok {
		return false, nil
	}
	delete(d, source)
	return true, m.repo.Write(lang, d)
}

// Merge overlays td on the dictionary of lang.
func (m *Manager) Merge(lang string, td Dict) error {
	d, err := m.repo.Read(lang)
	if err != nil {
		return err
	}
	for k, v := range td {
		d[k] = v
	}
	return m.repo.Write(lang, d)
}

// Export writes the dictionary of lang as source<TAB>translation<TAB>type
// lines and returns the number of lines.
func (m *Manager) Export(lang string, w io.Writer) (int, error) {
	d, err := m.repo.Read(lang)
	if err != nil {
		return 0, err
	}

	bw := bufio.NewWriter(w)
	count := 0
	for _, source := range d.Sources() {
		e := d[source]
		if _, err := fmt.Fprintf(bw, "%s\t%s\t%s\n", source, e.Translation, e.Type); err != nil {
			return count, err
		}
		count++
	}
	return count, bw.Flush()
}

// Import reads source<TAB>translation<TAB>type lines. Sources already in the
// dictionary are kept. It returns the number of added entries.
func (m *Manager) Import(lang string, r io.Reader) (int, error) {
	td, err := m.decode(lang, r)
	if err != nil {
		return 0, err
	}

	d, err := m.repo.Read(lang)
	if err != nil {
		return 0, err
	}

	count := 0
	for source, e := range td {
		if _, ok := d[source]; ok {
			continue
		}
		d[source] = e
		count++
	}

	if err := m.repo.Write(lang, d); err != nil {
		return 0, err
	}
	return count, nil
}

// ImportOverwrite is Import, but the imported lines replace the entries
// already in the dictionary. It returns the number of imported entries.
func (m *Manager) ImportOverwrite(lang string, r io.Reader) (int, error) {
	td, err := m.decode(lang, r)
	if err != nil {
		return 0, err
	}
	if err := m.Merge(lang, td); err != nil {
		return 0, err
	}
	return len(td), nil
}

// decode reads the lines of an import. Rows without 3 fields are skipped.
// The first line of a repeated source wins.
func (m *Manager) decode(lang string, r io.Reader) (Dict, error) {
	td := Dict{}
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		row := strings.Split(strings.TrimSuffix(scanner.Text(), "\r"), "\t")
		if len(row) != 3 {
			m.logger.Warn("row without 3 columns", "lang", lang, "line", line, "fields", len(row))
			continue
		}
		if _, ok := td[row[0]]; ok {
			continue
		}
		td[row[0]] = Entry{Translation: row[1], Type: row[2]}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return td, nil
}
