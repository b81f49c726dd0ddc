package zombiezen

import (
	"context"
	"fmt"
	"strings"

	"github.com/revelaction/dragonfly/dict"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

// DictStore keeps all dictionaries in the dict_entries table.
type DictStore struct {
	pool *sqlitex.Pool
}

var _ dict.Repository = (*DictStore)(nil)

func NewDictStore(pool *sqlitex.Pool) *DictStore {
	return &DictStore{pool: pool}
}

func (ds *DictStore) Read(lang string) (dict.Dict, error) {
	conn, err := ds.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer ds.pool.Put(conn)

	d := dict.Dict{}
	err = sqlitex.Execute(conn, "SELECT source, translation, type FROM dict_entries WHERE lang = ?", &sqlitex.ExecOptions{
		Args: []any{strings.ToLower(lang)},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			d[stmt.ColumnText(0)] = dict.Entry{
				Translation: stmt.ColumnText(1),
				Type:        stmt.ColumnText(2),
			}
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	return d, nil
}

// Write replaces all entries of lang in one savepoint.
func (ds *DictStore) Write(lang string, d dict.Dict) (err error) {
	conn, err := ds.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer ds.pool.Put(conn)

	defer sqlitex.Save(conn)(&err)

	lang = strings.ToLower(lang)
	err = sqlitex.Execute(conn, "DELETE FROM dict_entries WHERE lang = ?", &sqlitex.ExecOptions{
		Args: []any{lang},
	})
	if err != nil {
		return fmt.Errorf("failed to clear dictionary %s: %w", lang, err)
	}

	for _, source := range d.Sources() {
		e := d[source]
		err = sqlitex.Execute(conn, "INSERT INTO dict_entries (lang, source, translation, type) VALUES (?, ?, ?, ?)", &sqlitex.ExecOptions{
			Args: []any{lang, source, e.Translation, e.Type},
		})
		if err != nil {
			return fmt.Errorf("failed to insert entry %q: %w", source, err)
		}
	}

	return nil
}

func (ds *DictStore) Languages() ([]string, error) {
	conn, err := ds.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer ds.pool.Put(conn)

	langs := []string{}
	err = sqlitex.Execute(conn, "SELECT DISTINCT lang FROM dict_entries ORDER BY lang", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			langs = append(langs, stmt.ColumnText(0))
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	return langs, nil
}
