package util

import (
	"database/sql"
	"errors"
	"io/fs"

	_ "github.com/mattn/go-sqlite3"
)

/*
 * a registry of images which were already handled. only digests and
 * names are stored, never the decoded text.
 */
type DB struct {
	db        *sql.DB
	rowsLimit uint
}

func ConnectDB(filename string, rowsLimit uint) (*DB, error) {
	dbFilename := filename + "?_journal_mode=WAL"

	db, err := sql.Open("sqlite3", dbFilename)
	if err != nil {
		return nil, err
	}
	final := &DB{
		db,
		rowsLimit,
	}
	if err := final.InitDB(); err != nil {
		db.Close()
		return nil, err
	}
	rows, err := final.Count()
	if err != nil {
		db.Close()
		return nil, err
	}
	if rowsLimit > 0 && uint(rows) > rowsLimit {
		// start over with an empty registry
		db.Close()
		for _, name := range []string{filename, filename + "-wal", filename + "-shm"} {
			if err := ShredFile(name); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return nil, err
			}
		}
		return ConnectDB(filename, rowsLimit)
	}
	return final, nil
}

func (db *DB) Close() error {
	return db.db.Close()
}

func (db *DB) InitDB() error {
	sqlStmt := `create table if not exists images(id integer not null primary key autoincrement, digest text not null, name text);`
	if _, err := db.db.Exec(sqlStmt); err != nil {
		return err
	}
	_, err := db.db.Exec(`create index if not exists digestIdx on images(digest);`)
	return err
}

// Add remembers that content was seen under name.
func (db *DB) Add(name string, content []byte) error {
	_, err := db.db.Exec("insert into images(digest, name) values(?, ?);",
		Digest(content), name)
	return err
}

// IsInDB reports whether content was already added.
func (db *DB) IsInDB(content []byte) (bool, error) {
	var found int
	err := db.db.QueryRow(`select 1 from images where digest = ? limit 1;`,
		Digest(content)).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	return err == nil, err
}

func (db *DB) Count() (int, error) {
	var amount int
	if err := db.db.QueryRow(`select count(*) from images;`).Scan(&amount); err != nil {
		return -1, err
	}
	return amount, nil
}
