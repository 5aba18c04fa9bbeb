package magazzino

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

const (
	// StockFilename is the file holding the current stock collection.
	StockFilename = "stock.json"
	// MovementsFilename is the file holding the append-only movement log.
	MovementsFilename = "movements.json"
)

// Store persists the two collections in a directory, one JSON file each.
//
// The two files are independent records: the stock is not rebuilt from the
// movement log, and nothing ties their writes together. A crash between the
// two saves of a logical apply+record leaves them out of step, an accepted
// limitation for a single-operator tool.
type Store struct {
	dir string
}

// NewStore returns a store rooted at dir. The directory is created lazily on
// the first save.
func NewStore(dir string) *Store { return &Store{dir: dir} }

// Dir returns the directory the store persists into.
func (s *Store) Dir() string { return s.dir }

// StockPath returns the path of the stock file.
func (s *Store) StockPath() string { return filepath.Join(s.dir, StockFilename) }

// MovementsPath returns the path of the movement log file.
func (s *Store) MovementsPath() string { return filepath.Join(s.dir, MovementsFilename) }

// LoadStock reads the whole stock collection. A missing file is an empty
// stock, so a fresh directory works without any init step.
func (s *Store) LoadStock() (Stock, error) {
	data, err := os.ReadFile(s.StockPath())
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning, %s does not exist, starting with an empty stock", s.StockPath())
		return Stock{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read stock file %q: %w", s.StockPath(), err)
	}
	stock, err := DecodeStock(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("invalid stock file %q: %w", s.StockPath(), err)
	}
	return stock, nil
}

// SaveStock replaces the stock file with the given collection.
func (s *Store) SaveStock(stock Stock) error {
	var buf bytes.Buffer
	if err := EncodeStock(&buf, stock); err != nil {
		return err
	}
	return s.writeFile(s.StockPath(), buf.Bytes())
}

// LoadJournal reads the whole movement log. A missing file is an empty
// journal.
func (s *Store) LoadJournal() (*Journal, error) {
	data, err := os.ReadFile(s.MovementsPath())
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning, %s does not exist, starting with an empty movement log", s.MovementsPath())
		return NewJournal(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read movement log %q: %w", s.MovementsPath(), err)
	}
	journal, err := DecodeJournal(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("invalid movement log %q: %w", s.MovementsPath(), err)
	}
	return journal, nil
}

// SaveJournal replaces the movement log file with the given journal.
func (s *Store) SaveJournal(j *Journal) error {
	var buf bytes.Buffer
	if err := EncodeJournal(&buf, j); err != nil {
		return err
	}
	return s.writeFile(s.MovementsPath(), buf.Bytes())
}

func (s *Store) writeFile(path string, data []byte) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("cannot create store directory %q: %w", s.dir, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("cannot write %q: %w", path, err)
	}
	return nil
}
