package magazzino

import (
	"encoding/json"
	"fmt"
	"io"
)

// This file handles the persisted form of the two stores. Both are plain JSON
// arrays, read and written in full on every mutation: the data is small, and
// a whole-file write keeps the on-disk form trivially inspectable and
// mergeable by hand.

// DecodeStock reads a stock collection from a JSON array. An empty input
// decodes to an empty stock.
func DecodeStock(r io.Reader) (Stock, error) {
	var entries []Entry
	if err := decodeArray(r, &entries); err != nil {
		return nil, fmt.Errorf("cannot decode stock: %w", err)
	}
	return Stock(entries).Sorted(), nil
}

// EncodeStock writes the stock collection as a JSON array.
func EncodeStock(w io.Writer, s Stock) error {
	return encodeArray(w, []Entry(s.Sorted()))
}

// DecodeJournal reads a movement log from a JSON array. An empty input
// decodes to an empty journal. The recording order on disk is preserved.
func DecodeJournal(r io.Reader) (*Journal, error) {
	var movements []Movement
	if err := decodeArray(r, &movements); err != nil {
		return nil, fmt.Errorf("cannot decode movement log: %w", err)
	}
	return newJournal(movements), nil
}

// EncodeJournal writes the movement log as a JSON array, in recording order.
func EncodeJournal(w io.Writer, j *Journal) error {
	return encodeArray(w, j.movements)
}

// ExportJSON writes v as pretty-printed JSON, the read-only snapshot format
// offered to the operator by the export command.
func ExportJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot export: %w", err)
	}
	out = append(out, '\n')
	_, err = w.Write(out)
	return err
}

func decodeArray[T any](r io.Reader, into *[]T) error {
	dec := json.NewDecoder(r)
	if err := dec.Decode(into); err != nil {
		if err == io.EOF {
			// an empty file is a valid empty collection
			return nil
		}
		return err
	}
	return nil
}

func encodeArray[T any](w io.Writer, items []T) error {
	if items == nil {
		// keep the on-disk form an array even when empty
		items = make([]T, 0)
	}
	enc := json.NewEncoder(w)
	return enc.Encode(items)
}
