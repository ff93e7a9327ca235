package catalog

import (
	"bufio"
	"encoding/json"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/gofrs/uuid/v5"
	"github.com/ostafen/interval/store"
)

// Export writes every record, in interval order, to w as a JSON array.
func (c *Catalog) Export(w io.Writer) error {
	records, err := c.List()
	if err != nil {
		return err
	}

	if records == nil {
		records = make([]*Record, 0)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

// ExportFile exports the catalog to a JSON file.
func (c *Catalog) ExportFile(exportPath string) error {
	file, err := os.Create(exportPath)
	if err != nil {
		return err
	}

	return errors.CombineErrors(c.Export(file), file.Close())
}

// Import reads a JSON array of records from r and stores them, replacing the records
// having the same name. Records without an id are given a new one.
// Either every record is imported or none is.
func (c *Catalog) Import(r io.Reader) (int, error) {
	records := make([]*Record, 0)
	if err := json.NewDecoder(bufio.NewReader(r)).Decode(&records); err != nil {
		return 0, errors.Wrap(err, "decoding records")
	}

	err := store.Update(c.store, func(tx store.Tx) error {
		for _, record := range records {
			if record.Name == "" {
				return ErrInvalidName
			}

			existing, err := getRecord(tx, record.Name)
			if err != nil && !errors.Is(err, ErrNotFound) {
				return err
			}

			if existing != nil {
				if err := deleteOrderKey(tx, existing); err != nil {
					return err
				}
			}

			if record.ID.IsNil() {
				if record.ID, err = uuid.NewV4(); err != nil {
					return err
				}
			}

			if err := putRecord(tx, record); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	c.config.Logger.Info("Intervals imported", "count", len(records))
	return len(records), nil
}

// ImportFile imports the records of a JSON file.
func (c *Catalog) ImportFile(importPath string) (int, error) {
	file, err := os.Open(importPath)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	return c.Import(file)
}
