package content

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/zyedidia/generic/mapset"
)

// File names of the two content tables inside the data directory.
const (
	RoomsFile = "rooms.csv"
	ItemsFile = "items.csv"
)

// recognizedRoomKeys and recognizedItemKeys are the columns the game reads.
// Unknown columns are kept in the record but reported once, since they are
// usually typos in hand-edited tables.
var (
	recognizedRoomKeys = keySet("name", "type", "color", "probability", "max_loot",
		"flavor_text", "inspect_passed", "action1", "action2", "action3", "action4", "action5")
	recognizedItemKeys = keySet("name", "probability", "tier0", "tier1", "tier2")
)

func keySet(keys ...string) mapset.Set[string] {
	s := mapset.New[string]()
	for _, k := range keys {
		s.Put(k)
	}
	return s
}

// LoadCatalog reads the rooms and items tables from dir and builds a catalog.
// A missing file yields an empty record set for that table (logged, not an
// error); the catalog's fallback chain takes over from there.
func LoadCatalog(dir string) *Catalog {
	rooms := loadTable(filepath.Join(dir, RoomsFile), recognizedRoomKeys)
	items := loadTable(filepath.Join(dir, ItemsFile), recognizedItemKeys)
	return NewCatalog(rooms, items)
}

// loadTable reads one CSV table into records. Returns nil when the file
// does not exist or cannot be parsed.
func loadTable(path string, recognized mapset.Set[string]) []Record {
	f, err := os.Open(path)
	if err != nil {
		log.Printf("Warning: %s not found, using fallback data", path)
		return nil
	}
	defer f.Close()

	records, err := ReadRecords(f, recognized)
	if err != nil {
		log.Printf("Warning: cannot parse %s: %v, using fallback data", path, err)
		return nil
	}
	return records
}

// ReadRecords parses a CSV table from r. The first row is the header; keys
// and values are trimmed, and columns with an empty header are skipped.
func ReadRecords(r io.Reader, recognized mapset.Set[string]) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // tolerate ragged rows; missing cells read as absent keys
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	for i, h := range header {
		header[i] = strings.TrimSpace(h)
	}
	reportUnknownColumns(header, recognized)

	var records []Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		rec := make(Record, len(header))
		for i, key := range header {
			if key == "" || i >= len(row) {
				continue
			}
			rec[key] = strings.TrimSpace(row[i])
		}
		records = append(records, rec)
	}
	return records, nil
}

// reportUnknownColumns logs header columns the game will never read.
func reportUnknownColumns(header []string, recognized mapset.Set[string]) {
	for _, key := range header {
		if key != "" && !recognized.Has(key) {
			log.Printf("Warning: unrecognized content column %q", key)
		}
	}
}
