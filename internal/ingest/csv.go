// Package ingest loads the three flat input datasets (enrolment, biometric
// update, demographic update) from CSV files and validates their schemas.
package ingest

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/naikNiranjan/UIDAI-data-hackathon/internal/model"
)

// ErrDataFormat is the fatal error class for a missing required column or an
// unparseable cell. The run aborts before any output is written; downstream
// metrics assume complete aggregates.
var ErrDataFormat = eris.New("data format error")

// dateLayout matches the source files' dd-mm-yyyy dates.
const dateLayout = "02-01-2006"

var titleCaser = cases.Title(language.English)

// Datasets bundles the three parsed record collections.
type Datasets struct {
	Enrolment   []model.EnrolmentRecord
	Biometric   []model.BiometricRecord
	Demographic []model.DemographicRecord
}

// header maps lowercased column names to their index in the CSV.
type header map[string]int

// column returns the index for name or an ErrDataFormat if absent.
func (h header) column(name, file string) (int, error) {
	if idx, ok := h[name]; ok {
		return idx, nil
	}
	return 0, eris.Wrapf(ErrDataFormat, "ingest: missing column %q in %s", name, file)
}

// LoadEnrolment reads and concatenates every CSV in dir as enrolment records.
func LoadEnrolment(dir string) ([]model.EnrolmentRecord, error) {
	var records []model.EnrolmentRecord
	err := loadDir(dir, func(file string, h header, rows [][]string) error {
		cols, err := resolveColumns(h, file, "age_0_5", "age_5_17", "age_18_greater")
		if err != nil {
			return err
		}
		for i, row := range rows {
			base, counts, err := parseRow(file, i, row, cols)
			if err != nil {
				return err
			}
			records = append(records, model.EnrolmentRecord{
				Date:     base.date,
				State:    base.state,
				District: base.district,
				Pincode:  base.pincode,
				Age0to5:  counts[0],
				Age5to17: counts[1],
				Age18Up:  counts[2],
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// LoadBiometric reads and concatenates every CSV in dir as biometric-update
// records.
func LoadBiometric(dir string) ([]model.BiometricRecord, error) {
	var records []model.BiometricRecord
	err := loadDir(dir, func(file string, h header, rows [][]string) error {
		cols, err := resolveColumns(h, file, "bio_age_5_17", "bio_age_17_")
		if err != nil {
			return err
		}
		for i, row := range rows {
			base, counts, err := parseRow(file, i, row, cols)
			if err != nil {
				return err
			}
			records = append(records, model.BiometricRecord{
				Date:     base.date,
				State:    base.state,
				District: base.district,
				Pincode:  base.pincode,
				Age5to17: counts[0],
				Age17Up:  counts[1],
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// LoadDemographic reads and concatenates every CSV in dir as
// demographic-update records.
func LoadDemographic(dir string) ([]model.DemographicRecord, error) {
	var records []model.DemographicRecord
	err := loadDir(dir, func(file string, h header, rows [][]string) error {
		cols, err := resolveColumns(h, file, "demo_age_5_17", "demo_age_17_")
		if err != nil {
			return err
		}
		for i, row := range rows {
			base, counts, err := parseRow(file, i, row, cols)
			if err != nil {
				return err
			}
			records = append(records, model.DemographicRecord{
				Date:     base.date,
				State:    base.state,
				District: base.district,
				Pincode:  base.pincode,
				Age5to17: counts[0],
				Age17Up:  counts[1],
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// loadDir lists *.csv in dir (sorted for determinism), parses each file, and
// hands header plus data rows to fn.
func loadDir(dir string, fn func(file string, h header, rows [][]string) error) error {
	matches, err := filepath.Glob(filepath.Join(dir, "*.csv"))
	if err != nil {
		return eris.Wrapf(err, "ingest: glob %s", dir)
	}
	if len(matches) == 0 {
		return eris.Errorf("ingest: no CSV files found in %s", dir)
	}
	sort.Strings(matches)

	total := 0
	for _, file := range matches {
		h, rows, err := readCSV(file)
		if err != nil {
			return err
		}
		if err := fn(file, h, rows); err != nil {
			return err
		}
		total += len(rows)
	}

	zap.L().Info("ingest: loaded dataset",
		zap.String("dir", dir),
		zap.Int("files", len(matches)),
		zap.Int("rows", total),
	)
	return nil
}

// readCSV parses one file into a header map and its data rows.
func readCSV(file string) (header, [][]string, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, nil, eris.Wrapf(err, "ingest: open %s", file)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // validated per-row against the header

	first, err := reader.Read()
	if err == io.EOF {
		return nil, nil, eris.Wrapf(ErrDataFormat, "ingest: empty file %s", file)
	}
	if err != nil {
		return nil, nil, eris.Wrapf(err, "ingest: read header of %s", file)
	}

	h := make(header, len(first))
	for i, name := range first {
		h[strings.ToLower(strings.TrimSpace(name))] = i
	}

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, eris.Wrapf(err, "ingest: read row of %s", file)
		}
		rows = append(rows, row)
	}
	return h, rows, nil
}

// rowColumns holds resolved column indexes for one file: the four location
// columns plus the variant's count columns in request order.
type rowColumns struct {
	date, state, district, pincode int
	counts                         []int
}

// resolveColumns validates that the shared and variant-specific columns exist.
func resolveColumns(h header, file string, countCols ...string) (rowColumns, error) {
	var rc rowColumns
	var err error

	if rc.date, err = h.column("date", file); err != nil {
		return rc, err
	}
	if rc.state, err = h.column("state", file); err != nil {
		return rc, err
	}
	if rc.district, err = h.column("district", file); err != nil {
		return rc, err
	}
	if rc.pincode, err = h.column("pincode", file); err != nil {
		return rc, err
	}
	for _, name := range countCols {
		idx, err := h.column(name, file)
		if err != nil {
			return rc, err
		}
		rc.counts = append(rc.counts, idx)
	}
	return rc, nil
}

// rowBase holds the parsed location fields of one row.
type rowBase struct {
	date                     time.Time
	state, district, pincode string
}

// parseRow parses one data row against the resolved columns. State and
// district labels are trimmed and title-cased; near-duplicate labels that
// survive that ("Westbengal" vs "West Bengal") stay distinct, matching the
// source data.
func parseRow(file string, rowIdx int, row []string, cols rowColumns) (rowBase, []int64, error) {
	var base rowBase

	max := cols.date
	for _, idx := range append([]int{cols.state, cols.district, cols.pincode}, cols.counts...) {
		if idx > max {
			max = idx
		}
	}
	if len(row) <= max {
		return base, nil, eris.Wrapf(ErrDataFormat, "ingest: %s row %d has %d fields, need %d", file, rowIdx+2, len(row), max+1)
	}

	date, err := time.Parse(dateLayout, strings.TrimSpace(row[cols.date]))
	if err != nil {
		return base, nil, eris.Wrapf(ErrDataFormat, "ingest: %s row %d: bad date %q", file, rowIdx+2, row[cols.date])
	}
	base.date = date
	base.state = titleCaser.String(strings.TrimSpace(row[cols.state]))
	base.district = titleCaser.String(strings.TrimSpace(row[cols.district]))
	base.pincode = strings.TrimSpace(row[cols.pincode])

	counts := make([]int64, len(cols.counts))
	for i, idx := range cols.counts {
		n, err := strconv.ParseInt(strings.TrimSpace(row[idx]), 10, 64)
		if err != nil {
			return base, nil, eris.Wrapf(ErrDataFormat, "ingest: %s row %d: bad count %q", file, rowIdx+2, row[idx])
		}
		if n < 0 {
			return base, nil, eris.Wrapf(ErrDataFormat, "ingest: %s row %d: negative count %d", file, rowIdx+2, n)
		}
		counts[i] = n
	}
	return base, counts, nil
}
