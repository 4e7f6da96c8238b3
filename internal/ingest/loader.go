// Package ingest parses uploaded shapefile or CSV bytes into point
// records, applying the column defaults and the validation-status
// coercion rule at the only place raw source values enter the system.
package ingest

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/agroview/groundtruth-backend-go/internal/models"
)

// LoadError reports a recoverable input problem: the upload was bad or
// incomplete and no store should be installed from it.
type LoadError struct {
	Reason string
	Err    error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return e.Reason + ": " + e.Err.Error()
	}
	return e.Reason
}

func (e *LoadError) Unwrap() error { return e.Err }

func loadErrf(format string, args ...interface{}) error {
	return &LoadError{Reason: fmt.Sprintf(format, args...)}
}

// RawUpload is one uploaded file, name plus content.
type RawUpload struct {
	Name string
	Data []byte
}

// rawRecord is a parsed source row before defaults are applied.
type rawRecord struct {
	serial    int64
	hasSerial bool
	category  string
	status    string
	lat, lng  float64
}

// Load parses an upload into records ready for store construction.
// Exactly one input kind is accepted per load: either a CSV file or a
// shapefile component set (.shp plus .dbf at minimum). Coordinates must
// already be geographic (EPSG:4326); a projected .prj is rejected.
func Load(files []RawUpload) ([]*models.Record, error) {
	if len(files) == 0 {
		return nil, loadErrf("no files uploaded")
	}

	var csvFile *RawUpload
	shpParts := make(map[string]RawUpload)
	for i := range files {
		f := files[i]
		switch strings.ToLower(filepath.Ext(f.Name)) {
		case ".csv":
			if csvFile != nil {
				return nil, loadErrf("more than one CSV file uploaded")
			}
			csvFile = &f
		case ".shp", ".dbf", ".shx", ".prj":
			shpParts[strings.ToLower(filepath.Ext(f.Name))] = f
		}
	}

	var (
		raws []rawRecord
		err  error
	)
	switch {
	case csvFile != nil && len(shpParts) > 0:
		return nil, loadErrf("upload either a CSV or a shapefile set, not both")
	case csvFile != nil:
		raws, err = parseCSV(csvFile.Data)
	case len(shpParts) > 0:
		raws, err = parseShapefile(shpParts)
	default:
		return nil, loadErrf("no recognizable input: expected a .csv or a shapefile set")
	}
	if err != nil {
		return nil, err
	}
	if len(raws) == 0 {
		return nil, loadErrf("input contains no point records")
	}

	return finalize(raws)
}

// finalize applies defaults and the status coercion rule. Serial ids
// are assigned 1..N in load order when the source carries none; they
// are never reassigned afterwards, so deduplication downstream may
// leave gaps in the sequence.
func finalize(raws []rawRecord) ([]*models.Record, error) {
	records := make([]*models.Record, 0, len(raws))
	unknown := 0
	for i, raw := range raws {
		serial := raw.serial
		if !raw.hasSerial {
			serial = int64(i) + 1
		}
		category := raw.category
		if strings.TrimSpace(category) == "" {
			category = models.DefaultCategory
		}
		status, ok := models.CoerceStatus(raw.status)
		if !ok {
			unknown++
		}
		records = append(records, &models.Record{
			SerialID:  serial,
			Category:  category,
			Latitude:  raw.lat,
			Longitude: raw.lng,
			Status:    status,
		})
	}
	if unknown > 0 {
		log.Printf("ingest: %d unrecognized validation values coerced to %q", unknown, models.StatusNotValidated)
	}
	return records, nil
}
