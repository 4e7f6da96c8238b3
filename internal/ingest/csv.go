package ingest

import (
	"bytes"
	"encoding/csv"
	"io"
	"strconv"
	"strings"
)

// Column names recognized in CSV input. Matching is case insensitive.
const (
	colLatitude   = "latitude"
	colLongitude  = "longitude"
	colSerial     = "s_no"
	colCategory   = "crop_name"
	colValidation = "validation"
)

// parseCSV reads point records from CSV bytes. latitude and longitude
// columns are required; s_no, crop_name and validation are honored when
// present.
func parseCSV(data []byte) ([]rawRecord, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, &LoadError{Reason: "failed to read CSV header", Err: err}
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	latIdx, latOK := cols[colLatitude]
	lngIdx, lngOK := cols[colLongitude]
	if !latOK || !lngOK {
		return nil, loadErrf("CSV must contain %q and %q columns", colLatitude, colLongitude)
	}
	serialIdx, hasSerial := cols[colSerial]
	categoryIdx, hasCategory := cols[colCategory]
	statusIdx, hasStatus := cols[colValidation]

	var raws []rawRecord
	for line := 2; ; line++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &LoadError{Reason: "malformed CSV row", Err: err}
		}

		raw := rawRecord{}
		raw.lat, err = strconv.ParseFloat(strings.TrimSpace(row[latIdx]), 64)
		if err != nil {
			return nil, loadErrf("line %d: invalid latitude %q", line, row[latIdx])
		}
		raw.lng, err = strconv.ParseFloat(strings.TrimSpace(row[lngIdx]), 64)
		if err != nil {
			return nil, loadErrf("line %d: invalid longitude %q", line, row[lngIdx])
		}
		if hasSerial {
			raw.serial, err = strconv.ParseInt(strings.TrimSpace(row[serialIdx]), 10, 64)
			if err != nil {
				return nil, loadErrf("line %d: invalid %s %q", line, colSerial, row[serialIdx])
			}
			raw.hasSerial = true
		}
		if hasCategory {
			raw.category = row[categoryIdx]
		}
		if hasStatus {
			raw.status = row[statusIdx]
		}
		raws = append(raws, raw)
	}

	return raws, nil
}
