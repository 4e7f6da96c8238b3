package ingest

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	shp "github.com/jonas-p/go-shp"
)

// Shapefile attribute names honored during load.
const (
	attrSerial     = "S_No"
	attrCategory   = "crop_name"
	attrValidation = "validation"
)

// parseShapefile reads point records from an uploaded shapefile
// component set. The reader works on files, so the parts are staged in
// a temporary directory for the duration of the parse.
func parseShapefile(parts map[string]RawUpload) ([]rawRecord, error) {
	if _, ok := parts[".shp"]; !ok {
		return nil, loadErrf("incomplete shapefile: missing .shp component")
	}
	if _, ok := parts[".dbf"]; !ok {
		return nil, loadErrf("incomplete shapefile: missing .dbf component")
	}
	if prj, ok := parts[".prj"]; ok {
		if strings.Contains(strings.ToUpper(string(prj.Data)), "PROJCS") {
			return nil, loadErrf("shapefile uses a projected coordinate system; expected geographic (EPSG:4326)")
		}
	}

	dir, err := os.MkdirTemp("", "upload-shp-")
	if err != nil {
		return nil, &LoadError{Reason: "failed to stage shapefile", Err: err}
	}
	defer os.RemoveAll(dir)

	base := filepath.Join(dir, "upload")
	for ext, part := range parts {
		if err := os.WriteFile(base+ext, part.Data, 0o600); err != nil {
			return nil, &LoadError{Reason: "failed to stage shapefile", Err: err}
		}
	}

	reader, err := shp.Open(base + ".shp")
	if err != nil {
		return nil, &LoadError{Reason: "failed to parse shapefile", Err: err}
	}
	defer reader.Close()

	var serialIdx, categoryIdx, statusIdx = -1, -1, -1
	for i, f := range reader.Fields() {
		switch strings.ToLower(f.String()) {
		case strings.ToLower(attrSerial):
			serialIdx = i
		case attrCategory:
			categoryIdx = i
		case attrValidation:
			statusIdx = i
		}
	}

	var raws []rawRecord
	for reader.Next() {
		n, shape := reader.Shape()

		var x, y float64
		switch p := shape.(type) {
		case *shp.Point:
			x, y = p.X, p.Y
		case *shp.PointZ:
			x, y = p.X, p.Y
		case *shp.PointM:
			x, y = p.X, p.Y
		default:
			return nil, loadErrf("shapefile record %d is not a point geometry", n)
		}

		raw := rawRecord{lat: y, lng: x}
		if serialIdx >= 0 {
			serial, err := strconv.ParseInt(strings.TrimSpace(reader.ReadAttribute(n, serialIdx)), 10, 64)
			if err != nil {
				return nil, loadErrf("shapefile record %d: invalid %s attribute", n, attrSerial)
			}
			raw.serial = serial
			raw.hasSerial = true
		}
		if categoryIdx >= 0 {
			raw.category = reader.ReadAttribute(n, categoryIdx)
		}
		if statusIdx >= 0 {
			raw.status = reader.ReadAttribute(n, statusIdx)
		}
		raws = append(raws, raw)
	}
	if err := reader.Err(); err != nil {
		return nil, &LoadError{Reason: "failed to parse shapefile", Err: err}
	}

	return raws, nil
}
