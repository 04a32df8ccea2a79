// Package firms reads NASA FIRMS active-fire CSV feeds for Nepal.
package firms

import (
	"bufio"
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/firewatch-nepal/portal/internal/core/domain"
)

// Record is one CSV row keyed by the header names. Keys missing from a short
// row are absent, not empty.
type Record map[string]string

// ParseFeed reads a header line and zips every following row against it.
// Each line is parsed on its own, so a malformed row is skipped without
// affecting the rows after it.
func ParseFeed(r io.Reader) ([]Record, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var header []string
	for header == nil && sc.Scan() {
		fields, err := parseLine(sc.Text())
		if err != nil {
			return nil, err
		}
		header = fields
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if header == nil {
		return []Record{}, nil
	}
	for i, h := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}

	records := []Record{}
	for sc.Scan() {
		row, err := parseLine(sc.Text())
		if err != nil || row == nil {
			continue
		}
		rec := make(Record, len(header))
		for i, v := range row {
			if i >= len(header) {
				break
			}
			rec[header[i]] = v
		}
		records = append(records, rec)
	}
	if err := sc.Err(); err != nil {
		return records, err
	}
	return records, nil
}

const maxLineBytes = 1 << 20

// parseLine splits a single CSV line. Blank lines yield nil.
func parseLine(line string) ([]string, error) {
	line = strings.TrimRight(line, "\r")
	if strings.TrimSpace(line) == "" {
		return nil, nil
	}
	cr := csv.NewReader(strings.NewReader(line))
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	return cr.Read()
}

var brightnessKeys = []string{"brightness", "bright_ti4", "bright_t"}

// ToHotspots converts records to hotspots, dropping rows without usable
// coordinates.
func ToHotspots(records []Record) []domain.FireHotspot {
	out := make([]domain.FireHotspot, 0, len(records))
	for _, rec := range records {
		lat, err := strconv.ParseFloat(strings.TrimSpace(rec["latitude"]), 64)
		if err != nil {
			continue
		}
		lon, err := strconv.ParseFloat(strings.TrimSpace(rec["longitude"]), 64)
		if err != nil {
			continue
		}
		h := domain.FireHotspot{
			Latitude:        lat,
			Longitude:       lon,
			AcquisitionDate: rec["acq_date"],
			Confidence:      rec["confidence"],
		}
		for _, key := range brightnessKeys {
			if v, ok := rec[key]; ok {
				if b, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
					h.Brightness = b
					break
				}
			}
		}
		out = append(out, h)
	}
	return out
}
