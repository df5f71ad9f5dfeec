package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// Segment types that never reach the viewer. The backend filters
// these before responding; the loader drops them again in case an
// older export file still carries them.
var excludedSegmentTypes = map[string]bool{
	"Page header": true,
	"Page footer": true,
	"Page number": true,
}

// LoadDocument reads an extraction result from a JSON file and drops
// header/footer/page-number segments.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing document %s: %w", path, err)
	}
	doc.Segments = filterSegments(doc.Segments)
	if doc.Name == "" {
		doc.Name = path
	}
	return &doc, nil
}

func filterSegments(segs []Segment) []Segment {
	kept := make([]Segment, 0, len(segs))
	for _, s := range segs {
		if excludedSegmentTypes[s.Type] {
			continue
		}
		kept = append(kept, s)
	}
	return kept
}

// PageCount returns the highest page number any segment reports, or 1
// for a segment-less document so the viewer still has a page to show.
func (d *Document) PageCount() int {
	n := 1
	for _, s := range d.Segments {
		if s.PageNumber > n {
			n = s.PageNumber
		}
	}
	return n
}

// PageSize returns the native dimensions of a page, taken from the
// first segment on it. Pages without segments fall back to the
// document's first known page size, then to US Letter points, so a
// blank page still renders.
func (d *Document) PageSize(page int) (w, h float64) {
	for _, s := range d.Segments {
		if s.PageNumber == page && s.PageWidth > 0 && s.PageHeight > 0 {
			return s.PageWidth, s.PageHeight
		}
	}
	for _, s := range d.Segments {
		if s.PageWidth > 0 && s.PageHeight > 0 {
			return s.PageWidth, s.PageHeight
		}
	}
	return 612, 792
}

// scanDocumentFiles lists .json files in the current directory,
// sorted, for the open-file picker.
func scanDocumentFiles() []string {
	dir, err := os.Getwd()
	if err != nil {
		return nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if len(name) > 5 && name[len(name)-5:] == ".json" {
			files = append(files, name)
		}
	}
	sort.Strings(files)
	return files
}
