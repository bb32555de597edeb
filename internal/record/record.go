// Package record splits markdown text into issue records and extracts their metadata.
//
// The parser is line based and permissive: lines that are not recognised
// metadata are kept in the body and otherwise ignored. This is not a
// general markdown parser; a "### " heading also contains the delimiter.
package record

import "strings"

const (
	// Delimiter separates issue records within a file.
	Delimiter = "## "

	labelsMarker    = "Labels: "
	milestoneMarker = "Milestone: "
	labelSeparator  = ", "
)

// Record is one issue parsed from a markdown block
type Record struct {
	// Raw is the block text verbatim; it becomes the issue body.
	Raw       string
	Title     string
	Labels    []string
	Milestone string // empty when the block has no Milestone line
}

// HasMilestone reports whether the block declared a milestone
func (r Record) HasMilestone() bool {
	return r.Milestone != ""
}

type lineKind int

const (
	lineLabels lineKind = iota + 1
	lineMilestone
)

// field is a tagged metadata value found on a single line
type field struct {
	kind  lineKind
	value string
}

// Split trims content and splits it on Delimiter, dropping empty segments.
func Split(content string) []string {
	parts := strings.Split(strings.TrimSpace(content), Delimiter)

	segments := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		segments = append(segments, p)
	}
	return segments
}

// Parse extracts title, labels and milestone from one segment.
func Parse(segment string) Record {
	rec := Record{
		Raw:    segment,
		Title:  firstLine(segment),
		Labels: []string{},
	}

	var haveLabels, haveMilestone bool
	for _, line := range strings.Split(segment, "\n") {
		for _, f := range scanLine(line) {
			switch {
			case f.kind == lineLabels && !haveLabels:
				rec.Labels = strings.Split(f.value, labelSeparator)
				haveLabels = true
			case f.kind == lineMilestone && !haveMilestone:
				rec.Milestone = f.value
				haveMilestone = true
			}
		}
		if haveLabels && haveMilestone {
			break
		}
	}

	return rec
}

// ParseAll splits content and parses every segment in order.
func ParseAll(content string) []Record {
	segments := Split(content)
	records := make([]Record, 0, len(segments))
	for _, s := range segments {
		records = append(records, Parse(s))
	}
	return records
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return strings.TrimSuffix(line, "\r")
}

// scanLine returns the metadata fields present on a line. Both markers may
// appear on the same line; a marker with nothing after it does not count.
func scanLine(line string) []field {
	line = strings.TrimSuffix(line, "\r")

	var fields []field
	if v, ok := valueAfter(line, labelsMarker); ok {
		fields = append(fields, field{kind: lineLabels, value: v})
	}
	if v, ok := valueAfter(line, milestoneMarker); ok {
		fields = append(fields, field{kind: lineMilestone, value: v})
	}
	return fields
}

func valueAfter(line, marker string) (string, bool) {
	idx := strings.Index(line, marker)
	if idx < 0 {
		return "", false
	}
	v := line[idx+len(marker):]
	return v, v != ""
}
