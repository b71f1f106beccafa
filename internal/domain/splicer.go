package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Splicer errors. Both abort the pipeline before any write.
var (
	// ErrMarkerNotFound reports a target file without a complete marker
	// region (missing begin or end marker, or end before begin).
	ErrMarkerNotFound = errors.New("marker region not found")
	// ErrMarkerAmbiguous reports a target file with more than one begin or
	// end marker line.
	ErrMarkerAmbiguous = errors.New("more than one marker region")
)

// Splice replaces the marker-delimited region of fileText with block,
// markers included: the result carries a canonical begin line, the block,
// and a canonical end line. Every byte outside the region is preserved
// unchanged. The function is pure; writing the result back is the
// caller's concern.
//
// Exactly one begin marker and one end marker must be present, the begin
// before the end. Marker lines are matched with tolerance for surrounding
// whitespace, e.g. "  //  < test-index >" is a valid begin marker for the
// label "test-index".
func Splice(fileText, block, label string) (string, error) {
	var (
		beginCount, endCount int
		beginStart           = -1
		endStart, endStop    = -1, -1
	)

	for start := 0; start <= len(fileText); {
		stop := len(fileText)
		next := len(fileText) + 1

		if i := strings.IndexByte(fileText[start:], '\n'); i >= 0 {
			stop = start + i
			next = stop + 1
		}

		line := fileText[start:stop]

		switch {
		case matchesMarker(line, label, false):
			beginCount++
			beginStart = start
		case matchesMarker(line, label, true):
			endCount++
			endStart = start
			endStop = stop
		}

		start = next
	}

	switch {
	case beginCount > 1 || endCount > 1:
		return "", fmt.Errorf("%w: %d begin and %d end markers for %q",
			ErrMarkerAmbiguous, beginCount, endCount, label)
	case beginCount == 0 || endCount == 0:
		return "", fmt.Errorf("%w: %d begin and %d end markers for %q",
			ErrMarkerNotFound, beginCount, endCount, label)
	case endStart < beginStart:
		return "", fmt.Errorf("%w: end marker precedes begin marker for %q",
			ErrMarkerNotFound, label)
	}

	replacement := "// <" + label + ">\n" + block + "\n// </" + label + ">"

	return fileText[:beginStart] + replacement + fileText[endStop:], nil
}

// matchesMarker reports whether line is a marker sentinel for label:
// optional whitespace, "//", optional whitespace, "<", a "/" for the end
// marker, the label, ">", each part separated by optional whitespace.
func matchesMarker(line, label string, closing bool) bool {
	rest := strings.TrimSpace(line)

	rest, ok := strings.CutPrefix(rest, "//")
	if !ok {
		return false
	}

	rest, ok = strings.CutPrefix(strings.TrimSpace(rest), "<")
	if !ok {
		return false
	}

	rest = strings.TrimSpace(rest)

	if closing {
		rest, ok = strings.CutPrefix(rest, "/")
		if !ok {
			return false
		}

		rest = strings.TrimSpace(rest)
	}

	rest, ok = strings.CutPrefix(rest, label)
	if !ok {
		return false
	}

	return strings.TrimSpace(rest) == ">"
}
