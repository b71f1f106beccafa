package domain

import (
	"errors"
	"strings"
	"testing"
)

const spliceLabel = "test-index"

func TestSplice(t *testing.T) {
	t.Run("replaces region and preserves surroundings", func(t *testing.T) {
		file := "fn helper() {}\n\n// <test-index>\nold content\n// </test-index>\n\nfn trailer() {}\n"

		got, err := Splice(file, "tests! {\n\n}", spliceLabel)
		if err != nil {
			t.Fatalf("Splice failed: %v", err)
		}

		want := "fn helper() {}\n\n// <test-index>\ntests! {\n\n}\n// </test-index>\n\nfn trailer() {}\n"
		if got != want {
			t.Fatalf("unexpected result:\n--- want ---\n%q\n--- got ---\n%q", want, got)
		}
	})

	t.Run("splicing is idempotent", func(t *testing.T) {
		file := "header\n// <test-index>\nstale\n// </test-index>\nfooter\n"
		block := "tests! {\n    x: \"x.md\",\n}"

		once, err := Splice(file, block, spliceLabel)
		if err != nil {
			t.Fatalf("first Splice failed: %v", err)
		}

		twice, err := Splice(once, block, spliceLabel)
		if err != nil {
			t.Fatalf("second Splice failed: %v", err)
		}

		if once != twice {
			t.Fatal("second splice changed the text")
		}
	})

	t.Run("tolerates whitespace around markers", func(t *testing.T) {
		file := "  //   < test-index >  \nold\n\t// < / test-index\t>\n"

		got, err := Splice(file, "block", spliceLabel)
		if err != nil {
			t.Fatalf("Splice failed: %v", err)
		}

		want := "// <test-index>\nblock\n// </test-index>\n"
		if got != want {
			t.Fatalf("expected canonical markers, got %q", got)
		}
	})

	t.Run("region at end of file without trailing newline", func(t *testing.T) {
		file := "prefix\n// <test-index>\nold\n// </test-index>"

		got, err := Splice(file, "new", spliceLabel)
		if err != nil {
			t.Fatalf("Splice failed: %v", err)
		}

		want := "prefix\n// <test-index>\nnew\n// </test-index>"
		if got != want {
			t.Fatalf("expected %q, got %q", want, got)
		}
	})

	t.Run("missing markers", func(t *testing.T) {
		_, err := Splice("no markers here\n", "block", spliceLabel)
		if !errors.Is(err, ErrMarkerNotFound) {
			t.Fatalf("expected ErrMarkerNotFound, got %v", err)
		}
	})

	t.Run("missing end marker", func(t *testing.T) {
		_, err := Splice("// <test-index>\nunfinished\n", "block", spliceLabel)
		if !errors.Is(err, ErrMarkerNotFound) {
			t.Fatalf("expected ErrMarkerNotFound, got %v", err)
		}
	})

	t.Run("end before begin", func(t *testing.T) {
		_, err := Splice("// </test-index>\n// <test-index>\n", "block", spliceLabel)
		if !errors.Is(err, ErrMarkerNotFound) {
			t.Fatalf("expected ErrMarkerNotFound, got %v", err)
		}
	})

	t.Run("duplicate regions are ambiguous", func(t *testing.T) {
		file := strings.Repeat("// <test-index>\nx\n// </test-index>\n", 2)

		_, err := Splice(file, "block", spliceLabel)
		if !errors.Is(err, ErrMarkerAmbiguous) {
			t.Fatalf("expected ErrMarkerAmbiguous, got %v", err)
		}
	})

	t.Run("marker with wrong label is ignored", func(t *testing.T) {
		file := "// <other-index>\nx\n// </other-index>\n"

		_, err := Splice(file, "block", spliceLabel)
		if !errors.Is(err, ErrMarkerNotFound) {
			t.Fatalf("expected ErrMarkerNotFound, got %v", err)
		}
	})

	t.Run("non-comment line containing label is not a marker", func(t *testing.T) {
		file := "let s = \"<test-index>\";\n// <test-index>\nx\n// </test-index>\n"

		got, err := Splice(file, "block", spliceLabel)
		if err != nil {
			t.Fatalf("Splice failed: %v", err)
		}

		if !strings.HasPrefix(got, "let s = \"<test-index>\";\n") {
			t.Fatalf("non-marker line was altered: %q", got)
		}
	})
}
