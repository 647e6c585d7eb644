package corpus

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"go.uber.org/multierr"

	"github.com/japaniel/devlingo/pkg/phrase"
)

// ValidationError describes one authoring defect in a record or batch.
// RecordID is empty for batch-level defects.
type ValidationError struct {
	RecordID string
	Field    string
	Reason   string
}

func (e *ValidationError) Error() string {
	if e.RecordID == "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("record %s: %s: %s", e.RecordID, e.Field, e.Reason)
}

var idPattern = regexp.MustCompile(`^([A-Za-z]+)_(\d{3,})$`)

// ErrEmptyRegistry is returned when there is nothing to generate.
var ErrEmptyRegistry = &ValidationError{Field: "registry", Reason: "no records"}

// Validate checks every record in the registry and returns all violations
// combined. Use multierr.Errors to inspect them one by one.
func Validate(r *Registry) error {
	if r == nil || r.Len() == 0 {
		return ErrEmptyRegistry
	}

	var errs error
	seen := make(map[string]string) // id -> batch name
	for _, b := range r.Batches() {
		errs = multierr.Append(errs, validateBatch(b))
		for _, rec := range b.Records {
			errs = multierr.Append(errs, validateRecord(b, rec))
			if rec.ID == "" {
				continue
			}
			if prev, dup := seen[rec.ID]; dup {
				errs = multierr.Append(errs, &ValidationError{
					RecordID: rec.ID,
					Field:    "id",
					Reason:   fmt.Sprintf("duplicate id (first defined in %q, again in %q)", prev, b.Name),
				})
				continue
			}
			seen[rec.ID] = b.Name
		}
	}
	for _, c := range r.Categories() {
		if len(r.Records(c)) == 0 {
			errs = multierr.Append(errs, &ValidationError{
				Field:  fmt.Sprintf("category %q", c),
				Reason: "has no records",
			})
		}
	}
	return errs
}

// validateBatch checks the batch's own labels, which name the output file.
func validateBatch(b Batch) error {
	var errs error
	if !b.Category.Valid() {
		errs = multierr.Append(errs, &ValidationError{
			Field:  fmt.Sprintf("batch %q category", b.Name),
			Reason: fmt.Sprintf("unknown category %q", b.Category),
		})
	}
	if !b.Difficulty.Valid() {
		errs = multierr.Append(errs, &ValidationError{
			Field:  fmt.Sprintf("batch %q difficulty", b.Name),
			Reason: fmt.Sprintf("unknown difficulty %q", b.Difficulty),
		})
	}
	return errs
}

func validateRecord(b Batch, rec phrase.Record) error {
	var errs error
	fail := func(field, format string, args ...interface{}) {
		errs = multierr.Append(errs, &ValidationError{RecordID: rec.ID, Field: field, Reason: fmt.Sprintf(format, args...)})
	}

	if m := idPattern.FindStringSubmatch(rec.ID); m == nil {
		fail("id", "must look like <category>_<NNN>, got %q", rec.ID)
	} else if phrase.Category(m[1]) != rec.Category {
		fail("id", "prefix %q does not match category %q", m[1], rec.Category)
	}

	if strings.TrimSpace(rec.English) == "" {
		fail("english", "must be non-empty")
	}
	if strings.TrimSpace(rec.Context) == "" {
		fail("context", "must be non-empty")
	}

	if !rec.Category.Valid() {
		fail("category", "unknown category %q", rec.Category)
	} else if rec.Category != b.Category {
		fail("category", "%q does not match batch %q (%s)", rec.Category, b.Name, b.Category)
	}
	if !rec.Difficulty.Valid() {
		fail("difficulty", "unknown difficulty %q", rec.Difficulty)
	} else if rec.Difficulty != b.Difficulty {
		fail("difficulty", "%q does not match batch %q (%s)", rec.Difficulty, b.Name, b.Difficulty)
	}

	for _, code := range phrase.LanguageCodes() {
		t, ok := rec.Translations[code]
		switch {
		case !ok:
			fail("translations["+code+"]", "missing")
		case strings.TrimSpace(t) == "":
			fail("translations["+code+"]", "empty")
		}
	}
	var extra []string
	for code := range rec.Translations {
		if !phrase.IsSupported(code) {
			extra = append(extra, code)
		}
	}
	sort.Strings(extra)
	for _, code := range extra {
		fail("translations["+code+"]", "unsupported language code")
	}
	return errs
}
