package corpus

import "github.com/japaniel/devlingo/pkg/phrase"

// Batch is a named group of literal records sharing a category and difficulty.
type Batch struct {
	Name       string
	Category   phrase.Category
	Difficulty phrase.Difficulty
	Records    []phrase.Record
}

// Registry holds the ordered phrase batches of every category.
// Categories keep the order in which they were first added.
type Registry struct {
	order   []phrase.Category
	batches map[phrase.Category][]Batch
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{batches: make(map[phrase.Category][]Batch)}
}

// Add appends a batch to its category. Input order is preserved.
func (r *Registry) Add(b Batch) {
	if _, ok := r.batches[b.Category]; !ok {
		r.order = append(r.order, b.Category)
	}
	r.batches[b.Category] = append(r.batches[b.Category], b)
}

// Categories returns the categories in insertion order.
func (r *Registry) Categories() []phrase.Category {
	out := make([]phrase.Category, len(r.order))
	copy(out, r.order)
	return out
}

// Batches returns every batch in insertion order, grouped by category.
func (r *Registry) Batches() []Batch {
	var out []Batch
	for _, c := range r.order {
		out = append(out, r.batches[c]...)
	}
	return out
}

// Records returns the concatenated records of a category.
func (r *Registry) Records(c phrase.Category) []phrase.Record {
	var out []phrase.Record
	for _, b := range r.batches[c] {
		out = append(out, b.Records...)
	}
	return out
}

// All returns every record in the registry in output order.
func (r *Registry) All() []phrase.Record {
	var out []phrase.Record
	for _, c := range r.order {
		out = append(out, r.Records(c)...)
	}
	return out
}

// Len returns the total number of records.
func (r *Registry) Len() int {
	n := 0
	for _, bs := range r.batches {
		for _, b := range bs {
			n += len(b.Records)
		}
	}
	return n
}

// Default builds the registry shipped with the app.
func Default() *Registry {
	r := NewRegistry()
	r.Add(Batch{Name: "slack easy batch 1", Category: phrase.Slack, Difficulty: phrase.Easy, Records: slackEasyBatch1})
	r.Add(Batch{Name: "slack medium batch 1", Category: phrase.Slack, Difficulty: phrase.Medium, Records: slackMediumBatch1})
	r.Add(Batch{Name: "email easy batch 1", Category: phrase.Email, Difficulty: phrase.Easy, Records: emailEasyBatch1})
	r.Add(Batch{Name: "email medium batch 1", Category: phrase.Email, Difficulty: phrase.Medium, Records: emailMediumBatch1})
	r.Add(Batch{Name: "email hard batch 1", Category: phrase.Email, Difficulty: phrase.Hard, Records: emailHardBatch1})
	return r
}
