package phrase

// Difficulty is the authoring-assigned complexity tier of a phrase.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Difficulties returns the closed set of tiers in sort order.
func Difficulties() []Difficulty {
	return []Difficulty{Easy, Medium, Hard}
}

// Valid reports whether d is one of the known tiers.
func (d Difficulty) Valid() bool {
	switch d {
	case Easy, Medium, Hard:
		return true
	}
	return false
}

// Category is the communication channel a phrase belongs to.
// The set mirrors the categories the app knows how to load.
type Category string

const (
	Standup         Category = "standup"
	CodeReview      Category = "codeReview"
	Slack           Category = "slack"
	Email           Category = "email"
	Meetings        Category = "meetings"
	Technical       Category = "technical"
	PullRequests    Category = "pullRequests"
	BugReports      Category = "bugReports"
	PairProgramming Category = "pairProgramming"
	Interviews      Category = "interviews"
	Casual          Category = "casual"
	Documentation   Category = "documentation"
)

var categories = []Category{
	Standup, CodeReview, Slack, Email, Meetings, Technical,
	PullRequests, BugReports, PairProgramming, Interviews, Casual, Documentation,
}

// Categories returns every known category.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, k := range categories {
		if k == c {
			return true
		}
	}
	return false
}

// Record is a single English phrase with its usage context and translations.
// Field names are the on-disk JSON contract and must not change.
type Record struct {
	ID           string            `json:"id"`
	English      string            `json:"english"`
	Context      string            `json:"context"`
	Translations map[string]string `json:"translations"`
	Difficulty   Difficulty        `json:"difficulty"`
	Category     Category          `json:"category"`
}
