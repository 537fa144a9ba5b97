package models

import "fmt"

// LevelKind tags the challenge variant of a level.
type LevelKind string

const (
	KindPassword LevelKind = "password"
	KindPhishing LevelKind = "phishing"
	KindCipher   LevelKind = "cipher"
	KindPuzzle   LevelKind = "puzzle"
)

// Choice is one selectable option on a phishing level.
type Choice struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Correct bool   `json:"correct"`
}

// Level is one challenge stage. Kind selects which variant fields apply:
// password levels use Secret, phishing levels use Choices, cipher levels
// use Ciphertext/Plaintext and puzzle levels use ExpectedKey plus
// display-only Artifacts.
type Level struct {
	Kind             LevelKind `json:"kind"`
	Title            string    `json:"title"`
	Prompt           string    `json:"prompt"`
	Hint             string    `json:"hint"`
	ProgressiveHints []string  `json:"progressive_hints,omitempty"`
	SuccessMessage   string    `json:"success_message,omitempty"`

	Secret      string   `json:"secret,omitempty"`
	Choices     []Choice `json:"choices,omitempty"`
	Ciphertext  string   `json:"ciphertext,omitempty"`
	Plaintext   string   `json:"plaintext,omitempty"`
	ExpectedKey string   `json:"expected_key,omitempty"`
	Artifacts   []string `json:"artifacts,omitempty"`
}

// CorrectChoice returns the single correct option of a phishing level.
func (l Level) CorrectChoice() (Choice, bool) {
	for _, c := range l.Choices {
		if c.Correct {
			return c, true
		}
	}
	return Choice{}, false
}

// Validate checks the structural invariants of a level definition.
func (l Level) Validate() error {
	if l.Title == "" || l.Prompt == "" {
		return fmt.Errorf("level %q: title and prompt are required", l.Title)
	}
	switch l.Kind {
	case KindPassword:
		if l.Secret == "" {
			return fmt.Errorf("password level %q: secret is required", l.Title)
		}
	case KindPhishing:
		correct := 0
		for _, c := range l.Choices {
			if c.Correct {
				correct++
			}
		}
		if correct != 1 {
			return fmt.Errorf("phishing level %q: exactly one correct choice required, got %d", l.Title, correct)
		}
	case KindCipher:
		if l.Ciphertext == "" || l.Plaintext == "" {
			return fmt.Errorf("cipher level %q: ciphertext and plaintext are required", l.Title)
		}
	case KindPuzzle:
		if l.ExpectedKey == "" {
			return fmt.Errorf("puzzle level %q: expected key is required", l.Title)
		}
	default:
		return fmt.Errorf("level %q: unknown kind %q", l.Title, l.Kind)
	}
	return nil
}

// ChoiceView is a phishing option with the answer flag stripped.
type ChoiceView struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// LevelView is the render payload for the active level. It never carries
// solutions so it can be handed to the view layer as-is.
type LevelView struct {
	Number         int          `json:"number"` // 1-based
	TotalLevels    int          `json:"total_levels"`
	Kind           LevelKind    `json:"kind"`
	Title          string       `json:"title"`
	Prompt         string       `json:"prompt"`
	Choices        []ChoiceView `json:"choices,omitempty"`
	Ciphertext     string       `json:"ciphertext,omitempty"`
	Artifacts      []string     `json:"artifacts,omitempty"`
	TimeLeft       int          `json:"time_left"`
	HintsLeft      int          `json:"hints_left"`
	SuccessMessage string       `json:"success_message,omitempty"`
}
