package game

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mrivero/cyberbomb/internal/cipher"
	"github.com/mrivero/cyberbomb/internal/models"
)

// DefaultLevels is the built-in challenge table. Levels are played in
// order; the table is immutable after startup.
func DefaultLevels() []models.Level {
	const caesarPlain = "There is no spoon"
	caesarCipher := cipher.Encrypt(caesarPlain, 1)

	return []models.Level{
		{
			Kind:   models.KindPassword,
			Title:  "Weak Password",
			Prompt: "Enter the system administrator's password.",
			Hint:   "The admin never changes the default... it starts with 1.",
			ProgressiveHints: []string{
				"Four digits, straight off the keyboard.",
				"It is the most common PIN on every breach list.",
			},
			Secret:         "1234",
			SuccessMessage: "Access granted. Weak passwords fall first.",
		},
		{
			Kind:   models.KindPhishing,
			Title:  "Phish Hunt",
			Prompt: "Which of these emails is legitimate?",
			Hint:   "Look at the real domain behind each link.",
			ProgressiveHints: []string{
				"Hyphenated lookalike domains are a classic lure.",
				"Only one link points at the bank's own domain over HTTPS.",
			},
			Choices: []models.Choice{
				{ID: "a", Label: "Support: http://security-bank-login.co"},
				{ID: "b", Label: "Promos: http://free-iphone.me"},
				{ID: "c", Label: "Official bank: https://bank.com/security", Correct: true},
			},
			SuccessMessage: "Phish identified. Always verify the domain.",
		},
		{
			Kind:       models.KindCipher,
			Title:      "Caesar Cipher",
			Prompt:     fmt.Sprintf("Decrypt the intercepted message: %s", caesarCipher),
			Hint:       "Caesar could count to one.",
			Ciphertext: caesarCipher,
			Plaintext:  caesarPlain,
			ProgressiveHints: []string{
				"Shift every letter one step back in the alphabet.",
			},
			SuccessMessage: "Message decrypted.",
		},
		{
			Kind:   models.KindPuzzle,
			Title:  "Ransomware Key Recovery",
			Prompt: "The attacker left traces behind. Piece the clues together and enter the decryption key.",
			Hint:   "The key is hidden across the artifacts, not in any single one.",
			ProgressiveHints: []string{
				"The ransom note mentions a flower.",
				"Combine the flower with the year on the calendar sticky note.",
			},
			ExpectedKey: "BLUEBELL2025",
			Artifacts: []string{
				"Ransom note: 'Your files sleep until the bluebells bloom.'",
				"Sticky note on the monitor: 'renew certs before 2025!'",
				"Hex dump fragment: 42 4c 55 45 ...",
			},
			SuccessMessage: "Files recovered. The bomb is defused.",
		},
	}
}

// LoadLevels reads a level table from a JSON file, validating every
// entry. Used to swap the challenge set without a rebuild.
func LoadLevels(path string) ([]models.Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read levels file: %w", err)
	}
	var levels []models.Level
	if err := json.Unmarshal(data, &levels); err != nil {
		return nil, fmt.Errorf("parse levels file: %w", err)
	}
	if err := ValidateLevels(levels); err != nil {
		return nil, err
	}
	return levels, nil
}

// ValidateLevels checks every level's structural invariants.
func ValidateLevels(levels []models.Level) error {
	if len(levels) == 0 {
		return fmt.Errorf("level table is empty")
	}
	for i, lvl := range levels {
		if err := lvl.Validate(); err != nil {
			return fmt.Errorf("level %d: %w", i, err)
		}
	}
	return nil
}
