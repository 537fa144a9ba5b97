// Package game implements the progression engine: a pure state-transition
// layer that, given the current session, an incoming player action and the
// level table, computes the next session state plus a response payload.
// The engine never reads ambient state and never fails on bad player
// input; it degrades to "incorrect" or "depleted" responses instead.
package game

import (
	"fmt"

	"github.com/mrivero/cyberbomb/internal/models"
)

// Player-facing messages. Exhausted resources are well-defined responses,
// not errors.
const (
	MsgHintsDepleted  = "No hints left."
	MsgHintsExhausted = "No more specific hints for this level."

	MsgWrongPassword = "Incorrect password. Try again."
	MsgWrongPhishing = "Incorrect. Check the real domain of each link."
	MsgWrongCipher   = "That is not the plaintext. Try again."
	MsgWrongPuzzle   = "That key does not unlock the files. Keep looking."
	MsgEmptyAnswer   = "No answer submitted. Try again."
)

// Engine evaluates player actions against an immutable level table and a
// fixed ruleset. It carries no mutable state of its own.
type Engine struct {
	params models.GameParams
	levels []models.Level
}

// New builds an engine over the given ruleset and level table.
func New(params models.GameParams, levels []models.Level) *Engine {
	return &Engine{params: params, levels: levels}
}

// Params returns the active ruleset.
func (e *Engine) Params() models.GameParams {
	return e.params
}

// TotalLevels returns the length of the level table.
func (e *Engine) TotalLevels() int {
	return len(e.levels)
}

// levelAt returns the level at index i. An index equal to the table
// length signals completion, never an error.
func (e *Engine) levelAt(i int) (models.Level, bool) {
	if i < 0 || i >= len(e.levels) {
		return models.Level{}, false
	}
	return e.levels[i], true
}

func (e *Engine) successMessage(lvl models.Level) string {
	if lvl.SuccessMessage != "" {
		return fmt.Sprintf("%s +%ds", lvl.SuccessMessage, e.params.TimeBonus)
	}
	return fmt.Sprintf("Correct! +%d seconds", e.params.TimeBonus)
}
