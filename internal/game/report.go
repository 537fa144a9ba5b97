package game

import "github.com/mrivero/cyberbomb/internal/models"

// Report aggregates the telemetry log into the end-of-game summary. It
// is computed on demand and never stored. An empty log (for example an
// all-password playthrough) yields zeroed statistics, never a division
// by zero.
func (e *Engine) Report(s *models.Session) models.Report {
	r := models.Report{
		Outcome:          s.Status,
		TotalGameSeconds: e.params.InitialTime - s.TimeLeft,
		TimeLeft:         s.TimeLeft,
		LevelsCleared:    s.LevelIndex,
		TotalLevels:      len(e.levels),
		Attempts:         len(s.Performance),
	}

	if len(s.Performance) == 0 {
		return r
	}

	var totalResponse float64
	fastest, slowest := 0, 0
	for i, entry := range s.Performance {
		totalResponse += entry.ResponseSeconds
		if entry.WasCorrect {
			r.Correct++
		}
		// Strict comparisons keep the first occurrence on ties.
		if entry.ResponseSeconds < s.Performance[fastest].ResponseSeconds {
			fastest = i
		}
		if entry.ResponseSeconds > s.Performance[slowest].ResponseSeconds {
			slowest = i
		}
	}

	r.Incorrect = r.Attempts - r.Correct
	r.AccuracyPct = float64(r.Correct) / float64(r.Attempts) * 100
	r.AvgResponseSecs = totalResponse / float64(r.Attempts)

	f, sl := s.Performance[fastest], s.Performance[slowest]
	r.Fastest = &f
	r.Slowest = &sl
	return r
}
