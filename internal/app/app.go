package app

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Utility-Gods/charswap/internal/db"
	"github.com/Utility-Gods/charswap/internal/replace"
	"github.com/Utility-Gods/charswap/pkg/types"
)

// Recorder persists applied replacements. *db.Store satisfies it.
type Recorder interface {
	AddReplacement(r db.Replacement) error
	GetSessionReplacements(sessionID string) ([]db.Replacement, error)
}

// App represents the main application
type App struct {
	recorder  Recorder
	log       logrus.FieldLogger
	sessionID string
}

// Result describes one applied replacement
type Result struct {
	Input    string
	Output   string
	Replaced int
}

// NewApp creates a new instance of the application. A nil recorder turns
// history off.
func NewApp(recorder Recorder, log logrus.FieldLogger) *App {
	if log == nil {
		log = logrus.StandardLogger()
	}
	sessionID := uuid.NewString()
	return &App{
		recorder:  recorder,
		log:       log.WithField("session", sessionID),
		sessionID: sessionID,
	}
}

// SessionHistory returns what this App has recorded, oldest first. It is
// empty when history is off.
func (a *App) SessionHistory() ([]db.Replacement, error) {
	if a.recorder == nil {
		return nil, nil
	}
	return a.recorder.GetSessionReplacements(a.sessionID)
}

// Apply substitutes pair.To for every pair.From in line, in place
func (a *App) Apply(line *types.Line, pair types.Pair) Result {
	res := Result{
		Input:    line.String(),
		Replaced: replace.Count(line.Bytes(), pair.From),
	}
	if pair.From == pair.To {
		res.Replaced = 0
	}

	replace.ReplaceAll(line.Bytes(), pair.From, pair.To)
	res.Output = line.String()

	a.log.WithFields(logrus.Fields{
		"from":     string(pair.From),
		"to":       string(pair.To),
		"replaced": res.Replaced,
	}).Debug("replacement applied")

	if a.recorder != nil {
		err := a.recorder.AddReplacement(db.Replacement{
			SessionID: a.sessionID,
			Input:     res.Input,
			From:      pair.From,
			To:        pair.To,
			Output:    res.Output,
			Replaced:  res.Replaced,
		})
		if err != nil {
			a.log.WithError(err).Warn("failed to record replacement")
		}
	}

	return res
}
