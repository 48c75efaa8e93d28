// Package bot provides computer opponents. Bots only choose actions from a
// game.View; the engine decides whether those actions are legal.
package bot

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/lox/liarsdice/internal/game"
	"github.com/lox/liarsdice/internal/randutil"
)

// Kind names a bot strategy in configuration and on the command line.
type Kind string

const (
	KindRandom   Kind = "random"
	KindCautious Kind = "cautious"
)

// Kinds returns every known bot kind.
func Kinds() []Kind {
	return []Kind{KindRandom, KindCautious}
}

// ParseKind resolves a strategy name case-insensitively.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(Kinds(), k) {
		return "", fmt.Errorf("unknown bot kind %q", s)
	}
	return k, nil
}

// New creates a bot of the given kind.
func New(kind Kind, rng randutil.Source, logger *log.Logger) (game.Agent, error) {
	switch kind {
	case KindRandom:
		return NewRandomBot(rng, logger), nil
	case KindCautious:
		return NewCautiousBot(logger), nil
	default:
		return nil, fmt.Errorf("unknown bot kind %q", kind)
	}
}
