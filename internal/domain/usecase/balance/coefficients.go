package balance

import (
	"fmt"
	"sort"
	"strings"

	errs "github.com/amirhossein-jamali/point-exchange/internal/domain/error"
)

// CoefficientProvider holds the static per-game conversion table mapping a game name
// to the positive integer multiplier that converts its native currency into bank
// units. The table is loaded once at startup and fails closed: a game without an
// entry is a hard configuration error, never a silent default.
//
// Lookups fold case. Config loaders lowercase map keys, so the table may arrive
// as "gd cards" while events carry "GD Cards"; both must resolve to one entry.
type CoefficientProvider struct {
	coefficients map[string]int64
	names        []string
}

func foldGameName(game string) string {
	return strings.ToLower(strings.TrimSpace(game))
}

// NewCoefficientProvider builds a provider from the configured table.
// The table must be non-empty, free of case-folded duplicates, and every
// multiplier must be positive.
func NewCoefficientProvider(coefficients map[string]int64) (*CoefficientProvider, error) {
	if len(coefficients) == 0 {
		return nil, fmt.Errorf("%w: coefficient table is empty", errs.ErrMissingCoefficient)
	}

	table := make(map[string]int64, len(coefficients))
	names := make([]string, 0, len(coefficients))
	for game, coefficient := range coefficients {
		folded := foldGameName(game)
		if folded == "" {
			return nil, fmt.Errorf("%w: empty game name in coefficient table", errs.ErrMissingCoefficient)
		}
		if coefficient <= 0 {
			return nil, fmt.Errorf("coefficient for game %q must be positive, got %d", game, coefficient)
		}
		if _, exists := table[folded]; exists {
			return nil, fmt.Errorf("duplicate game %q in coefficient table", game)
		}
		table[folded] = coefficient
		names = append(names, strings.TrimSpace(game))
	}
	sort.Strings(names)

	return &CoefficientProvider{coefficients: table, names: names}, nil
}

// Coefficient returns the multiplier for a game, case-insensitively
//
// Possible errors:
// - ConfigurationError wrapping ErrMissingCoefficient: If the game has no entry
func (p *CoefficientProvider) Coefficient(game string) (int64, error) {
	coefficient, ok := p.coefficients[foldGameName(game)]
	if !ok {
		return 0, errs.NewMissingCoefficientError(game)
	}
	return coefficient, nil
}

// Games returns the configured game names as they appeared in the table,
// in stable order
func (p *CoefficientProvider) Games() []string {
	games := make([]string, len(p.names))
	copy(games, p.names)
	return games
}
