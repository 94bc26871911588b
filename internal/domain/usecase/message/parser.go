package message

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/point-exchange/internal/domain/entity"
	errs "github.com/amirhossein-jamali/point-exchange/internal/domain/error"
)

// Parser extracts strongly-typed events from raw announcement text. One parse method
// exists per message family; each raises a ParseError naming the specific missing or
// invalid field. The owning game is a literal per family, never read from the text.
type Parser struct{}

// NewParser creates a new parser
func NewParser() *Parser {
	return &Parser{}
}

// Parser field names used in ParseError reports
const (
	fieldPlayerName    = "player name"
	fieldAbsoluteValue = "absolute value"
	fieldAwardedAmount = "awarded amount"
	fieldWinnersList   = "winners list"
)

// extractField returns the first capture group of the pattern, trimmed
func extractField(re *regexp.Regexp, text string) (string, bool) {
	match := re.FindStringSubmatch(text)
	if match == nil {
		return "", false
	}
	value := strings.TrimSpace(match[1])
	if value == "" {
		return "", false
	}
	return value, true
}

// parseAmount converts an extracted numeric field to an exact decimal.
// Amounts may be fractional; binary float rounding never occurs.
func parseAmount(messageType entity.MessageType, field, raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, errs.NewParseError(string(messageType), field, errs.ErrInvalidAmount)
	}
	return amount, nil
}

// splitWinners turns a comma-separated winner list into trimmed names,
// dropping empty entries
func splitWinners(raw string) []string {
	parts := strings.Split(raw, ",")
	winners := make([]string, 0, len(parts))
	for _, part := range parts {
		name := strings.TrimSpace(part)
		if name != "" {
			winners = append(winners, name)
		}
	}
	return winners
}
