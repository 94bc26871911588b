package message

import (
	"regexp"

	"github.com/amirhossein-jamali/point-exchange/internal/domain/entity"
	errs "github.com/amirhossein-jamali/point-exchange/internal/domain/error"
)

// Profile-snapshot announcements report an absolute current value, not a delta.
//
// GD Cards profile card:
//
//	GD Cards | Player profile
//	Player: <name>
//	Orbs: <value>
//
// Casino Royale balance line:
//
//	Casino Royale: chip balance of <name>: <value>
var (
	gdCardsProfilePlayerRe = regexp.MustCompile(`(?m)^\s*Player:\s*(.+)$`)
	gdCardsProfileOrbsRe   = regexp.MustCompile(`Orbs:\s*(-?[0-9]+(?:\.[0-9]+)?)`)

	casinoBalanceRe = regexp.MustCompile(`chip balance of\s+(.+?):\s*(-?[0-9]+(?:\.[0-9]+)?)`)
)

// ParseGDCardsProfile extracts a profile snapshot from a GD Cards profile card
func (p *Parser) ParseGDCardsProfile(text string) (*entity.ProfileSnapshotEvent, error) {
	playerName, ok := extractField(gdCardsProfilePlayerRe, text)
	if !ok {
		return nil, errs.NewParseError(string(entity.MessageTypeGDCardsProfile), fieldPlayerName, errs.ErrMissingField)
	}

	rawValue, ok := extractField(gdCardsProfileOrbsRe, text)
	if !ok {
		return nil, errs.NewParseError(string(entity.MessageTypeGDCardsProfile), fieldAbsoluteValue, errs.ErrMissingField)
	}
	absoluteValue, err := parseAmount(entity.MessageTypeGDCardsProfile, fieldAbsoluteValue, rawValue)
	if err != nil {
		return nil, err
	}

	return &entity.ProfileSnapshotEvent{
		PlayerName:    playerName,
		AbsoluteValue: absoluteValue,
		Game:          entity.GameGDCards,
	}, nil
}

// ParseCasinoBalance extracts a profile snapshot from a Casino Royale balance line
func (p *Parser) ParseCasinoBalance(text string) (*entity.ProfileSnapshotEvent, error) {
	match := casinoBalanceRe.FindStringSubmatch(text)
	if match == nil {
		return nil, errs.NewParseError(string(entity.MessageTypeCasinoBalance), fieldPlayerName, errs.ErrMissingField)
	}

	playerName := entity.NormalizeUserName(match[1])
	if playerName == "" {
		return nil, errs.NewParseError(string(entity.MessageTypeCasinoBalance), fieldPlayerName, errs.ErrMissingField)
	}

	absoluteValue, err := parseAmount(entity.MessageTypeCasinoBalance, fieldAbsoluteValue, match[2])
	if err != nil {
		return nil, err
	}

	return &entity.ProfileSnapshotEvent{
		PlayerName:    playerName,
		AbsoluteValue: absoluteValue,
		Game:          entity.GameCasino,
	}, nil
}
