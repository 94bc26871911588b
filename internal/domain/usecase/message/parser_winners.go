package message

import (
	"regexp"

	"github.com/amirhossein-jamali/point-exchange/internal/domain/entity"
	errs "github.com/amirhossein-jamali/point-exchange/internal/domain/error"
)

// Fixed-reward announcements name multiple winners in one message:
//
//	Bunker RP: the doors open, survivors of the bunker: <name>, <name>, ...
//	Mafia: game over, the town celebrates its victors: <name>, <name>, ...
//
// Each winner receives the same fixed award; the reward size is selected per game
// family by the processor, not parsed from the text.
var (
	bunkerWinnersRe = regexp.MustCompile(`survivors of the bunker:\s*(.+)`)
	mafiaWinnersRe  = regexp.MustCompile(`the town celebrates its victors:\s*(.+)`)
)

// parseWinners is the shared extraction path for multi-winner announcements
func parseWinners(messageType entity.MessageType, game, text string, winnersRe *regexp.Regexp) (*entity.FixedRewardEvent, error) {
	rawWinners, ok := extractField(winnersRe, text)
	if !ok {
		return nil, errs.NewParseError(string(messageType), fieldWinnersList, errs.ErrMissingField)
	}

	winners := splitWinners(rawWinners)
	if len(winners) == 0 {
		return nil, errs.NewParseError(string(messageType), fieldWinnersList, errs.ErrMissingField)
	}

	return &entity.FixedRewardEvent{
		Winners: winners,
		Game:    game,
	}, nil
}

// ParseBunkerWinners extracts the winner list from a Bunker RP round-end announcement
func (p *Parser) ParseBunkerWinners(text string) (*entity.FixedRewardEvent, error) {
	return parseWinners(entity.MessageTypeBunkerWinners, entity.GameBunker, text, bunkerWinnersRe)
}

// ParseMafiaWinners extracts the winner list from a Mafia round-end announcement
func (p *Parser) ParseMafiaWinners(text string) (*entity.FixedRewardEvent, error) {
	return parseWinners(entity.MessageTypeMafiaWinners, entity.GameMafia, text, mafiaWinnersRe)
}
