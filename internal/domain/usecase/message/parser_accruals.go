package message

import (
	"regexp"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/point-exchange/internal/domain/entity"
	errs "github.com/amirhossein-jamali/point-exchange/internal/domain/error"
)

// Accrual announcements report a discrete awarded amount:
//
//	GD Cards: <name> found a card and received <amount> orbs!
//	Quiz Arena: <name> gave the correct answer and earns <amount> points
//	Casino Royale: <name> wins <amount> chips
//	karma: <name> received a thank you, current rating: <rating>
//	duel: <name> takes the prize of <amount> points
var (
	gdCardsDropPlayerRe = regexp.MustCompile(`GD Cards:\s*(.+?)\s+found a card`)
	gdCardsDropOrbsRe   = regexp.MustCompile(`received\s+(-?[0-9]+(?:\.[0-9]+)?)\s+orbs`)

	quizRewardPlayerRe = regexp.MustCompile(`Quiz Arena:\s*(.+?)\s+gave the correct answer`)
	quizRewardPointsRe = regexp.MustCompile(`earns\s+(-?[0-9]+(?:\.[0-9]+)?)\s+points`)

	casinoPayoutPlayerRe = regexp.MustCompile(`Casino Royale:\s*(.+?)\s+wins`)
	casinoPayoutChipsRe  = regexp.MustCompile(`wins\s+(-?[0-9]+(?:\.[0-9]+)?)\s+chips`)

	karmaPlayerRe = regexp.MustCompile(`karma:\s*(.+?)\s+received a thank you`)

	duelPlayerRe = regexp.MustCompile(`duel:\s*(.+?)\s+takes the prize of`)
	duelPrizeRe  = regexp.MustCompile(`takes the prize of\s+(-?[0-9]+(?:\.[0-9]+)?)`)
)

// karmaAward is the constant recorded for every karma change. The announcement's
// displayed rating is an external total that cannot be trusted as a delta source,
// so the award is always exactly one unit.
var karmaAward = decimal.NewFromInt(1)

// parseAccrual is the shared extraction path for single-player award announcements
func parseAccrual(messageType entity.MessageType, game, text string, playerRe, amountRe *regexp.Regexp) (*entity.AccrualEvent, error) {
	playerName, ok := extractField(playerRe, text)
	if !ok {
		return nil, errs.NewParseError(string(messageType), fieldPlayerName, errs.ErrMissingField)
	}

	rawAmount, ok := extractField(amountRe, text)
	if !ok {
		return nil, errs.NewParseError(string(messageType), fieldAwardedAmount, errs.ErrMissingField)
	}
	awardedAmount, err := parseAmount(messageType, fieldAwardedAmount, rawAmount)
	if err != nil {
		return nil, err
	}

	return &entity.AccrualEvent{
		PlayerName:    playerName,
		AwardedAmount: awardedAmount,
		Game:          game,
	}, nil
}

// ParseGDCardsDrop extracts an accrual from a GD Cards card-drop announcement
func (p *Parser) ParseGDCardsDrop(text string) (*entity.AccrualEvent, error) {
	return parseAccrual(entity.MessageTypeGDCardsDrop, entity.GameGDCards, text, gdCardsDropPlayerRe, gdCardsDropOrbsRe)
}

// ParseQuizReward extracts an accrual from a Quiz Arena correct-answer announcement
func (p *Parser) ParseQuizReward(text string) (*entity.AccrualEvent, error) {
	return parseAccrual(entity.MessageTypeQuizReward, entity.GameQuiz, text, quizRewardPlayerRe, quizRewardPointsRe)
}

// ParseCasinoPayout extracts an accrual from a Casino Royale payout announcement
func (p *Parser) ParseCasinoPayout(text string) (*entity.AccrualEvent, error) {
	return parseAccrual(entity.MessageTypeCasinoPayout, entity.GameCasino, text, casinoPayoutPlayerRe, casinoPayoutChipsRe)
}

// ParseDuelResult extracts an accrual from a duel prize announcement
func (p *Parser) ParseDuelResult(text string) (*entity.AccrualEvent, error) {
	return parseAccrual(entity.MessageTypeDuelResult, entity.GameQuiz, text, duelPlayerRe, duelPrizeRe)
}

// ParseKarmaChange extracts an accrual from a karma announcement. Whatever rating
// the text displays, the awarded amount is the constant one-unit karma award.
func (p *Parser) ParseKarmaChange(text string) (*entity.AccrualEvent, error) {
	playerName, ok := extractField(karmaPlayerRe, text)
	if !ok {
		return nil, errs.NewParseError(string(entity.MessageTypeKarmaChange), fieldPlayerName, errs.ErrMissingField)
	}

	return &entity.AccrualEvent{
		PlayerName:    playerName,
		AwardedAmount: karmaAward,
		Game:          entity.GameKarma,
	}, nil
}
