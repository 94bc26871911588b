package entity

import (
	"github.com/shopspring/decimal"
)

// MessageType identifies one recognized announcement format
type MessageType string

// Recognized message types. UNKNOWN is returned when no classifier rule matches.
const (
	MessageTypeGDCardsProfile MessageType = "gd_cards_profile"
	MessageTypeGDCardsDrop    MessageType = "gd_cards_drop"
	MessageTypeBunkerWinners  MessageType = "bunker_winners"
	MessageTypeMafiaWinners   MessageType = "mafia_winners"
	MessageTypeQuizReward     MessageType = "quiz_reward"
	MessageTypeCasinoBalance  MessageType = "casino_balance"
	MessageTypeCasinoPayout   MessageType = "casino_payout"
	MessageTypeKarmaChange    MessageType = "karma_change"
	MessageTypeDuelResult     MessageType = "duel_result"
	MessageTypeUnknown        MessageType = "unknown"
)

// Game identifiers. The owning game is determined by which parser matched,
// never parsed out of the message text.
const (
	GameGDCards = "GD Cards"
	GameBunker  = "Bunker RP"
	GameMafia   = "Mafia"
	GameQuiz    = "Quiz Arena"
	GameCasino  = "Casino Royale"
	GameKarma   = "Karma"
)

// ProfileSnapshotEvent reports an absolute current value for a player in one game,
// such as a total orb or chip count shown on a profile card
type ProfileSnapshotEvent struct {
	PlayerName    string
	AbsoluteValue decimal.Decimal
	Game          string
}

// AccrualEvent reports a discrete awarded amount for a player in one game
type AccrualEvent struct {
	PlayerName    string
	AwardedAmount decimal.Decimal
	Game          string
}

// FixedRewardEvent names multiple winners that each receive the same fixed award.
// The reward size is not part of the event: it is a literal per-game amount
// selected by the processor.
type FixedRewardEvent struct {
	Winners []string
	Game    string
}
