package message

import (
	"strings"

	"github.com/amirhossein-jamali/point-exchange/internal/domain/entity"
)

// rule ties a message type to the exact substrings that must all be present in the
// text for the rule to match. Matching is case-sensitive; markers may appear anywhere.
type rule struct {
	messageType entity.MessageType
	markers     []string
}

// classificationRules is the fixed priority list. The first satisfied rule wins, so
// composite text containing markers of two types resolves deterministically to the
// rule checked first. Profile rules precede their game's award rules on purpose:
// profile cards often embed award vocabulary.
var classificationRules = []rule{
	{entity.MessageTypeGDCardsProfile, []string{"GD Cards", "Player profile", "Orbs:"}},
	{entity.MessageTypeGDCardsDrop, []string{"GD Cards", "found a card", "orbs"}},
	{entity.MessageTypeBunkerWinners, []string{"Bunker RP", "survivors of the bunker"}},
	{entity.MessageTypeMafiaWinners, []string{"Mafia", "the town celebrates its victors"}},
	{entity.MessageTypeQuizReward, []string{"Quiz Arena", "correct answer", "points"}},
	{entity.MessageTypeCasinoBalance, []string{"Casino Royale", "chip balance"}},
	{entity.MessageTypeCasinoPayout, []string{"Casino Royale", "wins", "chips"}},
	{entity.MessageTypeKarmaChange, []string{"karma", "current rating"}},
	{entity.MessageTypeDuelResult, []string{"duel", "takes the prize of"}},
}

// Classifier recognizes which external bot produced an announcement.
// It is stateless and total: noise and ambiguity resolve by rule priority,
// never by error.
type Classifier struct{}

// NewClassifier creates a new classifier
func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify returns the message type of the first rule whose markers are all present
// in the text, or MessageTypeUnknown when no rule matches
func (c *Classifier) Classify(text string) entity.MessageType {
	for _, r := range classificationRules {
		if matchesAll(text, r.markers) {
			return r.messageType
		}
	}
	return entity.MessageTypeUnknown
}

func matchesAll(text string, markers []string) bool {
	for _, marker := range markers {
		if !strings.Contains(text, marker) {
			return false
		}
	}
	return true
}
