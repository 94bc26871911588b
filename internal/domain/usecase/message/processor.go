package message

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/point-exchange/internal/domain/entity"
	errs "github.com/amirhossein-jamali/point-exchange/internal/domain/error"
	coreport "github.com/amirhossein-jamali/point-exchange/internal/domain/port/core"
	"github.com/amirhossein-jamali/point-exchange/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/point-exchange/internal/domain/usecase/balance"
)

// Error context tags attached to failed processing runs
const (
	ContextTagParsing       = "parsing"
	ContextTagConfiguration = "configuration"
	ContextTagProcessing    = "processing"
)

// Literal reward sizes for the multi-winner game families
var (
	bunkerFixedReward = decimal.NewFromInt(30)
	mafiaFixedReward  = decimal.NewFromInt(50)
)

// Result carries enough information for the caller to render a user-facing
// confirmation. Duplicate marks a message whose fingerprint was already processed;
// such calls are silent no-ops, not errors.
type Result struct {
	RunID       string
	MessageType entity.MessageType
	Game        string
	Players     []string
	Amount      decimal.Decimal
	Duplicate   bool
}

// Processor is the single entry point of the settlement pipeline. One call runs
// classify, parse, idempotency guard, balance application and fingerprint marking
// inside a single transaction; any failure rolls the whole run back and the
// fingerprint stays unmarked so a corrected resend will be retried.
type Processor struct {
	uow          persistence.UnitOfWork
	classifier   *Classifier
	parser       *Parser
	idempotency  *IdempotencyChecker
	manager      *balance.Manager
	timeProvider coreport.TimeProvider
	audit        coreport.AuditLogger
	logger       coreport.Logger
}

// NewProcessor creates a new message processor
func NewProcessor(
	uow persistence.UnitOfWork,
	classifier *Classifier,
	parser *Parser,
	idempotency *IdempotencyChecker,
	manager *balance.Manager,
	timeProvider coreport.TimeProvider,
	audit coreport.AuditLogger,
	logger coreport.Logger,
) *Processor {
	return &Processor{
		uow:          uow,
		classifier:   classifier,
		parser:       parser,
		idempotency:  idempotency,
		manager:      manager,
		timeProvider: timeProvider,
		audit:        audit,
		logger:       logger,
	}
}

// ProcessMessage turns one raw announcement into ledger mutations, exactly once per
// (text, timestamp) pair. An already-processed fingerprint returns immediately with
// no transaction and no error.
func (p *Processor) ProcessMessage(ctx context.Context, text string, timestamp time.Time) (*Result, error) {
	runID := uuid.NewString()

	fingerprint := p.idempotency.Fingerprint(text, timestamp)
	processed, err := p.idempotency.IsProcessed(ctx, fingerprint)
	if err != nil {
		p.audit.RecordError(runID, ContextTagProcessing, err, map[string]any{
			"fingerprint": fingerprint,
		})
		return nil, err
	}
	if processed {
		p.logger.Debug("Message already processed, skipping", map[string]any{
			"run_id":      runID,
			"fingerprint": fingerprint,
		})
		return &Result{RunID: runID, Duplicate: true}, nil
	}

	txCtx, err := p.uow.Begin(ctx)
	if err != nil {
		p.audit.RecordError(runID, ContextTagProcessing, err, nil)
		return nil, err
	}

	result, err := p.apply(txCtx, text, runID)
	if err == nil {
		err = p.idempotency.MarkProcessed(txCtx, fingerprint, p.timeProvider.Now())
	}
	if err != nil {
		if rbErr := p.uow.Rollback(txCtx); rbErr != nil {
			p.logger.Error("Failed to roll back after processing error", map[string]any{
				"run_id": runID,
				"error":  rbErr.Error(),
			})
		}
		p.audit.RecordError(runID, contextTag(err), err, map[string]any{
			"fingerprint": fingerprint,
		})
		return nil, err
	}

	if err := p.uow.Commit(txCtx); err != nil {
		p.audit.RecordError(runID, ContextTagProcessing, err, map[string]any{
			"fingerprint": fingerprint,
		})
		return nil, err
	}

	p.logger.Info("Message settled", map[string]any{
		"run_id":       runID,
		"message_type": string(result.MessageType),
		"game":         result.Game,
		"players":      result.Players,
		"amount":       result.Amount.String(),
		"fingerprint":  fingerprint,
	})
	return result, nil
}

// apply classifies and parses the text, then dispatches the event to the matching
// balance update. Runs inside the transaction carried by ctx.
func (p *Processor) apply(ctx context.Context, text, runID string) (*Result, error) {
	messageType := p.classifier.Classify(text)

	switch messageType {
	case entity.MessageTypeGDCardsProfile:
		event, err := p.parser.ParseGDCardsProfile(text)
		if err != nil {
			return nil, err
		}
		return p.applySnapshot(ctx, messageType, *event, runID)

	case entity.MessageTypeCasinoBalance:
		event, err := p.parser.ParseCasinoBalance(text)
		if err != nil {
			return nil, err
		}
		return p.applySnapshot(ctx, messageType, *event, runID)

	case entity.MessageTypeGDCardsDrop:
		event, err := p.parser.ParseGDCardsDrop(text)
		if err != nil {
			return nil, err
		}
		return p.applyAccrual(ctx, messageType, *event, runID)

	case entity.MessageTypeQuizReward:
		event, err := p.parser.ParseQuizReward(text)
		if err != nil {
			return nil, err
		}
		return p.applyAccrual(ctx, messageType, *event, runID)

	case entity.MessageTypeCasinoPayout:
		event, err := p.parser.ParseCasinoPayout(text)
		if err != nil {
			return nil, err
		}
		return p.applyAccrual(ctx, messageType, *event, runID)

	case entity.MessageTypeKarmaChange:
		event, err := p.parser.ParseKarmaChange(text)
		if err != nil {
			return nil, err
		}
		return p.applyAccrual(ctx, messageType, *event, runID)

	case entity.MessageTypeDuelResult:
		event, err := p.parser.ParseDuelResult(text)
		if err != nil {
			return nil, err
		}
		return p.applyAccrual(ctx, messageType, *event, runID)

	case entity.MessageTypeBunkerWinners:
		event, err := p.parser.ParseBunkerWinners(text)
		if err != nil {
			return nil, err
		}
		reward, err := fixedRewardFor(messageType)
		if err != nil {
			return nil, err
		}
		return p.applyFixedReward(ctx, messageType, *event, reward, runID)

	case entity.MessageTypeMafiaWinners:
		event, err := p.parser.ParseMafiaWinners(text)
		if err != nil {
			return nil, err
		}
		reward, err := fixedRewardFor(messageType)
		if err != nil {
			return nil, err
		}
		return p.applyFixedReward(ctx, messageType, *event, reward, runID)

	default:
		return nil, errs.NewParseError(string(entity.MessageTypeUnknown), "", errs.ErrUnknownMessageType)
	}
}

func (p *Processor) applySnapshot(ctx context.Context, messageType entity.MessageType, event entity.ProfileSnapshotEvent, runID string) (*Result, error) {
	if err := p.manager.ApplyProfileSnapshot(ctx, event, runID); err != nil {
		return nil, err
	}
	return &Result{
		RunID:       runID,
		MessageType: messageType,
		Game:        event.Game,
		Players:     []string{entity.NormalizeUserName(event.PlayerName)},
		Amount:      event.AbsoluteValue,
	}, nil
}

func (p *Processor) applyAccrual(ctx context.Context, messageType entity.MessageType, event entity.AccrualEvent, runID string) (*Result, error) {
	if err := p.manager.ApplyAccrual(ctx, event, runID); err != nil {
		return nil, err
	}
	return &Result{
		RunID:       runID,
		MessageType: messageType,
		Game:        event.Game,
		Players:     []string{entity.NormalizeUserName(event.PlayerName)},
		Amount:      event.AwardedAmount,
	}, nil
}

func (p *Processor) applyFixedReward(ctx context.Context, messageType entity.MessageType, event entity.FixedRewardEvent, fixedAmount decimal.Decimal, runID string) (*Result, error) {
	if err := p.manager.ApplyFixedReward(ctx, event, fixedAmount, runID); err != nil {
		return nil, err
	}
	players := make([]string, 0, len(event.Winners))
	for _, winner := range event.Winners {
		players = append(players, entity.NormalizeUserName(winner))
	}
	return &Result{
		RunID:       runID,
		MessageType: messageType,
		Game:        event.Game,
		Players:     players,
		Amount:      fixedAmount,
	}, nil
}

// contextTag maps an error to the tag its audit record carries
func contextTag(err error) string {
	switch {
	case errs.IsParseError(err):
		return ContextTagParsing
	case errs.IsConfigurationError(err):
		return ContextTagConfiguration
	default:
		return ContextTagProcessing
	}
}

// fixedRewardFor returns the literal reward size of a multi-winner game family
func fixedRewardFor(messageType entity.MessageType) (decimal.Decimal, error) {
	switch messageType {
	case entity.MessageTypeBunkerWinners:
		return bunkerFixedReward, nil
	case entity.MessageTypeMafiaWinners:
		return mafiaFixedReward, nil
	default:
		return decimal.Decimal{}, fmt.Errorf("%w: no fixed reward for message type %s", errs.ErrInvalidRequest, messageType)
	}
}
