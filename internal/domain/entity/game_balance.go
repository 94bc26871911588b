package entity

import (
	"time"

	"github.com/shopspring/decimal"

	coreport "github.com/amirhossein-jamali/point-exchange/internal/domain/port/core"
)

// GameBalance is the per-(player, game) mirror record. LastBalance tracks the most
// recently observed absolute value the external game reported; CurrentBotBalance
// accumulates discrete awards recorded by this system. The two fields are written by
// disjoint code paths: snapshots touch only LastBalance, accruals only CurrentBotBalance.
type GameBalance struct {
	ID                uint64
	UserID            uint64
	Game              string
	LastBalance       decimal.Decimal
	CurrentBotBalance decimal.Decimal
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NewSnapshotBaseline creates the mirror record on first contact with a profile
// snapshot. The absolute value becomes the baseline for future deltas; the bank
// balance is not touched because there is nothing to compute a delta against yet.
func NewSnapshotBaseline(userID uint64, game string, absoluteValue decimal.Decimal, timeProvider coreport.TimeProvider) *GameBalance {
	now := timeProvider.Now()
	return &GameBalance{
		UserID:            userID,
		Game:              game,
		LastBalance:       absoluteValue,
		CurrentBotBalance: decimal.Zero,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// NewAccrualBalance creates the mirror record on first contact with an accrual event
func NewAccrualBalance(userID uint64, game string, awardedAmount decimal.Decimal, timeProvider coreport.TimeProvider) *GameBalance {
	now := timeProvider.Now()
	return &GameBalance{
		UserID:            userID,
		Game:              game,
		LastBalance:       decimal.Zero,
		CurrentBotBalance: awardedAmount,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// SnapshotDelta returns the change between a newly reported absolute value and the
// stored baseline. A negative delta is legitimate: the external value decreased.
func (g *GameBalance) SnapshotDelta(absoluteValue decimal.Decimal) decimal.Decimal {
	return absoluteValue.Sub(g.LastBalance)
}

// ApplySnapshot records a newly observed absolute value. Only LastBalance moves.
func (g *GameBalance) ApplySnapshot(absoluteValue decimal.Decimal, timeProvider coreport.TimeProvider) {
	g.LastBalance = absoluteValue
	g.UpdatedAt = timeProvider.Now()
}

// ApplyAward accumulates a discrete award. Only CurrentBotBalance moves.
func (g *GameBalance) ApplyAward(awardedAmount decimal.Decimal, timeProvider coreport.TimeProvider) {
	g.CurrentBotBalance = g.CurrentBotBalance.Add(awardedAmount)
	g.UpdatedAt = timeProvider.Now()
}
