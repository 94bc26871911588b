package player

import (
	"context"

	"github.com/amirhossein-jamali/point-exchange/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/point-exchange/internal/domain/port/core"
	"github.com/amirhossein-jamali/point-exchange/internal/domain/port/persistence"
)

// QueryService answers read-only questions about a player's ledger. It never
// mutates balances: all writes route through the message processor.
type QueryService struct {
	users        persistence.UserRepository
	gameBalances persistence.GameBalanceRepository
	logger       coreport.Logger
}

// NewQueryService creates a new query service
func NewQueryService(
	users persistence.UserRepository,
	gameBalances persistence.GameBalanceRepository,
	logger coreport.Logger,
) *QueryService {
	return &QueryService{
		users:        users,
		gameBalances: gameBalances,
		logger:       logger,
	}
}

// GetBalance returns the ledger record for a player
//
// Possible errors:
// - ErrUserNotFound: If no ledger record exists for the name
func (s *QueryService) GetBalance(ctx context.Context, userName string) (*entity.User, error) {
	user, err := s.users.GetByName(ctx, entity.NormalizeUserName(userName))
	if err != nil {
		s.logger.Warn("Failed to fetch player balance", map[string]any{
			"user_name": userName,
			"error":     err.Error(),
		})
		return nil, err
	}
	return user, nil
}

// ListGameBalances returns all per-game mirror balances of a player
//
// Possible errors:
// - ErrUserNotFound: If no ledger record exists for the name
func (s *QueryService) ListGameBalances(ctx context.Context, userName string) (*entity.User, []*entity.GameBalance, error) {
	user, err := s.users.GetByName(ctx, entity.NormalizeUserName(userName))
	if err != nil {
		return nil, nil, err
	}

	balances, err := s.gameBalances.ListByUser(ctx, user.ID)
	if err != nil {
		s.logger.Error("Failed to list game balances", map[string]any{
			"user_id":   user.ID,
			"user_name": user.UserName,
			"error":     err.Error(),
		})
		return nil, nil, err
	}
	return user, balances, nil
}
