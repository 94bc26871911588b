package dto

// BalanceResponse represents the API response for a player's bank balance
type BalanceResponse struct {
	UserName    string `json:"userName"`
	BankBalance string `json:"bankBalance"`
}

// GameBalanceResponse represents a single per-game mirror balance
type GameBalanceResponse struct {
	Game              string `json:"game"`
	LastBalance       string `json:"lastBalance"`
	CurrentBotBalance string `json:"currentBotBalance"`
}

// GameBalancesResponse represents the API response listing a player's game balances
type GameBalancesResponse struct {
	UserName    string                `json:"userName"`
	BankBalance string                `json:"bankBalance"`
	Games       []GameBalanceResponse `json:"games"`
}
