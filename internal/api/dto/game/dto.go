package game

type ConfigResponse struct {
	BetList  []float64 `json:"betList"`  // Допустимые ставки по возрастанию
	MulSteps []float64 `json:"mulSteps"` // Лестница множителей для клиента
	RTP      float64   `json:"rtp"`
}

type BalanceResponse struct {
	Balance float64 `json:"balance"`
}

type LaunchRequest struct {
	BetAmount        float64 `json:"betAmount"`
	SpringMultiplier float64 `json:"springMultiplier"`
}

type LaunchResponse struct {
	RoundID          string  `json:"roundId"`
	IsWin            bool    `json:"isWin"`
	WinAmount        float64 `json:"winAmount"`
	LaunchMultiplier float64 `json:"launchMultiplier"` // 0 при проигрыше
	Balance          float64 `json:"balance"`
}

type ShootRequest struct {
	BetAmount         float64 `json:"betAmount"`
	CurrentMultiplier float64 `json:"currentMultiplier"`
	PinataHits        *int    `json:"pinataHits"`
	RoundID           string  `json:"roundId"` // Необязательный
}

type ShootResponse struct {
	RoundID   string  `json:"roundId"`
	Result    string  `json:"result"` // JACKPOT, SMALL_WIN, BAD_EXPLODE, MISS
	WinAmount float64 `json:"winAmount"`
	Balance   float64 `json:"balance"`
}
