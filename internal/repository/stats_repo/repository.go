package stats_repo

import (
	"flying_horse_backend/internal/model"
	repoModel "flying_horse_backend/internal/repository/stats_repo/model"
	"math"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	// windowSize Размер окна последних ставок
	windowSize = 500
	// minWagersToCheck Меньше ставок в окне не анализируем
	minWagersToCheck = 100
	// periodWagersToCheck Периодичность проверки (каждые N ставок)
	periodWagersToCheck = 25
	// criticalRTPDeviation Отклонение RTP окна для включения аварийного режима, п.п.
	criticalRTPDeviation = 10.0
	// normalRTPDeviation Отклонение для выхода из аварийного режима, п.п.
	normalRTPDeviation = 5.0
	// maxAlerts Сколько последних срабатываний храним
	maxAlerts = 100
)

// StateRepo трекер фактического RTP. Только наблюдает и предупреждает,
// шансы движка не меняет
type StateRepo struct {
	mtx   sync.RWMutex
	state repoModel.TrackerState
	now   func() time.Time
}

// NewStatsRepository targetRTP в долях (0.96)
func NewStatsRepository(targetRTP float64) *StateRepo {
	return &StateRepo{
		state: repoModel.TrackerState{
			TargetRTP:  targetRTP * 100,
			Alerts:     make([]repoModel.DriftLog, 0),
			Window:     make([]repoModel.WagerResult, 0, windowSize+1),
			WindowSize: windowSize,
		},
		now: time.Now,
	}
}

// State копия состояния трекера
func (r *StateRepo) State() repoModel.TrackerState {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	st := r.state
	st.Alerts = append([]repoModel.DriftLog(nil), r.state.Alerts...)
	st.Window = append([]repoModel.WagerResult(nil), r.state.Window...)
	return st
}

// Snapshot данные для отчётов
func (r *StateRepo) Snapshot() model.LiveRTP {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	return model.LiveRTP{
		TotalSpins:    r.state.TotalWagers,
		TotalBet:      r.state.TotalBet,
		TotalPayout:   r.state.TotalPayout,
		CurrentRTP:    r.state.CurrentRTP,
		WindowRTP:     r.state.WindowRTP,
		WindowSize:    len(r.state.Window),
		TargetRTP:     r.state.TargetRTP,
		EmergencyMode: r.state.EmergencyMode,
	}
}

// SetTargetRTP новый целевой RTP в долях
func (r *StateRepo) SetTargetRTP(rtp float64) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.state.TargetRTP = rtp * 100
}

// UpdateState учитывает рассчитанную ставку
func (r *StateRepo) UpdateState(bet, payout float64) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.state.TotalWagers++
	r.state.TotalBet += bet
	r.state.TotalPayout += payout
	if r.state.TotalBet > 0 {
		r.state.CurrentRTP = r.state.TotalPayout / r.state.TotalBet * 100
	}

	r.state.Window = append(r.state.Window, repoModel.WagerResult{Bet: bet, Payout: payout})
	if len(r.state.Window) > r.state.WindowSize {
		r.state.Window = r.state.Window[1:]
	}

	var windowBet, windowPayout float64
	for _, w := range r.state.Window {
		windowBet += w.Bet
		windowPayout += w.Payout
	}
	if windowBet > 0 {
		r.state.WindowRTP = windowPayout / windowBet * 100
	} else {
		r.state.WindowRTP = 0
	}

	if r.state.TotalWagers%periodWagersToCheck == 0 && len(r.state.Window) >= minWagersToCheck {
		r.checkDrift()
	}
}

// checkDrift включает аварийный режим при отклонении больше критического
// и выключает, когда окно вернулось ближе нормального
func (r *StateRepo) checkDrift() {
	diff := math.Abs(r.state.WindowRTP - r.state.TargetRTP)

	if diff > criticalRTPDeviation {
		direction := "low"
		if r.state.WindowRTP > r.state.TargetRTP {
			direction = "high"
		}
		if r.state.EmergencyMode && r.state.EmergencyDirection == direction {
			return
		}
		r.state.EmergencyMode = true
		r.state.EmergencyDirection = direction

		r.state.Alerts = append(r.state.Alerts, repoModel.DriftLog{
			Timestamp: r.now(),
			Direction: direction,
			WindowRTP: r.state.WindowRTP,
			TargetRTP: r.state.TargetRTP,
			Profit:    r.state.TotalBet - r.state.TotalPayout,
		})
		if len(r.state.Alerts) > maxAlerts {
			r.state.Alerts = r.state.Alerts[1:]
		}

		logrus.WithFields(logrus.Fields{
			"window_rtp": r.state.WindowRTP,
			"target_rtp": r.state.TargetRTP,
			"direction":  direction,
		}).Warn("RTP окна вышел за критический порог")
		return
	}

	if r.state.EmergencyMode && diff < normalRTPDeviation {
		r.state.EmergencyMode = false
		r.state.EmergencyDirection = ""
		logrus.WithField("window_rtp", r.state.WindowRTP).Info("RTP окна вернулся к норме")
	}
}
