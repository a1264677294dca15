package manager

import (
	"time"
)

// maxScores caps the remembered score history.
const maxScores = 50

// StateManager keeps score bookkeeping for the running process. Nothing is
// written to disk.
type StateManager struct {
	steps        int
	startTime    time.Time
	endTime      time.Time
	highScore    int
	gamesPlayed  int
	scoreHistory []int
}

func NewStateManager() *StateManager {
	return &StateManager{
		startTime:    time.Now(),
		scoreHistory: make([]int, 0, maxScores),
	}
}

// StartGame resets the per-game counters.
func (sm *StateManager) StartGame() {
	sm.steps = 0
	sm.startTime = time.Now()
	sm.endTime = time.Time{}
}

func (sm *StateManager) RecordStep() {
	sm.steps++
}

func (sm *StateManager) UpdateScore(score int) {
	if score > sm.highScore {
		sm.highScore = score
	}
}

// AddToHistory records the score of a finished game and stops its clock.
func (sm *StateManager) AddToHistory(score int) {
	sm.endTime = time.Now()
	sm.gamesPlayed++
	if len(sm.scoreHistory) >= maxScores {
		sm.scoreHistory = sm.scoreHistory[1:]
	}
	sm.scoreHistory = append(sm.scoreHistory, score)
}

func (sm *StateManager) GetSteps() int {
	return sm.steps
}

func (sm *StateManager) GetHighScore() int {
	return sm.highScore
}

func (sm *StateManager) GetScoreHistory() []int {
	return sm.scoreHistory
}

func (sm *StateManager) GamesPlayed() int {
	return sm.gamesPlayed
}

// AverageScore averages the remembered history only.
func (sm *StateManager) AverageScore() float64 {
	if len(sm.scoreHistory) == 0 {
		return 0
	}
	sum := 0
	for _, s := range sm.scoreHistory {
		sum += s
	}
	return float64(sum) / float64(len(sm.scoreHistory))
}

// Elapsed returns how long the current game ran, or has been running if it
// is not finished yet.
func (sm *StateManager) Elapsed() time.Duration {
	if sm.endTime.IsZero() {
		return time.Since(sm.startTime)
	}
	return sm.endTime.Sub(sm.startTime)
}
