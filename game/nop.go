package game

import "context"

// NopPresenter discards all presentation calls
type NopPresenter struct{}

func (NopPresenter) ShowView(View) {}
func (NopPresenter) UpdateRoundScore(int, int) {}
func (NopPresenter) EmitAction(Action) {}
func (NopPresenter) HideAction() {}
func (NopPresenter) ShowMessage(string) {}
func (NopPresenter) HideMessage() {}
func (NopPresenter) ShowGameOver(int, int) {}

// NopAudio is a silent AudioCue
type NopAudio struct{}

func (NopAudio) Play(Action) {}
func (NopAudio) PlayError() {}

// NopStorage never has a stored score and accepts every save
type NopStorage struct{}

func (NopStorage) LoadHighScore(context.Context) (int, error) { return 0, ErrNoHighScore }
func (NopStorage) SaveHighScore(context.Context, int) error { return nil }

// NopObserver ignores lifecycle notifications
type NopObserver struct{}

func (NopObserver) GameStarted(string) {}
func (NopObserver) RoundCompleted(string, int, int) {}
func (NopObserver) GameEnded(string, int, int, bool) {}
func (NopObserver) InputIgnored(GamePhase, Action) {}
