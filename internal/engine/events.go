package engine

import "github.com/Marcennaji/HoldemCore-sub002/internal/cards"

// GameEvents is a struct of optional callbacks the Hand invokes at the
// moments described in spec §6.1. Preserving this shape (rather than a
// single dispatch interface) keeps the engine decoupled from any one host;
// a GUI and a headless runner can each wire only the callbacks they need.
type GameEvents struct {
	OnPlayersInitialized  func(players []*Player)
	OnGameInitialized     func(guiSpeed int)
	OnBettingRoundStarted func(street Street)
	OnBoardCardsDealt     func(board cards.Hand)
	OnHoleCardsDealt      func(playerID int, hole cards.Hand)
	OnPlayerActed         func(action PlayerAction)
	OnPotUpdated          func(newTotal int)
	OnPlayerChipsUpdated  func(playerID int, newCash int)
	OnAwaitingHumanInput  func(playerID int, legalKinds []ActionKind)
	OnShowdownRevealOrder func(playerIDs []int)
	OnHandCompleted       func(winnerIDs []int, totalPot int)
	OnInvalidPlayerAction func(playerID int, action PlayerAction, reason error)
	OnEngineError         func(message string)
	OnProcessEvents       func()
}

func (e *GameEvents) playersInitialized(players []*Player) {
	if e.OnPlayersInitialized != nil {
		e.OnPlayersInitialized(players)
	}
}

func (e *GameEvents) bettingRoundStarted(street Street) {
	if e.OnBettingRoundStarted != nil {
		e.OnBettingRoundStarted(street)
	}
}

func (e *GameEvents) boardCardsDealt(board cards.Hand) {
	if e.OnBoardCardsDealt != nil {
		e.OnBoardCardsDealt(board)
	}
}

func (e *GameEvents) holeCardsDealt(playerID int, hole cards.Hand) {
	if e.OnHoleCardsDealt != nil {
		e.OnHoleCardsDealt(playerID, hole)
	}
}

func (e *GameEvents) playerActed(action PlayerAction) {
	if e.OnPlayerActed != nil {
		e.OnPlayerActed(action)
	}
}

func (e *GameEvents) potUpdated(newTotal int) {
	if e.OnPotUpdated != nil {
		e.OnPotUpdated(newTotal)
	}
}

func (e *GameEvents) playerChipsUpdated(playerID, newCash int) {
	if e.OnPlayerChipsUpdated != nil {
		e.OnPlayerChipsUpdated(playerID, newCash)
	}
}

func (e *GameEvents) awaitingHumanInput(playerID int, legal []ActionKind) {
	if e.OnAwaitingHumanInput != nil {
		e.OnAwaitingHumanInput(playerID, legal)
	}
}

func (e *GameEvents) showdownRevealOrder(ids []int) {
	if e.OnShowdownRevealOrder != nil {
		e.OnShowdownRevealOrder(ids)
	}
}

func (e *GameEvents) handCompleted(winnerIDs []int, totalPot int) {
	if e.OnHandCompleted != nil {
		e.OnHandCompleted(winnerIDs, totalPot)
	}
}

func (e *GameEvents) invalidPlayerAction(playerID int, action PlayerAction, reason error) {
	if e.OnInvalidPlayerAction != nil {
		e.OnInvalidPlayerAction(playerID, action, reason)
	}
}

func (e *GameEvents) engineError(message string) {
	if e.OnEngineError != nil {
		e.OnEngineError(message)
	}
}

func (e *GameEvents) processEvents() {
	if e.OnProcessEvents != nil {
		e.OnProcessEvents()
	}
}
