package t2048

// Observer receives a snapshot every time the board settles: after the
// opening spawn, after each move and when the game ends.
type Observer interface {
	Observe(Snapshot)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Snapshot)

// Observe implements Observer.
func (f ObserverFunc) Observe(s Snapshot) {
	f(s)
}

// SetObserver attaches o to the game. A nil observer detaches.
func (g *Game) SetObserver(o Observer) {
	g.observer = o
}

func (g *Game) notify() {
	if g.observer != nil && g.ctrl != nil {
		g.observer.Observe(g.Snapshot())
	}
}
