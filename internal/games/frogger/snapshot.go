package frogger

// EnemySnapshot captures one enemy.
type EnemySnapshot struct {
	X, Y      float64
	Speed     float64
	Alpha     float64
	Animation Behaviour
}

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Level     int
	Score     int
	Lives     int
	PlayerX   float64
	PlayerY   float64
	Behaviour Behaviour // active player behaviour
	Countdown int       // 0 when no countdown is running
	Enemies   []EnemySnapshot
	Entities  int
	GameOver  bool
	Paused    bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	s := g.session
	player := s.Player()

	snap := Snapshot{
		Tick:      g.tick,
		Level:     s.Level(),
		Score:     player.Player.Score,
		Lives:     player.Player.Lives(),
		PlayerX:   player.Pos.X,
		PlayerY:   player.Pos.Y,
		Behaviour: player.Active(),
		Entities:  s.Registry().Len(),
		GameOver:  s.GameOver(),
		Paused:    g.paused,
	}
	if c := player.Player.countdown; c != nil && s.Registry().Contains(c) {
		snap.Countdown = c.Countdown.Count
	}
	for _, e := range s.Registry().OfKind(KindEnemy) {
		snap.Enemies = append(snap.Enemies, EnemySnapshot{
			X:         e.Pos.X,
			Y:         e.Pos.Y,
			Speed:     e.Enemy.Speed,
			Alpha:     e.Alpha,
			Animation: e.Enemy.Animation,
		})
	}
	return snap
}
