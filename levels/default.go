package levels

// DefaultLevel is played when no level file is given: a row of ground
// platforms with gaps, a few ledges and some hazards.
func DefaultLevel() *Level {
	ground := "#4a4a4a"
	ledge := "#6b6b6b"
	lvl := &Level{
		WorldWidth:  DefaultWorldWidth,
		WorldHeight: DefaultWorldHeight,
		Objects: []Object{
			{Type: TypePlatform, X: 0, Y: 580, Width: 400, Height: 20, Color: ground},
			{Type: TypePlatform, X: 500, Y: 580, Width: 300, Height: 20, Color: ground},
			{Type: TypePlatform, X: 900, Y: 580, Width: 400, Height: 20, Color: ground},
			{Type: TypePlatform, X: 1400, Y: 580, Width: 500, Height: 20, Color: ground},
			{Type: TypePlatform, X: 2000, Y: 580, Width: 400, Height: 20, Color: ground},

			{Type: TypePlatform, X: 300, Y: 480, Width: 150, Height: 15, Color: ledge},
			{Type: TypePlatform, X: 600, Y: 400, Width: 120, Height: 15, Color: ledge},
			{Type: TypePlatform, X: 800, Y: 320, Width: 150, Height: 15, Color: ledge},

			{Type: TypeDeadlyFloor, X: 420, Y: 580, Width: 60, Height: 20},
			{Type: TypeDeadlyFloor, X: 1320, Y: 580, Width: 60, Height: 20},

			{Type: TypeSpike, X: 750, Y: 550, SpikeCount: 5, SpikeSize: 20},
		},
	}
	lvl.ApplyDefaults()
	return lvl
}
