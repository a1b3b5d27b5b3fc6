package input

// Command is one decoded per-frame action for a ship
type Command uint8

const (
	CmdMove Command = iota
	CmdRotateLeft
	CmdRotateRight
	CmdFire
)

func (c Command) String() string {
	switch c {
	case CmdMove:
		return "move"
	case CmdRotateLeft:
		return "rotate-left"
	case CmdRotateRight:
		return "rotate-right"
	case CmdFire:
		return "fire"
	}
	return "unknown"
}

// Controls binds one player's actions to keys
type Controls struct {
	Thrust      Key
	RotateLeft  Key
	RotateRight Key
	Fire        Key
}

// DefaultControls returns the two-player mapping:
// player 1 W/A/D/Space, player 2 Up/Left/Right/Enter
func DefaultControls() []Controls {
	return []Controls{
		{Thrust: KeyW, RotateLeft: KeyA, RotateRight: KeyD, Fire: KeySpace},
		{Thrust: KeyUp, RotateLeft: KeyLeft, RotateRight: KeyRight, Fire: KeyEnter},
	}
}

// Decode appends the commands for the held keys to buf in fixed order:
// move, rotate-left, rotate-right, fire
func (c Controls) Decode(keys KeySet, buf []Command) []Command {
	if keys.Has(c.Thrust) {
		buf = append(buf, CmdMove)
	}
	if keys.Has(c.RotateLeft) {
		buf = append(buf, CmdRotateLeft)
	}
	if keys.Has(c.RotateRight) {
		buf = append(buf, CmdRotateRight)
	}
	if keys.Has(c.Fire) {
		buf = append(buf, CmdFire)
	}
	return buf
}
