package parameter

// Ship kinematics and supplies
const (
	// ShipSpeed is the distance covered by one thrust frame
	ShipSpeed = 2.0

	ShipFuel     = 100.0
	ShipFuelBurn = 0.1
	ShipAmmo     = 5
	ShipHealth   = 100

	// ShipRotateStep is the heading change in degrees per held frame
	ShipRotateStep = 5.0

	// ShipWidth and ShipHeight bound the rendering triangle; wings reach half the width
	ShipWidth  = 20.0
	ShipHeight = 20.0

	// ShipWingAngle is the angular offset of the rear vertices from the heading, in radians (~135°)
	ShipWingAngle = 2.356

	// ShipConsumeAmmo decides whether firing decrements ammo
	// By default firing only checks ammo and never spends it
	ShipConsumeAmmo = false
)

// Projectile
const (
	BulletSpeed  = 5.0
	BulletRadius = 5.0
)

// Match start layout
const (
	// PlayerStartInset is the horizontal distance of each ship from its screen edge
	PlayerStartInset = 100.0
	// PlayerStartDepth is the distance of each ship above the screen bottom
	PlayerStartDepth = 150.0
)
