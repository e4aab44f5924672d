package config

// LevelConfig controls procedural level generation.
type LevelConfig struct {
	Size            float64 // half-extent of the square, world units
	SiteCount       int     // interior cells to generate
	MinSiteSpacing  float64 // rejection-sampling distance between sites
	RelaxPasses     int     // centroid relaxation rebuilds
	BlockedFraction float64 // share of cells marked non-walkable
}

// MonsterTypeConfig contains configuration for specific monster types
type MonsterTypeConfig struct {
	Name      string
	Health    int
	MoveSpeed float64 // units/second
	Radius    float64

	// Combat
	AttackRange    float64
	AttackDamage   int
	AttackCooldown int // ticks

	// Stagger applied to the victim on hit
	StaggerDuration float32 // seconds
	StaggerSlowdown float64 // speed multiplier floor, eases back to 1
}

// MonsterConfig contains the monster roster for a run.
type MonsterConfig struct {
	Types map[string]MonsterTypeConfig
	// Spawns lists type names, one monster each.
	Spawns []string
}

// PlayerConfig tunes the headless player stand-in.
type PlayerConfig struct {
	Health        int
	MoveSpeed     float64
	Radius        float64
	WaypointCount int
}

// SimConfig controls the fixed-rate simulation loop.
type SimConfig struct {
	TickRate        int   // ticks per second
	NavRefreshTicks int   // navigation field rebuild cadence
	Seed            int64 // world generation and AI seed
}

// DebugConfig controls the websocket overlay.
type DebugConfig struct {
	OverlayAddr string // empty disables the overlay
}

// Config holds the full simulation configuration.
type Config struct {
	Level   LevelConfig
	Monster MonsterConfig
	Player  PlayerConfig
	Sim     SimConfig
	Debug   DebugConfig
}

// Default returns the standard tuning table.
func Default() *Config {
	crawler := MonsterTypeConfig{
		Name:            "Crawler",
		Health:          30,
		MoveSpeed:       3.2,
		Radius:          0.35,
		AttackRange:     0.6,
		AttackDamage:    5,
		AttackCooldown:  45,
		StaggerDuration: 0.5,
		StaggerSlowdown: 0.25,
	}
	brute := MonsterTypeConfig{
		Name:            "Brute",
		Health:          80,
		MoveSpeed:       2.0,
		Radius:          0.55,
		AttackRange:     0.9,
		AttackDamage:    15,
		AttackCooldown:  90,
		StaggerDuration: 0.8,
		StaggerSlowdown: 0.1,
	}

	return &Config{
		Level: LevelConfig{
			Size:            12,
			SiteCount:       24,
			MinSiteSpacing:  2.0,
			RelaxPasses:     2,
			BlockedFraction: 0.2,
		},
		Monster: MonsterConfig{
			Types: map[string]MonsterTypeConfig{
				"Crawler": crawler,
				"Brute":   brute,
			},
			Spawns: []string{"Crawler", "Crawler", "Crawler", "Brute"},
		},
		Player: PlayerConfig{
			Health:        100,
			MoveSpeed:     4.0,
			Radius:        0.4,
			WaypointCount: 4,
		},
		Sim: SimConfig{
			TickRate:        30,
			NavRefreshTicks: 10,
			Seed:            1,
		},
		Debug: DebugConfig{
			OverlayAddr: "",
		},
	}
}
