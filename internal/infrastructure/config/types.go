package config

// LevelConfig is the root config for level.yaml
type LevelConfig struct {
	Display DisplayConfig `yaml:"display"`
	Level   LevelSettings `yaml:"level"`
	Physics PhysicsConfig `yaml:"physics"`
	Player  PlayerConfig  `yaml:"player"`
	Shot    ShotConfig    `yaml:"shot"`
	Sprites SpritesConfig `yaml:"sprites"`
	Audio   AudioConfig   `yaml:"audio"`
}

type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screen_width"`
	ScreenHeight int    `yaml:"screen_height"`
	Scale        int    `yaml:"scale"`
	Framerate    int    `yaml:"framerate"`
	Title        string `yaml:"title"`
}

type LevelSettings struct {
	Map              string  `yaml:"map"` // file name under maps/
	ViewWidth        float64 `yaml:"view_width"`
	ViewHeight       float64 `yaml:"view_height"`
	PoolCapacity     int     `yaml:"pool_capacity"`
	AnimationDivisor int     `yaml:"animation_divisor"` // advance animations every Nth frame
}

type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"` // negative, map units/s^2
	JumpVelocity float64 `yaml:"jump_velocity"`
	PlayerSpeed  float64 `yaml:"player_speed"`
	EnemySpeed   float64 `yaml:"enemy_speed"`
	Friction     float64 `yaml:"friction"`      // fraction of vx lost per tick with no direction held
	CeilingNudge float64 `yaml:"ceiling_nudge"` // vy after bumping a ceiling
}

type PlayerConfig struct {
	Lives          int          `yaml:"lives"`
	MortalCooldown float64      `yaml:"mortal_cooldown"` // seconds
	RespawnDelay   float64      `yaml:"respawn_delay"`   // seconds
	FireCooldown   float64      `yaml:"fire_cooldown"`   // seconds
	BlinkRate      float64      `yaml:"blink_rate"`      // blinks per second while invulnerable
	Clips          []ClipConfig `yaml:"clips"`
}

// ClipConfig is one entry of the player animation table. The table is
// indexed by (7 if shooting) + motion, with motion one of idle, idle_up,
// walking, walking_up, jumping, jumping_up, jumping_down.
type ClipConfig struct {
	BeginX   int `yaml:"x"`
	BeginY   int `yaml:"y"`
	EndFrame int `yaml:"end"`
}

type ShotConfig struct {
	Speed    float64 `yaml:"speed"`
	Lifespan float64 `yaml:"lifespan"` // seconds
	Size     float64 `yaml:"size"`
}

type SpritesConfig struct {
	Tiles  TileSheetConfig `yaml:"tiles"`
	Player SpriteConfig    `yaml:"player"`
	Enemy  SpriteConfig    `yaml:"enemy"`
	Item   SpriteConfig    `yaml:"item"`
	Shot   SpriteConfig    `yaml:"shot"`
}

// SpriteConfig describes a single-row sprite sheet.
// UV is the quad's texture rect {u0, v0, u1, v1} before animation offsets.
type SpriteConfig struct {
	Texture string     `yaml:"texture"`
	Frames  int        `yaml:"frames"` // index of the last frame
	Step    float64    `yaml:"step"`   // texture offset between frames
	UV      [4]float64 `yaml:"uv"`
}

// Animated reports whether the sprite cycles frames
func (s SpriteConfig) Animated() bool {
	return s.Step > 0
}

type TileSheetConfig struct {
	Texture string     `yaml:"texture"`
	Offset  float64    `yaml:"offset"` // texture offset between tile variants
	UV      [4]float64 `yaml:"uv"`
}

type AudioConfig struct {
	Music  string  `yaml:"music"`
	Jump   string  `yaml:"jump"`
	Pickup string  `yaml:"pickup"`
	Volume float64 `yaml:"volume"`
}
