package config

// Default returns the stock level configuration
func Default() *LevelConfig {
	return &LevelConfig{
		Display: DisplayConfig{
			ScreenWidth:  800,
			ScreenHeight: 800,
			Scale:        1,
			Framerate:    60,
			Title:        "Platformer",
		},
		Level: LevelSettings{
			Map:              "level1.txt",
			ViewWidth:        20,
			ViewHeight:       20,
			PoolCapacity:     1024,
			AnimationDivisor: 60,
		},
		Physics: PhysicsConfig{
			Gravity:      -37,
			JumpVelocity: 18,
			PlayerSpeed:  5,
			EnemySpeed:   2,
			Friction:     0.05,
			CeilingNudge: -0.5,
		},
		Player: PlayerConfig{
			Lives:          3,
			MortalCooldown: 1.0,
			RespawnDelay:   2.0,
			FireCooldown:   0.25,
			BlinkRate:      10,
			Clips:          DefaultClips(),
		},
		Shot: ShotConfig{
			Speed:    12,
			Lifespan: 5,
			Size:     0.5,
		},
		Sprites: SpritesConfig{
			Tiles: TileSheetConfig{
				Texture: "level.png",
				Offset:  0.25,
				UV:      [4]float64{0.01, 0, 0.24, 0.99},
			},
			Player: SpriteConfig{
				Texture: "player_sprite.png",
				Frames:  0,
				Step:    0.125,
				UV:      [4]float64{0, 0, 0.125, 0.122},
			},
			Enemy: SpriteConfig{
				Texture: "kuribo.png",
				Frames:  1,
				Step:    0.5,
				UV:      [4]float64{0, 0, 0.5, 1},
			},
			Item: SpriteConfig{
				Texture: "coin.png",
				Frames:  3,
				Step:    0.25,
				UV:      [4]float64{0, 0, 0.25, 1},
			},
			Shot: SpriteConfig{
				Texture: "bullet.png",
				UV:      [4]float64{0, 0, 1, 1},
			},
		},
		Audio: AudioConfig{
			Music:  "mario_level.ogg",
			Jump:   "jump.wav",
			Pickup: "coin.wav",
			Volume: 0.5,
		},
	}
}

// DefaultClips returns the 14-entry player animation table
func DefaultClips() []ClipConfig {
	return []ClipConfig{
		// idle
		{0, 7, 5},
		{6, 7, 0},
		{0, 6, 6},
		{0, 0, 7},
		{0, 5, 0},
		{2, 5, 0},
		{1, 5, 0},
		// shooting
		{3, 5, 1},
		{5, 5, 1},
		{0, 4, 7},
		{0, 3, 7},
		{0, 2, 1},
		{2, 2, 1},
		{4, 2, 1},
	}
}

// WithDefaults returns a copy of c with zero-valued fields taken from
// Default. Sprite and audio paths are only defaulted when empty.
func (c *LevelConfig) WithDefaults() *LevelConfig {
	d := Default()
	out := *c

	setInt(&out.Display.ScreenWidth, d.Display.ScreenWidth)
	setInt(&out.Display.ScreenHeight, d.Display.ScreenHeight)
	setInt(&out.Display.Scale, d.Display.Scale)
	setInt(&out.Display.Framerate, d.Display.Framerate)
	setString(&out.Display.Title, d.Display.Title)

	setString(&out.Level.Map, d.Level.Map)
	setFloat(&out.Level.ViewWidth, d.Level.ViewWidth)
	setFloat(&out.Level.ViewHeight, d.Level.ViewHeight)
	setInt(&out.Level.PoolCapacity, d.Level.PoolCapacity)
	setInt(&out.Level.AnimationDivisor, d.Level.AnimationDivisor)

	setFloat(&out.Physics.Gravity, d.Physics.Gravity)
	setFloat(&out.Physics.JumpVelocity, d.Physics.JumpVelocity)
	setFloat(&out.Physics.PlayerSpeed, d.Physics.PlayerSpeed)
	setFloat(&out.Physics.EnemySpeed, d.Physics.EnemySpeed)
	setFloat(&out.Physics.Friction, d.Physics.Friction)
	setFloat(&out.Physics.CeilingNudge, d.Physics.CeilingNudge)

	setInt(&out.Player.Lives, d.Player.Lives)
	setFloat(&out.Player.MortalCooldown, d.Player.MortalCooldown)
	setFloat(&out.Player.RespawnDelay, d.Player.RespawnDelay)
	setFloat(&out.Player.FireCooldown, d.Player.FireCooldown)
	setFloat(&out.Player.BlinkRate, d.Player.BlinkRate)
	if len(out.Player.Clips) == 0 {
		out.Player.Clips = d.Player.Clips
	}

	setFloat(&out.Shot.Speed, d.Shot.Speed)
	setFloat(&out.Shot.Lifespan, d.Shot.Lifespan)
	setFloat(&out.Shot.Size, d.Shot.Size)

	if out.Sprites.Tiles.Texture == "" {
		out.Sprites.Tiles = d.Sprites.Tiles
	}
	for _, s := range []struct{ dst, def *SpriteConfig }{
		{&out.Sprites.Player, &d.Sprites.Player},
		{&out.Sprites.Enemy, &d.Sprites.Enemy},
		{&out.Sprites.Item, &d.Sprites.Item},
		{&out.Sprites.Shot, &d.Sprites.Shot},
	} {
		if s.dst.Texture == "" {
			*s.dst = *s.def
		}
	}

	setString(&out.Audio.Music, d.Audio.Music)
	setString(&out.Audio.Jump, d.Audio.Jump)
	setString(&out.Audio.Pickup, d.Audio.Pickup)
	setFloat(&out.Audio.Volume, d.Audio.Volume)

	return &out
}

func setInt(dst *int, def int) {
	if *dst == 0 {
		*dst = def
	}
}

func setFloat(dst *float64, def float64) {
	if *dst == 0 {
		*dst = def
	}
}

func setString(dst *string, def string) {
	if *dst == "" {
		*dst = def
	}
}
