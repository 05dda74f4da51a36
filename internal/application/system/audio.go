package system

// AudioSink plays named clips. Play must not block the tick.
type AudioSink interface {
	Play(clip string, loop bool)
}

type nopAudio struct{}

func (nopAudio) Play(string, bool) {}

// NopAudio returns an AudioSink that discards every clip
func NopAudio() AudioSink {
	return nopAudio{}
}
