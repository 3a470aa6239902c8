package t2048

import (
	"sort"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// Default animation lengths in ticks.
const (
	slideAnimationDuration = 8 // ~133ms at 60fps
	mergeAnimationDuration = 6 // ~100ms at 60fps
	spawnAnimationDuration = 6
)

// AnimationKind is the transition a sprite is playing.
type AnimationKind int

const (
	AnimNone AnimationKind = iota
	AnimSlide
	AnimMerge
	AnimSpawn
)

// Sprite is a tile as the animator currently draws it.
type Sprite struct {
	ID       int
	Value    int
	Row, Col float64 // interpolated position, in cells
	Kind     AnimationKind
	Progress float64 // 0.0 → 1.0 for the running animation
}

type sprite struct {
	id       int
	value    int
	from, to Position
	kind     AnimationKind
	ticks    int
	duration int
	signal   *Signal
}

// Animator is a tick-driven TileRenderer. Each Advance moves every running
// animation one tick forward; a finished animation resolves its signal.
type Animator struct {
	slideTicks int
	mergeTicks int
	spawnTicks int
	sprites    map[int]*sprite
}

// NewAnimator creates an animator with the given animation lengths in
// ticks. A length of zero or less finishes that animation immediately.
func NewAnimator(slideTicks, mergeTicks, spawnTicks int) *Animator {
	return &Animator{
		slideTicks: slideTicks,
		mergeTicks: mergeTicks,
		spawnTicks: spawnTicks,
		sprites:    make(map[int]*sprite),
	}
}

// NewDefaultAnimator uses the default animation lengths.
func NewDefaultAnimator() *Animator {
	return NewAnimator(slideAnimationDuration, mergeAnimationDuration, spawnAnimationDuration)
}

// NewVisual implements TileRenderer.
func (a *Animator) NewVisual(id int) TileVisual {
	s := &sprite{id: id}
	a.sprites[id] = s
	return &spriteVisual{anim: a, sprite: s}
}

// Advance moves every running animation one tick forward.
func (a *Animator) Advance() {
	for _, s := range a.sprites {
		if s.kind == AnimNone {
			continue
		}
		s.ticks++
		if s.ticks >= s.duration {
			a.finish(s)
		}
	}
}

// Busy reports whether any animation is running.
func (a *Animator) Busy() bool {
	for _, s := range a.sprites {
		if s.kind != AnimNone {
			return true
		}
	}
	return false
}

// FinishAll completes every running animation at once.
func (a *Animator) FinishAll() {
	for _, s := range a.sprites {
		if s.kind != AnimNone {
			a.finish(s)
		}
	}
}

// Sprites returns the drawable state of every tile, sorted by ID so older
// tiles are drawn first.
func (a *Animator) Sprites() []Sprite {
	out := make([]Sprite, 0, len(a.sprites))
	for _, s := range a.sprites {
		progress := 1.0
		if s.kind != AnimNone && s.duration > 0 {
			progress = core.ClampF(float64(s.ticks)/float64(s.duration), 0, 1)
		}
		row, col := float64(s.to.Row), float64(s.to.Col)
		if s.kind == AnimSlide {
			row, col = interpolatePosition(s.from, s.to, progress)
		}
		out = append(out, Sprite{
			ID:       s.id,
			Value:    s.value,
			Row:      row,
			Col:      col,
			Kind:     s.kind,
			Progress: progress,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// start begins a new animation on s. A still-running animation is
// superseded and its signal resolved, so nobody waits on it forever.
func (a *Animator) start(s *sprite, kind AnimationKind, duration int) *Signal {
	if s.kind != AnimNone {
		a.finish(s)
	}
	s.kind = kind
	s.ticks = 0
	s.duration = duration
	s.signal = NewSignal()
	sig := s.signal
	if duration <= 0 {
		a.finish(s)
	}
	return sig
}

func (a *Animator) finish(s *sprite) {
	s.from = s.to
	s.kind = AnimNone
	s.ticks = 0
	if s.signal != nil {
		s.signal.Resolve()
		s.signal = nil
	}
}

type spriteVisual struct {
	anim   *Animator
	sprite *sprite
}

func (v *spriteVisual) Spawn(pos Position, value int) *Signal {
	v.sprite.value = value
	v.sprite.from, v.sprite.to = pos, pos
	return v.anim.start(v.sprite, AnimSpawn, v.anim.spawnTicks)
}

func (v *spriteVisual) AnimateTo(pos Position) *Signal {
	from := v.sprite.to
	sig := v.anim.start(v.sprite, AnimSlide, v.anim.slideTicks)
	v.sprite.from, v.sprite.to = from, pos
	if v.sprite.kind == AnimNone {
		v.sprite.from = pos
	}
	return sig
}

func (v *spriteVisual) AnimateMerge(value int) *Signal {
	v.sprite.value = value
	return v.anim.start(v.sprite, AnimMerge, v.anim.mergeTicks)
}

func (v *spriteVisual) Remove() {
	v.anim.finish(v.sprite)
	delete(v.anim.sprites, v.sprite.id)
}

// easeOutQuad provides smooth deceleration for animation.
func easeOutQuad(t float64) float64 {
	return t * (2 - t)
}

// interpolatePosition calculates the current position during a slide.
func interpolatePosition(from, to Position, progress float64) (row, col float64) {
	t := easeOutQuad(progress)
	row = float64(from.Row) + (float64(to.Row)-float64(from.Row))*t
	col = float64(from.Col) + (float64(to.Col)-float64(from.Col))*t
	return row, col
}
