package systems

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/decker502/antigravity/pkg/components"
	"github.com/decker502/antigravity/pkg/config"
	"github.com/decker502/antigravity/pkg/frame"
	"github.com/decker502/antigravity/pkg/utils"
)

// Vec3 and Transform are defined in components so renderers can read them
// without importing systems.
type (
	Vec3      = components.Vec3
	Transform = components.Transform
)

// Particle is one record of the field arena. Records are created once and
// only ever mutated in place by Step.
type Particle struct {
	Phase        float64 // drives wave, wobble and pulse
	AdvanceRate  float64 // phase increment per Step
	Home         Vec3    // rest position, fixed for the particle's lifetime
	Current      Vec3    // live position, only changed by interpolation
	RadiusJitter float64 // [-1, 1], scaled by FieldConfig.RadiusJitterMax
	BaseScale    float64
	Attracted    bool // orbiting the target ring
}

// TargetSource supplies the point the field is attracted to.
type TargetSource interface {
	Point() TargetPoint
}

const (
	// depthProjection is the camera distance used to foreshorten the target
	// for particles off the z = 0 plane.
	depthProjection = 50.0
	// ringFalloff is the distance from the ring over which particles shrink.
	ringFalloff     = 15.0
	minRingScale    = 0.1
	homeDepthSpread = 20.0
)

// ParticleField is the "antigravity" simulator: a fixed arena of particles
// that rest at random home positions and orbit the target on a ring when it
// comes within MagnetRadius of their home.
//
// Each particle is independent of every other one; Step is O(N) and reuses a
// single transform buffer, index-aligned with the arena.
type ParticleField struct {
	cfg      config.FieldConfig
	viewport utils.Viewport
	rng      *rand.Rand
	policy   RenderPolicy
	source   TargetSource

	particles  []Particle
	transforms []Transform
}

// NewParticleField creates the arena and seeds home positions across the
// viewport. A nil rng is replaced by one seeded from cfg.Seed (or the
// current time when Seed is 0).
func NewParticleField(cfg config.FieldConfig, vp utils.Viewport, rng *rand.Rand) *ParticleField {
	if rng == nil {
		seed := uint64(cfg.Seed)
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}

	count := max(cfg.Count, 0)
	pf := &ParticleField{
		cfg:        cfg,
		viewport:   vp,
		rng:        rng,
		particles:  make([]Particle, count),
		transforms: make([]Transform, count),
	}
	for i := range pf.particles {
		pf.particles[i] = pf.spawn()
	}

	log.Debug().Str("component", "ParticleField").Int("count", count).
		Float64("worldWidth", vp.WorldWidth).Float64("worldHeight", vp.WorldHeight).
		Msg("particle field created")
	return pf
}

func (pf *ParticleField) spawn() Particle {
	r := pf.rng
	home := Vec3{
		X: (r.Float64() - 0.5) * pf.viewport.WorldWidth,
		Y: (r.Float64() - 0.5) * pf.viewport.WorldHeight,
		Z: (r.Float64() - 0.5) * homeDepthSpread,
	}
	return Particle{
		Phase:        r.Float64() * 100,
		AdvanceRate:  (0.01 + r.Float64()/200) / 2,
		Home:         home,
		Current:      home,
		RadiusJitter: (r.Float64() - 0.5) * 2,
		BaseScale:    1 + (r.Float64()-0.5)*0.5*pf.cfg.ParticleVariance,
	}
}

// Reset re-seeds every home position for a new viewport. The arena keeps
// its size.
func (pf *ParticleField) Reset(vp utils.Viewport) {
	pf.viewport = vp
	for i := range pf.particles {
		pf.particles[i] = pf.spawn()
	}
}

// Follow sets the target source read by Advance.
func (pf *ParticleField) Follow(src TargetSource) {
	pf.source = src
}

// SetRenderPolicy switches reduced-motion handling on or off.
func (pf *ParticleField) SetRenderPolicy(p RenderPolicy) {
	pf.policy = p
}

// SetShape changes the render shape. The simulation does not depend on it.
func (pf *ParticleField) SetShape(k config.ShapeKind) {
	pf.cfg.Shape = k
}

// Config returns the field configuration.
func (pf *ParticleField) Config() config.FieldConfig {
	return pf.cfg
}

// Viewport returns the viewport homes were seeded for.
func (pf *ParticleField) Viewport() utils.Viewport {
	return pf.viewport
}

// Len returns the arena size.
func (pf *ParticleField) Len() int {
	return len(pf.particles)
}

// Particle returns a copy of particle i.
func (pf *ParticleField) Particle(i int) Particle {
	return pf.particles[i]
}

// PlaceParticle moves particle i's home (and current position) to home.
func (pf *ParticleField) PlaceParticle(i int, home Vec3) {
	p := &pf.particles[i]
	p.Home = home
	p.Current = home
	p.Attracted = false
}

// Transforms returns the buffer filled by the last Step.
func (pf *ParticleField) Transforms() []Transform {
	return pf.transforms
}

// Advance implements frame.Advancer, reading the target from the source
// set with Follow.
func (pf *ParticleField) Advance(s frame.Sample) {
	var target TargetPoint
	if pf.source != nil {
		target = pf.source.Point()
	}
	pf.Step(s.DeltaScale, s.ElapsedSeconds, target)
}

// Step advances every particle one frame and returns the transform buffer.
//
// deltaScale only affects position integration; elapsedSeconds is wall-clock
// time and drives the collective ring rotation and the per-particle tumble.
func (pf *ParticleField) Step(deltaScale, elapsedSeconds float64, target TargetPoint) []Transform {
	cfg := &pf.cfg
	reduced := pf.policy.ReducedMotion
	globalRotation := elapsedSeconds * cfg.RotationSpeed
	jitterMax := cfg.RadiusJitterMax()
	enter := cfg.MagnetRadius
	leave := cfg.MagnetRadius + cfg.MagnetHysteresis

	tumble := elapsedSeconds * cfg.TumbleSpeed
	if reduced {
		tumble = 0
	}

	for i := range pf.particles {
		p := &pf.particles[i]

		if !reduced {
			p.Phase += p.AdvanceRate
		}

		// Attraction is decided at the rest depth so the ring's own z wobble
		// cannot move the projected target across the boundary.
		restZ := p.Home.Z * cfg.DepthFactor
		restProjection := 1 - restZ/depthProjection
		hx := p.Home.X - target.X*restProjection
		hy := p.Home.Y - target.Y*restProjection
		dist := math.Sqrt(hx*hx + hy*hy)

		if p.Attracted {
			p.Attracted = dist < leave
		} else {
			p.Attracted = dist < enter
		}

		projection := 1 - p.Current.Z/depthProjection
		tx := target.X * projection
		ty := target.Y * projection
		dx := p.Home.X - tx
		dy := p.Home.Y - ty

		desired := Vec3{X: p.Home.X, Y: p.Home.Y, Z: restZ}
		if p.Attracted && !reduced {
			angle := math.Atan2(dy, dx) + globalRotation
			wave := math.Sin(p.Phase*cfg.WaveSpeed+angle) * (0.5 * cfg.WaveAmplitude)
			radius := cfg.RingRadius + wave + p.RadiusJitter*jitterMax
			desired.X = tx + radius*math.Cos(angle)
			desired.Y = ty + radius*math.Sin(angle)
			desired.Z += math.Sin(p.Phase) * cfg.WaveAmplitude * cfg.DepthFactor
		}

		if reduced {
			p.Current = desired
		} else {
			p.Current.X = utils.FrameLerp(p.Current.X, desired.X, cfg.FollowSpeed, deltaScale)
			p.Current.Y = utils.FrameLerp(p.Current.Y, desired.Y, cfg.FollowSpeed, deltaScale)
			p.Current.Z = utils.FrameLerp(p.Current.Z, desired.Z, cfg.FollowSpeed, deltaScale)
		}

		cx := p.Current.X - tx
		cy := p.Current.Y - ty
		look := math.Atan2(-cy, -cx)

		distFromRing := math.Abs(math.Hypot(cx, cy) - cfg.RingRadius)
		scale := utils.Clamp(1-distFromRing/ringFalloff, minRingScale, 1)
		pulse := 0.8
		if !reduced {
			pulse += math.Sin(p.Phase*cfg.PulseSpeed) * 0.2 * cfg.ParticleVariance
		}

		pf.transforms[i] = Transform{
			Position: p.Current,
			Rotation: Vec3{
				X: math.Pi/2 + tumble,
				Y: tumble * 0.7,
				Z: look + tumble*0.3,
			},
			Scale: scale * pulse * p.BaseScale * cfg.ParticleSize,
		}
	}

	return pf.transforms
}
