package sim

import "github.com/golangdaddy/roadrash/pkg/road"

// Fixed gameplay numbers.
const (
	StartHealth      = 100
	CrashDamage      = 10
	CrashSpeed       = 200.0 // speed after hitting an obstacle
	BumpDistance     = 50.0  // world units pushed back on a crash
	TrashBonus       = 500
	SpeedScorePer    = 100.0 // one passive point per this much speed
	TurnRate         = 3.0
	MaxOffset        = 3.0 // lateral clamp, wider than the ±1 road edge
	HardTurnOffset   = 1.5 // beyond this the bike leans hard
	WalkPeriod       = 500.0
	WalkAmplitude    = 0.02
	SkyDriftFactor   = 0.01
	DefaultFPS       = 60
	DefaultCamHeight = 1000.0
)

// Tuning holds the speed model for one session. Rates are per second.
type Tuning struct {
	MaxSpeed     float64
	Accel        float64
	Breaking     float64
	Decel        float64
	OffRoadDecel float64
	OffRoadLimit float64
	CameraHeight float64
}

// DefaultTuning derives the speed model from the fixed step length: top
// speed covers one segment per step.
func DefaultTuning(step, cameraHeight float64) Tuning {
	maxSpeed := road.SegmentLength / step
	return Tuning{
		MaxSpeed:     maxSpeed,
		Accel:        maxSpeed / 5,
		Breaking:     -maxSpeed,
		Decel:        -maxSpeed / 5,
		OffRoadDecel: -maxSpeed / 2,
		OffRoadLimit: maxSpeed / 4,
		CameraHeight: cameraHeight,
	}
}
