package sandbox

import "sandgrid/internal/core"

// Kind identifies the species of a particle. The zero value marks an empty
// cell.
type Kind uint8

const (
	Empty Kind = iota
	Sand
	WetSand
	Water
	Acid
	Iridium
	Replicator
	Plant
	Cryotheum
	Unstable
	Electricity
	Glass

	kindCount
)

var kindNames = [kindCount]string{
	"empty", "sand", "wet sand", "water", "acid", "iridium",
	"replicator", "plant", "cryotheum", "unstable", "electricity", "glass",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Particle is one occupied cell. Temperature is unbounded during the
// simulation and only clamped when read for rendering. Extra1 and Extra2 are
// owned and interpreted by the behavior set; the core never reads them
// except where dispatch itself depends on them (Plant growth flag). The
// generation stamp is owned by the update pipeline.
type Particle struct {
	Kind        Kind
	Temperature int16
	Extra1      int8
	Extra2      int8

	stamp uint8
}

// spawn temperatures per kind; everything not listed starts at zero.
var spawnTemperature = [kindCount]int16{
	WetSand:   -5,
	Water:     -10,
	Cryotheum: -60,
}

// NewParticle returns a particle of kind k with its creation defaults.
// The RNG seeds kind-specific extra data (only Plant uses it).
func NewParticle(k Kind, rng *core.RNG) Particle {
	p := Particle{Kind: k, Temperature: spawnTemperature[k]}
	if k == Plant {
		p.Extra1 = int8(rng.Range(5, 21))
	}
	return p
}

// conductivity is the thermal-conductivity table. A higher value means
// slower heat transfer for that kind paired with any neighbor. Every entry
// must stay above 1: the diffusion divisor is the sum of two entries.
var conductivity = [kindCount]int16{
	Sand:        3,
	WetSand:     4,
	Water:       5,
	Acid:        2,
	Iridium:     8,
	Replicator:  3,
	Plant:       3,
	Cryotheum:   2,
	Unstable:    2,
	Electricity: 2,
	Glass:       3,
}

// Conductivity reports the thermal conductivity of kind k.
func Conductivity(k Kind) int16 {
	return conductivity[k]
}
