// Package montage provides electrode position lookup for the international
// 10-20 system. It implements the channel-topology collaborator consumed by
// the pipeline; positions are metadata only and never feed back into
// decoding.
package montage

import "github.com/rickerevolte/eegsift/internal/domain"

// standard1020 holds schematic top-down 2D coordinates for the 10-20
// electrode set used by the reference device. Nose is +Y, right ear +X,
// unit circle at the head circumference.
var standard1020 = map[string]domain.SensorPosition{
	"Fp1": {X: -0.31, Y: 0.95},
	"Fp2": {X: 0.31, Y: 0.95},
	"F7":  {X: -0.81, Y: 0.59},
	"F3":  {X: -0.40, Y: 0.52},
	"Fz":  {X: 0.00, Y: 0.50},
	"F4":  {X: 0.40, Y: 0.52},
	"F8":  {X: 0.81, Y: 0.59},
	"T3":  {X: -1.00, Y: 0.00},
	"C3":  {X: -0.50, Y: 0.00},
	"Cz":  {X: 0.00, Y: 0.00},
	"C4":  {X: 0.50, Y: 0.00},
	"T4":  {X: 1.00, Y: 0.00},
	"T5":  {X: -0.81, Y: -0.59},
	"P3":  {X: -0.40, Y: -0.52},
	"Pz":  {X: 0.00, Y: -0.50},
	"P4":  {X: 0.40, Y: -0.52},
	"T6":  {X: 0.81, Y: -0.59},
	"O1":  {X: -0.31, Y: -0.95},
	"O2":  {X: 0.31, Y: -0.95},
}

// Standard1020 implements ports.MontageLookup for the 10-20 system.
type Standard1020 struct{}

// New returns the standard 10-20 montage.
func New() *Standard1020 {
	return &Standard1020{}
}

// Positions returns coordinates for every known channel name. Unknown
// names are left out rather than reported as errors; metadata is best
// effort.
func (*Standard1020) Positions(names []string) map[string]domain.SensorPosition {
	out := make(map[string]domain.SensorPosition, len(names))
	for _, name := range names {
		if pos, ok := standard1020[name]; ok {
			out[name] = pos
		}
	}
	return out
}
