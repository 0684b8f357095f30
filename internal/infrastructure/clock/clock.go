package clock

import (
	"time"

	"github.com/pedrogiampietro/smart-legal-contracts-now/internal/application/ports"
)

// System is the wall clock.
type System struct{}

func NewSystem() System { return System{} }

func (System) Now() time.Time { return time.Now() }

var _ ports.Clock = System{}
