package monitor

import "github.com/thelolagemann/lr35902/internal/cpu"

// Snapshot is a copy of the CPU registers taken between two instructions.
type Snapshot struct {
	PC     uint16 `json:"pc"`
	SP     uint16 `json:"sp"`
	AF     uint16 `json:"af"`
	BC     uint16 `json:"bc"`
	DE     uint16 `json:"de"`
	HL     uint16 `json:"hl"`
	IME    bool   `json:"ime"`
	Halted bool   `json:"halted"`
	Steps  uint64 `json:"steps"`
}

// SnapshotOf copies the registers out of c.
func SnapshotOf(c *cpu.CPU, steps uint64) Snapshot {
	return Snapshot{
		PC:     c.PC,
		SP:     c.SP,
		AF:     c.AF.Uint16(),
		BC:     c.BC.Uint16(),
		DE:     c.DE.Uint16(),
		HL:     c.HL.Uint16(),
		IME:    c.InterruptsEnabled(),
		Halted: c.Halted(),
		Steps:  steps,
	}
}

// ClientInfo describes a connected client.
type ClientInfo struct {
	ID         uint32 `json:"id"`
	RemoteAddr string `json:"remoteAddr"`
	UserAgent  string `json:"userAgent"`
	// LatencyMicros is a moving average of the TCP round trip time, zero
	// where the platform does not report it.
	LatencyMicros uint32 `json:"latencyMicros"`
}

// Message is the JSON envelope of everything sent to clients.
type Message struct {
	Type     string       `json:"type"`
	Snapshot *Snapshot    `json:"snapshot,omitempty"`
	Clients  []ClientInfo `json:"clients,omitempty"`
}

const (
	TypeSnapshot = "snapshot"
	TypeClients  = "clients"
)
