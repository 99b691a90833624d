//go:build !linux

package monitor

import (
	"net"
	"time"
)

func connRTT(net.Conn) (time.Duration, error) {
	return 0, errNoRTT
}
