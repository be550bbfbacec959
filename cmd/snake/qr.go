package main

import (
	"fmt"
	"net"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

// connectCommand returns the ssh command players run to reach a server
// listening on addr, as seen from host.
func connectCommand(addr, host string) (string, error) {
	_, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "", fmt.Errorf("invalid address %q: %w", addr, err)
	}
	if port == "" || port == "22" {
		return "ssh " + host, nil
	}
	return fmt.Sprintf("ssh -p %s %s", port, host), nil
}

// renderQR draws data as a QR code using half-block characters, two
// modules per character row.
func renderQR(data string) (string, error) {
	qr, err := qrcode.New(data, qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("cannot encode QR code: %w", err)
	}

	bits := qr.Bitmap()
	var sb strings.Builder
	for y := 0; y < len(bits); y += 2 {
		for x := range bits[y] {
			top := bits[y][x]
			bottom := y+1 < len(bits) && bits[y+1][x]
			switch {
			case top && bottom:
				sb.WriteRune('█')
			case top:
				sb.WriteRune('▀')
			case bottom:
				sb.WriteRune('▄')
			default:
				sb.WriteRune(' ')
			}
		}
		sb.WriteRune('\n')
	}
	return sb.String(), nil
}
