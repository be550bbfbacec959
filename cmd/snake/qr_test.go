package main

import (
	"strings"
	"testing"
)

func TestConnectCommand(t *testing.T) {
	tests := []struct {
		addr, host string
		expected   string
		wantErr    bool
	}{
		{":23234", "arcade.example.com", "ssh -p 23234 arcade.example.com", false},
		{"0.0.0.0:2222", "10.0.0.5", "ssh -p 2222 10.0.0.5", false},
		{":22", "box", "ssh box", false},
		{"no-port", "box", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.addr, func(t *testing.T) {
			got, err := connectCommand(tc.addr, tc.host)
			if (err != nil) != tc.wantErr {
				t.Fatalf("connectCommand() error = %v, wantErr %v", err, tc.wantErr)
			}
			if got != tc.expected {
				t.Errorf("connectCommand() = %q, expected %q", got, tc.expected)
			}
		})
	}
}

func TestRenderQR(t *testing.T) {
	out, err := renderQR("ssh -p 23234 localhost")
	if err != nil {
		t.Fatalf("renderQR() failed: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) < 10 {
		t.Fatalf("QR code has %d lines, expected a full symbol", len(lines))
	}
	width := len([]rune(lines[0]))
	for i, line := range lines {
		if n := len([]rune(line)); n != width {
			t.Errorf("line %d has width %d, expected %d", i, n, width)
		}
	}
	if !strings.ContainsAny(out, "█▀▄") {
		t.Error("QR code has no dark modules")
	}
}
