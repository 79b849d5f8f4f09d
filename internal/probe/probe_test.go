package probe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLatency(t *testing.T) {
	cases := []struct {
		name   string
		out    string
		wantMS float64
		wantOK bool
	}{
		{
			name:   "linux reply",
			out:    "64 bytes from 8.8.8.8: icmp_seq=1 ttl=117 time=23.4 ms",
			wantMS: 23.4,
			wantOK: true,
		},
		{
			name:   "windows reply",
			out:    "Reply from 8.8.8.8: bytes=32 time=23ms TTL=117",
			wantMS: 23,
			wantOK: true,
		},
		{
			name:   "windows sub-millisecond reply",
			out:    "Reply from 192.168.1.1: bytes=32 time<1ms TTL=64",
			wantMS: 1,
			wantOK: true,
		},
		{
			name:   "no reply",
			out:    "PING 10.0.0.1 (10.0.0.1) 56(84) bytes of data.\n\n--- 10.0.0.1 ping statistics ---\n1 packets transmitted, 0 received, 100% packet loss, time 0ms",
			wantOK: false,
		},
		{
			name:   "reply without parsable time",
			out:    "64 bytes from 8.8.8.8: ttl=117",
			wantOK: false,
		},
		{
			name:   "empty output",
			out:    "",
			wantOK: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ms, ok := ParseLatency(tc.out)
			assert.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				assert.InDelta(t, tc.wantMS, ms, 1e-9)
			}
		})
	}
}
