package gpupower

import (
	"bytes"
	"fmt"
	"net"
	"strconv"
	"strings"
)

// wolPort is the conventional UDP port for Wake-on-LAN magic packets.
const wolPort = 9

// sendMagicPacket broadcasts a standard Wake-on-LAN magic packet (6 bytes of
// 0xFF followed by the target MAC repeated 16 times) to broadcastAddr:9
// with a direct UDP write; the packet format needs no library.
func sendMagicPacket(mac, broadcastAddr string) error {
	payload, err := buildMagicPacket(mac)
	if err != nil {
		return err
	}

	conn, err := net.Dial("udp", net.JoinHostPort(broadcastAddr, strconv.Itoa(wolPort)))
	if err != nil {
		return fmt.Errorf("dialing broadcast address: %w", err)
	}
	defer conn.Close()

	if _, err := conn.Write(payload); err != nil {
		return fmt.Errorf("sending magic packet: %w", err)
	}
	return nil
}

func buildMagicPacket(mac string) ([]byte, error) {
	addr, err := net.ParseMAC(mac)
	if err != nil {
		return nil, fmt.Errorf("invalid MAC address %q: %w", mac, err)
	}
	if len(addr) != 6 {
		return nil, fmt.Errorf("unsupported MAC address length for %q", mac)
	}

	var buf bytes.Buffer
	buf.Write(bytes.Repeat([]byte{0xFF}, 6))
	for i := 0; i < 16; i++ {
		buf.Write(addr)
	}
	return buf.Bytes(), nil
}

// normalizeMAC accepts either colon- or dash-separated MAC notation, since
// operators copy these from varying sources.
func normalizeMAC(mac string) string {
	return strings.ReplaceAll(mac, "-", ":")
}
