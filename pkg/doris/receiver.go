package doris

import (
	"fmt"
	"strings"
)

// Receiver describes the beacon receiver instrument at a ground station.
type Receiver struct {
	Model        string
	SerialNumber string
	Firmware     string
}

// ParseReceiver parses the "REC # / TYPE / VERS" content field: three
// consecutive 20 character columns for serial number, model and firmware.
func ParseReceiver(content string) (Receiver, error) {
	if len(content) < 60 {
		content = fmt.Sprintf("%-60s", content)
	}
	return Receiver{
		SerialNumber: strings.TrimSpace(content[0:20]),
		Model:        strings.TrimSpace(content[20:40]),
		Firmware:     strings.TrimSpace(content[40:60]),
	}, nil
}

// Format writes the "REC # / TYPE / VERS" header line describing r.
func (r Receiver) Format() string {
	return formatHeaderLine(
		fmt.Sprintf("%-20s%-20s%s", r.SerialNumber, r.Model, r.Firmware),
		"REC # / TYPE / VERS")
}
