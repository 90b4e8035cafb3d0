package doris

import "fmt"

// formatHeaderLine pads content to the 60 character DORIS header field
// width and appends the 20 character label, matching the fixed 80 column
// header line layout.
func formatHeaderLine(content, label string) string {
	return fmt.Sprintf("%-60.60s%-20.20s", content, label)
}
