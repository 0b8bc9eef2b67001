package orders

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// GenerateTrackingID builds the human-shareable order identifier. The order
// number keeps it readable; the random suffix keeps it unguessable.
// Format: SAV-<order number>-<4 hex chars>.
func GenerateTrackingID(orderNumber int64) string {
	buf := make([]byte, 2)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand only fails when the OS entropy source is broken;
		// the order number alone still guarantees uniqueness.
		return fmt.Sprintf("SAV-%d-0000", orderNumber)
	}
	return fmt.Sprintf("SAV-%d-%s", orderNumber, hex.EncodeToString(buf))
}
