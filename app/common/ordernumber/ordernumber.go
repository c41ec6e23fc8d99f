package ordernumber

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const defaultPrefix = "ORD-"

// Generate returns a human-legible order number: a UTC timestamp plus a
// short random suffix. Uniqueness is the guarantee, not strict ordering
// across concurrent calls.
func Generate() string {
	return GenerateWithPrefix(defaultPrefix)
}

func GenerateWithPrefix(prefix string) string {
	timestamp := time.Now().UTC().Format("20060102150405")
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
	return fmt.Sprintf("%s%s-%s", prefix, timestamp, suffix)
}
