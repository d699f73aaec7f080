package utils

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ==================== UUID ====================

func GenerateUUID() uuid.UUID {
	return uuid.New()
}

func ParseUUID(uuidStr string) (uuid.UUID, error) {
	return uuid.Parse(uuidStr)
}

// ==================== RUN ID ====================

// GenerateRunLabel returns a human readable label for an allocation run.
// Format: ALLOC-YYYYMMDD-HHMMSS-<first 8 chars of id>
func GenerateRunLabel(id uuid.UUID, now time.Time) string {
	return fmt.Sprintf("ALLOC-%s-%s-%s", now.Format("20060102"), now.Format("150405"), id.String()[:8])
}
