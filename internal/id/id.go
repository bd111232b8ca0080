package id

import (
	"fmt"
	"strconv"
	"strings"

	"cloud.google.com/go/civil"

	"github.com/gicledger/ledger/internal/calendar"
)

// FormatTxnID returns a transaction ID like "20230601-01". Sequences above 99
// keep their natural width ("20230601-100").
func FormatTxnID(date civil.Date, seq int) string {
	return fmt.Sprintf("%s-%02d", calendar.FormatDay(date), seq)
}

// ParseTxnID parses "20230601-01" into its day and 1-based sequence.
func ParseTxnID(id string) (civil.Date, int, error) {
	day, seqPart, ok := strings.Cut(id, "-")
	if !ok {
		return civil.Date{}, 0, fmt.Errorf("invalid transaction ID format: %q", id)
	}

	date, err := calendar.ParseDay(day)
	if err != nil {
		return civil.Date{}, 0, fmt.Errorf("invalid date in transaction ID %q: %w", id, err)
	}

	if len(seqPart) < 2 {
		return civil.Date{}, 0, fmt.Errorf("sequence in transaction ID %q must have at least 2 digits", id)
	}
	seq, err := strconv.Atoi(seqPart)
	if err != nil {
		return civil.Date{}, 0, fmt.Errorf("invalid sequence in transaction ID %q: %w", id, err)
	}
	if seq < 1 {
		return civil.Date{}, 0, fmt.Errorf("sequence in transaction ID %q must be positive", id)
	}

	return date, seq, nil
}
