// Package numbering generates business document numbers in the
// PREFIX{YY}{MM}-{NNNN} format used on job travelers, invoices and quotes.
// The 4-digit suffix is random; callers must treat an insert conflict as a
// signal to regenerate.
package numbering

import (
	"fmt"
	"math/rand"
	"time"
)

const (
	JobPrefix     = "BW"
	InvoicePrefix = "INV"
	QuotePrefix   = "QT"
)

// Generate returns prefix + two-digit year + two-digit month + "-" + a
// zero-padded random 4-digit suffix, e.g. "BW2608-3847".
func Generate(prefix string, now time.Time) string {
	return fmt.Sprintf("%s%02d%02d-%04d", prefix, now.Year()%100, int(now.Month()), rand.Intn(10000))
}

func JobNumber(now time.Time) string {
	return Generate(JobPrefix, now)
}

func InvoiceNumber(now time.Time) string {
	return Generate(InvoicePrefix, now)
}

func QuoteNumber(now time.Time) string {
	return Generate(QuotePrefix, now)
}
