package payment

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jaguilar/cobranza-sync/consts"
)

const idDigestLen = 12

// GeneratePaymentID derives a stable identifier from the payment's capture
// tuple. The same (credit, timestamp, user, amount) always yields the same
// ID, so a re-submission after a crash dedups against the stored copy. The
// raw credit number and timestamp stay visible in the ID for traceability.
//
// When the tuple is unusable the fallback strategy synthesizes an ID from
// the current epoch millis and the credit number; it can collide for two
// captures of the same credit within one millisecond, so callers record
// which strategy produced the ID.
func GeneratePaymentID(creditNumber string, captured time.Time, userID string, amount decimal.Decimal) (string, string) {
	if creditNumber == "" || captured.IsZero() {
		return FallbackPaymentID(creditNumber), consts.IDStrategyFallback
	}

	canonical := strings.Join([]string{
		creditNumber,
		captured.UTC().Format(time.RFC3339),
		userID,
		amount.String(),
	}, "|")

	digest := sha256.Sum256([]byte(canonical))
	short := hex.EncodeToString(digest[:])[:idDigestLen]

	id := fmt.Sprintf("%s_%s_%s", creditNumber, captured.UTC().Format("20060102150405"), short)
	return id, consts.IDStrategyHash
}

// FallbackPaymentID is the degraded generation path, weaker than the hash
// strategy and never used when the capture tuple is complete.
func FallbackPaymentID(creditNumber string) string {
	return fmt.Sprintf("%d_%s", time.Now().UnixNano()/int64(time.Millisecond), creditNumber)
}
