// Package identifier generates the externally visible business identifiers.
// Their formats are part of the external contract: downstream systems parse
// and display them verbatim.
package identifier

import (
	"fmt"
	"math/rand"
	"regexp"
	"time"
)

// ApplicationIDPattern matches externally visible application ids.
var ApplicationIDPattern = regexp.MustCompile(`^(MAR|ATR)_\d{4}_\d{6}$`)

// TransactionIDPattern matches DBT transaction ids.
var TransactionIDPattern = regexp.MustCompile(`^TXN_DBT_\d+_\d{1,3}$`)

// NewApplicationID builds an id of the form {PREFIX}_{year}_{6-digit-random}.
// Uniqueness is enforced by the store; collisions surface as duplicates there.
func NewApplicationID(prefix string, now time.Time) string {
	return fmt.Sprintf("%s_%d_%06d", prefix, now.Year(), rand.Intn(1000000))
}

// NewTransactionID builds an id of the form TXN_DBT_{epoch-ms}_{0-999}.
func NewTransactionID(now time.Time) string {
	return fmt.Sprintf("TXN_DBT_%d_%d", now.UnixMilli(), rand.Intn(1000))
}
