// internal/repository/postgres/errors.go
package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"localscoop/internal/util"
)

// SQLSTATE condition names we classify; see https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	uniqueViolation     = "unique_violation"
	foreignKeyViolation = "foreign_key_violation"
)

// dbError wraps err with context. Constraint violations are additionally
// marked with the matching util sentinel; the driver error stays in the chain.
func dbError(err error, format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code.Name() {
		case uniqueViolation:
			return fmt.Errorf("%s: %w: %w", msg, util.ErrDuplicateEntry, err)
		case foreignKeyViolation:
			return fmt.Errorf("%s: %w: %w", msg, util.ErrInvalidInput, err)
		}
	}
	return fmt.Errorf("%s: %w", msg, err)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern that matches term as a literal substring.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}
