package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE de PostgreSQL para violación de índice único.
const codigoUniqueViolation = "23505"

// isUniqueViolation indica si err proviene de un índice único: email, RFC o
// teléfono en usuarios; nombre en productos y laboratorios. Los repos lo
// traducen a domain.ErrDuplicate. El fallback por texto cubre errores ya
// envueltos donde el *pgconn.PgError se perdió en la cadena.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == codigoUniqueViolation
	}
	return err != nil && strings.Contains(err.Error(), codigoUniqueViolation)
}
