package chi

import (
	"net/http"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/kailas-cloud/ngcdex/internal/domain"
	"github.com/kailas-cloud/ngcdex/internal/logger"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error) bool

var errorHandlers = []errorHandler{
	sentinelHandler(domain.ErrFormat, http.StatusBadRequest, ErrorCodeFormat),
	sentinelHandler(domain.ErrUnknownCatalog, http.StatusBadRequest, ErrorCodeUnknownCatalog),
	sentinelHandler(domain.ErrInvalidCriteria, http.StatusBadRequest, ErrorCodeInvalidCriteria),
	sentinelHandler(domain.ErrNoCoordinates, http.StatusBadRequest, ErrorCodeNoCoordinates),
	sentinelHandler(domain.ErrObjectNotFound, http.StatusNotFound, ErrorCodeObjectNotFound),
	corruptCatalogHandler,
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
// Client errors carry the full message: it names the offending input.
func sentinelHandler(sentinel error, status int, code ErrorCode) errorHandler {
	return func(w http.ResponseWriter, err error) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeJSON(w, status, ErrorResponse{
			Code:    code,
			Message: err.Error(),
			Hint:    strings.ReplaceAll(errors.FlattenHints(err), "\n--\n", "; "),
		})
		return true
	}
}

// corruptCatalogHandler reports inconsistent stored data without its details.
func corruptCatalogHandler(w http.ResponseWriter, err error) bool {
	if !errors.Is(err, domain.ErrCorruptCatalog) {
		return false
	}
	writeError(w, http.StatusInternalServerError, ErrorCodeCorruptCatalog, domain.ErrCorruptCatalog.Error())
	return true
}

func handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())
	log.Warn("domain error", zap.Error(err))
	for _, h := range errorHandlers {
		if h(w, err) {
			return
		}
	}
	log.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, ErrorCodeInternal, "internal error")
}
