package rest

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/account-service/internal/domain"
	"github.com/heartmarshall/account-service/internal/transport/pipeline"
	"github.com/heartmarshall/account-service/internal/transport/respond"
)

// run drives call through stages and writes the error response on failure.
// It reports whether every stage succeeded.
func run(w http.ResponseWriter, r *http.Request, log *slog.Logger, call *pipeline.Call, stages ...pipeline.Stage) bool {
	if err := pipeline.Run(r.Context(), call, stages...); err != nil {
		respond.Error(w, r, log, err)
		return false
	}
	return true
}

func accepted(w http.ResponseWriter) {
	respond.JSON(w, http.StatusAccepted, map[string]string{"status": "accepted"})
}

func parseUUID(field, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, domain.NewValidationError(field, "must be a UUID")
	}
	return id, nil
}
