package handler

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/amaumene/appredirect/internal/domain"
	"github.com/amaumene/appredirect/internal/service"
	log "github.com/sirupsen/logrus"
)

const (
	appNameParam = "app_name"

	missingAppNameMessage = "Please provide an app_name in the query string."
	configErrorMessage    = "Service configuration error"
	internalErrorMessage  = "Internal server error"
	notFoundFormat        = "App '%s' not found or environment not supported."
	statsLineFormat       = "App: %s, Environment: %s, Count: %d, LastSeen: %s\n"
)

type HTTPHandler struct {
	source domain.MappingSource
	hits   domain.HitRepository
}

func NewHTTPHandler(source domain.MappingSource, hits domain.HitRepository) *HTTPHandler {
	return &HTTPHandler{
		source: source,
		hits:   hits,
	}
}

func (h *HTTPHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/redirect", h.handleRedirect)
	mux.HandleFunc("/stats", h.handleStats)
	mux.HandleFunc("/health", h.handleHealth)
}

func (h *HTTPHandler) handleRedirect(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := newRequestID()

	defer func() {
		log.WithFields(log.Fields{
			"request_id": requestID,
			"duration":   time.Since(start),
		}).Info("request completed")
	}()
	defer func() {
		if rec := recover(); rec != nil {
			log.WithFields(log.Fields{
				"request_id": requestID,
				"panic":      rec,
			}).Error("unexpected failure handling redirect")
			http.Error(w, internalErrorMessage, http.StatusInternalServerError)
		}
	}()

	// Configuration is checked before the identifier, matching the
	// historical handler ordering.
	cfg, err := h.source.Load()
	if err != nil {
		log.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err,
		}).Error("configuration load failed")
		http.Error(w, configErrorMessage, http.StatusInternalServerError)
		return
	}

	rawIdentifier := r.URL.Query().Get(appNameParam)
	if rawIdentifier == "" {
		http.Error(w, missingAppNameMessage, http.StatusBadRequest)
		return
	}

	mapping, err := service.Resolve(rawIdentifier, cfg)
	if err != nil {
		if domain.IsNotFound(err) {
			log.WithFields(log.Fields{
				"request_id": requestID,
				"identifier": rawIdentifier,
				"error":      err,
			}).Warn("identifier not resolvable")
			http.Error(w, fmt.Sprintf(notFoundFormat, rawIdentifier), http.StatusNotFound)
			return
		}
		log.WithFields(log.Fields{
			"request_id": requestID,
			"identifier": rawIdentifier,
			"error":      err,
		}).Error("failed to resolve identifier")
		http.Error(w, internalErrorMessage, http.StatusInternalServerError)
		return
	}

	redirectURL := service.BuildRedirectURL(mapping.EnvironmentGUID, mapping.AppGUID, cfg.IsGov, extraParams(r.URL.RawQuery))

	h.recordHit(r.Context(), mapping)

	log.WithFields(log.Fields{
		"request_id":  requestID,
		"app":         mapping.AppName,
		"environment": mapping.Environment,
		"location":    redirectURL,
	}).Info("redirecting")

	w.Header().Set("Location", redirectURL)
	w.WriteHeader(http.StatusFound)
}

func (h *HTTPHandler) recordHit(ctx context.Context, mapping *domain.ResolvedMapping) {
	if h.hits == nil {
		return
	}
	if err := h.hits.Record(ctx, mapping.AppName, mapping.Environment); err != nil {
		log.WithFields(log.Fields{
			"app":         mapping.AppName,
			"environment": mapping.Environment,
			"error":       err,
		}).Error("failed to record redirect hit")
	}
}

func (h *HTTPHandler) handleStats(w http.ResponseWriter, r *http.Request) {
	if h.hits == nil {
		w.WriteHeader(http.StatusOK)
		return
	}

	summaries, err := h.hits.Summaries(r.Context())
	if err != nil {
		log.WithField("error", err).Error("failed to retrieve redirect counters")
		http.Error(w, internalErrorMessage, http.StatusInternalServerError)
		return
	}

	response := formatSummaries(summaries)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(response)); err != nil {
		log.WithField("error", err).Error("failed to write stats response")
	}
}

func formatSummaries(summaries []domain.HitSummary) string {
	var builder strings.Builder
	for _, s := range summaries {
		builder.WriteString(fmt.Sprintf(statsLineFormat, s.AppName, s.Environment, s.Count, s.LastSeen.Format(time.RFC3339)))
	}
	return builder.String()
}

func (h *HTTPHandler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// newRequestID builds the correlation id logged with every request:
// unix timestamp plus a short random suffix.
func newRequestID() string {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return strconv.FormatInt(time.Now().Unix(), 10)
	}
	return fmt.Sprintf("%d-%s", time.Now().Unix(), hex.EncodeToString(buf))
}
