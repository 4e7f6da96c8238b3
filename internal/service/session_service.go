package service

import (
	"fmt"
	"log"
	"strings"

	"github.com/agroview/groundtruth-backend-go/internal/config"
	"github.com/agroview/groundtruth-backend-go/internal/ingest"
	"github.com/agroview/groundtruth-backend-go/internal/metrics"
	"github.com/agroview/groundtruth-backend-go/internal/middleware"
	"github.com/agroview/groundtruth-backend-go/internal/models"
	"github.com/agroview/groundtruth-backend-go/internal/session"
	"github.com/agroview/groundtruth-backend-go/internal/store"
)

// SessionService handles session lifecycle and the operations that
// cross package boundaries: ingestion, validation dispatch, export.
type SessionService struct {
	manager *session.Manager
	cfg     *config.Config
}

// NewSessionService creates a new session service.
func NewSessionService(manager *session.Manager, cfg *config.Config) *SessionService {
	return &SessionService{manager: manager, cfg: cfg}
}

// Manager exposes the underlying session manager for middleware wiring.
func (s *SessionService) Manager() *session.Manager {
	return s.manager
}

// Create registers a new session and mints its bearer token.
func (s *SessionService) Create() (string, string, error) {
	sess := s.manager.Create()
	token, err := middleware.SignSessionToken(s.cfg.JWTSecret, sess.ID, s.cfg.SessionTTL)
	if err != nil {
		s.manager.Delete(sess.ID)
		return "", "", fmt.Errorf("failed to sign session token: %w", err)
	}
	metrics.SessionsCreatedTotal.Inc()
	return sess.ID, token, nil
}

// Delete discards a session.
func (s *SessionService) Delete(id string) {
	s.manager.Delete(id)
}

// Load parses an upload, builds a deduplicated store and installs it
// on the session. On any failure the session keeps its previous store,
// view and cursor untouched.
func (s *SessionService) Load(sess *session.Session, files []ingest.RawUpload) (models.LoadResult, error) {
	records, err := ingest.Load(files)
	if err != nil {
		metrics.LoadFailuresTotal.Inc()
		return models.LoadResult{}, err
	}

	st, removed, err := store.New(records)
	if err != nil {
		metrics.LoadFailuresTotal.Inc()
		return models.LoadResult{}, &ingest.LoadError{Reason: "invalid source data", Err: err}
	}

	result := sess.InstallStore(st, removed)
	metrics.LoadsTotal.Inc()
	metrics.DuplicatesRemovedTotal.Add(float64(removed))
	log.Printf("session %s loaded %d points (%d duplicates removed)", sess.ID, result.TotalPoints, removed)
	return result, nil
}

// Validate dispatches a validation request to the right session
// operation based on its target.
func (s *SessionService) Validate(sess *session.Session, req models.ValidateRequest) (models.ValidateResult, error) {
	status, err := parseRequestStatus(req.Status)
	if err != nil {
		return models.ValidateResult{}, err
	}

	var result models.ValidateResult
	switch req.Target {
	case models.TargetCurrent:
		result, err = sess.ValidateCurrent(status)
	case models.TargetByID:
		result, err = sess.ValidateByID(req.SerialID, status)
	case models.TargetBulk:
		result, err = sess.ValidateBulk(req.SerialIDs, status)
	default:
		return models.ValidateResult{}, fmt.Errorf("unknown validation target %q", req.Target)
	}
	if err != nil {
		return models.ValidateResult{}, err
	}

	metrics.ValidationsTotal.WithLabelValues(string(status)).Add(float64(result.Count))
	return result, nil
}

// Export snapshots the session's store for CSV writing.
func (s *SessionService) Export(sess *session.Session, category string) ([]models.ExportRow, error) {
	rows, err := sess.ExportRows(category)
	if err != nil {
		return nil, err
	}
	metrics.ExportsTotal.Inc()
	return rows, nil
}

// parseRequestStatus accepts only the two labels a user can apply.
func parseRequestStatus(raw string) (models.ValidationStatus, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "correct":
		return models.StatusCorrect, nil
	case "incorrect":
		return models.StatusIncorrect, nil
	default:
		return "", fmt.Errorf("status must be Correct or Incorrect, got %q", raw)
	}
}
