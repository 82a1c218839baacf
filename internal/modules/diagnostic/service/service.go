package diagnostic

import (
	"context"
	"fmt"
	"time"

	"anoa.com/gamificationdemo/internal/config"
)

const (
	probeTimeout   = 5 * time.Second
	maxCollections = 10
	maxErrorChars  = 50
)

// Collaborator is the optional database capability the diagnostic probes.
// Absence (a nil Collaborator) is a normal, representable state, not an
// error path.
type Collaborator interface {
	Initialized() bool
	Name() string
	ListCollectionNames(ctx context.Context) ([]string, error)
}

// Report is the status object returned by the /test endpoint. Every failure
// mode is reported as data in these fields; the probe itself never fails.
type Report struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

type DiagnosticService interface {
	CheckDatabase(ctx context.Context) Report
}

type diagnosticService struct {
	cfg *config.Config
	db  Collaborator
}

// NewDiagnosticService wires the optional collaborator. Pass nil when no
// database module is configured.
func NewDiagnosticService(cfg *config.Config, db Collaborator) DiagnosticService {
	return &diagnosticService{cfg: cfg, db: db}
}

func (s *diagnosticService) CheckDatabase(ctx context.Context) Report {
	report := Report{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	switch {
	case s.db == nil:
		report.Database = "❌ Database module not found"

	case !s.db.Initialized():
		report.Database = "⚠️  Available but not initialized"

	default:
		report.Database = "✅ Available"
		report.ConnectionStatus = "Connected"

		probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
		defer cancel()

		collections, err := s.db.ListCollectionNames(probeCtx)
		if err != nil {
			report.Database = fmt.Sprintf("⚠️  Connected but Error: %s", truncate(err.Error(), maxErrorChars))
			break
		}

		if len(collections) > maxCollections {
			collections = collections[:maxCollections]
		}
		report.Collections = collections
		report.Database = "✅ Connected & Working"
	}

	// Env presence is reported independently of the collaborator state.
	report.DatabaseURL = setIndicator(s.cfg.DatabaseURL != "")
	report.DatabaseName = setIndicator(s.cfg.DatabaseName != "")

	return report
}

func setIndicator(set bool) string {
	if set {
		return "✅ Set"
	}
	return "❌ Not Set"
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
