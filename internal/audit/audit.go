package audit

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/mrlokans/glossary/internal/entities"
)

// Session is the JSON document written for one run of the glossary editor.
type Session struct {
	ID        string                `json:"id"`
	StartedAt time.Time             `json:"started_at"`
	Events    []entities.AuditEvent `json:"events"`
}

// Auditor collects glossary changes made during a session and writes them to
// <AuditDir>/<session id>.json on Flush.
type Auditor struct {
	AuditDir  string
	SessionID uuid.UUID
	startedAt time.Time
	events    []entities.AuditEvent
}

func NewAuditor(auditDir string) *Auditor {
	return &Auditor{
		AuditDir:  auditDir,
		SessionID: uuid.New(),
		startedAt: time.Now(),
	}
}

// Record appends an event to the session.
func (a *Auditor) Record(event entities.AuditEvent) {
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}
	if event.Status == "" {
		event.Status = entities.AuditStatusSuccess
	}
	a.events = append(a.events, event)
}

// RecordChange records a mutation; changed=false is recorded as a no-op.
func (a *Auditor) RecordChange(eventType entities.AuditEventType, word, pos, description string, changed bool) {
	status := entities.AuditStatusSuccess
	if !changed {
		status = entities.AuditStatusNoop
	}
	a.Record(entities.AuditEvent{
		EventType:    eventType,
		Word:         word,
		PartOfSpeech: pos,
		Description:  description,
		Status:       status,
	})
}

// RecordResult records an operation that either succeeded or failed with err.
func (a *Auditor) RecordResult(eventType entities.AuditEventType, description string, err error) {
	event := entities.AuditEvent{
		EventType:   eventType,
		Description: description,
		Status:      entities.AuditStatusSuccess,
	}
	if err != nil {
		event.Status = entities.AuditStatusFailed
		event.ErrorMsg = truncate(err.Error(), 500)
	}
	a.Record(event)
}

// Events returns a copy of the events recorded so far.
func (a *Auditor) Events() []entities.AuditEvent {
	events := make([]entities.AuditEvent, len(a.events))
	copy(events, a.events)
	return events
}

// Flush writes the whole session to disk, replacing any earlier flush of the
// same session, and returns the file name.
func (a *Auditor) Flush() (string, error) {
	if err := a.ensureAuditDir(); err != nil {
		return "", fmt.Errorf("failed to ensure audit directory: %w", err)
	}

	filename := fmt.Sprintf("%s.json", a.SessionID.String())
	path := filepath.Join(a.AuditDir, filename)

	session := Session{
		ID:        a.SessionID.String(),
		StartedAt: a.startedAt,
		Events:    a.Events(),
	}

	jsonData, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal audit session: %w", err)
	}

	if err := os.WriteFile(path, jsonData, 0644); err != nil {
		return "", fmt.Errorf("failed to write audit file: %w", err)
	}

	log.Printf("Saved audit file: %s (%d events)", path, len(session.Events))
	return filename, nil
}

// ensureAuditDir creates the audit directory if it doesn't exist
func (a *Auditor) ensureAuditDir() error {
	if _, err := os.Stat(a.AuditDir); os.IsNotExist(err) {
		if err := os.MkdirAll(a.AuditDir, 0755); err != nil {
			return fmt.Errorf("failed to create audit directory: %w", err)
		}
	}
	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
