package entities

import "time"

type AuditEventType string

const (
	AuditEventAdd    AuditEventType = "add"
	AuditEventUpdate AuditEventType = "update"
	AuditEventDelete AuditEventType = "delete"
	AuditEventSave   AuditEventType = "save"
	AuditEventLoad   AuditEventType = "load"
)

type AuditStatus string

const (
	AuditStatusSuccess AuditStatus = "success"
	AuditStatusNoop    AuditStatus = "noop" // e.g. duplicate definition, nothing changed
	AuditStatusFailed  AuditStatus = "failed"
)

type AuditEvent struct {
	EventType    AuditEventType `json:"event_type"`
	Word         string         `json:"word,omitempty"`
	PartOfSpeech string         `json:"part_of_speech,omitempty"`
	Description  string         `json:"description"` // Human-readable summary
	Status       AuditStatus    `json:"status"`
	ErrorMsg     string         `json:"error_msg,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
}
