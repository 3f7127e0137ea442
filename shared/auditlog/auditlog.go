// Package auditlog records admin actions in the database. Entries are
// advisory: a failed write is reported to the caller but must never
// fail the action that produced it.
package auditlog

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Level represents the severity of an audit entry
type Level string

const (
	INFO  Level = "INFO"
	WARN  Level = "WARN"
	ERROR Level = "ERROR"
)

// Entry represents one recorded admin action
type Entry struct {
	ID        uint       `gorm:"primaryKey"`
	Timestamp *time.Time `gorm:"index"`
	Level     *Level     `gorm:"index"`
	Action    *string    `gorm:"index"`
	Message   *string
	Fields    *string // JSON string of fields
}

// TableName overrides the table name used by Entry
func (Entry) TableName() string {
	return "audit_logs"
}

// Logger writes audit entries through GORM
type Logger struct {
	db *gorm.DB
}

// New creates a new Logger instance
func New(db *gorm.DB) (*Logger, error) {
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, fmt.Errorf("failed to migrate audit log: %v", err)
	}
	return &Logger{db: db}, nil
}

func (l *Logger) record(level Level, action, message string, fields map[string]interface{}) error {
	var fieldsJSON *string
	if len(fields) > 0 {
		jsonStr, err := json.Marshal(fields)
		if err != nil {
			return fmt.Errorf("failed to marshal fields: %v", err)
		}
		strJSON := string(jsonStr)
		fieldsJSON = &strJSON
	}

	timestamp := time.Now()
	entry := Entry{
		Timestamp: &timestamp,
		Level:     &level,
		Action:    &action,
		Message:   &message,
		Fields:    fieldsJSON,
	}

	if err := l.db.Create(&entry).Error; err != nil {
		return fmt.Errorf("failed to insert audit entry: %v", err)
	}

	return nil
}

// Info records an informational admin action
func (l *Logger) Info(action, message string, fields map[string]interface{}) error {
	return l.record(INFO, action, message, fields)
}

// Warn records a suspicious or degraded admin action
func (l *Logger) Warn(action, message string, fields map[string]interface{}) error {
	return l.record(WARN, action, message, fields)
}

// Error records a failed admin action
func (l *Logger) Error(action, message string, fields map[string]interface{}) error {
	return l.record(ERROR, action, message, fields)
}
