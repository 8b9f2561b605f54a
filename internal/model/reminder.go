package model

import (
	"strings"
	"time"

	"github.com/nhle/todo-api/internal/apperr"
)

// NotifyMethod is the delivery channel for a reminder.
type NotifyMethod string

// Notification method constants.
const (
	NotifyEmail NotifyMethod = "email"
	NotifyPush  NotifyMethod = "push"
	NotifySMS   NotifyMethod = "sms"
)

// ParseNotifyMethod matches value case-insensitively against the known
// notification methods.
func ParseNotifyMethod(value string) (NotifyMethod, error) {
	switch strings.ToLower(value) {
	case "email":
		return NotifyEmail, nil
	case "push":
		return NotifyPush, nil
	case "sms":
		return NotifySMS, nil
	default:
		return "", apperr.InvalidArgument("Invalid notification method: %s", value)
	}
}

// Reminder schedules a notification for a todo. TodoID must reference an
// existing todo at creation time; deleting the todo afterwards leaves the
// reminder in place.
type Reminder struct {
	ID           string       `json:"id" db:"id"`
	TodoID       string       `json:"todo_id" db:"todo_id"`
	Time         time.Time    `json:"time" db:"time"`
	NotifyMethod NotifyMethod `json:"notify_method" db:"notify_method"`
}
