package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/todo-api/internal/apperr"
)

func TestParseStatus(t *testing.T) {
	cases := []struct {
		input string
		want  Status
	}{
		{"pending", StatusPending},
		{"PENDING", StatusPending},
		{"Pending", StatusPending},
		{"in_progress", StatusInProgress},
		{"IN_PROGRESS", StatusInProgress},
		{"In_Progress", StatusInProgress},
		{"completed", StatusCompleted},
		{"COMPLETED", StatusCompleted},
		{"CoMpLeTeD", StatusCompleted},
	}
	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseStatus(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseStatusInvalid(t *testing.T) {
	for _, input := range []string{"", "done", "in progress", "pending ", "complete"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseStatus(input)
			require.Error(t, err)
			assert.Equal(t, apperr.KindInvalidArgument, apperr.KindOf(err))
			assert.Equal(t, "Invalid status: "+input, err.Error())
		})
	}
}

func TestParseNotifyMethod(t *testing.T) {
	cases := []struct {
		input string
		want  NotifyMethod
	}{
		{"email", NotifyEmail},
		{"EMAIL", NotifyEmail},
		{"push", NotifyPush},
		{"Push", NotifyPush},
		{"sms", NotifySMS},
		{"SMS", NotifySMS},
	}
	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseNotifyMethod(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseNotifyMethodInvalid(t *testing.T) {
	_, err := ParseNotifyMethod("pigeon")
	require.Error(t, err)
	assert.Equal(t, apperr.KindInvalidArgument, apperr.KindOf(err))
	assert.Equal(t, "Invalid notification method: pigeon", err.Error())
}
