package command_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gipnoze/internal/command"
	"gipnoze/shared/failure"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		want    command.Command
		wantErr bool
	}{
		{
			name:  "time slot keeps its colon",
			token: "time:17:30",
			want:  command.Command{Action: command.ActionTime, Payload: "17:30"},
		},
		{
			name:  "zone with spaces and parentheses",
			token: "zone:Кабінка 1 (5-10 чол.)",
			want:  command.Command{Action: command.ActionZone, Payload: "Кабінка 1 (5-10 чол.)"},
		},
		{
			name:  "moderation token",
			token: "confirm:3f1d9a2c-5b6e-4c7d-8e9f-0a1b2c3d4e5f",
			want:  command.Command{Action: command.ActionConfirm, Payload: "3f1d9a2c-5b6e-4c7d-8e9f-0a1b2c3d4e5f"},
		},
		{
			name:    "no separator",
			token:   "confirm",
			wantErr: true,
		},
		{
			name:    "empty payload",
			token:   "reject:",
			wantErr: true,
		},
		{
			name:    "unknown action",
			token:   "promote:abc",
			wantErr: true,
		},
		{
			name:    "empty token",
			token:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := command.Parse(tt.token)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, 400, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestEncodeParseRoundTrip(t *testing.T) {
	token := command.Encode(command.ActionForceCancel, "3f1d9a2c-5b6e-4c7d-8e9f-0a1b2c3d4e5f")

	cmd, err := command.Parse(token)

	assert.NoError(t, err)
	assert.Equal(t, command.ActionForceCancel, cmd.Action)
	assert.True(t, cmd.Action.IsModeration())
}
