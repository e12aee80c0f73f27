// Package command encodes and decodes the callback tokens carried by inline
// buttons. A token is "action:payload"; the payload may itself contain
// colons, so only the first one separates.
package command

import (
	"strings"

	"gipnoze/shared/failure"
)

type Action string

const (
	ActionTime        Action = "time"
	ActionZone        Action = "zone"
	ActionConfirm     Action = "confirm"
	ActionReject      Action = "reject"
	ActionForceCancel Action = "force_cancel"
	ActionCancel      Action = "cancel"
	ActionRate        Action = "rate"
	ActionSaved       Action = "saved"
	ActionSaveContact Action = "save_contact"
)

var knownActions = map[Action]struct{}{
	ActionTime:        {},
	ActionZone:        {},
	ActionConfirm:     {},
	ActionReject:      {},
	ActionForceCancel: {},
	ActionCancel:      {},
	ActionRate:        {},
	ActionSaved:       {},
	ActionSaveContact: {},
}

// IsModeration reports whether the action is an admin-side transition.
func (a Action) IsModeration() bool {
	return a == ActionConfirm || a == ActionReject || a == ActionForceCancel
}

type Command struct {
	Action  Action
	Payload string
}

// Encode builds the token placed in a button's callback data.
func Encode(action Action, payload string) string {
	return string(action) + ":" + payload
}

// Parse decodes a token. Unknown actions and missing payloads fail: tokens
// only ever come from buttons this process rendered, so anything else is
// noise and must not reach a handler.
func Parse(token string) (Command, error) {
	action, payload, found := strings.Cut(token, ":")
	if !found || payload == "" {
		return Command{}, failure.BadRequestFromString("malformed callback token")
	}

	cmd := Command{Action: Action(action), Payload: payload}
	if _, ok := knownActions[cmd.Action]; !ok {
		return Command{}, failure.BadRequestFromString("unknown callback action")
	}

	return cmd, nil
}
