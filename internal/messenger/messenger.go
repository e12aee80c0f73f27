// Package messenger is the seam between the dialog core and the chat
// transport. Handlers speak in these types only; the transport renders them
// into concrete chat API calls.
package messenger

//go:generate go run go.uber.org/mock/mockgen -source=./messenger.go -destination=./mocks/messenger_mock.go -package=mocks

import "context"

// Button is one inline key: the label the user sees and the token sent back
// when tapped.
type Button struct {
	Label string
	Token string
}

// Update is one inbound event, already flattened: either a typed message
// (Text set) or a button tap (Token set, with the id of the message that
// carried the button).
type Update struct {
	UserID    int64
	ChatID    int64
	Nickname  string
	Text      string
	Token     string
	MessageID int
	Callback  bool
}

// Messenger delivers outbound messages. Implementations must be safe for
// concurrent use.
type Messenger interface {
	SendText(ctx context.Context, chatID int64, text string) error
	SendInline(ctx context.Context, chatID int64, text string, rows [][]Button) error
	SendMenu(ctx context.Context, chatID int64, text string, rows [][]string) error
	EditText(ctx context.Context, chatID int64, messageID int, text string) error
}
