package commands

import (
	"fmt"
	"strings"
)

type Type string

const (
	TypeSet    Type = "set"
	TypeToggle Type = "toggle"
	TypePay    Type = "pay"
	TypeSubmit Type = "submit"
	TypeShow   Type = "show"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type SetArgs struct {
	Field string
	Value string
}

// ToggleArgs carries the wanted checked state. A nil Checked flips the
// current state.
type ToggleArgs struct {
	ActivityID string
	Checked    *bool
}

type PayArgs struct {
	Method string
}

type ShowArgs struct {
	Subject string
}

type Command struct {
	Type   Type
	Raw    string
	Set    *SetArgs
	Toggle *ToggleArgs
	Pay    *PayArgs
	Show   *ShowArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeSet:
		return parseSet(input, args)
	case TypeToggle:
		return parseToggle(input, args)
	case TypePay:
		return parsePay(input, args)
	case TypeSubmit:
		return Command{Type: TypeSubmit, Raw: input}, nil
	case TypeShow:
		return parseShow(input, args)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseSet(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "set requires a field"}
	}
	// An empty value is allowed so a field can be cleared.
	value := strings.TrimSpace(strings.Join(args[1:], " "))
	return Command{Type: TypeSet, Raw: raw, Set: &SetArgs{Field: strings.ToLower(args[0]), Value: value}}, nil
}

func parseToggle(raw string, args []string) (Command, error) {
	if len(args) == 0 || len(args) > 2 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "toggle requires an activity and an optional on/off"}
	}
	out := &ToggleArgs{ActivityID: args[0]}
	if len(args) == 2 {
		var checked bool
		switch strings.ToLower(args[1]) {
		case "on", "yes", "true":
			checked = true
		case "off", "no", "false":
			checked = false
		default:
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("toggle state must be on or off: %s", args[1])}
		}
		out.Checked = &checked
	}
	return Command{Type: TypeToggle, Raw: raw, Toggle: out}, nil
}

func parsePay(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "pay requires a single method"}
	}
	return Command{Type: TypePay, Raw: raw, Pay: &PayArgs{Method: strings.ToLower(args[0])}}, nil
}

func parseShow(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "show requires a subject"}
	}
	return Command{Type: TypeShow, Raw: raw, Show: &ShowArgs{Subject: strings.ToLower(args[0])}}, nil
}
