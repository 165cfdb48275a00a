package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Set    func(SetArgs) (Result, error)
	Toggle func(ToggleArgs) (Result, error)
	Pay    func(PayArgs) (Result, error)
	Submit func() (Result, error)
	Show   func(ShowArgs) (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeSet:
		if handlers.Set == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "set handler not configured"}
		}
		return handlers.Set(*cmd.Set)
	case TypeToggle:
		if handlers.Toggle == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "toggle handler not configured"}
		}
		return handlers.Toggle(*cmd.Toggle)
	case TypePay:
		if handlers.Pay == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "pay handler not configured"}
		}
		return handlers.Pay(*cmd.Pay)
	case TypeSubmit:
		if handlers.Submit == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "submit handler not configured"}
		}
		return handlers.Submit()
	case TypeShow:
		if handlers.Show == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "show handler not configured"}
		}
		return handlers.Show(*cmd.Show)
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}
