package commands

import (
	"errors"
	"testing"
)

func TestParseSupportedCommands(t *testing.T) {
	cases := []struct {
		in       string
		typeWant Type
	}{
		{"/set name Ada Lovelace", TypeSet},
		{"toggle js-frameworks on", TypeToggle},
		{"pay paypal", TypePay},
		{"/submit", TypeSubmit},
		{"show summary", TypeShow},
	}

	for _, tc := range cases {
		cmd, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("parse %q failed: %v", tc.in, err)
		}
		if cmd.Type != tc.typeWant {
			t.Fatalf("parse %q type = %s, want %s", tc.in, cmd.Type, tc.typeWant)
		}
	}
}

func TestParseSetKeepsValueWords(t *testing.T) {
	cmd, err := Parse("/set NAME Ada   Lovelace")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Set.Field != "name" || cmd.Set.Value != "Ada Lovelace" {
		t.Fatalf("unexpected set args: %+v", cmd.Set)
	}

	cmd, err = Parse("set zip")
	if err != nil {
		t.Fatalf("parse clear failed: %v", err)
	}
	if cmd.Set.Value != "" {
		t.Fatalf("expected empty value, got %q", cmd.Set.Value)
	}
}

func TestParseToggleState(t *testing.T) {
	cmd, err := Parse("toggle node")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Toggle.ActivityID != "node" || cmd.Toggle.Checked != nil {
		t.Fatalf("unexpected toggle args: %+v", cmd.Toggle)
	}

	cmd, err = Parse("toggle node off")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Toggle.Checked == nil || *cmd.Toggle.Checked {
		t.Fatalf("expected explicit off, got %+v", cmd.Toggle)
	}

	_, err = Parse("toggle node maybe")
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeInvalidArgument {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		in   string
		code ErrorCode
	}{
		{"", ErrCodeEmptyInput},
		{"/", ErrCodeEmptyInput},
		{"/unknown do x", ErrCodeUnknownCommand},
		{"set", ErrCodeInvalidArgument},
		{"toggle", ErrCodeInvalidArgument},
		{"pay", ErrCodeInvalidArgument},
		{"pay credit card", ErrCodeInvalidArgument},
		{"show", ErrCodeInvalidArgument},
	}
	for _, tc := range cases {
		_, err := Parse(tc.in)
		var ce *CommandError
		if !errors.As(err, &ce) || ce.Code != tc.code {
			t.Fatalf("parse %q: expected %s, got %v", tc.in, tc.code, err)
		}
	}
}

func TestExecuteDispatch(t *testing.T) {
	cmd, err := Parse("/pay bitcoin")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	called := false
	res, err := Execute(cmd, Handlers{
		Pay: func(a PayArgs) (Result, error) {
			called = true
			if a.Method != "bitcoin" {
				t.Fatalf("unexpected method: %q", a.Method)
			}
			return Result{Message: "ok"}, nil
		},
	})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !called || res.Message != "ok" {
		t.Fatalf("dispatch failed, called=%v res=%+v", called, res)
	}
}

func TestExecuteSubmit(t *testing.T) {
	cmd, err := Parse("submit")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	calls := 0
	if _, err := Execute(cmd, Handlers{Submit: func() (Result, error) {
		calls++
		return Result{Message: "submitted"}, nil
	}}); err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected one submit call, got %d", calls)
	}
}

func TestExecuteMissingHandler(t *testing.T) {
	cmd, err := Parse("show summary")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	_, err = Execute(cmd, Handlers{})
	if err == nil {
		t.Fatal("expected error")
	}
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeHandlerMissing {
		t.Fatalf("expected missing handler error, got %v", err)
	}
}
