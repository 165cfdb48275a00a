package views

import (
	"strings"
	"testing"
)

func TestRenderFormPanelRows(t *testing.T) {
	out := RenderFormPanel([]RowData{
		{Kind: RowHeading, Label: "Basic Info"},
		{Kind: RowField, Label: "Email", Value: "nope", Focused: true, Invalid: true, Hint: "Invalid email address format"},
		{Kind: RowActivity, Label: "Express Workshop", Detail: "Tuesday 9am-12pm $100"},
		{Kind: RowActivity, Label: "Main Conference", Detail: "$200", Checked: true},
		{Kind: RowButton, Label: "Register"},
	})
	for _, want := range []string{"Basic Info", "> Email: nope", "Invalid email address format", "[ ] Express Workshop", "[x] Main Conference", "[ Register ]"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in form panel:\n%s", want, out)
		}
	}
}

func TestRenderFormPanelHidesHintWhenValid(t *testing.T) {
	out := RenderFormPanel([]RowData{{Kind: RowField, Label: "Name", Value: "Ada", Valid: true, Hint: "stale"}})
	if strings.Contains(out, "stale") {
		t.Fatalf("valid field must not show a hint: %q", out)
	}
	if !strings.Contains(out, "ok") {
		t.Fatalf("expected valid marker: %q", out)
	}
}

func TestRenderSummaryPanel(t *testing.T) {
	out := RenderSummaryPanel(SummaryPanelData{
		CostLabel:     "Total $300",
		SelectedCount: 2,
		Payment:       "credit-card",
		Blocked:       []string{"express"},
		Invalid:       []string{"cc-num"},
	})
	for _, want := range []string{"Total $300", "activities selected: 2", "payment: credit-card", "blocked: express", "needs attention: cc-num"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in summary:\n%s", want, out)
		}
	}
	if strings.Contains(out, "submitted:") {
		t.Fatalf("unexpected submitted line: %s", out)
	}
}

func TestConfirmationMarkdown(t *testing.T) {
	md := ConfirmationMarkdown(ConfirmationData{
		ID:         "abc",
		Name:       "Ada",
		Email:      "ada@example.com",
		Payment:    "paypal",
		CostLabel:  "Total $200",
		Activities: []string{"Main Conference"},
	})
	for _, want := range []string{"# Registration received", "`abc`", "**Name:** Ada", "**Total $200**", "- Main Conference"} {
		if !strings.Contains(md, want) {
			t.Fatalf("expected %q in markdown:\n%s", want, md)
		}
	}
	if RenderMarkdown("   ") != "" {
		t.Fatal("expected blank markdown to render empty")
	}
	if rendered := RenderMarkdown(md); !strings.Contains(rendered, "Registration") {
		t.Fatalf("expected rendered heading, got %q", rendered)
	}
}

func TestRenderPaletteAndNotification(t *testing.T) {
	if RenderCommandPalette(false, "x") != "" {
		t.Fatal("inactive palette must render empty")
	}
	if got := RenderCommandPalette(true, "submit"); got != "command: /submit" {
		t.Fatalf("unexpected palette: %q", got)
	}
	if RenderNotification("info", " ") != "" {
		t.Fatal("empty notification must render empty")
	}
	if got := RenderNotification("error", "boom"); got != "notification: [ERROR] boom" {
		t.Fatalf("unexpected notification: %q", got)
	}
}

func TestPaneWidths(t *testing.T) {
	left, right := paneWidths(0)
	if left+right+4 != defaultWidth {
		t.Fatalf("unexpected default split: %d/%d", left, right)
	}
	left, right = paneWidths(50)
	if left != minPaneWidth || right != minPaneWidth {
		t.Fatalf("expected minimum widths, got %d/%d", left, right)
	}
}

func TestRenderAppIncludesSections(t *testing.T) {
	out := RenderApp(AppData{
		Header:       "regform",
		LeftPane:     "left",
		RightPane:    "right",
		StatusLine:   "status: ready",
		Footer:       "keys",
		Notification: "note",
	})
	for _, want := range []string{"regform", "left", "right", "status: ready", "keys", "note"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in frame:\n%s", want, out)
		}
	}
}
