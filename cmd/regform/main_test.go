package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sandeepkv93/regform/internal/storage"
)

func seedDB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "regform.db")
	repo, err := storage.OpenSQLite(path)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer repo.Close()

	at := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	for i, reg := range []storage.Registration{
		{ID: "r1", Name: "Ada", Email: "ada@example.com", PaymentMethod: "paypal", TotalCost: 200, ActivityIDs: []string{"all"}},
		{ID: "r2", Name: "Grace", Email: "grace@example.com", PaymentMethod: "credit-card", CardLast4: "4242", TotalCost: 300, ActivityIDs: []string{"all", "npm"}},
	} {
		reg.CreatedAt = at.Add(time.Duration(i) * time.Minute)
		if err := repo.CreateRegistration(context.Background(), reg); err != nil {
			t.Fatalf("seed registration: %v", err)
		}
	}
	return path
}

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestListCommandPrintsRegistrations(t *testing.T) {
	db := seedDB(t)
	out, err := runRoot(t, "list", "--env-file", "", "--db", db)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected two rows, got %q", out)
	}
	if !strings.Contains(lines[0], "grace@example.com") || !strings.Contains(lines[0], "all,npm") {
		t.Fatalf("expected newest registration first, got %q", lines[0])
	}
}

func TestListCommandFilters(t *testing.T) {
	db := seedDB(t)
	out, err := runRoot(t, "list", "--env-file", "", "--db", db, "--method", "paypal")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, "ada@example.com") || strings.Contains(out, "grace@example.com") {
		t.Fatalf("unexpected filtered output: %q", out)
	}

	out, err = runRoot(t, "list", "--env-file", "", "--db", db, "--email", "nobody@example.com")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if strings.TrimSpace(out) != "no registrations" {
		t.Fatalf("expected empty listing, got %q", out)
	}
}

func TestEnvFileSuppliesDatabasePath(t *testing.T) {
	db := seedDB(t)
	t.Setenv("REGFORM_DB_PATH", "")
	if err := os.Unsetenv("REGFORM_DB_PATH"); err != nil {
		t.Fatalf("unset env: %v", err)
	}
	envFile := filepath.Join(t.TempDir(), "regform.env")
	if err := os.WriteFile(envFile, []byte("REGFORM_DB_PATH="+db+"\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	out, err := runRoot(t, "list", "--env-file", envFile, "--limit", "1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if strings.Count(strings.TrimSpace(out), "\n") != 0 || !strings.Contains(out, "grace@example.com") {
		t.Fatalf("expected one row from env database, got %q", out)
	}
}

func TestMissingExplicitEnvFileFails(t *testing.T) {
	_, err := runRoot(t, "list", "--env-file", filepath.Join(t.TempDir(), "missing.env"))
	if err == nil || !strings.Contains(err.Error(), "load env file") {
		t.Fatalf("expected env file error, got %v", err)
	}
}

func TestMissingDefaultEnvFileIgnored(t *testing.T) {
	t.Chdir(t.TempDir())
	if err := loadEnvFile(defaultEnvFile); err != nil {
		t.Fatalf("expected missing default env file ignored, got %v", err)
	}
}
