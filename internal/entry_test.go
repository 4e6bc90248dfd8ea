package internal

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/starford/nn/internal/apperr"
	"github.com/starford/nn/internal/testutil"
)

// fakeEditor records the paths it was asked to open and optionally appends text.
type fakeEditor struct {
	opened []string
	append string
	err    error
}

func (f *fakeEditor) Open(_ context.Context, path string) error {
	f.opened = append(f.opened, path)
	if f.err != nil {
		return f.err
	}
	if f.append != "" {
		file, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0)
		if err != nil {
			return err
		}
		defer file.Close()
		_, err = file.WriteString(f.append)
		return err
	}
	return nil
}

type testApp struct {
	*App
	dir    string
	editor *fakeEditor
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	dir, _ := testutil.TestNotes(t)
	ed := &fakeEditor{}
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	app, err := New(
		WithConfig(&Config{NotesDir: dir, Editor: "nano"}),
		WithOutput(stdout, stderr),
		WithLauncher(ed),
		WithClock(func() time.Time { return time.Date(2025, 4, 9, 23, 30, 0, 0, time.Local) }),
		WithLogger(NewLogger(io.Discard, slog.LevelDebug)),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return &testApp{App: app, dir: dir, editor: ed, stdout: stdout, stderr: stderr}
}

func TestNew_RequiresConfig(t *testing.T) {
	if _, err := New(); err == nil {
		t.Fatal("expected error without config")
	}
}

func TestNew_MissingNotesDir(t *testing.T) {
	_, err := New(WithConfig(&Config{NotesDir: filepath.Join(t.TempDir(), "nope"), Editor: "nano"}))
	if err == nil {
		t.Fatal("expected error for missing notes dir")
	}
}

func TestNew_EmptyEditor(t *testing.T) {
	_, err := New(WithConfig(&Config{NotesDir: t.TempDir(), Editor: " "}))
	if err == nil {
		t.Fatal("expected error for empty editor")
	}
}

func TestEditToday_CreatesAndOpens(t *testing.T) {
	a := newTestApp(t)

	if err := a.Edit(context.Background(), ""); err != nil {
		t.Fatalf("Edit: %v", err)
	}
	want := filepath.Join(a.dir, "2025-04-09.md")
	if len(a.editor.opened) != 1 || a.editor.opened[0] != want {
		t.Fatalf("editor opened %v, want %q", a.editor.opened, want)
	}
	data, err := os.ReadFile(want)
	if err != nil {
		t.Fatalf("note not created: %v", err)
	}
	if string(data) != "# 2025-04-09.md\n\n" {
		t.Errorf("content = %q", data)
	}
}

func TestEditToday_KeepsExisting(t *testing.T) {
	a := newTestApp(t)
	p := testutil.WriteNote(t, a.dir, "2025-04-09.md", "already here")
	a.editor.append = "\nmore"

	if err := a.Edit(context.Background(), ""); err != nil {
		t.Fatalf("Edit: %v", err)
	}
	data, _ := os.ReadFile(p)
	if string(data) != "already here\nmore" {
		t.Errorf("content = %q", data)
	}
}

func TestEditDate(t *testing.T) {
	a := newTestApp(t)
	if err := a.Edit(context.Background(), "2024-02-29"); err != nil {
		t.Fatalf("Edit: %v", err)
	}
	if a.editor.opened[0] != filepath.Join(a.dir, "2024-02-29.md") {
		t.Errorf("opened %v", a.editor.opened)
	}
}

func TestEditInvalidDate(t *testing.T) {
	a := newTestApp(t)
	for _, d := range []string{"2025-13-01", "yesterday", "../2025-01-01"} {
		if err := a.Edit(context.Background(), d); !errors.Is(err, apperr.ErrInvalidDate) {
			t.Errorf("Edit(%q) = %v, want ErrInvalidDate", d, err)
		}
	}
	if len(a.editor.opened) != 0 {
		t.Errorf("editor should not run, opened %v", a.editor.opened)
	}
}

func TestEditLaunchFailure(t *testing.T) {
	a := newTestApp(t)
	a.editor.err = errors.New("exec: not found")
	if err := a.Edit(context.Background(), ""); err == nil {
		t.Fatal("launch failure should be returned")
	}
}

func TestDelete(t *testing.T) {
	a := newTestApp(t)
	p := testutil.WriteNote(t, a.dir, "2025-01-01.md", "x")

	if err := a.Delete(context.Background(), "2025-01-01"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := os.Stat(p); !errors.Is(err, os.ErrNotExist) {
		t.Error("note should be removed")
	}
	if a.stderr.String() != "Deleted note for 2025-01-01\n" {
		t.Errorf("stderr = %q", a.stderr.String())
	}
}

func TestDeleteMissing(t *testing.T) {
	a := newTestApp(t)
	if err := a.Delete(context.Background(), "2025-01-01"); err != nil {
		t.Fatalf("Delete of missing note should not fail: %v", err)
	}
	if a.stderr.String() != "No note found for 2025-01-01\n" {
		t.Errorf("stderr = %q", a.stderr.String())
	}
}

func TestList(t *testing.T) {
	a := newTestApp(t)
	p2 := testutil.WriteNote(t, a.dir, "2025-01-02.md", "b")
	p1 := testutil.WriteNote(t, a.dir, "2025-01-01.md", "a")

	if err := a.List(context.Background()); err != nil {
		t.Fatalf("List: %v", err)
	}
	if a.stdout.String() != p1+"\n"+p2+"\n" {
		t.Errorf("stdout = %q", a.stdout.String())
	}
}

func TestSearch(t *testing.T) {
	a := newTestApp(t)
	p := testutil.WriteNote(t, a.dir, "2025-01-01.md", "# 2025-01-01.md\n\nbuy milk\n")
	testutil.WriteNote(t, a.dir, "2025-01-02.md", "buy bread\n")

	if err := a.Search(context.Background(), "milk"); err != nil {
		t.Fatalf("Search: %v", err)
	}
	want := p + ":\n# 2025-01-01.md\n\nbuy milk\n\n"
	if a.stdout.String() != want {
		t.Errorf("stdout = %q, want %q", a.stdout.String(), want)
	}
}

func TestTags(t *testing.T) {
	a := newTestApp(t)
	testutil.WriteNote(t, a.dir, "note1.md", "Today I worked on #rust and #cli\n")
	testutil.WriteNote(t, a.dir, "note2.md", "This is #rust again and also #dev\n")

	if err := a.Tags(context.Background()); err != nil {
		t.Fatalf("Tags: %v", err)
	}
	got := strings.Fields(a.stdout.String())
	want := []string{"#cli", "#dev", "#rust"}
	if strings.Join(got, " ") != strings.Join(want, " ") {
		t.Errorf("tags = %v, want %v", got, want)
	}
}
