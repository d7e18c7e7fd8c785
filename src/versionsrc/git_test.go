package versionsrc

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

func initRepo(t *testing.T, tags ...string) string {
	t.Helper()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "README"), []byte("tracer images\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := wt.Add("README"); err != nil {
		t.Fatal(err)
	}
	hash, err := wt.Commit("init", &git.CommitOptions{
		Author: &object.Signature{Name: "test", Email: "test@example.com", When: time.Now()},
	})
	if err != nil {
		t.Fatalf("commit: %v", err)
	}
	for _, tag := range tags {
		if _, err := repo.CreateTag(tag, hash, nil); err != nil {
			t.Fatalf("tag %s: %v", tag, err)
		}
	}
	return dir
}

func TestGitReadsHighestStableTag(t *testing.T) {
	dir := initRepo(t, "v1.2.0", "v1.10.0", "v2.0.0-rc1", "nightly")

	got, err := Git{Key: "package", Root: dir}.Read("package")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	// prerelease and non-semver tags are skipped; 1.10.0 > 1.2.0 numerically
	if got != "1.10.0" {
		t.Errorf("Read = %q, want 1.10.0", got)
	}
}

func TestGitOtherKeysNotFound(t *testing.T) {
	dir := initRepo(t, "v1.0.0")
	if _, err := (Git{Key: "package", Root: dir}).Read("numpy"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestGitNoReleaseTags(t *testing.T) {
	dir := initRepo(t)
	if _, err := (Git{Key: "package", Root: dir}).Read("package"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
