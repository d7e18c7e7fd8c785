package versionsrc

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// Git resolves one fixed key to the highest stable release tag of a
// repository. Used when the package version is taken from git history
// instead of an explicit version file.
type Git struct {
	Key  string
	Root string
}

func (g Git) Read(key string) (string, error) {
	if key != g.Key {
		return "", fmt.Errorf("%s: %w", key, ErrNotFound)
	}

	repo, err := git.PlainOpen(g.Root)
	if err != nil {
		return "", fmt.Errorf("opening repository %s: %w", g.Root, err)
	}

	tags, err := repo.Tags()
	if err != nil {
		return "", fmt.Errorf("listing tags: %w", err)
	}

	var best *semver.Version
	err = tags.ForEach(func(ref *plumbing.Reference) error {
		name := strings.TrimPrefix(ref.Name().Short(), "v")
		v, perr := semver.StrictNewVersion(name)
		if perr != nil || v.Prerelease() != "" || v.Metadata() != "" {
			// not a stable release tag
			return nil
		}
		if best == nil || v.GreaterThan(best) {
			best = v
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("walking tags: %w", err)
	}

	if best == nil {
		return "", fmt.Errorf("%s: no release tag in %s: %w", key, g.Root, ErrNotFound)
	}
	return best.String(), nil
}
