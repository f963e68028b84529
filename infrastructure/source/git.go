// Package source resolves directory task paths. Local paths are used as-is;
// remote git URLs are shallow-cloned into a temporary checkout for the
// duration of the task.
package source

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/go-git/go-git/v5"
	logger "github.com/sirupsen/logrus"
)

// IsRemote reports whether path is a remote git URL rather than a local
// directory.
func IsRemote(path string) bool {
	return strings.HasPrefix(path, "http://") ||
		strings.HasPrefix(path, "https://") ||
		strings.HasPrefix(path, "ssh://") ||
		strings.HasPrefix(path, "git@")
}

// Checkout shallow-clones the repository at url into a temporary directory
// and returns its path along with a cleanup function. The caller must invoke
// cleanup once analysis of the task is done.
func Checkout(ctx context.Context, url string) (string, func(), error) {
	dir, err := os.MkdirTemp("", "plutonium-checkout-*")
	if err != nil {
		return "", nil, fmt.Errorf("failed to create checkout directory: %w", err)
	}
	cleanup := func() {
		if removeErr := os.RemoveAll(dir); removeErr != nil {
			logger.Warnf("Failed to remove checkout %q: %v", dir, removeErr)
		}
	}

	logger.Infof("Cloning %s for analysis...", url)
	if _, cloneErr := git.PlainCloneContext(ctx, dir, false, &git.CloneOptions{
		URL:          url,
		Depth:        1,
		SingleBranch: true,
	}); cloneErr != nil {
		cleanup()
		return "", nil, fmt.Errorf("failed to clone %q: %w", url, cloneErr)
	}

	return dir, cleanup, nil
}
