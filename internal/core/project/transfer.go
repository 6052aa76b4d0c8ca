package project

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/studio-scaffolder/scaffolder/internal/resilience"
)

// moveTree renames src to dst, retrying while a file in the tree is busy.
// When the rename still fails, for example across devices, the tree is
// copied and the source removed.
func moveTree(src, dst string, logger *slog.Logger) error {
	renameErr := resilience.Retry(context.Background(), resilience.RenamePolicy(), func() error {
		return os.Rename(src, dst)
	})
	if renameErr == nil {
		return nil
	}
	logger.Debug("rename failed, copying tree", "src", src, "dst", dst, "error", renameErr)

	if err := copyTree(src, dst); err != nil {
		_ = os.RemoveAll(dst)
		return ioErr("move", src, fmt.Errorf("rename: %v; copy: %w", renameErr, err))
	}
	if err := os.RemoveAll(src); err != nil {
		return ioErr("remove", src, err)
	}
	return nil
}

func copyTree(src, dst string) error {
	return filepath.WalkDir(src, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, p)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		info, err := d.Info()
		if err != nil {
			return err
		}
		switch {
		case d.IsDir():
			return os.MkdirAll(target, info.Mode().Perm())
		case info.Mode()&fs.ModeSymlink != 0:
			link, err := os.Readlink(p)
			if err != nil {
				return err
			}
			return os.Symlink(link, target)
		default:
			return copyFile(p, target, info.Mode().Perm())
		}
	})
}

func copyFile(src, dst string, perm fs.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
