package pipeline

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"syscall"
)

// Move the denoised temp file over the original using the configured mode.
func (p *Pipeline) replace(tmpFile, dst string) error {
	// Carry over the original permissions; the codec creates files with default ones.
	if fi, err := os.Stat(dst); err == nil {
		if err = os.Chmod(tmpFile, fi.Mode().Perm()); err != nil {
			logger.Warningf("could not copy permissions of %s: %v", dst, err)
		}
	}

	switch p.opts.Replace {
	case ReplaceRemoveFirst:
		if err := os.Remove(dst); err != nil {
			os.Remove(tmpFile)
			return &Error{Kind: RemoveError, Path: dst, Err: err}
		}

		if err := moveFile(tmpFile, dst); err != nil {
			logger.Errorf("%s was removed but the denoised result could not be moved into place; recover it from %s", dst, tmpFile)
			return &Error{Kind: RenameError, Path: dst, Stranded: tmpFile, Err: err}
		}
	default:
		if err := moveFile(tmpFile, dst); err != nil {
			os.Remove(tmpFile)
			return &Error{Kind: RenameError, Path: dst, Err: err}
		}
	}

	return nil
}

// Rename src over dst. If the two paths are on different filesystems, src
// is first copied to a hidden file next to dst which is then renamed over
// dst, so dst is always replaced by a same-directory rename.
func moveFile(src, dst string) error {
	err := os.Rename(src, dst)
	if err == nil || !isCrossDevice(err) {
		return err
	}

	logger.Debugf("%s and %s are on different devices; staging a copy next to the destination", src, dst)
	staged, err := copyToSibling(src, dst)
	if err != nil {
		return err
	}

	if err = os.Rename(staged, dst); err != nil {
		os.Remove(staged)
		return err
	}

	if err = os.Remove(src); err != nil {
		logger.Warningf("could not remove temp file %s: %v", src, err)
	}
	return nil
}

// Copy src into a new hidden temp file in dst's directory and return its path.
func copyToSibling(src, dst string) (string, error) {
	in, err := os.Open(src)
	if err != nil {
		return "", err
	}
	defer in.Close()

	out, err := os.CreateTemp(filepath.Dir(dst), "."+filepath.Base(dst)+".tmp.*")
	if err != nil {
		return "", err
	}
	staged := out.Name()

	if fi, err := in.Stat(); err == nil {
		out.Chmod(fi.Mode().Perm())
	}

	if _, err = io.Copy(out, in); err == nil {
		err = out.Sync()
	}
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(staged)
		return "", err
	}

	return staged, nil
}

func isCrossDevice(err error) bool {
	var linkErr *os.LinkError
	return errors.As(err, &linkErr) && errors.Is(linkErr.Err, syscall.EXDEV)
}
