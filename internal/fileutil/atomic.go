// Package fileutil holds small file helpers shared by the preference
// store and the image writer.
package fileutil

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
)

// WriteAtomic calls write with a buffered temporary file in path's
// directory and renames it over path once write and the flush succeed.
// On any error the temporary file is removed and path is untouched.
func WriteAtomic(path string, perm os.FileMode, write func(w io.Writer) error) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	name := tmp.Name()
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(name)
		}
	}()

	bw := bufio.NewWriter(tmp)
	if err = write(bw); err != nil {
		return err
	}
	if err = bw.Flush(); err != nil {
		return err
	}
	if err = tmp.Chmod(perm); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(name, path)
}
