package handlers

import (
	"io/fs"
	"net/http"
	"path"
)

// openFile resolves name inside root. Directories are reported as missing
// so that asset folders are never listed.
func openFile(root http.FileSystem, name string) (http.File, fs.FileInfo, error) {
	f, err := root.Open(path.Clean("/" + name))
	if err != nil {
		return nil, nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	if info.IsDir() {
		f.Close()
		return nil, nil, fs.ErrNotExist
	}
	return f, info, nil
}
