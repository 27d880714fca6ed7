package fileutil

import (
	"os"
)

// Append writes b to the end of the file at pathname, creating it if
// necessary. Audit trails in this program are append-only so this is the
// only write path they get.
func Append(pathname string, b []byte) error {
	f, err := os.OpenFile(pathname, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		return err
	}
	if _, err := f.Write(b); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func Exists(pathname string) bool {
	_, err := os.Stat(pathname)
	return err == nil
}
