package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matryer/is"
)

func TestIsTerminal(t *testing.T) {
	is := is.New(t)
	is.True(!IsTerminal(nil))

	f, err := os.Create(filepath.Join(t.TempDir(), "plain"))
	is.NoErr(err)
	defer f.Close()
	is.True(!IsTerminal(f))
}
