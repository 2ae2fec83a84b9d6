package acceptance_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

var poeticBinary string

func TestMain(m *testing.M) {
	tmpDir, err := os.MkdirTemp("", "poetic-acceptance-*")
	if err != nil {
		panic(err)
	}

	poeticBinary = filepath.Join(tmpDir, "poetic")
	build := exec.Command("go", "build", "-o", poeticBinary, "github.com/eykd/poetic-source-go")
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		os.RemoveAll(tmpDir)
		panic("failed to build poetic binary: " + err.Error())
	}

	code := m.Run()
	os.RemoveAll(tmpDir)
	os.Exit(code)
}
