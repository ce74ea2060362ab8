package errors

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"testing"
)

// capture swaps the output and exit seams for one test and returns the
// buffer and a pointer to the recorded exit code (-1 when never called).
func capture(t *testing.T) (*bytes.Buffer, *int) {
	t.Helper()

	buf := &bytes.Buffer{}
	code := -1
	out = buf
	exitFunc = func(c int) { code = c }
	t.Cleanup(func() {
		out = os.Stderr
		exitFunc = os.Exit
	})
	return buf, &code
}

func TestFatal_NilIsNoOp(t *testing.T) {
	buf, code := capture(t)

	Fatal(nil)

	if buf.Len() != 0 {
		t.Errorf("unexpected output: %q", buf.String())
	}
	if *code != -1 {
		t.Errorf("exit called with code %d", *code)
	}
}

func TestFatal_PrintsAndExits(t *testing.T) {
	buf, code := capture(t)

	Fatal(fmt.Errorf("storage is on fire"))

	if got, want := buf.String(), "Error: storage is on fire\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
	if *code != 1 {
		t.Errorf("exit code = %d, want 1", *code)
	}
}

func TestFatalf_FormatsAndExits(t *testing.T) {
	buf, code := capture(t)

	Fatalf("failed to open %q: %v", "/tmp/x", fmt.Errorf("permission denied"))

	if !strings.HasPrefix(buf.String(), "Error: failed to open \"/tmp/x\"") {
		t.Errorf("output = %q", buf.String())
	}
	if !strings.Contains(buf.String(), "permission denied") {
		t.Errorf("output %q missing the wrapped cause", buf.String())
	}
	if *code != 1 {
		t.Errorf("exit code = %d, want 1", *code)
	}
}
