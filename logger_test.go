package tem104

import (
	"bytes"
	"log"
	"os"
	"testing"
)

func TestClientCustomLogger(t *testing.T) {
	var buf bytes.Buffer

	customLogger := log.New(&buf, "external-prefix: ", 0)

	_, _ = NewClient(&Configuration{
		Logger: customLogger,
		URL:    "sometype://sometarget",
	})

	if buf.String() != "external-prefix: tem104-client(sometarget) [error]: unsupported transport scheme 'sometype'\n" {
		t.Errorf("unexpected logger output %q", buf.String())
	}
}

func TestDefaultLoggerGoesToStdout(t *testing.T) {
	l := newLogger("test-prefix", nil)

	if l.sink == nil {
		t.Fatal("expected a non-nil default sink")
	}
	if l.sink.Writer() != os.Stdout {
		t.Errorf("default sink writes to %v, want os.Stdout", l.sink.Writer())
	}
}
