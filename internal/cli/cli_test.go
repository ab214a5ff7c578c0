package cli

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Utility-Gods/charswap/internal/app"
)

func newTestApp() *app.App {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return app.NewApp(nil, l)
}

// iteration is the console output of one full, non-terminating pass.
func iteration(result string) string {
	return promptLine + promptFrom + promptTo + "New string: " + result + "\n"
}

func run(t *testing.T, input string) string {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, RunCLI(newTestApp(), strings.NewReader(input), &out))
	return out.String()
}

func TestRunCLI_Scenarios(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"replace l with L", "hello\nl\nL\nstop\n", iteration("heLLo") + promptLine},
		{"replace every byte", "aaa\na\nb\nstop\n", iteration("bbb") + promptLine},
		{"stop right away", "stop\n", promptLine},
		{"empty line", "\nx\ny\nstop\n", iteration("") + promptLine},
		{"same character", "zebra\nz\nz\nstop\n", iteration("zebra") + promptLine},
		{"several iterations", "abc\na\nz\ncab\nb\nq\nstop\n", iteration("zbc") + iteration("caq") + promptLine},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, run(t, c.input))
		})
	}
}

func TestRunCLI_SentinelIsExact(t *testing.T) {
	got := run(t, "Stop\np\nX\nstop \ns\nS\nstop\n")
	assert.Equal(t, iteration("StoX")+iteration("Stop ")+promptLine, got)
}

func TestRunCLI_EndOfInput(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"no input", "", promptLine},
		{"after line", "hello\n", promptLine + promptFrom},
		{"after from", "hello\nl\n", promptLine + promptFrom + promptTo},
		{"after result", "hello\nl\nL\n", iteration("heLLo") + promptLine},
		{"only blank lines for a character", "hello\n\n   \n", promptLine + promptFrom},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, run(t, c.input))
		})
	}
}

func TestRunCLI_UnterminatedLastLine(t *testing.T) {
	assert.Equal(t, promptLine, run(t, "stop"))
	assert.Equal(t, iteration("heLLo")+promptLine, run(t, "hello\nl\nL"))
}

func TestRunCLI_CharacterReads(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"leading whitespace skipped", "hello\n   l\n\tL\nstop\n", iteration("heLLo")},
		{"blank lines skipped", "hello\n\n\nl\n\nL\nstop\n", iteration("heLLo")},
		{"both characters on one line", "hello\nl L\nstop\n", iteration("heLLo")},
		{"adjacent characters on one line", "hello\nlL\nstop\n", iteration("heLLo")},
		{"rest of line dropped after replacing character", "hello\nl Lxyz\nstop\n", iteration("heLLo")},
		{"replacing character from rest of line", "hello\nlxyz\nLabc\nb\nB\nstop\n", iteration("hexxo") + iteration("LaBc")},
		{"blank rest of line reads next line", "hello\nl   \nL\nstop\n", iteration("heLLo")},
		{"crlf terminators", "hello\r\nl\r\nL\r\nstop\r\n", iteration("heLLo")},
		{"space is not selectable", "a b\n \n_\nb\nstop\n", iteration("a b")},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want+promptLine, run(t, c.input))
		})
	}
}

func TestRunCLI_SentinelAfterCharactersOnOneLine(t *testing.T) {
	got := run(t, "hello\nl L\nstop\nabc\na\nz\n")
	assert.Equal(t, iteration("heLLo")+promptLine, got, "lines after stop must not be processed")
}

func TestRunCLI_TruncatesLongLines(t *testing.T) {
	long := strings.Repeat("ab", 40)
	got := run(t, long+"\na\nc\nstop\n")

	want := strings.ReplaceAll(long[:49], "a", "c")
	assert.Equal(t, iteration(want)+promptLine, got)
}

func TestRunCLI_LongLineStartingWithStopIsNotSentinel(t *testing.T) {
	got := run(t, "stopping\no\n0\nstop\n")
	assert.Equal(t, iteration("st0pping")+promptLine, got)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("tty gone") }

func TestRunCLI_ReadError(t *testing.T) {
	var out bytes.Buffer
	err := RunCLI(newTestApp(), failingReader{}, &out)
	assert.EqualError(t, err, "tty gone")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestRunCLI_WriteError(t *testing.T) {
	err := RunCLI(newTestApp(), strings.NewReader("hello\n"), failingWriter{})
	assert.EqualError(t, err, "broken pipe")
}
