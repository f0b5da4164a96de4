// internal/runlog/runlog.go
package runlog

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// plainFormatter emits bare messages; the validation log is informational
// and not machine-parsed, warnings carry a prefix so they stand out.
type plainFormatter struct{}

func (plainFormatter) Format(e *logrus.Entry) ([]byte, error) {
	if e.Level <= logrus.WarnLevel {
		return []byte(e.Level.String() + ": " + e.Message + "\n"), nil
	}
	return []byte(e.Message + "\n"), nil
}

// New builds the logger for one pipeline run, writing to the log file at
// path. The logger is owned by the run and passed explicitly to
// collaborators; there is no process-wide logging state. The returned closer
// releases the underlying file.
func New(path string) (*logrus.Logger, io.Closer, error) {
	fh, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	log := logrus.New()
	log.SetOutput(fh)
	log.SetLevel(logrus.InfoLevel)
	log.SetFormatter(plainFormatter{})
	return log, fh, nil
}

// Discard returns a logger that drops everything. Handy for constructing
// collaborators in tests.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
