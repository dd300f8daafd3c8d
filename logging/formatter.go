package logging

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

//CommandLineFormatter prints only the message, for output meant to be read by humans
type CommandLineFormatter struct{}

func (f *CommandLineFormatter) Format(entry *log.Entry) ([]byte, error) {
	return []byte(fmt.Sprintf("%s\n", entry.Message)), nil
}

//Configure sets up the standard logger for the command line tools. Logs go to stderr so stdout only
//carries the report
func Configure(verbose bool) {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetOutput(os.Stderr)
	if verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}

//NewReportLogger returns a logger writing bare messages to out
func NewReportLogger(out io.Writer) *log.Logger {
	return &log.Logger{
		Out:       out,
		Formatter: new(CommandLineFormatter),
		Hooks:     make(log.LevelHooks),
		Level:     log.InfoLevel,
	}
}
