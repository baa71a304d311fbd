package logger

import (
	"io"
	"log"
	"os"
	"time"
)

// Level controls which of the service loggers write to the log file.
type Level int

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelVerbose
)

// ParseLevel maps a config string onto a Level. Unknown strings fall
// back to info.
func ParseLevel(s string) Level {
	switch s {
	case "error":
		return LevelError
	case "warn":
		return LevelWarn
	case "verbose", "debug":
		return LevelVerbose
	}
	return LevelInfo
}

var (
	Info    *log.Logger
	Warn    *log.Logger
	Verbose *log.Logger
	Error   *log.Logger
	Always  *log.Logger // Always logs to file regardless of log level
)

// InitWithConfig opens the log file and builds the logger set. Loggers
// above the configured level write to io.Discard; Error additionally
// copies to stderr, Always bypasses filtering entirely.
func InitWithConfig(logLevel, logFilePath string) error {
	level := ParseLevel(logLevel)

	logFile, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return err
	}

	at := func(min Level) io.Writer {
		if level >= min {
			return logFile
		}
		return io.Discard
	}

	Info = log.New(at(LevelInfo), "ℹ️  INFO: ", log.Ldate|log.Ltime)
	Warn = log.New(at(LevelWarn), "⚠️  WARN: ", log.Ldate|log.Ltime|log.Lshortfile)
	Verbose = log.New(at(LevelVerbose), "🔍 VERBOSE: ", log.Ldate|log.Ltime)
	Error = log.New(io.MultiWriter(os.Stderr, logFile), "❌ ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)
	Always = log.New(logFile, "📝 ALWAYS: ", log.Ldate|log.Ltime)

	return nil
}

// SolveTrace captures one implied volatility inversion for verbose
// diagnostics: the quote, the recovered volatility and the wall time.
type SolveTrace struct {
	Price      float64
	Forward    float64
	Strike     float64
	Expiry     float64
	OptionSign int
	ImpliedVol float64
	Elapsed    time.Duration
}

// TraceSolve writes a solver trace at verbose level.
func TraceSolve(t SolveTrace) {
	side := "call"
	if t.OptionSign < 0 {
		side = "put"
	}
	Verbose.Printf("solve %s price=%g F=%g K=%g T=%g -> σ=%.12g in %v",
		side, t.Price, t.Forward, t.Strike, t.Expiry, t.ImpliedVol, t.Elapsed)
}

// TraceReject writes a rejected quote at verbose level.
func TraceReject(reason error) {
	Verbose.Printf("quote rejected: %v", reason)
}
