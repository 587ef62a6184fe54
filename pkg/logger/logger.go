package logger

import (
	"fmt"
	"log"
	"os"
	"strings"
)

// Logger é a interface para logging
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Debug(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
}

// SimpleLogger é uma implementação simples de Logger sobre a biblioteca padrão
type SimpleLogger struct {
	out   *log.Logger
	err   *log.Logger
	debug bool
}

// NewLogger cria uma nova instância de Logger. O nível debug é habilitado
// pela variável de ambiente LOG_DEBUG.
func NewLogger() Logger {
	return &SimpleLogger{
		out:   log.New(os.Stdout, "", log.Ldate|log.Ltime),
		err:   log.New(os.Stderr, "", log.Ldate|log.Ltime),
		debug: os.Getenv("LOG_DEBUG") != "",
	}
}

// Info registra uma mensagem de informação
func (l *SimpleLogger) Info(msg string, keysAndValues ...interface{}) {
	l.out.Printf("INFO: %s%s", msg, formatKeyValues(keysAndValues))
}

// Error registra uma mensagem de erro
func (l *SimpleLogger) Error(msg string, keysAndValues ...interface{}) {
	l.err.Printf("ERROR: %s%s", msg, formatKeyValues(keysAndValues))
}

// Debug registra uma mensagem de debug
func (l *SimpleLogger) Debug(msg string, keysAndValues ...interface{}) {
	if !l.debug {
		return
	}
	l.out.Printf("DEBUG: %s%s", msg, formatKeyValues(keysAndValues))
}

// Warn registra uma mensagem de aviso
func (l *SimpleLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.out.Printf("WARN: %s%s", msg, formatKeyValues(keysAndValues))
}

// formatKeyValues formata os pares chave/valor como "chave=valor"
func formatKeyValues(keysAndValues []interface{}) string {
	if len(keysAndValues) == 0 {
		return ""
	}

	var b strings.Builder
	for i := 0; i < len(keysAndValues); i += 2 {
		key := keysAndValues[i]
		if i+1 < len(keysAndValues) {
			fmt.Fprintf(&b, " %v=%v", key, keysAndValues[i+1])
		} else {
			fmt.Fprintf(&b, " %v", key)
		}
	}
	return b.String()
}
