package log

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Fields é um atalho para os campos estruturados do logrus
type Fields = logrus.Fields

// Logger é a interface de log usada em toda a aplicação
type Logger interface {
	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Warn(args ...interface{})
	Warnf(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
	Fatal(args ...interface{})
	Fatalf(format string, args ...interface{})
	WithField(key string, value interface{}) Logger
	WithFields(fields Fields) Logger
	WithError(err error) Logger
	WithContext(ctx context.Context) Logger
}

type contextKey string

// CorrelationIDKey é a chave de contexto do ID de correlação das ações
const CorrelationIDKey contextKey = "correlation_id"

type logger struct {
	entry *logrus.Entry
}

// L é o logger global da aplicação
var L Logger = &logger{entry: logrus.NewEntry(logrus.StandardLogger())}

// IsDevelopment indica se a aplicação roda em ambiente de
// desenvolvimento, onde os logs são mais enxutos e legíveis
func IsDevelopment() bool {
	env := strings.ToLower(os.Getenv("ENVIRONMENT"))
	return env == "" || env == "development" || env == "dev"
}

// SetupTestLogger silencia a saída de log durante os testes
func SetupTestLogger() {
	logrus.SetOutput(io.Discard)
	logrus.SetLevel(logrus.ErrorLevel)
	L = &logger{entry: logrus.NewEntry(logrus.StandardLogger())}
}

func (l *logger) Debug(args ...interface{}) {
	l.entry.Debug(args...)
}

func (l *logger) Debugf(format string, args ...interface{}) {
	l.entry.Debugf(format, args...)
}

func (l *logger) Info(args ...interface{}) {
	l.entry.Info(args...)
}

func (l *logger) Infof(format string, args ...interface{}) {
	l.entry.Infof(format, args...)
}

func (l *logger) Warn(args ...interface{}) {
	l.entry.Warn(args...)
}

func (l *logger) Warnf(format string, args ...interface{}) {
	l.entry.Warnf(format, args...)
}

func (l *logger) Error(args ...interface{}) {
	l.entry.Error(args...)
}

func (l *logger) Errorf(format string, args ...interface{}) {
	l.entry.Errorf(format, args...)
}

func (l *logger) Fatal(args ...interface{}) {
	l.entry.Fatal(args...)
}

func (l *logger) Fatalf(format string, args ...interface{}) {
	l.entry.Fatalf(format, args...)
}

// WithField adiciona um campo estruturado ao log. Em desenvolvimento,
// campos não essenciais são descartados para manter a saída limpa.
func (l *logger) WithField(key string, value interface{}) Logger {
	if IsDevelopment() && !isEssentialField(key) {
		return l
	}

	return &logger{entry: l.entry.WithField(key, value)}
}

// WithFields adiciona vários campos estruturados ao log, aplicando o
// mesmo filtro de desenvolvimento de WithField
func (l *logger) WithFields(fields Fields) Logger {
	if !IsDevelopment() {
		return &logger{entry: l.entry.WithFields(fields)}
	}

	filtered := Fields{}
	for key, value := range fields {
		if isEssentialField(key) {
			filtered[key] = value
		}
	}

	if len(filtered) == 0 {
		return l
	}

	return &logger{entry: l.entry.WithFields(filtered)}
}

func (l *logger) WithError(err error) Logger {
	return &logger{entry: l.entry.WithError(err)}
}

func (l *logger) WithContext(ctx context.Context) Logger {
	return &logger{entry: l.entry.WithContext(ctx)}
}

// isEssentialField lista os campos exibidos mesmo no modo de
// desenvolvimento
func isEssentialField(key string) bool {
	switch key {
	case "error", "option", "session_id", "duration_ms", "attempts", "records":
		return true
	}

	return strings.HasPrefix(key, "sale_")
}

// WithCorrelationID gera um ID de correlação para a ação atual e o
// injeta no contexto
func WithCorrelationID(ctx context.Context) (context.Context, string) {
	correlationID := uuid.New().String()
	ctx = context.WithValue(ctx, CorrelationIDKey, correlationID)

	return ctx, correlationID
}

// GetCorrelationID recupera o ID de correlação do contexto, se houver
func GetCorrelationID(ctx context.Context) string {
	if correlationID, ok := ctx.Value(CorrelationIDKey).(string); ok {
		return correlationID
	}

	return ""
}

// ForContext devolve um logger já anotado com o ID de correlação do
// contexto
func ForContext(ctx context.Context) Logger {
	if correlationID := GetCorrelationID(ctx); correlationID != "" {
		return L.WithField("correlation_id", correlationID)
	}

	return L
}
