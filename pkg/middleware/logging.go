package middleware

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/vfg2006/sales-tracker/pkg/log"
)

// LoggingMiddleware registra o início, a duração e o resultado de cada
// ação do menu
func LoggingMiddleware() Middleware {
	return func(next Action) Action {
		return func(ctx context.Context) error {
			// Gera um ID de correlação para esta ação
			ctx, correlationID := log.WithCorrelationID(ctx)

			option := OptionFromContext(ctx)
			startTime := time.Now()

			isDev := log.IsDevelopment()

			// Em desenvolvimento, usamos um formato mais conciso
			if isDev {
				log.L.WithFields(log.Fields{
					"option": option,
				}).Debug("→ Iniciando ação")
			} else {
				log.L.WithFields(log.Fields{
					"correlation_id": correlationID,
					"option":         option,
				}).Info("Ação iniciada")
			}

			err := next(ctx)

			duration := time.Since(startTime)

			if isDev {
				statusSymbol := "✓"
				if err != nil {
					statusSymbol = "✗"
				}

				logMsg := fmt.Sprintf("%s Concluída em %s", statusSymbol, formatDuration(duration))

				logger := log.L.WithFields(log.Fields{
					"option": option,
				})

				if err != nil {
					logger.WithError(err).Warn(logMsg)
				} else {
					logger.Debug(logMsg)
				}
			} else {
				logFields := log.Fields{
					"correlation_id": correlationID,
					"option":         option,
					"duration_ms":    duration.Milliseconds(),
				}

				logger := log.L.WithFields(logFields)

				if err != nil {
					logger.WithError(err).Warn("Ação finalizada com erro")
				} else {
					logger.Info("Ação finalizada com sucesso")
				}
			}

			return err
		}
	}
}

// formatDuration formata a duração de forma humana
func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%d µs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%d ms", d.Milliseconds())
	} else {
		return fmt.Sprintf("%.2f s", d.Seconds())
	}
}

// LogPanicMiddleware captura panics nos handlers para que o laço do
// menu continue vivo
func LogPanicMiddleware() Middleware {
	return func(next Action) Action {
		return func(ctx context.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					isDev := log.IsDevelopment()

					// Captura a pilha de chamadas
					stack := make([]byte, 4096)
					stackSize := runtime.Stack(stack, false)
					stackTrace := string(stack[:stackSize])

					option := OptionFromContext(ctx)

					if isDev {
						log.L.WithFields(log.Fields{
							"error":  r,
							"option": option,
						}).Error("❌ PANIC na aplicação")

						// Em desenvolvimento, imprimir o stack trace diretamente no console
						fmt.Fprintf(os.Stderr, "\n\n=== STACK TRACE ===\n%s\n=================\n\n", stackTrace)
					} else {
						logger := log.L.WithFields(log.Fields{
							"correlation_id": log.GetCorrelationID(ctx),
							"panic_error":    r,
							"option":         option,
						})

						logger.Error("Erro não tratado na aplicação")
						logger.WithField("stack_trace", stackTrace).Error("Stack trace do erro")
					}

					err = fmt.Errorf("erro interno ao executar a opção: %v", r)
				}
			}()

			return next(ctx)
		}
	}
}
