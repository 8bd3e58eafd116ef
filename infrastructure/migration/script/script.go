// Script de migração do histórico legado de vendas (CSV) para o
// formato atual do arquivo de dados.
//
// O CSV legado tem as colunas: identifier, description, amount,
// timestamp. Os identificadores são reatribuídos em sequência durante
// a migração, então lacunas e duplicidades do arquivo antigo não
// impedem a conversão.
//
// Uso: go run infrastructure/migration/script/script.go [legado.csv] [destino.json]
package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vfg2006/sales-tracker/infrastructure/storage/jsonfile"
	"github.com/vfg2006/sales-tracker/internal/domain"
)

const (
	defaultLegacyFile = "sales_legacy.csv"
	defaultDataFile   = "sales_data.json"
)

func setupLogger() {
	// Configura o logger para incluir data, hora e arquivo
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("Iniciando script de migração do histórico de vendas...")
}

func main() {
	setupLogger()

	legacyFile := defaultLegacyFile
	dataFile := defaultDataFile

	if len(os.Args) > 1 {
		legacyFile = os.Args[1]
	}
	if len(os.Args) > 2 {
		dataFile = os.Args[2]
	}

	log.Printf("Arquivo legado: %s", legacyFile)
	log.Printf("Arquivo de destino: %s", dataFile)

	if _, err := os.Stat(dataFile); err == nil {
		log.Fatalf("ERRO: o arquivo de destino %s já existe; remova-o antes de migrar", dataFile)
	}

	f, err := os.Open(legacyFile)
	if err != nil {
		log.Fatalf("ERRO ao abrir o arquivo legado: %v", err)
	}
	defer f.Close()

	startTime := time.Now()

	ledger, successCount, errorCount := convertLegacyRecords(csv.NewReader(f))
	if successCount == 0 {
		log.Fatalf("ERRO: nenhum registro válido encontrado em %s", legacyFile)
	}

	if err := jsonfile.New(dataFile).Write(ledger); err != nil {
		log.Fatalf("ERRO ao gravar o arquivo de dados: %v", err)
	}

	elapsed := time.Since(startTime)
	log.Printf("Migração concluída em %v. Sucesso: %d, Erros: %d", elapsed, successCount, errorCount)
}

// convertLegacyRecords lê o CSV legado e monta o livro-razão no formato
// atual, reatribuindo os identificadores em sequência.
func convertLegacyRecords(reader *csv.Reader) (*domain.Ledger, int, int) {
	reader.FieldsPerRecord = 4
	reader.TrimLeadingSpace = true

	ledger := domain.NewLedger()
	successCount := 0
	errorCount := 0
	line := 0

	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		line++

		if err != nil {
			log.Printf("ERRO ao ler a linha %d: %v", line, err)
			errorCount++
			continue
		}

		if line == 1 && isHeader(row) {
			log.Println("Cabeçalho detectado na primeira linha, ignorando")
			continue
		}

		record, err := parseLegacyRecord(row)
		if err != nil {
			log.Printf("ERRO na linha %d: %v", line, err)
			errorCount++
			continue
		}

		record.ID = ledger.NextID
		ledger.Records = append(ledger.Records, record)
		ledger.NextID++
		successCount++

		if successCount%10 == 0 {
			log.Printf("Progresso: %d registros convertidos", successCount)
		}
	}

	return ledger, successCount, errorCount
}

func isHeader(row []string) bool {
	return len(row) > 0 && strings.EqualFold(strings.TrimSpace(row[0]), "identifier")
}

// parseLegacyRecord valida uma linha do CSV legado. O identificador da
// primeira coluna é ignorado porque a numeração é refeita.
func parseLegacyRecord(row []string) (*domain.SaleRecord, error) {
	description := strings.TrimSpace(row[1])
	if description == "" {
		return nil, errors.New("descrição vazia")
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(row[2]))
	if err != nil {
		return nil, fmt.Errorf("valor inválido %q: %v", row[2], err)
	}

	if amount.IsNegative() {
		return nil, fmt.Errorf("valor negativo: %s", amount.String())
	}

	timestamp, err := parseLegacyTimestamp(strings.TrimSpace(row[3]))
	if err != nil {
		return nil, err
	}

	return &domain.SaleRecord{
		Description: description,
		Amount:      amount,
		Timestamp:   timestamp,
	}, nil
}

// parseLegacyTimestamp aceita os formatos de data usados pelas versões
// antigas do painel.
func parseLegacyTimestamp(value string) (time.Time, error) {
	formats := []string{
		time.RFC3339,
		"2006-01-02 15:04:05",
		time.DateOnly,
	}

	for _, format := range formats {
		if timestamp, err := time.Parse(format, value); err == nil {
			return timestamp, nil
		}
	}

	return time.Time{}, fmt.Errorf("timestamp inválido: %q", value)
}
