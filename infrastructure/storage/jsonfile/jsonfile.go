package jsonfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrMalformed indica que o arquivo existe mas o conteúdo não é um
// JSON válido para o tipo esperado
var ErrMalformed = errors.New("conteúdo do arquivo inválido")

// Store lê e grava um documento JSON em um único arquivo. Cada
// gravação substitui o conteúdo inteiro de forma atômica.
type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

// Path devolve o caminho do arquivo gerenciado
func (s *Store) Path() string {
	return s.path
}

// Read carrega e desserializa o conteúdo completo do arquivo. A
// ausência do arquivo é reportada como os.ErrNotExist, para o chamador
// decidir se é um estado inicial válido.
func (s *Store) Read(v any) error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	return nil
}

// Write serializa o valor e substitui o arquivo de forma atômica: o
// conteúdo vai para um arquivo temporário no mesmo diretório, é
// sincronizado em disco e só então renomeado sobre o destino. Uma
// falha no meio da gravação nunca deixa o arquivo final pela metade.
func (s *Store) Write(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("erro ao serializar conteúdo de %s: %w", s.path, err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("erro ao criar diretório %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("erro ao criar arquivo temporário em %s: %w", dir, err)
	}

	if err := writeAndSync(tmp, data); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("erro ao gravar %s: %w", tmp.Name(), err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("erro ao substituir %s: %w", s.path, err)
	}

	return nil
}

func writeAndSync(f *os.File, data []byte) error {
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}

	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
