package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Console concentra a interação com o usuário: leitura de linhas,
// leitura de senha sem eco e escrita formatada.
type Console struct {
	in          *bufio.Reader
	out         io.Writer
	interactive bool
	stdinFd     int
}

// New cria um console sobre os streams padrão do processo
func New() *Console {
	stdinFd := int(os.Stdin.Fd())

	return &Console{
		in:          bufio.NewReader(os.Stdin),
		out:         os.Stdout,
		interactive: term.IsTerminal(stdinFd),
		stdinFd:     stdinFd,
	}
}

// NewWithStreams cria um console sobre streams arbitrários, útil para
// entrada roteirizada
func NewWithStreams(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Writer expõe a saída do console
func (c *Console) Writer() io.Writer {
	return c.out
}

// Printf escreve uma mensagem formatada para o usuário
func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// Println escreve uma linha para o usuário
func (c *Console) Println(args ...any) {
	fmt.Fprintln(c.out, args...)
}

// ReadLine exibe o prompt e lê uma linha da entrada. Apenas o
// terminador de linha é removido: espaços fazem parte do conteúdo.
func (c *Console) ReadLine(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprint(c.out, prompt)
	}

	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}

	return trimLineEnding(line), nil
}

// ReadPassword exibe o prompt e lê a senha sem eco quando a entrada é
// um terminal. Fora do terminal cai na leitura de linha comum.
func (c *Console) ReadPassword(prompt string) (string, error) {
	if !c.interactive {
		return c.ReadLine(prompt)
	}

	fmt.Fprint(c.out, prompt)

	passwordBytes, err := term.ReadPassword(c.stdinFd)
	fmt.Fprintln(c.out)
	if err != nil {
		return "", fmt.Errorf("erro ao ler a senha: %w", err)
	}

	return string(passwordBytes), nil
}

func trimLineEnding(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
