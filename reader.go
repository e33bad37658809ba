package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
)

// lineReader abstracts over the two input paths: readline with history
// on a real terminal, a plain scanner otherwise.
type lineReader interface {
	ReadLine(prompt string) (string, error)
	Close() error
}

type scannerReader struct {
	scanner *bufio.Scanner
	echo    io.Writer // prompt destination, nil to suppress
}

func newScannerReader(r io.Reader, echo io.Writer) *scannerReader {
	return &scannerReader{scanner: bufio.NewScanner(r), echo: echo}
}

func (r *scannerReader) ReadLine(prompt string) (string, error) {
	if r.echo != nil {
		fmt.Fprint(r.echo, prompt)
	}
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return r.scanner.Text(), nil
}

func (r *scannerReader) Close() error {
	return nil
}

// termReader wraps liner for history navigation and line editing.
type termReader struct {
	line        *liner.State
	historyFile string
}

func newTermReader(historyFile string) *termReader {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	r := &termReader{line: line, historyFile: historyFile}
	r.loadHistory()
	return r
}

func (r *termReader) loadHistory() {
	if r.historyFile == "" {
		return
	}
	if f, err := os.Open(r.historyFile); err == nil {
		r.line.ReadHistory(f)
		f.Close()
	}
}

func (r *termReader) saveHistory() {
	if r.historyFile == "" {
		return
	}
	f, err := os.OpenFile(r.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return
	}
	defer f.Close()
	r.line.WriteHistory(f)
}

func (r *termReader) ReadLine(prompt string) (string, error) {
	input, err := r.line.Prompt(prompt)
	if err == liner.ErrPromptAborted {
		return "", io.EOF
	}
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		r.line.AppendHistory(input)
	}
	return input, nil
}

func (r *termReader) Close() error {
	r.saveHistory()
	return r.line.Close()
}
