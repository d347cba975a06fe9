// Package cli runs the interactive loop that answers instruction files one at a time.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/bastiangx/wordcost/internal/utils"
	"github.com/bastiangx/wordcost/pkg/config"
	"github.com/bastiangx/wordcost/pkg/dictionary"
	"github.com/bastiangx/wordcost/pkg/search"
	"github.com/charmbracelet/log"
)

// exitCommand ends the loop.
const exitCommand = "exit"

// InputHandler reads instruction file names, answers each one against the
// loaded dictionary and prints the result.
type InputHandler struct {
	dict         *dictionary.Index
	options      []search.Option
	resolver     *utils.PathResolver
	in           io.Reader
	out          io.Writer
	requestCount int
}

// NewInputHandler creates a handler on stdin/stdout.
func NewInputHandler(dict *dictionary.Index, resolver *utils.PathResolver, opts ...search.Option) *InputHandler {
	return NewInputHandlerWithIO(dict, resolver, os.Stdin, os.Stdout, opts...)
}

// NewInputHandlerWithIO creates a handler over arbitrary streams. resolver may be nil.
func NewInputHandlerWithIO(dict *dictionary.Index, resolver *utils.PathResolver, in io.Reader, out io.Writer, opts ...search.Option) *InputHandler {
	return &InputHandler{
		dict:     dict,
		options:  opts,
		resolver: resolver,
		in:       in,
		out:      out,
	}
}

// Start begins the interface loop. It returns nil on "exit" or end of input.
func (h *InputHandler) Start() error {
	reader := bufio.NewReader(h.in)
	fmt.Fprintf(h.out, "wordcost: enter an instruction file (or %q to quit)\n", exitCommand)

	for {
		fmt.Fprint(h.out, "> ")
		line, err := reader.ReadString('\n')
		name := strings.TrimSpace(line)
		if name == exitCommand {
			return nil
		}
		if name != "" {
			h.handleInput(name)
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
	}
}

// handleInput answers one instruction file. Failures are reported and the loop goes on.
func (h *InputHandler) handleInput(name string) {
	h.requestCount++
	line, err := h.answer(name)
	if err != nil {
		log.Errorf("Could not use instruction: %v", err)
		fmt.Fprintf(h.out, "error: %v\n", err)
		return
	}
	fmt.Fprintln(h.out, line)
}

// answer loads the named instruction file and returns its result line.
func (h *InputHandler) answer(name string) (string, error) {
	path := name
	if h.resolver != nil {
		path = h.resolver.Resolve(name)
	}

	inst, err := config.LoadInstruction(path)
	if err != nil {
		return "", err
	}

	start := time.Now()
	c := search.New(inst.Costs, h.dict, h.options...).FindMinimumCost(inst.Origin, inst.Target)
	log.Debugf("Took [ %v ] for %s -> %s (%s)", time.Since(start), inst.Origin, inst.Target, inst.Costs)
	return FormatResult(inst, c), nil
}

// FormatResult renders the answer line for one instruction.
func FormatResult(inst config.Instruction, c int) string {
	return fmt.Sprintf("cost from %s to %s is %d", inst.Origin, inst.Target, c)
}
