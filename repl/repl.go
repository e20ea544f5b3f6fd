/*
File    : glint/repl/repl.go
*/

// Package repl implements the interactive Read-Eval-Print Loop: line
// editing and history via chzyer/readline, colored feedback via
// fatih/color, driving the lexer/parser/eval pipeline one input line
// at a time. Grounded on the teacher's
// repl/repl.go, rebuilt against parser.Parse/eval.Interpreter.
package repl

import (
	"io"
	"strings"

	"github.com/akashmaji946/glint/eval"
	"github.com/akashmaji946/glint/parser"
	"github.com/akashmaji946/glint/std"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the cosmetic configuration for an interactive session.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

func NewRepl(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to glint!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL loop against a single Interpreter whose global
// scope carries state across lines, until the user exits or EOF is hit.
func (r *Repl) Start(writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	it := eval.New("<repl>")
	it.SetWriter(writer)
	std.SetOutput(func(s string) { io.WriteString(writer, s) })
	std.Register(it.Global, it)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}
		rl.SaveHistory(line)

		if r.executeWithRecovery(writer, line, it) {
			writer.Write([]byte("Good Bye!\n"))
			break
		}
	}
}

// executeWithRecovery runs one line and reports whether the session
// should end: an exit() call ends the REPL session itself, it never
// calls os.Exit the way cmd/glint's file-execution path does.
func (r *Repl) executeWithRecovery(writer io.Writer, line string, it *eval.Interpreter) (shouldExit bool) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	program, perr := parser.Parse("<repl>", line)
	if perr != nil {
		redColor.Fprintf(writer, "%s", perr.Render())
		return false
	}

	result := it.Run(program)
	if result.Err != nil {
		redColor.Fprintf(writer, "%s", result.Err.Render())
		return false
	}
	if result.IsExit {
		return true
	}
	if result.Value != nil {
		yellowColor.Fprintf(writer, "%s\n", result.Value.Inspect())
	}
	return false
}
