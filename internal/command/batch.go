// SPDX-License-Identifier: MIT

package command

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/google/shlex"
)

// batch replays a script: one invocation per line, shell quoting rules,
// blank lines and lines starting with '#' skipped. The exit code is the
// highest code any line produced.
func (r *Runner) batch(c BatchCmd) int {
	f, err := os.Open(c.Script)
	if err != nil {
		r.Log.Printf("could not open batch script: %v", err)
		return ExitFailure
	}
	defer f.Close()

	return r.RunScript(c.Script, f)
}

// RunScript executes every invocation read from src. name labels log lines.
func (r *Runner) RunScript(name string, src io.Reader) int {
	code := ExitOK
	sc := bufio.NewScanner(src)
	for lineNo := 1; sc.Scan(); lineNo++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		args, err := shlex.Split(line)
		if err != nil {
			r.Log.Printf("%s:%d: %v", name, lineNo, err)
			code = max(code, ExitFailure)
			continue
		}

		cmd, err := Parse(args)
		if err == nil && cmd.Op() == OpBatch {
			err = &ParseError{Op: OpBatch.String(), Err: ErrNestedBatch}
		}
		if errors.Is(err, ErrNestedBatch) {
			r.Log.Printf("%s:%d: %v", name, lineNo, err)
			code = max(code, ExitFailure)
			continue
		}
		if err != nil {
			code = max(code, r.reportParseError(err))
			continue
		}

		if r.Config.Verbose {
			r.Log.Printf("%s:%d: %s", name, lineNo, line)
		}
		code = max(code, r.Run(cmd))
	}
	if err := sc.Err(); err != nil {
		r.Log.Printf("%s: %v", name, err)
		code = max(code, ExitFailure)
	}

	return code
}
