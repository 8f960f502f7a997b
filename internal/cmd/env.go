package cmd

import (
	"io"
	"os"
	"strconv"
	"time"

	"github.com/harrison/arbor/internal/config"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// detectEnvironment inspects the output stream and environment variables.
// Width comes from the terminal, then $COLUMNS; zero means unknown.
func detectEnvironment(out io.Writer) config.Environment {
	env := config.Environment{
		NoColor: os.Getenv("NO_COLOR") != "",
		Now:     time.Now(),
	}

	if f, ok := out.(*os.File); ok {
		fd := f.Fd()
		env.IsTerminal = isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
		if env.IsTerminal {
			if width, _, err := term.GetSize(int(fd)); err == nil && width > 0 {
				env.TerminalWidth = width
			}
		}
	}

	if env.TerminalWidth == 0 {
		if cols, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && cols > 0 {
			env.TerminalWidth = cols
		}
	}

	return env
}
