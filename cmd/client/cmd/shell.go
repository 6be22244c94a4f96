package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// interactive выставляется на время сессии shell: приложение и выбор
// устройств живут между командами
var interactive bool

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Интерактивная сессия",
	Long: `Читает команды построчно и выполняет их в одном приложении.
Фильтры, страница и выбор устройств сохраняются между командами.
Выход: exit или Ctrl+D.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if interactive {
			return errors.New("сессия уже запущена")
		}
		interactive = true
		defer func() { interactive = false }()

		return runShell(cmd.Root(), os.Stdin, cmd.OutOrStdout())
	},
}

func runShell(root *cobra.Command, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	prompt := color.CyanString("invtrack> ")

	for {
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		args := strings.Fields(scanner.Text())
		if len(args) == 0 {
			continue
		}
		if args[0] == "exit" || args[0] == "quit" {
			return nil
		}

		root.SetArgs(args)
		if err := root.Execute(); err != nil {
			fmt.Fprintf(out, "%s %v\n", color.RedString("Ошибка:"), err)
		}
		resetFlags(root)
	}
}

// resetFlags возвращает флаги всех команд к значениям по умолчанию, иначе
// значения прошлой команды попадут в следующую
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if f.Changed {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		}
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}
