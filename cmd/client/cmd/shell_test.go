package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunShell(t *testing.T) {
	var calls []string
	var name string

	root := &cobra.Command{Use: "invtrack", SilenceUsage: true, SilenceErrors: true}
	echo := &cobra.Command{
		Use: "echo",
		RunE: func(_ *cobra.Command, args []string) error {
			calls = append(calls, name+":"+strings.Join(args, ","))
			return nil
		},
	}
	echo.Flags().StringVar(&name, "name", "default", "")
	root.AddCommand(echo)

	in := strings.NewReader("echo --name first a\n\necho b\nunknown\nexit\necho never\n")
	var out bytes.Buffer

	require.NoError(t, runShell(root, in, &out))

	assert.Equal(t, []string{"first:a", "default:b"}, calls)
	assert.Contains(t, out.String(), "unknown")
}

func TestRunShell_EOF(t *testing.T) {
	root := &cobra.Command{Use: "invtrack"}
	var out bytes.Buffer

	assert.NoError(t, runShell(root, strings.NewReader(""), &out))
}

func TestResetFlags(t *testing.T) {
	var page int
	root := &cobra.Command{Use: "invtrack"}
	sub := &cobra.Command{Use: "list"}
	sub.Flags().IntVar(&page, "page", 1, "")
	root.AddCommand(sub)

	require.NoError(t, sub.Flags().Set("page", "3"))
	assert.Equal(t, 3, page)

	resetFlags(root)

	assert.Equal(t, 1, page)
	assert.False(t, sub.Flags().Changed("page"))
}
