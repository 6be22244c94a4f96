package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invtrack/internal/app/client"
)

func TestParseIDs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    []int
		wantErr bool
	}{
		{name: "separate args", args: []string{"1", "2"}, want: []int{1, 2}},
		{name: "comma separated", args: []string{"3,4", "5"}, want: []int{3, 4, 5}},
		{name: "empty parts skipped", args: []string{"6,,", " 7 "}, want: []int{6, 7}},
		{name: "no args", args: nil, want: nil},
		{name: "not a number", args: []string{"abc"}, wantErr: true},
		{name: "zero", args: []string{"0"}, wantErr: true},
		{name: "negative", args: []string{"-2"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseIDs(tt.args)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseID(t *testing.T) {
	id, err := ParseID("12")
	require.NoError(t, err)
	assert.Equal(t, 12, id)

	_, err = ParseID("1,2")
	assert.Error(t, err)

	_, err = ParseID("")
	assert.Error(t, err)
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteFile(dir, client.File{Name: "qr_labels_2.pdf", Data: []byte("%PDF-")})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "qr_labels_2.pdf"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-", string(data))
}
