package textio_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wshpack/internal/adapters/textio"
	"go.trai.ch/wshpack/internal/core/domain"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name  string
		data  []byte
		label string
		want  string
	}{
		{
			name: "plain utf-8",
			data: []byte("var a = 'あ';\n"),
			want: "var a = 'あ';\n",
		},
		{
			name: "utf-8 with bom",
			data: append([]byte{0xEF, 0xBB, 0xBF}, []byte("x = 1")...),
			want: "x = 1",
		},
		{
			name: "utf-16le with bom",
			data: []byte{0xFF, 0xFE, 'o', 0x00, 'k', 0x00},
			want: "ok",
		},
		{
			name: "utf-16be with bom",
			data: []byte{0xFE, 0xFF, 0x00, 'o', 0x00, 'k'},
			want: "ok",
		},
		{
			name:  "forced shift_jis",
			data:  []byte{0x82, 0xa0},
			label: "shift_jis",
			want:  "あ",
		},
		{
			name: "sniffed legacy bytes",
			data: []byte{'c', 'a', 'f', 0xE9},
			want: "café",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := textio.Decode(tt.data, tt.label)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecode_UnknownLabel(t *testing.T) {
	_, err := textio.Decode([]byte("x"), "klingon")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnknownEncoding))
}

func TestFormat(t *testing.T) {
	opts := domain.WriteOptions{EOL: "\r\n", TrimEnd: true}

	got := textio.Format("a  \n\n\tb\t\r\nc\rd\n", opts)

	assert.Equal(t, "a\r\n\tb\r\nc\r\nd\r\n", got)
}

func TestFormat_NoTrim(t *testing.T) {
	opts := domain.WriteOptions{EOL: "\r\n"}

	got := textio.Format("a  \n\nb", opts)

	assert.Equal(t, "a  \r\n\r\nb", got)
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		text string
		opts domain.WriteOptions
		want []byte
	}{
		{
			name: "utf-8 with bom",
			text: "x\n",
			opts: domain.DefaultWriteOptions(),
			want: []byte{0xEF, 0xBB, 0xBF, 'x', '\r', '\n'},
		},
		{
			name: "utf-8 without bom",
			text: "x",
			opts: domain.WriteOptions{Encoding: "utf-8"},
			want: []byte("x"),
		},
		{
			name: "utf-16le with bom",
			text: "ok",
			opts: domain.WriteOptions{Encoding: "utf-16le", BOM: true},
			want: []byte{0xFF, 0xFE, 'o', 0x00, 'k', 0x00},
		},
		{
			name: "legacy encoding never gets a bom",
			text: "あ",
			opts: domain.WriteOptions{Encoding: "shift_jis", BOM: true},
			want: []byte{0x82, 0xa0},
		},
		{
			name: "existing bom is not doubled",
			text: "\uFEFFx",
			opts: domain.WriteOptions{Encoding: "utf-8", BOM: true},
			want: []byte{0xEF, 0xBB, 0xBF, 'x'},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := textio.Encode(tt.text, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncode_Unrepresentable(t *testing.T) {
	_, err := textio.Encode("😀", domain.WriteOptions{Encoding: "shift_jis"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrWriteFailed)
}

func TestWriterReader_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dist", "nested", "out.js")

	err := textio.NewWriter().WriteText(path, "WScript.Echo('あ');  \n", domain.DefaultWriteOptions())
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xEF, 0xBB, 0xBF}, raw[:3])

	text, err := textio.NewReader().ReadText(path, "")
	require.NoError(t, err)
	assert.Equal(t, "WScript.Echo('あ');\r\n", text)
}

func TestReader_Missing(t *testing.T) {
	_, err := textio.NewReader().ReadText(filepath.Join(t.TempDir(), "nope.js"), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrReadFailed)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriter_Errors(t *testing.T) {
	t.Run("unrepresentable text", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.js")
		err := textio.NewWriter().WriteText(path, "😀", domain.WriteOptions{Encoding: "shift_jis"})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrWriteFailed)
	})

	t.Run("parent is a file", func(t *testing.T) {
		dir := t.TempDir()
		blocker := filepath.Join(dir, "dist")
		require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

		err := textio.NewWriter().WriteText(filepath.Join(blocker, "out.js"), "x", domain.DefaultWriteOptions())
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrWriteFailed)
	})
}
