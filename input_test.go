package tomlpretty_test

import (
	"errors"
	"strings"
	"testing"

	tomlpretty "github.com/mbecker20/toml-pretty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, errRead }

var errRead = errors.New("read failed")

func TestParseInputFormat(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input   string
		want    tomlpretty.InputFormat
		wantErr require.ErrorAssertionFunc
	}{
		"json":    {input: "json", want: tomlpretty.JSON, wantErr: require.NoError},
		"yaml":    {input: "yaml", want: tomlpretty.YAML, wantErr: require.NoError},
		"yml":     {input: "yml", want: tomlpretty.YAML, wantErr: require.NoError},
		"unknown": {input: "xml", want: "", wantErr: require.Error},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := tomlpretty.ParseInputFormat(tt.input)
			tt.wantErr(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseInputFormatUnsupported(t *testing.T) {
	t.Parallel()
	_, err := tomlpretty.ParseInputFormat("toml")
	assert.ErrorIs(t, err, tomlpretty.ErrUnsupportedFormat)
}

func TestInputFormats(t *testing.T) {
	t.Parallel()
	got := tomlpretty.InputFormats()
	assert.Equal(t, []tomlpretty.InputFormat{tomlpretty.JSON, tomlpretty.YAML}, got)
	// Returned slice must be a copy.
	got[0] = "modified"
	assert.Equal(t, tomlpretty.JSON, tomlpretty.InputFormats()[0])
	assert.Equal(t, "yaml", tomlpretty.YAML.String())
}

func TestInputFormatFor(t *testing.T) {
	t.Parallel()
	tests := map[string]tomlpretty.InputFormat{
		"data.json":      tomlpretty.JSON,
		"DATA.JSON":      tomlpretty.JSON,
		"conf.yaml":      tomlpretty.YAML,
		"conf.yml":       tomlpretty.YAML,
		"noext":          tomlpretty.YAML,
		"dir.json/other": tomlpretty.YAML,
	}
	for path, want := range tests {
		t.Run(path, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, want, tomlpretty.InputFormatFor(path))
		})
	}
}

func TestDecode(t *testing.T) {
	t.Parallel()
	want := tomlpretty.Object{
		{Key: "name", Value: tomlpretty.String("Jonathan")},
		{Key: "tags", Value: tomlpretty.Array{tomlpretty.String("a")}},
	}
	tests := map[string]struct {
		input  string
		format tomlpretty.InputFormat
	}{
		"json":         {input: `{"name": "Jonathan", "tags": ["a"]}`, format: tomlpretty.JSON},
		"yaml":         {input: "name: Jonathan\ntags: [a]\n", format: tomlpretty.YAML},
		"json as yaml": {input: `{"name": "Jonathan", "tags": ["a"]}`, format: tomlpretty.YAML},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := tomlpretty.Decode(strings.NewReader(tt.input), tt.format)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		decode func() error
		want   error
	}{
		"empty yaml": {
			decode: func() error {
				_, err := tomlpretty.Decode(strings.NewReader(""), tomlpretty.YAML)
				return err
			},
			want: tomlpretty.ErrProjection,
		},
		"bad yaml": {
			decode: func() error {
				_, err := tomlpretty.Decode(strings.NewReader("a: [1"), tomlpretty.YAML)
				return err
			},
			want: tomlpretty.ErrProjection,
		},
		"bad json": {
			decode: func() error {
				_, err := tomlpretty.Decode(strings.NewReader("{"), tomlpretty.JSON)
				return err
			},
			want: tomlpretty.ErrProjection,
		},
		"read failure": {
			decode: func() error {
				_, err := tomlpretty.Decode(errReader{}, tomlpretty.JSON)
				return err
			},
			want: errRead,
		},
		"unsupported": {
			decode: func() error {
				_, err := tomlpretty.Decode(strings.NewReader("{}"), "xml")
				return err
			},
			want: tomlpretty.ErrUnsupportedFormat,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.ErrorIs(t, tt.decode(), tt.want)
		})
	}
}

func TestDecodeThenRender(t *testing.T) {
	t.Parallel()
	input := `
server:
  host: example.com
  ports: [80, 443]
  tls: {}
users:
  - name: a
  - name: b
`
	v, err := tomlpretty.Decode(strings.NewReader(input), tomlpretty.YAML)
	require.NoError(t, err)
	got, err := tomlpretty.ToString(v, tomlpretty.DefaultOptions().WithSkipEmptyObject(false))
	require.NoError(t, err)
	assert.Equal(t, "server.host = \"example.com\"\n"+
		"server.ports = [80, 443]\n"+
		"server.tls = {}\n"+
		"users = [{ name = \"a\" }, { name = \"b\" }]", got)
}
