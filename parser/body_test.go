package parser

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestParseBody(t *testing.T) {
	tests := []struct {
		name string
		body string
		want map[string]string
	}{
		{
			name: "two pairs",
			body: `{"key1": "value1", "key2": "value2"}`,
			want: map[string]string{"key1": "value1", "key2": "value2"},
		},
		{
			name: "three pairs",
			body: `{"key1": "value1", "key2": "value2", "key3": "value3"}`,
			want: map[string]string{"key1": "value1", "key2": "value2", "key3": "value3"},
		},
		{
			name: "empty object",
			body: `{}`,
			want: map[string]string{},
		},
		{
			name: "surrounding whitespace",
			body: "\n\n  {\"a\": \"b\"}  \n\n",
			want: map[string]string{"a": "b"},
		},
		{
			name: "values with spaces and escapes",
			body: `{"msg": "hello, world: \"quoted\"", "path": "C:\\tmp", "emoji": "\u00e9"}`,
			want: map[string]string{"msg": `hello, world: "quoted"`, "path": `C:\tmp`, "emoji": "é"},
		},
		{
			name: "literal values",
			body: `{"n": 42, "f": 1.5e3, "ok": true, "none": null}`,
			want: map[string]string{"n": "42", "f": "1.5e3", "ok": "true", "none": "null"},
		},
		{
			name: "nested values kept as text",
			body: `{"obj": { "a" : 1 }, "list": [1, 2]}`,
			want: map[string]string{"obj": `{"a":1}`, "list": `[1,2]`},
		},
		{
			name: "duplicate key",
			body: `{"a": "1", "a": "2"}`,
			want: map[string]string{"a": "2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBody(tt.body)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParseBodyAbsent(t *testing.T) {
	for _, body := range []string{"", "   \n", "\r\n\t"} {
		got, err := ParseBody(body)
		require.NoError(t, err)
		require.Nil(t, got, "%q", body)
	}
}

func TestParseBodyMalformed(t *testing.T) {
	bodies := []string{
		`{"key1": "value1", "key2"`,
		`{key1: value1}`,
		`{"a": "b"} trailing`,
		`{"a": "b"}{"c": "d"}`,
		`["a", "b"]`,
		`"just a string"`,
		`key1=value1`,
	}

	for _, body := range bodies {
		got, err := ParseBody(body)
		require.Error(t, err, body)
		require.Nil(t, got, body)
		require.True(t, errors.Is(err, ErrMalformedBody), "%q: %v", body, err)
	}
}
