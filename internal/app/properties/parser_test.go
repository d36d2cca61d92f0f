package properties

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnmarshal(t *testing.T) {
	t.Run("separators", func(t *testing.T) {
		values, err := Parser().Unmarshal([]byte("a=1\nb:2\nc 3\nd = 4\ne\t:\t5\n  f=6\n"))
		require.NoError(t, err)
		require.Equal(t, map[string]interface{}{
			"a": "1",
			"b": "2",
			"c": "3",
			"d": "4",
			"e": "5",
			"f": "6",
		}, values)
	})

	t.Run("comments and blank lines", func(t *testing.T) {
		values, err := Parser().Unmarshal([]byte("# comment\n! also a comment\n\n   \nkeyAlias=upload\n"))
		require.NoError(t, err)
		require.Equal(t, map[string]interface{}{"keyAlias": "upload"}, values)
	})

	t.Run("line endings", func(t *testing.T) {
		values, err := Parser().Unmarshal([]byte("a=1\r\nb=2\rc=3"))
		require.NoError(t, err)
		require.Equal(t, map[string]interface{}{"a": "1", "b": "2", "c": "3"}, values)
	})

	t.Run("continuation", func(t *testing.T) {
		values, err := Parser().Unmarshal([]byte("storeFile=/very/long/\\\n    path/release.keystore\nkeyAlias=upload\n"))
		require.NoError(t, err)
		require.Equal(t, "/very/long/path/release.keystore", values["storeFile"])
		require.Equal(t, "upload", values["keyAlias"])
	})

	t.Run("continuation ends at blank line", func(t *testing.T) {
		values, err := Parser().Unmarshal([]byte("a=1\\\n\nb=2\n"))
		require.NoError(t, err)
		require.Equal(t, map[string]interface{}{"a": "1", "b": "2"}, values)
	})

	t.Run("even backslashes do not continue", func(t *testing.T) {
		values, err := Parser().Unmarshal([]byte("dir=C:\\\\\nb=2\n"))
		require.NoError(t, err)
		require.Equal(t, map[string]interface{}{"dir": "C:\\", "b": "2"}, values)
	})

	t.Run("escapes", func(t *testing.T) {
		values, err := Parser().Unmarshal([]byte("key\\ with\\=sep=tab\\there\\u0041\\z\n"))
		require.NoError(t, err)
		require.Equal(t, map[string]interface{}{"key with=sep": "tab\thereAz"}, values)
	})

	t.Run("value whitespace", func(t *testing.T) {
		values, err := Parser().Unmarshal([]byte("storePassword=  pw1  \n"))
		require.NoError(t, err)
		require.Equal(t, "pw1  ", values["storePassword"])
	})

	t.Run("empty value", func(t *testing.T) {
		values, err := Parser().Unmarshal([]byte("keyPassword=\n"))
		require.NoError(t, err)
		require.Equal(t, map[string]interface{}{"keyPassword": ""}, values)
	})

	t.Run("malformed lines skipped", func(t *testing.T) {
		values, err := Parser().Unmarshal([]byte("justakey\n=novalue\nbad=\\u12\nkeyAlias=upload\n"))
		require.NoError(t, err)
		require.Equal(t, map[string]interface{}{"keyAlias": "upload"}, values)
	})

	t.Run("last duplicate wins", func(t *testing.T) {
		values, err := Parser().Unmarshal([]byte("keyAlias=first\nkeyAlias=second\n"))
		require.NoError(t, err)
		require.Equal(t, "second", values["keyAlias"])
	})

	t.Run("latin-1", func(t *testing.T) {
		values, err := Parser().Unmarshal([]byte{'p', 'w', '=', 'c', 0xe9})
		require.NoError(t, err)
		require.Equal(t, "c\u00e9", values["pw"])
	})

	t.Run("utf-8", func(t *testing.T) {
		values, err := Parser().Unmarshal([]byte("pw=パスワード"))
		require.NoError(t, err)
		require.Equal(t, "パスワード", values["pw"])
	})

	t.Run("surrogate pair escapes", func(t *testing.T) {
		values, err := Parser().Unmarshal([]byte("pw=\\uD83D\\uDE00\nkeyAlias=a\\ud83d\\ude00z\n"))
		require.NoError(t, err)
		require.Equal(t, "\U0001F600", values["pw"])
		require.Equal(t, "a\U0001F600z", values["keyAlias"])
	})

	t.Run("unpaired surrogate escapes", func(t *testing.T) {
		values, err := Parser().Unmarshal([]byte("high=\\uD83Dx\nlow=\\uDE00\nnext=\\uD83D\\u0041\nend=\\uD83D\n"))
		require.NoError(t, err)
		require.Equal(t, "\uFFFDx", values["high"])
		require.Equal(t, "\uFFFD", values["low"])
		require.Equal(t, "\uFFFDA", values["next"])
		require.Equal(t, "\uFFFD", values["end"])
	})
}

func TestMarshal(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		original := map[string]interface{}{
			"storeFile":     "release.keystore",
			"storePassword": " leading space and #hash!",
			"keyAlias":      "up:load=",
			"keyPassword":   "multi\nline\\",
			"spaced key":    "value",
		}

		raw, err := Parser().Marshal(original)
		require.NoError(t, err)

		decoded, err := Parser().Unmarshal(raw)
		require.NoError(t, err)
		require.Equal(t, original, decoded)
	})

	t.Run("sorted", func(t *testing.T) {
		raw, err := Parser().Marshal(map[string]interface{}{"b": 2, "a": "1", "c": nil})
		require.NoError(t, err)
		require.Equal(t, "a=1\nb=2\nc=\n", string(raw))
	})

	t.Run("empty key", func(t *testing.T) {
		_, err := Parser().Marshal(map[string]interface{}{"": "value"})
		require.Error(t, err)
	})
}
