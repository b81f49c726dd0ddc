package edit

import (
	"bytes"
	"testing"

	"github.com/revelaction/dragonfly/dict"
	"github.com/revelaction/dragonfly/storage/filesystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cmd, err := parse("add  addis ababa | Addis Ababa | gpe ")
	require.NoError(t, err)
	assert.Equal(t, command{action: actionAdd, source: "addis ababa", translation: "Addis Ababa", typ: "gpe"}, cmd)

	cmd, err = parse("del asmara")
	require.NoError(t, err)
	assert.Equal(t, command{action: actionDelete, source: "asmara"}, cmd)

	cmd, err = parse("quit")
	require.NoError(t, err)
	assert.Equal(t, actionQuit, cmd.action)

	for _, in := range []string{"add a | b", "add a | | PER", "del", "show ", "rename a b"} {
		_, err := parse(in)
		assert.Error(t, err, in)
	}
}

func newHandler(t *testing.T) (*Handler, *bytes.Buffer) {
	m := dict.NewManager(filesystem.NewDictStore(t.TempDir()), nil)
	var out bytes.Buffer
	h := NewHandler(m, "tir", &out)
	require.NoError(t, h.reload())
	return h, &out
}

func TestExec(t *testing.T) {
	h, out := newHandler(t)

	require.NoError(t, h.exec(command{action: actionAdd, source: "Asmara", translation: "Asmara", typ: "g"}))
	assert.Contains(t, out.String(), "asmara → Asmara (GPE)")
	assert.Contains(t, h.dict, "asmara")

	out.Reset()
	require.NoError(t, h.exec(command{action: actionShow, source: "ASMARA"}))
	assert.Contains(t, out.String(), "asmara → Asmara (GPE)")

	require.NoError(t, h.exec(command{action: actionDelete, source: "asmara"}))
	assert.NotContains(t, h.dict, "asmara")

	out.Reset()
	require.NoError(t, h.exec(command{action: actionDelete, source: "asmara"}))
	assert.Contains(t, out.String(), "does not exist")
}

func TestSuggest(t *testing.T) {
	h, _ := newHandler(t)
	require.NoError(t, h.exec(command{action: actionAdd, source: "asmara", translation: "Asmara", typ: "GPE"}))
	require.NoError(t, h.exec(command{action: actionAdd, source: "assab", translation: "Assab", typ: "GPE"}))

	texts := func(in string) []string {
		var ts []string
		for _, s := range h.suggest(in) {
			ts = append(ts, s.Text)
		}
		return ts
	}

	assert.Empty(t, texts(""))
	assert.Equal(t, []string{"add"}, texts("a"))
	assert.Equal(t, []string{"asmara", "assab"}, texts("del as"))
	assert.Equal(t, []string{"assab"}, texts("show ass"))
	assert.Empty(t, texts("show assab"))
	assert.Equal(t, []string{"GPE"}, texts("add x | X | g"))
	assert.Equal(t, dict.EntityTypes, texts("add x | X | "))
}
