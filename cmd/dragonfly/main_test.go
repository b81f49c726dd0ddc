package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const corpusFile = "TOKEN\tPOS\nHi\tUH\nthere\tRB\n\nab\tNN\nc\tNN\n"

func write(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// run runs the app with a fresh settings directory.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	ui := UI{Out: &out, Err: &errOut}

	argv := append([]string{"dragonfly", "--config-dir", t.TempDir(), "--log-level", "error"}, args...)
	err := newApp(ui).Run(argv)
	return out.String(), errOut.String(), err
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "dragonfly version dev (commit: none)\n", out)
}

func TestSettings(t *testing.T) {
	out, _, err := run(t, "settings")
	require.NoError(t, err)
	assert.Contains(t, out, "settings.yaml")
	assert.Contains(t, out, "column_width: 10")
	assert.Contains(t, out, "dict_backend: json")
}

func TestInvalidLogLevel(t *testing.T) {
	_, _, err := run(t, "--log-level", "loud", "version")
	require.Error(t, err)
}

func TestLoadText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	write(t, path, corpusFile)
	write(t, path+".anno", "Hi\tO\nthere\tO\n\nab\tB-PER\nc\tI-PER\n")
	write(t, path+".eng", "Hello there\n")

	out, _, err := run(t, "load", "--no-color", path)
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	assert.Equal(t, "✍  0", lines[0])
	assert.Equal(t, "TOKEN     POS", lines[1])
	assert.Equal(t, "Hi        UH        O", lines[2])
	assert.Contains(t, out, "ab        NN        B-PER")
	assert.Contains(t, out, "🌐 Hello there")
}

func TestLoadRange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	write(t, path, corpusFile)

	out, _, err := run(t, "load", "--no-color", "--start", "1", "-n", "1", path)
	require.NoError(t, err)
	assert.NotContains(t, out, "Hi")
	assert.Contains(t, out, "✍  1")
}

func TestLoadJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	write(t, path, corpusFile)

	out, _, err := run(t, "load", "--format", "json", path)
	require.NoError(t, err)

	var got struct {
		NumSentences   int  `json:"num_sentences"`
		NumTokens      int  `json:"num_tokens"`
		HasAnnotations bool `json:"has_annotations"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 2, got.NumSentences)
	assert.Equal(t, 4, got.NumTokens)
	assert.False(t, got.HasAnnotations)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	write(t, path, corpusFile)

	_, _, err := run(t, "load")
	require.Error(t, err)

	_, _, err = run(t, "load", "--format", "xml", path)
	require.Error(t, err)

	_, _, err = run(t, "load", filepath.Join(dir, "missing.txt"))
	require.Error(t, err)

	// the annotation file has one sentence, the document two
	write(t, path+".anno", "Hi\tO\nthere\tO\n")
	_, _, err = run(t, "load", path)
	require.Error(t, err)
}

func TestLoadDirectory(t *testing.T) {
	dir := t.TempDir()
	write(t, filepath.Join(dir, "a.txt"), "TOKEN\tPOS\nalpha\tNN\n")
	write(t, filepath.Join(dir, "b.txt"), "TOKEN\tPOS\nbeta\tNN\n")
	write(t, filepath.Join(dir, "c.txt"), "TOKEN\tPOS\ngamma\tNN\n")

	out, _, err := run(t, "load", "--no-color", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "alpha")
	assert.Contains(t, out, "➡  next: b.txt\n")

	out, _, err = run(t, "load", "--no-color", "--file", "b.t", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "beta")
	assert.NotContains(t, out, "alpha")
	assert.Contains(t, out, "➡  next: c.txt\n")

	out, _, err = run(t, "load", "--no-color", "--file", "c.txt", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "gamma")
	assert.NotContains(t, out, "next:")

	_, _, err = run(t, "load", "--file", "zzz", dir)
	require.Error(t, err)

	_, _, err = run(t, "load", t.TempDir())
	require.Error(t, err)
}

func TestLoadCompanionDirFlag(t *testing.T) {
	dir := t.TempDir()
	annoDir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	write(t, path, corpusFile)
	write(t, filepath.Join(annoDir, "doc.txt.anno"), "Hi\tO\nthere\tO\n\nab\tB-PER\nc\tI-PER\n")

	out, _, err := run(t, "load", "--no-color", "--anno-dir", annoDir, path)
	require.NoError(t, err)
	assert.Contains(t, out, "B-PER")
}

func TestBatch(t *testing.T) {
	dir := t.TempDir()
	write(t, filepath.Join(dir, "a.txt"), corpusFile)
	write(t, filepath.Join(dir, "b.txt"), "TOKEN\tPOS\nOne\tCD\n")
	write(t, filepath.Join(dir, "b.txt.eng"), "One\n")
	write(t, filepath.Join(dir, "notes.md"), "ignored")

	out, _, err := run(t, "batch", "--quiet", "--workers", "2", dir)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "a.txt: 2 sentences, 4 tokens", lines[0])
	assert.Equal(t, "b.txt: 1 sentences, 1 tokens +eng", lines[1])
	assert.Equal(t, "Num docs 2, num sentences 3, num tokens 5, num tokens per sentence 1", lines[2])
	assert.Equal(t, "Annotated 0, translated 1, with char weights 0", lines[3])
}

func TestBatchBadCompanionsArePerFile(t *testing.T) {
	dir := t.TempDir()
	write(t, filepath.Join(dir, "a.txt"), corpusFile)
	// the weight row of sentence 1 ("ab c") needs 4 symbols
	write(t, filepath.Join(dir, "b.txt"), corpusFile)
	write(t, filepath.Join(dir, "b.txt.cm"), "123456789\n")
	// one annotated sentence for a document of two
	write(t, filepath.Join(dir, "c.txt"), corpusFile)
	write(t, filepath.Join(dir, "c.txt.anno"), "Hi\tO\nthere\tO\n")

	out, _, err := run(t, "batch", "--quiet", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 3 files")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "a.txt: 2 sentences, 4 tokens", lines[0])
	assert.Equal(t, "b.txt: 2 sentences, 4 tokens", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "c.txt: error: "), lines[2])
	assert.Equal(t, "Num docs 2, num sentences 4, num tokens 8, num tokens per sentence 2", lines[3])
	assert.Equal(t, "Annotated 0, translated 0, with char weights 0", lines[4])
}

func TestBatchEmptyDir(t *testing.T) {
	dir := t.TempDir()
	out, _, err := run(t, "batch", "--quiet", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "No .txt files")
}

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	outDir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	write(t, path, corpusFile)
	write(t, path+".anno", "Hi\tO\nthere\tO\n\nab\tB-PER\nc\tI-PER\n")

	out, _, err := run(t, "write", "--out", outDir, path)
	require.NoError(t, err)

	annoPath := filepath.Join(outDir, "doc.txt.anno")
	assert.Equal(t, "Wrote "+annoPath+"\n", out)

	b, err := os.ReadFile(annoPath)
	require.NoError(t, err)
	assert.Equal(t, "Hi\tO\nthere\tO\n\nab\tB-PER\nc\tI-PER\n\n", string(b))
}

func TestStats(t *testing.T) {
	dir := t.TempDir()
	write(t, filepath.Join(dir, "a.bio"), "Barack\tB-PER\nObama\tI-PER\nvisited\tO\nParis\tB-GPE\n\nObama\tB-PER\n")
	write(t, filepath.Join(dir, "b.bio"), "UN\tB-ORG\n")

	out, _, err := run(t, "stats", "-v", dir)
	require.NoError(t, err)

	assert.Contains(t, out, "2 Documents\n")
	assert.Contains(t, out, "4 Entity Tags\n")
	assert.Contains(t, out, "4 Unique Entity Tags\n")
	assert.Contains(t, out, "PER: 2 Entities\n")
	assert.Contains(t, out, "PER: 2 Unique Entities\n")
	assert.Contains(t, out, "GPE\n\nparis\t1\n")
}

func TestDictJSON(t *testing.T) {
	testDict(t, "json")
}

func TestDictSQLite(t *testing.T) {
	testDict(t, "sqlite")
}

func testDict(t *testing.T, backend string) {
	dictDir := t.TempDir()
	dictArgs := func(args ...string) []string {
		return append([]string{"dict", "--dict-dir", dictDir, "--backend", backend}, args...)
	}

	importFile := filepath.Join(t.TempDir(), "tir.tsv")
	write(t, importFile, "asmara\tAsmara\tGPE\nbroken line\nmassawa\tMassawa\tGPE\n")

	out, _, err := run(t, dictArgs("import", "tir", importFile)...)
	require.NoError(t, err)
	assert.Equal(t, "Imported 2 entries into tir\n", out)

	out, _, err = run(t, dictArgs("add", "tir", "Isaias", "Isaias", "p")...)
	require.NoError(t, err)
	assert.Equal(t, "Isaias\tIsaias\tPER\n", out)

	out, _, err = run(t, dictArgs("ls")...)
	require.NoError(t, err)
	assert.Equal(t, "tir\t3\n", out)

	out, _, err = run(t, dictArgs("export", "tir")...)
	require.NoError(t, err)
	assert.Equal(t, "asmara\tAsmara\tGPE\nisaias\tIsaias\tPER\nmassawa\tMassawa\tGPE\n", out)

	exportFile := filepath.Join(t.TempDir(), "out.tsv")
	_, _, err = run(t, dictArgs("export", "tir", exportFile)...)
	require.NoError(t, err)
	b, err := os.ReadFile(exportFile)
	require.NoError(t, err)
	assert.Equal(t, "asmara\tAsmara\tGPE\nisaias\tIsaias\tPER\nmassawa\tMassawa\tGPE\n", string(b))
}

func TestDictCreatesMissingDir(t *testing.T) {
	for _, backend := range []string{"json", "sqlite"} {
		t.Run(backend, func(t *testing.T) {
			dictDir := filepath.Join(t.TempDir(), "not", "yet")

			_, _, err := run(t, "dict", "--dict-dir", dictDir, "--backend", backend, "add", "tir", "Asmara", "Asmara", "G")
			require.NoError(t, err)

			out, _, err := run(t, "dict", "--dict-dir", dictDir, "--backend", backend, "ls")
			require.NoError(t, err)
			assert.Equal(t, "tir\t1\n", out)
		})
	}
}

func TestDictImportOverwrite(t *testing.T) {
	dictDir := t.TempDir()
	importFile := filepath.Join(t.TempDir(), "tir.tsv")
	write(t, importFile, "asmara\tAsmara\tGPE\n")

	_, _, err := run(t, "dict", "--dict-dir", dictDir, "add", "tir", "asmara", "Old", "GPE")
	require.NoError(t, err)

	out, _, err := run(t, "dict", "--dict-dir", dictDir, "import", "tir", importFile)
	require.NoError(t, err)
	assert.Equal(t, "Imported 0 entries into tir\n", out)

	out, _, err = run(t, "dict", "--dict-dir", dictDir, "import", "--overwrite", "tir", importFile)
	require.NoError(t, err)
	assert.Equal(t, "Imported 1 entries into tir\n", out)

	out, _, err = run(t, "dict", "--dict-dir", dictDir, "export", "tir")
	require.NoError(t, err)
	assert.Equal(t, "asmara\tAsmara\tGPE\n", out)
}

func TestDictUnknownBackend(t *testing.T) {
	_, _, err := run(t, "dict", "--dict-dir", t.TempDir(), "--backend", "redis", "ls")
	require.Error(t, err)
}
