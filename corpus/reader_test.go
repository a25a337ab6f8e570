package corpus

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCorpus = `word c5 lemma pos
the DT the DET
poop NN poop NOUN
and CC and CONJ
scoop NN scoop NOUN

# sentence two follows
the DT the DET
house NN house NOUN
stood VBD stand VERB

they PRP they PRON
house VB house VERB
it PRP it PRON
`

func TestRead_PlainText(t *testing.T) {
	c, err := Read(strings.NewReader(sampleCorpus))
	require.NoError(t, err)

	assert.Equal(t, 10, c.Len())
	assert.Equal(t, 3, c.Sentences())
	assert.Equal(t, 0, c.SentenceOf(0))
	assert.Equal(t, 1, c.SentenceOf(4))
	assert.Equal(t, 2, c.SentenceOf(9))

	d := c.Dict()
	id, ok := d.Lookup("scoop")
	require.True(t, ok)
	assert.Equal(t, id, c.Token(3).Word)
	assert.Equal(t, id, c.Token(3).Lemma)
}

func TestRead_HeaderIsSkipped(t *testing.T) {
	c, err := Read(strings.NewReader(sampleCorpus))
	require.NoError(t, err)

	// The header fields must not leak into the dictionary as token
	// values; "pos" only appears on the header row.
	_, ok := c.Dict().Lookup("pos")
	assert.False(t, ok)
}

func TestRead_CommentsDoNotBreakSentences(t *testing.T) {
	in := `header
a A a A
# interleaved comment
b B b B
`
	c, err := Read(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, 1, c.Sentences())
}

func TestRead_MalformedRow(t *testing.T) {
	in := "header\nthe DT the\n"
	_, err := Read(strings.NewReader(in))

	var re *RowError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, 2, re.Line)
	assert.Contains(t, re.Error(), "the DT the")
}

func TestRead_Empty(t *testing.T) {
	c, err := Read(strings.NewReader("header only\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 0, c.Sentences())
}

func TestRead_Gzip(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(sampleCorpus))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	c, err := Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, 10, c.Len())
	assert.Equal(t, 3, c.Sentences())
}

func TestRead_PropagatesReaderErrors(t *testing.T) {
	boom := errors.New("boom")
	_, err := Read(&failingReader{err: boom})
	require.ErrorIs(t, err, boom)
}

type failingReader struct {
	err error
}

func (r *failingReader) Read([]byte) (int, error) { return 0, r.err }
