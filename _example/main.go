package main

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/hupe1980/lexgo"
	"github.com/hupe1980/lexgo/corpus"
)

const sample = `word	c5	lemma	pos
the	AT0	the	ART
quick	AJ0	quick	ADJ
fox	NN1	fox	SUBST
jumps	VVZ	jump	VERB

the	AT0	the	ART
lazy	AJ0	lazy	ADJ
dog	NN1	dog	SUBST
sleeps	VVZ	sleep	VERB
`

func main() {
	ctx := context.Background()

	c, err := corpus.Read(strings.NewReader(sample))
	if err != nil {
		log.Fatal(err)
	}

	lx := lexgo.New(c)

	for _, text := range []string{
		`[word="the"] [] [pos="SUBST"]`,
		`[lemma="jump"]`,
		`[pos!="VERB"]`,
	} {
		matches, err := lx.Query(ctx, text)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%-32s -> %d matches\n", text, len(matches))
		for _, m := range matches {
			fmt.Printf("  sentence %d, start %d, length %d\n", m.Sentence, m.Start, m.Length)
		}
	}
}
