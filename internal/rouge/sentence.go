//
// Tencent is pleased to support the open source community by making evalkit available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// evalkit is licensed under the Apache License Version 2.0.
//
//

package rouge

import (
	"fmt"
	"strings"
	"sync"

	"github.com/neurosnap/sentences"
	sentencesdata "github.com/neurosnap/sentences/data"
)

var (
	punktOnce      sync.Once
	punktTokenizer *sentences.DefaultSentenceTokenizer
	punktErr       error
)

// sentTokenizeEnglish splits English text into sentences with the
// bundled Punkt training data, approximating NLTK's sent_tokenize.
func sentTokenizeEnglish(text string) ([]string, error) {
	punktOnce.Do(func() {
		b, err := sentencesdata.Asset("data/english.json")
		if err != nil {
			punktErr = fmt.Errorf("load english punkt data: %w", err)
			return
		}
		training, err := sentences.LoadTraining(b)
		if err != nil {
			punktErr = fmt.Errorf("parse english punkt data: %w", err)
			return
		}
		punktTokenizer = sentences.NewSentenceTokenizer(training)
	})
	if punktErr != nil {
		return nil, punktErr
	}

	raw := punktTokenizer.Tokenize(text)
	out := make([]string, 0, len(raw))
	for _, sent := range raw {
		for _, s := range splitStandalonePeriods(strings.TrimSpace(sent.Text)) {
			if s != "" {
				out = append(out, s)
			}
		}
	}
	return out, nil
}

// splitStandalonePeriods peels leading bare periods off into their own
// sentences. NLTK's Punkt tokenizer emits ". ." patterns as standalone
// sentences in some edge cases.
func splitStandalonePeriods(s string) []string {
	out := make([]string, 0, 2)
	for {
		s = strings.TrimLeft(s, " \t\n\r\v\f")
		if s == "" || s[0] != '.' {
			break
		}
		if len(s) > 1 && !isASCIISpace(s[1]) {
			break
		}
		out = append(out, ".")
		s = s[1:]
	}
	if s != "" {
		out = append(out, s)
	}
	return out
}

func isASCIISpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
