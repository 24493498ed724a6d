// internal/service/tracker.go
package service

import (
	"strings"

	"go_5_tadoku_read/internal/model"
)

// tokenizePunctuation はトークン分割時に空白へ置換する記号の集合です
const tokenizePunctuation = ".,!?;:'\"()[]{}¿¡«»…—–-"

// tokenizeText は生成テキスト本文をトークン集合に変換します。
// 小文字化 → 記号を空白に置換 → 空白で分割。空トークンは捨てる。
func tokenizeText(body string) map[string]struct{} {
	lowered := strings.ToLower(body)

	replaced := strings.Map(func(r rune) rune {
		if strings.ContainsRune(tokenizePunctuation, r) {
			return ' '
		}
		return r
	}, lowered)

	tokens := make(map[string]struct{})
	for _, t := range strings.Fields(replaced) {
		tokens[t] = struct{}{}
	}
	return tokens
}

// matchReinforcedWords は復習候補のうち、本文のトークンに
// 完全一致 (小文字・記号除去後) したものだけを返します。部分一致は数えない。
func matchReinforcedWords(candidates []*model.DictionaryWord, body string) []*model.DictionaryWord {
	tokens := tokenizeText(body)

	var matched []*model.DictionaryWord
	for _, w := range candidates {
		if _, ok := tokens[strings.ToLower(w.Term)]; ok {
			matched = append(matched, w)
		}
	}
	return matched
}
