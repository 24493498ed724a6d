// internal/service/prioritizer_test.go
package service

import (
	"testing"
	"time"

	"go_5_tadoku_read/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func makeWord(term string, level model.MasteryLevel, lookupCount int, lastSeen time.Time) *model.DictionaryWord {
	return &model.DictionaryWord{
		WordID:       uuid.New(),
		Term:         term,
		MasteryLevel: level,
		LookupCount:  lookupCount,
		LastSeenAt:   lastSeen,
	}
}

func Test_reinforcementScore(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		word *model.DictionaryWord
		want float64
	}{
		{
			name: "正常系: LEARNINGは重み3 (10日前 × 3 × (2+1) = 90)",
			word: makeWord("casa", model.MasteryLearning, 2, now.AddDate(0, 0, -10)),
			want: 90,
		},
		{
			name: "正常系: REVIEWINGは重み2 (5日前 × 2 × (0+1) = 10)",
			word: makeWord("perro", model.MasteryReviewing, 0, now.AddDate(0, 0, -5)),
			want: 10,
		},
		{
			name: "正常系: 参照回数0でも係数は1 (days × weight × 1)",
			word: makeWord("gato", model.MasteryLearning, 0, now.AddDate(0, 0, -1)),
			want: 3,
		},
		{
			name: "境界値: 最終出現が今ならスコア0",
			word: makeWord("sol", model.MasteryLearning, 5, now),
			want: 0,
		},
		{
			name: "境界値: 最終出現が未来でも負にならない",
			word: makeWord("luna", model.MasteryLearning, 5, now.AddDate(0, 0, 1)),
			want: 0,
		},
		{
			name: "境界値: MASTEREDはスコア0",
			word: makeWord("agua", model.MasteryMastered, 10, now.AddDate(0, 0, -30)),
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := reinforcementScore(tt.word, now)
			assert.InDelta(t, tt.want, got, 0.0001)
		})
	}
}

func Test_selectReinforcementWords(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	t.Run("正常系: スコア降順に選ばれる", func(t *testing.T) {
		low := makeWord("low", model.MasteryReviewing, 0, now.AddDate(0, 0, -1))     // 1×2×1 = 2
		high := makeWord("high", model.MasteryLearning, 4, now.AddDate(0, 0, -10))  // 10×3×5 = 150
		mid := makeWord("mid", model.MasteryLearning, 0, now.AddDate(0, 0, -5))     // 5×3×1 = 15

		got := selectReinforcementWords([]*model.DictionaryWord{low, high, mid}, now, 10)

		assert.Len(t, got, 3)
		assert.Equal(t, "high", got[0].Term)
		assert.Equal(t, "mid", got[1].Term)
		assert.Equal(t, "low", got[2].Term)
	})

	t.Run("正常系: 上限で切り詰められる", func(t *testing.T) {
		words := make([]*model.DictionaryWord, 0, 15)
		for i := 0; i < 15; i++ {
			words = append(words, makeWord("w", model.MasteryLearning, i, now.AddDate(0, 0, -1)))
		}

		got := selectReinforcementWords(words, now, 10)
		assert.Len(t, got, 10)
	})

	t.Run("正常系: MASTEREDは除外される", func(t *testing.T) {
		mastered := makeWord("mastered", model.MasteryMastered, 10, now.AddDate(0, 0, -30))
		learning := makeWord("learning", model.MasteryLearning, 0, now.AddDate(0, 0, -1))

		got := selectReinforcementWords([]*model.DictionaryWord{mastered, learning}, now, 10)

		assert.Len(t, got, 1)
		assert.Equal(t, "learning", got[0].Term)
	})

	t.Run("正常系: 同点なら入力順 (最終出現が古い順) を保持する", func(t *testing.T) {
		// FindReinforceableはlast_seen_at ASCで返すため、同点時は先頭が優先される
		first := makeWord("first", model.MasteryLearning, 1, now.AddDate(0, 0, -3))
		second := makeWord("second", model.MasteryLearning, 1, now.AddDate(0, 0, -3))

		got := selectReinforcementWords([]*model.DictionaryWord{first, second}, now, 1)

		assert.Len(t, got, 1)
		assert.Equal(t, "first", got[0].Term)
	})

	t.Run("境界値: 候補が空なら空を返す", func(t *testing.T) {
		got := selectReinforcementWords(nil, now, 10)
		assert.Empty(t, got)
	})
}
