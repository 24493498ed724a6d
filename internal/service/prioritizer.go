// internal/service/prioritizer.go
package service

import (
	"sort"
	"time"

	"go_5_tadoku_read/internal/model"
)

// reinforcementScore は復習候補の優先度スコアを計算します。
//
//	score = 最終出現からの日数 × レベル重み × (参照回数 + 1)
//
// 「難しくて (LEARNING)、久しく見ておらず、よく調べられた」単語ほど高くなる。
// MASTERED はそもそも候補に含まれない前提 (リポジトリ側で除外)。
func reinforcementScore(word *model.DictionaryWord, now time.Time) float64 {
	days := now.Sub(word.LastSeenAt).Hours() / 24
	if days < 0 {
		days = 0
	}

	var weight float64
	switch word.MasteryLevel {
	case model.MasteryLearning:
		weight = model.WeightLearning
	case model.MasteryReviewing:
		weight = model.WeightReviewing
	default:
		return 0
	}

	return days * weight * float64(word.LookupCount+1)
}

// selectReinforcementWords はスコア降順で最大 limit 件の復習候補を選びます。
// 入力は最終出現が古い順で渡される想定で、同点の場合はその順序を保持する。
func selectReinforcementWords(words []*model.DictionaryWord, now time.Time, limit int) []*model.DictionaryWord {
	candidates := make([]*model.DictionaryWord, 0, len(words))
	for _, w := range words {
		// MASTEREDは候補に含めない
		if w.MasteryLevel == model.MasteryMastered {
			continue
		}
		candidates = append(candidates, w)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return reinforcementScore(candidates[i], now) > reinforcementScore(candidates[j], now)
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates
}
