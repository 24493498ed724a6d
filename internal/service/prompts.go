// internal/service/prompts.go
package service

import (
	"fmt"
	"strings"
)

// 生成プロンプトの組み立てを1箇所に集約する。
// プロンプト本文は生成APIに渡す都合上すべて英語で記述する。

// buildTextSystemPrompt は読み物生成のsystemプロンプトを組み立てます。
// topic と interests は排他で、topic が指定された場合 interests は使いません。
func buildTextSystemPrompt(language, level, nativeLanguage, topic string, reinforceWords []string, interests []string, wordCount int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are a language tutor writing reading material for a %s learner at CEFR level %s. ", language, level)
	fmt.Fprintf(&b, "The learner's native language is %s.\n\n", nativeLanguage)
	fmt.Fprintf(&b, "Write an engaging text of roughly %d words in %s, appropriate for level %s.\n", wordCount, language, level)

	if topic != "" {
		fmt.Fprintf(&b, "The text must be about the following topic: %s.\n", topic)
	} else if len(interests) > 0 {
		fmt.Fprintf(&b, "Pick a topic related to one of the learner's interests: %s.\n", strings.Join(interests, ", "))
	}

	if len(reinforceWords) > 0 {
		fmt.Fprintf(&b, "Where it feels natural, try to include these words the learner is studying: %s. Do not force them in.\n", strings.Join(reinforceWords, ", "))
	}

	b.WriteString("\nRespond with a single JSON object of the shape ")
	b.WriteString(`{"title": "...", "text": "...", "translations": []}`)
	b.WriteString(" where title and text are written entirely in the target language. Do not add any commentary outside the JSON.")

	return b.String()
}

func buildTextUserPrompt(language, level, nativeLanguage string) string {
	return fmt.Sprintf("Target language: %s. Level: %s. My native language: %s. Please write the text now.", language, level, nativeLanguage)
}

// buildScenePrompt は挿絵のための情景描写を生成するプロンプトです。
// 画像に文字が描き込まれるのを避けるため、文字・タイポグラフィの除外を明示します。
func buildScenePrompt(title, body string) string {
	const bodyPrefixLimit = 600
	if len(body) > bodyPrefixLimit {
		body = body[:bodyPrefixLimit]
	}
	return fmt.Sprintf(
		"Read the following story titled %q and describe, in about 50 words, a single visual scene that captures its mood, objects and atmosphere. "+
			"Describe only what can be seen. Do not mention any text, letters, words or typography.\n\n%s",
		title, body)
}

// 挿絵の画風指定。全テキストで統一する。
const illustrationStyleDirective = "Editorial illustration, soft colors, flat shapes, no text or lettering anywhere in the image. Scene: "

// buildExercisePrompt は読解問題8問の生成プロンプトを組み立てます。
// 種別配分と書式はここで厳密に固定する (2/2/1/2/1)。
func buildExercisePrompt(title, body, language, level, nativeLanguage string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are a language teacher creating comprehension exercises for a %s text at CEFR level %s. ", language, level)
	fmt.Fprintf(&b, "The learner's native language is %s.\n\n", nativeLanguage)
	fmt.Fprintf(&b, "Text title: %s\n\nText:\n%s\n\n", title, body)

	b.WriteString("Create exactly 8 exercises with exactly this distribution:\n")
	b.WriteString("- 2 of type MULTIPLE_CHOICE: a question about the text with exactly 4 options; correct_answer must equal one of the options.\n")
	b.WriteString("- 2 of type FILL_BLANK: a sentence from the text with one word replaced by ___; correct_answer is the missing word.\n")
	b.WriteString("- 1 of type TRUE_FALSE: a statement about the text; correct_answer must be literally \"true\" or \"false\".\n")
	fmt.Fprintf(&b, "- 2 of type TRANSLATION: a short sentence from the text in %s; correct_answer is its translation in %s.\n", language, nativeLanguage)
	b.WriteString("- 1 of type SENTENCE_ORDER: options is an array of the single words of one sentence in scrambled order (each option must be exactly one word); correct_answer is the correctly ordered sentence.\n\n")

	b.WriteString("Respond with a single JSON object of the shape ")
	b.WriteString(`{"exercises": [{"type": "...", "question": "...", "options": ["..."], "correct_answer": "...", "explanation": "..."}]}`)
	fmt.Fprintf(&b, ". Write explanations in %s. Omit options (empty array) for types that have none. Do not add any commentary outside the JSON.", nativeLanguage)

	return b.String()
}

// buildTranslationPrompt はクリック翻訳用の単語翻訳プロンプトです
func buildTranslationPrompt(term, language, nativeLanguage string) string {
	return fmt.Sprintf(
		"Translate the %s word %q into %s. Respond with only the most common translation, no explanations, no punctuation.",
		language, term, nativeLanguage)
}
