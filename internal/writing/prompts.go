package writing

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/linguabridge/backend/internal/levels"
	"github.com/linguabridge/backend/internal/models"
)

func multipleChoicePrompt(language, level string, ctx *levels.LevelContext) string {
	return fmt.Sprintf(`Generate a language learning task in %s at %s level. FOLLOW STRICTLY ALL THE GUIDELINES BELOW.

Level proficiency description:
%s

*GUIDELINES:*
Create a **multiple-choice task** that matches the level's requirements:
1. The task must consist of a single sentence with one clear objective.
2. Since this is a writing task, the question could be a grammar question or a vocabulary question.
3. Provide **exactly four options**, with only one correct answer.
4. Avoid similar-sounding or overly ambiguous options. The answer should be **deterministic** and not allow for multiple correct interpretations.
5. Do not include any instructions for the task.
6. Return the task in JSON format with these fields:
{
    "question": "The sentence and question for the user, without any instructions or options",
    "options": ["Option A", "Option B", "Option C", "Option D"],
    "correctAnswer": "The correct option"
}`, language, level, ctx.PromptText())
}

func fillInBlankPrompt(language, level string, ctx *levels.LevelContext) string {
	return fmt.Sprintf(`Generate a **fill-in-the-blank task** for language learners in %s at %s level. FOLLOW STRICTLY ALL THE GUIDELINES BELOW.

Level proficiency description:
%s

*GUIDELINES:*
1. Create one sentence in the %s language with a single blank, marked as ____.
2. The sentence must test a key skill for the level, such as vocabulary, grammar, or sentence structure.
3. Avoid ambiguity: the missing word/phrase must have **only one correct answer**. If there are multiple correct answers, return them in an array.
4. Include *the English translation* of the missing word/phrase (in parentheses).
5. Do not include any instructions for the task.
6. Return the result in JSON format with these fields:
{
    "question": "The sentence with ____ (MISSING WORD/PHRASE IN ENGLISH)",
    "correctAnswer": ["The correct word/phrase"]
}

Examples:
- For vocabulary: "I ____ to the park every morning. (go)"
- For grammar: "She has been ____ for three hours. (studying)"`, language, level, ctx.PromptText(), language)
}

func explainAnswerPrompt(req models.ExplainAnswerRequest) string {
	return fmt.Sprintf(`Analyze the following task in %s at %s level. FOLLOW STRICTLY ALL THE GUIDELINES BELOW.

Task: %s
Correct answer: %s
User's answer: %s

*GUIDELINES:*
1. Determine if the user's answer is correct.
2. If the answer is incorrect, provide a short explanation and suggest 1-2 topics to review.
3. Keep explanations clear, specific, and tailored to the level.
4. The explanation should be in English.

Return the response in JSON format:
{
    "is_correct": boolean,
    "explanation": "A brief explanation of the user's performance",
    "topics_to_review": ["Topic 1", "Topic 2"]
}`, req.Language, req.Level, req.Task, req.CorrectAnswer, req.UserAnswer)
}

// critiquePrompts holds the fixed subset of languages with a verification
// prompt. Languages outside this map are never verified.
var critiquePrompts = map[string]func(task models.Task) string{
	"French": frenchCritiquePrompt,
	"Polish": polishCritiquePrompt,
}

func critiquePromptFor(language string, task models.Task) (string, bool) {
	for name, fn := range critiquePrompts {
		if strings.EqualFold(name, language) {
			return fn(task), true
		}
	}
	return "", false
}

func frenchCritiquePrompt(task models.Task) string {
	encoded, _ := json.Marshal(task)
	return fmt.Sprintf(`Vérifiez rigoureusement la tâche d'apprentissage suivante :
%s

CRITÈRES DE VÉRIFICATION :
1. Exactitude grammaticale, orthographe et conjugaison.
2. La tâche est claire, le contexte est logique et il n'y a qu'UNE SEULE réponse possible.
3. Le vocabulaire et la structure grammaticale correspondent au niveau ciblé.

Répondez en JSON avec le format suivant :
{
    "is_valid": boolean,
    "better_task": {
        "question": "La question améliorée",
        "options": ["Option A", "Option B", "Option C", "Option D"],
        "correctAnswer": ["La bonne réponse améliorée"]
    }
}

IMPORTANT : ne fournissez better_task que si la tâche n'est pas valide.`, encoded)
}

func polishCritiquePrompt(task models.Task) string {
	encoded, _ := json.Marshal(task)
	return fmt.Sprintf(`Sprawdź dokładnie następujące zadanie językowe:
%s

Kryteria weryfikacji:
1. Poprawność gramatyczna, pisownia i odmiana wyrazów.
2. Zadanie jest jasne, kontekst spójny i jest tylko JEDNA poprawna odpowiedź.
3. Słownictwo i struktura gramatyczna odpowiadają docelowemu poziomowi.

Odpowiedz w formacie JSON:
{
    "is_valid": boolean,
    "better_task": {
        "question": "Ulepszone pytanie",
        "options": ["Opcja A", "Opcja B", "Opcja C", "Opcja D"],
        "correctAnswer": ["Poprawna ulepszona odpowiedź"]
    }
}

Zwróć tylko JSON, bez dodatkowych komentarzy, i nie zwracaj better_task jeśli zadanie jest poprawne.`, encoded)
}
