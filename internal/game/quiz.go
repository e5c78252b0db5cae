package game

import "recycling_games/internal/domain"

// Question is static reference data: prompt, options, correct index and
// the explanation shown after answering.
type Question struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Correct     int      `json:"-"`
	Explanation string   `json:"-"`
}

var quizQuestions = []Question{
	{
		Question:    "Qual é a cor da lixeira para alumínio e metais?",
		Options:     []string{"Vermelho", "Amarelo", "Azul", "Verde"},
		Correct:     1,
		Explanation: "A lixeira amarela é destinada para metais, incluindo latinhas de alumínio.",
	},
	{
		Question:    "Embalagens de agrotóxico vazias devem passar por qual processo antes do descarte?",
		Options:     []string{"Queima", "Tríplice lavagem", "Enterramento", "Compactação"},
		Correct:     1,
		Explanation: "A tríplice lavagem remove resíduos químicos e torna as embalagens seguras para reciclagem.",
	},
	{
		Question:    "Qual destes materiais NÃO pode ser reciclado em Pontos de Entrega Voluntária?",
		Options:     []string{"Garrafa PET", "Isopor", "Pneus", "Pilhas comuns"},
		Correct:     3,
		Explanation: "Pilhas e baterias precisam de coleta especializada devido aos metais pesados.",
	},
	{
		Question:    "Qual a importância de separar tampinhas plásticas?",
		Options:     []string{"Não tem importância", "São de plástico diferente e mais valioso", "Facilitam a compactação", "Evitam contaminação"},
		Correct:     1,
		Explanation: "Tampinhas são feitas de plástico de alta qualidade e podem financiar projetos sociais.",
	},
	{
		Question:    "Por que o isopor é difícil de reciclar?",
		Options:     []string{"É tóxico", "Ocupa muito espaço e tem baixo valor", "Não existe tecnologia", "É biodegradável"},
		Correct:     1,
		Explanation: "O isopor é 98% ar, tornando transporte caro. Poucos locais aceitam devido ao custo.",
	},
	{
		Question:    "O que fazer com cerâmicas quebradas?",
		Options:     []string{"Lixo comum", "Reciclagem de vidro", "Ecoponto específico", "Entulho/construção civil"},
		Correct:     3,
		Explanation: "Cerâmicas devem ir para locais de coleta de entulho ou ecopontos específicos.",
	},
	{
		Question:    "Quantas vezes um pneu pode ser recauchutado?",
		Options:     []string{"1 vez", "2-3 vezes", "5-6 vezes", "Infinitas vezes"},
		Correct:     1,
		Explanation: "Um pneu pode ser recauchutado 2-3 vezes, prolongando sua vida útil significativamente.",
	},
	{
		Question:    "Qual o destino correto para sacolas plásticas?",
		Options:     []string{"Lixo comum", "Reciclagem de plástico", "Reutilização ou reciclagem", "Queima"},
		Correct:     2,
		Explanation: "Sacolas devem ser reutilizadas ao máximo e depois destinadas à reciclagem de plástico.",
	},
	{
		Question:    "O que é sucata de metais ferrosos?",
		Options:     []string{"Apenas ferro puro", "Metais que grudam em ímã", "Alumínio e cobre", "Metais preciosos"},
		Correct:     1,
		Explanation: "Metais ferrosos são aqueles que contêm ferro e são atraídos por ímãs.",
	},
	{
		Question:    "Qual o benefício de reciclar uma latinha de alumínio?",
		Options:     []string{"Economiza 5% de energia", "Economiza 30% de energia", "Economiza 50% de energia", "Economiza 95% de energia"},
		Correct:     3,
		Explanation: "Reciclar alumínio economiza 95% da energia necessária para produzir alumínio novo.",
	},
}

const quizPointsPerCorrect = 10

type AnswerResult int

const (
	AnswerIgnored AnswerResult = iota
	AnswerCorrect
	AnswerWrong
)

func (r AnswerResult) String() string {
	switch r {
	case AnswerCorrect:
		return "correct"
	case AnswerWrong:
		return "wrong"
	default:
		return "ignored"
	}
}

// QuizGame walks a fixed ordered question list. Each question accepts
// exactly one answer; there is no going back and no time limit.
type QuizGame struct {
	current  int
	score    int
	answered bool
	selected int
	answers  []bool
	status   Status
}

func NewQuizGame() *QuizGame {
	return &QuizGame{status: StatusActive, selected: -1}
}

func (g *QuizGame) Type() domain.GameType { return domain.GameTypeQuiz }
func (g *QuizGame) Status() Status        { return g.status }
func (g *QuizGame) Score() int            { return g.score }
func (g *QuizGame) CurrentIndex() int     { return g.current }
func (g *QuizGame) Answers() []bool       { return g.answers }

// Answer records the chosen option for the current question. Further
// calls before Advance are no-ops.
func (g *QuizGame) Answer(option int) AnswerResult {
	if g.status.Terminal() || g.answered {
		return AnswerIgnored
	}
	q := quizQuestions[g.current]
	if option < 0 || option >= len(q.Options) {
		return AnswerIgnored
	}

	g.answered = true
	g.selected = option
	correct := option == q.Correct
	g.answers = append(g.answers, correct)
	if correct {
		g.score += quizPointsPerCorrect
		return AnswerCorrect
	}
	return AnswerWrong
}

// Advance moves to the next question, or ends the quiz after the last
// one. It does nothing while the current question is unanswered.
func (g *QuizGame) Advance() {
	if g.status.Terminal() || !g.answered {
		return
	}
	if g.current+1 < len(quizQuestions) {
		g.current++
		g.answered = false
		g.selected = -1
		return
	}
	g.status = StatusWon
}

func (g *QuizGame) State() map[string]any {
	state := map[string]any{
		"game":      g.Type(),
		"status":    g.status,
		"question":  g.current + 1,
		"questions": len(quizQuestions),
		"score":     g.score,
	}

	if !g.status.Terminal() {
		q := quizQuestions[g.current]
		state["prompt"] = q.Question
		state["options"] = q.Options
		if g.answered {
			state["selected"] = g.selected
			state["correct"] = q.Correct
			state["explanation"] = q.Explanation
		}
	}
	return state
}
