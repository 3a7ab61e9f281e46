package quiz

import (
	"bufio"
	"fmt"
	"io"

	"github.com/dwilk016/quizdrill/internal/bank"
	"github.com/dwilk016/quizdrill/internal/ui/theme"
)

// ConsolePrompter implements Prompter on a plain text stream pair, normally
// stdin and stdout.
type ConsolePrompter struct {
	scanner  *bufio.Scanner
	out      io.Writer
	lastType bank.QuestionType
}

// NewConsolePrompter creates a prompter reading answers from in and writing
// prompts to out.
func NewConsolePrompter(in io.Reader, out io.Writer) *ConsolePrompter {
	return &ConsolePrompter{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// ShowQuestion prints the question header and text, with choices enumerated
// 1..N for multiple choice.
func (p *ConsolePrompter) ShowQuestion(q bank.Question) {
	p.lastType = q.Type
	fmt.Fprintf(p.out, "\n%s %s\n",
		theme.Dim.Render(fmt.Sprintf("Question (%s, %s):", q.Difficulty, q.Topic)),
		q.Text)
	if q.Type == bank.TypeMultipleChoice {
		for i, choice := range q.Choices {
			fmt.Fprintf(p.out, "  %d. %s\n", i+1, choice)
		}
	}
}

// RequestAnswer prompts for and reads one line of input. The prompt label
// follows the type of the last shown question.
func (p *ConsolePrompter) RequestAnswer() (string, error) {
	if p.lastType == bank.TypeMultipleChoice {
		fmt.Fprint(p.out, "Your choice (number): ")
	} else {
		fmt.Fprint(p.out, "Your answer: ")
	}
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return p.scanner.Text(), nil
}

// ShowFeedback prints the per-question outcome.
func (p *ConsolePrompter) ShowFeedback(correct bool, explanation string) {
	if correct {
		fmt.Fprintln(p.out, theme.Correct.Render("Correct!"))
	} else {
		fmt.Fprintf(p.out, "%s Explanation: %s\n", theme.Incorrect.Render("Incorrect."), explanation)
	}
}
