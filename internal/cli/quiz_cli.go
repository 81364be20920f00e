// Package cli implements the interactive terminal client.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/at-ishikawa/wordquiz/internal/assessment"
	"github.com/at-ishikawa/wordquiz/internal/user"
)

// QuizOptions control one interactive quiz session.
type QuizOptions struct {
	Username string
	Mode     assessment.Mode
	From     int64
	To       int64
	Count    int
	// Review quizzes every mistaken word and ignores From/To/Count.
	Review bool
}

// QuizCLI runs a quiz session on the terminal: it logs the user in, asks
// each question, and submits the answer sheet at the end.
type QuizCLI struct {
	quizzes *assessment.Service
	users   user.UserRepository

	stdinReader  *bufio.Reader
	stdoutWriter io.Writer
	bold         *color.Color
	italic       *color.Color
}

// NewQuizCLI creates a QuizCLI reading from stdin and writing to stdout.
func NewQuizCLI(quizzes *assessment.Service, users user.UserRepository) *QuizCLI {
	return &QuizCLI{
		quizzes:      quizzes,
		users:        users,
		stdinReader:  bufio.NewReader(os.Stdin),
		stdoutWriter: os.Stdout,
		bold:         color.New(color.Bold),
		italic:       color.New(color.Italic),
	}
}

// Run plays one full quiz session and prints the final score.
func (cli *QuizCLI) Run(ctx context.Context, opts QuizOptions) error {
	u, err := cli.loginUser(ctx, opts.Username)
	if err != nil {
		return err
	}

	var questions []assessment.Question
	if opts.Review {
		questions, err = cli.quizzes.StartReviewQuiz(ctx, opts.Mode)
	} else {
		questions, err = cli.quizzes.StartQuiz(ctx, opts.From, opts.To, opts.Mode, opts.Count)
	}
	if err != nil {
		return err
	}

	answers := make([]assessment.Answer, 0, len(questions))
	for i, question := range questions {
		answer, err := cli.askQuestion(i+1, len(questions), question)
		if err != nil {
			return err
		}
		answers = append(answers, answer)
	}

	result, err := cli.quizzes.SubmitQuiz(ctx, u.ID, answers)
	if err != nil {
		return fmt.Errorf("submit quiz: %w", err)
	}

	fmt.Fprintln(cli.stdoutWriter)
	fmt.Fprintf(cli.stdoutWriter, "Score: %s\n", cli.bold.Sprintf("%d / 100", result.Score))
	return nil
}

func (cli *QuizCLI) loginUser(ctx context.Context, username string) (*user.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, errors.New("username is required")
	}

	u, err := cli.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if u == nil {
		u, err = cli.users.Create(ctx, username, user.RoleFor(username))
		if err != nil {
			return nil, err
		}
	}
	return u, nil
}

func (cli *QuizCLI) askQuestion(number, total int, question assessment.Question) (assessment.Answer, error) {
	fmt.Fprintf(cli.stdoutWriter, "[%d/%d] %s\n", number, total, cli.bold.Sprint(question.Prompt))

	var givenAnswer string
	var err error
	if len(question.Options) > 0 {
		givenAnswer, err = cli.readChoice(question.Options)
	} else {
		givenAnswer, err = cli.readLine("Answer: ")
	}
	if err != nil {
		return assessment.Answer{}, err
	}

	isCorrect := assessment.GradeSpelling(question.Answer, givenAnswer)
	cli.showResult(question, isCorrect)
	return assessment.Answer{
		WordID:     question.WordID,
		UserAnswer: givenAnswer,
		IsCorrect:  isCorrect,
	}, nil
}

func (cli *QuizCLI) readChoice(options []string) (string, error) {
	for i, option := range options {
		fmt.Fprintf(cli.stdoutWriter, "  %d) %s\n", i+1, option)
	}

	for {
		input, err := cli.readLine("Choice: ")
		if err != nil {
			return "", err
		}
		choice, err := strconv.Atoi(input)
		if err != nil || choice < 1 || choice > len(options) {
			fmt.Fprintf(cli.stdoutWriter, "Enter a number between 1 and %d.\n", len(options))
			continue
		}
		return options[choice-1], nil
	}
}

func (cli *QuizCLI) readLine(prompt string) (string, error) {
	fmt.Fprint(cli.stdoutWriter, prompt)
	input, err := cli.stdinReader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(input), nil
}

func (cli *QuizCLI) showResult(question assessment.Question, isCorrect bool) {
	if isCorrect {
		green := color.New(color.FgGreen)
		fmt.Fprint(cli.stdoutWriter, "✅ ")
		green.Fprintln(cli.stdoutWriter, "Correct!")
		return
	}

	red := color.New(color.FgRed)
	fmt.Fprint(cli.stdoutWriter, "❌ ")
	red.Fprintf(cli.stdoutWriter, `Wrong. The answer is "%s"`, cli.italic.Sprint(question.Answer))
	fmt.Fprintln(cli.stdoutWriter)
}
