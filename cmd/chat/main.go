package main

import (
	"errors"
	"fmt"
	"intent-lab/domain"
	ierrors "intent-lab/errors"
	"intent-lab/internal"
	"intent-lab/services"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	"github.com/Netflix/go-env"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/manifoldco/promptui"
)

const ownQuestion = "Ask my own question"

var suggestions = []string{
	"What courses do you offer?",
	"What are the fees?",
	"How do I apply for admissions?",
	"Tell me about hostel facilities",
	"When is the application deadline?",
	"How do I contact the university?",
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	seed := uint64(time.Now().UnixNano())
	source := domain.NewLockedRand(rand.NewPCG(seed, seed>>1))
	chat, dataset, err := services.LoadChatService(log, config.DatasetPath, config.ModelPath, source)
	if err != nil {
		return startupError(err)
	}

	color.Bold.Println("University Enquiry Chatbot")
	fmt.Printf("Trained on %d intents. Type 'quit' to leave.\n\n", len(dataset.Intents))

	question, err := suggest()
	if isExit(err) {
		return nil
	}
	if err != nil {
		return err
	}
	if question != "" {
		answer(chat, question)
	}

	prompt := promptui.Prompt{Label: "What would you like to know"}
	for {
		text, err := prompt.Run()
		if isExit(err) {
			return nil
		}
		if err != nil {
			return err
		}
		if strings.EqualFold(strings.TrimSpace(text), "quit") {
			return nil
		}
		answer(chat, text)
	}
}

// startupError explains a loading failure in terms the user can act on.
func startupError(err error) error {
	switch {
	case errors.Is(err, ierrors.ErrInvalidDataset):
		return fmt.Errorf("the intents dataset is invalid, fix it and retry: %w", err)
	case errors.Is(err, ierrors.ErrDatasetLoad):
		return fmt.Errorf("the intents dataset cannot be read: %w", err)
	case errors.Is(err, ierrors.ErrDatasetMismatch):
		return fmt.Errorf("the model was trained on another dataset, run the training command again: %w", err)
	case errors.Is(err, ierrors.ErrArtifactVersion):
		return fmt.Errorf("the model was saved in an unsupported format, run the training command again: %w", err)
	case errors.Is(err, ierrors.ErrArtifactLoad):
		return fmt.Errorf("model file not found or unreadable, run the training command first: %w", err)
	}
	return err
}

// isExit reports whether the user left the prompt with Ctrl+C or Ctrl+D.
func isExit(err error) bool {
	return errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF)
}

// suggest offers the suggested questions. An empty question means the user
// chose to type their own.
func suggest() (string, error) {
	items := append(append([]string{}, suggestions...), ownQuestion)
	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "▸ {{ . | cyan }}",
		Inactive: "  {{ . }}",
		Selected: "✓ {{ . | green }}",
	}
	selectPrompt := promptui.Select{
		Label:     "Try one of these suggestions",
		Items:     items,
		Templates: templates,
		Size:      len(items),
	}
	index, question, err := selectPrompt.Run()
	if err != nil {
		return "", err
	}
	if index == len(suggestions) {
		return "", nil
	}
	return question, nil
}

func answer(chat services.IChatService, text string) {
	response, tag := chat.Respond(text)
	color.Cyan.Println(response)
	color.Gray.Printf("Debug: Predicted intent = '%s'\n\n", tag)
}
